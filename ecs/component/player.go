package component

import "github.com/milk9111/colormaze/common"

// Player is the avatar's committed state. Yaw is the facing in radians about +Y,
// with 0 looking down -Z.
type Player struct {
	Position common.Vec3
	Yaw      float64
}
