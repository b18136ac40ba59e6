package system

import (
	"math"

	"github.com/milk9111/colormaze/common"
	"github.com/milk9111/colormaze/ecs/component"
)

// Motion is the result of translating one frame of directional input.
type Motion struct {
	Displacement common.Vec3
	// Facing is only meaningful when HasFacing is set.
	Facing    float64
	HasFacing bool
}

// Translate turns held directions into a world-space displacement relative to
// the camera's horizontal angle. Forward moves away from the camera. Any held
// direction turns the player to face away from the camera, strafing included.
func Translate(held component.Held, cameraAngle, speed float64) Motion {
	if !held.Any() {
		return Motion{}
	}

	sin, cos := math.Sincos(cameraAngle)
	var d common.Vec3
	if held.Forward {
		d.X -= sin * speed
		d.Z -= cos * speed
	}
	if held.Back {
		d.X += sin * speed
		d.Z += cos * speed
	}
	// The strafe axis (sin(a+π/2), cos(a+π/2)) written out.
	if held.Left {
		d.X -= cos * speed
		d.Z += sin * speed
	}
	if held.Right {
		d.X += cos * speed
		d.Z -= sin * speed
	}

	return Motion{
		Displacement: d,
		Facing:       cameraAngle + math.Pi,
		HasFacing:    true,
	}
}
