// Package physics holds the collision rules of the maze: bounds and wall
// boxes tested against a moving sphere of fixed radius.
package physics

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/colormaze/common"
	"github.com/milk9111/colormaze/levels"
)

// Bounds is the playable rectangle on the X/Z plane.
type Bounds struct {
	MinX, MaxX float64
	MinZ, MaxZ float64
}

// BB returns the bounds as a chipmunk box; the box's Y axis is world Z.
func (b Bounds) BB() cp.BB {
	return cp.BB{L: b.MinX, B: b.MinZ, R: b.MaxX, T: b.MaxZ}
}

// Footprint is the X/Z box covered by a sphere of radius r at p.
func Footprint(p common.Vec3, r float64) cp.BB {
	return cp.NewBBForExtents(cp.Vector{X: p.X, Y: p.Z}, r, r)
}

// WallFootprint is the X/Z box covered by a wall.
func WallFootprint(w levels.Wall) cp.BB {
	return cp.NewBBForExtents(cp.Vector{X: w.Position.X, Y: w.Position.Z}, w.Size.X/2, w.Size.Z/2)
}

// Overlaps reports whether a sphere of radius r at p overlaps wall w.
func Overlaps(p common.Vec3, r float64, w levels.Wall) bool {
	halfH := w.Size.Y / 2
	if p.Y+r <= w.Position.Y-halfH || p.Y-r >= w.Position.Y+halfH {
		return false
	}
	return Footprint(p, r).Intersects(WallFootprint(w))
}

// IsLegal reports whether p is inside bounds and clear of every wall.
// Touching any single wall is enough to make p illegal.
func IsLegal(p common.Vec3, r float64, walls []levels.Wall, b Bounds) bool {
	if !b.BB().Contains(Footprint(p, r)) {
		return false
	}
	for _, w := range walls {
		if Overlaps(p, r, w) {
			return false
		}
	}
	return true
}

// Resolve returns the position reached when moving from current toward target.
// A blocked move is retried along X alone, then Z alone, so diagonal motion
// into a wall slides along it; if both are blocked the mover stays put.
func Resolve(current, target common.Vec3, r float64, walls []levels.Wall, b Bounds) common.Vec3 {
	if IsLegal(target, r, walls, b) {
		return target
	}

	xOnly := common.Vec3{X: target.X, Y: current.Y, Z: current.Z}
	if IsLegal(xOnly, r, walls, b) {
		return xOnly
	}

	zOnly := common.Vec3{X: current.X, Y: current.Y, Z: target.Z}
	if IsLegal(zOnly, r, walls, b) {
		return zOnly
	}

	return current
}
