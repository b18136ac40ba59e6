package common

import (
	"encoding/json"
	"fmt"
	"math"
)

// Vec3 is a world-space position or extent. Y is up; the maze floor is the X/Z plane.
type Vec3 struct {
	X, Y, Z float64
}

func V3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Lerp moves v toward o by fraction t.
func (v Vec3) Lerp(o Vec3, t float64) Vec3 {
	return Vec3{X: Lerp(v.X, o.X, t), Y: Lerp(v.Y, o.Y, t), Z: Lerp(v.Z, o.Z, t)}
}

// PlanarDistance is the Euclidean distance on the X/Z plane, ignoring height.
func (v Vec3) PlanarDistance(o Vec3) float64 {
	return math.Hypot(v.X-o.X, v.Z-o.Z)
}

func (v Vec3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

func (v Vec3) String() string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", v.X, v.Y, v.Z)
}

// MarshalJSON encodes the vector as a three element array, the level file format.
func (v Vec3) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]float64{v.X, v.Y, v.Z})
}

func (v *Vec3) UnmarshalJSON(data []byte) error {
	var raw []float64
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("vec3: %w", err)
	}
	if len(raw) != 3 {
		return fmt.Errorf("vec3: want 3 components, got %d", len(raw))
	}
	v.X, v.Y, v.Z = raw[0], raw[1], raw[2]
	return nil
}

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// SmoothingFactor converts a per-frame lerp fraction tuned at 60 Hz into the
// fraction to apply over dt seconds.
func SmoothingFactor(perFrame, dt float64) float64 {
	if perFrame <= 0 {
		return 0
	}
	if perFrame >= 1 || dt <= 0 {
		return 1
	}
	return 1 - math.Pow(1-perFrame, dt*60)
}
