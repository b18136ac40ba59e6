package component

import (
	"math"

	"github.com/milk9111/colormaze/common"
)

// OrbitConfig tunes an Orbit. Angles are radians, sensitivities radians per
// pixel, Smoothing the per-frame approach fraction at 60 frames per second.
type OrbitConfig struct {
	Distance         float64
	MinDistance      float64
	MaxDistance      float64
	Height           float64
	LookHeight       float64
	HorizontalAngle  float64
	VerticalAngle    float64
	MaxVerticalAngle float64
	SensitivityX     float64
	SensitivityY     float64
	ZoomStep         float64
	Smoothing        float64
}

func DefaultOrbitConfig() OrbitConfig {
	return OrbitConfig{
		Distance:         4,
		MinDistance:      2,
		MaxDistance:      8,
		Height:           3,
		LookHeight:       1,
		VerticalAngle:    math.Pi / 6,
		MaxVerticalAngle: math.Pi / 2.5,
		SensitivityX:     0.002,
		SensitivityY:     0.002,
		ZoomStep:         0.5,
		Smoothing:        0.1,
	}
}

// normalize repairs ranges so the clamps below always have lo <= hi and the
// vertical limit stays short of the poles.
func (c OrbitConfig) normalize() OrbitConfig {
	if c.MinDistance > c.MaxDistance {
		c.MinDistance, c.MaxDistance = c.MaxDistance, c.MinDistance
	}
	c.MaxVerticalAngle = math.Min(math.Abs(c.MaxVerticalAngle), math.Pi/2-0.01)
	c.Distance = common.Clamp(c.Distance, c.MinDistance, c.MaxDistance)
	c.VerticalAngle = common.Clamp(c.VerticalAngle, -c.MaxVerticalAngle, c.MaxVerticalAngle)
	c.Smoothing = common.Clamp(c.Smoothing, 0, 1)
	return c
}

// View is where the camera sits and what it looks at.
type View struct {
	Eye    common.Vec3
	LookAt common.Vec3
}

// Orbit is a camera held in spherical coordinates around the player. Only
// pointer drag and scroll change it; its horizontal angle steers movement.
type Orbit struct {
	cfg OrbitConfig

	distance   float64
	horizontal float64
	vertical   float64

	eye    common.Vec3
	placed bool
	snap   bool
}

func NewOrbit(cfg OrbitConfig) *Orbit {
	o := &Orbit{}
	o.cfg = cfg.normalize()
	o.Reset()
	return o
}

func (o *Orbit) Config() OrbitConfig {
	if o == nil {
		return OrbitConfig{}
	}
	return o.cfg
}

// SetConfig swaps tuning in place. The current angles and distance are kept
// and re-clamped to the new limits.
func (o *Orbit) SetConfig(cfg OrbitConfig) {
	if o == nil {
		return
	}
	o.cfg = cfg.normalize()
	o.distance = common.Clamp(o.distance, o.cfg.MinDistance, o.cfg.MaxDistance)
	o.vertical = common.Clamp(o.vertical, -o.cfg.MaxVerticalAngle, o.cfg.MaxVerticalAngle)
	o.snap = true
}

// Reset restores the configured starting distance and angles.
func (o *Orbit) Reset() {
	if o == nil {
		return
	}
	o.distance = o.cfg.Distance
	o.horizontal = o.cfg.HorizontalAngle
	o.vertical = o.cfg.VerticalAngle
	o.placed = false
	o.snap = false
}

func (o *Orbit) HorizontalAngle() float64 {
	if o == nil {
		return 0
	}
	return o.horizontal
}

func (o *Orbit) VerticalAngle() float64 {
	if o == nil {
		return 0
	}
	return o.vertical
}

func (o *Orbit) Distance() float64 {
	if o == nil {
		return 0
	}
	return o.distance
}

// ApplyDrag rotates the camera by a pointer delta in pixels. Dragging right
// swings the camera left around the player.
func (o *Orbit) ApplyDrag(dx, dy float64) {
	if o == nil || (dx == 0 && dy == 0) {
		return
	}
	o.horizontal -= dx * o.cfg.SensitivityX
	o.vertical = common.Clamp(o.vertical+dy*o.cfg.SensitivityY, -o.cfg.MaxVerticalAngle, o.cfg.MaxVerticalAngle)
	o.snap = true
}

// ApplyZoom moves one zoom step per call in the direction of delta; positive
// scroll pulls the camera back.
func (o *Orbit) ApplyZoom(delta float64) {
	if o == nil || delta == 0 {
		return
	}
	step := o.cfg.ZoomStep
	if delta < 0 {
		step = -step
	}
	o.distance = common.Clamp(o.distance+step, o.cfg.MinDistance, o.cfg.MaxDistance)
	o.snap = true
}

// Target is the unsmoothed eye position for a player at p.
func (o *Orbit) Target(p common.Vec3) common.Vec3 {
	if o == nil {
		return p
	}
	sinH, cosH := math.Sincos(o.horizontal)
	sinV, cosV := math.Sincos(o.vertical)
	return p.Add(common.Vec3{
		X: sinH * cosV * o.distance,
		Y: sinV*o.distance + o.cfg.Height,
		Z: cosH * cosV * o.distance,
	})
}

// View advances the smoothed eye by dt seconds toward its target. The eye
// jumps straight to the target on the first view and after drag or zoom.
func (o *Orbit) View(p common.Vec3, dt float64) View {
	if o == nil {
		return View{Eye: p, LookAt: p}
	}
	target := o.Target(p)
	if !o.placed || o.snap {
		o.eye = target
		o.placed = true
		o.snap = false
	} else {
		o.eye = o.eye.Lerp(target, common.SmoothingFactor(o.cfg.Smoothing, dt))
	}
	return View{
		Eye:    o.eye,
		LookAt: p.Add(common.Vec3{Y: o.cfg.LookHeight}),
	}
}

// Eye is the last eye position produced by View.
func (o *Orbit) Eye() common.Vec3 {
	if o == nil {
		return common.Vec3{}
	}
	return o.eye
}
