package component

import (
	"math"
	"testing"

	"github.com/milk9111/colormaze/common"
)

const epsilon = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestOrbitDefaults(t *testing.T) {
	o := NewOrbit(DefaultOrbitConfig())
	if o.Distance() != 4 || o.HorizontalAngle() != 0 || !near(o.VerticalAngle(), math.Pi/6) {
		t.Fatalf("unexpected defaults d=%v h=%v v=%v", o.Distance(), o.HorizontalAngle(), o.VerticalAngle())
	}
}

func TestOrbitZoomClamps(t *testing.T) {
	o := NewOrbit(DefaultOrbitConfig())

	cases := []struct {
		name  string
		delta float64
		times int
		want  float64
	}{
		{"one_step_out", 100, 1, 4.5},
		{"clamped_far", 1, 20, 8},
		{"zero_is_noop", 0, 3, 8},
		{"clamped_near", -0.1, 40, 2},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			for i := 0; i < c.times; i++ {
				o.ApplyZoom(c.delta)
			}
			if got := o.Distance(); got != c.want {
				t.Fatalf("distance = %v, want %v", got, c.want)
			}
		})
	}
}

func TestOrbitDragClampsVertical(t *testing.T) {
	cfg := DefaultOrbitConfig()
	o := NewOrbit(cfg)

	o.ApplyDrag(100, 0)
	if !near(o.HorizontalAngle(), -0.2) {
		t.Fatalf("horizontal = %v, want -0.2", o.HorizontalAngle())
	}

	o.ApplyDrag(0, 1e6)
	if !near(o.VerticalAngle(), cfg.MaxVerticalAngle) {
		t.Fatalf("vertical = %v, want %v", o.VerticalAngle(), cfg.MaxVerticalAngle)
	}
	o.ApplyDrag(0, -1e6)
	if !near(o.VerticalAngle(), -cfg.MaxVerticalAngle) {
		t.Fatalf("vertical = %v, want %v", o.VerticalAngle(), -cfg.MaxVerticalAngle)
	}

	// Horizontal is unbounded.
	o.ApplyDrag(-1e5, 0)
	if !near(o.HorizontalAngle(), -0.2+200) {
		t.Fatalf("horizontal = %v, want %v", o.HorizontalAngle(), -0.2+200)
	}
}

func TestOrbitViewSmoothsAndSnaps(t *testing.T) {
	cfg := DefaultOrbitConfig()
	cfg.VerticalAngle = 0
	o := NewOrbit(cfg)
	player := common.V3(0, 0.5, 0)

	first := o.View(player, 1.0/60)
	want := common.V3(0, 0.5+3, 4)
	if first.Eye != want {
		t.Fatalf("first view eye = %v, want %v", first.Eye, want)
	}
	if first.LookAt != common.V3(0, 1.5, 0) {
		t.Fatalf("look at = %v", first.LookAt)
	}

	moved := common.V3(10, 0.5, 0)
	second := o.View(moved, 1.0/60)
	if !near(second.Eye.X, 1) {
		t.Fatalf("smoothed eye x = %v, want 1", second.Eye.X)
	}

	o.ApplyZoom(-1)
	third := o.View(moved, 1.0/60)
	if third.Eye != o.Target(moved) {
		t.Fatalf("zoom should snap the eye, got %v want %v", third.Eye, o.Target(moved))
	}
}

func TestOrbitReset(t *testing.T) {
	o := NewOrbit(DefaultOrbitConfig())
	o.ApplyDrag(50, 50)
	o.ApplyZoom(1)
	o.Reset()
	if o.Distance() != 4 || o.HorizontalAngle() != 0 || !near(o.VerticalAngle(), math.Pi/6) {
		t.Fatal("reset should restore defaults")
	}
}

func TestOrbitConfigNormalize(t *testing.T) {
	o := NewOrbit(OrbitConfig{Distance: 20, MinDistance: 8, MaxDistance: 2, MaxVerticalAngle: -3, VerticalAngle: 3})
	if o.Distance() != 8 {
		t.Fatalf("distance = %v, want 8", o.Distance())
	}
	if o.VerticalAngle() >= math.Pi/2 {
		t.Fatalf("vertical angle %v should stay below the pole", o.VerticalAngle())
	}
}
