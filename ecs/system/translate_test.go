package system

import (
	"math"
	"testing"

	"github.com/milk9111/colormaze/common"
	"github.com/milk9111/colormaze/ecs/component"
)

const epsilon = 1e-9

func nearVec(a, b common.Vec3) bool {
	return math.Abs(a.X-b.X) < epsilon && math.Abs(a.Y-b.Y) < epsilon && math.Abs(a.Z-b.Z) < epsilon
}

func TestTranslate(t *testing.T) {
	const speed = 0.08

	cases := []struct {
		name  string
		held  component.Held
		angle float64
		want  common.Vec3
	}{
		{"forward_at_zero", component.Held{Forward: true}, 0, common.V3(0, 0, -speed)},
		{"back_at_zero", component.Held{Back: true}, 0, common.V3(0, 0, speed)},
		{"strafe_left_at_zero", component.Held{Left: true}, 0, common.V3(-speed, 0, 0)},
		{"strafe_right_at_zero", component.Held{Right: true}, 0, common.V3(speed, 0, 0)},
		{"forward_at_quarter_turn", component.Held{Forward: true}, math.Pi / 2, common.V3(-speed, 0, 0)},
		{"forward_and_back_cancel", component.Held{Forward: true, Back: true}, 1, common.Vec3{}},
		{"diagonal_sums", component.Held{Forward: true, Right: true}, 0, common.V3(speed, 0, -speed)},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m := Translate(c.held, c.angle, speed)
			if !m.HasFacing {
				t.Fatal("expected a facing")
			}
			if !nearVec(m.Displacement, c.want) {
				t.Fatalf("displacement = %v, want %v", m.Displacement, c.want)
			}
			if math.Abs(m.Facing-(c.angle+math.Pi)) > epsilon {
				t.Fatalf("facing = %v, want %v", m.Facing, c.angle+math.Pi)
			}
		})
	}
}

func TestTranslateStrafeHasNoForwardComponent(t *testing.T) {
	m := Translate(component.Held{Left: true}, 0, 1)
	if m.Facing != math.Pi {
		t.Fatalf("facing = %v, want π", m.Facing)
	}
	forward := common.V3(0, 0, -1)
	if dot := m.Displacement.X*forward.X + m.Displacement.Z*forward.Z; dot != 0 {
		t.Fatalf("forward component = %v, want 0", dot)
	}
	if m.Displacement.X == 0 {
		t.Fatal("expected movement along the strafe axis")
	}
}

func TestTranslateIdle(t *testing.T) {
	m := Translate(component.Held{}, 2, 1)
	if m.HasFacing || !m.Displacement.IsZero() {
		t.Fatalf("idle input should not move or turn, got %+v", m)
	}
}
