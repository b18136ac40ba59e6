package physics

import (
	"testing"

	"github.com/milk9111/colormaze/common"
	"github.com/milk9111/colormaze/levels"
)

var arena = Bounds{MinX: -25, MaxX: 25, MinZ: -25, MaxZ: 25}

func box(x, y, z, sx, sy, sz float64) levels.Wall {
	return levels.Wall{Position: common.V3(x, y, z), Size: common.V3(sx, sy, sz)}
}

func TestResolveStopsOutsideInflatedWall(t *testing.T) {
	walls := []levels.Wall{box(0, 0, 0, 2, 2, 2)}
	const radius = 0.3

	pos := common.V3(3, 0, 0)
	for i := 0; i < 100; i++ {
		target := pos.Add(common.V3(-0.08, 0, 0))
		pos = Resolve(pos, target, radius, walls, arena)
		if !IsLegal(pos, radius, walls, arena) {
			t.Fatalf("step %d: resolved to illegal position %v", i, pos)
		}
	}
	if pos.X <= 1+radius {
		t.Fatalf("player entered wall bound: x=%.4f", pos.X)
	}
	if pos.X > 1+radius+0.08 {
		t.Fatalf("player stopped too early: x=%.4f", pos.X)
	}
}

func TestResolveJumpIntoWallStaysPut(t *testing.T) {
	walls := []levels.Wall{box(0, 0, 0, 2, 2, 2)}
	cur := common.V3(3, 0, 0)
	got := Resolve(cur, common.V3(0, 0, 0), 0.3, walls, arena)
	if got != cur {
		t.Fatalf("expected %v, got %v", cur, got)
	}
}

func TestResolveSliding(t *testing.T) {
	// A wall running along X at z = 0.
	walls := []levels.Wall{box(0, 1, 0, 10, 2, 1)}
	const radius = 0.3

	cases := []struct {
		name    string
		current common.Vec3
		target  common.Vec3
		want    common.Vec3
	}{
		{
			name:    "diagonal_into_wall_slides_along_x",
			current: common.V3(0, 0.5, 1),
			target:  common.V3(0.5, 0.5, 0.5),
			want:    common.V3(0.5, 0.5, 1),
		},
		{
			name:    "free_move_unchanged",
			current: common.V3(0, 0.5, 2),
			target:  common.V3(0.5, 0.5, 2.5),
			want:    common.V3(0.5, 0.5, 2.5),
		},
		{
			name:    "x_blocked_slides_along_z",
			current: common.V3(-5.5, 0.5, 0),
			target:  common.V3(-5.2, 0.5, 0.2),
			want:    common.V3(-5.5, 0.5, 0.2),
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Resolve(c.current, c.target, radius, walls, arena)
			if got != c.want {
				t.Fatalf("Resolve(%v, %v) = %v, want %v", c.current, c.target, got, c.want)
			}
		})
	}
}

func TestResolveIdempotentOnLegalTarget(t *testing.T) {
	walls := []levels.Wall{box(5, 1, 5, 1, 2, 1)}
	target := common.V3(1, 0.5, 1)
	first := Resolve(common.V3(0, 0.5, 0), target, 0.3, walls, arena)
	second := Resolve(common.V3(0, 0.5, 0), target, 0.3, walls, arena)
	if first != target || second != target {
		t.Fatalf("expected %v twice, got %v and %v", target, first, second)
	}
}

func TestIsLegal(t *testing.T) {
	walls := []levels.Wall{
		box(0, 1, 0, 2, 2, 2),
		box(0.5, 1, 0, 2, 2, 2),
		box(10, 5, 10, 2, 2, 2),
	}
	const radius = 0.3

	cases := []struct {
		name string
		pos  common.Vec3
		want bool
	}{
		{"open_floor", common.V3(5, 0.5, 5), true},
		{"inside_overlapping_walls", common.V3(0.2, 0.5, 0), false},
		{"inside_second_wall_only", common.V3(1.6, 0.5, 0), false},
		{"under_raised_wall", common.V3(10, 0.5, 10), true},
		{"outside_bounds", common.V3(26, 0.5, 0), false},
		{"sphere_crosses_bound", common.V3(24.9, 0.5, 0), false},
		{"just_inside_bound", common.V3(24.5, 0.5, -24.5), true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := IsLegal(c.pos, radius, walls, arena); got != c.want {
				t.Fatalf("IsLegal(%v) = %v, want %v", c.pos, got, c.want)
			}
		})
	}
}

func TestTouchingWallIsIllegal(t *testing.T) {
	walls := []levels.Wall{box(0, 1, 0, 2, 2, 2)}
	if IsLegal(common.V3(1.5, 1, 0), 0.5, walls, arena) {
		t.Fatal("sphere touching the wall face should not be legal")
	}
	if !IsLegal(common.V3(1.75, 1, 0), 0.5, walls, arena) {
		t.Fatal("sphere clear of the wall face should be legal")
	}
}

func TestResolveNeverLeavesBounds(t *testing.T) {
	cur := common.V3(24.6, 0.5, 0)
	got := Resolve(cur, common.V3(25.5, 0.5, 0), 0.3, nil, arena)
	if got != cur {
		t.Fatalf("expected to stay at %v, got %v", cur, got)
	}
}
