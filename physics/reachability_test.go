package physics

import (
	"testing"

	"github.com/milk9111/colormaze/common"
	"github.com/milk9111/colormaze/levels"
)

type cell struct{ i, j int }

// reachable flood-fills legal positions on a square lattice around start.
func reachable(start common.Vec3, radius, step float64, walls []levels.Wall, b Bounds) []common.Vec3 {
	at := func(c cell) common.Vec3 {
		return common.V3(start.X+float64(c.i)*step, start.Y, start.Z+float64(c.j)*step)
	}

	seen := map[cell]bool{{}: true}
	queue := []cell{{}}
	out := []common.Vec3{start}
	for len(queue) > 0 {
		c := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		for _, d := range []cell{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
			n := cell{c.i + d.i, c.j + d.j}
			if seen[n] {
				continue
			}
			seen[n] = true
			p := at(n)
			if !IsLegal(p, radius, walls, b) {
				continue
			}
			queue = append(queue, n)
			out = append(out, p)
		}
	}
	return out
}

func TestDefaultLevelEverySpawnReachable(t *testing.T) {
	lvl, err := levels.Default()
	if err != nil {
		t.Fatalf("default level: %v", err)
	}
	const (
		radius       = 0.3
		collectRange = 1.2
		step         = 0.25
	)
	if !IsLegal(lvl.PlayerStart, radius, lvl.Walls, arena) {
		t.Fatalf("player start %v is not legal", lvl.PlayerStart)
	}

	area := reachable(lvl.PlayerStart, radius, step, lvl.Walls, arena)
	for _, c := range levels.Colors {
		for i, spawn := range lvl.Spawns(c) {
			t.Run(c.String(), func(t *testing.T) {
				for _, p := range area {
					if p.PlanarDistance(spawn) < collectRange {
						return
					}
				}
				t.Fatalf("%s-%d at %v cannot be collected from any reachable position", c, i, spawn)
			})
		}
	}
}

func TestReachableStopsAtEnclosure(t *testing.T) {
	walls := []levels.Wall{
		box(0, 1, -2, 4, 2, 0.5),
		box(0, 1, 2, 4, 2, 0.5),
		box(-2, 1, 0, 0.5, 2, 4),
		box(2, 1, 0, 0.5, 2, 4),
	}
	area := reachable(common.V3(0, 0.5, 0), 0.3, 0.25, walls, arena)
	for _, p := range area {
		if p.PlanarDistance(common.Vec3{}) > 2 {
			t.Fatalf("escaped the enclosure at %v", p)
		}
	}
}
