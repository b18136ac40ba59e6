package system

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/milk9111/colormaze/common"
	"github.com/milk9111/colormaze/ecs"
	"github.com/milk9111/colormaze/ecs/component"
	"github.com/milk9111/colormaze/levels"
)

const frame = 1.0 / 60

func testLevel() *levels.Level {
	return &levels.Level{
		Walls: []levels.Wall{
			{Position: common.V3(0, 1, -3), Size: common.V3(4, 2, 1)},
		},
		PickupSpawns: map[levels.Color][]common.Vec3{
			levels.Green: {common.V3(1, 0.5, 0), common.V3(10, 0.5, 10)},
		},
		PlayerStart: common.V3(0, 0.5, 0),
	}
}

func newWorld(systems ...ecs.System) *ecs.World {
	w := ecs.NewWorld(rand.New(rand.NewPCG(3, 4)), ecs.DefaultTuning())
	for _, s := range systems {
		w.AddSystem(s)
	}
	return w
}

func TestMovementSystemMovesAwayFromCamera(t *testing.T) {
	w := newWorld(NewMovementSystem())
	w.StartRound(testLevel())
	w.Input().Press(component.ActionBack)

	w.Update(frame)

	p := w.Player()
	wantZ := 4.8 * frame
	if math.Abs(p.Position.Z-wantZ) > epsilon || p.Position.X != 0 {
		t.Fatalf("position = %v, want z=%v", p.Position, wantZ)
	}
	if p.Yaw != math.Pi {
		t.Fatalf("yaw = %v, want π", p.Yaw)
	}
}

func TestMovementSystemStopsAtWall(t *testing.T) {
	w := newWorld(NewMovementSystem())
	w.StartRound(testLevel())
	w.Input().Press(component.ActionForward)

	for i := 0; i < 120; i++ {
		w.Update(frame)
	}

	// Wall face is at z=-2.5; the player sphere must stay clear of it.
	if z := w.Player().Position.Z; z <= -2.5+0.3 {
		t.Fatalf("player entered the wall, z=%v", z)
	}
}

func TestMovementSystemIdleOutsidePlaying(t *testing.T) {
	w := newWorld(NewMovementSystem())
	w.Input().Press(component.ActionForward)
	w.Update(frame)
	if !w.Player().Position.IsZero() {
		t.Fatalf("player moved without a round: %v", w.Player().Position)
	}
}

func TestPickupSystem(t *testing.T) {
	w := newWorld(NewPickupSystem())
	w.StartRound(testLevel())

	w.Update(frame)
	if got := w.Nearby(); got != "green-0" {
		t.Fatalf("nearby = %q, want green-0", got)
	}
	if collected, _ := w.Counts(); collected != 0 {
		t.Fatal("nothing should be collected without the collect action")
	}

	w.Input().Press(component.ActionCollect)
	w.Update(frame)
	if collected, _ := w.Counts(); collected != 1 {
		t.Fatalf("collected = %d, want 1", collected)
	}
	if got := w.Nearby(); got != "" {
		t.Fatalf("nearby = %q after collecting, want none", got)
	}

	w.Update(frame)
	if collected, _ := w.Counts(); collected != 1 {
		t.Fatalf("holding collect out of range should not collect, got %d", collected)
	}
}

func TestQuickResetSystem(t *testing.T) {
	w := newWorld(NewQuickResetSystem())
	w.StartRound(testLevel())
	w.MovePlayer(common.V3(5, 0.5, 5), 1)
	w.Collect("green-1")

	w.Input().Press(component.ActionQuickReset)
	w.Update(frame)

	if w.Player().Position != common.V3(0, 0.5, 0) {
		t.Fatalf("position = %v, want start", w.Player().Position)
	}
	if collected, _ := w.Counts(); collected != 1 {
		t.Fatalf("collected = %d, want 1", collected)
	}

	// Held without a new press does nothing.
	w.Input().EndFrame()
	w.MovePlayer(common.V3(5, 0.5, 5), 1)
	w.Update(frame)
	if w.Player().Position != common.V3(5, 0.5, 5) {
		t.Fatal("quick reset should fire only on the press edge")
	}
}

func TestCameraSystemAppliesDragAndZoom(t *testing.T) {
	cs := NewCameraSystem()
	w := newWorld(cs)

	w.Input().AddDrag(100, 0)
	w.Input().AddScroll(-3)
	w.Update(frame)

	cam := w.Camera()
	if math.Abs(cam.HorizontalAngle()+0.2) > epsilon {
		t.Fatalf("horizontal = %v, want -0.2", cam.HorizontalAngle())
	}
	if cam.Distance() != 3.5 {
		t.Fatalf("distance = %v, want 3.5", cam.Distance())
	}
	view := cs.View()
	if view.Eye != cam.Target(w.Player().Position) {
		t.Fatalf("eye = %v, want snapped target", view.Eye)
	}
	if view.LookAt != common.V3(0, 1, 0) {
		t.Fatalf("look at = %v", view.LookAt)
	}
}
