// Package sim runs the game one frame at a time. It owns no clock and does no
// I/O; a host feeds it input, calls Tick and draws the Snapshot.
package sim

import (
	"math/rand/v2"

	"github.com/milk9111/colormaze/ecs"
	"github.com/milk9111/colormaze/ecs/component"
	"github.com/milk9111/colormaze/ecs/system"
	"github.com/milk9111/colormaze/levels"
)

type Simulation struct {
	world  *ecs.World
	camera *system.CameraSystem
}

// New builds a simulation with the systems in frame order. A nil rng is
// seeded randomly.
func New(tuning ecs.Tuning, rng *rand.Rand) *Simulation {
	w := ecs.NewWorld(rng, tuning)
	camera := system.NewCameraSystem()

	w.AddSystem(system.NewQuickResetSystem())
	w.AddSystem(system.NewMovementSystem())
	w.AddSystem(system.NewPickupSystem())
	w.AddSystem(camera)

	return &Simulation{world: w, camera: camera}
}

// Tick advances the simulation by dt seconds.
func (s *Simulation) Tick(dt float64) {
	if s == nil {
		return
	}
	s.world.Update(dt)
	s.world.Input().EndFrame()
}

func (s *Simulation) Press(a component.Action) {
	s.world.Input().Press(a)
}

func (s *Simulation) Release(a component.Action) {
	s.world.Input().Release(a)
}

func (s *Simulation) SetAction(a component.Action, down bool) {
	s.world.Input().Set(a, down)
}

func (s *Simulation) ReleaseAll() {
	s.world.Input().ReleaseAll()
}

// Drag adds a pointer drag in pixels, applied to the camera on the next Tick.
func (s *Simulation) Drag(dx, dy float64) {
	s.world.Input().AddDrag(dx, dy)
}

// Zoom adds scroll input; the next Tick moves the camera one step at most.
func (s *Simulation) Zoom(delta float64) {
	s.world.Input().AddScroll(delta)
}

func (s *Simulation) StartRound(level *levels.Level) bool {
	return s.world.StartRound(level)
}

func (s *Simulation) Collect(id string) bool {
	return s.world.Collect(id)
}

func (s *Simulation) ResetRound() bool {
	return s.world.ResetRound()
}

func (s *Simulation) ReturnToStart() bool {
	return s.world.ReturnToStart()
}

func (s *Simulation) Abandon() bool {
	return s.world.Abandon()
}

// Events drains round events queued since the last call.
func (s *Simulation) Events() []ecs.Event {
	return s.world.Events().Drain()
}

func (s *Simulation) Tuning() ecs.Tuning {
	return s.world.Tuning()
}

func (s *Simulation) SetTuning(t ecs.Tuning) {
	s.world.SetTuning(t)
}

// World exposes the underlying world for hosts that need more than Snapshot.
func (s *Simulation) World() *ecs.World {
	return s.world
}

// Snapshot is a copy of everything a host needs to draw one frame.
type Snapshot struct {
	Frame     uint64
	Status    component.Status
	Target    levels.Color
	Collected int
	Total     int
	Player    component.Player
	Pickups   []component.Pickup
	// Nearby is the pickup the collect prompt points at, empty if none.
	Nearby      string
	Camera      component.View
	CameraAngle float64
	// Level is a copy; edits do not reach the running round.
	Level *levels.Level
}

func (s *Simulation) Snapshot() Snapshot {
	w := s.world
	collected, total := w.Counts()
	return Snapshot{
		Frame:       w.Frame(),
		Status:      w.Status(),
		Target:      w.TargetColor(),
		Collected:   collected,
		Total:       total,
		Player:      w.Player(),
		Pickups:     w.Pickups(),
		Nearby:      w.Nearby(),
		Camera:      s.camera.View(),
		CameraAngle: w.Camera().HorizontalAngle(),
		Level:       w.Level().Clone(),
	}
}
