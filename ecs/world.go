package ecs

import (
	"math/rand/v2"

	"github.com/milk9111/colormaze/common"
	"github.com/milk9111/colormaze/ecs/component"
	"github.com/milk9111/colormaze/levels"
)

// World owns the state of one game: the round, the player, the camera and the
// input gathered for the current frame. Systems read and commit through it.
//
// Round operations never fail. Requests that do not apply to the current
// status, or that name an unknown or already collected pickup, are ignored
// and reported as false.
type World struct {
	scheduler *Scheduler
	events    EventQueue
	rng       *rand.Rand
	tuning    Tuning

	status   component.Status
	level    *levels.Level
	target   levels.Color
	registry *component.Registry
	player   component.Player
	nearby   string

	input  component.Input
	camera *component.Orbit

	dt    float64
	frame uint64
}

// NewWorld creates a world in the start state. A nil rng is seeded randomly.
func NewWorld(rng *rand.Rand, tuning Tuning) *World {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &World{
		scheduler: NewScheduler(),
		rng:       rng,
		tuning:    tuning,
		status:    component.StatusStart,
		camera:    component.NewOrbit(tuning.Camera),
	}
}

// AddSystem appends a system to the update order.
func (w *World) AddSystem(s System) {
	if w == nil {
		return
	}
	w.scheduler.Add(s)
}

// Update runs all systems once for a frame of dt seconds.
func (w *World) Update(dt float64) {
	if w == nil {
		return
	}
	w.dt = dt
	w.frame++
	w.scheduler.Update(w)
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// StartRound begins a round on level with a randomly chosen target colour.
// It is ignored when level is nil or has no pickups at all.
func (w *World) StartRound(level *levels.Level) bool {
	if w == nil || level == nil {
		return false
	}
	candidates := make([]levels.Color, 0, len(levels.Colors))
	for _, c := range levels.Colors {
		if len(level.Spawns(c)) > 0 {
			candidates = append(candidates, c)
		}
	}
	if len(candidates) == 0 {
		return false
	}

	w.level = level
	w.target = candidates[w.rng.IntN(len(candidates))]
	w.beginRound()
	w.events.Push(Event{Type: EventRoundStarted, Data: RoundEvent{Color: w.target, Total: w.registry.Len()}})
	return true
}

// Collect marks a pickup collected and flips the round to success when it was
// the last one.
func (w *World) Collect(id string) bool {
	if w == nil || w.status != component.StatusPlaying {
		return false
	}
	if !w.registry.Collect(id) {
		return false
	}

	collected, total := w.Counts()
	w.events.Push(Event{Type: EventPickupCollected, Data: PickupEvent{ID: id, Collected: collected, Total: total}})
	if total > 0 && collected == total {
		w.status = component.StatusSuccess
		w.nearby = ""
		w.events.Push(Event{Type: EventRoundWon, Data: RoundEvent{Color: w.target, Total: total}})
	}
	return true
}

// ResetRound restarts the current round with the same level and colour.
func (w *World) ResetRound() bool {
	if !w.HasRound() {
		return false
	}
	w.beginRound()
	w.events.Push(Event{Type: EventRoundReset, Data: RoundEvent{Color: w.target, Total: w.registry.Len()}})
	return true
}

// ReturnToStart moves the player back to the start. Progress is kept.
func (w *World) ReturnToStart() bool {
	if !w.HasRound() {
		return false
	}
	w.player = component.Player{Position: w.level.PlayerStart}
	w.events.Push(Event{Type: EventReturnedToStart, Data: w.player.Position})
	return true
}

// Abandon drops the current round and returns to the start screen.
func (w *World) Abandon() bool {
	if !w.HasRound() {
		return false
	}
	color, total := w.target, w.registry.Len()
	w.registry = nil
	w.nearby = ""
	w.status = component.StatusStart
	w.events.Push(Event{Type: EventRoundAbandoned, Data: RoundEvent{Color: color, Total: total}})
	return true
}

func (w *World) beginRound() {
	w.registry = component.NewRegistry(w.target, w.level.Spawns(w.target))
	w.player = component.Player{Position: w.level.PlayerStart}
	w.nearby = ""
	w.status = component.StatusPlaying
}

// HasRound reports whether a round is in progress or just won.
func (w *World) HasRound() bool {
	return w != nil && w.status != component.StatusStart && w.level != nil
}

func (w *World) Status() component.Status {
	if w == nil {
		return component.StatusStart
	}
	return w.status
}

// TargetColor is the colour of the current or last round.
func (w *World) TargetColor() levels.Color {
	if w == nil {
		return 0
	}
	return w.target
}

// Counts returns the collected and total pickups of the current round.
func (w *World) Counts() (collected, total int) {
	if w == nil {
		return 0, 0
	}
	return w.registry.CollectedCount(), w.registry.Len()
}

func (w *World) Player() component.Player {
	if w == nil {
		return component.Player{}
	}
	return w.player
}

// MovePlayer commits a resolved position and facing.
func (w *World) MovePlayer(pos common.Vec3, yaw float64) {
	if w == nil {
		return
	}
	w.player.Position = pos
	w.player.Yaw = yaw
}

// Pickups returns a copy of the round's pickups.
func (w *World) Pickups() []component.Pickup {
	if w == nil {
		return nil
	}
	return w.registry.Pickups()
}

// Registry exposes the round's pickups for proximity queries.
func (w *World) Registry() *component.Registry {
	if w == nil {
		return nil
	}
	return w.registry
}

// Level is the level of the current or last round.
func (w *World) Level() *levels.Level {
	if w == nil {
		return nil
	}
	return w.level
}

// Nearby is the pickup id in collect range after the last frame, if any.
func (w *World) Nearby() string {
	if w == nil {
		return ""
	}
	return w.nearby
}

func (w *World) SetNearby(id string) {
	if w == nil {
		return
	}
	w.nearby = id
}

func (w *World) Input() *component.Input {
	if w == nil {
		return nil
	}
	return &w.input
}

func (w *World) Camera() *component.Orbit {
	if w == nil {
		return nil
	}
	return w.camera
}

func (w *World) Tuning() Tuning {
	if w == nil {
		return Tuning{}
	}
	return w.tuning
}

// SetTuning swaps tuning between frames. The camera keeps its angles.
func (w *World) SetTuning(t Tuning) {
	if w == nil {
		return
	}
	w.tuning = t
	w.camera.SetConfig(t.Camera)
}

// DT is the length of the frame being updated, in seconds.
func (w *World) DT() float64 {
	if w == nil {
		return 0
	}
	return w.dt
}

// Frame counts calls to Update.
func (w *World) Frame() uint64 {
	if w == nil {
		return 0
	}
	return w.frame
}
