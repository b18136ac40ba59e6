package system

import (
	"github.com/milk9111/colormaze/ecs"
	"github.com/milk9111/colormaze/ecs/component"
	"github.com/milk9111/colormaze/physics"
)

// MovementSystem moves the player from held directions while a round is
// being played. The whole displacement goes through one resolver call.
type MovementSystem struct{}

func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

func (s *MovementSystem) Update(w *ecs.World) {
	if w == nil || w.Status() != component.StatusPlaying {
		return
	}
	level := w.Level()
	if level == nil {
		return
	}

	tuning := w.Tuning()
	motion := Translate(w.Input().Directional(), w.Camera().HorizontalAngle(), tuning.MoveSpeed*w.DT())
	if !motion.HasFacing {
		return
	}

	player := w.Player()
	target := player.Position.Add(motion.Displacement)
	pos := physics.Resolve(player.Position, target, tuning.PlayerRadius, level.Walls, tuning.Bounds)
	w.MovePlayer(pos, motion.Facing)
}
