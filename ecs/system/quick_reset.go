package system

import (
	"github.com/milk9111/colormaze/ecs"
	"github.com/milk9111/colormaze/ecs/component"
)

// QuickResetSystem sends the player back to the start on the frame the quick
// reset action goes down. Collected pickups stay collected.
type QuickResetSystem struct{}

func NewQuickResetSystem() *QuickResetSystem {
	return &QuickResetSystem{}
}

func (s *QuickResetSystem) Update(w *ecs.World) {
	if w == nil || w.Status() != component.StatusPlaying {
		return
	}
	if w.Input().JustPressed(component.ActionQuickReset) {
		w.ReturnToStart()
	}
}
