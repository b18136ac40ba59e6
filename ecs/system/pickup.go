package system

import (
	"github.com/milk9111/colormaze/ecs"
	"github.com/milk9111/colormaze/ecs/component"
)

// PickupSystem publishes the pickup in collect range and collects it while
// the collect action is held.
type PickupSystem struct{}

func NewPickupSystem() *PickupSystem { return &PickupSystem{} }

func (s *PickupSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	if w.Status() != component.StatusPlaying {
		w.SetNearby("")
		return
	}

	id, ok := nearest(w)
	if ok && w.Input().IsHeld(component.ActionCollect) && w.Collect(id) {
		id, ok = "", false
		if w.Status() == component.StatusPlaying {
			id, ok = nearest(w)
		}
	}
	if !ok {
		id = ""
	}
	w.SetNearby(id)
}

func nearest(w *ecs.World) (string, bool) {
	return w.Registry().NearestUncollected(w.Player().Position, w.Tuning().CollectRange)
}
