package system

import (
	"github.com/milk9111/colormaze/ecs"
	"github.com/milk9111/colormaze/ecs/component"
)

// CameraSystem applies the frame's drag and scroll to the orbit camera and
// recomputes the view around the committed player position. It runs last and
// in every status.
type CameraSystem struct {
	view component.View
}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

func (cs *CameraSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	cam := w.Camera()
	in := w.Input()
	cam.ApplyDrag(in.DragX, in.DragY)
	cam.ApplyZoom(in.Scroll)
	cs.view = cam.View(w.Player().Position, w.DT())
}

// View is the view computed on the last update.
func (cs *CameraSystem) View() component.View {
	if cs == nil {
		return component.View{}
	}
	return cs.view
}
