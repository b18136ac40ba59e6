package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/colormaze/ecs/component"
	"github.com/milk9111/colormaze/sim"
)

var keyBindings = []struct {
	action component.Action
	keys   []ebiten.Key
}{
	{component.ActionForward, []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp}},
	{component.ActionBack, []ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown}},
	{component.ActionStrafeLeft, []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}},
	{component.ActionStrafeRight, []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}},
	{component.ActionCollect, []ebiten.Key{ebiten.KeyF}},
	{component.ActionQuickReset, []ebiten.Key{ebiten.KeyR}},
}

// Input polls keyboard and mouse once per frame and feeds the simulation.
type Input struct {
	dragging     bool
	lastX, lastY int
}

func NewInput() *Input {
	return &Input{}
}

func (in *Input) Update(s *sim.Simulation) {
	if !ebiten.IsFocused() {
		s.ReleaseAll()
		in.dragging = false
		return
	}

	for _, b := range keyBindings {
		down := false
		for _, k := range b.keys {
			if ebiten.IsKeyPressed(k) {
				down = true
				break
			}
		}
		s.SetAction(b.action, down)
	}

	x, y := ebiten.CursorPosition()
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		if in.dragging {
			s.Drag(float64(x-in.lastX), float64(y-in.lastY))
		}
		in.dragging = true
	} else {
		in.dragging = false
	}
	in.lastX, in.lastY = x, y

	// Scrolling down pulls the camera back.
	if _, wy := ebiten.Wheel(); wy != 0 {
		s.Zoom(-wy)
	}
}
