package main

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/colormaze/ecs/component"
	"github.com/milk9111/colormaze/sim"
	"golang.org/x/image/font/gofont/goregular"
)

// HUD draws round progress and the collect prompt over the maze.
type HUD struct {
	face      text.Face
	smallFace text.Face
}

func NewHUD() (*HUD, error) {
	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("hud: load font: %w", err)
	}
	return &HUD{
		face:      &text.GoTextFace{Source: s, Size: 20},
		smallFace: &text.GoTextFace{Source: s, Size: 14},
	}, nil
}

func (h *HUD) Draw(screen *ebiten.Image, snap sim.Snapshot) {
	if snap.Status == component.StatusStart {
		return
	}

	vector.FillRect(screen, 12, 12, 260, 64, color.RGBA{A: 160}, false)
	vector.FillCircle(screen, 36, 44, 12, snap.Target.RGBA(), true)
	h.print(screen, h.face, fmt.Sprintf("%s  %d / %d", snap.Target, snap.Collected, snap.Total), 58, 32, color.White)

	if snap.Nearby != "" {
		msg := "Press F to collect"
		w, _ := text.Measure(msg, h.face, 0)
		h.print(screen, h.face, msg, (baseWidth-w)/2, baseHeight-72, color.White)
	}

	help := "WASD move  F collect  R back to start  right-drag rotate  wheel zoom  Backspace quit round"
	h.print(screen, h.smallFace, help, 12, baseHeight-24, color.Gray{Y: 200})
}

func (h *HUD) DrawDebug(screen *ebiten.Image, msg string) {
	ebitenutil.DebugPrintAt(screen, msg, baseWidth-220, 8)
}

func (h *HUD) print(screen *ebiten.Image, face text.Face, msg string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, msg, face, op)
}
