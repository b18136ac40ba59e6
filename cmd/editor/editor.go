package main

import (
	"fmt"
	"log"

	ebuiinput "github.com/ebitenui/ebitenui/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/colormaze/editor"
	"golang.design/x/clipboard"
)

const (
	screenWidth  = 1280
	screenHeight = 800
)

// EditorGame is the Ebiten game for the editor.
type EditorGame struct {
	grid   *editor.Grid
	ui     *EditorUI
	canvas *Canvas

	levelPath string
	outPath   string

	clipboardOK bool
	status      string
}

func NewEditorGame(levelPath, outPath string) (*EditorGame, error) {
	g := &EditorGame{
		grid:      editor.NewGrid(),
		levelPath: levelPath,
		outPath:   outPath,
		canvas:    NewCanvas(),
	}

	if err := clipboard.Init(); err != nil {
		log.Printf("Clipboard unavailable: %v", err)
	} else {
		g.clipboardOK = true
	}

	ui, err := BuildEditorUI(
		g.grid.SetTool,
		g.grid.SetColor,
		[]editorAction{
			{label: "Save", run: g.save},
			{label: "Open", run: g.reload},
			{label: "Copy", run: g.copy},
			{label: "Paste", run: g.paste},
			{label: "Check", run: g.check},
			{label: "Clear", run: g.clear},
		},
		g.grid.Tool(),
		g.grid.Color(),
	)
	if err != nil {
		return nil, err
	}
	g.ui = ui

	if levelPath != "" {
		if err := g.Open(levelPath); err != nil {
			log.Printf("Failed to open %s: %v", levelPath, err)
		} else {
			log.Printf("Opened %s", levelPath)
		}
	}
	return g, nil
}

func (g *EditorGame) setStatus(format string, args ...any) {
	g.status = fmt.Sprintf(format, args...)
	log.Print(g.status)
}

func (g *EditorGame) save() {
	if err := g.Save(g.outPath); err != nil {
		g.setStatus("Save failed: %v", err)
		return
	}
	g.setStatus("Saved %s", g.outPath)
}

func (g *EditorGame) reload() {
	if g.levelPath == "" {
		g.setStatus("No -level file to open")
		return
	}
	if err := g.Open(g.levelPath); err != nil {
		g.setStatus("Open failed: %v", err)
		return
	}
	g.setStatus("Opened %s", g.levelPath)
}

func (g *EditorGame) copy() {
	if err := g.CopyToClipboard(); err != nil {
		g.setStatus("Copy failed: %v", err)
		return
	}
	g.setStatus("Copied level to clipboard")
}

func (g *EditorGame) paste() {
	if err := g.PasteFromClipboard(); err != nil {
		g.setStatus("Paste failed: %v", err)
		return
	}
	g.setStatus("Pasted level from clipboard")
}

func (g *EditorGame) check() {
	if err := g.grid.Playable(); err != nil {
		g.setStatus("Not playable: place at least one ball")
		return
	}
	g.setStatus("Playable: %d balls", g.grid.TotalPickups())
}

func (g *EditorGame) clear() {
	g.grid.Clear()
	g.setStatus("Cleared")
}

func (g *EditorGame) Update() error {
	g.ui.UI.Update()

	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl)
	switch {
	case ctrl && inpututil.IsKeyJustPressed(ebiten.KeyS):
		g.save()
	case ctrl && inpututil.IsKeyJustPressed(ebiten.KeyC):
		g.copy()
	case ctrl && inpututil.IsKeyJustPressed(ebiten.KeyV):
		g.paste()
	case ctrl && inpututil.IsKeyJustPressed(ebiten.KeyO):
		g.reload()
	}

	for i, key := range []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4} {
		if inpututil.IsKeyJustPressed(key) {
			g.ui.ToolBar.SetActive(i)
		}
	}

	if ebuiinput.UIHovered {
		return nil
	}
	cx, cz, ok := g.canvas.CellAt(ebiten.CursorPosition())
	if !ok {
		return nil
	}
	// Start toggles, so it only applies on the click; the other tools paint
	// while the button is held.
	if g.grid.Tool() == editor.ToolStart {
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			g.grid.Apply(cx, cz)
		}
	} else if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.grid.Apply(cx, cz)
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		g.grid.Erase(cx, cz)
	}
	return nil
}

func (g *EditorGame) Draw(screen *ebiten.Image) {
	g.canvas.Draw(screen, g.grid)
	g.drawSidePanel(screen)
	g.ui.UI.Draw(screen)
}

func (g *EditorGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}
