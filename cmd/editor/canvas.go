package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/colormaze/editor"
	"github.com/milk9111/colormaze/levels"
	"golang.org/x/image/colornames"
)

const (
	cellSize = 12
	canvasX  = 24
	canvasY  = 150
)

// Canvas draws the grid and maps the cursor to cells. Cell (0, 0) is the
// top-left corner, world (-25, -25).
type Canvas struct {
	hoverX, hoverZ int
	hover          bool
}

func NewCanvas() *Canvas {
	return &Canvas{}
}

func (c *Canvas) CellAt(x, y int) (int, int, bool) {
	if x < canvasX || y < canvasY {
		c.hover = false
		return 0, 0, false
	}
	cx := (x - canvasX) / cellSize
	cz := (y - canvasY) / cellSize
	c.hoverX, c.hoverZ = cx, cz
	c.hover = editor.InGrid(cx, cz)
	return cx, cz, c.hover
}

func (c *Canvas) Draw(screen *ebiten.Image, g *editor.Grid) {
	screen.Fill(color.RGBA{R: 0x1f, G: 0x29, B: 0x37, A: 0xff})
	size := float32(editor.GridSize * cellSize)
	vector.FillRect(screen, canvasX, canvasY, size, size, color.RGBA{R: 0xf3, G: 0xf4, B: 0xf6, A: 0xff}, false)

	for cz := 0; cz < editor.GridSize; cz++ {
		for cx := 0; cx < editor.GridSize; cx++ {
			cell := g.Cell(cx, cz)
			x := float32(canvasX + cx*cellSize)
			y := float32(canvasY + cz*cellSize)
			switch {
			case cell.Wall:
				vector.FillRect(screen, x, y, cellSize, cellSize, colornames.Dimgray, false)
			case cell.Pickup:
				vector.FillCircle(screen, x+cellSize/2, y+cellSize/2, cellSize/2-1, cell.Color.RGBA(), true)
			case cell.Start:
				vector.FillRect(screen, x+2, y+2, cellSize-4, cellSize-4, colornames.Purple, false)
			}
		}
	}

	for i := 0; i <= editor.GridSize; i++ {
		p := float32(i * cellSize)
		vector.StrokeLine(screen, canvasX+p, canvasY, canvasX+p, canvasY+size, 1, colornames.Lightgray, false)
		vector.StrokeLine(screen, canvasX, canvasY+p, canvasX+size, canvasY+p, 1, colornames.Lightgray, false)
	}

	if c.hover {
		x := float32(canvasX + c.hoverX*cellSize)
		y := float32(canvasY + c.hoverZ*cellSize)
		vector.StrokeRect(screen, x, y, cellSize, cellSize, 2, colornames.Orange, false)
	}
}

func (g *EditorGame) drawSidePanel(screen *ebiten.Image) {
	x := float64(canvasX + editor.GridSize*cellSize + 32)
	y := float64(canvasY)
	line := func(msg string, clr color.Color) {
		op := &text.DrawOptions{}
		op.GeoM.Translate(x, y)
		op.ColorScale.ScaleWithColor(clr)
		text.Draw(screen, msg, g.ui.Face, op)
		y += 24
	}

	line(fmt.Sprintf("Tool: %s", g.grid.Tool()), color.White)
	line(fmt.Sprintf("Walls: %d", g.grid.WallCount()), color.White)
	for _, c := range levels.Colors {
		line(fmt.Sprintf("%s balls: %d", c, g.grid.PickupCount(c)), c.RGBA())
	}
	start := g.grid.Start()
	line(fmt.Sprintf("Start: %.0f, %.0f", start.X, start.Z), colornames.Plum)
	y += 12
	line("1-4 tools  left click paint  right click erase", color.Gray{Y: 180})
	line("Ctrl+S save  Ctrl+O open  Ctrl+C copy  Ctrl+V paste", color.Gray{Y: 180})
	if g.status != "" {
		y += 12
		line(g.status, colornames.Khaki)
	}
}
