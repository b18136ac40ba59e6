// Package editor is the model behind the level editor: a square grid of
// cells painted with walls, pickups and the player start.
package editor

import (
	"fmt"
	"math"

	"github.com/milk9111/colormaze/common"
	"github.com/milk9111/colormaze/levels"
)

const (
	// GridSize is the number of cells along each side.
	GridSize = 50

	wallHeight   = 2
	pickupHeight = 0.5
)

// DefaultStart is where the player starts until a start cell is painted.
var DefaultStart = common.V3(0, 0.5, 0)

type Tool uint8

const (
	ToolWall Tool = iota
	ToolPickup
	ToolStart
	ToolErase
)

// Tools lists every tool in toolbar order.
var Tools = [...]Tool{ToolWall, ToolPickup, ToolStart, ToolErase}

func (t Tool) String() string {
	switch t {
	case ToolWall:
		return "Wall"
	case ToolPickup:
		return "Pickup"
	case ToolStart:
		return "Start"
	case ToolErase:
		return "Erase"
	default:
		return "Unknown"
	}
}

// CellToWorld maps a cell index to the world coordinate of the cell centre.
func CellToWorld(cell int) float64 {
	return float64(cell - GridSize/2)
}

// InGrid reports whether the cell lies on the grid.
func InGrid(cx, cz int) bool {
	return cx >= 0 && cx < GridSize && cz >= 0 && cz < GridSize
}

// Grid holds the level being edited along with the selected tool and colour.
// Walls and pickups keep the order they were painted in.
type Grid struct {
	walls  []levels.Wall
	spawns map[levels.Color][]common.Vec3
	start  common.Vec3

	tool  Tool
	color levels.Color
}

func NewGrid() *Grid {
	g := &Grid{}
	g.Clear()
	return g
}

// Clear empties the grid and puts the start back at its default.
func (g *Grid) Clear() {
	g.walls = nil
	g.spawns = make(map[levels.Color][]common.Vec3, len(levels.Colors))
	g.start = DefaultStart
}

func (g *Grid) Tool() Tool { return g.tool }

func (g *Grid) SetTool(t Tool) { g.tool = t }

func (g *Grid) Color() levels.Color { return g.color }

func (g *Grid) SetColor(c levels.Color) {
	if c.Valid() {
		g.color = c
	}
}

// Apply uses the selected tool on a cell and reports whether the grid changed.
func (g *Grid) Apply(cx, cz int) bool {
	switch g.tool {
	case ToolWall:
		return g.PlaceWall(cx, cz)
	case ToolPickup:
		return g.PlacePickup(cx, cz, g.color)
	case ToolStart:
		return g.PlaceStart(cx, cz)
	case ToolErase:
		return g.Erase(cx, cz)
	default:
		return false
	}
}

// PlaceWall adds a 1×2×1 wall. Pickups under it are removed and a start under
// it goes back to the default.
func (g *Grid) PlaceWall(cx, cz int) bool {
	if !InGrid(cx, cz) || g.hasWall(cx, cz) {
		return false
	}
	g.removePickups(cx, cz)
	if g.startAt(cx, cz) {
		g.start = DefaultStart
	}
	x, z := CellToWorld(cx), CellToWorld(cz)
	g.walls = append(g.walls, levels.Wall{
		Position: common.V3(x, wallHeight/2, z),
		Size:     common.V3(1, wallHeight, 1),
		Rotation: &common.Vec3{},
	})
	return true
}

// PlacePickup puts a pickup of colour c on an empty cell. A pickup of another
// colour on the cell is replaced.
func (g *Grid) PlacePickup(cx, cz int, c levels.Color) bool {
	if !InGrid(cx, cz) || !c.Valid() || g.hasWall(cx, cz) || g.startAt(cx, cz) {
		return false
	}
	if existing, ok := g.pickupAt(cx, cz); ok && existing == c {
		return false
	}
	g.removePickups(cx, cz)
	g.spawns[c] = append(g.spawns[c], common.V3(CellToWorld(cx), pickupHeight, CellToWorld(cz)))
	return true
}

// PlaceStart moves the start to a free cell. Painting the current start cell
// again puts the start back at its default.
func (g *Grid) PlaceStart(cx, cz int) bool {
	if !InGrid(cx, cz) || g.hasWall(cx, cz) {
		return false
	}
	if _, ok := g.pickupAt(cx, cz); ok {
		return false
	}
	prev := g.start
	if g.startAt(cx, cz) {
		g.start = DefaultStart
	} else {
		g.start = common.V3(CellToWorld(cx), pickupHeight, CellToWorld(cz))
	}
	return g.start != prev
}

// Erase clears a cell of walls, pickups and the start.
func (g *Grid) Erase(cx, cz int) bool {
	if !InGrid(cx, cz) {
		return false
	}
	changed := g.removePickups(cx, cz)

	x, z := CellToWorld(cx), CellToWorld(cz)
	kept := g.walls[:0]
	for _, w := range g.walls {
		if inCell(w.Position, x, z) {
			changed = true
			continue
		}
		kept = append(kept, w)
	}
	g.walls = kept

	if g.startAt(cx, cz) && g.start != DefaultStart {
		g.start = DefaultStart
		changed = true
	}
	return changed
}

func (g *Grid) hasWall(cx, cz int) bool {
	x, z := CellToWorld(cx), CellToWorld(cz)
	for _, w := range g.walls {
		if inCell(w.Position, x, z) {
			return true
		}
	}
	return false
}

func (g *Grid) pickupAt(cx, cz int) (levels.Color, bool) {
	x, z := CellToWorld(cx), CellToWorld(cz)
	for _, c := range levels.Colors {
		for _, p := range g.spawns[c] {
			if inCell(p, x, z) {
				return c, true
			}
		}
	}
	return 0, false
}

func (g *Grid) removePickups(cx, cz int) bool {
	x, z := CellToWorld(cx), CellToWorld(cz)
	removed := false
	for _, c := range levels.Colors {
		points := g.spawns[c]
		kept := points[:0]
		for _, p := range points {
			if inCell(p, x, z) {
				removed = true
				continue
			}
			kept = append(kept, p)
		}
		g.spawns[c] = kept
	}
	return removed
}

func (g *Grid) startAt(cx, cz int) bool {
	return inCell(g.start, CellToWorld(cx), CellToWorld(cz))
}

// inCell reports whether p lies within half a cell of the world point (x, z).
// Imported levels may place things off the cell centres.
func inCell(p common.Vec3, x, z float64) bool {
	return math.Abs(p.X-x) < 0.5 && math.Abs(p.Z-z) < 0.5
}

// Cell describes what is painted on one cell, for drawing.
type Cell struct {
	Wall   bool
	Pickup bool
	Color  levels.Color
	Start  bool
}

func (g *Grid) Cell(cx, cz int) Cell {
	if !InGrid(cx, cz) {
		return Cell{}
	}
	c, ok := g.pickupAt(cx, cz)
	return Cell{
		Wall:   g.hasWall(cx, cz),
		Pickup: ok,
		Color:  c,
		Start:  g.startAt(cx, cz),
	}
}

func (g *Grid) Walls() []levels.Wall {
	return append([]levels.Wall(nil), g.walls...)
}

func (g *Grid) Start() common.Vec3 { return g.start }

func (g *Grid) WallCount() int { return len(g.walls) }

// PickupCount counts pickups of colour c.
func (g *Grid) PickupCount(c levels.Color) int { return len(g.spawns[c]) }

func (g *Grid) TotalPickups() int {
	total := 0
	for _, c := range levels.Colors {
		total += len(g.spawns[c])
	}
	return total
}

// Level returns a copy of the grid as a level.
func (g *Grid) Level() *levels.Level {
	lvl := &levels.Level{
		Walls:        g.walls,
		PickupSpawns: g.spawns,
		PlayerStart:  g.start,
	}
	return lvl.Clone()
}

// Playable reports levels.ErrNoPickups until at least one pickup is painted.
func (g *Grid) Playable() error {
	if g.TotalPickups() == 0 {
		return levels.ErrNoPickups
	}
	return nil
}

func (g *Grid) Export() ([]byte, error) {
	data, err := levels.Marshal(g.Level())
	if err != nil {
		return nil, fmt.Errorf("editor: export: %w", err)
	}
	return data, nil
}

// Import replaces the grid with a level document. The grid is left unchanged
// when the document is rejected.
func (g *Grid) Import(data []byte) error {
	lvl, err := levels.Parse(data)
	if err != nil {
		return fmt.Errorf("editor: import: %w", err)
	}
	g.Load(lvl)
	return nil
}

// Load replaces the grid with a copy of lvl.
func (g *Grid) Load(lvl *levels.Level) {
	if lvl == nil {
		return
	}
	c := lvl.Clone()
	g.walls = c.Walls
	g.spawns = c.PickupSpawns
	if g.spawns == nil {
		g.spawns = make(map[levels.Color][]common.Vec3, len(levels.Colors))
	}
	g.start = c.PlayerStart
}
