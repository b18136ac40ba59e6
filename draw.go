package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/colormaze/common"
	"github.com/milk9111/colormaze/sim"
	"golang.org/x/image/colornames"
)

const mapMargin = 24

// mapView projects the X/Z plane onto the screen, north (-Z) up.
type mapView struct {
	scale  float64
	cx, cy float64
}

func newMapView(snap sim.Snapshot) mapView {
	span := 50.0
	if snap.Level != nil {
		minX, maxX, minZ, maxZ := levelExtent(snap)
		span = math.Max(maxX-minX, maxZ-minZ) + 2
	}
	size := math.Min(baseWidth, baseHeight) - 2*mapMargin
	return mapView{scale: size / span, cx: baseWidth / 2, cy: baseHeight / 2}
}

func levelExtent(snap sim.Snapshot) (minX, maxX, minZ, maxZ float64) {
	minX, minZ = math.Inf(1), math.Inf(1)
	maxX, maxZ = math.Inf(-1), math.Inf(-1)
	grow := func(p common.Vec3, hx, hz float64) {
		minX, maxX = math.Min(minX, p.X-hx), math.Max(maxX, p.X+hx)
		minZ, maxZ = math.Min(minZ, p.Z-hz), math.Max(maxZ, p.Z+hz)
	}
	for _, w := range snap.Level.Walls {
		grow(w.Position, w.Size.X/2, w.Size.Z/2)
	}
	grow(snap.Level.PlayerStart, 1, 1)
	// Keep the map centred on the origin.
	r := math.Max(math.Max(-minX, maxX), math.Max(-minZ, maxZ))
	return -r, r, -r, r
}

func (v mapView) point(p common.Vec3) (float32, float32) {
	return float32(v.cx + p.X*v.scale), float32(v.cy + p.Z*v.scale)
}

func (v mapView) length(l float64) float32 {
	return float32(l * v.scale)
}

func drawWorld(screen *ebiten.Image, snap sim.Snapshot, debug bool) {
	screen.Fill(color.RGBA{R: 0x1f, G: 0x29, B: 0x37, A: 0xff})
	if snap.Level == nil {
		return
	}
	v := newMapView(snap)

	for _, w := range snap.Level.Walls {
		x, y := v.point(w.Position.Sub(common.V3(w.Size.X/2, 0, w.Size.Z/2)))
		vector.FillRect(screen, x, y, v.length(w.Size.X), v.length(w.Size.Z), colornames.Slategray, false)
	}

	for _, p := range snap.Pickups {
		if p.Collected {
			continue
		}
		x, y := v.point(p.Position)
		vector.FillCircle(screen, x, y, v.length(0.35), p.Color.RGBA(), true)
		if p.ID == snap.Nearby {
			vector.StrokeCircle(screen, x, y, v.length(0.6), 2, colornames.White, true)
		}
	}

	px, py := v.point(snap.Player.Position)
	vector.FillCircle(screen, px, py, v.length(0.3), colornames.Whitesmoke, true)
	// Yaw 0 faces -Z.
	fx := px - float32(math.Sin(snap.Player.Yaw))*v.length(0.7)
	fy := py - float32(math.Cos(snap.Player.Yaw))*v.length(0.7)
	vector.StrokeLine(screen, px, py, fx, fy, 2, colornames.Orange, true)

	if debug {
		ex, ey := v.point(snap.Camera.Eye)
		vector.StrokeLine(screen, ex, ey, px, py, 1, colornames.Lightgrey, true)
		vector.FillCircle(screen, ex, ey, 3, colornames.Yellow, true)
	}
}
