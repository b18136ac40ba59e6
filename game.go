package main

import (
	"fmt"
	"log"
	"math/rand/v2"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/colormaze/ecs"
	"github.com/milk9111/colormaze/ecs/component"
	"github.com/milk9111/colormaze/levels"
	"github.com/milk9111/colormaze/prefabs"
	"github.com/milk9111/colormaze/sim"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

type Game struct {
	sim       *sim.Simulation
	level     *levels.Level
	levelPath string
	debug     bool

	input *Input
	hud   *HUD

	startUI   *Menu
	successUI *Menu

	watcher *prefabs.Watcher
	quit    bool
}

// NewGame loads tuning and the level and leaves the game on the start screen.
func NewGame(levelPath string, debug bool, rng *rand.Rand) (*Game, error) {
	tuning, err := sim.LoadTuning()
	if err != nil {
		log.Printf("using default tuning: %v", err)
		tuning = ecs.DefaultTuning()
	}

	lvl, err := loadLevel(levelPath)
	if err != nil {
		return nil, err
	}

	hud, err := NewHUD()
	if err != nil {
		return nil, err
	}

	g := &Game{
		sim:       sim.New(tuning, rng),
		level:     lvl,
		levelPath: levelPath,
		debug:     debug,
		input:     NewInput(),
		hud:       hud,
	}
	g.startUI = NewStartUI(g)
	g.successUI = NewSuccessUI(g)
	return g, nil
}

func loadLevel(path string) (*levels.Level, error) {
	if path == "" {
		return levels.Default()
	}
	return levels.Load(path)
}

// Watch reloads tuning and the level file whenever they change on disk.
func (g *Game) Watch() error {
	dirs := []string{"prefabs"}
	if g.levelPath != "" {
		dirs = append(dirs, filepath.Dir(g.levelPath))
	}
	w, err := prefabs.NewWatcher(dirs...)
	if err != nil {
		return err
	}
	g.watcher = w
	return nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.pollWatcher()

	switch g.sim.Snapshot().Status {
	case component.StatusStart:
		g.startUI.Update()
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			g.startRound()
		}
	case component.StatusSuccess:
		g.successUI.Update()
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			g.startRound()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		g.sim.Abandon()
	}

	g.input.Update(g.sim)
	g.sim.Tick(1 / float64(ebiten.TPS()))
	g.logEvents()
	return nil
}

func (g *Game) startRound() {
	if !g.sim.StartRound(g.level) {
		log.Printf("level has no pickups, not starting")
	}
}

func (g *Game) backToStart() {
	g.sim.Abandon()
}

func (g *Game) logEvents() {
	for _, evt := range g.sim.Events() {
		switch data := evt.Data.(type) {
		case ecs.RoundEvent:
			if g.debug || evt.Type == ecs.EventRoundWon {
				log.Printf("%s: %s x%d", evt.Type, data.Color, data.Total)
			}
		case ecs.PickupEvent:
			if g.debug {
				log.Printf("%s: %s (%d/%d)", evt.Type, data.ID, data.Collected, data.Total)
			}
		default:
			if g.debug {
				log.Printf("%s: %v", evt.Type, data)
			}
		}
	}
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(name)
		case err, ok := <-g.watcher.Errors:
			if ok {
				log.Printf("watch error: %v", err)
			}
		default:
			return
		}
	}
}

func (g *Game) reload(name string) {
	if prefabs.IsSpecFile(name) {
		tuning, err := sim.LoadTuning()
		if err != nil {
			log.Printf("reload %s: %v", name, err)
			return
		}
		g.sim.SetTuning(tuning)
		log.Printf("reloaded tuning from %s", name)
		return
	}

	if g.levelPath == "" || filepath.Clean(name) != filepath.Clean(g.levelPath) {
		return
	}
	lvl, err := levels.Load(g.levelPath)
	if err != nil {
		log.Printf("reload %s: %v", name, err)
		return
	}
	g.level = lvl
	if g.sim.Snapshot().Status != component.StatusStart {
		g.startRound()
	}
	log.Printf("reloaded level %s", name)
}

func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.sim.Snapshot()
	drawWorld(screen, snap, g.debug)
	g.hud.Draw(screen, snap)

	switch snap.Status {
	case component.StatusStart:
		g.startUI.Draw(screen)
	case component.StatusSuccess:
		g.successUI.Draw(screen)
	}

	if g.debug {
		g.hud.DrawDebug(screen, fmt.Sprintf("FPS: %.2f  frame: %d", ebiten.ActualFPS(), snap.Frame))
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
