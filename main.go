package main

import (
	"flag"
	"log"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	debug := flag.Bool("debug", false, "log every round event and draw the camera")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	levelPath := flag.String("level", "", "level file to play (defaults to the embedded maze)")
	watch := flag.Bool("watch", false, "reload tuning and the level file when they change on disk")
	seed := flag.Uint64("seed", 0, "seed for target colour selection (0 picks one at random)")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("colormaze")

	var rng *rand.Rand
	if *seed != 0 {
		rng = rand.New(rand.NewPCG(*seed, *seed))
	}

	game, err := NewGame(*levelPath, *debug, rng)
	if err != nil {
		log.Fatal(err)
	}
	if *watch {
		if err := game.Watch(); err != nil {
			log.Printf("watch disabled: %v", err)
		}
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
