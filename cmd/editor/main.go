package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	levelPath := flag.String("level", "", "level file to open (Ctrl+O reloads it)")
	outPath := flag.String("out", "levels/custom.json", "where Ctrl+S saves the level")
	flag.Parse()

	log.Println("Editor starting...")

	game, err := NewEditorGame(*levelPath, *outPath)
	if err != nil {
		log.Fatalf("Failed to start editor: %v", err)
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("colormaze editor")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
