package main

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.design/x/clipboard"
)

// Save writes the exported level to path, creating its directory.
func (g *EditorGame) Save(path string) error {
	data, err := g.grid.Export()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Open replaces the grid with the level file at path.
func (g *EditorGame) Open(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return g.grid.Import(data)
}

// CopyToClipboard puts the exported level on the system clipboard.
func (g *EditorGame) CopyToClipboard() error {
	if !g.clipboardOK {
		return fmt.Errorf("clipboard unavailable")
	}
	data, err := g.grid.Export()
	if err != nil {
		return err
	}
	clipboard.Write(clipboard.FmtText, data)
	return nil
}

// PasteFromClipboard imports a level document from the clipboard.
func (g *EditorGame) PasteFromClipboard() error {
	if !g.clipboardOK {
		return fmt.Errorf("clipboard unavailable")
	}
	data := clipboard.Read(clipboard.FmtText)
	if len(data) == 0 {
		return fmt.Errorf("clipboard is empty")
	}
	return g.grid.Import(data)
}
