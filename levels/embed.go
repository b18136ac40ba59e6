package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
)

//go:embed *.json
var LevelsFS embed.FS

// DefaultName is the embedded maze used when no level is given.
const DefaultName = "default.json"

// LoadFromFS reads, parses and validates an embedded level.
func LoadFromFS(name string) (*Level, error) {
	data, err := fs.ReadFile(LevelsFS, name)
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", name, err)
	}
	return decode(name, data)
}

// Load reads, parses and validates a level file from disk.
func Load(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", path, err)
	}
	return decode(path, data)
}

// Default returns the embedded default maze.
func Default() (*Level, error) {
	return LoadFromFS(DefaultName)
}

func decode(name string, data []byte) (*Level, error) {
	lvl, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if err := lvl.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return lvl, nil
}
