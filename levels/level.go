package levels

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/milk9111/colormaze/common"
)

var (
	ErrMissingField = errors.New("levels: missing required field")
	ErrUnknownColor = errors.New("levels: unknown pickup color")
	ErrNoPickups    = errors.New("levels: level has no pickups")
)

// Wall is an axis-aligned box. Position is the centre, Size the full width/height/depth.
type Wall struct {
	Position common.Vec3  `json:"position"`
	Size     common.Vec3  `json:"size"`
	Rotation *common.Vec3 `json:"rotation,omitempty"`
}

// Level is an authored maze: walls, per-colour pickup spawns and the player start.
// The simulation treats a loaded Level as read-only.
type Level struct {
	Walls        []Wall
	PickupSpawns map[Color][]common.Vec3
	PlayerStart  common.Vec3
}

// document mirrors the file layout. Raw fields let Parse tell a missing key
// apart from an empty one.
type document struct {
	Walls        json.RawMessage `json:"walls"`
	PickupSpawns json.RawMessage `json:"pickupSpawns"`
	BallSpawns   json.RawMessage `json:"ballSpawns,omitempty"`
	PlayerStart  json.RawMessage `json:"playerStart"`
}

type encodedLevel struct {
	Walls        []Wall                   `json:"walls"`
	PickupSpawns map[string][]common.Vec3 `json:"pickupSpawns"`
	PlayerStart  common.Vec3              `json:"playerStart"`
}

// Parse decodes a level document. Documents missing walls, pickupSpawns or
// playerStart are rejected. Files exported by the first editor used the key
// ballSpawns, which is accepted in place of pickupSpawns.
func Parse(data []byte) (*Level, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("levels: parse: %w", err)
	}

	spawnsRaw := doc.PickupSpawns
	if missing(spawnsRaw) {
		spawnsRaw = doc.BallSpawns
	}
	switch {
	case missing(doc.Walls):
		return nil, fmt.Errorf("%w: walls", ErrMissingField)
	case missing(spawnsRaw):
		return nil, fmt.Errorf("%w: pickupSpawns", ErrMissingField)
	case missing(doc.PlayerStart):
		return nil, fmt.Errorf("%w: playerStart", ErrMissingField)
	}

	lvl := &Level{PickupSpawns: make(map[Color][]common.Vec3, len(Colors))}
	if err := json.Unmarshal(doc.Walls, &lvl.Walls); err != nil {
		return nil, fmt.Errorf("levels: parse walls: %w", err)
	}

	var spawns map[string][]common.Vec3
	if err := json.Unmarshal(spawnsRaw, &spawns); err != nil {
		return nil, fmt.Errorf("levels: parse pickupSpawns: %w", err)
	}
	for name, points := range spawns {
		c, err := ParseColor(name)
		if err != nil {
			return nil, err
		}
		lvl.PickupSpawns[c] = points
	}

	if err := json.Unmarshal(doc.PlayerStart, &lvl.PlayerStart); err != nil {
		return nil, fmt.Errorf("levels: parse playerStart: %w", err)
	}
	if lvl.Walls == nil {
		lvl.Walls = []Wall{}
	}
	return lvl, nil
}

func missing(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// Marshal encodes l as an indented level document. Every colour key is written,
// so a document survives export and import unchanged.
func Marshal(l *Level) ([]byte, error) {
	if l == nil {
		return nil, errors.New("levels: marshal nil level")
	}
	enc := encodedLevel{
		Walls:        l.Walls,
		PickupSpawns: make(map[string][]common.Vec3, len(Colors)),
		PlayerStart:  l.PlayerStart,
	}
	if enc.Walls == nil {
		enc.Walls = []Wall{}
	}
	for _, c := range Colors {
		points := l.PickupSpawns[c]
		if points == nil {
			points = []common.Vec3{}
		}
		enc.PickupSpawns[c.String()] = points
	}
	return json.MarshalIndent(enc, "", "  ")
}

// Validate reports ErrNoPickups when no colour has a single spawn point.
func (l *Level) Validate() error {
	if l == nil {
		return errors.New("levels: nil level")
	}
	if l.TotalPickups() == 0 {
		return ErrNoPickups
	}
	return nil
}

func (l *Level) Spawns(c Color) []common.Vec3 {
	if l == nil {
		return nil
	}
	return l.PickupSpawns[c]
}

func (l *Level) TotalPickups() int {
	if l == nil {
		return 0
	}
	total := 0
	for _, c := range Colors {
		total += len(l.PickupSpawns[c])
	}
	return total
}

// Clone returns a deep copy.
func (l *Level) Clone() *Level {
	if l == nil {
		return nil
	}
	out := &Level{
		Walls:        make([]Wall, len(l.Walls)),
		PickupSpawns: make(map[Color][]common.Vec3, len(l.PickupSpawns)),
		PlayerStart:  l.PlayerStart,
	}
	for i, w := range l.Walls {
		out.Walls[i] = w
		if w.Rotation != nil {
			rot := *w.Rotation
			out.Walls[i].Rotation = &rot
		}
	}
	for c, points := range l.PickupSpawns {
		out.PickupSpawns[c] = append([]common.Vec3(nil), points...)
	}
	return out
}
