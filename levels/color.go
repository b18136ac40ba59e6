package levels

import (
	"fmt"
	"image/color"
)

// Color identifies one of the four pickup colours. The set is closed.
type Color uint8

const (
	Blue Color = iota
	Yellow
	Red
	Green
)

// Colors lists every pickup colour in canonical order.
var Colors = [...]Color{Blue, Yellow, Red, Green}

func (c Color) String() string {
	switch c {
	case Blue:
		return "blue"
	case Yellow:
		return "yellow"
	case Red:
		return "red"
	case Green:
		return "green"
	default:
		return fmt.Sprintf("color(%d)", uint8(c))
	}
}

// Valid reports whether c is one of the four pickup colours.
func (c Color) Valid() bool {
	switch c {
	case Blue, Yellow, Red, Green:
		return true
	default:
		return false
	}
}

// RGBA is the display colour used by the game and the editor.
func (c Color) RGBA() color.RGBA {
	switch c {
	case Blue:
		return color.RGBA{R: 0x3b, G: 0x82, B: 0xf6, A: 0xff}
	case Yellow:
		return color.RGBA{R: 0xea, G: 0xb3, B: 0x08, A: 0xff}
	case Red:
		return color.RGBA{R: 0xef, G: 0x44, B: 0x44, A: 0xff}
	case Green:
		return color.RGBA{R: 0x10, G: 0xb9, B: 0x81, A: 0xff}
	default:
		return color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
	}
}

func ParseColor(name string) (Color, error) {
	for _, c := range Colors {
		if c.String() == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownColor, name)
}

func (c Color) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownColor, uint8(c))
	}
	return []byte(c.String()), nil
}

func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
