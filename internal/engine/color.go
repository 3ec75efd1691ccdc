package engine

import (
	"fmt"
	"strings"
)

// Color identifies an item color. The zero value is not a valid item color.
type Color uint8

const (
	ColorNone Color = iota
	Red
	Green
	Blue
	Yellow
	Purple
	Orange
	Cyan
)

var colorNames = map[Color]string{
	ColorNone: "none",
	Red:       "red",
	Green:     "green",
	Blue:      "blue",
	Yellow:    "yellow",
	Purple:    "purple",
	Orange:    "orange",
	Cyan:      "cyan",
}

func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Color(%d)", uint8(c))
}

// Char returns the single-letter ASCII form used by Board.String.
func (c Color) Char() byte {
	switch c {
	case Red:
		return 'R'
	case Green:
		return 'G'
	case Blue:
		return 'B'
	case Yellow:
		return 'Y'
	case Purple:
		return 'P'
	case Orange:
		return 'O'
	case Cyan:
		return 'C'
	default:
		return '?'
	}
}

// ParseColor converts a color name (case-insensitive) to a Color.
func ParseColor(s string) (Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for c, n := range colorNames {
		if c != ColorNone && n == name {
			return c, nil
		}
	}
	return ColorNone, fmt.Errorf("unknown color %q", s)
}

// DefaultPalette returns the stock three-color palette.
func DefaultPalette() []Color {
	return []Color{Blue, Red, Green}
}
