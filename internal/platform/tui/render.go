package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/spiralfill/internal/core"
)

// palette maps core.Color to terminal colors. ColorDefault has no entry.
var palette = map[core.Color]lipgloss.Color{
	core.ColorBlack:     lipgloss.Color("0"),
	core.ColorRed:       lipgloss.Color("1"),
	core.ColorGreen:     lipgloss.Color("2"),
	core.ColorYellow:    lipgloss.Color("3"),
	core.ColorBlue:      lipgloss.Color("4"),
	core.ColorMagenta:   lipgloss.Color("5"),
	core.ColorCyan:      lipgloss.Color("6"),
	core.ColorWhite:     lipgloss.Color("7"),
	core.ColorOrange:    lipgloss.Color("208"),
	core.ColorGray:      lipgloss.Color("245"),
	core.ColorDarkGray:  lipgloss.Color("238"),
	core.ColorLightGray: lipgloss.Color("252"),
}

type cellStyle struct {
	fg, bg core.Color
}

var styleCache = map[cellStyle]lipgloss.Style{}

func styleFor(fg, bg core.Color) lipgloss.Style {
	k := cellStyle{fg, bg}
	if st, ok := styleCache[k]; ok {
		return st
	}
	st := lipgloss.NewStyle()
	if c, ok := palette[fg]; ok {
		st = st.Foreground(c)
	}
	if c, ok := palette[bg]; ok {
		st = st.Background(c)
	}
	styleCache[k] = st
	return st
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells sharing colors are rendered as one run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)
			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Fg != start.Fg || cell.Bg != start.Bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}
			if start.Fg == core.ColorDefault && start.Bg == core.ColorDefault {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(styleFor(start.Fg, start.Bg).Render(run.String()))
		}
	}
	return sb.String()
}
