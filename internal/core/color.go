package core

// Color is a terminal palette entry for a screen cell's foreground or
// background. ColorDefault leaves the terminal's own color in place.
type Color uint8

const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorOrange
	ColorGray
	ColorDarkGray
	ColorLightGray
)

var colorNames = [...]string{
	ColorDefault:   "default",
	ColorBlack:     "black",
	ColorRed:       "red",
	ColorGreen:     "green",
	ColorYellow:    "yellow",
	ColorBlue:      "blue",
	ColorMagenta:   "magenta",
	ColorCyan:      "cyan",
	ColorWhite:     "white",
	ColorOrange:    "orange",
	ColorGray:      "gray",
	ColorDarkGray:  "darkgray",
	ColorLightGray: "lightgray",
}

func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return "unknown"
}
