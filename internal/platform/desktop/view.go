package desktop

import (
	"image"

	"github.com/vovakirdan/spiralfill/internal/core"
	"github.com/vovakirdan/spiralfill/internal/engine"
)

const (
	hudHeight   = 44
	margin      = 16
	buttonW     = 72
	buttonH     = 24
	buttonGap   = 8
	targetBoard = 640 // preferred board edge in pixels
	minCell     = 3
	maxCell     = 48
)

// view places a board in window pixels. Cells are square; the HUD strip
// sits above the board.
type view struct {
	cell       int
	cols, rows int
	offX, offY float64
}

func newView(b *engine.Board) view {
	cols, rows := b.Width(), b.Height()
	ox, oy := b.CenterOffset()
	cell := core.Clamp(targetBoard/max(cols, rows), minCell, maxCell)
	return view{cell: cell, cols: cols, rows: rows, offX: ox, offY: oy}
}

// size returns the window size in pixels.
func (v view) size() (int, int) {
	w := max(margin*2+v.cols*v.cell, len(buttons)*(buttonW+buttonGap)+margin*2+200)
	return w, hudHeight + margin*2 + v.rows*v.cell
}

// origin is the top-left pixel of cell (0,0).
func (v view) origin() (int, int) {
	w, _ := v.size()
	return (w - v.cols*v.cell) / 2, hudHeight + margin
}

func (v view) boardRect() image.Rectangle {
	x, y := v.origin()
	return image.Rect(x, y, x+v.cols*v.cell, y+v.rows*v.cell)
}

// cellRect returns the pixel rectangle of a cell.
func (v view) cellRect(c engine.Coord) image.Rectangle {
	x, y := v.origin()
	x += c.X * v.cell
	y += c.Y * v.cell
	return image.Rect(x, y, x+v.cell, y+v.cell)
}

// toWorld converts a window pixel to world coordinates. Pixel centers of
// a cell map inside that cell's half-unit radius.
func (v view) toWorld(px, py int) engine.WorldPos {
	x, y := v.origin()
	c := float64(v.cell)
	return engine.WorldPos{
		X: (float64(px-x)+0.5)/c - 0.5 - v.offX,
		Y: (float64(py-y)+0.5)/c - 0.5 - v.offY,
	}
}

// toPixel converts a world position to the window pixel at its center.
func (v view) toPixel(p engine.WorldPos) (float32, float32) {
	x, y := v.origin()
	c := float64(v.cell)
	return float32(float64(x) + (p.X+v.offX+0.5)*c), float32(float64(y) + (p.Y+v.offY+0.5)*c)
}

// button is a clickable HUD control that fires a game action.
type button struct {
	label  string
	action core.Action
}

var buttons = []button{
	{label: "Spawn", action: core.ActionSpawn},
	{label: "Clear", action: core.ActionClear},
	{label: "Pause", action: core.ActionPause},
}

// buttonRect returns the pixel rectangle of the i-th HUD button, right
// aligned in the HUD strip.
func (v view) buttonRect(i int) image.Rectangle {
	w, _ := v.size()
	x := w - margin - (len(buttons)-i)*(buttonW+buttonGap) + buttonGap
	y := (hudHeight - buttonH) / 2
	return image.Rect(x, y, x+buttonW, y+buttonH)
}

// buttonAt returns the index of the button under a pixel, or -1.
func (v view) buttonAt(px, py int) int {
	pt := image.Pt(px, py)
	for i := range buttons {
		if pt.In(v.buttonRect(i)) {
			return i
		}
	}
	return -1
}

// overHUD reports whether a pixel is in the HUD strip.
func (v view) overHUD(py int) bool {
	return py < hudHeight
}
