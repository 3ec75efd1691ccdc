package spiralfill

import (
	"math"

	"github.com/vovakirdan/spiralfill/internal/core"
	"github.com/vovakirdan/spiralfill/internal/engine"
)

const (
	hudRows    = 1 // title/score line above the board
	footerRows = 2 // status and key help below the board
)

// layout places the board on the screen. Each board cell is cellW
// characters wide and one row tall, inside a one-character frame.
type layout struct {
	originX, originY int
	cellW            int
	cols, rows       int
	offX, offY       float64
	fits             bool
}

func newLayout(screenW, screenH int, b *engine.Board) layout {
	l := layout{cols: b.Width(), rows: b.Height()}
	l.offX, l.offY = b.CenterOffset()

	availH := screenH - hudRows - footerRows - 2
	if l.rows > availH {
		return l
	}
	for _, w := range []int{2, 1} {
		if l.cols*w+2 <= screenW {
			l.cellW = w
			break
		}
	}
	if l.cellW == 0 {
		return l
	}
	l.fits = true
	l.originX = (screenW-l.cols*l.cellW)/2
	l.originY = hudRows + 1 + (availH-l.rows)/2
	return l
}

// frame returns the rectangle of the board border.
func (l layout) frame() core.Rect {
	return core.NewRect(l.originX-1, l.originY-1, l.cols*l.cellW+2, l.rows+2)
}

// board returns the rectangle of the cells inside the border.
func (l layout) board() core.Rect {
	return l.frame().Inset(1)
}

// contains reports whether a screen cell lies on the board.
func (l layout) contains(sx, sy int) bool {
	return l.fits && l.board().Contains(sx, sy)
}

// toWorld converts a screen cell to world units. The center of a board cell
// maps exactly onto that cell's world position.
func (l layout) toWorld(sx, sy int) engine.WorldPos {
	gx := (float64(sx-l.originX)+0.5)/float64(l.cellW) - 0.5
	gy := float64(sy - l.originY)
	return engine.WorldPos{X: gx - l.offX, Y: gy - l.offY}
}

// cellToScreen returns the left screen column and row of a board cell.
func (l layout) cellToScreen(c engine.Coord) (int, int) {
	return l.originX + c.X*l.cellW, l.originY + c.Y
}

// worldToScreen returns the screen cell nearest to a world position.
func (l layout) worldToScreen(p engine.WorldPos) (int, int) {
	gx := int(math.Round(p.X + l.offX))
	gy := int(math.Round(p.Y + l.offY))
	return l.originX + gx*l.cellW, l.originY + gy
}
