package engine

import "math"

// CoordinateMapper converts between grid cells and world positions.
type CoordinateMapper interface {
	ToWorld(c Coord) WorldPos
	ToGrid(p WorldPos) Coord
}

// GridMapper maps a board onto world space with one unit per cell and the
// board's geometric center at the origin. World Y grows downward.
type GridMapper struct {
	width, height    int
	offsetX, offsetY float64
}

// NewGridMapper returns a mapper for b.
func NewGridMapper(b *Board) GridMapper {
	ox, oy := b.CenterOffset()
	return GridMapper{width: b.width, height: b.height, offsetX: ox, offsetY: oy}
}

// ToWorld returns the world position of the center of cell c.
func (m GridMapper) ToWorld(c Coord) WorldPos {
	return WorldPos{X: float64(c.X) - m.offsetX, Y: float64(c.Y) - m.offsetY}
}

// ToGrid returns the cell nearest to p, clamped onto the board.
func (m GridMapper) ToGrid(p WorldPos) Coord {
	x := int(math.Round(p.X + m.offsetX))
	y := int(math.Round(p.Y + m.offsetY))
	return Coord{X: clamp(x, 0, m.width-1), Y: clamp(y, 0, m.height-1)}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
