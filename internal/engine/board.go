package engine

import "strings"

// DefaultBlockChance is the probability that a non-center cell starts blocked.
const DefaultBlockChance = 0.25

// Cell is a single board position. Blocked is fixed at creation. A blocked
// cell never holds an item.
type Cell struct {
	Pos      Coord
	Blocked  bool
	Occupied bool
	Color    Color
}

// Empty reports whether the cell is unblocked and holds no item.
func (c Cell) Empty() bool {
	return !c.Blocked && !c.Occupied
}

// Board is a fixed-size rectangular grid of cells stored row-major.
type Board struct {
	width  int
	height int
	cells  []Cell
}

func newBoard(width, height int) (*Board, error) {
	if width < 2 {
		return nil, configErrorf("width", "must be at least 2, got %d", width)
	}
	if height < 2 {
		return nil, configErrorf("height", "must be at least 2, got %d", height)
	}
	b := &Board{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			b.cells[y*width+x].Pos = Coord{X: x, Y: y}
		}
	}
	return b, nil
}

// NewBoard creates a board where every cell except the center is blocked
// with probability blockChance.
func NewBoard(width, height int, blockChance float64, rng Random) (*Board, error) {
	if blockChance < 0 || blockChance > 1 {
		return nil, configErrorf("block_chance", "must be within [0,1], got %v", blockChance)
	}
	b, err := newBoard(width, height)
	if err != nil {
		return nil, err
	}
	if blockChance == 0 {
		return b, nil
	}
	if rng == nil {
		return nil, configErrorf("random", "a random source is required when block_chance > 0")
	}
	center := b.Center()
	for i := range b.cells {
		if b.cells[i].Pos == center {
			continue
		}
		if rng.Float64() < blockChance {
			b.cells[i].Blocked = true
		}
	}
	return b, nil
}

// NewBoardWithBlocked creates a board with a fixed set of blocked cells.
func NewBoardWithBlocked(width, height int, blocked []Coord) (*Board, error) {
	b, err := newBoard(width, height)
	if err != nil {
		return nil, err
	}
	center := b.Center()
	for _, c := range blocked {
		if !b.InBounds(c) {
			return nil, configErrorf("blocked", "cell %v is outside the %dx%d board", c, width, height)
		}
		if c == center {
			return nil, configErrorf("blocked", "center cell %v cannot be blocked", c)
		}
		b.cells[b.index(c)].Blocked = true
	}
	return b, nil
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.width }

// Height returns the number of rows.
func (b *Board) Height() int { return b.height }

func (b *Board) index(c Coord) int {
	return c.Y*b.width + c.X
}

// InBounds reports whether c lies on the board.
func (b *Board) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < b.width && c.Y >= 0 && c.Y < b.height
}

// Get returns the cell at c.
func (b *Board) Get(c Coord) (Cell, error) {
	if !b.InBounds(c) {
		return Cell{}, outOfBounds(c)
	}
	return b.cells[b.index(c)], nil
}

// Center returns the starting spawner cell.
func (b *Board) Center() Coord {
	return CenterOf(b.width, b.height)
}

// CenterOf returns the center cell of a width x height board. When both
// dimensions are even the four middle cells tie. With Y growing downward
// the bottom-left one, (w/2-1, h/2), is used.
func CenterOf(width, height int) Coord {
	c := Coord{X: width / 2, Y: height / 2}
	if width%2 == 0 && height%2 == 0 {
		c.X--
	}
	return c
}

// CenterOffset returns the world-space shift between grid indices and a
// board centered on the origin.
func (b *Board) CenterOffset() (float64, float64) {
	return float64(b.width-1) / 2, float64(b.height-1) / 2
}

// IsValidTarget reports whether an item may be placed at c.
func (b *Board) IsValidTarget(c Coord) bool {
	if !b.InBounds(c) {
		return false
	}
	return b.cells[b.index(c)].Empty()
}

// Place puts an item of the given color at c.
func (b *Board) Place(c Coord, color Color) error {
	if !b.InBounds(c) {
		return outOfBounds(c)
	}
	cell := &b.cells[b.index(c)]
	if !cell.Empty() {
		return invalidTarget(c)
	}
	cell.Occupied = true
	cell.Color = color
	return nil
}

// Clear removes the item at c. Clearing an empty cell is a no-op.
func (b *Board) Clear(c Coord) error {
	if !b.InBounds(c) {
		return outOfBounds(c)
	}
	cell := &b.cells[b.index(c)]
	cell.Occupied = false
	cell.Color = ColorNone
	return nil
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	clone := &Board{width: b.width, height: b.height, cells: make([]Cell, len(b.cells))}
	copy(clone.cells, b.cells)
	return clone
}

// Cells returns a copy of all cells in row-major order.
func (b *Board) Cells() []Cell {
	out := make([]Cell, len(b.cells))
	copy(out, b.cells)
	return out
}

// OccupiedCount returns the number of cells holding an item.
func (b *Board) OccupiedCount() int {
	n := 0
	for _, c := range b.cells {
		if c.Occupied {
			n++
		}
	}
	return n
}

// BlockedCount returns the number of blocked cells.
func (b *Board) BlockedCount() int {
	n := 0
	for _, c := range b.cells {
		if c.Blocked {
			n++
		}
	}
	return n
}

// OpenCells returns the positions of all valid targets in row-major order.
func (b *Board) OpenCells() []Coord {
	var out []Coord
	for _, c := range b.cells {
		if c.Empty() {
			out = append(out, c.Pos)
		}
	}
	return out
}

// String renders the board as ASCII: '#' blocked, '.' empty, a color letter
// for items.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow((b.width + 1) * b.height)
	for y := 0; y < b.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < b.width; x++ {
			cell := b.cells[y*b.width+x]
			switch {
			case cell.Blocked:
				sb.WriteByte('#')
			case cell.Occupied:
				sb.WriteByte(cell.Color.Char())
			default:
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
