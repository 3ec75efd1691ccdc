package engine

// spiralTurns is the rotation of the outward walk: up, right, down, left.
var spiralTurns = [4]Coord{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// GenerateSpiral returns every board cell except center, ordered by an
// outward square spiral around center.
//
// The walk runs over a virtual odd-sized square centered on center and large
// enough to contain the whole board, so the order stays complete when center
// sits near an edge. Virtual cells falling outside the board are skipped.
// An out-of-bounds center yields nil.
func GenerateSpiral(width, height int, center Coord) []Coord {
	if width <= 0 || height <= 0 {
		return nil
	}
	if center.X < 0 || center.X >= width || center.Y < 0 || center.Y >= height {
		return nil
	}

	d := max(center.X+1, width-center.X, center.Y+1, height-center.Y)
	size := 2*d - 1
	total := size * size
	cells := width * height

	virtual := Coord{X: d - 1, Y: d - 1}
	offset := center.Sub(virtual)

	order := make([]Coord, 0, cells)
	push := func(v Coord) {
		p := v.Add(offset)
		if p.X >= 0 && p.X < width && p.Y >= 0 && p.Y < height {
			order = append(order, p)
		}
	}

	push(virtual)
	visited := 1
	dir := 0
	for step := 1; visited < total && len(order) < cells; step++ {
		for seg := 0; seg < 2; seg++ {
			for i := 0; i < step; i++ {
				if visited >= total || len(order) >= cells {
					return order[1:]
				}
				virtual = virtual.Add(spiralTurns[dir])
				visited++
				push(virtual)
			}
			dir = (dir + 1) % 4
		}
	}
	return order[1:]
}

// SpawnOrder is the LIFO fill order produced for one spawner position.
// Coordinates are pushed outward from the center, so popping yields the
// outermost cells first and works inward toward the spawner.
type SpawnOrder struct {
	center Coord
	stack  []Coord
}

// NewSpawnOrder builds the spawn order for a board of the given size around
// center.
func NewSpawnOrder(width, height int, center Coord) *SpawnOrder {
	return &SpawnOrder{center: center, stack: GenerateSpiral(width, height, center)}
}

// Center returns the cell the order was generated around.
func (o *SpawnOrder) Center() Coord {
	return o.center
}

// Len returns the number of coordinates left.
func (o *SpawnOrder) Len() int {
	return len(o.stack)
}

// Empty reports whether every coordinate has been consumed.
func (o *SpawnOrder) Empty() bool {
	return len(o.stack) == 0
}

// Pop removes and returns the next coordinate to try.
func (o *SpawnOrder) Pop() (Coord, bool) {
	n := len(o.stack)
	if n == 0 {
		return Coord{}, false
	}
	c := o.stack[n-1]
	o.stack = o.stack[:n-1]
	return c, true
}
