// Package engine implements the SpiralFill grid rules: the board model, the
// recenterable spiral fill order, flood-fill clearing, item spawning and the
// spawner interaction state machine.
//
// The package performs no I/O and owns no clocks or globals. Randomness,
// coordinate mapping, UI gating, input and event delivery are injected.
package engine

import "fmt"

// Coord is a cell position on the board. X grows right, Y grows down.
type Coord struct {
	X, Y int
}

// C is a shorthand constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// Add returns c translated by d.
func (c Coord) Add(d Coord) Coord {
	return Coord{X: c.X + d.X, Y: c.Y + d.Y}
}

// Sub returns c - d.
func (c Coord) Sub(d Coord) Coord {
	return Coord{X: c.X - d.X, Y: c.Y - d.Y}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// neighbors4 lists the 4-directional offsets used by flood fill.
var neighbors4 = [4]Coord{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// WorldPos is a continuous position in world units, one unit per cell,
// with the origin at the board's geometric center.
type WorldPos struct {
	X, Y float64
}
