package engine

// MinGroupSize is the smallest connected group that a clear removes.
const MinGroupSize = 2

// Group is a 4-connected set of same-colored items.
type Group struct {
	Color Color
	Cells []Coord
}

// Size returns the number of cells in the group.
func (g Group) Size() int {
	return len(g.Cells)
}

// ClearResult describes what a clear removed.
type ClearResult struct {
	Groups  []Group
	Cleared int
}

// FindGroups returns every 4-connected group of at least minSize items,
// scanning palette colors in order and cells in row-major order. The board
// is not modified.
func FindGroups(b *Board, palette []Color, minSize int) []Group {
	visited := make([]bool, len(b.cells))
	var groups []Group
	var stack []Coord

	for _, color := range palette {
		for i := range b.cells {
			start := b.cells[i]
			if visited[i] || !start.Occupied || start.Color != color {
				continue
			}

			var members []Coord
			visited[i] = true
			stack = append(stack[:0], start.Pos)
			for len(stack) > 0 {
				cur := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				members = append(members, cur)

				for _, d := range neighbors4 {
					n := cur.Add(d)
					if !b.InBounds(n) {
						continue
					}
					ni := b.index(n)
					if visited[ni] {
						continue
					}
					cell := b.cells[ni]
					if !cell.Occupied || cell.Color != color {
						continue
					}
					visited[ni] = true
					stack = append(stack, n)
				}
			}

			if len(members) >= minSize {
				groups = append(groups, Group{Color: color, Cells: members})
			}
		}
	}
	return groups
}

// HasMatches reports whether ClearMatches would remove anything.
func HasMatches(b *Board, palette []Color) bool {
	return len(FindGroups(b, palette, MinGroupSize)) > 0
}

// ClearMatches removes every group of MinGroupSize or more same-colored
// items. Singletons are left in place.
func ClearMatches(b *Board, palette []Color) ClearResult {
	groups := FindGroups(b, palette, MinGroupSize)
	res := ClearResult{Groups: groups}
	for _, g := range groups {
		for _, c := range g.Cells {
			b.cells[b.index(c)].Occupied = false
			b.cells[b.index(c)].Color = ColorNone
			res.Cleared++
		}
	}
	return res
}
