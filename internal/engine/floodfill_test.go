package engine

import "testing"

func TestClearMatchesRemovesGroupsKeepsSingletons(t *testing.T) {
	b := mustOpenBoard(t, 4, 3)
	// R R . B
	// . G . B
	// G . R .
	mustPlace(t, b, C(0, 0), Red)
	mustPlace(t, b, C(1, 0), Red)
	mustPlace(t, b, C(3, 0), Blue)
	mustPlace(t, b, C(3, 1), Blue)
	mustPlace(t, b, C(1, 1), Green)
	mustPlace(t, b, C(0, 2), Green)
	mustPlace(t, b, C(2, 2), Red)

	res := ClearMatches(b, DefaultPalette())

	if res.Cleared != 4 {
		t.Errorf("Cleared = %d, expected 4", res.Cleared)
	}
	if len(res.Groups) != 2 {
		t.Fatalf("len(Groups) = %d, expected 2", len(res.Groups))
	}
	// Palette order is blue, red, green.
	if res.Groups[0].Color != Blue || res.Groups[1].Color != Red {
		t.Errorf("group colors = %v, %v; expected blue, red", res.Groups[0].Color, res.Groups[1].Color)
	}

	expected := "....\n.G..\nG.R."
	if got := b.String(); got != expected {
		t.Errorf("board after clear:\n%s\nexpected:\n%s", got, expected)
	}
}

func TestClearMatchesIgnoresDiagonals(t *testing.T) {
	b := mustOpenBoard(t, 3, 3)
	mustPlace(t, b, C(0, 0), Red)
	mustPlace(t, b, C(1, 1), Red)
	mustPlace(t, b, C(2, 2), Red)
	mustPlace(t, b, C(2, 0), Red)

	res := ClearMatches(b, DefaultPalette())
	if res.Cleared != 0 {
		t.Errorf("Cleared = %d, expected 0 for diagonal-only neighbours", res.Cleared)
	}
	if b.OccupiedCount() != 4 {
		t.Errorf("OccupiedCount() = %d, expected 4", b.OccupiedCount())
	}
}

func TestClearMatchesIsIdempotent(t *testing.T) {
	b := mustOpenBoard(t, 5, 5)
	rng := &cycleRandom{picks: []int{0, 0, 1, 2, 1, 1, 0, 2}}
	order := NewSpawnOrder(5, 5, b.Center())
	for !order.Empty() {
		if _, err := SpawnNext(b, order, DefaultPalette(), rng); err != nil {
			t.Fatalf("SpawnNext error: %v", err)
		}
	}

	first := ClearMatches(b, DefaultPalette())
	if first.Cleared == 0 {
		t.Fatal("expected the first clear to remove something")
	}
	snapshot := b.String()

	second := ClearMatches(b, DefaultPalette())
	if second.Cleared != 0 {
		t.Errorf("second Cleared = %d, expected 0", second.Cleared)
	}
	if b.String() != snapshot {
		t.Error("second clear changed the board")
	}
	if HasMatches(b, DefaultPalette()) {
		t.Error("HasMatches() = true after clearing")
	}
}

func TestClearMatchesNoSameColorNeighboursRemain(t *testing.T) {
	b := mustOpenBoard(t, 8, 8)
	rng := &cycleRandom{picks: []int{2, 0, 1, 1, 0, 2, 2, 1, 0}}
	order := NewSpawnOrder(8, 8, b.Center())
	for !order.Empty() {
		SpawnNext(b, order, DefaultPalette(), rng)
	}
	ClearMatches(b, DefaultPalette())

	for _, cell := range b.Cells() {
		if !cell.Occupied {
			continue
		}
		for _, d := range neighbors4 {
			n, err := b.Get(cell.Pos.Add(d))
			if err != nil {
				continue
			}
			if n.Occupied && n.Color == cell.Color {
				t.Fatalf("cells %v and %v share color %v after clear", cell.Pos, n.Pos, cell.Color)
			}
		}
	}
}

func TestClearMatchesLargeGroup(t *testing.T) {
	const size = 250
	b := mustOpenBoard(t, size, size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			mustPlace(t, b, C(x, y), Green)
		}
	}

	res := ClearMatches(b, DefaultPalette())
	if res.Cleared != size*size {
		t.Errorf("Cleared = %d, expected %d", res.Cleared, size*size)
	}
	if len(res.Groups) != 1 {
		t.Errorf("len(Groups) = %d, expected 1", len(res.Groups))
	}
}

func TestFindGroupsDoesNotMutate(t *testing.T) {
	b := mustOpenBoard(t, 3, 2)
	mustPlace(t, b, C(0, 0), Blue)
	mustPlace(t, b, C(1, 0), Blue)
	before := b.String()

	groups := FindGroups(b, DefaultPalette(), MinGroupSize)
	if len(groups) != 1 || groups[0].Size() != 2 {
		t.Fatalf("FindGroups() = %+v, expected one group of 2", groups)
	}
	if b.OccupiedCount() != 2 {
		t.Errorf("OccupiedCount() = %d, expected 2", b.OccupiedCount())
	}
	if after := b.String(); after != before {
		t.Errorf("board changed:\n%s\nexpected:\n%s", after, before)
	}
}
