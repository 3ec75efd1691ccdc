package engine

import (
	"errors"
	"math/rand"
	"testing"
)

func TestNewBoardRejectsBadDimensions(t *testing.T) {
	tests := []struct {
		name   string
		w, h   int
		chance float64
		field  string
	}{
		{"width too small", 1, 5, 0.25, "width"},
		{"height too small", 5, 1, 0.25, "height"},
		{"zero", 0, 0, 0.25, "width"},
		{"negative chance", 3, 3, -0.1, "block_chance"},
		{"chance above one", 3, 3, 1.5, "block_chance"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewBoard(tc.w, tc.h, tc.chance, rand.New(rand.NewSource(1)))
			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("NewBoard error = %v, expected ConfigError", err)
			}
			if cfgErr.Field != tc.field {
				t.Errorf("ConfigError.Field = %q, expected %q", cfgErr.Field, tc.field)
			}
		})
	}
}

func TestNewBoardCenterNeverBlocked(t *testing.T) {
	for _, size := range []int{2, 3, 4, 5, 8, 9} {
		b, err := NewBoard(size, size, 1.0, fixedRandom{f: 0})
		if err != nil {
			t.Fatalf("NewBoard(%d) error: %v", size, err)
		}
		center, _ := b.Get(b.Center())
		if center.Blocked {
			t.Errorf("size %d: center %v is blocked", size, b.Center())
		}
		if got, want := b.BlockedCount(), size*size-1; got != want {
			t.Errorf("size %d: BlockedCount() = %d, expected %d", size, got, want)
		}
	}
}

func TestNewBoardBlockChance(t *testing.T) {
	b, err := NewBoard(50, 50, DefaultBlockChance, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("NewBoard error: %v", err)
	}
	ratio := float64(b.BlockedCount()) / float64(50*50)
	if ratio < 0.18 || ratio > 0.32 {
		t.Errorf("blocked ratio = %.3f, expected about %.2f", ratio, DefaultBlockChance)
	}

	open, err := NewBoard(6, 6, 0, nil)
	if err != nil {
		t.Fatalf("NewBoard with zero chance error: %v", err)
	}
	if open.BlockedCount() != 0 {
		t.Errorf("zero chance board has %d blocked cells", open.BlockedCount())
	}
}

func TestNewBoardSameSeedSameLayout(t *testing.T) {
	a, _ := NewBoard(12, 12, 0.3, rand.New(rand.NewSource(7)))
	b, _ := NewBoard(12, 12, 0.3, rand.New(rand.NewSource(7)))
	if a.String() != b.String() {
		t.Errorf("same seed produced different layouts:\n%s\n---\n%s", a, b)
	}
}

func TestBoardCenter(t *testing.T) {
	tests := []struct {
		w, h     int
		expected Coord
	}{
		{3, 3, C(1, 1)},
		{5, 5, C(2, 2)},
		{2, 2, C(0, 1)},
		{4, 4, C(1, 2)},
		{4, 5, C(2, 2)},
		{5, 4, C(2, 2)},
	}

	for _, tc := range tests {
		b := mustOpenBoard(t, tc.w, tc.h)
		if got := b.Center(); got != tc.expected {
			t.Errorf("%dx%d Center() = %v, expected %v", tc.w, tc.h, got, tc.expected)
		}
		if got := CenterOf(tc.w, tc.h); got != tc.expected {
			t.Errorf("CenterOf(%d, %d) = %v, expected %v", tc.w, tc.h, got, tc.expected)
		}
	}

	// Even boards pick the lower-left of the middle four (Y grows down).
	b := mustOpenBoard(t, 4, 4)
	c := b.Center()
	if c.X != 4/2-1 || c.Y != 4/2 {
		t.Errorf("4x4 Center() = %v, expected the bottom-left middle cell (1,2)", c)
	}
}

func TestBoardGetOutOfBounds(t *testing.T) {
	b := mustOpenBoard(t, 3, 3)
	for _, c := range []Coord{C(-1, 0), C(0, -1), C(3, 0), C(0, 3)} {
		if _, err := b.Get(c); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Get(%v) error = %v, expected ErrOutOfBounds", c, err)
		}
	}
	cell, err := b.Get(C(2, 1))
	if err != nil {
		t.Fatalf("Get(2,1) error: %v", err)
	}
	if cell.Pos != C(2, 1) {
		t.Errorf("cell.Pos = %v, expected (2,1)", cell.Pos)
	}
}

func TestBoardPlaceAndClear(t *testing.T) {
	b, err := NewBoardWithBlocked(3, 3, []Coord{C(0, 0)})
	if err != nil {
		t.Fatalf("NewBoardWithBlocked error: %v", err)
	}

	if err := b.Place(C(0, 0), Red); !errors.Is(err, ErrInvalidTarget) {
		t.Errorf("Place on blocked error = %v, expected ErrInvalidTarget", err)
	}
	if err := b.Place(C(5, 5), Red); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("Place out of bounds error = %v, expected ErrOutOfBounds", err)
	}

	mustPlace(t, b, C(1, 0), Blue)
	if b.IsValidTarget(C(1, 0)) {
		t.Error("occupied cell should not be a valid target")
	}
	if err := b.Place(C(1, 0), Red); !errors.Is(err, ErrInvalidTarget) {
		t.Errorf("Place on occupied error = %v, expected ErrInvalidTarget", err)
	}
	cell, _ := b.Get(C(1, 0))
	if !cell.Occupied || cell.Color != Blue {
		t.Errorf("cell = %+v, expected occupied blue", cell)
	}

	if err := b.Clear(C(1, 0)); err != nil {
		t.Fatalf("Clear error: %v", err)
	}
	if err := b.Clear(C(1, 0)); err != nil {
		t.Errorf("Clear on empty cell error = %v, expected nil", err)
	}
	if !b.IsValidTarget(C(1, 0)) {
		t.Error("cleared cell should be a valid target")
	}
	if err := b.Clear(C(-1, 0)); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("Clear out of bounds error = %v, expected ErrOutOfBounds", err)
	}
}

func TestNewBoardWithBlockedValidation(t *testing.T) {
	if _, err := NewBoardWithBlocked(3, 3, []Coord{C(1, 1)}); err == nil {
		t.Error("blocking the center should fail")
	}
	if _, err := NewBoardWithBlocked(3, 3, []Coord{C(3, 0)}); err == nil {
		t.Error("blocking an out-of-bounds cell should fail")
	}
}

func TestBoardString(t *testing.T) {
	b, _ := NewBoardWithBlocked(3, 2, []Coord{C(2, 1)})
	mustPlace(t, b, C(0, 0), Red)
	mustPlace(t, b, C(1, 1), Green)

	expected := "R..\n.G#"
	if got := b.String(); got != expected {
		t.Errorf("String() = %q, expected %q", got, expected)
	}
}

func TestBoardClone(t *testing.T) {
	b := mustOpenBoard(t, 3, 3)
	mustPlace(t, b, C(0, 0), Red)
	clone := b.Clone()
	mustPlace(t, clone, C(1, 0), Blue)

	if b.OccupiedCount() != 1 {
		t.Errorf("original OccupiedCount() = %d, expected 1", b.OccupiedCount())
	}
	if clone.OccupiedCount() != 2 {
		t.Errorf("clone OccupiedCount() = %d, expected 2", clone.OccupiedCount())
	}
}
