package engine

// fixedRandom returns the same float for every roll and always picks the
// palette entry at index pick (mod n).
type fixedRandom struct {
	f    float64
	pick int
}

func (r fixedRandom) Float64() float64 { return r.f }
func (r fixedRandom) Intn(n int) int   { return r.pick % n }

// cycleRandom hands out palette indices in a repeating sequence.
type cycleRandom struct {
	picks []int
	i     int
}

func (r *cycleRandom) Float64() float64 { return 0.99 }
func (r *cycleRandom) Intn(n int) int {
	v := r.picks[r.i%len(r.picks)] % n
	r.i++
	return v
}

func mustOpenBoard(t interface{ Fatalf(string, ...any) }, w, h int) *Board {
	b, err := NewBoardWithBlocked(w, h, nil)
	if err != nil {
		t.Fatalf("NewBoardWithBlocked(%d, %d) error: %v", w, h, err)
	}
	return b
}

func mustPlace(t interface{ Fatalf(string, ...any) }, b *Board, c Coord, color Color) {
	if err := b.Place(c, color); err != nil {
		t.Fatalf("Place(%v, %v) error: %v", c, color, err)
	}
}
