package desktop

import (
	"math"
	"testing"

	"github.com/vovakirdan/spiralfill/internal/engine"
)

func openBoard(t *testing.T, n int) *engine.Board {
	t.Helper()
	b, err := engine.NewBoard(n, n, 0, nil)
	if err != nil {
		t.Fatalf("NewBoard error: %v", err)
	}
	return b
}

func TestViewCellSize(t *testing.T) {
	tests := []struct {
		n    int
		cell int
	}{
		{5, maxCell},
		{20, 32},
		{250, minCell},
	}
	for _, tt := range tests {
		v := newView(openBoard(t, tt.n))
		if v.cell != tt.cell {
			t.Errorf("n=%d: cell = %d, expected %d", tt.n, v.cell, tt.cell)
		}
	}
}

func TestViewPixelRoundTrip(t *testing.T) {
	b := openBoard(t, 9)
	v := newView(b)
	mapper := engine.NewGridMapper(b)

	for _, c := range []engine.Coord{engine.C(0, 0), engine.C(4, 4), engine.C(8, 3)} {
		r := v.cellRect(c)
		// Every pixel of a cell maps back onto that cell.
		for _, px := range []int{r.Min.X, r.Min.X + v.cell/2, r.Max.X - 1} {
			for _, py := range []int{r.Min.Y, r.Max.Y - 1} {
				if got := mapper.ToGrid(v.toWorld(px, py)); got != c {
					t.Errorf("pixel (%d,%d) -> %v, expected %v", px, py, got, c)
				}
			}
		}

		cx, cy := v.toPixel(mapper.ToWorld(c))
		wantX := float64(r.Min.X) + float64(v.cell)/2
		wantY := float64(r.Min.Y) + float64(v.cell)/2
		if math.Abs(float64(cx)-wantX) > 1e-3 || math.Abs(float64(cy)-wantY) > 1e-3 {
			t.Errorf("toPixel(%v) = (%v,%v), expected (%v,%v)", c, cx, cy, wantX, wantY)
		}
	}
}

func TestViewButtons(t *testing.T) {
	v := newView(openBoard(t, 9))
	w, _ := v.size()

	for i := range buttons {
		r := v.buttonRect(i)
		if r.Max.X > w || r.Min.Y < 0 || r.Max.Y > hudHeight {
			t.Errorf("button %d rect %v outside the HUD", i, r)
		}
		mid := r.Min.Add(r.Size().Div(2))
		if got := v.buttonAt(mid.X, mid.Y); got != i {
			t.Errorf("buttonAt(center of %d) = %d", i, got)
		}
	}

	br := v.boardRect()
	if got := v.buttonAt(br.Min.X+1, br.Min.Y+1); got != -1 {
		t.Errorf("buttonAt(board) = %d, expected -1", got)
	}
	if !v.overHUD(hudHeight-1) || v.overHUD(hudHeight) {
		t.Error("overHUD boundary is wrong")
	}
}
