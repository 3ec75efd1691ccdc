package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c != blankCell {
				t.Fatalf("new screen cell (%d, %d) = %+v, expected blank", x, y, c)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	s.SetCell(1, 2, Cell{Rune: '●', Fg: ColorRed, Bg: ColorGray})
	c := s.GetCell(1, 2)
	if c.Rune != '●' || c.Fg != ColorRed || c.Bg != ColorGray {
		t.Errorf("GetCell(1, 2) = %+v", c)
	}

	// Out of bounds writes are dropped.
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')
	if s.Get(-1, 0) != ' ' || s.Get(100, 0) != ' ' {
		t.Error("out of bounds Get should return space")
	}
}

func TestScreenClearAndFill(t *testing.T) {
	s := NewScreen(5, 5)
	s.Fill('#')
	if s.Row(3) != "#####" {
		t.Errorf("Row(3) after Fill = %q", s.Row(3))
	}

	s.Clear()
	if strings.TrimSpace(s.String()) != "" {
		t.Errorf("screen not blank after Clear: %q", s.String())
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")
	if got := s.Row(1); got != "  Hello             " {
		t.Errorf("Row(1) = %q", got)
	}

	s.DrawTextColored(17, 2, "clipped", ColorGreen)
	if got := s.Row(2); got != "                 cli" {
		t.Errorf("Row(2) = %q", got)
	}
	if s.GetCell(17, 2).Fg != ColorGreen {
		t.Errorf("Fg = %v, expected green", s.GetCell(17, 2).Fg)
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 1)
	s.DrawTextCentered(0, "abc")
	if got := s.Row(0); got != "    abc    " {
		t.Errorf("Row(0) = %q", got)
	}

	// Multi-byte runes are centered by rune count.
	s.Clear()
	s.DrawTextCenteredColored(0, "◆◆◆", ColorBlue)
	if got := s.Row(0); got != "    ◆◆◆    " {
		t.Errorf("Row(0) = %q", got)
	}
}

func TestScreenDrawRectAndBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawRect(NewRect(1, 1, 2, 2), Cell{Rune: '█', Bg: ColorGray})
	if s.Get(1, 1) != '█' || s.Get(2, 2) != '█' || s.Get(3, 1) != ' ' {
		t.Errorf("DrawRect produced:\n%s", s.String())
	}

	s.Clear()
	s.DrawBox(NewRect(0, 0, 6, 4), ColorWhite)
	expected := "┌────┐\n│    │\n│    │\n└────┘"
	if got := s.String(); got != expected {
		t.Errorf("DrawBox =\n%s\nexpected\n%s", got, expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawText(0, 0, "abcd")
	s.DrawText(0, 1, "efgh")

	s.Resize(2, 3)
	if s.Width() != 2 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, expected 2x3", s.Width(), s.Height())
	}
	expected := "ab\nef\n  "
	if got := s.String(); got != expected {
		t.Errorf("after Resize String() = %q, expected %q", got, expected)
	}
}

func TestScreenRowOutOfRange(t *testing.T) {
	s := NewScreen(3, 1)
	if got := s.Row(5); got != "   " {
		t.Errorf("Row(5) = %q, expected blanks", got)
	}
}
