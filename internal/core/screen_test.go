package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, 'X')
	if s.Get(3, 2) != 'X' {
		t.Errorf("Get(3, 2) = %q, expected 'X'", s.Get(3, 2))
	}

	// Out-of-bounds writes are ignored, reads return space.
	s.Set(-1, 0, 'Y')
	s.Set(10, 0, 'Y')
	s.Set(0, 5, 'Y')
	if s.Get(-1, 0) != ' ' || s.Get(10, 0) != ' ' || s.Get(0, 5) != ' ' {
		t.Error("out-of-bounds Get should return space")
	}
}

func TestScreenSetCellColor(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetCell(1, 1, '█', ColorBrightGreen)

	cell := s.GetCell(1, 1)
	if cell.Rune != '█' || cell.Color != ColorBrightGreen {
		t.Errorf("GetCell(1, 1) = %+v", cell)
	}

	if got := s.GetCell(99, 99); got.Rune != ' ' || got.Color != ColorDefault {
		t.Errorf("out-of-bounds GetCell = %+v, expected blank default", got)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 3)
	s.SetCell(2, 1, '#', ColorRed)

	s.Clear()

	if s.Get(2, 1) != ' ' || s.GetCell(2, 1).Color != ColorDefault {
		t.Error("Clear should reset every cell to a blank default")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)

	s.DrawText(2, 1, "hello")
	if s.Row(1) != "  hello   " {
		t.Errorf("Row(1) = %q", s.Row(1))
	}

	// Clipping at the right edge.
	s.DrawText(7, 0, "world")
	if s.Row(0) != "       wor" {
		t.Errorf("Row(0) = %q", s.Row(0))
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(8, 6)

	s.DrawRect(NewRect(1, 1, 3, 2), '█', ColorWhite)

	for y := 1; y < 3; y++ {
		for x := 1; x < 4; x++ {
			cell := s.GetCell(x, y)
			if cell.Rune != '█' || cell.Color != ColorWhite {
				t.Fatalf("cell (%d, %d) = %+v", x, y, cell)
			}
		}
	}
	if s.Get(0, 0) != ' ' || s.Get(4, 1) != ' ' {
		t.Error("DrawRect painted outside its bounds")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(6, 4)
	s.Set(2, 2, 'A')

	s.Resize(10, 8)
	if s.Width() != 10 || s.Height() != 8 {
		t.Fatalf("Resize to (10, 8) gave (%d, %d)", s.Width(), s.Height())
	}
	if s.Get(2, 2) != 'A' {
		t.Error("Resize should preserve content that still fits")
	}

	s.Resize(2, 2)
	if s.Get(1, 1) != ' ' {
		t.Error("shrunk screen should hold only blanks where content was cut")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	want := "a  \n  b"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}
	if strings.Count(s.String(), "\n") != 1 {
		t.Error("String() should join rows with single newlines")
	}
}
