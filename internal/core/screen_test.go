package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, 'x')
	if got := s.Get(3, 2); got != 'x' {
		t.Errorf("Get(3, 2) = %q, expected 'x'", got)
	}

	// Out of bounds is ignored and reads back as space
	s.Set(-1, 0, 'y')
	s.Set(10, 0, 'y')
	s.Set(0, 5, 'y')
	if got := s.Get(-1, 0); got != ' ' {
		t.Errorf("out-of-bounds Get = %q, expected space", got)
	}
}

func TestScreenColoredCells(t *testing.T) {
	s := NewScreen(8, 3)

	s.SetCell(1, 1, '█', ColorBlue)
	cell := s.GetCell(1, 1)
	if cell.Rune != '█' || cell.Color != ColorBlue {
		t.Errorf("GetCell(1, 1) = %+v", cell)
	}

	if def := s.GetCell(0, 0); def.Color != ColorDefault {
		t.Errorf("untouched cell color = %v, expected default", def.Color)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)

	s.DrawText(2, 1, "hello")
	if got := strings.TrimRight(s.Row(1), " "); got != "  hello" {
		t.Errorf("Row(1) = %q", got)
	}

	// Clipped at the right edge
	s.DrawText(8, 0, "abc")
	if got := s.Row(0); got[8:] != "ab" {
		t.Errorf("clipped row = %q", got)
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 1)
	s.DrawTextCentered(0, 0, 11, "abc", ColorDefault)
	if got := s.Row(0); got != "    abc    " {
		t.Errorf("centered row = %q", got)
	}
}

func TestScreenResizeClears(t *testing.T) {
	s := NewScreen(10, 5)
	s.Set(2, 2, 'x')

	s.Resize(20, 8)
	if s.Width() != 20 || s.Height() != 8 {
		t.Errorf("size after resize = %dx%d", s.Width(), s.Height())
	}
	if got := s.Get(2, 2); got != ' ' {
		t.Errorf("content should be discarded on resize, got %q", got)
	}

	// Resizing to the same size is a no-op
	s.Set(1, 1, 'z')
	s.Resize(20, 8)
	if got := s.Get(1, 1); got != 'z' {
		t.Error("same-size resize should not clear")
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
}

func TestScreenBoxAndLines(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawBox(NewRect(0, 0, 6, 4), ColorDefault)

	if s.Get(0, 0) != '┌' || s.Get(5, 0) != '┐' || s.Get(0, 3) != '└' || s.Get(5, 3) != '┘' {
		t.Error("box corners missing")
	}
	if s.Get(2, 0) != '─' || s.Get(0, 2) != '│' {
		t.Error("box edges missing")
	}

	s.DrawHLine(1, 1, 4, '=', ColorDefault)
	if s.Get(1, 1) != '=' || s.Get(4, 1) != '=' {
		t.Error("hline missing")
	}
}
