package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestCanvasSetGet(t *testing.T) {
	c := NewCanvas(10, 5)
	style := tcell.StyleDefault.Foreground(tcell.ColorRed)

	c.Set(3, 2, 'x', style)
	got := c.Get(3, 2)
	if got.Char != 'x' || got.Style != style {
		t.Errorf("got %q, expected 'x' with style", got.Char)
	}

	// out-of-bounds writes are dropped, reads return blanks
	c.Set(-1, 0, 'y', style)
	c.Set(10, 5, 'y', style)
	if got := c.Get(-1, 0); got.Char != ' ' {
		t.Errorf("out-of-bounds read: got %q, expected blank", got.Char)
	}
}

func TestCanvasClear(t *testing.T) {
	c := NewCanvas(4, 4)
	c.Set(1, 1, 'x', tcell.StyleDefault)
	c.Clear()
	if got := c.Get(1, 1); got.Char != ' ' {
		t.Errorf("got %q after clear, expected blank", got.Char)
	}
}

func TestDrawText(t *testing.T) {
	c := NewCanvas(10, 2)
	c.DrawText(2, 0, "abc", tcell.StyleDefault)

	for i, want := range "abc" {
		if got := c.Get(2+i, 0).Char; got != want {
			t.Errorf("cell %d: got %q, expected %q", i, got, want)
		}
	}
}

func TestDrawLine(t *testing.T) {
	c := NewCanvas(10, 10)
	c.DrawLine(1, 1, 5, 5, '*', tcell.StyleDefault)

	// both endpoints and the diagonal cells are set
	for i := 1; i <= 5; i++ {
		if got := c.Get(i, i).Char; got != '*' {
			t.Errorf("cell (%d, %d): got %q, expected '*'", i, i, got)
		}
	}
}
