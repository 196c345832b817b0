package viz

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestCanvasSet(t *testing.T) {
	c := NewCanvas(4, 2)

	c.Set(0, 0)
	if c.Grid[0][0] != brailleBlank|0x1 {
		t.Errorf("expected dot 1, got %U", c.Grid[0][0])
	}
	c.Set(1, 3)
	if c.Grid[0][0] != brailleBlank|0x1|0x80 {
		t.Errorf("expected dots 1 and 8, got %U", c.Grid[0][0])
	}

	// Outside the canvas.
	c.Set(-1, 0)
	c.Set(100, 100)
	if c.Lit(3, 1) {
		t.Error("out-of-range dot lit a cell")
	}

	c.Clear()
	if c.Lit(0, 0) {
		t.Error("clear left a cell lit")
	}
}

func TestCanvasDrawLine(t *testing.T) {
	c := NewCanvas(10, 1)
	c.DrawLine(0, 0, 19, 0)

	for col := 0; col < 10; col++ {
		if !c.Lit(col, 0) {
			t.Errorf("cell %d not lit by horizontal line", col)
		}
	}
}

func TestCanvasString(t *testing.T) {
	c := NewCanvas(5, 3)
	lines := strings.Split(strings.TrimSuffix(c.String(), "\n"), "\n")

	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	for _, l := range lines {
		if utf8.RuneCountInString(l) != 5 {
			t.Errorf("expected 5 cells, got %d", utf8.RuneCountInString(l))
		}
	}
}
