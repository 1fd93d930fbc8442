package renderer

import (
	"testing"

	"github.com/pthm-cable/evolve/components"
)

func TestCellRect(t *testing.T) {
	r := NewGridRenderer(50, 10, DefaultPalette())

	if r.WindowSize() != 500 {
		t.Errorf("WindowSize() = %d, want 500", r.WindowSize())
	}

	tests := []struct {
		pos  components.Position
		x, y float32
	}{
		{components.Position{X: 0, Y: 0}, 0, 0},
		{components.Position{X: 3, Y: 7}, 30, 70},
		{components.Position{X: 49, Y: 49}, 490, 490},
	}
	for _, tt := range tests {
		rect := r.CellRect(tt.pos)
		if rect.X != tt.x || rect.Y != tt.y || rect.Width != 10 || rect.Height != 10 {
			t.Errorf("CellRect(%v) = %+v, want (%v,%v,10,10)", tt.pos, rect, tt.x, tt.y)
		}
	}
}
