// Package renderer draws the simulation grid with raylib.
package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/evolve/components"
	"github.com/pthm-cable/evolve/systems"
)

// Palette holds the colors used to draw the grid.
type Palette struct {
	Background rl.Color
	GridLine   rl.Color
	Food       rl.Color
	Creature   rl.Color
	Fed        rl.Color
}

// DefaultPalette matches the classic look: white board, gray lines, green
// food, red creatures.
func DefaultPalette() Palette {
	return Palette{
		Background: rl.White,
		GridLine:   rl.NewColor(200, 200, 200, 255),
		Food:       rl.NewColor(0, 255, 0, 255),
		Creature:   rl.NewColor(255, 0, 0, 255),
		Fed:        rl.NewColor(160, 0, 0, 255),
	}
}

// GridRenderer draws food and creatures as filled cells.
type GridRenderer struct {
	gridSize int32
	cellSize int32
	palette  Palette
}

// NewGridRenderer creates a renderer for a gridSize x gridSize board with
// cellSize pixel cells.
func NewGridRenderer(gridSize, cellSize int, palette Palette) *GridRenderer {
	return &GridRenderer{
		gridSize: int32(gridSize),
		cellSize: int32(cellSize),
		palette:  palette,
	}
}

// WindowSize returns the board size in pixels.
func (r *GridRenderer) WindowSize() int32 {
	return r.gridSize * r.cellSize
}

// CellRect returns the pixel rectangle of a cell.
func (r *GridRenderer) CellRect(p components.Position) rl.Rectangle {
	return rl.Rectangle{
		X:      float32(int32(p.X) * r.cellSize),
		Y:      float32(int32(p.Y) * r.cellSize),
		Width:  float32(r.cellSize),
		Height: float32(r.cellSize),
	}
}

// Draw renders the board. Must be called between BeginDrawing and EndDrawing.
func (r *GridRenderer) Draw(food []components.Position, creatures []systems.CreatureState) {
	rl.ClearBackground(r.palette.Background)
	r.drawGridLines()

	for _, p := range food {
		rl.DrawRectangleRec(r.CellRect(p), r.palette.Food)
	}

	for _, c := range creatures {
		color := r.palette.Creature
		if c.Status == components.StatusFed {
			color = r.palette.Fed
		}
		rl.DrawRectangleRec(r.CellRect(c.Pos), color)
	}
}

func (r *GridRenderer) drawGridLines() {
	size := r.WindowSize()
	for x := int32(0); x < size; x += r.cellSize {
		rl.DrawLine(x, 0, x, size, r.palette.GridLine)
	}
	for y := int32(0); y < size; y += r.cellSize {
		rl.DrawLine(0, y, size, y, r.palette.GridLine)
	}
}
