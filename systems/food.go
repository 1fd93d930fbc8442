package systems

import (
	"errors"
	"fmt"

	"github.com/pthm-cable/evolve/components"
)

// ErrFoodCapacity is returned when more food is requested than the grid
// has cells to hold it.
var ErrFoodCapacity = errors.New("food count exceeds grid capacity")

// FoodField is the set of cells currently holding one unit of food.
// Positions are kept in a slice as well as an index map so that iteration
// order, and therefore a seeded run, never depends on map ordering.
type FoodField struct {
	grid  *Grid
	cells []components.Position
	index map[components.Position]int
}

// NewFoodField creates an empty food field on grid.
func NewFoodField(grid *Grid) *FoodField {
	return &FoodField{
		grid:  grid,
		index: make(map[components.Position]int),
	}
}

// Initialize clears the field and places exactly count units on distinct
// random cells.
func (f *FoodField) Initialize(count int) error {
	if count < 0 {
		return fmt.Errorf("initializing food: negative count %d", count)
	}
	if count > f.grid.Cells() {
		return fmt.Errorf("initializing food: %d units on %d cells: %w", count, f.grid.Cells(), ErrFoodCapacity)
	}

	f.cells = f.cells[:0]
	clear(f.index)

	for len(f.cells) < count {
		pos := f.grid.RandomInteriorPosition()
		if _, ok := f.index[pos]; ok {
			continue
		}
		f.index[pos] = len(f.cells)
		f.cells = append(f.cells, pos)
	}
	return nil
}

// Contains reports whether p holds food.
func (f *FoodField) Contains(p components.Position) bool {
	_, ok := f.index[p]
	return ok
}

// Remove takes the food at p. Callers check Contains first; removing from an
// empty cell means the engine state is corrupt and panics.
func (f *FoodField) Remove(p components.Position) {
	i, ok := f.index[p]
	if !ok {
		panic(fmt.Sprintf("systems: remove of absent food at %v", p))
	}

	last := len(f.cells) - 1
	moved := f.cells[last]
	f.cells[i] = moved
	f.index[moved] = i
	f.cells = f.cells[:last]
	delete(f.index, p)
}

// Len returns the number of food units on the grid.
func (f *FoodField) Len() int {
	return len(f.cells)
}

// Positions returns a copy of the food positions.
func (f *FoodField) Positions() []components.Position {
	out := make([]components.Position, len(f.cells))
	copy(out, f.cells)
	return out
}
