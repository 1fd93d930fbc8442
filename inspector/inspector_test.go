package inspector

import (
	"math/rand"
	"testing"

	"github.com/pthm-cable/evolve/components"
	"github.com/pthm-cable/evolve/systems"
)

func TestSelectAndInspect(t *testing.T) {
	grid := systems.NewGrid(1, rand.New(rand.NewSource(1)))
	pop := systems.NewPopulation(grid)
	pop.InitializePopulation(1, 2)

	ins := NewInspector(500)
	if _, ok := ins.Inspect(pop); ok {
		t.Fatal("Inspect() with no selection should report false")
	}

	if !ins.Select(components.Position{}, pop) {
		t.Fatal("Select() found no creature on a 1x1 grid")
	}
	data, ok := ins.Inspect(pop)
	if !ok || !data.Alive || data.BornDay != 2 || data.Status != components.StatusActive {
		t.Errorf("Inspect() = %+v, %v", data, ok)
	}

	// The creature never ate, so the cull removes it.
	pop.Cull()
	data, ok = ins.Inspect(pop)
	if !ok || data.Alive || data.ID != 0 {
		t.Errorf("Inspect() after death = %+v, %v, want dead creature 0", data, ok)
	}

	if ins.Select(components.Position{}, pop) {
		t.Error("Select() on an empty cell should fail")
	}
	if _, ok := ins.Selected(); ok {
		t.Error("empty-cell Select() should clear the selection")
	}
}
