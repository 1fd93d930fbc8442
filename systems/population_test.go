package systems

import (
	"testing"

	"github.com/pthm-cable/evolve/components"
)

func TestInitializePopulation(t *testing.T) {
	g := newTestGrid(10, 5)
	pop := NewPopulation(g)
	pop.InitializePopulation(8, 1)

	if pop.Len() != 8 {
		t.Fatalf("Len() = %d, want 8", pop.Len())
	}
	for i, c := range pop.Snapshot() {
		if c.Status != components.StatusActive {
			t.Errorf("creature %d status = %s, want Active", i, c.Status)
		}
		if !g.InBounds(c.Pos) {
			t.Errorf("creature %d at %v out of bounds", i, c.Pos)
		}
		if c.ID != uint32(i) {
			t.Errorf("creature %d has ID %d", i, c.ID)
		}
	}
}

func TestStepActiveCreatureFeeds(t *testing.T) {
	// On a 1x1 grid every move lands back on the only cell, which holds food.
	g := newTestGrid(1, 1)
	food := NewFoodField(g)
	if err := food.Initialize(1); err != nil {
		t.Fatal(err)
	}
	pop := NewPopulation(g)
	pop.InitializePopulation(1, 1)

	e := pop.Entities()[0]
	if !pop.StepActiveCreature(e, food) {
		t.Fatal("expected creature to eat")
	}
	if food.Len() != 0 {
		t.Errorf("food Len() = %d after eating, want 0", food.Len())
	}
	state, ok := pop.Creature(e)
	if !ok {
		t.Fatal("creature missing after feeding")
	}
	if state.Status != components.StatusFed {
		t.Errorf("status = %s, want Fed", state.Status)
	}
	if pop.CountFed() != 1 {
		t.Errorf("CountFed() = %d, want 1", pop.CountFed())
	}
}

func TestStepFedCreaturePanics(t *testing.T) {
	g := newTestGrid(1, 1)
	food := NewFoodField(g)
	if err := food.Initialize(1); err != nil {
		t.Fatal(err)
	}
	pop := NewPopulation(g)
	pop.InitializePopulation(1, 1)
	e := pop.Entities()[0]
	pop.StepActiveCreature(e, food)

	defer func() {
		if recover() == nil {
			t.Error("expected panic stepping a Fed creature")
		}
	}()
	pop.StepActiveCreature(e, food)
}

func TestStepAllFirstMoverEats(t *testing.T) {
	g := newTestGrid(1, 1)
	food := NewFoodField(g)
	if err := food.Initialize(1); err != nil {
		t.Fatal(err)
	}
	pop := NewPopulation(g)
	pop.InitializePopulation(3, 1)

	if fed := pop.StepAll(food); fed != 1 {
		t.Fatalf("StepAll() fed %d, want 1", fed)
	}

	want := []components.Status{components.StatusFed, components.StatusActive, components.StatusActive}
	for i, c := range pop.Snapshot() {
		if c.Status != want[i] {
			t.Errorf("creature %d status = %s, want %s", i, c.Status, want[i])
		}
	}
}

func TestFedCreatureHoldsPosition(t *testing.T) {
	// Food on every cell, so everyone eats within a few ticks.
	g := newTestGrid(5, 8)
	food := NewFoodField(g)
	if err := food.Initialize(25); err != nil {
		t.Fatal(err)
	}
	pop := NewPopulation(g)
	pop.InitializePopulation(4, 1)

	for i := 0; pop.CountFed() < 4; i++ {
		if i > 1000 {
			t.Fatalf("only %d of 4 creatures fed", pop.CountFed())
		}
		pop.StepAll(food)
	}
	before := pop.Snapshot()
	for _, c := range before {
		if !g.OnEdge(c.Pos) {
			t.Errorf("fed creature %d at %v, want an edge cell", c.ID, c.Pos)
		}
	}

	foodBefore := food.Len()
	for i := 0; i < 20; i++ {
		if fed := pop.StepAll(food); fed != 0 {
			t.Fatalf("StepAll() fed %d creatures a second time", fed)
		}
	}
	after := pop.Snapshot()
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("fed creature changed: %+v -> %+v", before[i], after[i])
		}
	}
	if food.Len() != foodBefore {
		t.Errorf("food changed from %d to %d with only fed creatures", foodBefore, food.Len())
	}
}

func TestStepAllWithoutFood(t *testing.T) {
	g := newTestGrid(5, 3)
	food := NewFoodField(g)
	pop := NewPopulation(g)
	pop.InitializePopulation(6, 1)

	for i := 0; i < 100; i++ {
		if fed := pop.StepAll(food); fed != 0 {
			t.Fatalf("tick %d: %d creatures fed with no food", i, fed)
		}
		for _, c := range pop.Snapshot() {
			if !g.InBounds(c.Pos) {
				t.Fatalf("tick %d: creature %d at %v out of bounds", i, c.ID, c.Pos)
			}
		}
	}
}

func TestCullKeepsFedInOrder(t *testing.T) {
	g := newTestGrid(1, 1)
	food := NewFoodField(g)
	if err := food.Initialize(1); err != nil {
		t.Fatal(err)
	}
	pop := NewPopulation(g)
	pop.InitializePopulation(3, 1)
	pop.StepAll(food)

	entities := pop.Entities()
	unfed := pop.Unfed()
	if len(unfed) != 2 || unfed[0].ID != 1 || unfed[1].ID != 2 {
		t.Fatalf("Unfed() = %+v, want creatures 1 and 2", unfed)
	}
	if starved := pop.Cull(); starved != 2 {
		t.Fatalf("Cull() = %d, want 2", starved)
	}
	if pop.Len() != 1 {
		t.Fatalf("Len() = %d after cull, want 1", pop.Len())
	}
	if got := pop.Snapshot()[0].ID; got != 0 {
		t.Errorf("survivor ID = %d, want 0", got)
	}
	if _, ok := pop.Creature(entities[1]); ok {
		t.Error("culled creature still alive in world")
	}
}

func TestResetSurvivors(t *testing.T) {
	g := newTestGrid(6, 12)
	food := NewFoodField(g)
	if err := food.Initialize(36); err != nil {
		t.Fatal(err)
	}
	pop := NewPopulation(g)
	pop.InitializePopulation(5, 1)
	pop.StepAll(food)
	pop.Cull()
	pop.ResetSurvivors()

	for _, c := range pop.Snapshot() {
		if c.Status != components.StatusActive {
			t.Errorf("survivor %d status = %s, want Active", c.ID, c.Status)
		}
		if !g.OnEdge(c.Pos) {
			t.Errorf("survivor %d at %v, want an edge cell", c.ID, c.Pos)
		}
	}
	for i, d := range pop.DaysSurvived() {
		if d != 1 {
			t.Errorf("creature %d days survived = %d, want 1", i, d)
		}
	}
	if pop.CountFed() != 0 {
		t.Errorf("CountFed() = %d after reset, want 0", pop.CountFed())
	}
}

func TestAtAndDetails(t *testing.T) {
	g := newTestGrid(1, 3)
	pop := NewPopulation(g)
	pop.InitializePopulation(2, 4)

	e, ok := pop.At(components.Position{X: 0, Y: 0})
	if !ok {
		t.Fatal("At((0,0)) found nobody on a 1x1 grid")
	}
	pos, c, ok := pop.Details(e)
	if !ok || c.ID != 0 || c.BornDay != 4 || pos != (components.Position{}) {
		t.Errorf("Details = %v %+v %v, want first creature born day 4", pos, c, ok)
	}

	if _, ok := pop.At(components.Position{X: 1, Y: 0}); ok {
		t.Error("At found a creature off the grid")
	}

	// Nobody has eaten, so the cull removes both.
	pop.Cull()
	if _, _, ok := pop.Details(e); ok {
		t.Error("Details reported a culled creature as alive")
	}
}
