package systems

import (
	"fmt"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/evolve/components"
)

// CreatureState is a read-only copy of one creature for observers.
type CreatureState struct {
	ID     uint32              `json:"id"`
	Pos    components.Position `json:"pos"`
	Status components.Status   `json:"status"`
}

// Population owns the creatures. Each creature is an ECS entity carrying a
// Position and a Creature component; order holds the entities in insertion
// order, which is the order moves and feeding are resolved in.
type Population struct {
	world  *ecs.World
	mapper *ecs.Map2[components.Position, components.Creature]
	filter *ecs.Filter1[components.Creature]
	order  []ecs.Entity

	grid   *Grid
	nextID uint32
}

// NewPopulation creates an empty population on grid.
func NewPopulation(grid *Grid) *Population {
	world := ecs.NewWorld()
	return &Population{
		world:  world,
		mapper: ecs.NewMap2[components.Position, components.Creature](world),
		filter: ecs.NewFilter1[components.Creature](world),
		grid:   grid,
	}
}

// InitializePopulation spawns count Active creatures on random cells.
func (p *Population) InitializePopulation(count, day int) {
	for i := 0; i < count; i++ {
		p.spawn(p.grid.RandomInteriorPosition(), day)
	}
}

func (p *Population) spawn(pos components.Position, day int) ecs.Entity {
	c := components.Creature{
		ID:      p.nextID,
		Status:  components.StatusActive,
		BornDay: day,
	}
	p.nextID++

	e := p.mapper.NewEntity(&pos, &c)
	p.order = append(p.order, e)
	return e
}

// StepActiveCreature moves one Active creature a single random step and lets
// it eat if it lands on food. A creature that eats is parked on a random edge
// cell for the rest of the day. Reports whether the creature ate.
func (p *Population) StepActiveCreature(e ecs.Entity, food *FoodField) bool {
	pos, c := p.mapper.Get(e)
	if c.Status != components.StatusActive {
		panic(fmt.Sprintf("systems: step of creature %d with status %s", c.ID, c.Status))
	}

	*pos = p.grid.Step(*pos, p.grid.RandomMove())

	if !food.Contains(*pos) {
		return false
	}
	food.Remove(*pos)
	c.Status = components.StatusFed
	*pos = p.grid.RandomEdgePosition()
	return true
}

// StepAll steps every Active creature in insertion order and returns how
// many ate. Fed creatures are skipped. Several creatures may share a cell;
// when two reach the same food in one tick, the earlier one eats.
func (p *Population) StepAll(food *FoodField) int {
	entities := p.order
	fed := 0
	for _, e := range entities {
		_, c := p.mapper.Get(e)
		if c.Status == components.StatusFed {
			continue
		}
		if p.StepActiveCreature(e, food) {
			fed++
		}
	}
	return fed
}

// Unfed returns a copy of every creature that has not eaten today, in order.
func (p *Population) Unfed() []components.Creature {
	var out []components.Creature
	for _, e := range p.order {
		_, c := p.mapper.Get(e)
		if !c.Fed() {
			out = append(out, *c)
		}
	}
	return out
}

// Cull removes every creature that did not eat today and returns how many
// were removed. Survivors keep their relative order.
func (p *Population) Cull() int {
	kept := p.order[:0]
	starved := 0
	for _, e := range p.order {
		_, c := p.mapper.Get(e)
		if c.Status == components.StatusFed {
			kept = append(kept, e)
			continue
		}
		p.world.RemoveEntity(e)
		starved++
	}
	clear(p.order[len(kept):])
	p.order = kept
	return starved
}

// ResetSurvivors marks every creature Active again and moves each, in order,
// to a fresh random edge cell.
func (p *Population) ResetSurvivors() {
	for _, e := range p.order {
		pos, c := p.mapper.Get(e)
		c.Status = components.StatusActive
		c.DaysSurvived++
		*pos = p.grid.RandomEdgePosition()
	}
}

// Len returns the number of living creatures.
func (p *Population) Len() int {
	return len(p.order)
}

// CountFed returns the number of creatures that have eaten today.
func (p *Population) CountFed() int {
	n := 0
	query := p.filter.Query()
	for query.Next() {
		if query.Get().Fed() {
			n++
		}
	}
	return n
}

// Entities returns a copy of the entity order.
func (p *Population) Entities() []ecs.Entity {
	out := make([]ecs.Entity, len(p.order))
	copy(out, p.order)
	return out
}

// Creature returns a copy of the state of e.
func (p *Population) Creature(e ecs.Entity) (CreatureState, bool) {
	if !p.world.Alive(e) {
		return CreatureState{}, false
	}
	pos, c := p.mapper.Get(e)
	return CreatureState{ID: c.ID, Pos: *pos, Status: c.Status}, true
}

// At returns the first creature, in processing order, standing on pos.
func (p *Population) At(pos components.Position) (ecs.Entity, bool) {
	for _, e := range p.order {
		if cpos, _ := p.mapper.Get(e); *cpos == pos {
			return e, true
		}
	}
	return ecs.Entity{}, false
}

// Details returns copies of e's components, or false if e has died.
func (p *Population) Details(e ecs.Entity) (components.Position, components.Creature, bool) {
	if !p.world.Alive(e) {
		return components.Position{}, components.Creature{}, false
	}
	pos, c := p.mapper.Get(e)
	return *pos, *c, true
}

// Snapshot returns every creature's state in processing order.
func (p *Population) Snapshot() []CreatureState {
	out := make([]CreatureState, 0, len(p.order))
	for _, e := range p.order {
		pos, c := p.mapper.Get(e)
		out = append(out, CreatureState{ID: c.ID, Pos: *pos, Status: c.Status})
	}
	return out
}

// DaysSurvived returns the survived-day count of every creature in order.
func (p *Population) DaysSurvived() []int {
	out := make([]int, 0, len(p.order))
	for _, e := range p.order {
		_, c := p.mapper.Get(e)
		out = append(out, c.DaysSurvived)
	}
	return out
}
