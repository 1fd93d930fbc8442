package systems

import (
	"fmt"

	"github.com/pthm-cable/evolve/components"
)

// DayResult summarises one end-of-day transition.
type DayResult struct {
	Day       int // Day that just ended
	Before    int // Population when the day ended
	Survivors int
	Starved   int
	FoodLeft  int // Uneaten food discarded by the rebuild

	Dead []components.Creature // Culled creatures as they were at day end
}

// DayCycle counts ticks within a day and days since the start.
type DayCycle struct {
	length    int
	tickInDay int
	day       int
}

// NewDayCycle creates a cycle of length ticks per day, starting on day 1.
func NewDayCycle(length int) *DayCycle {
	if length < 1 {
		panic("systems: day length must be >= 1")
	}
	return &DayCycle{length: length, day: 1}
}

// AdvanceTick counts one elapsed tick.
func (d *DayCycle) AdvanceTick() {
	d.tickInDay++
}

// IsDayComplete reports whether the day has run its full length.
func (d *DayCycle) IsDayComplete() bool {
	return d.tickInDay >= d.length
}

// TickInDay returns ticks elapsed in the current day.
func (d *DayCycle) TickInDay() int {
	return d.tickInDay
}

// Day returns the current day number.
func (d *DayCycle) Day() int {
	return d.day
}

// Length returns the ticks per day.
func (d *DayCycle) Length() int {
	return d.length
}

// EndOfDay culls creatures that did not eat, resets and relocates the
// survivors, rebuilds the food field to foodCount units and starts the next
// day. Only the driver calls this, once per day boundary.
func (d *DayCycle) EndOfDay(pop *Population, food *FoodField, foodCount int) (DayResult, error) {
	res := DayResult{
		Day:      d.day,
		Before:   pop.Len(),
		FoodLeft: food.Len(),
	}

	res.Dead = pop.Unfed()
	res.Starved = pop.Cull()
	pop.ResetSurvivors()
	res.Survivors = pop.Len()

	if err := food.Initialize(foodCount); err != nil {
		return res, fmt.Errorf("ending day %d: %w", d.day, err)
	}

	d.tickInDay = 0
	d.day++
	return res, nil
}
