package telemetry

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/evolve/components"
)

// Lifetime is the record of one creature that has died.
type Lifetime struct {
	ID           uint32 `csv:"id" json:"id"`
	BornDay      int    `csv:"born_day" json:"born_day"`
	DiedDay      int    `csv:"died_day" json:"died_day"`
	DaysSurvived int    `csv:"days_survived" json:"days_survived"`
}

// NewLifetime builds the record of c, which starved at the end of diedDay.
func NewLifetime(c components.Creature, diedDay int) Lifetime {
	return Lifetime{
		ID:           c.ID,
		BornDay:      c.BornDay,
		DiedDay:      diedDay,
		DaysSurvived: c.DaysSurvived,
	}
}

// LifetimeTracker accumulates the lifetimes of dead creatures.
type LifetimeTracker struct {
	lifetimes []Lifetime
	pending   []Lifetime // not yet written to disk
}

// NewLifetimeTracker creates an empty tracker.
func NewLifetimeTracker() *LifetimeTracker {
	return &LifetimeTracker{}
}

// Record adds the lifetimes of creatures culled at the end of day.
func (lt *LifetimeTracker) Record(dead []components.Creature, day int) []Lifetime {
	start := len(lt.lifetimes)
	for _, c := range dead {
		l := NewLifetime(c, day)
		lt.lifetimes = append(lt.lifetimes, l)
		lt.pending = append(lt.pending, l)
	}
	return lt.lifetimes[start:]
}

// Deaths returns the number of recorded deaths.
func (lt *LifetimeTracker) Deaths() int {
	return len(lt.lifetimes)
}

// TakePending returns and clears the lifetimes recorded since the last call.
func (lt *LifetimeTracker) TakePending() []Lifetime {
	out := lt.pending
	lt.pending = nil
	return out
}

// MeanLifespan returns the mean days survived by dead creatures, or 0.
func (lt *LifetimeTracker) MeanLifespan() float64 {
	if len(lt.lifetimes) == 0 {
		return 0
	}
	return stat.Mean(lt.spans(), nil)
}

// MaxLifespan returns the most days survived by any dead creature.
func (lt *LifetimeTracker) MaxLifespan() int {
	if len(lt.lifetimes) == 0 {
		return 0
	}
	return int(floats.Max(lt.spans()))
}

func (lt *LifetimeTracker) spans() []float64 {
	spans := make([]float64, len(lt.lifetimes))
	for i, l := range lt.lifetimes {
		spans[i] = float64(l.DaysSurvived)
	}
	return spans
}
