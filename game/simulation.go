package game

import (
	"fmt"

	"github.com/pthm-cable/evolve/telemetry"
)

// Tick advances the simulation by one step: every Active creature moves
// once in order, then the day clock advances and, at the day boundary, the
// end-of-day cull and reset run.
func (g *Game) Tick() {
	g.perfCollector.StartTick()

	g.perfCollector.StartPhase(telemetry.PhaseCreatures)
	fed := g.pop.StepAll(g.food)
	g.collector.RecordFeeds(g.cycle.TickInDay(), fed)

	g.cycle.AdvanceTick()
	g.totalTicks++

	if g.cycle.IsDayComplete() {
		g.perfCollector.StartPhase(telemetry.PhaseDayCycle)
		g.endOfDay()
	}

	if g.observer != nil {
		g.perfCollector.StartPhase(telemetry.PhaseObserver)
		g.observer.Publish(g.Snapshot())
	}

	g.perfCollector.EndTick()
}

// endOfDay resolves the day boundary and records its statistics.
func (g *Game) endOfDay() {
	res, err := g.cycle.EndOfDay(g.pop, g.food, g.cfg.Food.Count)
	if err != nil {
		// Food count was validated against the grid in NewGame.
		panic(fmt.Sprintf("game: %v", err))
	}

	g.perfCollector.StartPhase(telemetry.PhaseTelemetry)
	for _, l := range g.lifetimes.Record(res.Dead, res.Day) {
		g.hallOfFame.Consider(l)
	}
	stats := g.collector.Flush(res, g.totalTicks, g.pop.DaysSurvived())
	g.recordDay(stats)
}
