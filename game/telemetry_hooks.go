package game

import (
	"log/slog"

	"github.com/pthm-cable/evolve/telemetry"
)

// recordDay stores, logs and writes a completed day, then checks bookmarks.
func (g *Game) recordDay(stats telemetry.DayStats) {
	g.days = append(g.days, stats)

	if g.dayCallback != nil {
		g.dayCallback(stats)
	}

	perfStats := g.perfCollector.Stats()
	if g.logDays {
		stats.LogStats()
		perfStats.LogStats()
	}

	if err := g.outputManager.WriteDay(stats); err != nil {
		slog.Error("failed to write day stats", "error", err)
	}
	if err := g.outputManager.WritePerf(perfStats, stats.Day); err != nil {
		slog.Error("failed to write perf", "error", err)
	}
	if err := g.outputManager.WriteLifetimes(g.lifetimes.TakePending()); err != nil {
		slog.Error("failed to write lifetimes", "error", err)
	}

	if !g.extinct && stats.Survivors == 0 {
		g.extinct = true
		g.extinctDay = stats.Day
		slog.Info("extinction", "day", stats.Day, "tick", stats.EndTick, "seed", g.seed)
	}

	for _, bm := range g.bookmarks.Check(stats) {
		if g.logDays {
			bm.LogBookmark()
		}
		if err := g.outputManager.WriteBookmark(bm); err != nil {
			slog.Error("failed to write bookmark", "error", err)
		}
		if g.snapshotDir != "" {
			g.saveSnapshot(&bm)
		}
	}
}

// saveSnapshot creates and saves a snapshot to disk.
func (g *Game) saveSnapshot(bookmark *telemetry.Bookmark) {
	snapshot := g.Snapshot()
	snapshot.Bookmark = bookmark

	path, err := telemetry.SaveSnapshot(snapshot, g.snapshotDir)
	if err != nil {
		slog.Error("failed to save snapshot", "error", err)
		return
	}

	slog.Info("snapshot saved", "path", path, "tick", g.totalTicks)
}

// Snapshot builds a copy of the current state.
func (g *Game) Snapshot() *telemetry.Snapshot {
	return &telemetry.Snapshot{
		Version:   telemetry.SnapshotVersion,
		RNGSeed:   g.seed,
		GridSize:  g.grid.Size(),
		FoodCount: g.cfg.Food.Count,
		DayLength: g.cycle.Length(),
		Tick:      g.totalTicks,
		TickInDay: g.cycle.TickInDay(),
		Day:       g.cycle.Day(),
		Creatures: g.pop.Snapshot(),
		Food:      g.food.Positions(),
	}
}

// ExtinctionDay returns the day the population died out, or 0.
func (g *Game) ExtinctionDay() int {
	return g.extinctDay
}
