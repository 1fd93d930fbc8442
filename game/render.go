package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/evolve/inspector"
	"github.com/pthm-cable/evolve/ui"
)

// Draw renders the board, the HUD and the panels.
func (g *Game) Draw() {
	g.perfCollector.RecordFrame()

	rl.BeginDrawing()
	defer rl.EndDrawing()

	rl.BeginMode2D(g.camera.RL())
	g.gridRenderer.Draw(g.food.Positions(), g.pop.Snapshot())
	inspected, hasInspected := g.inspector.Inspect(g.pop)
	if hasInspected && inspected.Alive {
		inspector.DrawHighlight(g.gridRenderer.CellRect(inspected.Pos))
	}
	rl.EndMode2D()

	actions := g.hud.Draw(ui.HUDData{
		Day:            g.cycle.Day(),
		TickInDay:      g.cycle.TickInDay(),
		Population:     g.pop.Len(),
		Paused:         g.paused,
		StepsPerUpdate: g.stepsPerUpdate,
		ScreenWidth:    g.cfg.Derived.WindowSize,
		ScreenHeight:   g.cfg.Derived.WindowSize,
	})
	if actions.TogglePause {
		g.paused = !g.paused
	}
	g.stepsPerUpdate = actions.StepsPerUpdate

	g.statsPanel.Draw(g.statsPanelData())
	if hasInspected {
		g.inspector.Draw(inspected)
	}
}

// statsPanelData gathers the latest day and run figures for the panel.
func (g *Game) statsPanelData() ui.StatsPanelData {
	perf := g.perfCollector.Stats()
	data := ui.StatsPanelData{
		AvgTick:       perf.AvgTickDuration,
		TicksPerSec:   perf.TicksPerSecond,
		ExtinctionDay: g.extinctDay,
	}
	if len(g.days) == 0 {
		return data
	}

	last := g.days[len(g.days)-1]
	data.LastDay = last.Day
	data.Survivors = last.Survivors
	data.Starved = last.Starved
	data.FoodEaten = last.FoodEaten
	data.SurvivalRate = last.SurvivalRate
	data.OldestAge = last.OldestAge
	data.MeanFeedTick = last.MeanFeedTick
	data.MeanSurvival = g.Summary().MeanSurvivalRate
	return data
}
