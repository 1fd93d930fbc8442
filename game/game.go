// Package game drives the simulation: it owns the engine state, advances it
// one tick at a time and feeds telemetry, observers and the renderer.
package game

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/pthm-cable/evolve/camera"
	"github.com/pthm-cable/evolve/components"
	"github.com/pthm-cable/evolve/config"
	"github.com/pthm-cable/evolve/inspector"
	"github.com/pthm-cable/evolve/renderer"
	"github.com/pthm-cable/evolve/systems"
	"github.com/pthm-cable/evolve/telemetry"
	"github.com/pthm-cable/evolve/ui"
)

// Observer receives a snapshot after every tick. Implementations must not
// retain the snapshot's slices beyond the call unless they copy them.
type Observer interface {
	Publish(s *telemetry.Snapshot)
}

// Options configures game behavior.
type Options struct {
	Config         *config.Config // nil uses config.Cfg()
	Seed           int64
	LogDays        bool   // log day stats via slog
	SnapshotDir    string // directory for bookmark snapshots (empty = disabled)
	OutputDir      string // directory for CSV output (empty = disabled)
	Headless       bool   // skip renderer and UI setup
	StepsPerUpdate int    // ticks per Update call (0 or 1 = normal)
	DayCallback    func(telemetry.DayStats)
	Observer       Observer
}

// Game holds the complete simulation state.
type Game struct {
	cfg  *config.Config
	rng  *rand.Rand
	seed int64

	grid  *systems.Grid
	food  *systems.FoodField
	pop   *systems.Population
	cycle *systems.DayCycle

	totalTicks int64
	extinct    bool
	extinctDay int

	// Telemetry
	collector     *telemetry.Collector
	perfCollector *telemetry.PerfCollector
	bookmarks     *telemetry.BookmarkDetector
	lifetimes     *telemetry.LifetimeTracker
	hallOfFame    *telemetry.HallOfFame
	outputManager *telemetry.OutputManager
	days          []telemetry.DayStats
	logDays       bool
	snapshotDir   string
	dayCallback   func(telemetry.DayStats)
	observer      Observer

	// Presentation
	headless       bool
	paused         bool
	stepsPerUpdate int
	gridRenderer   *renderer.GridRenderer
	hud            *ui.HUD
	statsPanel     *ui.StatsPanel
	camera         *camera.Camera
	inspector      *inspector.Inspector
}

// NewGame creates a game from opts. The configuration is validated first;
// an invalid one yields an error wrapping config.ErrInvalid.
func NewGame(opts Options) (*Game, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Cfg()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.Clone()

	steps := opts.StepsPerUpdate
	if steps < 1 {
		steps = 1
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	grid := systems.NewGrid(cfg.World.GridSize, rng)

	g := &Game{
		cfg:            cfg,
		rng:            rng,
		seed:           opts.Seed,
		grid:           grid,
		food:           systems.NewFoodField(grid),
		pop:            systems.NewPopulation(grid),
		cycle:          systems.NewDayCycle(cfg.Day.LengthTicks),
		collector:      telemetry.NewCollector(cfg.Day.LengthTicks, cfg.Food.Count),
		perfCollector:  telemetry.NewPerfCollector(cfg.Telemetry.PerfWindow),
		bookmarks:      telemetry.NewBookmarkDetector(),
		lifetimes:      telemetry.NewLifetimeTracker(),
		hallOfFame:     telemetry.NewHallOfFame(cfg.Telemetry.HallOfFameSize),
		logDays:        opts.LogDays,
		snapshotDir:    opts.SnapshotDir,
		dayCallback:    opts.DayCallback,
		observer:       opts.Observer,
		headless:       opts.Headless,
		stepsPerUpdate: steps,
	}

	// Food is placed before creatures so a seed reproduces the same layout.
	if err := g.food.Initialize(cfg.Food.Count); err != nil {
		return nil, fmt.Errorf("placing initial food: %w", err)
	}
	g.pop.InitializePopulation(cfg.Population.Initial, g.cycle.Day())

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	g.outputManager = om
	if err := om.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config", "error", err)
	}

	if !opts.Headless {
		g.gridRenderer = renderer.NewGridRenderer(cfg.World.GridSize, cfg.Screen.CellSize, renderer.DefaultPalette())
		g.hud = ui.NewHUD()
		g.statsPanel = ui.NewStatsPanel(cfg.Derived.WindowSize-230, 40, 220)
		size := float32(cfg.Derived.WindowSize)
		g.camera = camera.New(size, size, size, size)
		g.inspector = inspector.NewInspector(cfg.Derived.WindowSize)
	}

	return g, nil
}

// Update handles input and runs stepsPerUpdate ticks unless paused.
func (g *Game) Update() {
	g.handleInput()

	if g.paused {
		return
	}
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.Tick()
	}
}

// UpdateHeadless runs stepsPerUpdate ticks without touching raylib.
func (g *Game) UpdateHeadless() {
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.Tick()
	}
}

// Unload writes the run summary and closes output files.
func (g *Game) Unload() {
	if g.outputManager == nil {
		return
	}
	if err := g.outputManager.WriteSummary(g.Summary()); err != nil {
		slog.Error("failed to write summary", "error", err)
	}
	if err := g.outputManager.WriteHallOfFame(g.hallOfFame); err != nil {
		slog.Error("failed to write hall of fame", "error", err)
	}
	if err := g.outputManager.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
}

// Seed returns the RNG seed the game was created with.
func (g *Game) Seed() int64 {
	return g.seed
}

// TickInDay returns the number of ticks elapsed in the current day.
func (g *Game) TickInDay() int {
	return g.cycle.TickInDay()
}

// Day returns the current day, starting at 1.
func (g *Game) Day() int {
	return g.cycle.Day()
}

// TotalTicks returns the number of ticks run since creation.
func (g *Game) TotalTicks() int64 {
	return g.totalTicks
}

// Population returns the number of living creatures.
func (g *Game) Population() int {
	return g.pop.Len()
}

// Creatures returns a copy of every creature in resolution order.
func (g *Game) Creatures() []systems.CreatureState {
	return g.pop.Snapshot()
}

// Food returns a copy of the remaining food positions.
func (g *Game) Food() []components.Position {
	return g.food.Positions()
}

// Extinct reports whether the population has died out.
func (g *Game) Extinct() bool {
	return g.extinct
}

// Days returns the statistics of every completed day.
func (g *Game) Days() []telemetry.DayStats {
	return append([]telemetry.DayStats(nil), g.days...)
}

// Summary aggregates the completed days.
func (g *Game) Summary() telemetry.RunSummary {
	s := telemetry.Summarize(g.days)
	s.MeanLifespan = g.lifetimes.MeanLifespan()
	return s
}

// HallOfFame returns the longest-lived dead creatures, best first.
func (g *Game) HallOfFame() []telemetry.Lifetime {
	return g.hallOfFame.Entries()
}

// Paused reports whether the graphical loop is paused.
func (g *Game) Paused() bool {
	return g.paused
}

// SetPaused pauses or resumes Update.
func (g *Game) SetPaused(paused bool) {
	g.paused = paused
}

// StepsPerUpdate returns the number of ticks each Update runs.
func (g *Game) StepsPerUpdate() int {
	return g.stepsPerUpdate
}

// SetStepsPerUpdate changes the number of ticks each Update runs.
func (g *Game) SetStepsPerUpdate(n int) {
	g.stepsPerUpdate = max(n, 1)
}
