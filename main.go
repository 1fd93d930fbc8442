package main

import (
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/evolve/config"
	"github.com/pthm-cable/evolve/game"
	"github.com/pthm-cable/evolve/observe"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics")
	logDays := flag.Bool("log-days", false, "Output day stats via slog (also enabled by telemetry.log_days)")
	snapshotDir := flag.String("snapshot-dir", "", "Directory for bookmark snapshot files")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = config seed, then time-based)")
	maxTicks := flag.Int64("max-ticks", 0, "Stop after N ticks (0 = unlimited)")
	maxDays := flag.Int("max-days", 0, "Stop after N completed days (0 = unlimited)")
	stopOnExtinction := flag.Bool("stop-on-extinction", true, "Stop headless runs when the population dies out")
	stepsPerUpdate := flag.Int("steps-per-update", 1, "Simulation ticks per update call (higher = faster runs)")
	serveAddr := flag.String("serve", "", "Serve websocket snapshots on this address, e.g. :8080 (empty = observer.addr)")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	// Set up seed
	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = cfg.Seed
	}
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	addr := *serveAddr
	if addr == "" {
		addr = cfg.Observer.Addr
	}

	// Build game options
	opts := game.Options{
		Seed:           rngSeed,
		LogDays:        *logDays || cfg.Telemetry.LogDays,
		SnapshotDir:    *snapshotDir,
		OutputDir:      *outputDir,
		Headless:       *headless,
		StepsPerUpdate: *stepsPerUpdate,
	}

	var hub *observe.Hub
	if addr != "" {
		hub = startObserver(addr, cfg, rngSeed)
		defer hub.Close()
		opts.Observer = hub
	}

	done := func(g *game.Game) bool {
		if *maxTicks > 0 && g.TotalTicks() >= *maxTicks {
			slog.Info("max ticks reached", "tick", g.TotalTicks())
			return true
		}
		if *maxDays > 0 && len(g.Days()) >= *maxDays {
			slog.Info("max days reached", "day", g.Day(), "tick", g.TotalTicks())
			return true
		}
		return false
	}

	if *headless {
		// Headless mode - pure CPU simulation, no raylib needed
		g, err := game.NewGame(opts)
		if err != nil {
			slog.Error("failed to create game", "error", err)
			os.Exit(1)
		}
		defer g.Unload()

		slog.Info("starting headless simulation",
			"seed", rngSeed,
			"grid_size", cfg.World.GridSize,
			"food", cfg.Food.Count,
			"population", cfg.Population.Initial,
			"day_length", cfg.Day.LengthTicks,
			"max_ticks", *maxTicks,
			"max_days", *maxDays,
			"steps_per_update", *stepsPerUpdate,
		)

		// Viewers need real-time pacing; otherwise run flat out.
		var pace <-chan time.Time
		if hub != nil {
			ticker := time.NewTicker(time.Second / time.Duration(cfg.Screen.TargetFPS))
			defer ticker.Stop()
			pace = ticker.C
		}

		for {
			if pace != nil {
				<-pace
			}
			g.UpdateHeadless()

			if done(g) {
				break
			}
			if *stopOnExtinction && g.Extinct() {
				slog.Info("stopping after extinction", "day", g.ExtinctionDay(), "tick", g.TotalTicks())
				break
			}
		}
		slog.Info("run_summary", "summary", g.Summary())
		return
	}

	// Graphical mode
	rl.InitWindow(cfg.Derived.WindowSize, cfg.Derived.WindowSize, cfg.Screen.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	g, err := game.NewGame(opts)
	if err != nil {
		slog.Error("failed to create game", "error", err)
		os.Exit(1)
	}
	defer g.Unload()

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()

		if done(g) {
			break
		}
	}
	slog.Info("run_summary", "summary", g.Summary())
}

// startObserver serves the websocket hub in the background.
func startObserver(addr string, cfg *config.Config, seed int64) *observe.Hub {
	hub := observe.NewHub(observe.ConfigMessage{
		GridSize:  cfg.World.GridSize,
		CellSize:  cfg.Screen.CellSize,
		FoodCount: cfg.Food.Count,
		DayLength: cfg.Day.LengthTicks,
		Seed:      seed,
	}, cfg.Observer.SendBuffer)

	mux := http.NewServeMux()
	mux.Handle("/ws", hub)

	go func() {
		slog.Info("observer listening", "addr", addr)
		if err := http.ListenAndServe(addr, mux); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("observer stopped", "error", err)
		}
	}()
	return hub
}
