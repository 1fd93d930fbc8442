// Package main runs the simulation headless across many seeds and food
// settings in parallel and reports how often the population survives.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/evolve/config"
)

func main() {
	configPath := flag.String("config", "", "Base config YAML file (empty = use defaults)")
	seeds := flag.Int("seeds", 8, "Number of seeds per food setting")
	baseSeed := flag.Int64("base-seed", 42, "First seed; later seeds are base-seed+1000*i")
	maxDays := flag.Int("max-days", 50, "Stop each run after N days")
	foodCounts := flag.String("food", "", "Comma-separated food counts to sweep (empty = config value)")
	workers := flag.Int("workers", runtime.NumCPU(), "Parallel runs")
	outputDir := flag.String("output", "", "Output directory for sweep.csv (empty = no file)")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	base := config.Cfg()

	foods, err := parseFoodCounts(*foodCounts, base.Food.Count)
	if err != nil {
		slog.Error("invalid -food", "error", err)
		os.Exit(1)
	}

	runs := buildRuns(foods, *seeds, *baseSeed)
	slog.Info("starting sweep",
		"runs", len(runs),
		"food_counts", foods,
		"seeds", *seeds,
		"max_days", *maxDays,
		"workers", *workers,
	)

	start := time.Now()
	results, err := NewRunner(base, *maxDays, *workers).RunAll(runs)
	if err != nil {
		slog.Error("sweep failed", "error", err)
		os.Exit(1)
	}
	slog.Info("sweep complete", "elapsed", time.Since(start).Round(time.Millisecond).String())

	for _, gs := range Summarize(results) {
		slog.Info("food_setting",
			"food", gs.FoodCount,
			"runs", gs.Runs,
			"extinction_rate", gs.ExtinctionRate,
			"mean_final_pop", gs.MeanFinalPop,
			"std_final_pop", gs.StdFinalPop,
			"mean_survival_rate", gs.MeanSurvivalRate,
			"mean_extinction_day", gs.MeanExtinctionDay,
		)
	}

	if *outputDir != "" {
		if err := writeResults(*outputDir, results); err != nil {
			slog.Error("failed to write results", "error", err)
			os.Exit(1)
		}
	}
}

// parseFoodCounts parses a comma-separated list, falling back to def.
func parseFoodCounts(s string, def int) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return []int{def}, nil
	}
	var counts []int
	for _, part := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("parsing food count %q: %w", part, err)
		}
		counts = append(counts, n)
	}
	return counts, nil
}

// buildRuns crosses food counts with seeds.
func buildRuns(foods []int, seeds int, baseSeed int64) []Run {
	runs := make([]Run, 0, len(foods)*seeds)
	for _, food := range foods {
		for i := 0; i < seeds; i++ {
			runs = append(runs, Run{FoodCount: food, Seed: baseSeed + int64(i)*1000})
		}
	}
	return runs
}

func writeResults(dir string, results []RunResult) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	path := filepath.Join(dir, "sweep.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := gocsv.MarshalFile(&results, f); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	slog.Info("results written", "path", path)
	return nil
}
