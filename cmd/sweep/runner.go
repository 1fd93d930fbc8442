package main

import (
	"sync"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/evolve/config"
	"github.com/pthm-cable/evolve/game"
	"github.com/pthm-cable/evolve/telemetry"
)

// Run is one seed of one food setting.
type Run struct {
	FoodCount int
	Seed      int64
}

// RunResult is one row of sweep.csv.
type RunResult struct {
	FoodCount        int     `csv:"food_count"`
	Seed             int64   `csv:"seed"`
	Days             int     `csv:"days"`
	Extinct          bool    `csv:"extinct"`
	ExtinctionDay    int     `csv:"extinction_day"`
	FinalPopulation  int     `csv:"final_population"`
	MeanSurvivalRate float64 `csv:"mean_survival_rate"`
	StdSurvivalRate  float64 `csv:"std_survival_rate"`
	MeanFoodEaten    float64 `csv:"mean_food_eaten"`
	PopulationP50    float64 `csv:"population_p50"`
}

// GroupSummary aggregates all seeds of one food setting.
type GroupSummary struct {
	FoodCount         int
	Runs              int
	ExtinctionRate    float64
	MeanFinalPop      float64
	StdFinalPop       float64
	MeanSurvivalRate  float64
	MeanExtinctionDay float64 // over extinct runs only
}

// Runner executes runs in parallel, each with its own Game and RNG.
type Runner struct {
	base    *config.Config
	maxDays int
	workers int
}

// NewRunner creates a runner that plays each run for at most maxDays days
// on at most workers goroutines.
func NewRunner(base *config.Config, maxDays, workers int) *Runner {
	return &Runner{base: base, maxDays: maxDays, workers: max(workers, 1)}
}

// RunAll executes every run and returns results in input order.
func (r *Runner) RunAll(runs []Run) ([]RunResult, error) {
	results := make([]RunResult, len(runs))
	errs := make([]error, len(runs))

	sem := make(chan struct{}, r.workers)
	var wg sync.WaitGroup
	for i, run := range runs {
		wg.Add(1)
		go func(idx int, run Run) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			results[idx], errs[idx] = r.runOne(run)
		}(i, run)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}

// runOne plays a single run until maxDays days complete or the population
// dies out.
func (r *Runner) runOne(run Run) (RunResult, error) {
	cfg := r.base.Clone()
	cfg.Food.Count = run.FoodCount

	g, err := game.NewGame(game.Options{
		Config:   cfg,
		Seed:     run.Seed,
		Headless: true,
	})
	if err != nil {
		return RunResult{}, err
	}

	for len(g.Days()) < r.maxDays && !g.Extinct() {
		g.Tick()
	}

	return newRunResult(run, g.Summary()), nil
}

func newRunResult(run Run, s telemetry.RunSummary) RunResult {
	return RunResult{
		FoodCount:        run.FoodCount,
		Seed:             run.Seed,
		Days:             s.Days,
		Extinct:          s.Extinct,
		ExtinctionDay:    s.ExtinctionDay,
		FinalPopulation:  s.FinalPopulation,
		MeanSurvivalRate: s.MeanSurvivalRate,
		StdSurvivalRate:  s.StdSurvivalRate,
		MeanFoodEaten:    s.MeanFoodEaten,
		PopulationP50:    s.PopulationP50,
	}
}

// Summarize groups results by food count, preserving first-seen order.
func Summarize(results []RunResult) []GroupSummary {
	var order []int
	groups := make(map[int][]RunResult)
	for _, r := range results {
		if _, ok := groups[r.FoodCount]; !ok {
			order = append(order, r.FoodCount)
		}
		groups[r.FoodCount] = append(groups[r.FoodCount], r)
	}

	summaries := make([]GroupSummary, 0, len(order))
	for _, food := range order {
		rs := groups[food]
		var finals, rates, extinctDays []float64
		for _, r := range rs {
			finals = append(finals, float64(r.FinalPopulation))
			rates = append(rates, r.MeanSurvivalRate)
			if r.Extinct {
				extinctDays = append(extinctDays, float64(r.ExtinctionDay))
			}
		}

		gs := GroupSummary{
			FoodCount:        food,
			Runs:             len(rs),
			ExtinctionRate:   float64(len(extinctDays)) / float64(len(rs)),
			MeanSurvivalRate: stat.Mean(rates, nil),
		}
		gs.MeanFinalPop, gs.StdFinalPop = stat.MeanStdDev(finals, nil)
		if len(finals) == 1 {
			gs.StdFinalPop = 0
		}
		if len(extinctDays) > 0 {
			gs.MeanExtinctionDay = stat.Mean(extinctDays, nil)
		}
		summaries = append(summaries, gs)
	}
	return summaries
}
