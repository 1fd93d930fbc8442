package main

import (
	"math"
	"sync"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/evolve/config"
	"github.com/pthm-cable/evolve/game"
)

// extinctionPenalty is added per extinct seed, scaled by how early it died.
const extinctionPenalty = 1.0

// FitnessEvaluator runs headless simulations and scores how close the
// population's daily survival rate comes to a target.
type FitnessEvaluator struct {
	params     *ParamVector
	days       int
	seeds      []int64
	baseConfig *config.Config
	target     float64

	mu          sync.Mutex
	lastRate    float64
	lastExtinct int
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, days int, seeds []int64, baseCfg *config.Config, target float64) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:     params,
		days:       days,
		seeds:      seeds,
		baseConfig: baseCfg,
		target:     target,
	}
}

// LastRate returns the mean survival rate from the most recent evaluation.
func (fe *FitnessEvaluator) LastRate() float64 {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastRate
}

// LastExtinct returns how many seeds died out in the most recent evaluation.
func (fe *FitnessEvaluator) LastExtinct() int {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastExtinct
}

// seedResult holds the result from one seed evaluation.
type seedResult struct {
	rate          float64
	extinct       bool
	extinctionDay int
}

// Evaluate computes fitness for a raw parameter vector (lower = better).
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	cfg := fe.baseConfig.Clone()
	fe.params.ApplyToConfig(cfg, x)

	// Run all seeds in parallel
	results := make([]seedResult, len(fe.seeds))
	var wg sync.WaitGroup
	for i, seed := range fe.seeds {
		wg.Add(1)
		go func(idx int, s int64) {
			defer wg.Done()
			results[idx] = fe.runSimulation(cfg.Clone(), s)
		}(i, seed)
	}
	wg.Wait()

	rates := make([]float64, len(results))
	extinct := 0
	var penalty float64
	for i, r := range results {
		rates[i] = r.rate
		if r.extinct {
			extinct++
			penalty += extinctionPenalty * (1 - float64(r.extinctionDay)/float64(fe.days+1))
		}
	}
	meanRate := stat.Mean(rates, nil)

	fe.mu.Lock()
	fe.lastRate = meanRate
	fe.lastExtinct = extinct
	fe.mu.Unlock()

	return math.Pow(meanRate-fe.target, 2) + penalty/float64(len(results))
}

// runSimulation plays one seed for fe.days days or until extinction.
func (fe *FitnessEvaluator) runSimulation(cfg *config.Config, seed int64) seedResult {
	g, err := game.NewGame(game.Options{
		Config:   cfg,
		Seed:     seed,
		Headless: true,
	})
	if err != nil {
		// Clamped parameters always validate; treat anything else as extinct.
		return seedResult{extinct: true, extinctionDay: 0}
	}

	for len(g.Days()) < fe.days && !g.Extinct() {
		g.Tick()
	}

	s := g.Summary()
	return seedResult{
		rate:          s.MeanSurvivalRate,
		extinct:       s.Extinct,
		extinctionDay: s.ExtinctionDay,
	}
}
