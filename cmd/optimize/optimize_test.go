package main

import (
	"math"
	"testing"

	"github.com/pthm-cable/evolve/config"
)

func TestParamVectorRoundTrip(t *testing.T) {
	cfg := config.Default()
	pv := NewParamVector(cfg)

	if pv.Dim() != 2 {
		t.Fatalf("Dim() = %d, want 2", pv.Dim())
	}
	if hi := pv.Params[0].Hi; hi != 2500 {
		t.Errorf("food max = %v, want 2500 for a 50x50 grid", hi)
	}

	raw := pv.DefaultVector()
	back := pv.Denormalize(pv.Normalize(raw))
	for i := range raw {
		if math.Abs(raw[i]-back[i]) > 1e-9 {
			t.Errorf("param %s: %v -> %v", pv.Params[i].Name, raw[i], back[i])
		}
	}

	out := cfg.Clone()
	pv.ApplyToConfig(out, []float64{-5, 12.6})
	if out.Food.Count != 0 || out.Day.LengthTicks != 13 {
		t.Errorf("ApplyToConfig gave food=%d day=%d, want 0 and 13", out.Food.Count, out.Day.LengthTicks)
	}
	if err := out.Validate(); err != nil {
		t.Errorf("applied config invalid: %v", err)
	}

	got := pv.ExtractFromConfig(out)
	if got[0] != 0 || got[1] != 13 {
		t.Errorf("ExtractFromConfig = %v, want [0 13]", got)
	}
}

func TestEvaluatorPenalizesStarvation(t *testing.T) {
	cfg := config.Default()
	cfg.World.GridSize = 8
	cfg.Population.Initial = 6
	pv := NewParamVector(cfg)
	fe := NewFitnessEvaluator(pv, 5, []int64{1, 2}, cfg, 0.5)

	// No food: every seed dies on day 1.
	starving := fe.Evaluate([]float64{0, 20})
	if fe.LastExtinct() != 2 || fe.LastRate() != 0 {
		t.Errorf("no-food eval: extinct=%d rate=%v, want 2 and 0", fe.LastExtinct(), fe.LastRate())
	}
	if starving <= 0.25 {
		t.Errorf("no-food fitness = %v, want > 0.25", starving)
	}

	// Food on every cell with long days: everyone survives.
	fed := fe.Evaluate([]float64{64, 1000})
	if fe.LastExtinct() != 0 {
		t.Errorf("fully-fed eval: %d extinct seeds, want 0", fe.LastExtinct())
	}
	if fed >= starving {
		t.Errorf("fully-fed fitness %v should beat no-food fitness %v", fed, starving)
	}
}
