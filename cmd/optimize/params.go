package main

import (
	"math"

	"github.com/pthm-cable/evolve/config"
)

// Param is one integer config field searched by CMA-ES. The optimizer works
// on the unit interval; Lo and Hi map it back to config units.
type Param struct {
	Name   string // config path, used in logs and CSV headers
	Lo, Hi float64

	get func(*config.Config) int
	set func(*config.Config, int)
}

func (p Param) toUnit(v float64) float64   { return (v - p.Lo) / (p.Hi - p.Lo) }
func (p Param) fromUnit(u float64) float64 { return p.Lo + u*(p.Hi-p.Lo) }
func (p Param) bound(v float64) float64    { return math.Min(math.Max(v, p.Lo), p.Hi) }

// ParamVector is the ordered set of searched parameters and the starting
// point taken from the base config.
type ParamVector struct {
	Params []Param
	start  []float64
}

// NewParamVector creates the search space for base. Food is bounded by the
// grid's cell count.
func NewParamVector(base *config.Config) *ParamVector {
	pv := &ParamVector{
		Params: []Param{
			{
				Name: "food.count",
				Lo:   0,
				Hi:   float64(base.World.GridSize * base.World.GridSize),
				get:  func(c *config.Config) int { return c.Food.Count },
				set:  func(c *config.Config, v int) { c.Food.Count = v },
			},
			{
				Name: "day.length_ticks",
				Lo:   10,
				Hi:   1000,
				get:  func(c *config.Config) int { return c.Day.LengthTicks },
				set:  func(c *config.Config, v int) { c.Day.LengthTicks = v },
			},
		},
	}
	pv.start = pv.Clamp(pv.ExtractFromConfig(base))
	return pv
}

// Dim is the search dimension.
func (pv *ParamVector) Dim() int {
	return len(pv.Params)
}

// DefaultVector returns the base config's values, bounded.
func (pv *ParamVector) DefaultVector() []float64 {
	return append([]float64(nil), pv.start...)
}

// Normalize maps config-unit values onto [0,1].
func (pv *ParamVector) Normalize(raw []float64) []float64 {
	return pv.each(raw, Param.toUnit)
}

// Denormalize maps [0,1] values back to config units.
func (pv *ParamVector) Denormalize(unit []float64) []float64 {
	return pv.each(unit, Param.fromUnit)
}

// Clamp bounds every value to its parameter's range.
func (pv *ParamVector) Clamp(v []float64) []float64 {
	return pv.each(v, Param.bound)
}

func (pv *ParamVector) each(v []float64, fn func(Param, float64) float64) []float64 {
	out := make([]float64, len(pv.Params))
	for i, p := range pv.Params {
		out[i] = fn(p, v[i])
	}
	return out
}

// ApplyToConfig writes values into cfg, bounded and rounded to integers.
func (pv *ParamVector) ApplyToConfig(cfg *config.Config, values []float64) {
	for i, p := range pv.Params {
		p.set(cfg, int(math.Round(p.bound(values[i]))))
	}
}

// ExtractFromConfig reads the searched fields from cfg.
func (pv *ParamVector) ExtractFromConfig(cfg *config.Config) []float64 {
	out := make([]float64, len(pv.Params))
	for i, p := range pv.Params {
		out[i] = float64(p.get(cfg))
	}
	return out
}
