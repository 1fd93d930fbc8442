// Package telemetry provides per-day population tracking, bookmarking, and snapshots.
package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// DayStats holds aggregated statistics for one completed day.
type DayStats struct {
	Day       int   `csv:"day"`
	EndTick   int64 `csv:"end_tick"` // Total ticks elapsed when the day ended
	DayLength int   `csv:"-"`

	// Population at day end, before and after culling
	Population int `csv:"population"`
	Survivors  int `csv:"survivors"`
	Starved    int `csv:"starved"`

	// Food
	FoodPlaced int `csv:"food_placed"`
	FoodEaten  int `csv:"food_eaten"`
	FoodLeft   int `csv:"food_left"`

	// Timing of feeds within the day (ticks since day start)
	FirstFeedTick int     `csv:"first_feed_tick"` // -1 if nobody ate
	LastFeedTick  int     `csv:"last_feed_tick"`  // -1 if nobody ate
	MeanFeedTick  float64 `csv:"mean_feed_tick"`

	SurvivalRate float64 `csv:"survival_rate"`
	OldestAge    int     `csv:"oldest_age"` // Most days survived by any survivor
}

// Percentile returns the empirical p-th quantile of a sorted slice: the
// smallest value with at least p of the data at or below it.
// p should be in [0, 1]. Returns 0 if slice is empty.
func Percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[len(sorted)-1]
	}
	return stat.Quantile(p, stat.Empirical, sorted, nil)
}

// RunSummary aggregates a whole run's DayStats.
type RunSummary struct {
	Days             int     `csv:"days"`
	Extinct          bool    `csv:"extinct"`
	ExtinctionDay    int     `csv:"extinction_day"` // 0 if the population survived
	FinalPopulation  int     `csv:"final_population"`
	MeanSurvivalRate float64 `csv:"mean_survival_rate"`
	StdSurvivalRate  float64 `csv:"std_survival_rate"`
	MeanFoodEaten    float64 `csv:"mean_food_eaten"`
	PopulationP10    float64 `csv:"population_p10"`
	PopulationP50    float64 `csv:"population_p50"`
	PopulationP90    float64 `csv:"population_p90"`
	MeanLifespan     float64 `csv:"mean_lifespan"` // days survived by dead creatures
}

// Summarize computes run-level statistics from per-day records.
func Summarize(days []DayStats) RunSummary {
	var s RunSummary
	s.Days = len(days)
	if len(days) == 0 {
		return s
	}

	// Days on which nobody was alive at day end carry no survival signal
	var rates, eaten, pops []float64
	for _, d := range days {
		pops = append(pops, float64(d.Population))
		eaten = append(eaten, float64(d.FoodEaten))
		if d.Population > 0 {
			rates = append(rates, d.SurvivalRate)
		}
		if d.Survivors == 0 && d.Population > 0 && s.ExtinctionDay == 0 {
			s.ExtinctionDay = d.Day
		}
	}

	last := days[len(days)-1]
	s.FinalPopulation = last.Survivors
	s.Extinct = last.Survivors == 0

	if len(rates) > 0 {
		s.MeanSurvivalRate, s.StdSurvivalRate = stat.MeanStdDev(rates, nil)
		if len(rates) == 1 {
			s.StdSurvivalRate = 0
		}
	}
	s.MeanFoodEaten = stat.Mean(eaten, nil)

	sort.Float64s(pops)
	s.PopulationP10 = Percentile(pops, 0.10)
	s.PopulationP50 = Percentile(pops, 0.50)
	s.PopulationP90 = Percentile(pops, 0.90)

	return s
}

// LogValue implements slog.LogValuer for structured logging.
func (s DayStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("day", s.Day),
		slog.Int64("end_tick", s.EndTick),
		slog.Int("population", s.Population),
		slog.Int("survivors", s.Survivors),
		slog.Int("starved", s.Starved),
		slog.Int("food_eaten", s.FoodEaten),
		slog.Int("food_left", s.FoodLeft),
		slog.Int("first_feed_tick", s.FirstFeedTick),
		slog.Int("last_feed_tick", s.LastFeedTick),
		slog.Float64("survival_rate", s.SurvivalRate),
		slog.Int("oldest_age", s.OldestAge),
	)
}

// LogStats logs the day stats using slog.
func (s DayStats) LogStats() {
	slog.Info("day_end", "stats", s)
}

// LogValue implements slog.LogValuer for structured logging.
func (s RunSummary) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("days", s.Days),
		slog.Bool("extinct", s.Extinct),
		slog.Int("extinction_day", s.ExtinctionDay),
		slog.Int("final_population", s.FinalPopulation),
		slog.Float64("mean_survival_rate", s.MeanSurvivalRate),
		slog.Float64("std_survival_rate", s.StdSurvivalRate),
		slog.Float64("mean_food_eaten", s.MeanFoodEaten),
		slog.Float64("population_p50", s.PopulationP50),
		slog.Float64("mean_lifespan", s.MeanLifespan),
	)
}
