package telemetry

import "github.com/pthm-cable/evolve/systems"

// Collector accumulates feeding events within a day and produces DayStats.
type Collector struct {
	dayLength int
	foodCount int

	// Current day tracking
	feeds       int
	firstFeed   int
	lastFeed    int
	feedTickSum int
}

// NewCollector creates a new stats collector.
// dayLength: ticks per day
// foodCount: food placed at the start of each day
func NewCollector(dayLength, foodCount int) *Collector {
	c := &Collector{dayLength: dayLength, foodCount: foodCount}
	c.reset()
	return c
}

func (c *Collector) reset() {
	c.feeds = 0
	c.firstFeed = -1
	c.lastFeed = -1
	c.feedTickSum = 0
}

// RecordFeeds records n creatures eating during the tick at tickInDay.
func (c *Collector) RecordFeeds(tickInDay, n int) {
	if n <= 0 {
		return
	}
	if c.firstFeed < 0 {
		c.firstFeed = tickInDay
	}
	c.lastFeed = tickInDay
	c.feeds += n
	c.feedTickSum += tickInDay * n
}

// Feeds returns the number of feeds recorded so far today.
func (c *Collector) Feeds() int {
	return c.feeds
}

// Flush produces a DayStats for the day described by res and resets
// counters for the next day.
// The caller must provide:
// - res: the end-of-day result
// - totalTicks: ticks elapsed since the run began
// - ages: days survived by each survivor, for the oldest-age column
func (c *Collector) Flush(res systems.DayResult, totalTicks int64, ages []int) DayStats {
	var meanFeed float64
	if c.feeds > 0 {
		meanFeed = float64(c.feedTickSum) / float64(c.feeds)
	}

	var rate float64
	if res.Before > 0 {
		rate = float64(res.Survivors) / float64(res.Before)
	}

	oldest := 0
	for _, a := range ages {
		oldest = max(oldest, a)
	}

	stats := DayStats{
		Day:       res.Day,
		EndTick:   totalTicks,
		DayLength: c.dayLength,

		Population: res.Before,
		Survivors:  res.Survivors,
		Starved:    res.Starved,

		FoodPlaced: c.foodCount,
		FoodEaten:  c.feeds,
		FoodLeft:   res.FoodLeft,

		FirstFeedTick: c.firstFeed,
		LastFeedTick:  c.lastFeed,
		MeanFeedTick:  meanFeed,

		SurvivalRate: rate,
		OldestAge:    oldest,
	}

	c.reset()
	return stats
}
