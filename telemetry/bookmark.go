package telemetry

import (
	"fmt"
	"log/slog"
)

// BookmarkType identifies the type of bookmark.
type BookmarkType string

const (
	BookmarkExtinction    BookmarkType = "extinction"
	BookmarkCrash         BookmarkType = "population_crash"
	BookmarkFullSurvival  BookmarkType = "full_survival"
	BookmarkStablePlateau BookmarkType = "stable_plateau"
)

// Bookmark represents an automatically triggered bookmark.
type Bookmark struct {
	Type        BookmarkType `csv:"type" json:"type"`
	Day         int          `csv:"day" json:"day"`
	Tick        int64        `csv:"tick" json:"tick"`
	Description string       `csv:"description" json:"description"`
}

// LogBookmark logs the bookmark using slog.
func (b Bookmark) LogBookmark() {
	slog.Info("bookmark",
		"type", string(b.Type),
		"day", b.Day,
		"tick", b.Tick,
		"description", b.Description,
	)
}

// Crash and plateau thresholds.
const (
	crashDropFraction = 0.5 // Fraction of the day's population lost
	crashMinDrop      = 3   // Ignore crashes smaller than this many creatures
	plateauDays       = 5   // Consecutive days with unchanged survivors
)

// BookmarkDetector detects notable days in the simulation.
type BookmarkDetector struct {
	extinct     bool
	plateauLen  int
	plateauSize int
	plateauHit  bool
}

// NewBookmarkDetector creates a detector.
func NewBookmarkDetector() *BookmarkDetector {
	return &BookmarkDetector{plateauSize: -1}
}

// Check analyzes the latest day and returns any triggered bookmarks.
func (bd *BookmarkDetector) Check(stats DayStats) []Bookmark {
	var bookmarks []Bookmark
	mark := func(t BookmarkType, format string, args ...any) {
		bookmarks = append(bookmarks, Bookmark{
			Type:        t,
			Day:         stats.Day,
			Tick:        stats.EndTick,
			Description: fmt.Sprintf(format, args...),
		})
	}

	if stats.Survivors == 0 && stats.Population > 0 && !bd.extinct {
		bd.extinct = true
		mark(BookmarkExtinction, "Last %d creatures starved on day %d", stats.Population, stats.Day)
	}

	if stats.Starved >= crashMinDrop && float64(stats.Starved) >= crashDropFraction*float64(stats.Population) && stats.Survivors > 0 {
		mark(BookmarkCrash, "Population fell from %d to %d", stats.Population, stats.Survivors)
	}

	if stats.Population > 0 && stats.Starved == 0 {
		mark(BookmarkFullSurvival, "All %d creatures fed", stats.Population)
	}

	if b, ok := bd.checkPlateau(stats); ok {
		bookmarks = append(bookmarks, b)
	}

	return bookmarks
}

// checkPlateau fires once per plateau when the survivor count has held
// steady for plateauDays days.
func (bd *BookmarkDetector) checkPlateau(stats DayStats) (Bookmark, bool) {
	if stats.Survivors == 0 || stats.Survivors != bd.plateauSize {
		bd.plateauSize = stats.Survivors
		bd.plateauLen = 1
		bd.plateauHit = false
		return Bookmark{}, false
	}

	bd.plateauLen++
	if bd.plateauLen < plateauDays || bd.plateauHit {
		return Bookmark{}, false
	}
	bd.plateauHit = true
	return Bookmark{
		Type:        BookmarkStablePlateau,
		Day:         stats.Day,
		Tick:        stats.EndTick,
		Description: fmt.Sprintf("Population held at %d for %d days", stats.Survivors, bd.plateauLen),
	}, true
}
