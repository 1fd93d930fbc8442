package telemetry

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// HallOfFame keeps the longest-lived creatures of a run, best first.
// Ties go to the creature that died first.
type HallOfFame struct {
	entries []Lifetime
	maxSize int
}

// NewHallOfFame creates a hall holding at most maxSize entries.
func NewHallOfFame(maxSize int) *HallOfFame {
	if maxSize < 1 {
		maxSize = 1
	}
	return &HallOfFame{
		entries: make([]Lifetime, 0, maxSize),
		maxSize: maxSize,
	}
}

// Consider inserts l if it ranks within the hall. Reports whether it was
// inserted.
func (hof *HallOfFame) Consider(l Lifetime) bool {
	idx := sort.Search(len(hof.entries), func(i int) bool {
		return hof.entries[i].DaysSurvived < l.DaysSurvived
	})
	if idx >= hof.maxSize {
		return false
	}

	hof.entries = append(hof.entries, Lifetime{})
	copy(hof.entries[idx+1:], hof.entries[idx:])
	hof.entries[idx] = l

	if len(hof.entries) > hof.maxSize {
		hof.entries = hof.entries[:hof.maxSize]
	}
	return true
}

// Entries returns a copy of the hall, best first.
func (hof *HallOfFame) Entries() []Lifetime {
	return append([]Lifetime(nil), hof.entries...)
}

// Len returns the number of entries.
func (hof *HallOfFame) Len() int {
	return len(hof.entries)
}

// hallOfFameJSON is the on-disk format.
type hallOfFameJSON struct {
	MaxSize int        `json:"max_size"`
	Entries []Lifetime `json:"entries"`
}

// Save writes the hall to path as JSON.
func (hof *HallOfFame) Save(path string) error {
	data, err := json.MarshalIndent(hallOfFameJSON{MaxSize: hof.maxSize, Entries: hof.entries}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal hall of fame: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write hall of fame: %w", err)
	}
	return nil
}

// LoadHallOfFame reads a hall written by Save.
func LoadHallOfFame(path string) (*HallOfFame, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read hall of fame: %w", err)
	}
	var raw hallOfFameJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("unmarshal hall of fame: %w", err)
	}
	hof := NewHallOfFame(raw.MaxSize)
	for _, l := range raw.Entries {
		hof.Consider(l)
	}
	return hof, nil
}
