package telemetry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pthm-cable/evolve/components"
	"github.com/pthm-cable/evolve/systems"
)

// SnapshotVersion is incremented when the format changes.
const SnapshotVersion = 1

// Snapshot is a point-in-time copy of the simulation for observers and
// offline inspection. It is never loaded back into an engine.
type Snapshot struct {
	Version int   `json:"version"`
	RNGSeed int64 `json:"rng_seed"`

	GridSize  int `json:"grid_size"`
	FoodCount int `json:"food_count"`
	DayLength int `json:"day_length"`

	Tick      int64 `json:"tick"`
	TickInDay int   `json:"tick_in_day"`
	Day       int   `json:"day"`

	Creatures []systems.CreatureState `json:"creatures"`
	Food      []components.Position   `json:"food"`

	Bookmark *Bookmark `json:"bookmark,omitempty"`
}

// Population returns the number of creatures in the snapshot.
func (s *Snapshot) Population() int {
	return len(s.Creatures)
}

// SaveSnapshot writes a snapshot to disk.
// Returns the filepath where it was saved.
func SaveSnapshot(snapshot *Snapshot, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create snapshot dir: %w", err)
	}

	name := fmt.Sprintf("snapshot_d%d_t%d", snapshot.Day, snapshot.Tick)
	if snapshot.Bookmark != nil {
		sanitized := strings.ReplaceAll(string(snapshot.Bookmark.Type), " ", "_")
		name += "_" + sanitized
	}
	path := filepath.Join(dir, name+".json")

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write snapshot: %w", err)
	}
	return path, nil
}

// LoadSnapshot reads a snapshot written by SaveSnapshot.
func LoadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}
	if snapshot.Version != SnapshotVersion {
		return nil, fmt.Errorf("unsupported snapshot version %d (expected %d)", snapshot.Version, SnapshotVersion)
	}
	return &snapshot, nil
}
