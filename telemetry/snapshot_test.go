package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pthm-cable/evolve/components"
	"github.com/pthm-cable/evolve/systems"
)

func TestSnapshotSaveLoad(t *testing.T) {
	tmpDir := t.TempDir()

	snapshot := &Snapshot{
		Version:   SnapshotVersion,
		RNGSeed:   42,
		GridSize:  5,
		FoodCount: 2,
		DayLength: 10,
		Tick:      23,
		TickInDay: 3,
		Day:       3,
		Creatures: []systems.CreatureState{
			{ID: 0, Pos: components.Position{X: 0, Y: 4}, Status: components.StatusFed},
			{ID: 3, Pos: components.Position{X: 2, Y: 2}, Status: components.StatusActive},
		},
		Food: []components.Position{{X: 1, Y: 1}},
		Bookmark: &Bookmark{
			Type:        BookmarkCrash,
			Day:         2,
			Description: "Test bookmark",
		},
	}

	path, err := SaveSnapshot(snapshot, tmpDir)
	if err != nil {
		t.Fatalf("SaveSnapshot failed: %v", err)
	}
	if !strings.Contains(filepath.Base(path), "population_crash") {
		t.Errorf("snapshot name %q missing bookmark type", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"status": "Fed"`) {
		t.Error("expected status encoded by name")
	}

	loaded, err := LoadSnapshot(path)
	if err != nil {
		t.Fatalf("LoadSnapshot failed: %v", err)
	}
	if loaded.Day != 3 || loaded.TickInDay != 3 || loaded.Population() != 2 {
		t.Errorf("loaded day=%d tick=%d pop=%d", loaded.Day, loaded.TickInDay, loaded.Population())
	}
	if loaded.Creatures[0] != snapshot.Creatures[0] {
		t.Errorf("creature mismatch: %+v vs %+v", loaded.Creatures[0], snapshot.Creatures[0])
	}
	if loaded.Bookmark == nil || loaded.Bookmark.Type != BookmarkCrash {
		t.Error("bookmark not preserved")
	}
}

func TestLoadSnapshotRejectsVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "old.json")
	if err := os.WriteFile(path, []byte(`{"version": 99}`), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSnapshot(path); err == nil {
		t.Error("expected version error")
	}
}
