package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pthm-cable/evolve/config"
)

func TestOutputManagerDisabled(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil || om != nil {
		t.Fatalf("NewOutputManager(\"\") = %v, %v; want nil, nil", om, err)
	}
	// Nil manager methods are no-ops
	if err := om.WriteDay(DayStats{}); err != nil {
		t.Errorf("WriteDay on nil manager: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Errorf("Close on nil manager: %v", err)
	}
}

func TestOutputManagerWritesDays(t *testing.T) {
	dir := t.TempDir()
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatalf("NewOutputManager failed: %v", err)
	}

	for day := 1; day <= 3; day++ {
		stats := DayStats{Day: day, EndTick: int64(day * 300), Population: 10 - day, Survivors: 9 - day, Starved: 1}
		if err := om.WriteDay(stats); err != nil {
			t.Fatalf("WriteDay failed: %v", err)
		}
	}
	if err := om.WriteBookmark(Bookmark{Type: BookmarkCrash, Day: 2, Tick: 600, Description: "test"}); err != nil {
		t.Fatalf("WriteBookmark failed: %v", err)
	}
	if err := om.WriteConfig(config.Default()); err != nil {
		t.Fatalf("WriteConfig failed: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	days, err := ReadDays(filepath.Join(dir, "days.csv"))
	if err != nil {
		t.Fatalf("ReadDays failed: %v", err)
	}
	if len(days) != 3 {
		t.Fatalf("read %d days, want 3", len(days))
	}
	if days[2].Day != 3 || days[2].EndTick != 900 || days[2].Survivors != 6 {
		t.Errorf("unexpected third row: %+v", days[2])
	}

	// Header appears exactly once
	data, err := os.ReadFile(filepath.Join(dir, "days.csv"))
	if err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(string(data), "survival_rate"); n != 1 {
		t.Errorf("header written %d times, want 1", n)
	}

	if _, err := os.Stat(filepath.Join(dir, "config.yaml")); err != nil {
		t.Errorf("config.yaml not written: %v", err)
	}
}

func TestOutputManagerSummary(t *testing.T) {
	dir := t.TempDir()
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatal(err)
	}
	defer om.Close()

	if err := om.WriteSummary(RunSummary{Days: 7, Extinct: true, ExtinctionDay: 7}); err != nil {
		t.Fatalf("WriteSummary failed: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "summary.csv"))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("summary.csv has %d lines, want header + 1 row", len(lines))
	}
	if !strings.HasPrefix(lines[1], "7,true,7,") {
		t.Errorf("unexpected summary row %q", lines[1])
	}
}

func TestOutputManagerLifetimes(t *testing.T) {
	dir := t.TempDir()
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatal(err)
	}

	if err := om.WriteLifetimes(nil); err != nil {
		t.Fatalf("WriteLifetimes(nil): %v", err)
	}
	for day := 1; day <= 2; day++ {
		if err := om.WriteLifetimes([]Lifetime{{ID: uint32(day), BornDay: 1, DiedDay: day, DaysSurvived: day - 1}}); err != nil {
			t.Fatalf("WriteLifetimes: %v", err)
		}
	}
	hof := NewHallOfFame(5)
	hof.Consider(Lifetime{ID: 2, BornDay: 1, DiedDay: 2, DaysSurvived: 1})
	if err := om.WriteHallOfFame(hof); err != nil {
		t.Fatalf("WriteHallOfFame: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "lifetimes.csv"))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Errorf("lifetimes.csv has %d lines, want header + 2", len(lines))
	}
	if lines[0] != "id,born_day,died_day,days_survived" {
		t.Errorf("header = %q", lines[0])
	}

	if _, err := LoadHallOfFame(filepath.Join(dir, "halloffame.json")); err != nil {
		t.Errorf("halloffame.json not readable: %v", err)
	}
}
