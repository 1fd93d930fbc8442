package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/evolve/config"
)

// csvFile is an output CSV whose header is written with the first record.
type csvFile struct {
	f             *os.File
	headerWritten bool
}

func createCSV(dir, name string) (*csvFile, error) {
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", name, err)
	}
	return &csvFile{f: f}, nil
}

// writeCSV appends records, emitting the header only on the first write.
func writeCSV[T any](c *csvFile, records []T) error {
	if c.headerWritten {
		return gocsv.MarshalWithoutHeaders(records, c.f)
	}
	if err := gocsv.Marshal(records, c.f); err != nil {
		return err
	}
	c.headerWritten = true
	return nil
}

// OutputManager handles structured experiment output with CSV logging.
type OutputManager struct {
	dir       string
	days      *csvFile
	perf      *csvFile
	bookmarks *csvFile
	lifetimes *csvFile
}

// NewOutputManager creates a new output manager and initializes the output directory.
// Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir}
	var err error
	if om.days, err = createCSV(dir, "days.csv"); err != nil {
		return nil, err
	}
	if om.perf, err = createCSV(dir, "perf.csv"); err != nil {
		om.Close()
		return nil, err
	}
	if om.bookmarks, err = createCSV(dir, "bookmarks.csv"); err != nil {
		om.Close()
		return nil, err
	}
	if om.lifetimes, err = createCSV(dir, "lifetimes.csv"); err != nil {
		om.Close()
		return nil, err
	}

	return om, nil
}

// WriteConfig saves the current configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteDay writes a day stats record to days.csv.
func (om *OutputManager) WriteDay(stats DayStats) error {
	if om == nil {
		return nil
	}
	if err := writeCSV(om.days, []DayStats{stats}); err != nil {
		return fmt.Errorf("writing day stats: %w", err)
	}
	return nil
}

// WritePerf writes a performance stats record to perf.csv.
func (om *OutputManager) WritePerf(stats PerfStats, day int) error {
	if om == nil {
		return nil
	}
	if err := writeCSV(om.perf, []PerfStatsCSV{stats.ToCSV(day)}); err != nil {
		return fmt.Errorf("writing perf: %w", err)
	}
	return nil
}

// WriteBookmark writes a bookmark record to bookmarks.csv.
func (om *OutputManager) WriteBookmark(b Bookmark) error {
	if om == nil {
		return nil
	}
	if err := writeCSV(om.bookmarks, []Bookmark{b}); err != nil {
		return fmt.Errorf("writing bookmark: %w", err)
	}
	return nil
}

// WriteLifetimes appends dead creatures to lifetimes.csv.
func (om *OutputManager) WriteLifetimes(lifetimes []Lifetime) error {
	if om == nil || len(lifetimes) == 0 {
		return nil
	}
	if err := writeCSV(om.lifetimes, lifetimes); err != nil {
		return fmt.Errorf("writing lifetimes: %w", err)
	}
	return nil
}

// WriteHallOfFame saves the hall as halloffame.json.
func (om *OutputManager) WriteHallOfFame(hof *HallOfFame) error {
	if om == nil {
		return nil
	}
	return hof.Save(filepath.Join(om.dir, "halloffame.json"))
}

// WriteSummary writes the run summary as a one-row summary.csv.
func (om *OutputManager) WriteSummary(s RunSummary) error {
	if om == nil {
		return nil
	}
	f, err := os.Create(filepath.Join(om.dir, "summary.csv"))
	if err != nil {
		return fmt.Errorf("creating summary.csv: %w", err)
	}
	defer f.Close()

	if err := gocsv.MarshalFile([]RunSummary{s}, f); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}
	return nil
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close flushes and closes all output files.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}

	var firstErr error
	for _, c := range []*csvFile{om.days, om.perf, om.bookmarks, om.lifetimes} {
		if c == nil {
			continue
		}
		if err := c.f.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// ReadDays loads a days.csv written by an OutputManager.
func ReadDays(path string) ([]DayStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var days []DayStats
	if err := gocsv.UnmarshalFile(f, &days); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return days, nil
}
