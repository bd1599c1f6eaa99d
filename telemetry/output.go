package telemetry

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/biots/config"
)

// Output file names inside the run directory.
const (
	TelemetryFile = "telemetry.csv"
	PerfFile      = "perf.csv"
	BookmarksFile = "bookmarks.csv"
	ConfigFile    = "config.yaml"
)

// csvSink appends gocsv rows to a file, writing the header with the first row.
type csvSink struct {
	name   string
	file   *os.File
	header bool
}

func createSink(dir, name string) (*csvSink, error) {
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", name, err)
	}
	return &csvSink{name: name, file: f}, nil
}

// write marshals rows, which must be a slice of csv-tagged structs.
func (s *csvSink) write(rows any) error {
	var err error
	if s.header {
		err = gocsv.MarshalWithoutHeaders(rows, s.file)
	} else {
		err = gocsv.Marshal(rows, s.file)
	}
	if err != nil {
		return fmt.Errorf("writing %s: %w", s.name, err)
	}
	s.header = true
	return nil
}

// OutputManager writes a run's telemetry, perf and bookmark CSVs plus a
// config snapshot into one directory. A nil *OutputManager discards
// everything, so callers need not check whether output is enabled.
type OutputManager struct {
	dir       string
	telemetry *csvSink
	perf      *csvSink
	bookmarks *csvSink
}

// NewOutputManager creates dir and the CSV files in it. It returns nil
// when dir is empty.
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir}
	for _, target := range []struct {
		sink **csvSink
		name string
	}{
		{&om.telemetry, TelemetryFile},
		{&om.perf, PerfFile},
		{&om.bookmarks, BookmarksFile},
	} {
		s, err := createSink(dir, target.name)
		if err != nil {
			om.Close()
			return nil, err
		}
		*target.sink = s
	}
	return om, nil
}

// WriteConfig saves the effective configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, ConfigFile))
}

// WriteTelemetry appends one window to telemetry.csv.
func (om *OutputManager) WriteTelemetry(stats WindowStats) error {
	if om == nil {
		return nil
	}
	return om.telemetry.write([]WindowStats{stats})
}

// WritePerf appends the perf stats of the window ending at windowEnd to perf.csv.
func (om *OutputManager) WritePerf(stats PerfStats, windowEnd int32) error {
	if om == nil {
		return nil
	}
	return om.perf.write([]PerfRecord{stats.Record(windowEnd)})
}

// WriteBookmark appends a bookmark to bookmarks.csv.
func (om *OutputManager) WriteBookmark(b Bookmark) error {
	if om == nil {
		return nil
	}
	return om.bookmarks.write([]Bookmark{b})
}

// Dir returns the output directory ("" when output is disabled).
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close closes every open file.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}
	var errs []error
	for _, s := range []*csvSink{om.telemetry, om.perf, om.bookmarks} {
		if s == nil {
			continue
		}
		if err := s.file.Close(); err != nil {
			errs = append(errs, fmt.Errorf("closing %s: %w", s.name, err))
		}
	}
	return errors.Join(errs...)
}
