package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pthm-cable/biots/config"
)

func TestOutputManagerDisabled(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil {
		t.Fatalf("NewOutputManager: %v", err)
	}
	if om != nil {
		t.Fatal("expected nil manager for empty dir")
	}

	// All methods are safe on a nil manager.
	if err := om.WriteTelemetry(WindowStats{}); err != nil {
		t.Errorf("WriteTelemetry on nil: %v", err)
	}
	if err := om.WriteBookmark(Bookmark{}); err != nil {
		t.Errorf("WriteBookmark on nil: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Errorf("Close on nil: %v", err)
	}
	if om.Dir() != "" {
		t.Errorf("Dir() = %q, want empty", om.Dir())
	}
}

func TestOutputManagerWritesCSV(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "run")
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatalf("NewOutputManager: %v", err)
	}

	if err := om.WriteConfig(config.Cfg()); err != nil {
		t.Fatalf("WriteConfig: %v", err)
	}
	for i := 1; i <= 2; i++ {
		if err := om.WriteTelemetry(WindowStats{WindowEndTick: int32(i * 600), Population: 600 - i}); err != nil {
			t.Fatalf("WriteTelemetry: %v", err)
		}
	}
	if err := om.WritePerf(PerfStats{TicksPerSecond: 500}, 1200); err != nil {
		t.Fatalf("WritePerf: %v", err)
	}
	if err := om.WriteBookmark(Bookmark{Type: BookmarkExtinction, Tick: 1200, Description: "gone"}); err != nil {
		t.Fatalf("WriteBookmark: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "telemetry.csv"))
	if err != nil {
		t.Fatalf("reading telemetry.csv: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("telemetry.csv has %d lines, want header + 2 rows", len(lines))
	}
	if !strings.HasPrefix(lines[0], "window_end,population,") {
		t.Errorf("unexpected header %q", lines[0])
	}
	if !strings.HasPrefix(lines[2], "1200,598,") {
		t.Errorf("unexpected second row %q", lines[2])
	}

	data, err = os.ReadFile(filepath.Join(dir, PerfFile))
	if err != nil {
		t.Fatalf("reading perf.csv: %v", err)
	}
	if !strings.HasPrefix(string(data), "window_end,avg_tick_us,") {
		t.Errorf("unexpected perf.csv header: %q", data)
	}

	data, err = os.ReadFile(filepath.Join(dir, "bookmarks.csv"))
	if err != nil {
		t.Fatalf("reading bookmarks.csv: %v", err)
	}
	if !strings.Contains(string(data), "extinction,1200,gone") {
		t.Errorf("bookmarks.csv missing row: %q", data)
	}

	if _, err := os.Stat(filepath.Join(dir, "config.yaml")); err != nil {
		t.Errorf("config.yaml not written: %v", err)
	}
}
