package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/biots/config"
	"github.com/pthm-cable/biots/game"
)

func init() {
	config.MustInit("")
}

func TestRunTerminalWithoutScreenWritesNothing(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "run")
	errNoTTY := errors.New("no tty")

	err := runTerminal(game.Options{Seed: 1, Headless: true, OutputDir: dir}, 10,
		func() (tcell.Screen, error) { return nil, errNoTTY })

	if !errors.Is(err, errNoTTY) {
		t.Fatalf("runTerminal error = %v, want %v", err, errNoTTY)
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Errorf("output directory created despite terminal failure (stat err %v)", err)
	}
}

func TestRunTerminalStopsAtMaxTicks(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "run")
	open := func() (tcell.Screen, error) {
		s := tcell.NewSimulationScreen("UTF-8")
		if err := s.Init(); err != nil {
			return nil, err
		}
		s.SetSize(40, 12)
		return s, nil
	}

	if err := runTerminal(game.Options{Seed: 1, Headless: true, OutputDir: dir}, 3, open); err != nil {
		t.Fatalf("runTerminal: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "telemetry.csv")); err != nil {
		t.Errorf("telemetry.csv not written: %v", err)
	}
}
