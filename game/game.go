// Package game runs a biot population: the per-tick orchestration plus the
// host loop with telemetry, input and drawing.
package game

import (
	"log/slog"

	"github.com/pthm-cable/biots/camera"
	"github.com/pthm-cable/biots/config"
	"github.com/pthm-cable/biots/renderer"
	"github.com/pthm-cable/biots/rng"
	"github.com/pthm-cable/biots/systems"
	"github.com/pthm-cable/biots/telemetry"
	"github.com/pthm-cable/biots/ui"
)

// Options configures a Game.
type Options struct {
	Seed           int64
	LogStats       bool
	StatsWindow    int // ticks per telemetry window (0 = use config)
	OutputDir      string
	Headless       bool
	StepsPerUpdate int
	StatsCallback  func(telemetry.WindowStats)
}

// Game holds the complete simulation state and its host-side services.
type Game struct {
	pop  *Population
	src  rng.Source
	seed int64

	// State
	tick           int32
	paused         bool
	stepsPerUpdate int
	extinct        bool

	// Telemetry
	collector        *telemetry.Collector
	perfCollector    *telemetry.PerfCollector
	bookmarkDetector *telemetry.BookmarkDetector
	outputManager    *telemetry.OutputManager
	lastStats        telemetry.WindowStats
	logStats         bool
	statsCallback    func(telemetry.WindowStats)

	// Rendering (nil in headless mode)
	headless      bool
	screenWidth   int32
	screenHeight  int32
	camera        *camera.Camera
	biotRenderer  *renderer.BiotRenderer
	hud           *ui.HUD
	controlsPanel *ui.ControlsPanel
	perfPanel     *ui.PerfPanel
	traitPanel    *ui.TraitPanel
	showPerf      bool
	showTraits    bool
}

// NewGameWithOptions creates a game seeded with the configured initial population.
func NewGameWithOptions(opts Options) *Game {
	cfg := config.Cfg()

	statsWindow := cfg.Telemetry.StatsWindow
	if opts.StatsWindow > 0 {
		statsWindow = opts.StatsWindow
	}
	steps := opts.StepsPerUpdate
	if steps < 1 {
		steps = 1
	}

	g := &Game{
		src:              rng.New(opts.Seed),
		seed:             opts.Seed,
		stepsPerUpdate:   steps,
		collector:        telemetry.NewCollector(statsWindow),
		perfCollector:    telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		bookmarkDetector: telemetry.NewBookmarkDetector(cfg.Telemetry.BookmarkHistorySize, cfg.Bookmarks),
		logStats:         opts.LogStats,
		statsCallback:    opts.StatsCallback,
		headless:         opts.Headless,
	}

	bounds := systems.Bounds{Width: cfg.Derived.WorldW32, Height: cfg.Derived.WorldH32}
	g.pop = CreatePopulation(cfg.Population.Initial, bounds, g.src)
	g.pop.SetPhaseTimer(g.perfCollector)

	if opts.OutputDir != "" {
		om, err := telemetry.NewOutputManager(opts.OutputDir)
		if err != nil {
			slog.Error("failed to create output manager", "error", err)
		} else {
			g.outputManager = om
			if err := om.WriteConfig(cfg); err != nil {
				slog.Error("failed to write config", "error", err)
			}
		}
	}

	if !g.headless {
		g.initRendering(int32(cfg.Screen.Width), int32(cfg.Screen.Height))
	}

	return g
}

// Update handles input and runs the configured number of ticks unless paused.
func (g *Game) Update() {
	g.handleInput()
	g.perfCollector.RecordFrame()

	if g.paused {
		return
	}
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.step()
	}
}

// UpdateHeadless runs ticks without touching the window or input.
func (g *Game) UpdateHeadless() {
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.step()
	}
}

// step runs a single tick and its telemetry.
func (g *Game) step() {
	g.perfCollector.StartTick()
	processed := g.pop.Len()

	g.pop.Step(g.src)
	g.tick++

	g.perfCollector.StartPhase(telemetry.PhaseTelemetry)
	last := g.pop.LastTick()
	g.collector.RecordTick(last.Births, last.Kills, last.Starved, last.OldAge)
	g.flushTelemetry()
	g.checkExtinction()

	g.perfCollector.EndTick(processed)
}

// checkExtinction logs the moment the last biot dies.
func (g *Game) checkExtinction() {
	if g.pop.Len() > 0 {
		g.extinct = false
		return
	}
	if !g.extinct {
		g.extinct = true
		slog.Info("population extinct", "tick", g.tick, "seed", g.seed)
	}
}

// Population returns the simulated population.
func (g *Game) Population() *Population {
	return g.pop
}

// Tick returns the current simulation tick.
func (g *Game) Tick() int32 {
	return g.tick
}

// Extinct reports whether no biots are left.
func (g *Game) Extinct() bool {
	return g.pop.Len() == 0
}

// Unload flushes output files.
func (g *Game) Unload() {
	if err := g.outputManager.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
}
