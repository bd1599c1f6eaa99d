package main

import (
	"flag"
	"io"
	"log/slog"
	"os"

	"github.com/gdamore/tcell/v2"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/biots/config"
	"github.com/pthm-cable/biots/game"
	"github.com/pthm-cable/biots/rng"
	"github.com/pthm-cable/biots/terminal"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics")
	tui := flag.Bool("tui", false, "Show the simulation in the terminal instead of a window")
	logStats := flag.Bool("log-stats", false, "Output stats via slog")
	statsWindow := flag.Int("stats-window", 0, "Stats window size in ticks (0 = use config)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = read from system entropy)")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N ticks (0 = unlimited)")
	stepsPerUpdate := flag.Int("steps-per-update", 1, "Simulation ticks per update call (higher = faster headless runs)")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	var logOut io.Writer = os.Stdout
	if *tui {
		// The terminal belongs to the viewer; CSV output still works.
		logOut = io.Discard
	}
	logger := slog.New(slog.NewJSONHandler(logOut, nil))
	slog.SetDefault(logger)

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	rngSeed := *seed
	if rngSeed == 0 {
		s, err := rng.EntropySeed()
		if err != nil {
			slog.Error("failed to seed random source", "error", err)
			os.Exit(1)
		}
		rngSeed = s
	}

	opts := game.Options{
		Seed:           rngSeed,
		LogStats:       *logStats,
		StatsWindow:    *statsWindow,
		OutputDir:      *outputDir,
		Headless:       *headless || *tui,
		StepsPerUpdate: *stepsPerUpdate,
	}

	if *tui {
		if err := runTerminal(opts, *maxTicks, terminal.OpenScreen); err != nil {
			slog.Error("failed to open terminal", "error", err)
			os.Exit(1)
		}
		return
	}

	if *headless {
		// Headless mode - pure CPU simulation, no raylib needed
		g := game.NewGameWithOptions(opts)
		defer g.Unload()

		slog.Info("starting headless simulation",
			"seed", rngSeed,
			"biots", g.Population().Len(),
			"max_ticks", *maxTicks,
			"steps_per_update", *stepsPerUpdate,
		)

		for {
			g.UpdateHeadless()

			if *maxTicks > 0 && int(g.Tick()) >= *maxTicks {
				slog.Info("max ticks reached", "tick", g.Tick(), "biots", g.Population().Len())
				return
			}
			if g.Extinct() {
				return
			}
		}
	}

	// Graphical mode
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "Biots")
	defer rl.CloseWindow()

	rl.SetWindowState(rl.FlagWindowResizable)
	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	g := game.NewGameWithOptions(opts)
	defer g.Unload()

	slog.Info("starting simulation", "seed", rngSeed, "biots", g.Population().Len())

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()

		if *maxTicks > 0 && int(g.Tick()) >= *maxTicks {
			slog.Info("max ticks reached", "tick", g.Tick(), "biots", g.Population().Len())
			break
		}
	}
}

// runTerminal shows the simulation on a terminal screen until the viewer
// stops. The screen is opened before the game so a terminal failure leaves
// no output files behind.
func runTerminal(opts game.Options, maxTicks int, openScreen func() (tcell.Screen, error)) error {
	screen, err := openScreen()
	if err != nil {
		return err
	}

	g := game.NewGameWithOptions(opts)
	defer g.Unload()

	v := terminal.NewWithScreen(g, screen)
	defer v.Close()

	v.Run(maxTicks)
	return nil
}
