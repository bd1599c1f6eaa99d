package game

import (
	"log/slog"

	"github.com/pthm-cable/biots/telemetry"
)

// flushTelemetry checks if the stats window should be flushed and handles bookmarks.
func (g *Game) flushTelemetry() {
	if !g.collector.ShouldFlush(g.tick) {
		return
	}

	stats := g.collector.Flush(g.tick, g.samplePopulation())
	perfStats := g.perfCollector.Stats()
	g.lastStats = stats

	if g.statsCallback != nil {
		g.statsCallback(stats)
	}

	if g.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if err := g.outputManager.WriteTelemetry(stats); err != nil {
		slog.Error("failed to write telemetry", "error", err)
	}
	if err := g.outputManager.WritePerf(perfStats, stats.WindowEndTick); err != nil {
		slog.Error("failed to write perf", "error", err)
	}

	for _, bm := range g.bookmarkDetector.Check(stats) {
		if g.logStats {
			bm.LogBookmark()
		}
		if err := g.outputManager.WriteBookmark(bm); err != nil {
			slog.Error("failed to write bookmark", "error", err)
		}
	}
}

// samplePopulation collects per-biot values for distribution stats.
func (g *Game) samplePopulation() *telemetry.PopulationSample {
	sample := &telemetry.PopulationSample{}
	g.pop.Each(func(v BiotView) {
		t := v.Traits
		sample.Add(v.Life, t.Attack, t.Defense, t.Photosynthesis, t.Motion, t.Intelligence)
	})
	return sample
}
