package telemetry

// Collector accumulates tick events within windows and produces WindowStats.
type Collector struct {
	windowTicks     int32
	windowStartTick int32

	// Event counters for current window
	births  int
	kills   int
	starved int
	oldAge  int
}

// NewCollector creates a collector that flushes every windowTicks ticks.
func NewCollector(windowTicks int) *Collector {
	if windowTicks < 1 {
		windowTicks = 1
	}
	return &Collector{windowTicks: int32(windowTicks)}
}

// RecordTick adds the events of one tick. Every death is exactly one of
// kills, starved or oldAge.
func (c *Collector) RecordTick(births, kills, starved, oldAge int) {
	c.births += births
	c.kills += kills
	c.starved += starved
	c.oldAge += oldAge
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int32) bool {
	return currentTick-c.windowStartTick >= c.windowTicks
}

// Flush produces a WindowStats from the counters and the end-of-window
// sample, then resets the counters for the next window.
func (c *Collector) Flush(currentTick int32, sample *PopulationSample) WindowStats {
	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		Population:      sample.Len(),
		Births:          c.births,
		Deaths:          c.kills + c.starved + c.oldAge,
		Kills:           c.kills,
		Starved:         c.starved,
		OldAge:          c.oldAge,
	}

	for _, v := range sample.Intelligence {
		if v > 0 {
			stats.Intelligent++
		}
	}
	if stats.Population > 0 {
		stats.IntelFrac = float64(stats.Intelligent) / float64(stats.Population)
	}

	stats.LifeMean, stats.LifeP10, stats.LifeP50, stats.LifeP90 = ComputeLifeStats(sample.Life)
	stats.AttackMean, stats.AttackStd = ComputeTraitStats(sample.Attack)
	stats.DefenseMean, stats.DefenseStd = ComputeTraitStats(sample.Defense)
	stats.PhotosynthesisMean, stats.PhotosynthesisStd = ComputeTraitStats(sample.Photosynthesis)
	stats.MotionMean, stats.MotionStd = ComputeTraitStats(sample.Motion)
	stats.IntelligenceMean, stats.IntelligenceStd = ComputeTraitStats(sample.Intelligence)

	c.windowStartTick = currentTick
	c.births = 0
	c.kills = 0
	c.starved = 0
	c.oldAge = 0

	return stats
}

// WindowTicks returns the number of ticks per window.
func (c *Collector) WindowTicks() int32 {
	return c.windowTicks
}
