package telemetry

import (
	"log/slog"
	"time"
)

// Phase names of a simulation tick, in execution order.
const (
	PhaseSpatialIndex = "spatial_index"
	PhaseUpdate       = "update"
	PhaseCombat       = "combat"
	PhasePrune        = "prune"
	PhaseTelemetry    = "telemetry"
)

// TickPhases lists the phases of a tick in the order they run.
var TickPhases = []string{
	PhaseSpatialIndex, PhaseUpdate, PhaseCombat, PhasePrune, PhaseTelemetry,
}

// Phases records named phases of a tick. Implemented by PerfCollector.
type Phases interface {
	StartPhase(phase string)
}

// tickSample is the timing of one tick. phases is indexed by phase slot.
type tickSample struct {
	total  time.Duration
	biots  int
	phases []time.Duration
}

// PerfCollector keeps per-phase tick timings in a ring of the last N ticks.
type PerfCollector struct {
	ring  []tickSample
	next  int
	count int

	// Phase names map to stable slots so samples can use slices.
	slots map[string]int
	names []string

	current    tickSample
	tickStart  time.Time
	phaseStart time.Time
	phase      int // slot of the running phase, -1 if none

	lastFrame time.Time
	frame     time.Duration
}

// NewPerfCollector creates a collector averaging over windowSize ticks
// (60 if windowSize < 1).
func NewPerfCollector(windowSize int) *PerfCollector {
	if windowSize < 1 {
		windowSize = 60
	}
	p := &PerfCollector{
		ring:  make([]tickSample, windowSize),
		slots: make(map[string]int),
		phase: -1,
	}
	for _, name := range TickPhases {
		p.slot(name)
	}
	return p
}

func (p *PerfCollector) slot(name string) int {
	if i, ok := p.slots[name]; ok {
		return i
	}
	i := len(p.names)
	p.slots[name] = i
	p.names = append(p.names, name)
	return i
}

// StartTick begins timing a new tick.
func (p *PerfCollector) StartTick() {
	p.tickStart = time.Now()
	p.current = tickSample{phases: make([]time.Duration, len(p.names))}
	p.phase = -1
}

// StartPhase closes the running phase, if any, and starts timing phase.
func (p *PerfCollector) StartPhase(phase string) {
	now := time.Now()
	p.closePhase(now)

	i := p.slot(phase)
	if i >= len(p.current.phases) {
		p.current.phases = append(p.current.phases, make([]time.Duration, i+1-len(p.current.phases))...)
	}
	p.phase = i
	p.phaseStart = now
}

func (p *PerfCollector) closePhase(now time.Time) {
	if p.phase >= 0 {
		p.current.phases[p.phase] += now.Sub(p.phaseStart)
	}
}

// EndTick finishes the tick. biots is the number of biots the tick processed.
func (p *PerfCollector) EndTick(biots int) {
	now := time.Now()
	p.closePhase(now)
	p.phase = -1

	p.current.total = now.Sub(p.tickStart)
	p.current.biots = biots
	p.ring[p.next] = p.current
	p.next = (p.next + 1) % len(p.ring)
	if p.count < len(p.ring) {
		p.count++
	}
}

// RecordFrame marks the start of a rendered frame.
func (p *PerfCollector) RecordFrame() {
	now := time.Now()
	if !p.lastFrame.IsZero() {
		p.frame = now.Sub(p.lastFrame)
	}
	p.lastFrame = now
}

// PerfStats holds timings averaged over the collector's window.
type PerfStats struct {
	AvgTickDuration time.Duration
	MinTickDuration time.Duration
	MaxTickDuration time.Duration

	PhaseAvg map[string]time.Duration
	PhasePct map[string]float64 // share of the average tick, 0-100

	TicksPerSecond float64
	// BiotsPerSecond is biot updates per second of tick time.
	BiotsPerSecond float64
	AvgBiots       float64

	FrameDuration time.Duration
	FPS           float64
}

// Stats aggregates the samples currently in the window.
func (p *PerfCollector) Stats() PerfStats {
	s := PerfStats{
		PhaseAvg:      make(map[string]time.Duration),
		PhasePct:      make(map[string]float64),
		FrameDuration: p.frame,
	}
	if p.frame > 0 {
		s.FPS = float64(time.Second) / float64(p.frame)
	}
	if p.count == 0 {
		return s
	}

	var total time.Duration
	var biots int
	sums := make([]time.Duration, len(p.names))
	for i, sample := range p.ring[:p.count] {
		total += sample.total
		biots += sample.biots
		if i == 0 || sample.total < s.MinTickDuration {
			s.MinTickDuration = sample.total
		}
		s.MaxTickDuration = max(s.MaxTickDuration, sample.total)
		for slot, d := range sample.phases {
			sums[slot] += d
		}
	}

	n := time.Duration(p.count)
	s.AvgTickDuration = total / n
	s.AvgBiots = float64(biots) / float64(p.count)

	for slot, sum := range sums {
		if sum == 0 {
			continue
		}
		name := p.names[slot]
		s.PhaseAvg[name] = sum / n
		if total > 0 {
			s.PhasePct[name] = float64(sum) / float64(total) * 100
		}
	}

	if total > 0 {
		s.TicksPerSecond = float64(p.count) * float64(time.Second) / float64(total)
		s.BiotsPerSecond = float64(biots) * float64(time.Second) / float64(total)
	}
	return s
}

// LogStats logs performance statistics.
func (s PerfStats) LogStats() {
	attrs := []any{
		"avg_tick_us", s.AvgTickDuration.Microseconds(),
		"max_tick_us", s.MaxTickDuration.Microseconds(),
		"ticks_per_sec", int(s.TicksPerSecond),
		"biots_per_sec", int(s.BiotsPerSecond),
	}
	if s.FPS > 0 {
		attrs = append(attrs, "fps", int(s.FPS))
	}
	for _, phase := range TickPhases {
		if pct := s.PhasePct[phase]; pct > 0.1 {
			attrs = append(attrs, phase+"_pct", int(pct*10)/10.0)
		}
	}
	slog.Info("perf", attrs...)
}

// LogValue implements slog.LogValuer.
func (s PerfStats) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int64("avg_tick_us", s.AvgTickDuration.Microseconds()),
		slog.Int64("min_tick_us", s.MinTickDuration.Microseconds()),
		slog.Int64("max_tick_us", s.MaxTickDuration.Microseconds()),
		slog.Float64("ticks_per_sec", s.TicksPerSecond),
		slog.Float64("biots_per_sec", s.BiotsPerSecond),
	}
	if s.FPS > 0 {
		attrs = append(attrs, slog.Float64("fps", s.FPS))
	}
	for _, phase := range TickPhases {
		if pct, ok := s.PhasePct[phase]; ok {
			attrs = append(attrs, slog.Float64(phase+"_pct", pct))
		}
	}
	return slog.GroupValue(attrs...)
}

// PerfRecord is one perf.csv row.
type PerfRecord struct {
	WindowEnd       int32   `csv:"window_end"`
	AvgTickUS       int64   `csv:"avg_tick_us"`
	MinTickUS       int64   `csv:"min_tick_us"`
	MaxTickUS       int64   `csv:"max_tick_us"`
	TicksPerSec     float64 `csv:"ticks_per_sec"`
	BiotsPerSec     float64 `csv:"biots_per_sec"`
	AvgBiots        float64 `csv:"avg_biots"`
	FPS             float64 `csv:"fps"`
	SpatialIndexPct float64 `csv:"spatial_index_pct"`
	UpdatePct       float64 `csv:"update_pct"`
	CombatPct       float64 `csv:"combat_pct"`
	PrunePct        float64 `csv:"prune_pct"`
	TelemetryPct    float64 `csv:"telemetry_pct"`
}

// Record flattens the stats into a perf.csv row for the window ending at windowEnd.
func (s PerfStats) Record(windowEnd int32) PerfRecord {
	return PerfRecord{
		WindowEnd:       windowEnd,
		AvgTickUS:       s.AvgTickDuration.Microseconds(),
		MinTickUS:       s.MinTickDuration.Microseconds(),
		MaxTickUS:       s.MaxTickDuration.Microseconds(),
		TicksPerSec:     s.TicksPerSecond,
		BiotsPerSec:     s.BiotsPerSecond,
		AvgBiots:        s.AvgBiots,
		FPS:             s.FPS,
		SpatialIndexPct: s.PhasePct[PhaseSpatialIndex],
		UpdatePct:       s.PhasePct[PhaseUpdate],
		CombatPct:       s.PhasePct[PhaseCombat],
		PrunePct:        s.PhasePct[PhasePrune],
		TelemetryPct:    s.PhasePct[PhaseTelemetry],
	}
}
