// Package telemetry provides ecosystem health tracking, bookmarking, and CSV output.
package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a window of ticks.
type WindowStats struct {
	WindowStartTick int32 `csv:"-"`
	WindowEndTick   int32 `csv:"window_end"`

	// Population at window end
	Population  int     `csv:"population"`
	Intelligent int     `csv:"intelligent"`
	IntelFrac   float64 `csv:"intelligent_frac"`

	// Events during window
	Births  int `csv:"births"`
	Deaths  int `csv:"deaths"`
	Kills   int `csv:"kills"`
	Starved int `csv:"starved"`
	OldAge  int `csv:"old_age"`

	// Life distribution (sampled at window end)
	LifeMean float64 `csv:"life_mean"`
	LifeP10  float64 `csv:"life_p10"`
	LifeP50  float64 `csv:"life_p50"`
	LifeP90  float64 `csv:"life_p90"`

	// Trait distribution (sampled at window end)
	AttackMean         float64 `csv:"attack_mean"`
	AttackStd          float64 `csv:"attack_std"`
	DefenseMean        float64 `csv:"defense_mean"`
	DefenseStd         float64 `csv:"defense_std"`
	PhotosynthesisMean float64 `csv:"photosynthesis_mean"`
	PhotosynthesisStd  float64 `csv:"photosynthesis_std"`
	MotionMean         float64 `csv:"motion_mean"`
	MotionStd          float64 `csv:"motion_std"`
	IntelligenceMean   float64 `csv:"intelligence_mean"`
	IntelligenceStd    float64 `csv:"intelligence_std"`
}

// PopulationSample holds per-biot values taken at the end of a window.
type PopulationSample struct {
	Life           []float64
	Attack         []float64
	Defense        []float64
	Photosynthesis []float64
	Motion         []float64
	Intelligence   []float64
}

// Add appends one biot's values.
func (s *PopulationSample) Add(life, attack, defense, photosynthesis, motion, intelligence float32) {
	s.Life = append(s.Life, float64(life))
	s.Attack = append(s.Attack, float64(attack))
	s.Defense = append(s.Defense, float64(defense))
	s.Photosynthesis = append(s.Photosynthesis, float64(photosynthesis))
	s.Motion = append(s.Motion, float64(motion))
	s.Intelligence = append(s.Intelligence, float64(intelligence))
}

// Len returns the number of sampled biots.
func (s *PopulationSample) Len() int {
	return len(s.Life)
}

// ComputeLifeStats calculates mean and empirical percentiles.
// Returns zeros for an empty slice.
func ComputeLifeStats(values []float64) (mean, p10, p50, p90 float64) {
	if len(values) == 0 {
		return 0, 0, 0, 0
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mean = stat.Mean(sorted, nil)
	p10 = stat.Quantile(0.10, stat.Empirical, sorted, nil)
	p50 = stat.Quantile(0.50, stat.Empirical, sorted, nil)
	p90 = stat.Quantile(0.90, stat.Empirical, sorted, nil)
	return mean, p10, p50, p90
}

// ComputeTraitStats returns the mean and sample standard deviation.
// A single value has zero spread.
func ComputeTraitStats(values []float64) (mean, std float64) {
	switch len(values) {
	case 0:
		return 0, 0
	case 1:
		return values[0], 0
	}
	return stat.MeanStdDev(values, nil)
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", int(s.WindowStartTick)),
		slog.Int("window_end", int(s.WindowEndTick)),
		slog.Int("population", s.Population),
		slog.Int("intelligent", s.Intelligent),
		slog.Int("births", s.Births),
		slog.Int("deaths", s.Deaths),
		slog.Int("kills", s.Kills),
		slog.Int("starved", s.Starved),
		slog.Int("old_age", s.OldAge),
		slog.Float64("life_mean", s.LifeMean),
		slog.Float64("life_p50", s.LifeP50),
		slog.Float64("attack_mean", s.AttackMean),
		slog.Float64("defense_mean", s.DefenseMean),
		slog.Float64("photosynthesis_mean", s.PhotosynthesisMean),
		slog.Float64("motion_mean", s.MotionMean),
		slog.Float64("intelligence_mean", s.IntelligenceMean),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEndTick,
		"population", s.Population,
		"intelligent", s.Intelligent,
		"intelligent_frac", s.IntelFrac,
		"births", s.Births,
		"deaths", s.Deaths,
		"kills", s.Kills,
		"starved", s.Starved,
		"old_age", s.OldAge,
		"life_mean", s.LifeMean,
		"life_p10", s.LifeP10,
		"life_p50", s.LifeP50,
		"life_p90", s.LifeP90,
		"attack_mean", s.AttackMean,
		"attack_std", s.AttackStd,
		"defense_mean", s.DefenseMean,
		"defense_std", s.DefenseStd,
		"photosynthesis_mean", s.PhotosynthesisMean,
		"photosynthesis_std", s.PhotosynthesisStd,
		"motion_mean", s.MotionMean,
		"motion_std", s.MotionStd,
		"intelligence_mean", s.IntelligenceMean,
		"intelligence_std", s.IntelligenceStd,
	)
}
