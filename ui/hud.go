package ui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/biots/telemetry"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Biots          int
	Tick           int32
	StepsPerUpdate int
	FPS            int32
	Paused         bool
	ScreenWidth    int32
	ScreenHeight   int32
}

// HUD renders the main heads-up display.
type HUD struct{}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{}
}

// Draw renders the HUD.
func (h *HUD) Draw(data HUDData) {
	rl.DrawText(
		fmt.Sprintf("Tick: %d | Steps: %dx [</>]", data.Tick, data.StepsPerUpdate),
		10, 10, 16, rl.LightGray,
	)
	if data.Paused {
		rl.DrawText("PAUSED", 10, 30, 16, rl.Yellow)
	}

	// Frame counter in the lower right corner
	rl.DrawText(
		fmt.Sprintf("FPS: %d, biots: %d", data.FPS, data.Biots),
		data.ScreenWidth-200, data.ScreenHeight-23, 18, rl.LightGray,
	)
}

// PerfPanel renders per-phase tick timings.
type PerfPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
}

// NewPerfPanel creates a new performance panel.
func NewPerfPanel(x, y, width int32) *PerfPanel {
	return &PerfPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
	}
}

// SetPosition updates the panel position.
func (p *PerfPanel) SetPosition(x, y int32) {
	p.x = x
	p.y = y
}

// Draw renders the performance panel.
func (p *PerfPanel) Draw(stats telemetry.PerfStats) {
	r := p.renderer
	padding := r.Theme.Padding
	phases := telemetry.TickPhases

	height := r.Theme.LineHeight*int32(len(phases)+4) + padding*2
	r.DrawPanel(p.x, p.y, p.width, height)

	x := p.x + padding
	y := r.DrawSectionHeader(x, p.y+padding, "Tick Performance")
	y = r.DrawLabelValue(x, y, "Avg tick", stats.AvgTickDuration.Round(time.Microsecond).String())
	y = r.DrawLabelValue(x, y, "Ticks/s", fmt.Sprintf("%.0f", stats.TicksPerSecond))
	y = r.DrawLabelValue(x, y, "Biots/s", fmt.Sprintf("%.0f", stats.BiotsPerSecond))

	for _, phase := range phases {
		pct := stats.PhasePct[phase]
		color := r.Theme.ValueColor
		if pct > 50 {
			color = rl.Red
		} else if pct > 25 {
			color = rl.Orange
		}
		rl.DrawText(phase, x, y, r.Theme.FontSize, r.Theme.LabelColor)
		rl.DrawText(fmt.Sprintf("%5.1f%%", pct), x+r.Theme.LabelWidth, y, r.Theme.FontSize, color)
		y += r.Theme.LineHeight
	}
}

// TraitPanel shows the population's trait distribution from the latest
// telemetry window.
type TraitPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
}

// NewTraitPanel creates a new trait panel.
func NewTraitPanel(x, y, width int32) *TraitPanel {
	return &TraitPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
	}
}

// SetPosition updates the panel position.
func (p *TraitPanel) SetPosition(x, y int32) {
	p.x = x
	p.y = y
}

// maxTrait is the largest value a single trait can reach.
const maxTrait = 1.3

// Draw renders the trait panel.
func (p *TraitPanel) Draw(stats telemetry.WindowStats) {
	r := p.renderer
	padding := r.Theme.Padding
	height := (r.Theme.LineHeight+2)*9 + padding*2
	r.DrawPanel(p.x, p.y, p.width, height)

	x := p.x + padding
	w := p.width - padding*2
	y := r.DrawSectionHeader(x, p.y+padding, fmt.Sprintf("Window @ %d", stats.WindowEndTick))
	y = r.DrawLabelValue(x, y, "Population", fmt.Sprintf("%d", stats.Population))
	y = r.DrawLabelValue(x, y, "Births/Kills", fmt.Sprintf("%d / %d", stats.Births, stats.Kills))
	y = r.DrawBar(x, y, "Attack", float32(stats.AttackMean), maxTrait, w)
	y = r.DrawBar(x, y, "Defense", float32(stats.DefenseMean), maxTrait, w)
	y = r.DrawBar(x, y, "Photosynth", float32(stats.PhotosynthesisMean), maxTrait, w)
	y = r.DrawBar(x, y, "Motion", float32(stats.MotionMean), maxTrait, w)
	r.DrawBar(x, y, "Intelligent", float32(stats.IntelFrac), 1, w)
}
