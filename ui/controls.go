package ui

import (
	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Steps-per-update limits for the slider.
const (
	MinStepsPerUpdate = 1
	MaxStepsPerUpdate = 10
)

// ControlsState is the simulation state the controls panel edits.
type ControlsState struct {
	Paused         bool
	StepsPerUpdate int
	ShowPerf       bool
	ShowTraits     bool
}

// ControlsPanel renders the simulation controls with raygui widgets.
type ControlsPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
	visible  bool
}

// NewControlsPanel creates a new controls panel.
func NewControlsPanel(x, y, width int32) *ControlsPanel {
	return &ControlsPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
		visible:  true,
	}
}

// SetPosition updates the panel position.
func (c *ControlsPanel) SetPosition(x, y int32) {
	c.x = x
	c.y = y
}

// Toggle switches panel visibility.
func (c *ControlsPanel) Toggle() bool {
	c.visible = !c.visible
	return c.visible
}

// Draw renders the panel and returns the edited state.
func (c *ControlsPanel) Draw(state ControlsState) ControlsState {
	if !c.visible {
		return state
	}

	r := c.renderer
	padding := float32(r.Theme.Padding)
	x := float32(c.x) + padding
	y := float32(c.y) + padding
	w := float32(c.width) - padding*2

	r.DrawPanel(c.x, c.y, c.width, 150)

	label := "Pause"
	if state.Paused {
		label = "Resume"
	}
	if gui.Button(rl.Rectangle{X: x, Y: y, Width: w, Height: 24}, label) {
		state.Paused = !state.Paused
	}
	y += 32

	rl.DrawText("Steps per update", int32(x), int32(y), r.Theme.FontSize, r.Theme.LabelColor)
	y += 16
	steps := gui.SliderBar(
		rl.Rectangle{X: x + 10, Y: y, Width: w - 40, Height: 16},
		"1", "10",
		float32(state.StepsPerUpdate), MinStepsPerUpdate, MaxStepsPerUpdate,
	)
	state.StepsPerUpdate = min(max(int(steps+0.5), MinStepsPerUpdate), MaxStepsPerUpdate)
	y += 26

	state.ShowPerf = gui.CheckBox(rl.Rectangle{X: x, Y: y, Width: 14, Height: 14}, "Performance", state.ShowPerf)
	y += 22
	state.ShowTraits = gui.CheckBox(rl.Rectangle{X: x, Y: y, Width: 14, Height: 14}, "Traits", state.ShowTraits)

	return state
}
