package game

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/biots/camera"
	"github.com/pthm-cable/biots/renderer"
	"github.com/pthm-cable/biots/ui"
)

// Hover radius in screen pixels.
const hoverRadius = 12

const panelWidth = 220

// initRendering creates the renderers and panels for a window of the given size.
func (g *Game) initRendering(w, h int32) {
	bounds := g.pop.Bounds()
	g.screenWidth = w
	g.screenHeight = h
	g.camera = camera.New(float32(w), float32(h), bounds.Width, bounds.Height)
	g.biotRenderer = renderer.NewBiotRenderer(g.camera)
	g.hud = ui.NewHUD()
	g.controlsPanel = ui.NewControlsPanel(0, 0, panelWidth)
	g.perfPanel = ui.NewPerfPanel(0, 0, panelWidth)
	g.traitPanel = ui.NewTraitPanel(0, 0, panelWidth)
	g.layoutPanels()
}

// layoutPanels stacks the side panels along the right edge.
func (g *Game) layoutPanels() {
	x := g.screenWidth - panelWidth - 10
	g.controlsPanel.SetPosition(x, 10)
	g.perfPanel.SetPosition(x, 170)
	g.traitPanel.SetPosition(x, 344)
}

// Draw renders the game.
func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(renderer.Background)

	g.pop.Each(func(v BiotView) {
		g.biotRenderer.Draw(v.X, v.Y, v.Traits)
	})

	g.drawUI()

	rl.EndDrawing()
}

// drawUI renders HUD, panels and the hover tooltip.
func (g *Game) drawUI() {
	g.hud.Draw(ui.HUDData{
		Biots:          g.pop.Len(),
		Tick:           g.tick,
		StepsPerUpdate: g.stepsPerUpdate,
		FPS:            rl.GetFPS(),
		Paused:         g.paused,
		ScreenWidth:    g.screenWidth,
		ScreenHeight:   g.screenHeight,
	})

	state := g.controlsPanel.Draw(ui.ControlsState{
		Paused:         g.paused,
		StepsPerUpdate: g.stepsPerUpdate,
		ShowPerf:       g.showPerf,
		ShowTraits:     g.showTraits,
	})
	g.paused = state.Paused
	g.stepsPerUpdate = state.StepsPerUpdate
	g.showPerf = state.ShowPerf
	g.showTraits = state.ShowTraits

	if g.showPerf {
		g.perfPanel.Draw(g.perfCollector.Stats())
	}
	if g.showTraits {
		g.traitPanel.Draw(g.lastStats)
	}

	g.drawTooltip()
}

// drawTooltip shows genome and vitals of the biot under the cursor.
func (g *Game) drawTooltip() {
	mouse := rl.GetMousePosition()
	wx, wy := g.camera.ScreenToWorld(mouse.X, mouse.Y)
	v, ok := g.pop.Nearest(wx, wy, hoverRadius/g.camera.Scale())
	if !ok {
		return
	}

	t := v.Traits
	lines := []string{
		v.Code.String(),
		fmt.Sprintf("Life: %.1f / base %.1f", v.Life, t.BaseLife()),
		fmt.Sprintf("Age: %d", v.Age),
		fmt.Sprintf("Atk %.1f  Def %.1f", t.Attack, t.Defense),
		fmt.Sprintf("Pho %.1f  Mot %.1f", t.Photosynthesis, t.Motion),
	}
	if t.Intelligent() {
		lines = append(lines, fmt.Sprintf("Intelligence: %.0f", t.Intelligence))
	}

	const fontSize = 14
	const padding = 8
	const lineHeight = 16

	maxWidth := int32(0)
	for _, line := range lines {
		maxWidth = max(maxWidth, rl.MeasureText(line, fontSize))
	}
	width := maxWidth + padding*2
	height := int32(len(lines)*lineHeight + padding*2)

	// Offset from cursor, flipped to stay on screen
	x := int32(mouse.X) + 15
	y := int32(mouse.Y) + 15
	if x+width > g.screenWidth-10 {
		x = int32(mouse.X) - width - 10
	}
	if y+height > g.screenHeight-10 {
		y = int32(mouse.Y) - height - 10
	}

	rl.DrawRectangle(x, y, width, height, rl.Color{R: 20, G: 25, B: 30, A: 230})
	rl.DrawRectangleLines(x, y, width, height, rl.Color{R: 60, G: 70, B: 80, A: 255})
	for i, line := range lines {
		color := rl.LightGray
		if i == 0 {
			color = rl.Green
		}
		rl.DrawText(line, x+padding, y+padding+int32(i*lineHeight), fontSize, color)
	}
}
