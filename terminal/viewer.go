package terminal

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/biots/game"
)

// frameInterval paces redraws (~30 FPS).
const frameInterval = 33 * time.Millisecond

// Viewer drives a game and draws it onto a terminal screen.
type Viewer struct {
	screen tcell.Screen
	game   *game.Game
	paused bool
}

// OpenScreen initializes the controlling terminal.
func OpenScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("initializing terminal screen: %w", err)
	}
	return screen, nil
}

// NewWithScreen attaches an already initialized screen to g.
func NewWithScreen(g *game.Game, screen tcell.Screen) *Viewer {
	return &Viewer{screen: screen, game: g}
}

// Run steps and draws until the user quits, the population dies out or
// maxTicks is reached (0 = unlimited).
func (v *Viewer) Run(maxTicks int) {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go pollEvents(v.screen, events, done)

	for {
		select {
		case ev := <-events:
			if !v.handleEvent(ev) {
				return
			}

		case <-ticker.C:
			if !v.paused {
				v.game.UpdateHeadless()
			}
			v.Draw()

			if maxTicks > 0 && int(v.game.Tick()) >= maxTicks {
				return
			}
			if v.game.Extinct() {
				return
			}
		}
	}
}

// pollEvents forwards screen events until the screen is finalized or done
// is closed.
func pollEvents(screen tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// handleEvent reacts to keys and resizes. It returns false to quit.
func (v *Viewer) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case 'q':
				return false
			case ' ':
				v.paused = !v.paused
			}
		}
	case *tcell.EventResize:
		v.screen.Sync()
	}
	return true
}

// Draw renders the density map with a status line at the bottom.
func (v *Viewer) Draw() {
	v.screen.Clear()
	width, height := v.screen.Size()
	if width < 1 || height < 2 {
		v.screen.Show()
		return
	}

	pop := v.game.Population()
	raster := NewRaster(width, height-1, pop.Bounds())
	pop.Each(func(b game.BiotView) {
		raster.Add(b.X, b.Y, b.Traits)
	})

	for row := 0; row < raster.Rows; row++ {
		for col := 0; col < raster.Cols; col++ {
			c := raster.At(col, row)
			if c.Count == 0 {
				continue
			}
			v.screen.SetContent(col, row, c.Glyph(), nil, c.Style())
		}
	}

	status := fmt.Sprintf("tick: %d, biots: %d", v.game.Tick(), pop.Len())
	if v.paused {
		status += " [PAUSED]"
	}
	status += "  (space: pause, q: quit)"
	statusStyle := tcell.StyleDefault.Foreground(tcell.ColorLightGray)
	for i, ch := range status {
		if i >= width {
			break
		}
		v.screen.SetContent(i, height-1, ch, nil, statusStyle)
	}

	v.screen.Show()
}

// Close restores the terminal.
func (v *Viewer) Close() {
	v.screen.Fini()
}
