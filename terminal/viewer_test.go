package terminal

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/biots/config"
	"github.com/pthm-cable/biots/game"
)

func init() {
	config.MustInit("")
}

func TestViewerDraw(t *testing.T) {
	g := game.NewGameWithOptions(game.Options{Seed: 3, Headless: true})

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	screen.SetSize(80, 25)

	v := NewWithScreen(g, screen)
	defer v.Close()
	v.Draw()

	// Status line
	if r, _, _, _ := screen.GetContent(0, 24); r != 't' {
		t.Errorf("status line starts with %q, want 't'", r)
	}

	drawn := 0
	for y := 0; y < 24; y++ {
		for x := 0; x < 80; x++ {
			if r, _, _, _ := screen.GetContent(x, y); r != ' ' && r != 0 {
				drawn++
			}
		}
	}
	if drawn == 0 {
		t.Error("expected biots on the density map")
	}
}

func TestPollEventsExitsWhenDone(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer screen.Fini()

	events := make(chan tcell.Event) // never drained
	done := make(chan struct{})
	exited := make(chan struct{})
	go func() {
		pollEvents(screen, events, done)
		close(exited)
	}()

	if err := screen.PostEvent(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)); err != nil {
		t.Fatalf("PostEvent: %v", err)
	}
	close(done)

	select {
	case <-exited:
	case <-time.After(time.Second):
		t.Fatal("event loop still blocked after done was closed")
	}
}
