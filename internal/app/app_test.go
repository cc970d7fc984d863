package app

import (
	"io"
	"log/slog"
	"math"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/termpong/internal/config"
	"github.com/diegok/termpong/internal/game"
	"github.com/diegok/termpong/internal/ui"
)

func newTestApp(t *testing.T, side string, cols, rows int) (*App, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("failed to init simulation screen: %v", err)
	}
	sim.SetSize(cols, rows)
	t.Cleanup(sim.Fini)

	cfg := &config.Config{AIAccuracy: config.DefaultAIAccuracy, Side: side, FPS: config.DefaultFPS}
	a := NewApp(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err := a.attach(ui.NewScreen(sim)); err != nil {
		t.Fatalf("attach failed: %v", err)
	}
	return a, sim
}

func keyRune(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func ballOf(t *testing.T, a *App) game.Object {
	t.Helper()
	for _, o := range a.game.Objects() {
		if o.Kind == game.Ball {
			return o
		}
	}
	t.Fatal("no ball")
	return game.Object{}
}

func TestAttach_LaysOutField(t *testing.T) {
	a, _ := newTestApp(t, "right", 80, 24)

	if a.tooSmall {
		t.Fatal("80x24 should be playable")
	}
	if a.width != 800 || a.height != 460 {
		t.Errorf("field = %fx%f, want 800x460", a.width, a.height)
	}
	if got := a.game.Control().Kind; got != game.PaddleRight {
		t.Errorf("control = %v, want %v", got, game.PaddleRight)
	}
	if got := a.game.Control().Size.Y; got != 115 {
		t.Errorf("paddle height = %f, want 115", got)
	}
}

func TestAttach_LeftSide(t *testing.T) {
	a, _ := newTestApp(t, "left", 80, 24)
	if got := a.game.Control().Kind; got != game.PaddleLeft {
		t.Errorf("control = %v, want %v", got, game.PaddleLeft)
	}
}

func TestHandleEvent_Quit(t *testing.T) {
	a, _ := newTestApp(t, "right", 80, 24)
	if !a.handleEvent(keyRune('q')) {
		t.Error("'q' should quit")
	}
	if !a.handleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Error("Escape should quit")
	}
}

func TestHandleEvent_PauseToggle(t *testing.T) {
	a, _ := newTestApp(t, "right", 80, 24)

	a.handleEvent(keyRune('p'))
	if !a.game.Paused() {
		t.Fatal("expected paused after 'p'")
	}

	before := ballOf(t, a).Position
	a.tick(16)
	if ballOf(t, a).Position != before {
		t.Error("ball moved while paused")
	}

	a.handleEvent(keyRune('p'))
	if a.game.Paused() {
		t.Error("expected resumed after second 'p'")
	}
}

func TestHandleEvent_AIAdjust(t *testing.T) {
	a, _ := newTestApp(t, "right", 80, 24)

	a.handleEvent(keyRune('+'))
	if got := a.game.AIAccuracy(); math.Abs(got-0.6) > 1e-9 {
		t.Errorf("accuracy = %f, want 0.6", got)
	}

	for i := 0; i < 20; i++ {
		a.handleEvent(keyRune('-'))
	}
	if got := a.game.AIAccuracy(); got != 0 {
		t.Errorf("accuracy = %f, want clamped to 0", got)
	}
}

func TestHandleEvent_KeySteersPaddle(t *testing.T) {
	a, _ := newTestApp(t, "right", 80, 24)
	start := a.game.Control().Position.Y

	a.handleEvent(keyRune('w'))
	a.tick(16)

	if got, want := a.game.Control().Position.Y, start-PaddleSpeed*16; got != want {
		t.Errorf("paddle y = %f, want %f", got, want)
	}
}

func TestHandleEvent_IgnoresDirectionWhilePaused(t *testing.T) {
	a, _ := newTestApp(t, "right", 80, 24)
	a.handleEvent(keyRune('p'))
	a.handleEvent(keyRune('s'))

	if a.steer.Direction != ui.DirNone {
		t.Errorf("direction = %v while paused, want none", a.steer.Direction)
	}
}

func TestHandleEvent_Mouse(t *testing.T) {
	a, _ := newTestApp(t, "right", 80, 24)

	a.handleEvent(tcell.NewEventMouse(10, 10, tcell.ButtonNone, tcell.ModNone))

	// Row 10 is centered at y 210, paddle is 115 tall
	if got := a.game.Control().Position.Y; got != 152.5 {
		t.Errorf("paddle y = %f, want 152.5", got)
	}
}

func TestHandleEvent_ResetKey(t *testing.T) {
	a, _ := newTestApp(t, "right", 80, 24)
	a.tick(100)
	a.tick(100)

	a.handleEvent(keyRune('r'))

	if got := ballOf(t, a).Position; got.X != 387.5 || got.Y != 217.5 {
		t.Errorf("ball at %v after reset, want (387.5, 217.5)", got)
	}
}

func TestHandleEvent_ResizeTooSmall(t *testing.T) {
	a, sim := newTestApp(t, "right", 80, 24)

	sim.SetSize(30, 8)
	a.handleEvent(tcell.NewEventResize(30, 8))
	if !a.tooSmall {
		t.Fatal("expected 30x8 to be too small")
	}

	before := ballOf(t, a).Position
	a.tick(16)
	if ballOf(t, a).Position != before {
		t.Error("game should not advance on a too small terminal")
	}

	sim.SetSize(100, 30)
	a.handleEvent(tcell.NewEventResize(100, 30))
	if a.tooSmall {
		t.Fatal("expected 100x30 to be playable")
	}
	if a.width != 1000 || a.height != 580 {
		t.Errorf("field = %fx%f, want 1000x580", a.width, a.height)
	}
}

func TestTick_LongRunStaysInField(t *testing.T) {
	a, _ := newTestApp(t, "right", 80, 24)

	for i := 0; i < 5000; i++ {
		a.tick(16)
		for _, o := range a.game.Objects() {
			if o.Kind.IsPaddle() && (o.Position.Y < 0 || o.Position.Y+o.Size.Y > a.height) {
				t.Fatalf("tick %d: %v left the field at y %f", i, o.Kind, o.Position.Y)
			}
		}
	}
}

func TestStop_Idempotent(t *testing.T) {
	a, _ := newTestApp(t, "right", 80, 24)

	// Signal and quit key racing each other
	done := make(chan struct{})
	go func() {
		a.stop()
		close(done)
	}()
	a.stop()
	<-done

	select {
	case <-a.quit:
	default:
		t.Error("expected quit to be closed")
	}
}
