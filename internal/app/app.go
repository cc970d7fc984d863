package app

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/termpong/internal/audio"
	"github.com/diegok/termpong/internal/config"
	"github.com/diegok/termpong/internal/game"
	"github.com/diegok/termpong/internal/ui"
)

// App is the host around the simulation: it owns the terminal, turns input
// into paddle moves and feeds measured frame time into the engine.
type App struct {
	cfg      *config.Config
	log      *slog.Logger
	screen   *ui.Screen
	renderer *ui.Renderer
	game     *game.GameState
	sound    *audio.Player
	steer    Steering

	// Field size in field units, valid unless tooSmall
	width, height float64
	tooSmall      bool

	quit     chan struct{}
	quitOnce sync.Once
	sigChan  chan os.Signal
}

// NewApp creates a new App instance with the given configuration.
func NewApp(cfg *config.Config, logger *slog.Logger) *App {
	return &App{
		cfg:   cfg,
		log:   logger,
		sound: &audio.Player{},
		quit:  make(chan struct{}),
	}
}

// Run is the main entry point for the application.
// It initializes sound and the screen, then runs the frame loop until quit.
func (a *App) Run() error {
	if !a.cfg.Mute {
		// Game works without sound
		player, err := audio.Init()
		if err != nil {
			a.log.Warn("audio unavailable", "error", err)
		}
		a.sound = player
	}

	screen, err := ui.InitScreen()
	if err != nil {
		a.sound.Close()
		return fmt.Errorf("failed to initialize screen: %w", err)
	}

	if err := a.attach(screen); err != nil {
		screen.Fini()
		a.sound.Close()
		return err
	}

	// Setup signal handling
	a.sigChan = make(chan os.Signal, 1)
	signal.Notify(a.sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-a.sigChan:
			a.stop()
		case <-a.quit:
		}
	}()

	a.log.Info("starting",
		"side", a.cfg.Side,
		"ai", a.cfg.AIAccuracy,
		"fps", a.cfg.FPS,
		"sound", a.sound.Enabled(),
	)

	runErr := a.mainLoop()
	a.cleanup()
	return runErr
}

// attach builds the game for the configured side and lays it out on screen
func (a *App) attach(screen *ui.Screen) error {
	control := game.PaddleRight
	if a.cfg.Side == "left" {
		control = game.PaddleLeft
	}

	gs, err := game.NewStandardGame(control)
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}
	gs.SetAIAccuracy(a.cfg.AIAccuracy)

	a.game = gs
	a.screen = screen
	a.renderer = ui.NewRenderer(screen)
	a.layout()
	return nil
}

// layout recomputes the field from the terminal size and resets every
// object. Nothing is simulated until the terminal is big enough.
func (a *App) layout() {
	cols, rows := a.screen.Size()
	a.tooSmall = cols < ui.MinCols || rows < ui.MinRows
	if a.tooSmall {
		a.log.Warn("terminal too small", "cols", cols, "rows", rows)
		return
	}

	a.width, a.height = ui.FieldSize(cols, rows)
	a.game.ResetObjects(a.width, a.height)
	a.steer.Stop()
	a.log.Info("field laid out", "cols", cols, "rows", rows, "width", a.width, "height", a.height)
}

// mainLoop is the main event loop that handles all input and ticks.
func (a *App) mainLoop() error {
	// Create event channel for screen events
	events := make(chan tcell.Event)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-a.quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(a.cfg.FPS))
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-a.quit:
			return nil

		case ev := <-events:
			if a.handleEvent(ev) {
				a.stop()
				return nil
			}

		case now := <-ticker.C:
			elapsed := float64(now.Sub(last)) / float64(time.Millisecond)
			last = now
			a.tick(elapsed)
			a.render()
		}
	}
}

// stop closes quit once, whichever of a signal or a quit key comes first
func (a *App) stop() {
	a.quitOnce.Do(func() { close(a.quit) })
}

// tick applies held input and advances the game by elapsed milliseconds
func (a *App) tick(elapsed float64) {
	if a.tooSmall {
		return
	}

	if !a.game.Paused() {
		a.steer.Apply(a.game.Control(), elapsed, a.height)
	}
	a.game.Update(elapsed, a.width, a.height)

	events := a.game.Events()
	a.sound.Play(events)
	if events.Has(game.EventBallOut) {
		a.log.Debug("ball out, serving again")
	}
}

// handleEvent processes keyboard, mouse and resize events.
// Returns true if the application should quit.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev)

	case *tcell.EventMouse:
		if a.tooSmall || a.game.Paused() {
			return false
		}
		_, y := ev.Position()
		MoveTo(a.game.Control(), ui.FieldY(y), a.height)

	case *tcell.EventResize:
		a.screen.Sync()
		a.layout()
		a.render()
	}

	return false
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	key, r := ev.Key(), ev.Rune()

	switch {
	case ui.IsQuitKey(key, r):
		return true

	case ui.IsPauseKey(key, r):
		paused := !a.game.Paused()
		a.game.Pause(paused)
		a.steer.Stop()
		a.log.Info("pause toggled", "paused", paused)

	case ui.IsResetKey(key, r):
		if !a.tooSmall {
			a.layout()
		}

	case ui.AIAdjust(key, r) != 0:
		a.game.SetAIAccuracy(a.game.AIAccuracy() + ui.AIAdjust(key, r))
		a.log.Info("ai accuracy changed", "ai", a.game.AIAccuracy())

	default:
		if a.game.Paused() {
			return false
		}
		if dir := ui.KeyToDirection(key, r); dir != ui.DirNone {
			a.steer.SetDirection(dir)
		}
	}
	return false
}

// render draws the current frame
func (a *App) render() {
	if a.tooSmall {
		a.renderer.RenderTooSmall()
		return
	}
	a.renderer.RenderGame(ui.View{
		Objects:    a.game.Objects(),
		Paused:     a.game.Paused(),
		AIAccuracy: a.game.AIAccuracy(),
		Control:    a.game.Control().Kind,
	})
}

// cleanup shuts down all resources.
func (a *App) cleanup() {
	a.sound.Close()

	if a.screen != nil {
		a.screen.Fini()
	}

	signal.Stop(a.sigChan)
}
