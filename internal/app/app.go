// Package app provides the glint session: it wires the terminal backend,
// view, navigator and keymap together and runs the redraw/input loop.
package app

import (
	"errors"
	"runtime/debug"
	"sync/atomic"

	"github.com/dshills/glint/internal/engine/buffer"
	"github.com/dshills/glint/internal/engine/cursor"
	"github.com/dshills/glint/internal/input/keymap"
	"github.com/dshills/glint/internal/renderer"
	"github.com/dshills/glint/internal/renderer/backend"
	"github.com/dshills/glint/internal/renderer/core"
)

// Application is the central coordinator for a viewing session.
//
// The loop is strictly sequential: redraw, wait for one event, handle it,
// redraw. Nothing runs in the background.
type Application struct {
	backend backend.Backend
	buffer  *buffer.Buffer
	view    *renderer.View
	nav     *cursor.Navigator
	keymap  *keymap.Keymap

	mode  renderer.Mode
	state State

	logger    *Logger
	metrics   *Metrics
	sessionID string

	running atomic.Bool
}

// Options configures the application.
type Options struct {
	// Backend is the terminal gateway. Required.
	Backend backend.Backend

	// Buffer holds the lines to display. Nil means an empty buffer.
	Buffer *buffer.Buffer

	// Keymap resolves key events to actions. Nil means keymap.Default().
	Keymap *keymap.Keymap

	// View configures the banner, placeholder and farewell text.
	View renderer.ViewOptions

	// Logger receives session logs. Nil means GetLogger().
	Logger *Logger
}

// New creates a new Application with the given options.
func New(opts Options) (*Application, error) {
	if opts.Backend == nil {
		return nil, &InitError{Component: "backend", Err: ErrNoBackend}
	}
	if opts.Buffer == nil {
		opts.Buffer = buffer.New()
	}
	if opts.Keymap == nil {
		opts.Keymap = keymap.Default()
	}
	if opts.Logger == nil {
		opts.Logger = GetLogger()
	}

	logger, id := opts.Logger.WithSession()

	return &Application{
		backend:   opts.Backend,
		buffer:    opts.Buffer,
		view:      renderer.NewView(opts.Backend, opts.Buffer, opts.View),
		nav:       cursor.NewNavigator(),
		keymap:    opts.Keymap,
		mode:      renderer.InitialMode(opts.Buffer.IsEmpty()),
		state:     StateRunning,
		logger:    logger,
		metrics:   NewMetrics(),
		sessionID: id,
	}, nil
}

// Run initializes the backend and runs the session until the user quits or
// a terminal operation fails.
//
// Once Init succeeds the backend is shut down exactly once on every exit
// path, including panics. A shutdown failure is joined with the loop error.
func (app *Application) Run() (err error) {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if err := app.backend.Init(); err != nil {
		app.logger.Error("backend init failed: %v", err)
		return &InitError{Component: "backend", Err: err}
	}
	app.logger.Info("session started (mode=%s, lines=%d)", app.mode, app.buffer.LineCount())

	defer func() {
		if r := recover(); r != nil {
			err = &RecoveredPanicError{Value: r, Stack: string(debug.Stack())}
		}
		if serr := app.backend.Shutdown(); serr != nil {
			app.logger.Error("backend shutdown failed: %v", serr)
			err = errors.Join(err, serr)
		}
		app.logSessionEnd(err)
	}()

	return app.loop()
}

// loop is the main redraw/input cycle.
func (app *Application) loop() error {
	for {
		if err := app.render(); err != nil {
			return err
		}
		if app.state == StateQuitting {
			return nil
		}

		ev, err := app.backend.PollEvent()
		if err != nil {
			return err
		}
		if err := app.handleEvent(ev); err != nil {
			return err
		}
	}
}

// render draws one frame for the current mode and cursor position.
func (app *Application) render() error {
	timer := StartTimer()
	if err := app.view.Render(app.mode, app.nav.Position()); err != nil {
		app.logger.WithComponent("renderer").Error("frame failed: %v", err)
		return err
	}
	app.metrics.RecordFrame(timer.Elapsed())
	return nil
}

func (app *Application) logSessionEnd(err error) {
	fields := app.metrics.Snapshot().Fields()
	if err != nil {
		app.logger.WithFields(fields).Error("session ended with error: %v", err)
		return
	}
	app.logger.WithFields(fields).Debug("session metrics")
	app.logger.Info("session ended")
}

// Mode returns the current render mode.
func (app *Application) Mode() renderer.Mode {
	return app.mode
}

// State returns the current session state.
func (app *Application) State() State {
	return app.state
}

// Position returns the logical cursor position.
func (app *Application) Position() core.Position {
	return app.nav.Position()
}

// Metrics returns the session metrics.
func (app *Application) Metrics() *Metrics {
	return app.metrics
}

// SessionID returns the id attached to this session's log lines.
func (app *Application) SessionID() string {
	return app.sessionID
}

// IsRunning returns true if the session loop is active.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}
