// Package app wires the editing core, the document, the keymap and the
// renderer into the editor's control loop.
//
// The loop is single-threaded: each iteration draws one frame and then
// blocks on the next backend event. Key events go through the keymap to
// the dispatcher; the dispatch result drives saving, status messages and
// quitting.
package app

import (
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dshills/ted/internal/config"
	"github.com/dshills/ted/internal/dispatcher"
	"github.com/dshills/ted/internal/document"
	"github.com/dshills/ted/internal/engine/buffer"
	"github.com/dshills/ted/internal/input/keymap"
	"github.com/dshills/ted/internal/renderer"
	"github.com/dshills/ted/internal/renderer/backend"
	"github.com/dshills/ted/internal/renderer/viewport"
)

// Application is the central coordinator for the editor.
type Application struct {
	config  *config.Config
	logger  *Logger
	metrics *Metrics

	doc        *document.Document
	buf        *buffer.Buffer
	dispatcher *dispatcher.Dispatcher
	keymap     *keymap.Keymap

	viewport   *viewport.Viewport
	renderOpts renderer.Options
	renderer   *renderer.Renderer
	backend    backend.Backend

	mode    dispatcher.Mode
	message string
	isError bool

	running      atomic.Bool
	shutdownOnce sync.Once
}

// Options configures the application.
type Options struct {
	// Config holds resolved settings. Nil means config.Default().
	Config *config.Config

	// Path is the file to edit. Empty starts an unnamed document.
	Path string

	// Logger receives log output. Nil discards it.
	Logger *Logger
}

// New loads the document and builds every component except the backend.
func New(opts Options) (*Application, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = NullLogger
	}

	app := &Application{
		config:   cfg,
		logger:   logger,
		metrics:  NewMetrics(),
		viewport: viewport.New(),
		mode:     dispatcher.ModeEdit,
	}

	if err := app.loadDocument(opts.Path); err != nil {
		return nil, err
	}

	km, err := buildKeymap(cfg.Keymap)
	if err != nil {
		return nil, &InitError{Component: "keymap", Err: err}
	}
	app.keymap = km

	ro, err := renderOptions(cfg)
	if err != nil {
		return nil, &InitError{Component: "renderer", Err: err}
	}
	app.renderOpts = ro

	app.setMessage(app.keyHint(), false)
	return app, nil
}

func (app *Application) loadDocument(path string) error {
	log := app.logger.WithComponent("document")

	doc := document.New()
	if path != "" {
		var err error
		doc, err = document.Load(path)
		if err != nil {
			log.Error("load failed: %v", err)
			return &InitError{Component: "document", Err: NewOperationError("open", path, err)}
		}
		if doc.Exists {
			log.Info("loaded %s: %d lines, %s, %s", path, len(doc.Lines), doc.LineEnding, doc.Encoding)
		} else {
			log.Info("new file %s", path)
		}
	}

	app.doc = doc
	app.buf = buffer.NewBufferFromLines(doc.Lines)
	app.dispatcher = dispatcher.New(app.buf, doc.Path)
	return nil
}

// keyHint lists the save and quit keys for the initial status message.
func (app *Application) keyHint() string {
	var parts []string
	if key := preferredKey(app.keymap.KeysFor(dispatcher.ActionSave)); key != "" {
		parts = append(parts, key+" save")
	}
	if key := preferredKey(app.keymap.KeysFor(dispatcher.ActionQuit)); key != "" {
		parts = append(parts, key+" quit")
	}
	return strings.Join(parts, " | ")
}

// preferredKey picks a Ctrl chord when there is one.
func preferredKey(keys []string) string {
	for _, k := range keys {
		if strings.HasPrefix(k, "Ctrl+") {
			return k
		}
	}
	if len(keys) > 0 {
		return keys[0]
	}
	return ""
}

// SetBackend initializes b and attaches the renderer to it.
func (app *Application) SetBackend(b backend.Backend) error {
	if app.running.Load() {
		return ErrAlreadyRunning
	}
	if err := b.Init(); err != nil {
		return &InitError{Component: "backend", Err: err}
	}

	app.backend = b
	app.renderer = renderer.New(b, app.viewport, app.renderOpts)
	return nil
}

// Run draws frames and handles events until the user quits. It returns
// ErrQuit on a normal exit.
func (app *Application) Run() error {
	if app.backend == nil {
		return ErrNoBackend
	}
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	app.logger.Info("started")
	for {
		app.render()

		ev := app.backend.PollEvent()
		if err := app.handleEvent(ev); err != nil {
			return err
		}
	}
}

// Interrupt asks a running loop to exit. It is safe to call from another
// goroutine, e.g. a signal handler.
func (app *Application) Interrupt() {
	if app.backend != nil {
		app.backend.PostEvent(backend.Event{Type: backend.EventInterrupt})
	}
}

// Shutdown releases the backend. It is safe to call more than once.
func (app *Application) Shutdown() {
	app.shutdownOnce.Do(func() {
		if app.backend != nil {
			app.backend.Shutdown()
		}

		s := app.metrics.Snapshot()
		app.logger.WithFields(map[string]any{
			"frames": s.FrameCount,
			"keys":   s.KeyCount,
			"edits":  s.EditCount,
			"saves":  s.SaveCount,
		}).Info("shutdown after %s", s.Uptime.Round(time.Millisecond))
	})
}

func (app *Application) render() {
	if app.renderer == nil {
		return
	}

	f := renderer.Frame{
		Source:   app.buf,
		Name:     app.doc.Name(),
		Modified: app.doc.Modified,
		Mode:     app.mode.String(),
		Message:  app.message,
		IsError:  app.isError,
	}
	if app.mode == dispatcher.ModeSavePrompt {
		f.Prompt = &renderer.Prompt{Label: "Save as:", Source: app.dispatcher.Prompt()}
	}

	start := time.Now()
	app.renderer.Render(f)
	app.metrics.RecordFrame(time.Since(start))
}

func (app *Application) setMessage(msg string, isError bool) {
	app.message = msg
	app.isError = isError
}

// Buffer returns the document buffer.
func (app *Application) Buffer() *buffer.Buffer {
	return app.buf
}

// Document returns the document being edited.
func (app *Application) Document() *document.Document {
	return app.doc
}

// Mode returns the current input mode.
func (app *Application) Mode() dispatcher.Mode {
	return app.mode
}

// Message returns the status bar message and whether it is an error.
func (app *Application) Message() (string, bool) {
	return app.message, app.isError
}

// Metrics returns the application's metrics.
func (app *Application) Metrics() *Metrics {
	return app.metrics
}

// Logger returns the application's logger.
func (app *Application) Logger() *Logger {
	return app.logger
}
