package app

import (
	"fmt"

	"github.com/dshills/ted/internal/dispatcher"
	"github.com/dshills/ted/internal/renderer/backend"
)

// handleEvent processes a backend event. Returns ErrQuit if the
// application should exit.
func (app *Application) handleEvent(ev backend.Event) error {
	switch ev.Type {
	case backend.EventKey:
		return app.handleKeyEvent(ev)
	case backend.EventResize:
		// the next frame reads the new size from the backend
		app.metrics.RecordResize()
		app.logger.Debug("resize %dx%d", ev.Width, ev.Height)
		return nil
	case backend.EventInterrupt:
		app.logger.Info("interrupted")
		return ErrQuit
	default:
		return nil
	}
}

// handleKeyEvent looks the key up and dispatches the resulting command.
func (app *Application) handleKeyEvent(ev backend.Event) error {
	cmd, ok := app.keymap.Lookup(ev)
	app.metrics.RecordKey(ok)
	if !ok {
		app.logger.Debug("unbound key %v rune=%q mod=%d", ev.Key, ev.Rune, ev.Mod)
		return nil
	}

	app.logger.WithComponent("dispatcher").Debug("%s in %s", cmd, app.mode)

	// a message lasts until the next command
	app.setMessage("", false)

	res := app.dispatcher.Dispatch(app.mode, cmd)
	return app.applyResult(res)
}

// applyResult carries out what a dispatch asked for.
func (app *Application) applyResult(res dispatcher.Result) error {
	app.mode = res.Mode
	if res.Message != "" {
		app.setMessage(res.Message, false)
	}

	if res.Edited {
		app.doc.Modified = true
		app.metrics.RecordEdit()
	}

	if res.SavePath != "" {
		app.save(res.SavePath)
	}

	if res.Quit {
		app.logger.Info("quit")
		return ErrQuit
	}
	return nil
}

// save writes the buffer to path. Failures are reported on the status bar
// and never end the loop.
func (app *Application) save(path string) {
	log := app.logger.WithComponent("document")

	n, err := app.doc.SaveAs(path, app.buf.Lines())
	app.metrics.RecordSave(err)
	if err != nil {
		opErr := NewOperationError("save", path, err)
		log.Error("%v", opErr)
		app.setMessage(opErr.Error(), true)
		return
	}

	app.dispatcher.SetPath(path)
	log.Info("wrote %d bytes to %s", n, path)
	app.setMessage(fmt.Sprintf("Saved %d bytes to %s", n, app.doc.Name()), false)
}
