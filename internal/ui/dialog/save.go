// Package dialog provides UI dialog implementations for the application layer.
package dialog

import (
	"context"
	"sync"

	"github.com/void-browser/void/internal/application/port"
	"github.com/void-browser/void/internal/logging"
)

// savePrompt shows one save dialog and reports the chosen path ("" on cancel).
type savePrompt interface {
	Show(ctx context.Context, initialDir, suggestedName string, done func(path string, err error))
}

type saveRequest struct {
	ctx        context.Context
	initialDir string
	name       string
	done       func(path string, err error)
}

// SaveDialog implements port.FilePicker. Requests arriving while a dialog is
// open wait their turn.
type SaveDialog struct {
	prompt savePrompt

	mu     sync.Mutex
	active bool
	queue  []saveRequest
}

var _ port.FilePicker = (*SaveDialog)(nil)

// NewSaveDialog creates a picker that shows prompt.
func NewSaveDialog(prompt savePrompt) *SaveDialog {
	return &SaveDialog{prompt: prompt}
}

// PickSavePath implements port.FilePicker.
func (d *SaveDialog) PickSavePath(ctx context.Context, initialDir, suggestedName string, done func(path string, err error)) {
	req := saveRequest{ctx: ctx, initialDir: initialDir, name: suggestedName, done: done}
	if !d.enqueueOrStart(req) {
		return
	}
	d.show(req)
}

func (d *SaveDialog) enqueueOrStart(req saveRequest) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.active {
		d.queue = append(d.queue, req)
		return false
	}
	d.active = true
	return true
}

func (d *SaveDialog) show(req saveRequest) {
	log := logging.FromContext(req.ctx)

	if d.prompt == nil {
		log.Error().Msg("save dialog not available")
		req.done("", nil)
		d.showNext()
		return
	}

	log.Debug().Str("dir", req.initialDir).Str("name", req.name).Msg("showing save dialog")
	d.prompt.Show(req.ctx, req.initialDir, req.name, func(path string, err error) {
		req.done(path, err)
		d.showNext()
	})
}

func (d *SaveDialog) showNext() {
	d.mu.Lock()
	if len(d.queue) == 0 {
		d.active = false
		d.mu.Unlock()
		return
	}
	next := d.queue[0]
	d.queue = d.queue[1:]
	d.mu.Unlock()

	d.show(next)
}
