package dialog

import (
	"context"
	"path/filepath"

	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/void-browser/void/internal/logging"
)

// NativeSavePrompt shows the platform file chooser in save mode.
type NativeSavePrompt struct {
	parent *gtk.Window
	// current keeps the open chooser alive until it responds.
	current *gtk.FileChooserNative
}

// NewNativeSavePrompt creates a prompt modal to parent.
func NewNativeSavePrompt(parent *gtk.Window) *NativeSavePrompt {
	return &NativeSavePrompt{parent: parent}
}

// Show implements savePrompt.
func (p *NativeSavePrompt) Show(ctx context.Context, initialDir, suggestedName string, done func(path string, err error)) {
	chooser := gtk.NewFileChooserNative("Save File", p.parent, gtk.FileChooserActionSave, "_Save", "_Cancel")
	chooser.SetModal(true)
	if suggestedName != "" {
		chooser.SetCurrentName(suggestedName)
	}
	if initialDir != "" {
		if err := chooser.SetCurrentFolder(gio.NewFileForPath(initialDir)); err != nil {
			logging.FromContext(ctx).Debug().Err(err).Str("dir", initialDir).Msg("cannot preselect folder")
		}
	}

	chooser.ConnectResponse(func(responseID int) {
		p.current = nil
		if gtk.ResponseType(responseID) != gtk.ResponseAccept {
			done("", nil)
			return
		}
		file := chooser.File()
		if file == nil {
			done("", nil)
			return
		}
		done(filepath.Clean(file.Path()), nil)
	})

	p.current = chooser
	chooser.Show()
}
