package component

import (
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/void-browser/void/internal/application/port"
	"github.com/void-browser/void/internal/ui/theme"
)

// URLBar is the address entry in the title strip.
type URLBar struct {
	entry *gtk.Entry
}

var _ port.URLBar = (*URLBar)(nil)

// NewURLBar creates the entry; onSubmit receives the text on Enter.
func NewURLBar(onSubmit func(text string)) *URLBar {
	b := &URLBar{entry: gtk.NewEntry()}
	b.entry.AddCSSClass(theme.ClassURLBar)
	b.entry.SetHExpand(true)
	b.entry.SetPlaceholderText("Search or enter address")
	b.entry.SetInputPurpose(gtk.InputPurposeURL)
	b.entry.ConnectActivate(func() {
		if onSubmit != nil {
			onSubmit(b.entry.Text())
		}
	})
	return b
}

// Widget returns the entry.
func (b *URLBar) Widget() gtk.Widgetter { return b.entry }

func (b *URLBar) SetText(text string) {
	b.entry.SetText(text)
}

func (b *URLBar) Text() string { return b.entry.Text() }
