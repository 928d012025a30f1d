package webkit

import (
	"context"
	"errors"
	"fmt"
	"sync"

	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"
	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/glib/v2"

	"github.com/void-browser/void/internal/infrastructure/filtering"
	"github.com/void-browser/void/internal/logging"
)

// ContentFilter compiles the tracker rules once and toggles the compiled
// filter on user content managers.
type ContentFilter struct {
	store *webkit.UserContentFilterStore

	mu       sync.RWMutex
	compiled *webkit.UserContentFilter
}

// NewContentFilter opens the compiled filter store at storagePath.
func NewContentFilter(storagePath string) (*ContentFilter, error) {
	store := webkit.NewUserContentFilterStore(storagePath)
	if store == nil {
		return nil, fmt.Errorf("failed to create UserContentFilterStore at %s", storagePath)
	}
	return &ContentFilter{store: store}, nil
}

// Compile compiles rules asynchronously; onComplete runs on the main loop.
func (cf *ContentFilter) Compile(ctx context.Context, rules []byte, onComplete func(error)) {
	log := logging.FromContext(ctx)
	if len(rules) == 0 {
		onComplete(errors.New("empty filter rules"))
		return
	}

	log.Debug().
		Str("identifier", filtering.FilterIdentifier).
		Int("rules_bytes", len(rules)).
		Msg("compiling content filter")

	cf.store.Save(ctx, filtering.FilterIdentifier, glib.NewBytesWithGo(rules), func(result gio.AsyncResulter) {
		filter, err := cf.store.SaveFinish(result)
		if err != nil {
			onComplete(fmt.Errorf("compile filter: %w", err))
			return
		}
		if filter == nil {
			onComplete(errors.New("filter compilation returned nil"))
			return
		}

		cf.mu.Lock()
		cf.compiled = filter
		cf.mu.Unlock()

		log.Debug().Str("identifier", filtering.FilterIdentifier).Msg("content filter compiled")
		onComplete(nil)
	})
}

// Ready reports whether the filter has been compiled.
func (cf *ContentFilter) Ready() bool {
	cf.mu.RLock()
	defer cf.mu.RUnlock()
	return cf.compiled != nil
}

// Apply adds the compiled filter to ucm when enabled, removes it otherwise.
// Before compilation finishes it does nothing.
func (cf *ContentFilter) Apply(ctx context.Context, ucm *webkit.UserContentManager, enabled bool) {
	if ucm == nil {
		return
	}
	cf.mu.RLock()
	filter := cf.compiled
	cf.mu.RUnlock()
	if filter == nil {
		return
	}

	// AddFilter replaces a filter with the same identifier.
	if enabled {
		ucm.AddFilter(filter)
	} else {
		ucm.RemoveFilterByID(filtering.FilterIdentifier)
	}
	logging.FromContext(ctx).Debug().Bool("enabled", enabled).Msg("content filter applied")
}
