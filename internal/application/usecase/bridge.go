package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/void-browser/void/internal/application/port"
	"github.com/void-browser/void/internal/domain/entity"
	"github.com/void-browser/void/internal/domain/url"
	"github.com/void-browser/void/internal/logging"
)

// EventSidebarWidthChanged is pushed to pages after the sidebar width changes.
const EventSidebarWidthChanged = "sidebar-width-changed"

// SidebarSettings applies sidebar settings to the live window.
type SidebarSettings interface {
	SetFullWidth(width int)
	SetAutoCollapse(ctx context.Context, enabled bool)
}

// BridgeUseCase implements the settings operations exposed to page script.
// Every mutation persists first; the in-memory document and live state only
// change once the save succeeded.
type BridgeUseCase struct {
	store      port.SettingsStore
	tracker    port.TrackerToggle
	sidebar    SidebarSettings
	emitter    port.EventEmitter
	installDir string

	settings entity.Settings
}

// NewBridgeUseCase creates a bridge over an already loaded settings document.
func NewBridgeUseCase(
	store port.SettingsStore,
	initial entity.Settings,
	tracker port.TrackerToggle,
	installDir string,
) *BridgeUseCase {
	return &BridgeUseCase{
		store:      store,
		tracker:    tracker,
		installDir: installDir,
		settings:   initial.Normalize(),
	}
}

// Attach connects the live window parts, which exist only after the bridge is built.
func (b *BridgeUseCase) Attach(sidebar SidebarSettings, emitter port.EventEmitter) {
	b.sidebar = sidebar
	b.emitter = emitter
}

// GetSettings returns the current settings document.
func (b *BridgeUseCase) GetSettings() entity.Settings {
	return b.settings
}

func (b *BridgeUseCase) persist(ctx context.Context, next entity.Settings) error {
	next = next.Normalize()
	if err := b.store.Save(ctx, next); err != nil {
		logging.FromContext(ctx).Error().Err(err).Str("path", b.store.Path()).Msg("failed to save settings")
		return fmt.Errorf("save settings: %w", err)
	}
	b.settings = next
	return nil
}

// SetSidebarWidth stores the clamped width and resizes the sidebar.
func (b *BridgeUseCase) SetSidebarWidth(ctx context.Context, width int) (int, error) {
	next := b.settings
	next.SidebarWidth = entity.ClampSidebarWidth(width)
	if err := b.persist(ctx, next); err != nil {
		return b.settings.SidebarWidth, err
	}

	applied := b.settings.SidebarWidth
	if b.sidebar != nil {
		b.sidebar.SetFullWidth(applied)
	}
	if b.emitter != nil {
		detail := map[string]int{"width": applied}
		if err := b.emitter.Emit(ctx, EventSidebarWidthChanged, detail); err != nil {
			logging.FromContext(ctx).Debug().Err(err).Msg("sidebar width event not delivered")
		}
	}
	logging.FromContext(ctx).Info().Int("requested", width).Int("width", applied).Msg("sidebar width set")
	return applied, nil
}

// SetEngine stores the search URL template as given.
func (b *BridgeUseCase) SetEngine(ctx context.Context, template string) error {
	next := b.settings
	next.Engine = template
	if err := b.persist(ctx, next); err != nil {
		return err
	}
	logging.FromContext(ctx).Info().Str("engine", b.settings.Engine).Msg("search engine set")
	return nil
}

// SetTracker stores the flag and switches the tracker filter.
func (b *BridgeUseCase) SetTracker(ctx context.Context, enabled bool) error {
	next := b.settings
	next.Tracker = enabled
	if err := b.persist(ctx, next); err != nil {
		return err
	}
	if b.tracker != nil {
		b.tracker.SetEnabled(enabled)
	}
	logging.FromContext(ctx).Info().Bool("tracker", enabled).Msg("tracker filter set")
	return nil
}

// SetDnt stores the Do-Not-Track preference.
func (b *BridgeUseCase) SetDnt(ctx context.Context, enabled bool) error {
	next := b.settings
	next.DNT = enabled
	return b.persist(ctx, next)
}

// SetHomepage stores the homepage mode and, unless the mode is void, its URL.
func (b *BridgeUseCase) SetHomepage(ctx context.Context, mode, homeURL string) error {
	m := entity.HomepageMode(strings.ToLower(strings.TrimSpace(mode)))
	if !m.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidHomepageMode, mode)
	}

	next := b.settings
	next.Homepage = m
	if m != entity.HomepageVoid {
		next.HomepageURL = strings.TrimSpace(homeURL)
	}
	if err := b.persist(ctx, next); err != nil {
		return err
	}
	logging.FromContext(ctx).Info().
		Str("mode", string(m)).
		Str("url", b.settings.HomepageURL).
		Msg("homepage set")
	return nil
}

// SetAutoCollapse stores the flag and toggles the sidebar controller.
func (b *BridgeUseCase) SetAutoCollapse(ctx context.Context, enabled bool) error {
	next := b.settings
	next.AutoCollapse = enabled
	if err := b.persist(ctx, next); err != nil {
		return err
	}
	if b.sidebar != nil {
		b.sidebar.SetAutoCollapse(ctx, enabled)
	}
	return nil
}

// ResolveLocalPath turns a path relative to the install directory into a file:// URL.
// Paths leaving the install directory fail with url.ErrPathEscapesRoot.
func (b *BridgeUseCase) ResolveLocalPath(ctx context.Context, rel string) (string, error) {
	resolved, err := url.ResolveLocalPath(b.installDir, rel)
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("path", rel).Msg("local path rejected")
		return "", err
	}
	return resolved, nil
}

// ApplyExternal adopts a document changed outside the browser and applies
// its live effects without saving it again.
func (b *BridgeUseCase) ApplyExternal(ctx context.Context, s entity.Settings) {
	prev := b.settings
	b.settings = s.Normalize()

	if b.tracker != nil && prev.Tracker != b.settings.Tracker {
		b.tracker.SetEnabled(b.settings.Tracker)
	}
	if b.sidebar != nil {
		if prev.SidebarWidth != b.settings.SidebarWidth {
			b.sidebar.SetFullWidth(b.settings.SidebarWidth)
		}
		if prev.AutoCollapse != b.settings.AutoCollapse {
			b.sidebar.SetAutoCollapse(ctx, b.settings.AutoCollapse)
		}
	}
	logging.FromContext(ctx).Info().Msg("settings reloaded from disk")
}
