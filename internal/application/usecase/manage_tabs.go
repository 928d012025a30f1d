package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/void-browser/void/internal/application/port"
	"github.com/void-browser/void/internal/domain/entity"
	"github.com/void-browser/void/internal/logging"
)

// tabHandle holds the runtime objects backing a tab.
type tabHandle struct {
	surface port.Surface
	entry   port.TabEntryView
}

// ManageTabsUseCase owns every tab: its record, surface and sidebar entry.
// All methods run on the UI thread.
type ManageTabsUseCase struct {
	factory port.SurfaceFactory
	sidebar port.Sidebar
	host    port.SurfaceHost
	urlBar  port.URLBar
	home    func() string

	tabs    *entity.TabList
	handles map[entity.TabID]*tabHandle
	compact bool
}

// NewManageTabsUseCase creates a tab manager. home returns the URL opened
// when a tab is added without one.
func NewManageTabsUseCase(
	factory port.SurfaceFactory,
	sidebar port.Sidebar,
	host port.SurfaceHost,
	urlBar port.URLBar,
	home func() string,
) *ManageTabsUseCase {
	return &ManageTabsUseCase{
		factory: factory,
		sidebar: sidebar,
		host:    host,
		urlBar:  urlBar,
		home:    home,
		tabs:    entity.NewTabList(),
		handles: make(map[entity.TabID]*tabHandle),
	}
}

// AddTab creates a surface, loads rawURL (or the home URL when empty) and makes it active.
func (uc *ManageTabsUseCase) AddTab(ctx context.Context, rawURL, label string) (port.Surface, entity.TabID, error) {
	target := strings.TrimSpace(rawURL)
	if target == "" && uc.home != nil {
		target = uc.home()
	}

	surface, err := uc.factory.Create(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("create surface: %w", err)
	}

	id := uc.tabs.NextID()
	ctx = logging.WithTabID(ctx, string(id))
	log := logging.FromContext(ctx)

	tab := entity.NewTab(id, label)
	tab.URI = target

	entry := uc.sidebar.AddEntry(tab.DisplayTitle(), port.TabEntryCallbacks{
		OnSelect: func() { uc.SwitchTabByID(ctx, id) },
		OnClose:  func() { _ = uc.CloseTabByID(ctx, id) },
	})
	entry.SetCompact(uc.compact)

	uc.tabs.Add(tab)
	uc.handles[id] = &tabHandle{surface: surface, entry: entry}
	uc.host.Attach(string(id), surface)
	surface.SetCallbacks(uc.callbacksFor(id))

	if target != "" {
		surface.LoadURI(target)
	}
	uc.activate(id)

	log.Info().
		Str("url", target).
		Int("position", tab.Position).
		Int("count", uc.tabs.Count()).
		Msg("tab created")

	return surface, id, nil
}

// callbacksFor binds surface events to the tab ID, never to its position.
func (uc *ManageTabsUseCase) callbacksFor(id entity.TabID) *port.SurfaceCallbacks {
	return &port.SurfaceCallbacks{
		OnTitleChanged: func(title string) {
			tab, h := uc.lookup(id)
			if tab == nil {
				return
			}
			tab.Title = title
			h.entry.SetTitle(tab.DisplayTitle())
		},
		OnURIChanged: func(uri string) {
			tab, _ := uc.lookup(id)
			if tab == nil {
				return
			}
			tab.URI = uri
			if uc.tabs.IsActive(id) {
				uc.urlBar.SetText(uri)
			}
		},
		OnIconChanged: func(icon port.Favicon) {
			tab, h := uc.lookup(id)
			if tab == nil {
				return
			}
			tab.HasIcon = icon != nil
			h.entry.SetIcon(icon)
		},
	}
}

func (uc *ManageTabsUseCase) lookup(id entity.TabID) (*entity.Tab, *tabHandle) {
	tab := uc.tabs.Find(id)
	h := uc.handles[id]
	if tab == nil || h == nil {
		return nil, nil
	}
	return tab, h
}

// activate moves the highlight to id, presents its surface and syncs the URL bar.
func (uc *ManageTabsUseCase) activate(id entity.TabID) {
	tab, h := uc.lookup(id)
	if tab == nil {
		return
	}
	if prev := uc.tabs.ActiveTabID; prev != id {
		if ph := uc.handles[prev]; ph != nil {
			ph.entry.SetActive(false)
		}
	}
	uc.tabs.ActiveTabID = id
	h.entry.SetActive(true)
	uc.host.Present(string(id))

	uri := h.surface.URI()
	if uri == "" {
		uri = tab.URI
	}
	uc.urlBar.SetText(uri)
}

// SwitchTab activates the tab at index. Out-of-range indexes are ignored.
func (uc *ManageTabsUseCase) SwitchTab(ctx context.Context, index int) bool {
	tab := uc.tabs.At(index)
	if tab == nil {
		logging.FromContext(ctx).Debug().Int("index", index).Msg("switch ignored, index out of range")
		return false
	}
	return uc.SwitchTabByID(ctx, tab.ID)
}

// SwitchTabByID activates the tab with the given ID.
func (uc *ManageTabsUseCase) SwitchTabByID(ctx context.Context, id entity.TabID) bool {
	if uc.tabs.Find(id) == nil {
		return false
	}
	from := uc.tabs.ActiveTabID
	uc.activate(id)

	logging.FromContext(ctx).Debug().
		Str("from", string(from)).
		Str("to", string(id)).
		Msg("switched tab")
	return true
}

// CloseTab closes the tab at index. It returns false when the index is out
// of range or only one tab remains.
func (uc *ManageTabsUseCase) CloseTab(ctx context.Context, index int) bool {
	tab := uc.tabs.At(index)
	if tab == nil {
		return false
	}
	return uc.CloseTabByID(ctx, tab.ID) == nil
}

// CloseTabByID detaches and destroys the tab's surface and removes its entry.
// The tab at min(index, count-1) becomes active when the active tab closes.
func (uc *ManageTabsUseCase) CloseTabByID(ctx context.Context, id entity.TabID) error {
	ctx = logging.WithTabID(ctx, string(id))
	log := logging.FromContext(ctx)

	index := uc.tabs.IndexOf(id)
	if index < 0 {
		return fmt.Errorf("close %s: %w", id, ErrTabNotFound)
	}
	if uc.tabs.Count() <= 1 {
		log.Debug().Msg("refusing to close last tab")
		return ErrLastTab
	}

	wasActive := uc.tabs.IsActive(id)
	uc.teardown(id)
	uc.tabs.Remove(id)

	if wasActive {
		uc.activate(uc.tabs.ActiveTabID)
	}

	log.Info().
		Int("index", index).
		Str("new_active", string(uc.tabs.ActiveTabID)).
		Int("remaining", uc.tabs.Count()).
		Msg("tab closed")
	return nil
}

// teardown stops the page before releasing the surface.
func (uc *ManageTabsUseCase) teardown(id entity.TabID) {
	h := uc.handles[id]
	if h == nil {
		return
	}
	h.surface.Detach()
	uc.host.Remove(string(id))
	h.surface.Destroy()
	uc.sidebar.RemoveEntry(h.entry)
	delete(uc.handles, id)
}

// CloseAll tears down every tab in order. Used when the window closes.
func (uc *ManageTabsUseCase) CloseAll(ctx context.Context) {
	count := uc.tabs.Count()
	for uc.tabs.Count() > 0 {
		id := uc.tabs.Tabs[0].ID
		uc.teardown(id)
		uc.tabs.Remove(id)
	}
	logging.FromContext(ctx).Info().Int("closed", count).Msg("all tabs closed")
}

// Current returns the active tab's surface, or nil.
func (uc *ManageTabsUseCase) Current() port.Surface {
	if h := uc.handles[uc.tabs.ActiveTabID]; h != nil {
		return h.surface
	}
	return nil
}

// Count returns the number of open tabs.
func (uc *ManageTabsUseCase) Count() int { return uc.tabs.Count() }

// ActiveIndex returns the active tab's position, or -1.
func (uc *ManageTabsUseCase) ActiveIndex() int { return uc.tabs.ActiveIndex() }

// IndexOf returns the current position of id, or -1.
func (uc *ManageTabsUseCase) IndexOf(id entity.TabID) int { return uc.tabs.IndexOf(id) }

// Tabs returns a snapshot of the tab records in order.
func (uc *ManageTabsUseCase) Tabs() []entity.Tab {
	out := make([]entity.Tab, 0, uc.tabs.Count())
	for _, tab := range uc.tabs.Tabs {
		out = append(out, *tab)
	}
	return out
}

// SurfaceFor returns the surface of id, or nil.
func (uc *ManageTabsUseCase) SurfaceFor(id entity.TabID) port.Surface {
	if h := uc.handles[id]; h != nil {
		return h.surface
	}
	return nil
}

// SetCompact hides or shows labels and close buttons on every entry,
// including entries added later.
func (uc *ManageTabsUseCase) SetCompact(compact bool) {
	uc.compact = compact
	for _, tab := range uc.tabs.Tabs {
		if h := uc.handles[tab.ID]; h != nil {
			h.entry.SetCompact(compact)
		}
	}
}

// Back navigates the current tab back in history.
func (uc *ManageTabsUseCase) Back() {
	if s := uc.Current(); s != nil {
		s.GoBack()
	}
}

// Forward navigates the current tab forward in history.
func (uc *ManageTabsUseCase) Forward() {
	if s := uc.Current(); s != nil {
		s.GoForward()
	}
}

// Reload reloads the current tab.
func (uc *ManageTabsUseCase) Reload() {
	if s := uc.Current(); s != nil {
		s.Reload()
	}
}
