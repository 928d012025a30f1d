package webkit

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"
	"github.com/diamondburned/gotk4/pkg/glib/v2"

	"github.com/void-browser/void/internal/application/port"
	"github.com/void-browser/void/internal/infrastructure/filtering"
	"github.com/void-browser/void/internal/logging"
)

// ProfileConfig locates the profile's on-disk state.
type ProfileConfig struct {
	DataDir        string
	CacheDir       string
	FilterStoreDir string
	// BridgeScript is injected into bundled file:// pages.
	BridgeScript string
}

// DownloadHandler receives downloads started by any surface of the profile.
type DownloadHandler func(ctx context.Context, req port.DownloadRequest)

// Profile is the browsing state shared by every surface of a window: one
// persistent network session, the tracker filter and the bridge router.
type Profile struct {
	ctx          context.Context
	session      *webkit.NetworkSession
	tracker      *filtering.TrackerFilter
	filter       *ContentFilter
	router       *MessageRouter
	bridgeScript string

	mu       sync.Mutex
	surfaces map[uint64]*Surface
	nextID   uint64
	download DownloadHandler
}

var (
	_ port.SurfaceFactory = (*Profile)(nil)
	_ port.EventEmitter   = (*Profile)(nil)
)

// NewProfile creates the persistent network session and compiles the tracker
// rules. It must run on the GTK main thread before the first surface exists.
func NewProfile(ctx context.Context, cfg ProfileConfig, tracker *filtering.TrackerFilter, router *MessageRouter) (*Profile, error) {
	if cfg.DataDir == "" || cfg.CacheDir == "" {
		return nil, errors.New("profile data and cache directories are required")
	}
	if tracker == nil || router == nil {
		return nil, errors.New("profile requires a tracker filter and a message router")
	}
	ctx = logging.WithComponent(ctx, "profile")
	log := logging.FromContext(ctx)

	session := webkit.NewNetworkSession(cfg.DataDir, cfg.CacheDir)
	if session == nil {
		return nil, errors.New("failed to create persistent network session")
	}
	if session.IsEphemeral() {
		return nil, errors.New("network session is ephemeral despite data directories")
	}

	cookiePath := filepath.Join(cfg.DataDir, "cookies.db")
	if cookies := session.CookieManager(); cookies != nil {
		cookies.SetPersistentStorage(cookiePath, webkit.CookiePersistentStorageSqlite)
		cookies.SetAcceptPolicy(webkit.CookiePolicyAcceptNoThirdParty)
	}
	session.SetPersistentCredentialStorageEnabled(true)

	filterDir := cfg.FilterStoreDir
	if filterDir == "" {
		filterDir = filepath.Join(cfg.CacheDir, "filters")
	}
	filter, err := NewContentFilter(filterDir)
	if err != nil {
		return nil, err
	}

	p := &Profile{
		ctx:          ctx,
		session:      session,
		tracker:      tracker,
		filter:       filter,
		router:       router,
		bridgeScript: cfg.BridgeScript,
		surfaces:     make(map[uint64]*Surface),
	}

	session.ConnectDownloadStarted(p.onDownloadStarted)

	rules, err := tracker.ContentRules()
	if err != nil {
		return nil, fmt.Errorf("build tracker rules: %w", err)
	}
	filter.Compile(ctx, rules, func(err error) {
		if err != nil {
			log.Warn().Err(err).Msg("tracker content filter unavailable, navigation checks only")
			return
		}
		p.applyFilter(tracker.Enabled())
	})

	tracker.OnChange(func(enabled bool) {
		glib.IdleAdd(func() bool {
			p.applyFilter(enabled)
			return false
		})
	})

	log.Info().
		Str("data", cfg.DataDir).
		Str("cache", cfg.CacheDir).
		Str("cookies", cookiePath).
		Msg("persistent profile ready")
	return p, nil
}

// SetDownloadHandler routes future downloads to h.
func (p *Profile) SetDownloadHandler(h DownloadHandler) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.download = h
}

// Create implements port.SurfaceFactory.
func (p *Profile) Create(ctx context.Context) (port.Surface, error) {
	p.mu.Lock()
	p.nextID++
	id := p.nextID
	p.mu.Unlock()

	s, err := newSurface(logging.WithComponent(ctx, "surface"), id, p)
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	p.surfaces[id] = s
	p.mu.Unlock()
	return s, nil
}

func (p *Profile) forget(id uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.surfaces, id)
}

func (p *Profile) live() []*Surface {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]*Surface, 0, len(p.surfaces))
	for _, s := range p.surfaces {
		out = append(out, s)
	}
	return out
}

// LiveSurfaces returns the number of surfaces not yet destroyed.
func (p *Profile) LiveSurfaces() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.surfaces)
}

func (p *Profile) applyFilter(enabled bool) {
	for _, s := range p.live() {
		if s.IsDestroyed() {
			continue
		}
		p.filter.Apply(p.ctx, s.ucm, enabled)
	}
}

// Emit implements port.EventEmitter by broadcasting to bundled pages.
func (p *Profile) Emit(ctx context.Context, name string, detail any) error {
	script, err := EmitScript(name, detail)
	if err != nil {
		return err
	}
	allow := p.router.allow
	for _, s := range p.live() {
		if allow != nil && !allow(s.URI()) {
			continue
		}
		s.RunJavaScript(ctx, script)
	}
	return nil
}

func (p *Profile) onDownloadStarted(download *webkit.Download) {
	p.mu.Lock()
	handler := p.download
	p.mu.Unlock()

	log := logging.FromContext(p.ctx)
	if handler == nil {
		log.Warn().Msg("download started without a handler, cancelling")
		download.Cancel()
		return
	}

	download.SetAllowOverwrite(false)
	download.ConnectDecideDestination(func(suggestedFilename string) bool {
		handler(p.ctx, newDownloadRequest(download, suggestedFilename))
		// Destination is set asynchronously once the user picks a path.
		return true
	})
}
