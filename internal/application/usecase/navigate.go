package usecase

import (
	"context"
	"fmt"

	"github.com/void-browser/void/internal/application/port"
	"github.com/void-browser/void/internal/domain/entity"
	"github.com/void-browser/void/internal/domain/url"
	"github.com/void-browser/void/internal/logging"
)

// StartPagePath is the bundled start page, relative to the install directory.
const StartPagePath = "void-hub/index.html"

// logURLMaxLen is the max length for URLs in log messages.
const logURLMaxLen = 60

// CurrentSurfaceProvider returns the surface of the active tab.
type CurrentSurfaceProvider interface {
	Current() port.Surface
}

// NavigateUseCase turns URL bar input into a load on the active tab.
type NavigateUseCase struct {
	tabs       CurrentSurfaceProvider
	installDir string
}

// NewNavigateUseCase creates a navigation use case resolving local paths under installDir.
func NewNavigateUseCase(tabs CurrentSurfaceProvider, installDir string) *NavigateUseCase {
	return &NavigateUseCase{tabs: tabs, installDir: installDir}
}

// NavigateToURL resolves text and loads it in the current tab.
// Empty input is a no-op and returns "".
func (uc *NavigateUseCase) NavigateToURL(ctx context.Context, text string) (string, error) {
	log := logging.FromContext(ctx)

	target, err := url.ResolveInput(text, uc.installDir)
	if err != nil {
		log.Warn().Err(err).Str("input", truncateURL(text, logURLMaxLen)).Msg("navigation rejected")
		return "", fmt.Errorf("resolve %q: %w", text, err)
	}
	if target == "" {
		return "", nil
	}

	surface := uc.tabs.Current()
	if surface == nil {
		return "", ErrNoActiveTab
	}
	surface.LoadURI(target)

	log.Debug().Str("url", truncateURL(target, logURLMaxLen)).Msg("navigating")
	return target, nil
}

// HomeURL returns the URL a new tab opens for the given settings.
// The bundled start page is used for the void mode or an empty custom URL.
func (uc *NavigateUseCase) HomeURL(s entity.Settings) string {
	if target := s.HomeTarget(); target != "" {
		return url.Normalize(target)
	}
	return uc.StartPageURL()
}

// StartPageURL returns the file:// URL of the bundled start page.
func (uc *NavigateUseCase) StartPageURL() string {
	start, err := url.ResolveLocalPath(uc.installDir, StartPagePath)
	if err != nil {
		return "about:blank"
	}
	return start
}

// truncateURL shortens a URL for logging purposes.
func truncateURL(u string, maxLen int) string {
	if len(u) <= maxLen {
		return u
	}
	return u[:maxLen-3] + "..."
}
