// Package filtering blocks requests to known tracker hosts.
package filtering

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/void-browser/void/internal/application/port"
)

// TrackerFilter matches request URLs against a fixed blocklist.
// Matching is a plain substring test, so "adsystem.com" also matches
// "notadsystem.com". The enabled flag may be read from any goroutine.
type TrackerFilter struct {
	blocklist []string
	enabled   atomic.Bool

	mu        sync.Mutex
	listeners []func(enabled bool)
}

var _ port.TrackerToggle = (*TrackerFilter)(nil)

// NewTrackerFilter creates a filter over DefaultBlocklist.
func NewTrackerFilter(enabled bool) *TrackerFilter {
	f := &TrackerFilter{blocklist: append([]string(nil), DefaultBlocklist...)}
	f.enabled.Store(enabled)
	return f
}

// ShouldBlock reports whether requestURL must not be loaded.
func (f *TrackerFilter) ShouldBlock(requestURL string) bool {
	if !f.enabled.Load() {
		return false
	}
	for _, domain := range f.blocklist {
		if strings.Contains(requestURL, domain) {
			return true
		}
	}
	return false
}

// Enabled reports whether the filter is active.
func (f *TrackerFilter) Enabled() bool { return f.enabled.Load() }

// State returns the filter state for status reporting.
func (f *TrackerFilter) State() FilterState {
	if f.Enabled() {
		return StateActive
	}
	return StateDisabled
}

// SetEnabled switches the filter and notifies listeners when the flag changes.
func (f *TrackerFilter) SetEnabled(enabled bool) {
	if f.enabled.Swap(enabled) == enabled {
		return
	}
	f.mu.Lock()
	listeners := append([]func(bool){}, f.listeners...)
	f.mu.Unlock()

	for _, l := range listeners {
		l(enabled)
	}
}

// OnChange registers a callback invoked after the flag flips.
func (f *TrackerFilter) OnChange(fn func(enabled bool)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listeners = append(f.listeners, fn)
}

// Blocklist returns a copy of the blocked substrings.
func (f *TrackerFilter) Blocklist() []string {
	return append([]string(nil), f.blocklist...)
}

// ContentRules renders the blocklist as WebKit content-blocker JSON,
// one block rule per substring.
func (f *TrackerFilter) ContentRules() ([]byte, error) {
	rules := make([]contentRule, 0, len(f.blocklist))
	for _, domain := range f.blocklist {
		rules = append(rules, contentRule{
			Trigger: ruleTrigger{URLFilter: regexp.QuoteMeta(domain)},
			Action:  ruleAction{Type: "block"},
		})
	}
	data, err := json.Marshal(rules)
	if err != nil {
		return nil, fmt.Errorf("encode content rules: %w", err)
	}
	return data, nil
}
