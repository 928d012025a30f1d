package filtering

import (
	"encoding/json"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShouldBlock(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		enabled bool
		blocked bool
	}{
		{name: "doubleclick blocked", url: "https://ad.doubleclick.net/x", enabled: true, blocked: true},
		{name: "analytics script blocked", url: "https://www.google-analytics.com/analytics.js", enabled: true, blocked: true},
		{name: "tag manager blocked", url: "https://www.googletagmanager.com/gtm.js?id=1", enabled: true, blocked: true},
		{name: "facebook sdk blocked", url: "https://connect.facebook.net/en_US/sdk.js", enabled: true, blocked: true},
		{name: "substring match is imprecise", url: "https://notadsystem.com/", enabled: true, blocked: true},
		{name: "match in query string", url: "https://example.com/?ref=doubleclick.net", enabled: true, blocked: true},
		{name: "unrelated host passes", url: "https://example.com/", enabled: true, blocked: false},
		{name: "disabled passes trackers", url: "https://ad.doubleclick.net/x", enabled: false, blocked: false},
		{name: "disabled passes everything", url: "https://example.com/", enabled: false, blocked: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewTrackerFilter(tt.enabled)
			assert.Equal(t, tt.blocked, f.ShouldBlock(tt.url))
		})
	}
}

func TestSetEnabled_NotifiesOnFlip(t *testing.T) {
	f := NewTrackerFilter(true)
	var got []bool
	f.OnChange(func(enabled bool) { got = append(got, enabled) })

	f.SetEnabled(true)
	f.SetEnabled(false)
	f.SetEnabled(false)
	f.SetEnabled(true)

	assert.Equal(t, []bool{false, true}, got)
	assert.Equal(t, StateActive, f.State())
	assert.False(t, NewTrackerFilter(false).Enabled())
	assert.Equal(t, StateDisabled, NewTrackerFilter(false).State())
}

func TestContentRules(t *testing.T) {
	f := NewTrackerFilter(true)
	data, err := f.ContentRules()
	require.NoError(t, err)

	var rules []contentRule
	require.NoError(t, json.Unmarshal(data, &rules))
	require.Len(t, rules, len(DefaultBlocklist))

	for i, rule := range rules {
		assert.Equal(t, "block", rule.Action.Type)
		re := regexp.MustCompile(rule.Trigger.URLFilter)
		assert.True(t, re.MatchString("https://x."+DefaultBlocklist[i]+"/a"))
		assert.False(t, re.MatchString("https://example.com/"))
	}
	assert.Equal(t, `doubleclick\.net`, rules[0].Trigger.URLFilter)
}

func TestBlocklistIsCopied(t *testing.T) {
	f := NewTrackerFilter(true)
	list := f.Blocklist()
	list[0] = "example.com"
	assert.False(t, f.ShouldBlock("https://example.com/"))
}
