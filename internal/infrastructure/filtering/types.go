package filtering

// FilterState represents the current state of the tracker filter.
type FilterState string

const (
	// StateActive means requests are checked against the blocklist.
	StateActive FilterState = "active"
	// StateDisabled means every request passes.
	StateDisabled FilterState = "disabled"
)

// FilterIdentifier is the identifier used when storing compiled WebKit rules.
const FilterIdentifier = "void-trackers"

// DefaultBlocklist holds the substrings of known tracker hosts.
var DefaultBlocklist = []string{
	"doubleclick.net",
	"google-analytics.com",
	"googletagmanager.com",
	"facebook.net",
	"adsystem.com",
}

// contentRule is one WebKit content-blocker rule.
type contentRule struct {
	Trigger ruleTrigger `json:"trigger"`
	Action  ruleAction  `json:"action"`
}

type ruleTrigger struct {
	URLFilter string `json:"url-filter"`
}

type ruleAction struct {
	Type string `json:"type"`
}
