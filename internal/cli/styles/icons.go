// Package styles provides reusable lipgloss-based terminal output.
package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconVersion   = "\uf02b" // tag
	IconGitBranch = "\ue725" // git branch
	IconCalendar  = "\uf073" // calendar
	IconGithub    = "\uf09b" // github
	IconGo        = "\ue627" // go gopher

	IconX      = "\uf00d" // x
	IconConfig = "\ue615" // config
	IconCursor = "\uf054" // chevron-right
)
