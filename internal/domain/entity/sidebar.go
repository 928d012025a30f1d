package entity

import (
	"math"
	"time"
)

// SidebarState is the auto-collapse state of the sidebar.
type SidebarState int

const (
	SidebarExpanded SidebarState = iota
	SidebarCollapsed
	SidebarExpanding
)

func (s SidebarState) String() string {
	switch s {
	case SidebarExpanded:
		return "expanded"
	case SidebarCollapsed:
		return "collapsed"
	case SidebarExpanding:
		return "expanding"
	default:
		return "unknown"
	}
}

const (
	// SidebarAnimationDuration is the length of a width animation.
	SidebarAnimationDuration = 200 * time.Millisecond
	// SidebarRevealDelay separates the end of an expansion from showing labels.
	SidebarRevealDelay = 120 * time.Millisecond
)

// EaseOutCubic maps linear progress t in [0,1] to eased progress.
func EaseOutCubic(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return 1 - math.Pow(1-t, 3)
}

// InterpolateWidth returns the width at eased progress t between from and to.
func InterpolateWidth(from, to int, t float64) int {
	return from + int(math.Round(float64(to-from)*EaseOutCubic(t)))
}
