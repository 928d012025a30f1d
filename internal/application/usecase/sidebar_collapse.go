package usecase

import (
	"context"

	"github.com/void-browser/void/internal/application/port"
	"github.com/void-browser/void/internal/domain/entity"
	"github.com/void-browser/void/internal/logging"
)

// LabelToggler hides or shows tab labels and close buttons.
type LabelToggler interface {
	SetCompact(compact bool)
}

// SidebarCollapseController runs the sidebar auto-collapse state machine.
// Each transition bumps a generation counter; animation steps, completions
// and delayed reveals carrying an older generation do nothing.
type SidebarCollapseController struct {
	sidebar   port.Sidebar
	labels    LabelToggler
	animator  port.Animator
	scheduler port.Scheduler

	state     entity.SidebarState
	enabled   bool
	fullWidth int
	gen       uint64

	cancelAnim   func()
	cancelReveal func()
}

// NewSidebarCollapseController applies the initial layout for autoCollapse.
func NewSidebarCollapseController(
	sidebar port.Sidebar,
	labels LabelToggler,
	animator port.Animator,
	scheduler port.Scheduler,
	fullWidth int,
	autoCollapse bool,
) *SidebarCollapseController {
	c := &SidebarCollapseController{
		sidebar:   sidebar,
		labels:    labels,
		animator:  animator,
		scheduler: scheduler,
		fullWidth: entity.ClampSidebarWidth(fullWidth),
	}
	c.force(autoCollapse)
	return c
}

// State returns the current state.
func (c *SidebarCollapseController) State() entity.SidebarState { return c.state }

// Enabled reports whether auto-collapse is on.
func (c *SidebarCollapseController) Enabled() bool { return c.enabled }

// FullWidth returns the expanded width.
func (c *SidebarCollapseController) FullWidth() int { return c.fullWidth }

// bump starts a new generation and cancels pending work of the previous one.
func (c *SidebarCollapseController) bump() uint64 {
	c.gen++
	if c.cancelAnim != nil {
		c.cancelAnim()
		c.cancelAnim = nil
	}
	if c.cancelReveal != nil {
		c.cancelReveal()
		c.cancelReveal = nil
	}
	return c.gen
}

func (c *SidebarCollapseController) stepFor(gen uint64) func(int) {
	return func(width int) {
		if gen != c.gen {
			return
		}
		c.sidebar.SetWidth(width)
	}
}

// PointerEnter expands a collapsed sidebar and reveals labels once the
// animation and reveal delay have elapsed.
func (c *SidebarCollapseController) PointerEnter(ctx context.Context) {
	if !c.enabled || c.state != entity.SidebarCollapsed {
		return
	}
	gen := c.bump()
	c.state = entity.SidebarExpanding

	logging.FromContext(ctx).Trace().Uint64("gen", gen).Msg("sidebar expanding")

	c.cancelAnim = c.animator.Animate(c.sidebar.Width(), c.fullWidth, entity.SidebarAnimationDuration,
		c.stepFor(gen),
		func() {
			if gen != c.gen {
				return
			}
			c.cancelReveal = c.scheduler.AfterFunc(entity.SidebarRevealDelay, func() {
				if gen != c.gen {
					return
				}
				c.labels.SetCompact(false)
				c.state = entity.SidebarExpanded
			})
		})
}

// PointerLeave hides labels at once and animates to the collapsed width.
func (c *SidebarCollapseController) PointerLeave(ctx context.Context) {
	if !c.enabled || c.state == entity.SidebarCollapsed {
		return
	}
	gen := c.bump()
	c.state = entity.SidebarCollapsed
	c.labels.SetCompact(true)

	logging.FromContext(ctx).Trace().Uint64("gen", gen).Msg("sidebar collapsing")

	c.cancelAnim = c.animator.Animate(c.sidebar.Width(), entity.CollapsedSidebarWidth, entity.SidebarAnimationDuration,
		c.stepFor(gen), nil)
}

// SetAutoCollapse switches auto-collapse. Off forces the expanded layout at
// the stored width, on forces the collapsed layout. In-flight animations are dropped.
func (c *SidebarCollapseController) SetAutoCollapse(ctx context.Context, enabled bool) {
	c.force(enabled)
	logging.FromContext(ctx).Debug().
		Bool("auto_collapse", enabled).
		Stringer("state", c.state).
		Msg("sidebar auto-collapse changed")
}

func (c *SidebarCollapseController) force(collapsed bool) {
	c.bump()
	c.enabled = collapsed
	if collapsed {
		c.state = entity.SidebarCollapsed
		c.labels.SetCompact(true)
		c.sidebar.SetWidth(entity.CollapsedSidebarWidth)
		return
	}
	c.state = entity.SidebarExpanded
	c.labels.SetCompact(false)
	c.sidebar.SetWidth(c.fullWidth)
}

// SetFullWidth changes the expanded width. The sidebar is resized at once
// unless it is currently collapsed.
func (c *SidebarCollapseController) SetFullWidth(width int) {
	c.fullWidth = entity.ClampSidebarWidth(width)
	if c.state == entity.SidebarCollapsed {
		return
	}
	c.bump()
	c.state = entity.SidebarExpanded
	c.labels.SetCompact(false)
	c.sidebar.SetWidth(c.fullWidth)
}
