package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/void-browser/void/internal/domain/entity"
)

type collapseFixture struct {
	c        *SidebarCollapseController
	sidebar  *fakeSidebar
	labels   *fakeLabels
	animator *fakeAnimator
	sched    *fakeScheduler
}

func newCollapseFixture(autoCollapse bool) *collapseFixture {
	f := &collapseFixture{
		sidebar:  &fakeSidebar{},
		labels:   &fakeLabels{},
		animator: &fakeAnimator{},
		sched:    &fakeScheduler{},
	}
	f.c = NewSidebarCollapseController(f.sidebar, f.labels, f.animator, f.sched, 240, autoCollapse)
	return f
}

func TestCollapse_InitialLayout(t *testing.T) {
	f := newCollapseFixture(false)
	assert.Equal(t, entity.SidebarExpanded, f.c.State())
	assert.Equal(t, 240, f.sidebar.width)
	assert.False(t, f.labels.compact)

	f = newCollapseFixture(true)
	assert.Equal(t, entity.SidebarCollapsed, f.c.State())
	assert.Equal(t, entity.CollapsedSidebarWidth, f.sidebar.width)
	assert.True(t, f.labels.compact)
}

func TestCollapse_HoverIgnoredWhenDisabled(t *testing.T) {
	f := newCollapseFixture(false)
	ctx := context.Background()

	f.c.PointerLeave(ctx)
	f.c.PointerEnter(ctx)

	assert.Empty(t, f.animator.runs)
	assert.Equal(t, entity.SidebarExpanded, f.c.State())
	assert.Equal(t, 240, f.sidebar.width)
}

func TestCollapse_ExpandThenReveal(t *testing.T) {
	f := newCollapseFixture(true)
	ctx := context.Background()

	f.c.PointerEnter(ctx)
	assert.Equal(t, entity.SidebarExpanding, f.c.State())

	anim := f.animator.last()
	require.NotNil(t, anim)
	assert.Equal(t, entity.CollapsedSidebarWidth, anim.from)
	assert.Equal(t, 240, anim.to)

	anim.step(150)
	assert.Equal(t, 150, f.sidebar.width)
	assert.True(t, f.labels.compact, "labels stay hidden while expanding")

	anim.finish()
	assert.Equal(t, 240, f.sidebar.width)
	require.Len(t, f.sched.timers, 1)
	assert.Equal(t, entity.SidebarRevealDelay, f.sched.timers[0].d)
	assert.Equal(t, entity.SidebarExpanding, f.c.State())

	f.sched.fire()
	assert.Equal(t, entity.SidebarExpanded, f.c.State())
	assert.False(t, f.labels.compact)

	// Entering again while expanded does nothing.
	f.c.PointerEnter(ctx)
	assert.Len(t, f.animator.runs, 1)
}

func TestCollapse_LeaveHidesLabelsImmediately(t *testing.T) {
	f := newCollapseFixture(true)
	ctx := context.Background()

	f.c.PointerEnter(ctx)
	f.animator.last().finish()
	f.sched.fire()
	require.Equal(t, entity.SidebarExpanded, f.c.State())

	f.c.PointerLeave(ctx)
	assert.Equal(t, entity.SidebarCollapsed, f.c.State())
	assert.True(t, f.labels.compact)

	anim := f.animator.last()
	assert.Equal(t, 240, anim.from)
	assert.Equal(t, entity.CollapsedSidebarWidth, anim.to)
	anim.finish()
	assert.Equal(t, entity.CollapsedSidebarWidth, f.sidebar.width)
}

func TestCollapse_StaleAnimationIsIgnored(t *testing.T) {
	f := newCollapseFixture(true)
	ctx := context.Background()

	f.c.PointerEnter(ctx)
	expand := f.animator.last()
	f.c.PointerLeave(ctx)
	collapse := f.animator.last()

	assert.True(t, expand.cancelled)

	// A queued step and completion of the expansion arrive late.
	expand.finish()
	assert.Empty(t, f.sched.timers, "stale completion must not schedule a reveal")
	assert.NotEqual(t, 240, f.sidebar.width)

	collapse.finish()
	assert.Equal(t, entity.CollapsedSidebarWidth, f.sidebar.width)
	assert.Equal(t, entity.SidebarCollapsed, f.c.State())
	assert.True(t, f.labels.compact)
}

func TestCollapse_StaleRevealIsIgnored(t *testing.T) {
	f := newCollapseFixture(true)
	ctx := context.Background()

	f.c.PointerEnter(ctx)
	f.animator.last().finish()
	require.Len(t, f.sched.timers, 1)

	f.c.PointerLeave(ctx)
	assert.True(t, f.sched.timers[0].cancelled)

	f.sched.fire()
	assert.True(t, f.labels.compact)
	assert.Equal(t, entity.SidebarCollapsed, f.c.State())
}

func TestCollapse_ToggleWinsOverInFlightAnimations(t *testing.T) {
	f := newCollapseFixture(true)
	ctx := context.Background()

	f.c.PointerEnter(ctx)
	inflight := f.animator.last()

	f.c.SetAutoCollapse(ctx, false)
	assert.Equal(t, 240, f.sidebar.width)
	assert.Equal(t, entity.SidebarExpanded, f.c.State())

	inflight.step(100)
	inflight.finish()
	f.sched.fire()
	assert.Equal(t, 240, f.sidebar.width)
	assert.False(t, f.labels.compact)

	f.c.PointerLeave(ctx)
	leave := f.animator.last()
	assert.Same(t, inflight, leave, "hover is ignored while disabled")

	f.c.SetAutoCollapse(ctx, true)
	inflight.finish()
	assert.Equal(t, entity.CollapsedSidebarWidth, f.sidebar.width)
	assert.Equal(t, entity.SidebarCollapsed, f.c.State())
	assert.True(t, f.labels.compact)
}

func TestCollapse_SetFullWidth(t *testing.T) {
	f := newCollapseFixture(false)

	f.c.SetFullWidth(300)
	assert.Equal(t, 300, f.sidebar.width)

	f.c.SetFullWidth(1000)
	assert.Equal(t, entity.MaxSidebarWidth, f.sidebar.width)
	assert.Equal(t, entity.MaxSidebarWidth, f.c.FullWidth())

	f.c.SetAutoCollapse(context.Background(), true)
	f.c.SetFullWidth(200)
	assert.Equal(t, entity.CollapsedSidebarWidth, f.sidebar.width, "collapsed sidebar keeps its width")
	assert.Equal(t, 200, f.c.FullWidth())

	f.c.PointerEnter(context.Background())
	assert.Equal(t, 200, f.animator.last().to)
}
