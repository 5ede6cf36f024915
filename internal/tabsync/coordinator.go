// Package tabsync keeps a tab strip and a sectioned list view in step.
//
// Scrolling the list selects the tab of the section at the leading edge;
// selecting a tab smooth-scrolls the list so the section's first item sits
// at the leading edge. Each direction suppresses the echo it would
// otherwise cause in the other:
//
//   - a tab-driven scroll holds a Latch that ignores scroll events until
//     the list reports it is idle again
//   - a scroll-driven tab selection arms a OneShot that swallows exactly
//     the one selection callback it causes
package tabsync

import (
	"fmt"
	"time"

	"tabsync/internal/eventbus"
	"tabsync/internal/list"
	"tabsync/internal/section"
	"tabsync/internal/tabs"
)

// Coordinator synchronizes one list view with at most one tab strip
type Coordinator struct {
	view  *list.View
	index *section.Index
	strip *tabs.Strip

	scrollGuard Latch
	tabGuard    OneShot

	bus eventbus.EventBus
	seq uint64
	now func() time.Time
}

// New creates a coordinator for v. The view still needs a SnapLayout and
// the coordinator's scroll listener; see SetLayoutManager and
// AddOnScrollListener, or use NewWithLayout.
func New(v *list.View) *Coordinator {
	return &Coordinator{
		view:  v,
		index: section.New(nil),
		now:   time.Now,
	}
}

// NewWithLayout creates a coordinator and wires layout and a scroll
// listener into v. It fails, leaving v untouched, when layout is nil or v
// already reports to another coordinator.
func NewWithLayout(v *list.View, layout *SnapLayout) (*Coordinator, error) {
	c := New(v)
	if c.hasSyncListener() {
		return nil, errListenerTaken
	}
	if err := c.SetLayoutManager(layout); err != nil {
		return nil, err
	}
	if err := c.AddOnScrollListener(c.NewScrollListener()); err != nil {
		return nil, err
	}
	return c, nil
}

// SetEventBus makes the coordinator publish sync events to bus
func (c *Coordinator) SetEventBus(bus eventbus.EventBus) {
	c.bus = bus
}

// NewScrollListener returns a scroll listener that reports to c
func (c *Coordinator) NewScrollListener() *ScrollListener {
	return &ScrollListener{c: c}
}

// SetLayoutManager installs lm on the view. Only a *SnapLayout can align
// sections with the leading edge, so anything else is rejected.
func (c *Coordinator) SetLayoutManager(lm list.LayoutManager) error {
	layout, ok := lm.(*SnapLayout)
	if !ok || layout == nil {
		return fmt.Errorf("%w: layout manager must be a *tabsync.SnapLayout, got %T", ErrConfiguration, lm)
	}
	c.view.SetLayoutManager(layout)
	return nil
}

// AddOnScrollListener registers l on the view. The view takes exactly one
// listener, and it must be one of c's own.
func (c *Coordinator) AddOnScrollListener(l list.ScrollListener) error {
	sl, ok := l.(*ScrollListener)
	if !ok || sl == nil || sl.c != c {
		return fmt.Errorf("%w: scroll listener must come from this coordinator's NewScrollListener, got %T", ErrConfiguration, l)
	}
	if c.hasSyncListener() {
		return errListenerTaken
	}
	c.view.AddOnScrollListener(sl)
	return nil
}

func (c *Coordinator) hasSyncListener() bool {
	for _, existing := range c.view.Listeners() {
		if _, ok := existing.(*ScrollListener); ok {
			return true
		}
	}
	return false
}

// AttachTabStrip starts following s. The previously attached strip, if
// any, stops reporting to c.
func (c *Coordinator) AttachTabStrip(s *tabs.Strip) {
	if c.strip != nil {
		c.strip.RemoveListener(c)
	}
	c.strip = s
	if s != nil {
		s.AddListener(c)
	}
}

// TabStrip returns the attached strip, or nil
func (c *Coordinator) TabStrip() *tabs.Strip {
	return c.strip
}

// SetSectionSizes replaces the number of list items under each tab. The
// sizes should add up to the adapter's item count; this is not checked.
func (c *Coordinator) SetSectionSizes(sizes []int) {
	c.index.Set(sizes)
	c.publish(eventbus.SectionsChangedEvent{Sizes: c.index.Sizes()})
}

// SectionSizes returns the current section sizes
func (c *Coordinator) SectionSizes() []int {
	return c.index.Sizes()
}

// SectionStart returns the first list position of a section
func (c *Coordinator) SectionStart(section int) int {
	return c.index.FirstPosition(section)
}

// ScrollSuppressed reports whether a tab-driven scroll is in flight
func (c *Coordinator) ScrollSuppressed() bool {
	return c.scrollGuard.Held()
}

// TabSelectSuppressed reports whether the next tab selection is an echo
func (c *Coordinator) TabSelectSuppressed() bool {
	return c.tabGuard.Armed()
}

// OnScrolled selects the tab of the first completely visible item
func (c *Coordinator) OnScrolled(dx, dy int) {
	if dx == 0 && dy == 0 {
		return
	}
	if c.scrollGuard.Held() {
		return
	}
	lm := c.view.LayoutManager()
	q, ok := lm.(list.LeadingPositionQuerier)
	if !ok {
		panic(&UnsupportedLayoutError{Layout: lm})
	}
	c.selectTabForPosition(q.FirstCompletelyVisiblePosition())
}

func (c *Coordinator) selectTabForPosition(position int) {
	if position == list.NoPosition || c.strip == nil {
		return
	}
	sec := c.index.SectionAt(position)
	if sec == c.strip.Selected() {
		return
	}
	if _, ok := c.strip.TabAt(sec); !ok {
		return
	}
	c.tabGuard.Arm()
	c.strip.SelectTab(sec)
	c.publish(eventbus.TabSyncedEvent{Section: sec, Position: position, At: c.now()})
}

// OnScrollStateSettled ends scroll suppression
func (c *Coordinator) OnScrollStateSettled() {
	inFlight := c.scrollGuard.Held()
	c.scrollGuard.Release()
	if inFlight {
		c.publish(eventbus.ScrollSettledEvent{Seq: c.seq, At: c.now()})
	}
}

// OnTabSelected scrolls the tab's section to the leading edge, unless the
// selection was caused by scrolling
func (c *Coordinator) OnTabSelected(tab tabs.Tab) {
	if c.tabGuard.Consume() {
		return
	}
	target := c.index.FirstPosition(tab.Position)
	c.scrollGuard.Hold()
	c.seq++
	c.publish(eventbus.ScrollRequestedEvent{Seq: c.seq, Section: tab.Position, Target: target, At: c.now()})
	c.view.SmoothScrollToPosition(target)
}

func (c *Coordinator) OnTabUnselected(tabs.Tab) {}
func (c *Coordinator) OnTabReselected(tabs.Tab) {}

func (c *Coordinator) publish(e eventbus.DomainEvent) {
	if c.bus != nil {
		c.bus.Publish(e)
	}
}

// ScrollListener forwards list scroll notifications to its Coordinator
type ScrollListener struct {
	c *Coordinator
}

func (l *ScrollListener) OnScrollStateChanged(_ *list.View, state list.ScrollState) {
	if state == list.StateIdle {
		l.c.OnScrollStateSettled()
	}
}

func (l *ScrollListener) OnScrolled(_ *list.View, dx, dy int) {
	l.c.OnScrolled(dx, dy)
}
