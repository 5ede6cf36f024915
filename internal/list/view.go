package list

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

const (
	defaultFPS       = 60
	defaultFrequency = 7.0
	defaultDamping   = 1.0
)

// animation is the state of an in-flight smooth scroll
type animation struct {
	scroller SmoothScroller
	pos      float64
	vel      float64
	dest     int
	resolved bool
}

// View is a scrollable list. It is not safe for concurrent use; all calls
// are expected on the UI goroutine.
type View struct {
	adapter   Adapter
	layout    LayoutManager
	listeners []ScrollListener
	state     ScrollState
	width     int
	height    int
	spring    harmonica.Spring
	anim      *animation
}

// NewView creates an empty list with no layout manager
func NewView() *View {
	v := &View{}
	v.SetSpring(defaultFPS, defaultFrequency, defaultDamping)
	return v
}

// SetSpring configures the easing used when settling onto a target
func (v *View) SetSpring(fps int, frequency, damping float64) {
	if fps <= 0 {
		fps = defaultFPS
	}
	v.spring = harmonica.NewSpring(harmonica.FPS(fps), frequency, damping)
}

// SetAdapter replaces the items and lays them out again
func (v *View) SetAdapter(a Adapter) {
	v.adapter = a
	v.requestLayout()
}

// Adapter returns the current adapter
func (v *View) Adapter() Adapter {
	return v.adapter
}

// SetLayoutManager installs lm, stopping any running smooth scroll
func (v *View) SetLayoutManager(lm LayoutManager) {
	v.StopScroll()
	v.layout = lm
	v.requestLayout()
}

// LayoutManager returns the installed layout manager, or nil
func (v *View) LayoutManager() LayoutManager {
	return v.layout
}

// Resize sets the viewport size in cells
func (v *View) Resize(width, height int) {
	v.width, v.height = width, height
	v.requestLayout()
}

// Size returns the viewport size in cells
func (v *View) Size() (width, height int) {
	return v.width, v.height
}

// AddOnScrollListener registers l for scroll notifications
func (v *View) AddOnScrollListener(l ScrollListener) {
	v.listeners = append(v.listeners, l)
}

// RemoveOnScrollListener unregisters l; unknown listeners are ignored
func (v *View) RemoveOnScrollListener(l ScrollListener) {
	for i, existing := range v.listeners {
		if existing == l {
			v.listeners = append(v.listeners[:i:i], v.listeners[i+1:]...)
			return
		}
	}
}

// Listeners returns the registered scroll listeners
func (v *View) Listeners() []ScrollListener {
	return append([]ScrollListener(nil), v.listeners...)
}

// ScrollState returns what the list is currently doing
func (v *View) ScrollState() ScrollState {
	return v.state
}

// Drag moves the list as part of a user gesture. A running smooth scroll
// is abandoned. The gesture lasts until Release.
func (v *View) Drag(delta int) int {
	if v.layout == nil {
		return 0
	}
	v.anim = nil
	v.setState(StateDragging)
	consumed := v.layout.ScrollBy(delta)
	if consumed != 0 {
		v.dispatchScrolled(consumed)
	}
	return consumed
}

// Release ends a user gesture
func (v *View) Release() {
	if v.state == StateDragging {
		v.setState(StateIdle)
	}
}

// ScrollBy is a complete user gesture: drag by delta, then release
func (v *View) ScrollBy(delta int) int {
	consumed := v.Drag(delta)
	v.Release()
	return consumed
}

// StopScroll abandons a running smooth scroll
func (v *View) StopScroll() {
	if v.anim == nil {
		return
	}
	v.anim = nil
	v.setState(StateIdle)
}

// SmoothScrollToPosition asks the layout manager to animate to position
func (v *View) SmoothScrollToPosition(position int) {
	if v.layout == nil {
		return
	}
	v.layout.SmoothScrollToPosition(v, position)
}

// StartSmoothScroll runs s on this view. A scroll already in flight is
// retargeted; its momentum carries over and the list stays settling.
func (v *View) StartSmoothScroll(s SmoothScroller) {
	if v.anim == nil {
		v.anim = &animation{}
		if v.layout != nil {
			v.anim.pos = float64(v.layout.Offset())
		}
	}
	v.anim.scroller = s
	v.anim.resolved = false
	v.setState(StateSettling)
}

// Animating reports whether a smooth scroll is in flight
func (v *View) Animating() bool {
	return v.anim != nil
}

// Frame advances the smooth scroll by one frame and reports whether more
// frames are needed. Every smooth scroll ends in StateIdle, including ones
// that had nowhere to go.
func (v *View) Frame() bool {
	a := v.anim
	if a == nil {
		return false
	}
	lm := v.layout
	target := a.scroller.TargetPosition()
	if lm == nil || target < 0 || target >= lm.ItemCount() {
		v.finishSmoothScroll()
		return false
	}

	if !a.resolved {
		start, end := lm.ItemBounds(target)
		offset, viewport := lm.Offset(), lm.Viewport()
		if offscreen(start, end, offset, viewport) {
			return v.seek(a, target)
		}
		snap := a.scroller.VerticalSnapPreference()
		if lm.Orientation() == Horizontal {
			snap = a.scroller.HorizontalSnapPreference()
		}
		dt := calculateDtToFit(start-offset, end-offset, 0, viewport, snap)
		a.dest = clampInt(offset-dt, 0, lm.MaxOffset())
		a.resolved = true
	}

	a.pos, a.vel = v.spring.Update(a.pos, a.vel, float64(a.dest))
	next := int(math.Round(a.pos))
	if consumed := lm.ScrollBy(next - lm.Offset()); consumed != 0 {
		v.dispatchScrolled(consumed)
	}
	if next == a.dest {
		v.finishSmoothScroll()
		return false
	}
	return true
}

// seek moves toward an off-screen target along the scroller's vector. A
// step never exceeds half a viewport, so the target cannot be skipped.
func (v *View) seek(a *animation, target int) bool {
	lm := v.layout
	vec, ok := a.scroller.ComputeScrollVectorForPosition(target)
	dir := vec.along(lm.Orientation())
	if !ok || dir == 0 {
		v.finishSmoothScroll()
		return false
	}
	step := lm.Viewport() / 2
	if step < 1 {
		step = 1
	}
	consumed := lm.ScrollBy(step * dir)
	if consumed == 0 {
		v.finishSmoothScroll()
		return false
	}
	a.pos, a.vel = float64(lm.Offset()), 0
	v.dispatchScrolled(consumed)
	return true
}

func (v *View) finishSmoothScroll() {
	v.anim = nil
	v.setState(StateIdle)
}

func (v *View) requestLayout() {
	if v.layout == nil {
		return
	}
	v.layout.Layout(v.adapter, v.width, v.height)
	if v.anim != nil {
		v.anim.resolved = false
	}
	v.dispatch(func(l ScrollListener) { l.OnScrolled(v, 0, 0) })
}

func (v *View) setState(s ScrollState) {
	if v.state == s {
		return
	}
	v.state = s
	v.dispatch(func(l ScrollListener) { l.OnScrollStateChanged(v, s) })
}

func (v *View) dispatchScrolled(delta int) {
	dx, dy := 0, delta
	if v.layout.Orientation() == Horizontal {
		dx, dy = delta, 0
	}
	v.dispatch(func(l ScrollListener) { l.OnScrolled(v, dx, dy) })
}

func (v *View) dispatch(fn func(ScrollListener)) {
	for _, l := range v.Listeners() {
		fn(l)
	}
}

func offscreen(start, end, offset, viewport int) bool {
	if start == end {
		return start < offset || start > offset+viewport
	}
	return end <= offset || start >= offset+viewport
}

func clampInt(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
