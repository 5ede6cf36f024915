package list

// LinearLayout places one item per line along its orientation
type LinearLayout struct {
	orientation Orientation
	count       int
	track       track
}

// NewLinearLayout creates a linear layout scrolling along o
func NewLinearLayout(o Orientation) *LinearLayout {
	return &LinearLayout{orientation: o}
}

func (l *LinearLayout) Orientation() Orientation { return l.orientation }
func (l *LinearLayout) ItemCount() int           { return l.count }
func (l *LinearLayout) Offset() int              { return l.track.offset }
func (l *LinearLayout) Viewport() int            { return l.track.viewport }
func (l *LinearLayout) MaxOffset() int           { return l.track.maxOffset() }
func (l *LinearLayout) ScrollBy(delta int) int   { return l.track.scrollBy(delta) }

// Layout measures every item of the adapter
func (l *LinearLayout) Layout(a Adapter, width, height int) {
	count, viewport := measure(a, l.orientation, width, height)
	extents := make([]int, count)
	for i := range extents {
		extents[i] = a.ItemExtent(i, l.orientation)
	}
	l.count = count
	l.track.layout(extents, viewport)
}

func (l *LinearLayout) ItemBounds(position int) (start, end int) {
	return l.track.bounds(position)
}

func (l *LinearLayout) VisibleRange() (first, last int) {
	return l.track.visible()
}

// FirstVisiblePosition returns the first item at least partly on screen
func (l *LinearLayout) FirstVisiblePosition() int {
	return l.track.firstVisible()
}

func (l *LinearLayout) FirstCompletelyVisiblePosition() int {
	return l.track.firstCompletelyVisible()
}

// ComputeScrollVectorForPosition points toward target relative to the
// first item on screen
func (l *LinearLayout) ComputeScrollVectorForPosition(target int) (Vector, bool) {
	first := l.track.firstVisible()
	if l.count == 0 || first == NoPosition {
		return Vector{}, false
	}
	dir := 1.0
	if target < first {
		dir = -1
	}
	if l.orientation == Horizontal {
		return Vector{X: dir}, true
	}
	return Vector{Y: dir}, true
}

// SmoothScrollToPosition scrolls just far enough to bring position on screen
func (l *LinearLayout) SmoothScrollToPosition(v *View, position int) {
	v.StartSmoothScroll(NewLinearSmoothScroller(l, position))
}
