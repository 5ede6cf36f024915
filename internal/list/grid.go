package list

// GridLayout places span items on each line along its orientation. Lines
// are as deep as their largest item.
type GridLayout struct {
	orientation Orientation
	span        int
	count       int
	track       track
}

// NewGridLayout creates a grid with span items per line
func NewGridLayout(o Orientation, span int) *GridLayout {
	if span < 1 {
		span = 1
	}
	return &GridLayout{orientation: o, span: span}
}

func (g *GridLayout) Orientation() Orientation { return g.orientation }
func (g *GridLayout) Span() int                { return g.span }
func (g *GridLayout) ItemCount() int           { return g.count }
func (g *GridLayout) Offset() int              { return g.track.offset }
func (g *GridLayout) Viewport() int            { return g.track.viewport }
func (g *GridLayout) MaxOffset() int           { return g.track.maxOffset() }
func (g *GridLayout) ScrollBy(delta int) int   { return g.track.scrollBy(delta) }

func (g *GridLayout) Layout(a Adapter, width, height int) {
	count, viewport := measure(a, g.orientation, width, height)
	lines := (count + g.span - 1) / g.span
	extents := make([]int, lines)
	for i := 0; i < count; i++ {
		if e := a.ItemExtent(i, g.orientation); e > extents[i/g.span] {
			extents[i/g.span] = e
		}
	}
	g.count = count
	g.track.layout(extents, viewport)
}

func (g *GridLayout) ItemBounds(position int) (start, end int) {
	if position < 0 || position >= g.count {
		return 0, 0
	}
	return g.track.bounds(position / g.span)
}

func (g *GridLayout) VisibleRange() (first, last int) {
	a, b := g.track.visible()
	first, last = a*g.span, b*g.span
	if last > g.count {
		last = g.count
	}
	return first, last
}

func (g *GridLayout) FirstCompletelyVisiblePosition() int {
	line := g.track.firstCompletelyVisible()
	if line == NoPosition {
		return NoPosition
	}
	return line * g.span
}

func (g *GridLayout) ComputeScrollVectorForPosition(target int) (Vector, bool) {
	first := g.track.firstVisible()
	if g.count == 0 || first == NoPosition {
		return Vector{}, false
	}
	dir := 1.0
	if target/g.span < first {
		dir = -1
	}
	if g.orientation == Horizontal {
		return Vector{X: dir}, true
	}
	return Vector{Y: dir}, true
}

func (g *GridLayout) SmoothScrollToPosition(v *View, position int) {
	v.StartSmoothScroll(NewLinearSmoothScroller(g, position))
}
