package list

// LayoutManager arranges adapter items along one scroll axis and owns the
// scroll offset
type LayoutManager interface {
	Orientation() Orientation
	// Layout measures the adapter's items for a viewport of width x height cells
	Layout(a Adapter, width, height int)
	ItemCount() int
	Offset() int
	Viewport() int
	MaxOffset() int
	// ItemBounds returns the leading and trailing edge of an item along the
	// scroll axis, in content coordinates
	ItemBounds(position int) (start, end int)
	// ScrollBy moves the content and returns the distance actually scrolled
	ScrollBy(delta int) int
	// VisibleRange returns the half-open range of positions on screen
	VisibleRange() (first, last int)
	SmoothScrollToPosition(v *View, position int)
}

// LeadingPositionQuerier is implemented by layouts that can report the
// first item fully inside the viewport
type LeadingPositionQuerier interface {
	// FirstCompletelyVisiblePosition returns NoPosition when no item is
	// fully visible
	FirstCompletelyVisiblePosition() int
}

// ScrollVectorProvider is implemented by layouts that can point a smooth
// scroller toward an off-screen item
type ScrollVectorProvider interface {
	ComputeScrollVectorForPosition(target int) (Vector, bool)
}

func measure(a Adapter, o Orientation, width, height int) (count, viewport int) {
	if a != nil {
		count = a.ItemCount()
	}
	if count < 0 {
		count = 0
	}
	viewport = height
	if o == Horizontal {
		viewport = width
	}
	return count, viewport
}
