package list

// SmoothScroller is the policy a View's animation engine follows to reach
// a target position. The engine seeks along the scroll vector while the
// target is off screen, then eases to the position chosen by the snap
// preference for the layout's axis.
type SmoothScroller interface {
	TargetPosition() int
	ComputeScrollVectorForPosition(target int) (Vector, bool)
	VerticalSnapPreference() Snap
	HorizontalSnapPreference() Snap
}

// LinearSmoothScroller is the default policy: it asks the layout for the
// scroll vector and snaps to whichever edge the list was travelling toward.
type LinearSmoothScroller struct {
	layout LayoutManager
	target int
	vector Vector
}

// NewLinearSmoothScroller creates a scroller heading for target
func NewLinearSmoothScroller(layout LayoutManager, target int) *LinearSmoothScroller {
	return &LinearSmoothScroller{layout: layout, target: target}
}

func (s *LinearSmoothScroller) TargetPosition() int { return s.target }

func (s *LinearSmoothScroller) ComputeScrollVectorForPosition(target int) (Vector, bool) {
	p, ok := s.layout.(ScrollVectorProvider)
	if !ok {
		return Vector{}, false
	}
	vec, ok := p.ComputeScrollVectorForPosition(target)
	if ok {
		s.vector = vec
	}
	return vec, ok
}

func (s *LinearSmoothScroller) VerticalSnapPreference() Snap {
	return snapFor(s.vector.Y)
}

func (s *LinearSmoothScroller) HorizontalSnapPreference() Snap {
	return snapFor(s.vector.X)
}

func snapFor(c float64) Snap {
	switch {
	case c > 0:
		return SnapToEnd
	case c < 0:
		return SnapToStart
	default:
		return SnapToAny
	}
}

// calculateDtToFit returns how far an item spanning [viewStart, viewEnd)
// must move to satisfy snap inside the box [boxStart, boxEnd). All values
// are in viewport coordinates.
func calculateDtToFit(viewStart, viewEnd, boxStart, boxEnd int, snap Snap) int {
	switch snap {
	case SnapToStart:
		return boxStart - viewStart
	case SnapToEnd:
		return boxEnd - viewEnd
	}
	if dt := boxStart - viewStart; dt > 0 {
		return dt
	}
	if dt := boxEnd - viewEnd; dt < 0 {
		return dt
	}
	return 0
}
