package tabsync

import "tabsync/internal/list"

// SnapLayout is a linear layout whose smooth scrolls leave the target item
// at the leading edge of the viewport: the top of a vertical list, the
// start of a horizontal one.
type SnapLayout struct {
	*list.LinearLayout
}

// NewSnapLayout creates a start-snapping linear layout along o
func NewSnapLayout(o list.Orientation) *SnapLayout {
	return &SnapLayout{LinearLayout: list.NewLinearLayout(o)}
}

// SmoothScrollToPosition starts, or retargets, a start-snapped scroll
func (l *SnapLayout) SmoothScrollToPosition(v *list.View, position int) {
	v.StartSmoothScroll(&startSnappedScroller{
		LinearSmoothScroller: list.NewLinearSmoothScroller(l, position),
		layout:               l,
	})
}

// startSnappedScroller finds its way exactly like the default scroller and
// only changes where it stops
type startSnappedScroller struct {
	*list.LinearSmoothScroller
	layout *SnapLayout
}

func (s *startSnappedScroller) ComputeScrollVectorForPosition(target int) (list.Vector, bool) {
	return s.layout.ComputeScrollVectorForPosition(target)
}

func (s *startSnappedScroller) VerticalSnapPreference() list.Snap   { return list.SnapToStart }
func (s *startSnappedScroller) HorizontalSnapPreference() list.Snap { return list.SnapToStart }
