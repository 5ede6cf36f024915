package list

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirstCompletelyVisibleSkipsPartialItems(t *testing.T) {
	lm := NewLinearLayout(Vertical)
	lm.Layout(uniform(6, 3), 20, 5)

	assert.Equal(t, 0, lm.FirstCompletelyVisiblePosition())
	lm.ScrollBy(1)
	assert.Equal(t, 1, lm.FirstCompletelyVisiblePosition())
	assert.Equal(t, 0, lm.FirstVisiblePosition())

	first, last := lm.VisibleRange()
	assert.Equal(t, 0, first)
	assert.Equal(t, 2, last)
}

func TestFirstCompletelyVisibleNoneWhenItemsOverflowViewport(t *testing.T) {
	lm := NewLinearLayout(Vertical)
	lm.Layout(extents{10, 10}, 20, 5)

	assert.Equal(t, NoPosition, lm.FirstCompletelyVisiblePosition())
	lm.ScrollBy(3)
	assert.Equal(t, NoPosition, lm.FirstCompletelyVisiblePosition())
}

func TestEmptyLayoutHasNoPositions(t *testing.T) {
	lm := NewLinearLayout(Vertical)
	lm.Layout(nil, 20, 5)

	assert.Equal(t, NoPosition, lm.FirstCompletelyVisiblePosition())
	assert.Equal(t, 0, lm.ScrollBy(4))
	_, ok := lm.ComputeScrollVectorForPosition(3)
	assert.False(t, ok)
}

func TestComputeScrollVector(t *testing.T) {
	lm := NewLinearLayout(Vertical)
	lm.Layout(uniform(30, 1), 10, 10)
	lm.ScrollBy(10)

	vec, ok := lm.ComputeScrollVectorForPosition(2)
	assert.True(t, ok)
	assert.Equal(t, Vector{Y: -1}, vec)

	vec, _ = lm.ComputeScrollVectorForPosition(10)
	assert.Equal(t, Vector{Y: 1}, vec)

	h := NewLinearLayout(Horizontal)
	h.Layout(uniform(30, 1), 10, 10)
	vec, _ = h.ComputeScrollVectorForPosition(20)
	assert.Equal(t, Vector{X: 1}, vec)
}

func TestLayoutClampsOffsetAfterShrinking(t *testing.T) {
	lm := NewLinearLayout(Vertical)
	lm.Layout(uniform(30, 1), 10, 10)
	lm.ScrollBy(20)

	lm.Layout(uniform(12, 1), 10, 10)

	assert.Equal(t, 2, lm.Offset())
}

func TestGridReportsFirstItemOfRow(t *testing.T) {
	g := NewGridLayout(Vertical, 3)
	g.Layout(uniform(30, 1), 30, 4)

	assert.Equal(t, 0, g.FirstCompletelyVisiblePosition())
	g.ScrollBy(2)
	assert.Equal(t, 6, g.FirstCompletelyVisiblePosition())

	first, last := g.VisibleRange()
	assert.Equal(t, 6, first)
	assert.Equal(t, 18, last)

	start, end := g.ItemBounds(8)
	assert.Equal(t, 2, start)
	assert.Equal(t, 3, end)
}

func TestGridPartialLastRow(t *testing.T) {
	g := NewGridLayout(Vertical, 4)
	g.Layout(uniform(10, 2), 30, 4)
	g.ScrollBy(100)

	first, last := g.VisibleRange()
	assert.Equal(t, 4, first)
	assert.Equal(t, 10, last)
	assert.Equal(t, 4, g.FirstCompletelyVisiblePosition())
}

func TestGridSmoothScroll(t *testing.T) {
	v := NewView()
	g := NewGridLayout(Vertical, 2)
	v.SetLayoutManager(g)
	v.SetAdapter(uniform(20, 1))
	v.Resize(10, 3)

	v.SmoothScrollToPosition(15)
	settle(t, v)

	assert.Equal(t, 5, g.Offset())
}

func TestCalculateDtToFit(t *testing.T) {
	assert.Equal(t, -4, calculateDtToFit(4, 5, 0, 10, SnapToStart))
	assert.Equal(t, 5, calculateDtToFit(4, 5, 0, 10, SnapToEnd))
	assert.Equal(t, 0, calculateDtToFit(4, 5, 0, 10, SnapToAny))
	assert.Equal(t, 2, calculateDtToFit(-2, -1, 0, 10, SnapToAny))
	assert.Equal(t, -3, calculateDtToFit(12, 13, 0, 10, SnapToAny))
}
