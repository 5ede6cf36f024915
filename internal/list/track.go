package list

import "sort"

// track holds the leading edges of consecutive lines along one axis plus
// the scroll window over them. A line is one item in a linear layout and
// one row of items in a grid.
type track struct {
	starts   []int // len(starts) == lines+1; starts[lines] is the content extent
	offset   int
	viewport int
}

func (t *track) layout(extents []int, viewport int) {
	t.starts = make([]int, len(extents)+1)
	for i, e := range extents {
		if e < 0 {
			e = 0
		}
		t.starts[i+1] = t.starts[i] + e
	}
	if viewport < 0 {
		viewport = 0
	}
	t.viewport = viewport
	t.clamp()
}

func (t *track) lines() int {
	if len(t.starts) == 0 {
		return 0
	}
	return len(t.starts) - 1
}

func (t *track) total() int {
	if len(t.starts) == 0 {
		return 0
	}
	return t.starts[len(t.starts)-1]
}

func (t *track) maxOffset() int {
	m := t.total() - t.viewport
	if m < 0 {
		return 0
	}
	return m
}

func (t *track) clamp() {
	if t.offset > t.maxOffset() {
		t.offset = t.maxOffset()
	}
	if t.offset < 0 {
		t.offset = 0
	}
}

func (t *track) bounds(line int) (start, end int) {
	if line < 0 || line >= t.lines() {
		return 0, 0
	}
	return t.starts[line], t.starts[line+1]
}

// scrollBy moves the window and returns how far it actually moved
func (t *track) scrollBy(delta int) int {
	old := t.offset
	t.offset += delta
	t.clamp()
	return t.offset - old
}

// firstVisible returns the first line intersecting the window
func (t *track) firstVisible() int {
	n := t.lines()
	if n == 0 || t.viewport == 0 {
		return NoPosition
	}
	i := sort.Search(n, func(i int) bool { return t.starts[i+1] > t.offset })
	if i == n || t.starts[i] >= t.offset+t.viewport {
		return NoPosition
	}
	return i
}

// firstCompletelyVisible returns the first non-empty line that lies
// entirely inside the window
func (t *track) firstCompletelyVisible() int {
	n := t.lines()
	if n == 0 || t.viewport == 0 {
		return NoPosition
	}
	end := t.offset + t.viewport
	for i := sort.Search(n, func(i int) bool { return t.starts[i] >= t.offset }); i < n; i++ {
		s, e := t.starts[i], t.starts[i+1]
		if s >= end {
			break
		}
		if e == s {
			continue
		}
		if e <= end {
			return i
		}
		break
	}
	return NoPosition
}

// visible returns the half-open range of lines intersecting the window
func (t *track) visible() (first, last int) {
	first = t.firstVisible()
	if first == NoPosition {
		return 0, 0
	}
	end := t.offset + t.viewport
	last = first
	for last < t.lines() && t.starts[last] < end {
		last++
	}
	return first, last
}
