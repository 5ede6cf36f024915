// Package section maps linear list positions to sections and back.
//
// A section is a contiguous run of positions. Sections are described only by
// their sizes, in order, so the index is never materialized.
package section

// Index converts between item positions and section indexes
type Index struct {
	sizes []int
}

// New creates an index over the given per-section item counts
func New(sizes []int) *Index {
	idx := &Index{}
	idx.Set(sizes)
	return idx
}

// Set replaces the section sizes wholesale
func (i *Index) Set(sizes []int) {
	i.sizes = append([]int(nil), sizes...)
}

// Sizes returns a copy of the section sizes
func (i *Index) Sizes() []int {
	return append([]int(nil), i.sizes...)
}

// Len returns the number of sections
func (i *Index) Len() int {
	return len(i.sizes)
}

// Total returns the number of items modeled by the sizes
func (i *Index) Total() int {
	total := 0
	for _, n := range i.sizes {
		total += n
	}
	return total
}

// FirstPosition returns the position of the first item in section.
// A section past the end yields the total of all sizes.
func (i *Index) FirstPosition(section int) int {
	if section <= 0 || len(i.sizes) == 0 {
		return 0
	}
	pos := 0
	for s := 0; s < section && s < len(i.sizes); s++ {
		pos += i.sizes[s]
	}
	return pos
}

// SectionAt returns the section containing position.
// Positions at or beyond Total saturate to the last section.
func (i *Index) SectionAt(position int) int {
	if len(i.sizes) == 0 {
		return 0
	}
	section := 0
	traversed := 0
	for s, n := range i.sizes {
		section = s
		traversed += n
		if position < traversed {
			break
		}
	}
	return section
}
