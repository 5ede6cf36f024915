package ui

import (
	"fmt"

	"github.com/charmbracelet/x/ansi"

	"tabsync/internal/domain"
	"tabsync/internal/list"
)

// catalogue is the list adapter: every section contributes Count items,
// labelled with the section title and their number within it
type catalogue struct {
	labels   []string
	sections []int
	extent   int
}

func newCatalogue(sections []domain.Section, extent int) *catalogue {
	c := &catalogue{extent: max(extent, 1)}
	for i, s := range sections {
		for k := 0; k < s.Count; k++ {
			c.labels = append(c.labels, fmt.Sprintf("%s %d", s.Title, k+1))
			c.sections = append(c.sections, i)
		}
	}
	return c
}

func (c *catalogue) ItemCount() int {
	return len(c.labels)
}

// ItemExtent is the configured number of rows in a vertical list. Across
// a horizontal list every item is as wide as its label plus a gap.
func (c *catalogue) ItemExtent(position int, o list.Orientation) int {
	if o == list.Horizontal {
		return max(c.extent, ansi.StringWidth(c.labels[position])+2)
	}
	return c.extent
}

func (c *catalogue) Label(position int) string {
	if position < 0 || position >= len(c.labels) {
		return ""
	}
	return c.labels[position]
}

func (c *catalogue) SectionOf(position int) int {
	if position < 0 || position >= len(c.sections) {
		return -1
	}
	return c.sections[position]
}
