package views

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"tabsync/internal/list"
)

// ItemSource labels the items of a list
type ItemSource interface {
	Label(position int) string
	SectionOf(position int) int
}

// ListState contains everything needed to draw the list viewport
type ListState struct {
	Items   ItemSource
	Layout  list.LayoutManager
	Span    int // items per line; 1 for linear layouts
	Width   int
	Height  int
	Leading int // first completely visible position, or list.NoPosition
}

// RenderList draws the visible part of the list as exactly Height lines
func RenderList(st *Styles, s ListState) string {
	if s.Height <= 0 {
		return ""
	}
	rows := make([]string, s.Height)
	if s.Layout != nil && s.Items != nil && s.Width > 0 {
		if s.Span < 1 {
			s.Span = 1
		}
		if s.Layout.Orientation() == list.Horizontal {
			renderColumns(st, s, rows)
		} else {
			renderRows(st, s, rows)
		}
	}
	return strings.Join(rows, "\n")
}

// renderRows lays lines out top to bottom, span items side by side
func renderRows(st *Styles, s ListState, rows []string) {
	lm := s.Layout
	first, last := lm.VisibleRange()
	offset := lm.Offset()
	slot := s.Width / s.Span
	for line := first; line < last; line += s.Span {
		start, end := lm.ItemBounds(line)
		for cell := max(start, offset); cell < end && cell < offset+s.Height; cell++ {
			var b strings.Builder
			for k := 0; k < s.Span; k++ {
				b.WriteString(cellText(st, s, line+k, slot, cell == start))
			}
			rows[cell-offset] = b.String()
		}
	}
}

// renderColumns lays lines out left to right, span items stacked
func renderColumns(st *Styles, s ListState, rows []string) {
	lm := s.Layout
	first, last := lm.VisibleRange()
	if first >= last {
		return
	}
	offset := lm.Offset()
	origin, _ := lm.ItemBounds(first)
	band := max(s.Height/s.Span, 1)
	for r := range rows {
		k := r / band
		if k >= s.Span {
			continue
		}
		var b strings.Builder
		for line := first; line < last; line += s.Span {
			start, end := lm.ItemBounds(line)
			b.WriteString(cellText(st, s, line+k, end-start, r%band == 0))
		}
		rows[r] = ansi.Cut(b.String(), offset-origin, offset-origin+s.Width)
	}
}

// cellText renders one item's share of a row. Only the item's first row
// carries its label.
func cellText(st *Styles, s ListState, position, width int, labelled bool) string {
	if width <= 0 {
		return ""
	}
	if position >= s.Layout.ItemCount() {
		return strings.Repeat(" ", width)
	}
	text := "│"
	if labelled {
		text = s.Items.Label(position)
	}
	style := st.SectionStyle(s.Items.SectionOf(position))
	if position == s.Leading && labelled {
		style = style.Inherit(st.Leading)
	}
	return style.Render(Fit(text, width))
}

// Fit truncates or pads text to exactly width cells
func Fit(text string, width int) string {
	if width <= 0 {
		return ""
	}
	text = ansi.Truncate(text, width, "…")
	if pad := width - ansi.StringWidth(text); pad > 0 {
		text += strings.Repeat(" ", pad)
	}
	return text
}

// RenderJump draws the section jump prompt followed by its matches
func RenderJump(st *Styles, input string, matches []string, width int) string {
	parts := make([]string, len(matches))
	for i, m := range matches {
		style := st.Match
		if i == 0 {
			style = st.BestMatch
		}
		parts[i] = style.Render(m)
	}
	line := st.Prompt.Render(input)
	if len(parts) > 0 {
		line += "  " + strings.Join(parts, st.Dim.Render(" · "))
	} else {
		line += "  " + st.Dim.Render("no matching section")
	}
	return ansi.Truncate(line, width, "…")
}

// RenderStatus draws the status line
func RenderStatus(st *Styles, text string, isError bool, width int) string {
	style := st.Status
	if isError {
		style = st.Error
	}
	return ansi.Truncate(style.Render(text), width, "…")
}
