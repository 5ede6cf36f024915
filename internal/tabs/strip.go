// Package tabs provides a horizontal tab strip with selection listeners.
package tabs

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Tab is one entry of a Strip
type Tab struct {
	Position int
	Title    string
}

// Listener receives tab selection changes
type Listener interface {
	OnTabSelected(tab Tab)
	OnTabUnselected(tab Tab)
	OnTabReselected(tab Tab)
}

// Strip is an ordered row of tabs with at most one selected
type Strip struct {
	titles    []string
	selected  int
	listeners []Listener
}

// New creates a strip with the given tab titles
func New(titles ...string) *Strip {
	s := &Strip{}
	s.SetTabs(titles)
	return s
}

// SetTabs replaces every tab. The first tab becomes selected without
// notifying listeners.
func (s *Strip) SetTabs(titles []string) {
	s.titles = append([]string(nil), titles...)
	s.selected = -1
	if len(s.titles) > 0 {
		s.selected = 0
	}
}

// Len returns the number of tabs
func (s *Strip) Len() int {
	return len(s.titles)
}

// TabAt returns the tab at position
func (s *Strip) TabAt(position int) (Tab, bool) {
	if position < 0 || position >= len(s.titles) {
		return Tab{}, false
	}
	return Tab{Position: position, Title: s.titles[position]}, true
}

// Selected returns the selected tab position, or -1 when there are no tabs
func (s *Strip) Selected() int {
	return s.selected
}

// SelectTab selects the tab at position and notifies listeners. Selecting
// the selected tab again reports a reselection. Unknown positions are
// ignored.
func (s *Strip) SelectTab(position int) {
	tab, ok := s.TabAt(position)
	if !ok {
		return
	}
	if position == s.selected {
		s.dispatch(func(l Listener) { l.OnTabReselected(tab) })
		return
	}
	prev, hadPrev := s.TabAt(s.selected)
	s.selected = position
	if hadPrev {
		s.dispatch(func(l Listener) { l.OnTabUnselected(prev) })
	}
	s.dispatch(func(l Listener) { l.OnTabSelected(tab) })
}

// AddListener registers l. Registering the same listener twice delivers
// every callback twice.
func (s *Strip) AddListener(l Listener) {
	s.listeners = append(s.listeners, l)
}

// RemoveListener unregisters the first registration of l
func (s *Strip) RemoveListener(l Listener) {
	for i, existing := range s.listeners {
		if existing == l {
			s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
			return
		}
	}
}

// ListenerCount returns the number of registered listeners
func (s *Strip) ListenerCount() int {
	return len(s.listeners)
}

func (s *Strip) dispatch(fn func(Listener)) {
	for _, l := range append([]Listener(nil), s.listeners...) {
		fn(l)
	}
}

// Styles controls how a strip renders
type Styles struct {
	Tab       lipgloss.Style
	Active    lipgloss.Style
	Separator string
}

// DefaultStyles returns the stock tab styling
func DefaultStyles() Styles {
	return Styles{
		Tab: lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("245")),
		Active: lipgloss.NewStyle().
			Padding(0, 1).
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("62")),
		Separator: " ",
	}
}

// Render draws the strip on a single line
func (s *Strip) Render(st Styles) string {
	parts := make([]string, len(s.titles))
	for i, title := range s.titles {
		style := st.Tab
		if i == s.selected {
			style = st.Active
		}
		parts[i] = style.Render(title)
	}
	return strings.Join(parts, st.Separator)
}

// TabAtX returns the tab rendered under column x, or -1
func (s *Strip) TabAtX(st Styles, x int) int {
	sep := lipgloss.Width(st.Separator)
	left := 0
	for i, title := range s.titles {
		style := st.Tab
		if i == s.selected {
			style = st.Active
		}
		w := lipgloss.Width(style.Render(title))
		if x >= left && x < left+w {
			return i
		}
		left += w + sep
	}
	return -1
}
