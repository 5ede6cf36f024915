package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"tabsync/internal/tabs"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width     int
	Strip     *tabs.Strip
	List      ListState
	Status    string
	StatusErr bool
	Jumping   bool
	JumpInput string
	Matches   []string
	Help      string
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer(styles *Styles) *Renderer {
	return &Renderer{styles: styles}
}

// Render produces the complete view: tab strip, rule, list, status line
// and help bar
func (r *Renderer) Render(state ViewState) string {
	parts := []string{
		ansi.Truncate(state.Strip.Render(r.styles.Tabs), state.Width, "…"),
		r.styles.Rule.Render(strings.Repeat("─", state.Width)),
	}
	if state.List.Height > 0 {
		parts = append(parts, RenderList(r.styles, state.List))
	}

	if state.Jumping {
		parts = append(parts, RenderJump(r.styles, state.JumpInput, state.Matches, state.Width))
	} else {
		parts = append(parts, RenderStatus(r.styles, state.Status, state.StatusErr, state.Width))
	}
	parts = append(parts, state.Help)

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
