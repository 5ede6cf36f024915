package views

import (
	"github.com/charmbracelet/lipgloss"

	"tabsync/internal/tabs"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Tabs      tabs.Styles
	Rule      lipgloss.Style
	Dim       lipgloss.Style
	Status    lipgloss.Style
	Error     lipgloss.Style
	Prompt    lipgloss.Style
	Match     lipgloss.Style
	BestMatch lipgloss.Style
	Leading   lipgloss.Style
	Sections  []lipgloss.Style // cycled by section index
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Tabs:      tabs.DefaultStyles(),
		Rule:      lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		Dim:       lipgloss.NewStyle().Faint(true),
		Status:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Prompt:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Match:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		BestMatch: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Leading:   lipgloss.NewStyle().Bold(true).Underline(true),
		Sections: []lipgloss.Style{
			lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
			lipgloss.NewStyle().Foreground(lipgloss.Color("33")),  // blue
			lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
			lipgloss.NewStyle().Foreground(lipgloss.Color("51")),  // cyan
			lipgloss.NewStyle().Foreground(lipgloss.Color("170")), // magenta
		},
	}
}

// SectionStyle returns the style for items of the given section
func (s *Styles) SectionStyle(section int) lipgloss.Style {
	if len(s.Sections) == 0 || section < 0 {
		return lipgloss.NewStyle()
	}
	return s.Sections[section%len(s.Sections)]
}
