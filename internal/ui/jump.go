package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"
)

// jumpPrompt fuzzy-matches typed text against section titles
type jumpPrompt struct {
	input   textinput.Model
	titles  []string
	matches fuzzy.Matches
	active  bool
}

func newJumpPrompt() *jumpPrompt {
	ti := textinput.New()
	ti.Prompt = "/"
	ti.Placeholder = "section"
	ti.CharLimit = 64
	return &jumpPrompt{input: ti}
}

func (j *jumpPrompt) SetTitles(titles []string) {
	j.titles = titles
	j.refresh()
}

func (j *jumpPrompt) Open() tea.Cmd {
	j.active = true
	j.input.SetValue("")
	j.refresh()
	return j.input.Focus()
}

func (j *jumpPrompt) Close() {
	j.active = false
	j.input.Blur()
}

func (j *jumpPrompt) Active() bool {
	return j.active
}

func (j *jumpPrompt) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	j.input, cmd = j.input.Update(msg)
	j.refresh()
	return cmd
}

// refresh recomputes the matches. An empty query matches every section
// in order.
func (j *jumpPrompt) refresh() {
	query := j.input.Value()
	if query == "" {
		j.matches = make(fuzzy.Matches, len(j.titles))
		for i, t := range j.titles {
			j.matches[i] = fuzzy.Match{Str: t, Index: i}
		}
		return
	}
	j.matches = fuzzy.Find(query, j.titles)
}

// Best returns the section of the best match
func (j *jumpPrompt) Best() (int, bool) {
	if len(j.matches) == 0 {
		return 0, false
	}
	return j.matches[0].Index, true
}

// MatchTitles returns the matched titles, best first
func (j *jumpPrompt) MatchTitles() []string {
	out := make([]string, len(j.matches))
	for i, m := range j.matches {
		out[i] = m.Str
	}
	return out
}

func (j *jumpPrompt) InputView() string {
	return j.input.View()
}
