package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the key bindings of the main view
type keyMap struct {
	PrevTab     key.Binding
	NextTab     key.Binding
	CycleNext   key.Binding
	CyclePrev   key.Binding
	JumpTo      key.Binding
	Up          key.Binding
	Down        key.Binding
	PageUp      key.Binding
	PageDown    key.Binding
	Home        key.Binding
	End         key.Binding
	Find        key.Binding
	Orientation key.Binding
	Save        key.Binding
	Help        key.Binding
	Quit        key.Binding

	// jump prompt
	Accept key.Binding
	Cancel key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		PrevTab:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous tab")),
		NextTab:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next tab")),
		CycleNext:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "cycle tabs")),
		CyclePrev:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "cycle tabs back")),
		JumpTo:      key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "go to tab")),
		Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll back")),
		Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll forward")),
		PageUp:      key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page back")),
		PageDown:    key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page forward")),
		Home:        key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("home/g", "start of list")),
		End:         key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("end/G", "end of list")),
		Find:        key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "find section")),
		Orientation: key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "toggle orientation")),
		Save:        key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "save settings")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Accept:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "go to section")),
		Cancel:      key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "cancel")),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevTab, k.NextTab, k.Up, k.Down, k.Find, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevTab, k.NextTab, k.CycleNext, k.CyclePrev, k.JumpTo},
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Home, k.End},
		{k.Find, k.Orientation, k.Save, k.Help, k.Quit},
	}
}
