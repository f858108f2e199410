package editor

import "github.com/charmbracelet/bubbles/key"

// keyMap declares the normal-mode bindings surfaced in the help footer.
type keyMap struct {
	Insert     key.Binding
	OpenBelow  key.Binding
	OpenAbove  key.Binding
	Realign    key.Binding
	RealignAll key.Binding
	Paste      key.Binding
	Save       key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Insert: key.NewBinding(
			key.WithKeys("i", "a", "A"),
			key.WithHelp("i/a/A", "insert"),
		),
		OpenBelow: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open below"),
		),
		OpenAbove: key.NewBinding(
			key.WithKeys("O"),
			key.WithHelp("O", "open above"),
		),
		Realign: key.NewBinding(
			key.WithKeys("="),
			key.WithHelp("==", "realign line"),
		),
		RealignAll: key.NewBinding(
			key.WithKeys("="),
			key.WithHelp("=G", "realign to end"),
		),
		Paste: key.NewBinding(
			key.WithKeys("P"),
			key.WithHelp("P", "toggle paste"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Insert, k.OpenBelow, k.Realign, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Insert, k.OpenBelow, k.OpenAbove},
		{k.Realign, k.RealignAll, k.Paste},
		{k.Save, k.Help, k.Quit},
	}
}
