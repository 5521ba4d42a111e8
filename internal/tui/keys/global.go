package keys

import (
	"github.com/charmbracelet/bubbles/key"
)

type global struct {
	TogglePanel key.Binding
	NextTab     key.Binding
	PrevTab     key.Binding
	Escape      key.Binding
	Quit        key.Binding
	Help        key.Binding
}

var Global = global{
	TogglePanel: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "toggle panel"),
	),
	NextTab: key.NewBinding(
		key.WithKeys("]"),
		key.WithHelp("]", "next tab"),
	),
	PrevTab: key.NewBinding(
		key.WithKeys("["),
		key.WithHelp("[", "previous tab"),
	),
	Escape: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c", "q"),
		key.WithHelp("q", "exit"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
}
