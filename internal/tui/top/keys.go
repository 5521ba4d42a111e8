package top

import "github.com/charmbracelet/bubbles/key"

var localKeys = struct {
	Yes key.Binding
}{
	Yes: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "confirm"),
	),
}
