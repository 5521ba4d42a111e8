package panel

import "github.com/charmbracelet/bubbles/key"

var localKeys = struct {
	Select key.Binding
}{
	Select: key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
		key.WithHelp("1-9", "select tab"),
	),
}

// HelpBindings surfaces the panel's bindings alongside the global set.
func (m *Model) HelpBindings() []key.Binding {
	return []key.Binding{localKeys.Select}
}
