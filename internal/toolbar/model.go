package toolbar

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kslone/medtui/internal/command"
	"github.com/kslone/medtui/internal/tui"
)

var (
	buttonStyle = tui.Regular.Padding(0, 1)
	activeStyle = buttonStyle.
			Background(tui.ActiveToolBackground).
			Foreground(tui.White).
			Bold(true)
	disabledStyle = buttonStyle.Foreground(tui.DisabledTabForeground)
	dividerStyle  = tui.Faint.SetString("│")
)

// Model renders the toolbar and dispatches button commands.
type Model struct {
	groups   []Group
	registry *command.Registry

	// name of the currently active tool, if any
	active string
	width  int
}

func New(groups []Group, registry *command.Registry) Model {
	return Model{
		groups:   groups,
		registry: registry,
	}
}

// Active returns the name of the currently active tool.
func (m Model) Active() string {
	return m.active
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tui.ToolSelectedMsg:
		m.active = msg.Name
	case tea.KeyMsg:
		for _, g := range m.groups {
			for _, b := range g.Buttons {
				if !key.Matches(msg, b.Binding) {
					continue
				}
				if b.Disabled {
					return m, tui.ReportInfo("%s is unavailable", b.Label)
				}
				return m, m.registry.Dispatch(b.Name)
			}
		}
	}
	return m, nil
}

func (m Model) View() string {
	var cells []string
	for i, g := range m.groups {
		if i > 0 {
			cells = append(cells, dividerStyle.String())
		}
		for _, b := range g.Buttons {
			style := buttonStyle
			switch {
			case b.Disabled:
				style = disabledStyle
			case b.Name == m.active:
				style = activeStyle
			}
			cells = append(cells, style.Render(b.Icon+" "+b.Label))
		}
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	return tui.Regular.MaxWidth(m.width).Render(bar)
}

// HelpBindings surfaces each enabled button's binding.
func (m Model) HelpBindings() (bindings []key.Binding) {
	for _, g := range m.groups {
		for _, b := range g.Buttons {
			if !b.Disabled {
				bindings = append(bindings, b.Binding)
			}
		}
	}
	return bindings
}
