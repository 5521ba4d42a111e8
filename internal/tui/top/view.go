package top

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kslone/medtui/internal/grid"
	"github.com/kslone/medtui/internal/tui"
	"github.com/kslone/medtui/internal/tui/keys"
	"github.com/kslone/medtui/internal/version"
)

var (
	errStyle    = tui.Regular.Foreground(tui.Red)
	infoStyle   = tui.Regular.Foreground(tui.LightGrey)
	footerStyle = tui.Regular.Padding(0, 1)

	viewerPlaceholderStyle = tui.Faint.Align(lipgloss.Center, lipgloss.Center)
)

func (m model) View() string {
	if m.width < tui.MinWidth || m.height < tui.MinHeight {
		return fmt.Sprintf("Terminal too small: need at least %dx%d.", tui.MinWidth, tui.MinHeight)
	}

	var body string
	switch {
	case m.showHelp:
		body = lipgloss.NewStyle().
			Margin(1).
			Render(fullHelpView(
				m.panel.HelpBindings(),
				m.toolbar.HelpBindings(),
				keys.KeyMapToSlice(keys.Global),
			))
	case m.showQuitPrompt:
		body = lipgloss.NewStyle().
			Margin(0, 1).
			Render(fmt.Sprintf("Quit medtui? (y/N): %s", m.quitPrompt.View()))
	default:
		body = m.viewBody()
	}
	body = tui.Regular.
		Height(m.bodyHeight()).
		MaxHeight(m.bodyHeight()).
		Render(body)

	return lipgloss.JoinVertical(lipgloss.Top,
		m.toolbar.View(),
		body,
		m.viewFooter(),
	)
}

// viewBody renders the side panel next to the viewer body, on the configured
// side.
func (m model) viewBody() string {
	viewer := m.viewViewer()
	if m.side == grid.Left {
		return lipgloss.JoinHorizontal(lipgloss.Top, m.panel.View(), viewer)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, viewer, m.panel.View())
}

// viewViewer renders the viewport area. Image rendering is out of scope; the
// area shows the loaded study description.
func (m model) viewViewer() string {
	width := max(m.width-m.panel.Width(), 0)
	text := "No study loaded"
	if sum := m.patients.Get(); sum.Study.Description != "" {
		text = sum.Study.Description
	}
	return viewerPlaceholderStyle.
		Width(width).
		Height(m.bodyHeight()).
		Render(text)
}

func (m model) viewFooter() string {
	var left string
	switch {
	case m.err != nil:
		left = errStyle.Render("Error: " + m.err.Error())
	case m.info != "":
		left = infoStyle.Render(m.info)
	default:
		left = infoStyle.Render("medtui " + version.Version)
	}

	helpHint := shortHelpView(append(
		keys.KeyMapToSlice(keys.Global),
		m.toolbar.HelpBindings()...,
	), m.width-tui.Width(left)-4)

	gap := max(m.width-tui.Width(left)-tui.Width(helpHint)-2, 0)
	return footerStyle.
		MaxWidth(m.width).
		Render(left + strings.Repeat(" ", gap) + helpHint)
}
