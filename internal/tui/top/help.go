package top

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

var (
	shortHelpKeyStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
		Light: "248",
		Dark:  "#626262",
	}).Bold(true).Margin(0, 1, 0, 0)

	shortHelpDescStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
		Light: "#B2B2B2",
		Dark:  "#4A4A4A",
	}).Margin(0, 2, 0, 0)
)

// shortHelpView renders a single line of help for key bindings within the
// footer, truncated to the available width.
func shortHelpView(bindings []key.Binding, maxWidth int) string {
	var (
		pairs []string
		width int
	)
	for _, b := range bindings {
		pair := lipgloss.JoinHorizontal(lipgloss.Left,
			shortHelpKeyStyle.Render(b.Help().Key),
			shortHelpDescStyle.Render(b.Help().Desc),
		)
		width += lipgloss.Width(pair)
		if width > maxWidth {
			break
		}
		pairs = append(pairs, pair)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, pairs...)
}

var (
	longHelpHeadingStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
		Light: "#909090",
		Dark:  "#626262",
	}).Bold(true).Margin(0, 3, 0, 0)

	longHelpKeyStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
		Light: "#909090",
		Dark:  "#626262",
	}).Bold(true).Margin(0, 1, 0, 0)

	longHelpDescStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
		Light: "#B2B2B2",
		Dark:  "#4A4A4A",
	}).Margin(0, 3, 0, 0)
)

// fullHelpView renders columns of key bindings for the dedicated help screen:
// panel bindings, toolbar bindings, global bindings.
func fullHelpView(panelBindings, toolbarBindings, globalBindings []key.Binding) string {
	groups := []struct {
		heading  string
		bindings []key.Binding
	}{
		{"Panel", panelBindings},
		{"Tools", toolbarBindings},
		{"Global", globalBindings},
	}
	var cols []string
	for _, g := range groups {
		if len(g.bindings) == 0 {
			continue
		}
		var keys, descs []string
		for _, b := range g.bindings {
			keys = append(keys, b.Help().Key)
			descs = append(descs, b.Help().Desc)
		}
		col := lipgloss.JoinVertical(lipgloss.Left,
			longHelpHeadingStyle.Render(g.heading),
			lipgloss.JoinHorizontal(lipgloss.Top,
				longHelpKeyStyle.Render(strings.Join(keys, "\n")),
				longHelpDescStyle.Render(strings.Join(descs, "\n")),
			),
		)
		cols = append(cols, col)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}
