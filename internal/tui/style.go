package tui

import "github.com/charmbracelet/lipgloss"

var (
	Regular = lipgloss.NewStyle()
	Bold    = Regular.Bold(true)
	Faint   = Regular.Faint(true)

	Width  = lipgloss.Width
	Height = lipgloss.Height
)
