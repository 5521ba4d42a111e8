package tui

import "github.com/charmbracelet/lipgloss"

const (
	Black     = lipgloss.Color("#000000")
	Red       = lipgloss.Color("#FF5353")
	Yellow    = lipgloss.Color("#DBBD70")
	Green     = lipgloss.Color("34")
	DeepBlue  = lipgloss.Color("39")
	LightBlue = lipgloss.Color("81")
	Blue      = lipgloss.Color("63")
	Grey      = lipgloss.Color("#737373")
	LightGrey = lipgloss.Color("245")
	DarkGrey  = lipgloss.Color("#606362")
	White     = lipgloss.Color("#ffffff")
	OffWhite  = lipgloss.Color("#a8a7a5")
)

var (
	// ActiveTabBackground marks the selected tab in the side panel's grid.
	ActiveTabBackground = DeepBlue
	// InactiveTabBackground is the resting tab cell color.
	InactiveTabBackground = DarkGrey
	// DisabledTabForeground greys out tabs excluded from activation.
	DisabledTabForeground = Grey

	ActiveToolBackground = DeepBlue

	HelpKey = lipgloss.AdaptiveColor{
		Dark:  "ff",
		Light: "",
	}
	HelpDesc = lipgloss.AdaptiveColor{
		Dark:  "248",
		Light: "246",
	}

	PatientNameColor = lipgloss.AdaptiveColor{Dark: string(LightBlue), Light: string(DeepBlue)}
)
