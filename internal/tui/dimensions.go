package tui

const (
	// MinHeight is the minimum height of the TUI.
	MinHeight = 20
	// MinWidth is the minimum width of the TUI.
	MinWidth = 80
	// ToolbarHeight is the height of the toolbar at the top of the TUI.
	ToolbarHeight = 1
	// FooterHeight is the height of the footer at the bottom of the TUI.
	FooterHeight = 1
	// minimum width of the viewer body next to an expanded side panel
	MinViewerWidth = 30
)

func init() {
	if MinViewerWidth >= MinWidth {
		panic("minimum viewer width must leave room for the side panel")
	}
}
