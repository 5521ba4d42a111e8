package tui

type InfoMsg string

type ErrorMsg error

// ToolSelectedMsg is emitted when a toolbar command activates a viewport
// tool.
type ToolSelectedMsg struct {
	// Name of the tool, e.g. "zoom".
	Name string
}
