package panel

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kslone/medtui/internal/patient"
	"github.com/kslone/medtui/internal/pubsub"
	"github.com/kslone/medtui/internal/tui"
)

// DefaultTabs is the viewer's stock tab set.
func DefaultTabs() []Tab {
	return []Tab{
		{
			Name:    "series",
			Label:   "Series",
			Icon:    "≣",
			Content: &seriesContent{
				listContent: listContent{empty: "No series loaded."},
			},
		},
		{
			Name:  "measurements",
			Label: "Measure",
			Icon:  "⟷",
			Content: &listContent{
				empty: "No measurements yet. Activate a measure tool from the toolbar.",
			},
		},
		{
			Name:  "segmentations",
			Label: "Seg",
			Icon:  "◧",
			// segmentation needs a data source the shell does not have yet
			Disabled: true,
			Content: &listContent{
				empty: "Segmentation is unavailable.",
			},
		},
	}
}

// listContent is a static list of lines with a placeholder when empty.
type listContent struct {
	lines []string
	empty string

	width, height int
}

func (c *listContent) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		c.width = msg.Width
		c.height = msg.Height
	}
	return nil
}

func (c *listContent) View() string {
	if len(c.lines) == 0 {
		return tui.Faint.
			Width(c.width).
			Render(tui.Truncate(c.empty, c.width))
	}
	visible := c.lines
	if c.height > 0 && len(visible) > c.height {
		visible = visible[:c.height]
	}
	var out string
	for i, line := range visible {
		if i > 0 {
			out += "\n"
		}
		out += tui.Truncate(line, c.width)
	}
	return out
}

// seriesContent lists the loaded study's series, refreshing itself whenever
// the patient summary changes.
type seriesContent struct {
	listContent
}

func (c *seriesContent) Update(msg tea.Msg) tea.Cmd {
	if ev, ok := msg.(pubsub.Event[patient.Summary]); ok {
		c.lines = c.lines[:0]
		for _, s := range ev.Payload.Study.Series {
			c.lines = append(c.lines, fmt.Sprintf("%3d  %-20s %4d img", s.Number, s.Description, s.InstanceCount))
		}
		return nil
	}
	return c.listContent.Update(msg)
}
