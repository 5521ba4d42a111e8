package panel

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kslone/medtui/internal/grid"
	"github.com/kslone/medtui/internal/tui"
)

var (
	activeTabStyle = tui.Regular.
			Background(tui.ActiveTabBackground).
			Foreground(tui.White).
			Bold(true)
	inactiveTabStyle = tui.Regular.
				Background(tui.InactiveTabBackground).
				Foreground(tui.OffWhite)
	disabledTabStyle = tui.Regular.
				Background(tui.InactiveTabBackground).
				Foreground(tui.DisabledTabForeground)

	closeStyle = tui.Faint.Width(Cells.CloseControlWidth).Align(lipgloss.Center)

	patientNameStyle = tui.Bold.Foreground(tui.PatientNameColor)
	patientMetaStyle = tui.Faint
)

func (m *Model) View() string {
	if m.width <= CollapsedWidth && !m.open {
		return m.viewCollapsed()
	}

	inner := lipgloss.JoinVertical(lipgloss.Left,
		m.viewHeader(),
		m.viewPatient(),
		m.viewContent(),
	)

	// border on the edge facing the viewer body
	style := tui.Regular.
		Width(m.width - 1).
		MaxWidth(m.width).
		Height(m.height)
	if m.side == grid.Left {
		style = style.Border(lipgloss.NormalBorder(), false, true, false, false)
	} else {
		style = style.Border(lipgloss.NormalBorder(), false, false, false, true)
	}
	return style.Render(inner)
}

// viewHeader renders the tab grid and the close control.
func (m *Model) viewHeader() string {
	if len(m.tabs) == 1 {
		return m.viewSingleTabHeader()
	}

	res := m.layout()
	cells := grid.Cells(len(m.tabs), res.ColumnCount)

	// assemble rows of rendered cells with spacers between columns
	var (
		lines []string
		row   strings.Builder
	)
	flush := func() {
		lines = append(lines, row.String())
		row.Reset()
	}
	for _, c := range cells {
		if c.Column == 0 && c.Index != 0 {
			flush()
		}
		if c.SpacerBefore {
			row.WriteString(strings.Repeat(" ", res.SpacerWidth))
		}
		row.WriteString(m.renderTab(c, res.TabWidth))
	}
	flush()

	// The close control sits on the first row only; the grid is inset from
	// it by the centering offset.
	for i, line := range lines {
		lines[i] = m.placeHeaderRow(line, res.Offset, i == 0)
	}
	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

// viewSingleTabHeader is the one-tab layout: a lone tab never wraps and is
// rendered as a full-width header bar rather than a grid cell.
func (m *Model) viewSingleTabHeader() string {
	t := m.tabs[0]
	w := max(m.innerWidth()-Cells.CloseControlWidth, 0)
	bar := activeTabStyle.
		Width(w).
		MaxWidth(w).
		Align(lipgloss.Center).
		Render(tui.Truncate(t.Icon+" "+t.Label, w))
	control := closeStyle.Render(m.closeGlyph())
	if m.side == grid.Left {
		return lipgloss.JoinHorizontal(lipgloss.Top, bar, control) + "\n"
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, control, bar) + "\n"
}

// renderTab renders one grid cell. Rounded corners are approximated with
// half-block caps drawn in the tab's background color.
func (m *Model) renderTab(c grid.Cell, width int) string {
	t := m.tabs[c.Index]
	style := inactiveTabStyle
	switch {
	case t.Disabled:
		style = disabledTabStyle
	case c.Index == m.active:
		style = activeTabStyle
	}

	bodyWidth := width
	var leading, trailing string
	capStyle := tui.Regular.Foreground(style.GetBackground())
	if c.RoundLeading {
		leading = capStyle.Render("▐")
		bodyWidth--
	}
	if c.RoundTrailing {
		trailing = capStyle.Render("▌")
		bodyWidth--
	}
	bodyWidth = max(bodyWidth, 0)

	label := fmt.Sprintf("%d %s", c.Index+1, t.Label)
	if bodyWidth < len(label) {
		label = t.Label
	}
	body := style.
		Width(bodyWidth).
		MaxWidth(bodyWidth).
		Align(lipgloss.Center).
		Render(tui.Truncate(label, bodyWidth))
	return leading + body + trailing
}

// placeHeaderRow positions a grid row within the header line: the close
// control anchored to the panel's inner edge, the row inset from it by the
// centering offset.
func (m *Model) placeHeaderRow(row string, offset int, withClose bool) string {
	inner := m.innerWidth()
	control := strings.Repeat(" ", Cells.CloseControlWidth)
	if withClose {
		control = closeStyle.Render(m.closeGlyph())
	}
	rowWidth := lipgloss.Width(row)
	pad := max(inner-Cells.CloseControlWidth-offset-rowWidth, 0)
	if m.side == grid.Left {
		// close control at the inner (right) edge; offset is a right-inset
		return strings.Repeat(" ", pad) + row + strings.Repeat(" ", offset) + control
	}
	return control + strings.Repeat(" ", offset) + row + strings.Repeat(" ", pad)
}

func (m *Model) viewPatient() string {
	w := m.innerWidth()
	if m.summary.Patient.Name == "" && m.summary.StudyLine() == "" {
		return patientMetaStyle.Render(tui.Truncate("No study loaded", w)) + "\n\n\n"
	}
	return strings.Join([]string{
		patientNameStyle.Render(tui.Truncate(m.summary.DisplayName(), w)),
		patientMetaStyle.Render(tui.Truncate(m.summary.Demographics(), w)),
		tui.Regular.Render(tui.Truncate(m.summary.StudyLine(), w)),
		"",
	}, "\n")
}

func (m *Model) viewContent() string {
	w := max(m.contentWidth(), 0)
	return tui.Regular.
		Width(w).
		MaxWidth(w).
		Height(max(m.contentHeight(), 0)).
		Render(m.tabs[m.active].Content.View())
}

// viewCollapsed renders the slim bar shown when the panel is closed: the
// expand glyph on top, the tab icons stacked beneath it.
func (m *Model) viewCollapsed() string {
	lines := []string{closeStyle.Render(m.closeGlyph()), ""}
	for i, t := range m.tabs {
		style := tui.Faint
		if i == m.active {
			style = tui.Bold.Foreground(tui.PatientNameColor)
		}
		lines = append(lines, style.Width(CollapsedWidth).Align(lipgloss.Center).Render(t.Icon))
	}
	return tui.Regular.
		Width(CollapsedWidth).
		Height(m.height).
		Render(strings.Join(lines, "\n"))
}

// closeGlyph points in the direction the panel will move when toggled.
func (m *Model) closeGlyph() string {
	switch {
	case m.open && m.side == grid.Left:
		return "❮"
	case m.open:
		return "❯"
	case m.side == grid.Left:
		return "❯"
	default:
		return "❮"
	}
}

func (m *Model) innerWidth() int { return m.width - 1 }
