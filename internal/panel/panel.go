// Package panel implements the collapsible side panel: a header grid of tabs
// computed by the grid package, a patient summary block, per-tab content, and
// an expand/collapse animation. The panel is a bubbletea child model; the top
// model owns its placement and forwards messages to it.
package panel

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kslone/medtui/internal/grid"
	"github.com/kslone/medtui/internal/logging"
	"github.com/kslone/medtui/internal/patient"
	"github.com/kslone/medtui/internal/pubsub"
	"github.com/kslone/medtui/internal/tui"
	"github.com/kslone/medtui/internal/tui/keys"
)

const (
	// DefaultExpandedWidth is the panel's expanded width in terminal cells.
	DefaultExpandedWidth = 44
	// CollapsedWidth is the width of the slim bar left when collapsed.
	CollapsedWidth = 3
	// animationStep is how many cells the panel grows or shrinks per frame.
	animationStep = 6
	// animationInterval is the delay between animation frames.
	animationInterval = 20 * time.Millisecond
	// patientBlockHeight is the height of the patient summary block,
	// including its trailing blank line.
	patientBlockHeight = 4
)

// Cells is the grid geometry expressed in terminal cells rather than the
// reference pixel dimensions.
var Cells = grid.Config{
	SpacerWidth:       1,
	CloseControlWidth: 3,
	SmallTabWidth:     17,
	LargeTabWidth:     10,
}

// animTickMsg advances the expand/collapse animation by one frame.
type animTickMsg struct{}

// Tab is one navigable section of the panel. Disabled tabs are excluded from
// activation but still occupy a grid cell.
type Tab struct {
	Name     string
	Label    string
	Icon     string
	Disabled bool
	Content  Content
}

// Content is the model rendered beneath the tab grid for the active tab.
// Sizes arrive as tea.WindowSizeMsg, in keeping with bubbletea convention.
type Content interface {
	Update(msg tea.Msg) tea.Cmd
	View() string
}

// Model is the side panel.
type Model struct {
	tabs   []Tab
	side   grid.Side
	logger logging.Interface

	active int
	open   bool

	// width is the panel's current rendered width; target is what the
	// animation is stepping it towards.
	width, target int
	expandedWidth int
	height        int

	summary patient.Summary
}

type Options struct {
	Tabs          []Tab
	Side          grid.Side
	ExpandedWidth int
	Logger        logging.Interface
}

// New constructs the panel. At least one tab is required; the grid path is
// never invoked with zero tabs.
func New(opts Options) *Model {
	if len(opts.Tabs) == 0 {
		panic("side panel requires at least one tab")
	}
	expanded := opts.ExpandedWidth
	if expanded == 0 {
		expanded = DefaultExpandedWidth
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard
	}
	m := &Model{
		tabs:          opts.Tabs,
		side:          opts.Side,
		logger:        logger,
		open:          true,
		expandedWidth: expanded,
		width:         expanded,
		target:        expanded,
	}
	// the first enabled tab starts active
	m.active = m.nextEnabled(len(m.tabs)-1, 1)
	return m
}

func (m *Model) Init() tea.Cmd {
	return nil
}

// Open reports whether the panel is expanded or expanding.
func (m *Model) Open() bool { return m.open }

// Width is the panel's current rendered width in cells.
func (m *Model) Width() int {
	return m.width
}

// ActiveTab returns the currently active tab.
func (m *Model) ActiveTab() Tab {
	return m.tabs[m.active]
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		// Never leave less than the minimum viewer width beside an
		// expanded panel.
		m.expandedWidth = clamp(m.expandedWidth, CollapsedWidth, max(msg.Width-tui.MinViewerWidth, CollapsedWidth))
		if m.open {
			m.width = m.expandedWidth
			m.target = m.expandedWidth
		}
		return m.resizeContents()
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Global.TogglePanel):
			return m.Toggle()
		case key.Matches(msg, keys.Global.NextTab):
			return m.cycle(1)
		case key.Matches(msg, keys.Global.PrevTab):
			return m.cycle(-1)
		case key.Matches(msg, localKeys.Select):
			idx := int(msg.Runes[0] - '1')
			return m.activate(idx)
		}
		return m.tabs[m.active].Content.Update(msg)
	case animTickMsg:
		return m.step()
	case pubsub.Event[patient.Summary]:
		m.summary = msg.Payload
		return m.updateContents(msg)
	}
	return m.updateContents(msg)
}

// Toggle starts the expand or collapse animation.
func (m *Model) Toggle() tea.Cmd {
	m.open = !m.open
	if m.open {
		m.target = m.expandedWidth
	} else {
		m.target = CollapsedWidth
	}
	m.logger.Debug("toggling side panel", "open", m.open, "target_width", m.target)
	return m.animate()
}

func (m *Model) animate() tea.Cmd {
	return tea.Tick(animationInterval, func(time.Time) tea.Msg {
		return animTickMsg{}
	})
}

// step advances the animation one frame, scheduling the next frame until the
// target width is reached.
func (m *Model) step() tea.Cmd {
	if m.width == m.target {
		return nil
	}
	if m.width < m.target {
		m.width = min(m.width+animationStep, m.target)
	} else {
		m.width = max(m.width-animationStep, m.target)
	}
	cmds := []tea.Cmd{m.resizeContents()}
	if m.width != m.target {
		cmds = append(cmds, m.animate())
	}
	return tea.Batch(cmds...)
}

// cycle activates the next enabled tab in the given direction, wrapping.
func (m *Model) cycle(direction int) tea.Cmd {
	next := m.nextEnabled(m.active, direction)
	return m.activate(next)
}

func (m *Model) nextEnabled(from, direction int) int {
	n := len(m.tabs)
	for i := 1; i <= n; i++ {
		idx := ((from+i*direction)%n + n) % n
		if !m.tabs[idx].Disabled {
			return idx
		}
	}
	return from
}

// activate makes the tab at idx active. Out-of-range indices are ignored;
// disabled tabs are reported rather than activated.
func (m *Model) activate(idx int) tea.Cmd {
	if idx < 0 || idx >= len(m.tabs) {
		return nil
	}
	if m.tabs[idx].Disabled {
		return tui.ReportInfo("%s is unavailable", m.tabs[idx].Label)
	}
	m.active = idx
	// activating a tab on a collapsed panel expands it
	if !m.open {
		return m.Toggle()
	}
	return nil
}

func (m *Model) resizeContents() tea.Cmd {
	return m.updateContents(tea.WindowSizeMsg{
		Width:  max(m.contentWidth(), 0),
		Height: max(m.contentHeight(), 0),
	})
}

func (m *Model) updateContents(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, len(m.tabs))
	for i := range m.tabs {
		cmds[i] = m.tabs[i].Content.Update(msg)
	}
	return tea.Batch(cmds...)
}

func (m *Model) contentWidth() int { return m.width - 2 }

func (m *Model) contentHeight() int {
	return m.height - patientBlockHeight - m.headerHeight()
}

// headerHeight is the number of lines the tab grid occupies at the panel's
// current width.
func (m *Model) headerHeight() int {
	if len(m.tabs) == 1 {
		return 2
	}
	res := m.layout()
	rows := (len(m.tabs) + res.ColumnCount - 1) / res.ColumnCount
	return rows + 1
}

// layout recomputes the grid geometry for the current width. It runs on
// every frame of the animation, so a mid-animation panel lays its tabs out
// for the width it has now, not the width it is heading for.
func (m *Model) layout() grid.Result {
	avail := m.width - Cells.CloseControlWidth
	return Cells.Layout(m.side, len(m.tabs), avail, m.width)
}

func clamp(v, low, high int) int {
	if high < low {
		low, high = high, low
	}
	return min(high, max(low, v))
}
