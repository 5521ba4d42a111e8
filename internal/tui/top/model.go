package top

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/davecgh/go-spew/spew"
	"github.com/kslone/medtui/internal/grid"
	"github.com/kslone/medtui/internal/logging"
	"github.com/kslone/medtui/internal/panel"
	"github.com/kslone/medtui/internal/patient"
	"github.com/kslone/medtui/internal/toolbar"
	"github.com/kslone/medtui/internal/tui"
	"github.com/kslone/medtui/internal/tui/keys"
)

type model struct {
	panel   *panel.Model
	toolbar toolbar.Model
	side    grid.Side

	patients *patient.Service
	logger   logging.Interface

	width  int
	height int

	showHelp bool

	showQuitPrompt bool
	quitPrompt     textinput.Model

	// Either an error or an informational message is rendered in the footer.
	err  error
	info string

	dump *os.File
}

type Options struct {
	Patients *patient.Service
	Toolbar  toolbar.Model
	Panel    *panel.Model
	Side     grid.Side

	Logger logging.Interface
	Debug  bool
}

// newModel constructs the top-level TUI model.
func newModel(opts Options) (model, error) {
	var dump *os.File
	if opts.Debug {
		var err error
		dump, err = os.OpenFile("messages.log", os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o755)
		if err != nil {
			return model{}, err
		}
	}

	m := model{
		panel:    opts.Panel,
		toolbar:  opts.Toolbar,
		side:     opts.Side,
		patients: opts.Patients,
		logger:   opts.Logger,
		dump:     dump,
	}
	return m, nil
}

func (m model) Init() tea.Cmd {
	return m.panel.Init()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if m.dump != nil {
		spew.Fdump(m.dump, msg)
	}

	if m.showQuitPrompt {
		switch msg := msg.(type) {
		case tea.KeyMsg:
			switch {
			case key.Matches(msg, keys.Global.Quit):
				// pressing q or ctrl-c again quits the app
				return m, tea.Quit
			case key.Matches(msg, localKeys.Yes):
				// 'y' quits the app
				return m, tea.Quit
			default:
				// any other key closes the prompt and returns to the app
				m.showQuitPrompt = false
				m.info = "canceled quitting"
			}
		}
		return m, nil
	}

	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
		// amend msg to account for toolbar and footer before forwarding to
		// children below.
		msg = tea.WindowSizeMsg{
			Width:  wsm.Width,
			Height: m.bodyHeight(),
		}
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Pressing any key makes any info/error message in the footer disappear
		m.info = ""
		m.err = nil

		switch {
		case key.Matches(msg, keys.Global.Quit):
			// quitting is prompted for confirmation first
			m.quitPrompt = textinput.New()
			m.quitPrompt.Prompt = ""
			m.quitPrompt.Focus()
			m.showQuitPrompt = true
			return m, textinput.Blink
		case key.Matches(msg, keys.Global.Escape):
			if m.showHelp {
				m.showHelp = false
			}
		case key.Matches(msg, keys.Global.Help):
			// '?' toggles help
			m.showHelp = !m.showHelp
		default:
			// The toolbar gets first go at a key; if it does not dispatch a
			// command the panel takes it.
			var cmd tea.Cmd
			m.toolbar, cmd = m.toolbar.Update(msg)
			if cmd != nil {
				return m, cmd
			}
			return m, m.panel.Update(msg)
		}
	case tui.ToolSelectedMsg:
		m.toolbar, _ = m.toolbar.Update(msg)
		m.info = fmt.Sprintf("active tool: %s", msg.Name)
	case tui.ErrorMsg:
		if msg != nil {
			m.err = msg
			m.logger.Error(msg.Error())
		}
	case tui.InfoMsg:
		m.info = string(msg)
	default:
		// Send remaining message types to the children.
		var cmd tea.Cmd
		m.toolbar, cmd = m.toolbar.Update(msg)
		cmds = append(cmds, cmd, m.panel.Update(msg))
	}
	return m, tea.Batch(cmds...)
}

func (m model) bodyHeight() int {
	return max(m.height-tui.ToolbarHeight-tui.FooterHeight, 0)
}
