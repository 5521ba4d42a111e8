package top

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kslone/medtui/internal/command"
	"github.com/kslone/medtui/internal/grid"
	"github.com/kslone/medtui/internal/logging"
	"github.com/kslone/medtui/internal/panel"
	"github.com/kslone/medtui/internal/patient"
	"github.com/kslone/medtui/internal/pubsub"
	"github.com/kslone/medtui/internal/toolbar"
	"github.com/kslone/medtui/internal/tui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T) model {
	t.Helper()

	patients := patient.NewService(patient.ServiceOptions{Logger: logging.Discard})
	reg := command.NewRegistry(command.Context{Logger: logging.Discard, Patients: patients})
	reg.Register("zoom", command.SelectTool("zoom"))

	m, err := newModel(Options{
		Patients: patients,
		Toolbar:  toolbar.New(toolbar.Defaults(), reg),
		Panel: panel.New(panel.Options{
			Tabs:   panel.DefaultTabs(),
			Side:   grid.Left,
			Logger: logging.Discard,
		}),
		Side:   grid.Left,
		Logger: logging.Discard,
	})
	require.NoError(t, err)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return updated.(model)
}

func TestModel_quitPrompt(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m = updated.(model)
	assert.Contains(t, m.View(), "Quit medtui?")

	// 'y' quits
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())

	// any other key cancels
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
	m = updated.(model)
	assert.NotContains(t, m.View(), "Quit medtui?")
}

func TestModel_toolbarDispatch(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)

	// 'z' dispatches the zoom command through the registry
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'z'}})
	require.NotNil(t, cmd)
	assert.Equal(t, tui.ToolSelectedMsg{Name: "zoom"}, cmd())

	// the resulting message lands in the footer
	updated, _ := m.Update(tui.ToolSelectedMsg{Name: "zoom"})
	m = updated.(model)
	assert.Contains(t, m.View(), "active tool: zoom")
}

func TestModel_errorInFooter(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)

	updated, _ := m.Update(tui.ErrorMsg(assert.AnError))
	m = updated.(model)
	assert.Contains(t, m.View(), "Error:")

	// any keypress clears it
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'['}})
	m = updated.(model)
	assert.NotContains(t, m.View(), "Error:")
}

func TestModel_help(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	m = updated.(model)
	assert.Contains(t, m.View(), "Global")

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(model)
	assert.NotContains(t, m.View(), "Global")
}

func TestModel_tooSmall(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 20, Height: 5})
	m = updated.(model)

	assert.Contains(t, m.View(), "Terminal too small")
}

func TestModel_patientEventReachesPanel(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	sum := patient.Demo()
	m.patients.Load(sum)

	updated, _ := m.Update(pubsub.NewEvent(pubsub.CreatedEvent, sum))
	m = updated.(model)

	view := m.View()
	assert.Contains(t, view, "Doe, Jane")
	assert.Contains(t, view, "CT CHEST W/O CONTRAST")
}
