package command

import (
	"testing"

	"github.com/kslone/medtui/internal/logging"
	"github.com/kslone/medtui/internal/tui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Dispatch(t *testing.T) {
	t.Parallel()

	reg := NewRegistry(Context{Logger: logging.Discard})
	reg.Register("zoom", SelectTool("zoom"))

	cmd := reg.Dispatch("zoom")
	require.NotNil(t, cmd)

	msg := cmd()
	assert.Equal(t, tui.ToolSelectedMsg{Name: "zoom"}, msg)
}

func TestRegistry_DispatchUnknown(t *testing.T) {
	t.Parallel()

	reg := NewRegistry(Context{Logger: logging.Discard})

	cmd := reg.Dispatch("does-not-exist")
	require.NotNil(t, cmd)

	msg := cmd()
	err, ok := msg.(tui.ErrorMsg)
	require.True(t, ok)
	assert.ErrorContains(t, err, "unknown command: does-not-exist")
}

func TestRegistry_RegisterReplaces(t *testing.T) {
	t.Parallel()

	reg := NewRegistry(Context{Logger: logging.Discard})
	reg.Register("pan", SelectTool("zoom"))
	reg.Register("pan", SelectTool("pan"))

	msg := reg.Dispatch("pan")()
	assert.Equal(t, tui.ToolSelectedMsg{Name: "pan"}, msg)
}
