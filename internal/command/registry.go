// Package command maps the names dispatched by toolbar buttons onto handlers.
// Buttons are declarative data; this registry is the only place a name is
// resolved to behavior, so the toolbar stays ignorant of what its buttons do.
package command

import (
	"fmt"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kslone/medtui/internal/logging"
	"github.com/kslone/medtui/internal/patient"
	"github.com/kslone/medtui/internal/tui"
)

// Context carries the collaborators handlers may act upon.
type Context struct {
	Logger   logging.Interface
	Patients *patient.Service
}

// Handler executes a named command, returning a command for the event loop.
type Handler func(Context) tea.Cmd

// Registry resolves command names to handlers.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]Handler
	ctx      Context
}

func NewRegistry(ctx Context) *Registry {
	return &Registry{
		handlers: make(map[string]Handler),
		ctx:      ctx,
	}
}

// Register adds a handler under name, replacing any existing handler.
func (r *Registry) Register(name string, h Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[name] = h
}

// Dispatch resolves name and invokes its handler. An unknown name is not a
// programming error worth panicking over; it is reported to the footer.
func (r *Registry) Dispatch(name string) tea.Cmd {
	r.mu.RLock()
	h, ok := r.handlers[name]
	r.mu.RUnlock()
	if !ok {
		r.ctx.Logger.Error("dispatching command", "name", name, "error", "unknown command")
		return tui.ReportError(fmt.Errorf("unknown command: %s", name))
	}
	r.ctx.Logger.Debug("dispatching command", "name", name)
	return h(r.ctx)
}

// SelectTool returns a handler that activates the named viewport tool.
func SelectTool(name string) Handler {
	return func(Context) tea.Cmd {
		return tui.CmdHandler(tui.ToolSelectedMsg{Name: name})
	}
}
