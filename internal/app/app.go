// Package app is the main entrypoint into the application, responsible for
// configuring and starting the application, services, dependency injection,
// etc.
package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/kslone/medtui/internal/command"
	"github.com/kslone/medtui/internal/logging"
	"github.com/kslone/medtui/internal/patient"
	"github.com/kslone/medtui/internal/toolbar"
	"github.com/kslone/medtui/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
)

// App holds the application's services.
type App struct {
	Logger   *logging.Logger
	Patients *patient.Service
	Commands *command.Registry

	logFile io.Closer
}

// New instantiates the services from the parsed config.
func New(cfg Config) (*App, error) {
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	logPath := filepath.Join(cfg.DataDir, "medtui.log")
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}

	logger := logging.NewLogger(logging.Options{
		Level:             cfg.LogLevel,
		AdditionalWriters: []io.Writer{logFile},
	})

	patients := patient.NewService(patient.ServiceOptions{
		Logger: logger,
	})

	commands := command.NewRegistry(command.Context{
		Logger:   logger,
		Patients: patients,
	})
	registerBuiltins(commands)

	logger.Info("started medtui", "side", cfg.Side, "panel_width", cfg.PanelWidth)

	return &App{
		Logger:   logger,
		Patients: patients,
		Commands: commands,
		logFile:  logFile,
	}, nil
}

// Cleanup releases resources held by the app.
func (a *App) Cleanup() {
	if a.logFile != nil {
		a.logFile.Close()
	}
}

// registerBuiltins wires the stock toolbar commands. Tool buttons activate
// their tool; reset deactivates whatever tool is active.
func registerBuiltins(reg *command.Registry) {
	for _, name := range []string{"zoom", "windowLevel", "pan", "length", "angle", "toggleCine"} {
		reg.Register(name, command.SelectTool(name))
	}
	reg.Register("reset", func(ctx command.Context) tea.Cmd {
		ctx.Logger.Info("resetting viewport")
		return tea.Batch(
			tui.CmdHandler(tui.ToolSelectedMsg{}),
			tui.ReportInfo("viewport reset"),
		)
	})
}

// Buttons is the toolbar definition served to the TUI.
func (a *App) Buttons() []toolbar.Group {
	return toolbar.Defaults()
}
