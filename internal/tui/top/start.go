package top

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kslone/medtui/internal/app"
	"github.com/kslone/medtui/internal/panel"
	"github.com/kslone/medtui/internal/patient"
	"github.com/kslone/medtui/internal/toolbar"
)

// Start starts the TUI and blocks until the user exits.
func Start(cfg app.Config) error {
	app, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer app.Cleanup()

	m, err := newModel(Options{
		Patients: app.Patients,
		Toolbar:  toolbar.New(app.Buttons(), app.Commands),
		Panel: panel.New(panel.Options{
			Tabs:          panel.DefaultTabs(),
			Side:          cfg.PanelSide(),
			ExpandedWidth: cfg.PanelWidth,
			Logger:        app.Logger,
		}),
		Side:   cfg.PanelSide(),
		Logger: app.Logger,
		Debug:  cfg.Debug,
	})
	if err != nil {
		return err
	}

	p := tea.NewProgram(m,
		// Use the full size of the terminal with its "alternate screen buffer"
		tea.WithAltScreen(),
	)

	ch, unsub := setupSubscriptions(app)
	defer unsub()

	// Relay events to model in background
	go func() {
		for msg := range ch {
			p.Send(msg)
		}
	}()

	// Seed the shell with the demo study until a metadata source is wired in.
	app.Patients.Load(patient.Demo())

	// Blocks until user quits
	_, err = p.Run()
	return err
}

// setupSubscriptions relays service events to the TUI. Deliberately set up
// subscriptions *before* any events are triggered, to ensure the TUI receives
// all messages.
func setupSubscriptions(app *app.App) (chan tea.Msg, func()) {
	ch := make(chan tea.Msg)
	wg := sync.WaitGroup{} // sync closure of subscriptions

	ctx, cancel := context.WithCancel(context.Background())

	{
		sub, _ := app.Logger.Subscribe(ctx)
		wg.Add(1)
		go func() {
			for ev := range sub {
				ch <- ev
			}
			wg.Done()
		}()
	}
	{
		sub, _ := app.Patients.Subscribe(ctx)
		wg.Add(1)
		go func() {
			for ev := range sub {
				ch <- ev
			}
			wg.Done()
		}()
	}
	// cleanup function to be invoked when program is terminated.
	return ch, func() {
		cancel()
		// Wait for relays to finish before closing channel, to avoid sends
		// to a closed channel, which would result in a panic.
		wg.Wait()
		close(ch)
	}
}
