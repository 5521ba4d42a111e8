// Package toolbar renders the viewer's toolbar: a static declarative list of
// button definitions, each naming the command it dispatches. Adding a button
// is a data change here; its behavior lives in the command registry.
package toolbar

import (
	"github.com/charmbracelet/bubbles/key"
)

// Button is one toolbar entry. Name is the command dispatched through the
// registry when the button's binding is pressed.
type Button struct {
	Name     string
	Label    string
	Icon     string
	Binding  key.Binding
	Disabled bool
}

// Group is a set of related buttons rendered together, separated from other
// groups by a divider.
type Group struct {
	Name    string
	Buttons []Button
}

// Defaults is the viewer's stock toolbar definition.
func Defaults() []Group {
	return []Group{
		{
			Name: "manipulate",
			Buttons: []Button{
				{
					Name:  "zoom",
					Label: "Zoom",
					Icon:  "🔎",
					Binding: key.NewBinding(
						key.WithKeys("z"),
						key.WithHelp("z", "zoom"),
					),
				},
				{
					Name:  "windowLevel",
					Label: "Levels",
					Icon:  "◐",
					Binding: key.NewBinding(
						key.WithKeys("w"),
						key.WithHelp("w", "window/level"),
					),
				},
				{
					Name:  "pan",
					Label: "Pan",
					Icon:  "✥",
					Binding: key.NewBinding(
						key.WithKeys("p"),
						key.WithHelp("p", "pan"),
					),
				},
			},
		},
		{
			Name: "measure",
			Buttons: []Button{
				{
					Name:  "length",
					Label: "Length",
					Icon:  "⟷",
					Binding: key.NewBinding(
						key.WithKeys("l"),
						key.WithHelp("l", "measure length"),
					),
				},
				{
					Name:  "angle",
					Label: "Angle",
					Icon:  "∠",
					Binding: key.NewBinding(
						key.WithKeys("a"),
						key.WithHelp("a", "measure angle"),
					),
				},
			},
		},
		{
			Name: "playback",
			Buttons: []Button{
				{
					Name:  "toggleCine",
					Label: "Cine",
					Icon:  "▸",
					Binding: key.NewBinding(
						key.WithKeys("c"),
						key.WithHelp("c", "cine playback"),
					),
				},
			},
		},
		{
			Name: "viewport",
			Buttons: []Button{
				{
					Name:  "reset",
					Label: "Reset",
					Icon:  "⟳",
					Binding: key.NewBinding(
						key.WithKeys("r"),
						key.WithHelp("r", "reset viewport"),
					),
				},
				{
					Name:  "capture",
					Label: "Capture",
					Icon:  "◉",
					Binding: key.NewBinding(
						key.WithKeys("s"),
						key.WithHelp("s", "capture viewport"),
					),
					// capture requires a writable output dir; wired up once
					// rendering exists.
					Disabled: true,
				},
			},
		},
	}
}
