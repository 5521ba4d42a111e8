package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/kslone/medtui/internal/grid"
	"github.com/kslone/medtui/internal/logging"
	"github.com/kslone/medtui/internal/panel"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
	"github.com/peterbourgon/ff/v4/ffyaml"
)

type Config struct {
	Side       string
	PanelWidth int
	DataDir    string
	Debug      bool
	LogLevel   string

	Version bool
}

// PanelSide converts the flag-parsed side string to the grid type.
func (c Config) PanelSide() grid.Side {
	if c.Side == "right" {
		return grid.Right
	}
	return grid.Left
}

// Parse sets config in order of precedence:
// 1. flags > 2. env vars > 3. config file
func Parse(stderr io.Writer, args []string) (Config, error) {
	var cfg Config

	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("retrieving user's home directory: %w", err)
	}
	defaultDataDir := filepath.Join(home, ".medtui")
	defaultConfigFile := filepath.Join(home, ".medtui.yaml")

	fs := ff.NewFlagSet("medtui")
	fs.StringEnumVar(&cfg.Side, 's', "side", "Edge of the screen the panel is anchored to.", "left", "right")
	fs.IntVar(&cfg.PanelWidth, 'p', "panel-width", panel.DefaultExpandedWidth, "Expanded width of the side panel in cells.")
	fs.StringVar(&cfg.DataDir, 0, "data-dir", defaultDataDir, "Directory in which to store logs.")
	fs.BoolVar(&cfg.Debug, 'd', "debug", "Log bubbletea messages to messages.log")
	fs.BoolVar(&cfg.Version, 'v', "version", "Print version.")
	_ = fs.String('c', "config", defaultConfigFile, "Path to config file.")

	{
		usage := fmt.Sprintf("Logging level (valid: %s).", strings.Join(logging.ValidLevels(), ","))
		fs.StringEnumVar(&cfg.LogLevel, 'l', "log-level", usage, logging.ValidLevels()...)
	}

	err = ff.Parse(fs, args,
		ff.WithEnvVarPrefix("MEDTUI"),
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ffyaml.Parse),
		ff.WithConfigAllowMissingFile(),
	)
	if err != nil {
		// ff.Parse returns an error if there is an error or if -h/--help is
		// passed; in either case print flag usage in addition to error message.
		fmt.Fprintln(stderr, ffhelp.Flags(fs))
		return Config{}, err
	}

	if cfg.PanelWidth < panel.CollapsedWidth {
		return Config{}, fmt.Errorf("panel width must be at least %d", panel.CollapsedWidth)
	}

	return cfg, nil
}
