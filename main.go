package main

import (
	"fmt"
	"os"

	"github.com/kslone/medtui/internal/app"
	"github.com/kslone/medtui/internal/tui/top"
	"github.com/kslone/medtui/internal/version"
)

func main() {
	cfg, err := app.Parse(os.Stderr, os.Args[1:])
	if err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
	if cfg.Version {
		fmt.Println(version.Version)
		return
	}
	if err := top.Start(cfg); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}
