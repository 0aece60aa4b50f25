package main

import (
	"context"
	"os"

	"relver/internal/cli"
	"relver/internal/config"
	"relver/internal/printer"
)

func main() {
	cfg, err := config.LoadConfigFn()
	if err != nil {
		printer.PrintError(err.Error())
		os.Exit(1)
	}
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		printer.PrintError(err.Error())
		os.Exit(1)
	}

	app := cli.New(cfg)
	if err := app.Run(context.Background(), os.Args); err != nil {
		printer.PrintError(err.Error())
		os.Exit(1)
	}
}
