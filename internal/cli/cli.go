package cli

import (
	"context"
	"fmt"

	urfavecli "github.com/urfave/cli/v3"

	"relver/internal/commands/components"
	"relver/internal/commands/doctor"
	"relver/internal/commands/export"
	"relver/internal/commands/initialize"
	"relver/internal/commands/resolve"
	"relver/internal/config"
	"relver/internal/printer"
	"relver/internal/version"
)

var noColorFlag bool

// New builds and returns the root CLI command,
// configuring all subcommands and flags for the relver cli.
func New(cfg *config.Config) *urfavecli.Command {
	return &urfavecli.Command{
		Name:                  "relver",
		Version:               fmt.Sprintf("v%s", version.GetVersion()),
		Usage:                 "Deterministic version resolution for build tooling",
		EnableShellCompletion: true,
		Flags: []urfavecli.Flag{
			&urfavecli.StringFlag{
				Name:        "root",
				Aliases:     []string{"C"},
				Usage:       "Project root directory",
				Value:       cfg.Root,
				DefaultText: ".",
			},
			&urfavecli.BoolFlag{
				Name:        "no-color",
				Usage:       "Disable colored output",
				Destination: &noColorFlag,
			},
		},
		Before: func(ctx context.Context, cmd *urfavecli.Command) (context.Context, error) {
			printer.SetNoColor(noColorFlag)
			return ctx, nil
		},
		Commands: []*urfavecli.Command{
			resolve.Run(cfg),
			components.Run(cfg),
			doctor.Run(cfg),
			export.Run(cfg),
			initialize.Run(),
		},
	}
}
