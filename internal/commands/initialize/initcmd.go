package initialize

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"

	"relver/internal/config"
	"relver/internal/printer"
	"relver/internal/tui"
)

// Run returns the "init" command, which writes a .relver.yaml at the
// current directory. In an interactive terminal it walks through a short
// form; in scripted contexts the flags drive everything.
func Run() *cli.Command {
	return &cli.Command{
		Name:      "init",
		Usage:     "Create a .relver.yaml configuration file",
		UsageText: "relver init [--marker name] [--tag-pattern glob] [--force] [--yes]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "marker",
				Usage: "Pinned version file name",
				Value: ".version",
			},
			&cli.StringFlag{
				Name:  "tag-pattern",
				Usage: "Glob the describe query matches tags against",
				Value: "v*",
			},
			&cli.BoolFlag{
				Name:  "force",
				Usage: "Overwrite an existing configuration file",
			},
			&cli.BoolFlag{
				Name:    "yes",
				Aliases: []string{"y"},
				Usage:   "Skip the interactive form",
			},
		},
		Action: runInitCmd,
	}
}

func runInitCmd(_ context.Context, cmd *cli.Command) error {
	if _, err := os.Stat(config.ConfigFile); err == nil && !cmd.Bool("force") {
		return fmt.Errorf("%s already exists (use --force to overwrite)", config.ConfigFile)
	}

	cfg := config.DefaultConfig()
	cfg.Marker = cmd.String("marker")
	cfg.TagPattern = cmd.String("tag-pattern")

	if tui.IsInteractive() && !cmd.Bool("yes") {
		confirmed, err := runForm(cfg)
		if err != nil {
			return err
		}
		if !confirmed {
			printer.PrintFaint("Aborted; no configuration written.")
			return nil
		}
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := config.NewConfigSaver(nil, nil, nil).Save(cfg); err != nil {
		return err
	}

	printer.PrintSuccess(fmt.Sprintf("Created %s", config.ConfigFile))
	return nil
}

// runForm collects the configuration interactively. Returns false when the
// user declines the final confirmation.
func runForm(cfg *config.Config) (bool, error) {
	confirmed := true

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Pinned version file").
				Description("Read verbatim when present; short-circuits all other sources.").
				Value(&cfg.Marker),
			huh.NewInput().
				Title("Tag match pattern").
				Description("Glob constraining the describe query.").
				Value(&cfg.TagPattern),
			huh.NewConfirm().
				Title(fmt.Sprintf("Write %s?", config.ConfigFile)).
				Value(&confirmed),
		),
	)

	if err := form.Run(); err != nil {
		return false, fmt.Errorf("init form failed: %w", err)
	}
	return confirmed, nil
}
