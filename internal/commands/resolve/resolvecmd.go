package resolve

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/huh/spinner"
	"github.com/urfave/cli/v3"

	"relver/internal/clix"
	"relver/internal/config"
	"relver/internal/printer"
	"relver/internal/resolver"
	"relver/internal/tui"
)

// Run returns the "resolve" command.
func Run(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "resolve",
		Usage:     "Resolve the project version from marker file, tag history, or manifest",
		UsageText: "relver resolve [--json] [--quiet]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Print the full result as JSON",
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "Print only the raw version string",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runResolveCmd(ctx, cmd, cfg)
		},
	}
}

func runResolveCmd(ctx context.Context, cmd *cli.Command, cfg *config.Config) error {
	r := clix.BuildResolver(cmd, cfg)

	var rv resolver.ResolvedVersion
	resolveFn := func() { rv = r.Resolve(ctx) }

	// The spinner only makes sense for a human watching a slow deepening
	// fetch; plain output modes resolve directly.
	if tui.IsInteractive() && !cmd.Bool("json") && !cmd.Bool("quiet") {
		if err := spinner.New().Title("Resolving version...").Action(resolveFn).Run(); err != nil {
			resolveFn()
		}
	} else {
		resolveFn()
	}

	switch {
	case cmd.Bool("json"):
		data, err := json.MarshalIndent(rv, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		fmt.Println(string(data))
	case cmd.Bool("quiet"):
		fmt.Println(rv.Raw)
	default:
		printDetail(rv)
	}

	// An unknown version degrades the build, it does not fail it.
	return nil
}

func printDetail(rv resolver.ResolvedVersion) {
	if rv.Unknown() {
		printer.PrintWarning(fmt.Sprintf("Version: %s (no source succeeded)", rv.Raw))
		return
	}

	printer.PrintBold(fmt.Sprintf("Version: %s", rv.Raw))
	if rv.Stable {
		printer.PrintSuccess("Stable release")
	} else {
		printer.PrintWarning("Unstable (commit distance or dirty tree)")
	}
	printer.PrintFaint(fmt.Sprintf("source: %s", rv.Source))
	printer.PrintFaint(fmt.Sprintf("components: major=%s minor=%s patch=%s", rv.Major, rv.Minor, rv.Patch))
}
