package export

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"relver/internal/clix"
	"relver/internal/config"
	"relver/internal/core"
	"relver/internal/printer"
)

// Run returns the "export" command. It writes the resolved version to a
// generated artifact for downstream build and packaging steps; the resolver
// itself never touches the source tree.
func Run(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "export",
		Usage:     "Write the resolved version to a generated file",
		UsageText: "relver export --out <path> [--format json|yaml|toml|env|raw]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "out",
				Aliases:  []string{"o"},
				Usage:    "Output file path",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: "Output format: json, yaml, toml, env, or raw",
				Value: "json",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runExportCmd(ctx, cmd, cfg)
		},
	}
}

func runExportCmd(ctx context.Context, cmd *cli.Command, cfg *config.Config) error {
	rv := clix.BuildResolver(cmd, cfg).Resolve(ctx)

	data, err := Render(rv, cmd.String("format"))
	if err != nil {
		return err
	}

	out := cmd.String("out")
	fs := core.NewOSFileSystem()
	if err := fs.WriteFile(ctx, out, data, core.PermSharedRead); err != nil {
		return fmt.Errorf("failed to write %q: %w", out, err)
	}

	printer.PrintSuccess(fmt.Sprintf("Exported version %s to %s", rv.Raw, out))
	return nil
}
