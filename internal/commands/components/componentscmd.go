package components

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"relver/internal/clix"
	"relver/internal/config"
)

// Run returns the "components" command, which prints the individually
// substitutable version tokens for generated headers and package metadata.
func Run(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "components",
		Usage:     "Print the major/minor/patch components of the resolved version",
		UsageText: "relver components [--field major|minor|patch]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "field",
				Usage: "Print a single component instead of all three",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runComponentsCmd(ctx, cmd, cfg)
		},
	}
}

func runComponentsCmd(ctx context.Context, cmd *cli.Command, cfg *config.Config) error {
	rv := clix.BuildResolver(cmd, cfg).Resolve(ctx)

	switch field := cmd.String("field"); field {
	case "":
		fmt.Printf("major: %s\n", rv.Major)
		fmt.Printf("minor: %s\n", rv.Minor)
		fmt.Printf("patch: %s\n", rv.Patch)
	case "major":
		fmt.Println(rv.Major)
	case "minor":
		fmt.Println(rv.Minor)
	case "patch":
		fmt.Println(rv.Patch)
	default:
		return fmt.Errorf("unknown field %q (expected major, minor, or patch)", field)
	}

	return nil
}
