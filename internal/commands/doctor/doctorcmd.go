package doctor

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/urfave/cli/v3"

	"relver/internal/clix"
	"relver/internal/config"
	"relver/internal/core"
	"relver/internal/gitx"
	"relver/internal/manifest"
	"relver/internal/printer"
)

// Run returns the "doctor" command, which diagnoses the version sources
// available in the current environment.
func Run(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "doctor",
		Usage:     "Diagnose the version sources available for this checkout",
		UsageText: "relver doctor",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runDoctorCmd(ctx, cmd, cfg)
		},
	}
}

func runDoctorCmd(ctx context.Context, cmd *cli.Command, cfg *config.Config) error {
	root := cfg.Root
	if r := cmd.String("root"); r != "" {
		root = r
	}
	fs := core.NewOSFileSystem()

	// Diagnosis scans every manifest relver can read, not just the
	// configured fallback list, so a misconfigured entry still shows up.
	candidates := manifest.KnownCandidates()
	if len(cfg.Manifests) > 0 {
		candidates = cfg.ManifestConfigs()
	}

	checkMarker(ctx, fs, root, cfg.Marker)
	checkGit(root, cfg)
	checkManifests(ctx, fs, root, candidates)

	rv := clix.BuildResolver(cmd, cfg).Resolve(ctx)
	if rv.Unknown() {
		return fmt.Errorf("no usable version source: resolution yields %s", rv.Raw)
	}

	printer.PrintSuccess(fmt.Sprintf("Resolved version %s (source: %s)", rv.Raw, rv.Source))
	return nil
}

func checkMarker(ctx context.Context, fs core.FileSystem, root, marker string) {
	path := filepath.Join(root, marker)
	if _, err := fs.Stat(ctx, path); err != nil {
		printer.PrintFaint(fmt.Sprintf("No pinned version file at %s", path))
		return
	}
	printer.PrintSuccess(fmt.Sprintf("Pinned version file at %s", path))
}

func checkGit(root string, cfg *config.Config) {
	if !gitx.Available() {
		printer.PrintWarning("git executable not found; tag history unavailable")
		return
	}
	printer.PrintSuccess("git executable found")

	git := gitx.NewOSGitOperations(root)
	if shallow, err := git.IsShallow(); err == nil && shallow {
		printer.PrintWarning("shallow clone detected; describe will deepen history first")
	}

	out, err := git.Describe(cfg.TagPattern, cfg.Abbrev)
	if err != nil {
		printer.PrintWarning(fmt.Sprintf("describe found no tag matching %q", cfg.TagPattern))
		return
	}
	printer.PrintInfo(fmt.Sprintf("describe: %s", out))

	if names, err := git.DiffIndexNames(); err != nil || names != "" {
		printer.PrintWarning("working tree has uncommitted modifications")
	}
}

func checkManifests(ctx context.Context, fs core.FileSystem, root string, candidates []manifest.FileConfig) {
	reader := manifest.NewReader(fs)
	for _, cfg := range candidates {
		if !filepath.IsAbs(cfg.Path) {
			cfg.Path = filepath.Join(root, cfg.Path)
		}
		v, err := reader.Read(ctx, cfg)
		if err != nil {
			printer.PrintFaint(fmt.Sprintf("No version in %s", cfg.Path))
			continue
		}
		printer.PrintInfo(fmt.Sprintf("Manifest %s carries version %s", cfg.Path, v))
	}
}
