// Package clix wires CLI invocations to the resolver: flag overrides,
// git handle detection, and warning log setup.
package clix

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"

	"relver/internal/config"
	"relver/internal/core"
	"relver/internal/gitx"
	"relver/internal/resolver"
)

// BuildResolver assembles a resolver for the effective project root.
// The --root flag wins over configuration. A missing git executable is not
// an error; the resolver falls through to the manifest source.
func BuildResolver(cmd *cli.Command, cfg *config.Config) *resolver.Resolver {
	rcfg := cfg.ResolverConfig()
	if root := cmd.String("root"); root != "" {
		rcfg.Root = root
	}

	var git core.GitOperations
	if gitx.Available() {
		git = gitx.NewOSGitOperations(rcfg.Root)
	}

	return resolver.New(rcfg,
		resolver.WithGit(git),
		resolver.WithLogger(NewLogger()),
	)
}

// NewLogger returns the stderr logger used for resolver warnings.
func NewLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "relver",
		Level:  log.WarnLevel,
	})
}
