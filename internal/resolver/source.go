package resolver

import (
	"context"

	"github.com/charmbracelet/log"

	"relver/internal/core"
)

// Source names, also surfaced in ResolvedVersion.Source.
const (
	SourceStaticFile = "static-file"
	SourceDescribe   = "vcs-describe"
	SourceManifest   = "manifest-file"
)

// SourceContext carries the read-only inputs shared by every source during
// a single resolution call.
type SourceContext struct {
	// Root is the project root directory.
	Root string

	// FS provides file access.
	FS core.FileSystem

	// Git is the handle to the version-control executable. It is nil when
	// the executable was not found.
	Git core.GitOperations

	// Logger receives non-fatal diagnostics (failed deepening, declines).
	Logger *log.Logger
}

// Outcome is the successful product of a version source.
type Outcome struct {
	// Raw is the candidate version string, before any dirty suffix.
	Raw string

	// Stable reports whether Raw corresponds exactly to a release: it
	// contains no commit-distance/hash suffix.
	Stable bool
}

// Source is one strategy in the ordered resolution pipeline. A nil Outcome
// with a nil error is a quiet decline ("file not there, try the next
// source"); a non-nil error is a decline with a reason worth logging.
// Sources never fail the resolution.
type Source interface {
	Name() string
	Resolve(ctx context.Context, sc *SourceContext) (*Outcome, error)
}
