package resolver

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// StaticFileSource reads a pinned version from a marker file at the project
// root. Release tarballs carry this file, so a hit is always a stable
// version and short-circuits the rest of the pipeline.
type StaticFileSource struct {
	// Marker is the file name relative to the project root (".version").
	Marker string
}

// Verify StaticFileSource implements Source.
var _ Source = (*StaticFileSource)(nil)

func (s *StaticFileSource) Name() string {
	return SourceStaticFile
}

func (s *StaticFileSource) Resolve(ctx context.Context, sc *SourceContext) (*Outcome, error) {
	path := filepath.Join(sc.Root, s.Marker)

	data, err := sc.FS.ReadFile(ctx, path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read marker file %q: %w", path, err)
	}

	// First line verbatim, modulo the line terminator.
	raw, _, _ := strings.Cut(string(data), "\n")
	raw = strings.TrimSuffix(raw, "\r")
	if raw == "" {
		return nil, fmt.Errorf("marker file %q is empty", path)
	}

	return &Outcome{Raw: raw, Stable: true}, nil
}
