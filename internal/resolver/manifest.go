package resolver

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"strings"

	"relver/internal/manifest"
)

// ManifestFileSource extracts a version from a foreign packaging manifest.
// It is the last resort, consulted when neither the marker file nor tag
// history produced a candidate.
type ManifestFileSource struct {
	// Candidates are tried in order; the first readable version wins.
	Candidates []manifest.FileConfig
}

// Verify ManifestFileSource implements Source.
var _ Source = (*ManifestFileSource)(nil)

func (m *ManifestFileSource) Name() string {
	return SourceManifest
}

func (m *ManifestFileSource) Resolve(ctx context.Context, sc *SourceContext) (*Outcome, error) {
	reader := manifest.NewReader(sc.FS)

	var lastErr error
	for _, cfg := range m.Candidates {
		if !filepath.IsAbs(cfg.Path) {
			cfg.Path = filepath.Join(sc.Root, cfg.Path)
		}

		raw, err := reader.Read(ctx, cfg)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			lastErr = err
			continue
		}
		if raw == "" {
			lastErr = manifest.ErrFieldMissing
			continue
		}

		return &Outcome{Raw: raw, Stable: !strings.Contains(raw, "-")}, nil
	}

	if lastErr != nil {
		return nil, lastErr
	}
	return nil, ErrManifestMissing
}
