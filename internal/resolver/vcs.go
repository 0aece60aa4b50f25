package resolver

import (
	"context"
	"fmt"
	"strings"
)

// VcsDescribeSource derives a version from repository tag history via a
// describe query. Shallow checkouts are deepened once beforehand so the
// commit distance can be computed against the full history; a failed
// deepening is non-fatal and describe proceeds on whatever is present.
type VcsDescribeSource struct {
	// TagPattern constrains describe to matching tags ("v*").
	TagPattern string

	// Abbrev is the abbreviated hash length in hex characters.
	Abbrev int
}

// Verify VcsDescribeSource implements Source.
var _ Source = (*VcsDescribeSource)(nil)

func (v *VcsDescribeSource) Name() string {
	return SourceDescribe
}

func (v *VcsDescribeSource) Resolve(_ context.Context, sc *SourceContext) (*Outcome, error) {
	if sc.Git == nil {
		return nil, ErrToolUnavailable
	}

	if shallow, err := sc.Git.IsShallow(); err == nil && shallow {
		if err := sc.Git.FetchUnshallow(); err != nil {
			sc.Logger.Warn("describing against truncated history",
				"error", fmt.Errorf("%w: %v", ErrHistoryTruncated, err))
		}
	}

	out, err := sc.Git.Describe(v.TagPattern, v.Abbrev)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoMatchingTag, err)
	}

	d, err := ParseDescribe(out)
	if err != nil {
		return nil, err
	}

	raw := d.Candidate()
	if raw == "" {
		return nil, ErrParseEmpty
	}

	return &Outcome{Raw: raw, Stable: !strings.Contains(raw, "-")}, nil
}
