package resolver

import (
	"context"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"relver/internal/core"
	"relver/internal/manifest"
	"relver/internal/vparse"
)

const dirtySuffix = "-dirty"

// Config holds the resolution parameters for one project checkout.
type Config struct {
	// Root is the project root directory.
	Root string

	// Marker is the pinned version file name, relative to Root.
	Marker string

	// TagPattern constrains the describe query.
	TagPattern string

	// Abbrev is the abbreviated hash length for describe.
	Abbrev int

	// Manifests are the packaging manifests tried as the last fallback.
	Manifests []manifest.FileConfig
}

// setDefaults fills unset fields with the conventional values.
func (c *Config) setDefaults() {
	if c.Root == "" {
		c.Root = "."
	}
	if c.Marker == "" {
		c.Marker = ".version"
	}
	if c.TagPattern == "" {
		c.TagPattern = "v*"
	}
	if c.Abbrev == 0 {
		c.Abbrev = 4
	}
	if len(c.Manifests) == 0 {
		c.Manifests = manifest.DefaultCandidates()
	}
}

// ResolvedVersion is the immutable terminal result of one resolution call.
// Raw is either a non-empty version string or the UNKNOWN sentinel; the
// component fields are only populated when Raw is not UNKNOWN, and a
// segment missing from Raw leaves its component empty.
type ResolvedVersion struct {
	Raw    string `json:"raw"`
	Stable bool   `json:"stable"`
	Major  string `json:"major"`
	Minor  string `json:"minor"`
	Patch  string `json:"patch"`

	// Source names the pipeline source that produced Raw; empty when every
	// source declined.
	Source string `json:"source,omitempty"`
}

// Unknown reports whether resolution degraded to the sentinel.
func (rv ResolvedVersion) Unknown() bool {
	return rv.Raw == vparse.Unknown
}

// Resolver runs the ordered source pipeline for a single project.
type Resolver struct {
	cfg     Config
	fs      core.FileSystem
	git     core.GitOperations
	logger  *log.Logger
	sources []Source
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithFileSystem overrides the filesystem, for tests.
func WithFileSystem(fs core.FileSystem) Option {
	return func(r *Resolver) { r.fs = fs }
}

// WithGit sets the git handle. Passing nil marks the executable as absent,
// which makes the describe source decline and skips the dirtiness check.
func WithGit(git core.GitOperations) Option {
	return func(r *Resolver) { r.git = git }
}

// WithLogger sets the warning logger. The default discards everything.
func WithLogger(logger *log.Logger) Option {
	return func(r *Resolver) { r.logger = logger }
}

// New creates a Resolver for the given configuration. Callers wire the git
// handle explicitly (see internal/gitx); without one the pipeline falls
// straight from the marker file to the manifest fallback.
func New(cfg Config, opts ...Option) *Resolver {
	cfg.setDefaults()

	r := &Resolver{
		cfg:    cfg,
		fs:     core.NewOSFileSystem(),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(r)
	}

	r.sources = []Source{
		&StaticFileSource{Marker: cfg.Marker},
		&VcsDescribeSource{TagPattern: cfg.TagPattern, Abbrev: cfg.Abbrev},
		&ManifestFileSource{Candidates: cfg.Manifests},
	}
	return r
}

// Resolve runs the pipeline and always returns a usable result. Sources
// are tried in strict priority order and the first success wins; every
// failure mode degrades the result instead of surfacing as an error.
func (r *Resolver) Resolve(ctx context.Context) ResolvedVersion {
	sc := &SourceContext{
		Root:   r.cfg.Root,
		FS:     r.fs,
		Git:    r.git,
		Logger: r.logger,
	}

	b := &builder{}
	for _, src := range r.sources {
		out, err := src.Resolve(ctx, sc)
		if err != nil {
			r.logger.Warn("version source declined", "source", src.Name(), "error", err)
			continue
		}
		if out == nil {
			continue
		}
		b.raw = out.Raw
		b.stable = out.Stable
		b.source = src.Name()
		break
	}

	if b.raw == "" {
		b.raw = vparse.Unknown
		b.stable = false
		r.logger.Warn("no version source succeeded", "version", vparse.Unknown)
	}

	// Dirtiness applies to describe- and manifest-derived versions alike,
	// so the diff query runs whenever git is usable and the marker file did
	// not short-circuit the pipeline.
	if b.source != SourceStaticFile && sc.Git != nil {
		if names, err := sc.Git.DiffIndexNames(); err != nil || names != "" {
			b.dirty = true
		}
	}

	return b.build()
}

// builder accumulates intermediate state during one resolution call and is
// assembled into the immutable ResolvedVersion at the very end, so no
// partially initialized result ever reaches the caller.
type builder struct {
	raw    string
	stable bool
	dirty  bool
	source string
}

func (b *builder) build() ResolvedVersion {
	raw := b.raw
	stable := b.stable

	if b.dirty && raw != vparse.Unknown && !strings.HasSuffix(raw, dirtySuffix) {
		raw += dirtySuffix
		stable = false
	}

	c := vparse.Split(raw)
	return ResolvedVersion{
		Raw:    raw,
		Stable: stable,
		Major:  c.Major,
		Minor:  c.Minor,
		Patch:  c.Patch,
		Source: b.source,
	}
}
