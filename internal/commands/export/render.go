package export

import (
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
	"github.com/tidwall/sjson"

	"relver/internal/resolver"
)

// exportDoc is the serialized shape for the structured formats.
type exportDoc struct {
	Raw    string `yaml:"raw" toml:"raw"`
	Stable bool   `yaml:"stable" toml:"stable"`
	Major  string `yaml:"major" toml:"major"`
	Minor  string `yaml:"minor" toml:"minor"`
	Patch  string `yaml:"patch" toml:"patch"`
}

// Render serializes a resolved version in the requested format.
func Render(rv resolver.ResolvedVersion, format string) ([]byte, error) {
	switch format {
	case "json":
		return renderJSON(rv)
	case "yaml":
		return renderYAML(rv)
	case "toml":
		return renderTOML(rv)
	case "env":
		return renderEnv(rv), nil
	case "raw":
		return []byte(rv.Raw + "\n"), nil
	default:
		return nil, fmt.Errorf("unsupported export format: %s", format)
	}
}

// renderJSON builds the document field by field so the key order stays
// fixed across runs.
func renderJSON(rv resolver.ResolvedVersion) ([]byte, error) {
	fields := []struct {
		path  string
		value any
	}{
		{"raw", rv.Raw},
		{"stable", rv.Stable},
		{"major", rv.Major},
		{"minor", rv.Minor},
		{"patch", rv.Patch},
	}

	out := "{}"
	for _, f := range fields {
		var err error
		out, err = sjson.Set(out, f.path, f.value)
		if err != nil {
			return nil, fmt.Errorf("failed to set %q: %w", f.path, err)
		}
	}
	return []byte(out + "\n"), nil
}

func renderYAML(rv resolver.ResolvedVersion) ([]byte, error) {
	data, err := yaml.Marshal(toDoc(rv))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal YAML: %w", err)
	}
	return data, nil
}

func renderTOML(rv resolver.ResolvedVersion) ([]byte, error) {
	data, err := toml.Marshal(toDoc(rv))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal TOML: %w", err)
	}
	return data, nil
}

// renderEnv emits shell-style assignments for Makefile and script consumers.
func renderEnv(rv resolver.ResolvedVersion) []byte {
	var sb strings.Builder
	fmt.Fprintf(&sb, "VERSION=%s\n", rv.Raw)
	fmt.Fprintf(&sb, "VERSION_STABLE=%t\n", rv.Stable)
	fmt.Fprintf(&sb, "VERSION_MAJOR=%s\n", rv.Major)
	fmt.Fprintf(&sb, "VERSION_MINOR=%s\n", rv.Minor)
	fmt.Fprintf(&sb, "VERSION_PATCH=%s\n", rv.Patch)
	return []byte(sb.String())
}

func toDoc(rv resolver.ResolvedVersion) exportDoc {
	return exportDoc{
		Raw:    rv.Raw,
		Stable: rv.Stable,
		Major:  rv.Major,
		Minor:  rv.Minor,
		Patch:  rv.Patch,
	}
}
