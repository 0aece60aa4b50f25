package manifest

import (
	"bytes"
	"context"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"

	"relver/internal/core"
)

// ErrFieldMissing is returned when a manifest parses cleanly but contains
// no version field at the configured location.
var ErrFieldMissing = errors.New("manifest has no version field")

// Reader extracts version strings from manifest files in multiple formats.
type Reader struct {
	fs core.FileSystem
}

// NewReader creates a Reader backed by the given filesystem.
func NewReader(fs core.FileSystem) *Reader {
	return &Reader{fs: fs}
}

// Read extracts the version string from the manifest described by cfg.
func (r *Reader) Read(ctx context.Context, cfg FileConfig) (string, error) {
	if cfg.Path == "" {
		return "", fmt.Errorf("manifest path is required")
	}
	if !cfg.Format.IsValid() {
		return "", fmt.Errorf("invalid manifest format: %s", cfg.Format)
	}

	data, err := r.fs.ReadFile(ctx, cfg.Path)
	if err != nil {
		return "", fmt.Errorf("failed to read manifest %q: %w", cfg.Path, err)
	}

	switch cfg.Format {
	case FormatXML:
		return readXML(data, cfg.Path, cfg.Field)
	case FormatJSON:
		return readJSON(data, cfg.Path, cfg.Field)
	case FormatYAML:
		return readYAML(data, cfg.Path, cfg.Field)
	case FormatTOML:
		return readTOML(data, cfg.Path, cfg.Field)
	case FormatRaw:
		return strings.TrimSpace(string(data)), nil
	default:
		return "", fmt.Errorf("unsupported manifest format: %s", cfg.Format)
	}
}

// readXML walks the token stream and returns the text content of the first
// element whose local name matches field. package.xml keeps a single
// <version> element, so first-match semantics are sufficient.
func readXML(data []byte, path, field string) (string, error) {
	if field == "" {
		field = "version"
	}

	dec := xml.NewDecoder(bytes.NewReader(data))
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return "", fmt.Errorf("in manifest %q: %w", path, ErrFieldMissing)
		}
		if err != nil {
			return "", fmt.Errorf("failed to parse XML in %q: %w", path, err)
		}

		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != field {
			continue
		}

		var text string
		if err := dec.DecodeElement(&text, &start); err != nil {
			return "", fmt.Errorf("failed to decode <%s> in %q: %w", field, path, err)
		}
		return strings.TrimSpace(text), nil
	}
}

// readJSON extracts a version from JSON data using dot notation for the field path.
func readJSON(data []byte, path, field string) (string, error) {
	if field == "" {
		return "", fmt.Errorf("field is required for JSON manifests")
	}

	var obj map[string]any
	if err := json.Unmarshal(data, &obj); err != nil {
		return "", fmt.Errorf("failed to parse JSON in %q: %w", path, err)
	}
	return lookupField(obj, path, field)
}

// readYAML extracts a version from YAML data using dot notation for the field path.
func readYAML(data []byte, path, field string) (string, error) {
	if field == "" {
		return "", fmt.Errorf("field is required for YAML manifests")
	}

	var obj map[string]any
	if err := yaml.Unmarshal(data, &obj); err != nil {
		return "", fmt.Errorf("failed to parse YAML in %q: %w", path, err)
	}
	return lookupField(obj, path, field)
}

// readTOML extracts a version from TOML data using dot notation for the field path.
func readTOML(data []byte, path, field string) (string, error) {
	if field == "" {
		return "", fmt.Errorf("field is required for TOML manifests")
	}

	var obj map[string]any
	if err := toml.Unmarshal(data, &obj); err != nil {
		return "", fmt.Errorf("failed to parse TOML in %q: %w", path, err)
	}
	return lookupField(obj, path, field)
}

// lookupField retrieves a string value from a nested map using dot notation.
// Example: "package.version" accesses obj["package"]["version"].
func lookupField(obj map[string]any, path, field string) (string, error) {
	parts := strings.Split(field, ".")
	current := any(obj)

	for _, part := range parts {
		currentMap, ok := current.(map[string]any)
		if !ok {
			return "", fmt.Errorf("in manifest %q: %w", path, ErrFieldMissing)
		}
		value, exists := currentMap[part]
		if !exists {
			return "", fmt.Errorf("in manifest %q: %w", path, ErrFieldMissing)
		}
		current = value
	}

	version, ok := current.(string)
	if !ok {
		return "", fmt.Errorf("field %q in %q is not a string", field, path)
	}
	return version, nil
}
