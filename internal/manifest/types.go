package manifest

// Format represents the supported manifest file formats.
type Format string

const (
	// FormatXML is for XML manifests (package.xml, etc.).
	FormatXML Format = "xml"

	// FormatJSON is for JSON manifests (package.json, etc.).
	FormatJSON Format = "json"

	// FormatYAML is for YAML manifests (Chart.yaml, etc.).
	FormatYAML Format = "yaml"

	// FormatTOML is for TOML manifests (Cargo.toml, pyproject.toml, etc.).
	FormatTOML Format = "toml"

	// FormatRaw is for plain text files where the entire content is the version.
	FormatRaw Format = "raw"
)

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// IsValid returns true if the format is a known valid format.
func (f Format) IsValid() bool {
	switch f {
	case FormatXML, FormatJSON, FormatYAML, FormatTOML, FormatRaw:
		return true
	default:
		return false
	}
}

// FileConfig describes how to read a version from a specific manifest file.
type FileConfig struct {
	// Path is the file path, relative to the project root or absolute.
	Path string

	// Format specifies the file format.
	Format Format

	// Field locates the version value. For JSON/YAML/TOML it is a
	// dot-notation path ("version", "package.version"); for XML it is the
	// local name of the element whose first occurrence is taken.
	Field string
}

// DefaultCandidates returns the manifest files consulted when no explicit
// configuration is given. Only package.xml is consulted by default; the
// rest are opt-in through .relver.yaml.
func DefaultCandidates() []FileConfig {
	return []FileConfig{
		{Path: "package.xml", Format: FormatXML, Field: "version"},
	}
}

// KnownCandidates returns every manifest file relver knows how to read,
// used by doctor diagnostics.
func KnownCandidates() []FileConfig {
	return []FileConfig{
		{Path: "package.xml", Format: FormatXML, Field: "version"},
		{Path: "package.json", Format: FormatJSON, Field: "version"},
		{Path: "Chart.yaml", Format: FormatYAML, Field: "version"},
		{Path: "Cargo.toml", Format: FormatTOML, Field: "package.version"},
	}
}
