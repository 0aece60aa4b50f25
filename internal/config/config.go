package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"relver/internal/core"
	"relver/internal/manifest"
	"relver/internal/resolver"
)

// ConfigFile is the conventional configuration file name at the project root.
const ConfigFile = ".relver.yaml"

// ManifestEntry configures one packaging manifest fallback.
type ManifestEntry struct {
	Path   string `yaml:"path"`
	Format string `yaml:"format"`
	Field  string `yaml:"field,omitempty"`
}

// Config is the main configuration structure for relver.
type Config struct {
	Root       string          `yaml:"root,omitempty"`
	Marker     string          `yaml:"marker,omitempty"`
	TagPattern string          `yaml:"tag-pattern,omitempty"`
	Abbrev     int             `yaml:"abbrev,omitempty"`
	Manifests  []ManifestEntry `yaml:"manifests,omitempty"`
}

// DefaultConfig returns the configuration used when no .relver.yaml exists.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
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
}

// ManifestConfigs converts the configured manifest entries into reader
// configurations, falling back to the default candidate list.
func (c *Config) ManifestConfigs() []manifest.FileConfig {
	if len(c.Manifests) == 0 {
		return manifest.DefaultCandidates()
	}

	configs := make([]manifest.FileConfig, 0, len(c.Manifests))
	for _, m := range c.Manifests {
		configs = append(configs, manifest.FileConfig{
			Path:   m.Path,
			Format: manifest.Format(m.Format),
			Field:  m.Field,
		})
	}
	return configs
}

// ResolverConfig assembles the resolution parameters for the configured root.
func (c *Config) ResolverConfig() resolver.Config {
	return resolver.Config{
		Root:       c.Root,
		Marker:     c.Marker,
		TagPattern: c.TagPattern,
		Abbrev:     c.Abbrev,
		Manifests:  c.ManifestConfigs(),
	}
}

// Validate rejects configurations the resolver cannot act on.
func (c *Config) Validate() error {
	if c.Abbrev < 0 {
		return fmt.Errorf("abbrev must be positive, got %d", c.Abbrev)
	}
	for _, m := range c.Manifests {
		if m.Path == "" {
			return fmt.Errorf("manifest entry is missing a path")
		}
		if !manifest.Format(m.Format).IsValid() {
			return fmt.Errorf("manifest %q has unknown format %q", m.Path, m.Format)
		}
	}
	return nil
}

// LoadConfigFn loads the configuration; it is a variable so tests can
// substitute failures.
var LoadConfigFn = loadConfig

func loadConfig() (*Config, error) {
	// Highest priority: ENV variable
	if envRoot := os.Getenv("RELVER_ROOT"); envRoot != "" {
		cleanRoot := filepath.Clean(envRoot)
		// Reject relative paths with traversal (use absolute paths instead)
		if strings.Contains(cleanRoot, "..") {
			return nil, fmt.Errorf("invalid RELVER_ROOT: path traversal not allowed, use absolute path instead")
		}
		cfg := &Config{Root: cleanRoot}
		cfg.applyDefaults()
		return cfg, nil
	}

	// Second priority: YAML file
	data, err := os.ReadFile(ConfigFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil // fallback to default
		}
		return nil, err
	}

	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data), yaml.Strict())
	if err := decoder.Decode(&cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// FileOpener abstracts file opening operations for testability.
type FileOpener interface {
	OpenFile(name string, flag int, perm os.FileMode) (*os.File, error)
}

// FileWriter abstracts file writing operations for testability.
type FileWriter interface {
	WriteFile(file *os.File, data []byte) (int, error)
}

// ConfigSaver handles configuration saving with injected dependencies.
type ConfigSaver struct {
	marshaler  core.Marshaler
	fileOpener FileOpener
	fileWriter FileWriter
}

// osFileOpener is the production implementation of FileOpener.
type osFileOpener struct{}

func (o *osFileOpener) OpenFile(name string, flag int, perm os.FileMode) (*os.File, error) {
	return os.OpenFile(name, flag, perm)
}

// osFileWriter is the production implementation of FileWriter.
type osFileWriter struct{}

func (w *osFileWriter) WriteFile(file *os.File, data []byte) (int, error) {
	return file.Write(data)
}

// yamlMarshaler is the production implementation of core.Marshaler using YAML.
type yamlMarshaler struct{}

func (m *yamlMarshaler) Marshal(v any) ([]byte, error) {
	return yaml.Marshal(v)
}

// NewConfigSaver creates a ConfigSaver with the given dependencies.
// If any dependency is nil, the production default is used.
func NewConfigSaver(marshaler core.Marshaler, opener FileOpener, writer FileWriter) *ConfigSaver {
	if marshaler == nil {
		marshaler = &yamlMarshaler{}
	}
	if opener == nil {
		opener = &osFileOpener{}
	}
	if writer == nil {
		writer = &osFileWriter{}
	}
	return &ConfigSaver{
		marshaler:  marshaler,
		fileOpener: opener,
		fileWriter: writer,
	}
}

// Save saves the configuration to the default config file.
func (s *ConfigSaver) Save(cfg *Config) error {
	return s.SaveTo(cfg, ConfigFile)
}

// SaveTo saves the configuration to the specified file path.
func (s *ConfigSaver) SaveTo(cfg *Config, configFile string) error {
	file, err := s.fileOpener.OpenFile(configFile, os.O_RDWR|os.O_CREATE|os.O_TRUNC, core.PermOwnerRW)
	if err != nil {
		return fmt.Errorf("failed to open config file %q: %w", configFile, err)
	}
	defer file.Close()

	data, err := s.marshaler.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config to %q: %w", configFile, err)
	}

	if _, err := s.fileWriter.WriteFile(file, data); err != nil {
		return fmt.Errorf("failed to write config to %q: %w", configFile, err)
	}

	return nil
}
