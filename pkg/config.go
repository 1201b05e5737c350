package versync

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Defaults used when no configuration overrides them.
const (
	DefaultStoreFile = "VERSION"
	DefaultVersion   = "0.1.0"
)

// DefaultManifests are the package manifests kept in sync out of the box.
var DefaultManifests = []string{
	"backend/package.json",
	"frontend/package.json",
}

// Config describes where the version lives and which manifests mirror it.
// Relative paths are resolved against Root.
type Config struct {
	Root           string   `yaml:"-"`
	StoreFile      string   `yaml:"store"`
	DefaultVersion string   `yaml:"default_version"`
	Manifests      []string `yaml:"manifests"`
	DryRun         bool     `yaml:"-"`
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		Root:           ".",
		StoreFile:      DefaultStoreFile,
		DefaultVersion: DefaultVersion,
		Manifests:      append([]string(nil), DefaultManifests...),
	}
}

// LoadConfig reads a YAML config file and merges it over DefaultConfig.
// Keys that are absent keep their defaults; unknown keys are an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, fmt.Errorf("%w: config file not found: %s", ErrInvalidConfig, path)
		}
		return cfg, fmt.Errorf("%w: cannot read config file %q: %v", ErrInvalidConfig, path, err)
	}

	var fileCfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fileCfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("%w: invalid YAML in %s: %v", ErrInvalidConfig, path, err)
	}

	if fileCfg.StoreFile != "" {
		cfg.StoreFile = fileCfg.StoreFile
	}
	if fileCfg.DefaultVersion != "" {
		cfg.DefaultVersion = fileCfg.DefaultVersion
	}
	if fileCfg.Manifests != nil {
		cfg.Manifests = fileCfg.Manifests
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that the configuration can drive a Manager.
func (c Config) Validate() error {
	if c.StoreFile == "" {
		return fmt.Errorf("%w: store file path is empty", ErrInvalidConfig)
	}
	if _, err := ParseVersion(c.DefaultVersion); err != nil {
		return fmt.Errorf("%w: default_version: %v", ErrInvalidConfig, err)
	}
	for i, m := range c.Manifests {
		if m == "" {
			return fmt.Errorf("%w: manifest %d has an empty path", ErrInvalidConfig, i)
		}
	}
	return nil
}

// Resolve returns p joined to Root unless p is absolute.
func (c Config) Resolve(p string) string {
	if filepath.IsAbs(p) || c.Root == "" {
		return p
	}
	return filepath.Join(c.Root, p)
}
