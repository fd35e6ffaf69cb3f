// Package config provides reading and writing of sift configuration.
// Supports both global (~/.sift/config.yaml) and local (.sift/config.yaml).
// Reading: uses local if it exists, otherwise global.
// Writing: defaults to global, use --local for local.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

var (
	// ErrNoConfigPath is returned when the config path cannot be determined.
	ErrNoConfigPath = errors.New("cannot determine config path")
	// ErrUnknownKey is returned when getting/setting an unknown config key.
	ErrUnknownKey = errors.New("unknown config key")
	// ErrInvalidValue is returned when a config value is invalid.
	ErrInvalidValue = errors.New("invalid config value")
)

// Scope represents the configuration scope (global or local).
type Scope int

const (
	// ScopeGlobal is user-wide config in ~/.sift/config.yaml (default)
	ScopeGlobal Scope = iota
	// ScopeLocal is directory-specific config in .sift/config.yaml
	ScopeLocal
)

// Data holds the entity data file settings.
type Data struct {
	Path string `yaml:"path,omitempty"`
}

// Search holds search tuning options.
type Search struct {
	Limit *int `yaml:"limit,omitempty"`
}

// Highlight holds the markers wrapped around matched query terms.
type Highlight struct {
	Open  *string `yaml:"open,omitempty"`
	Close *string `yaml:"close,omitempty"`
}

// Defaults applied when not configured.
const (
	DefaultDataPath       = "sift.yaml"
	DefaultSearchLimit    = 50
	DefaultHighlightOpen  = "<mark>"
	DefaultHighlightClose = "</mark>"
)

// Validation bounds for configuration values.
const (
	MinSearchLimit = 1
	MaxSearchLimit = 1000
)

// Config contains configuration for sift.
type Config struct {
	Data      Data      `yaml:"data,omitempty"`
	Search    Search    `yaml:"search,omitempty"`
	Highlight Highlight `yaml:"highlight,omitempty"`

	// path is the file this config was loaded from (for Save)
	path  string
	scope Scope
}

// Validate checks that all configured values are within acceptable bounds.
// Returns nil if all values are valid or not set (defaults will be used).
func (c *Config) Validate() error {
	if c.Search.Limit != nil {
		v := *c.Search.Limit
		if v < MinSearchLimit || v > MaxSearchLimit {
			return fmt.Errorf("%w: search.limit must be between %d and %d, got %d",
				ErrInvalidValue, MinSearchLimit, MaxSearchLimit, v)
		}
	}
	return nil
}

// DataPath returns the entity data file path (defaults to sift.yaml).
func (c *Config) DataPath() string {
	if c.Data.Path == "" {
		return DefaultDataPath
	}
	return c.Data.Path
}

// SearchLimit returns the default result limit (defaults to 50).
func (c *Config) SearchLimit() int {
	if c.Search.Limit == nil {
		return DefaultSearchLimit
	}
	return *c.Search.Limit
}

// HighlightOpen returns the opening highlight marker.
func (c *Config) HighlightOpen() string {
	if c.Highlight.Open == nil {
		return DefaultHighlightOpen
	}
	return *c.Highlight.Open
}

// HighlightClose returns the closing highlight marker.
func (c *Config) HighlightClose() string {
	if c.Highlight.Close == nil {
		return DefaultHighlightClose
	}
	return *c.Highlight.Close
}

// LocalPath returns the path to the local (directory) config file.
func LocalPath() string {
	return filepath.Join(".sift", "config.yaml")
}

// GlobalPath returns the path to the global (user) config file: ~/.sift/config.yaml
func GlobalPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".sift", "config.yaml")
}

// Load reads configuration: uses local if it exists, otherwise global.
func Load() (*Config, error) {
	if _, err := os.Stat(LocalPath()); err == nil {
		return LoadScope(ScopeLocal)
	}
	return LoadScope(ScopeGlobal)
}

// LoadScope reads configuration from a specific scope.
func LoadScope(scope Scope) (*Config, error) {
	path := pathForScope(scope)
	if path == "" {
		return &Config{scope: scope}, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{path: path, scope: scope}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("malformed config file %s: %w\n\nTo fix: edit the file to correct the YAML syntax, or delete it to use defaults", path, err)
	}
	cfg.path = path
	cfg.scope = scope

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return &cfg, nil
}

// Scope returns which scope this config was loaded from.
func (c *Config) Scope() Scope {
	return c.scope
}

// Save writes the configuration to its original location.
func (c *Config) Save() error {
	if c.path == "" {
		c.path = pathForScope(c.scope)
	}
	if c.path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(c.path)
}

// SaveScope writes the configuration to the specified scope.
func (c *Config) SaveScope(scope Scope) error {
	path := pathForScope(scope)
	if path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(path)
}

// saveToPath writes configuration to a specific filesystem path.
// Creates parent directories as needed with mode 0755.
func (c *Config) saveToPath(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// pathForScope returns the filesystem path for a given scope.
func pathForScope(scope Scope) string {
	switch scope {
	case ScopeLocal:
		return LocalPath()
	case ScopeGlobal:
		return GlobalPath()
	default:
		return ""
	}
}
