package domain

import (
	"fmt"
	"path/filepath"
)

// File and directory names.
const (
	AppName            = "blame-gutter"
	ConfigFileName     = "config.toml"
	RepoConfigFileName = ".blame-gutter.toml"
	StateFileName      = "state.yaml"
	LogFileName        = "blame-gutter.log"
)

// DefaultCacheEntries bounds the commit detail cache when unset.
const DefaultCacheEntries = 1000

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Providers []ProviderConfig `toml:"providers"`
	Warnings  []string         `toml:"-"`
	Log       LogConfig        `toml:"log"`
	Gutter    GutterConfig     `toml:"gutter"`
	Cache     CacheConfig      `toml:"cache"`
}

// GutterConfig holds settings from the [gutter] section.
type GutterConfig struct {
	DefaultWidth int `toml:"default_width,omitempty"` // Initial width in px (50-500)
}

// CacheConfig holds settings from the [cache] section.
type CacheConfig struct {
	MaxEntries int `toml:"max_entries,omitempty"` // Commit detail cache bound
}

// LogConfig holds settings from the [log] section.
type LogConfig struct {
	Level string `toml:"level,omitempty"` // debug, info, warn, error
}

// ProviderConfig is one [[providers]] entry.
type ProviderConfig struct {
	Name     string   `toml:"name"`
	Template string   `toml:"template"`
	Patterns []string `toml:"patterns"`
}

// NewDefaultConfig returns a config with default values and no providers.
func NewDefaultConfig() *Config {
	return &Config{
		Gutter: GutterConfig{DefaultWidth: DefaultGutterWidth},
		Cache:  CacheConfig{MaxEntries: DefaultCacheEntries},
		Log:    LogConfig{Level: "info"},
	}
}

// CompileProviders compiles the provider table, preserving order.
func (c *Config) CompileProviders() ([]Provider, error) {
	providers := make([]Provider, 0, len(c.Providers))
	for _, pc := range c.Providers {
		p, err := NewProvider(pc.Name, pc.Template, pc.Patterns...)
		if err != nil {
			return nil, err
		}
		providers = append(providers, p)
	}
	return providers, nil
}

// Normalize clamps out-of-range values and records a warning for each.
func (c *Config) Normalize() {
	if c.Gutter.DefaultWidth == 0 {
		c.Gutter.DefaultWidth = DefaultGutterWidth
	}
	if w := ClampWidth(c.Gutter.DefaultWidth); w != c.Gutter.DefaultWidth {
		c.Warnings = append(c.Warnings, fmt.Sprintf("gutter.default_width %d out of range, using %d", c.Gutter.DefaultWidth, w))
		c.Gutter.DefaultWidth = w
	}
	if c.Cache.MaxEntries <= 0 {
		c.Cache.MaxEntries = DefaultCacheEntries
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// GlobalConfigDir returns the global config directory under configHome.
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, AppName)
}

// StateDir returns the state directory under stateHome.
func StateDir(stateHome string) string {
	return filepath.Join(stateHome, AppName)
}

// LogPath returns the log file path inside stateDir.
func LogPath(stateDir string) string {
	return filepath.Join(stateDir, "logs", LogFileName)
}

// StatePath returns the persisted state file path inside stateDir.
func StatePath(stateDir string) string {
	return filepath.Join(stateDir, StateFileName)
}
