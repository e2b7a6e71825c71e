// Package config provides configuration loading functionality.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/blame-gutter/internal/domain"
	"github.com/samber/lo"
)

//go:embed providers.toml
var builtinProviders []byte

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files.
type Loader struct {
	repoRoot      string // Repository root holding .blame-gutter.toml, may be empty
	globalConfDir string // Global config directory (e.g., ~/.config/blame-gutter)
}

// NewLoader creates a new Loader.
func NewLoader(repoRoot string) *Loader {
	return &Loader{
		repoRoot:      repoRoot,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config directory.
// This is useful for testing.
func NewLoaderWithGlobalDir(repoRoot, globalConfDir string) *Loader {
	return &Loader{
		repoRoot:      repoRoot,
		globalConfDir: globalConfDir,
	}
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalConfigDir(configHome)
}

// Builtin returns the default configuration with the built-in providers.
func Builtin() (*domain.Config, error) {
	cfg, err := parse(builtinProviders)
	if err != nil {
		return nil, fmt.Errorf("builtin providers: %w", err)
	}
	base := domain.NewDefaultConfig()
	base.Providers = cfg.Providers
	return base, nil
}

// Load returns the merged configuration: default <- global <- repo.
// Providers from later sources are tried first.
func (l *Loader) Load() (*domain.Config, error) {
	base, err := Builtin()
	if err != nil {
		return nil, err
	}

	global, err := l.LoadGlobal()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	repo, err := l.LoadRepo()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	if global != nil {
		base = mergeConfigs(base, global)
	}
	if repo != nil {
		base = mergeConfigs(base, repo)
	}
	base.Normalize()

	if _, err := base.CompileProviders(); err != nil {
		return nil, err
	}
	return base, nil
}

// GlobalPath returns the global config file path, or "" when unavailable.
func (l *Loader) GlobalPath() string {
	if l.globalConfDir == "" {
		return ""
	}
	return filepath.Join(l.globalConfDir, domain.ConfigFileName)
}

// RepoPath returns the repository config file path, or "" outside a repository.
func (l *Loader) RepoPath() string {
	if l.repoRoot == "" {
		return ""
	}
	return filepath.Join(l.repoRoot, domain.RepoConfigFileName)
}

// LoadGlobal returns only the global configuration.
func (l *Loader) LoadGlobal() (*domain.Config, error) {
	path := l.GlobalPath()
	if path == "" {
		return nil, os.ErrNotExist
	}
	return loadFile(path)
}

// LoadRepo returns only the repository configuration.
func (l *Loader) LoadRepo() (*domain.Config, error) {
	path := l.RepoPath()
	if path == "" {
		return nil, os.ErrNotExist
	}
	return loadFile(path)
}

func loadFile(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func parse(data []byte) (*domain.Config, error) {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return convertRawToDomainConfig(raw), nil
}

// convertRawToDomainConfig converts the raw map to domain config and collects warnings.
// Zero values mean "not set" and are filled in by Normalize after merging.
func convertRawToDomainConfig(raw map[string]any) *domain.Config {
	res := &domain.Config{}
	var warnings []string

	for section, value := range raw {
		switch section {
		case "gutter":
			if m, ok := value.(map[string]any); ok {
				for k, v := range m {
					switch k {
					case "default_width":
						if n, ok := v.(int64); ok {
							res.Gutter.DefaultWidth = int(n)
						}
					default:
						warnings = append(warnings, fmt.Sprintf("unknown key in [gutter]: %s", k))
					}
				}
			}
		case "cache":
			if m, ok := value.(map[string]any); ok {
				for k, v := range m {
					switch k {
					case "max_entries":
						if n, ok := v.(int64); ok {
							res.Cache.MaxEntries = int(n)
						}
					default:
						warnings = append(warnings, fmt.Sprintf("unknown key in [cache]: %s", k))
					}
				}
			}
		case "log":
			if m, ok := value.(map[string]any); ok {
				for k, v := range m {
					switch k {
					case "level":
						if s, ok := v.(string); ok {
							res.Log.Level = s
						}
					default:
						warnings = append(warnings, fmt.Sprintf("unknown key in [log]: %s", k))
					}
				}
			}
		case "providers":
			entries, ok := value.([]any)
			if !ok {
				warnings = append(warnings, "providers must be an array of tables")
				continue
			}
			for i, entry := range entries {
				m, ok := entry.(map[string]any)
				if !ok {
					continue
				}
				pc, unknown := parseProvider(m)
				res.Providers = append(res.Providers, pc)
				for _, k := range unknown {
					warnings = append(warnings, fmt.Sprintf("unknown key in [[providers]] #%d: %s", i+1, k))
				}
			}
		default:
			warnings = append(warnings, fmt.Sprintf("unknown section: %s", section))
		}
	}

	sort.Strings(warnings)
	res.Warnings = warnings
	return res
}

func parseProvider(m map[string]any) (domain.ProviderConfig, []string) {
	var pc domain.ProviderConfig
	var unknown []string
	for k, v := range m {
		switch k {
		case "name":
			if s, ok := v.(string); ok {
				pc.Name = s
			}
		case "template":
			if s, ok := v.(string); ok {
				pc.Template = s
			}
		case "patterns":
			if list, ok := v.([]any); ok {
				pc.Patterns = lo.FilterMap(list, func(item any, _ int) (string, bool) {
					s, ok := item.(string)
					return s, ok
				})
			}
		default:
			unknown = append(unknown, k)
		}
	}
	sort.Strings(unknown)
	return pc, unknown
}

// mergeConfigs merges two configs, with override taking precedence.
// Override providers are placed before base providers; a base provider whose
// name is redefined by override is dropped.
func mergeConfigs(base, override *domain.Config) *domain.Config {
	result := &domain.Config{
		Gutter:   base.Gutter,
		Cache:    base.Cache,
		Log:      base.Log,
		Warnings: append(append([]string{}, base.Warnings...), override.Warnings...),
	}

	if override.Gutter.DefaultWidth != 0 {
		result.Gutter.DefaultWidth = override.Gutter.DefaultWidth
	}
	if override.Cache.MaxEntries != 0 {
		result.Cache.MaxEntries = override.Cache.MaxEntries
	}
	if override.Log.Level != "" {
		result.Log.Level = override.Log.Level
	}

	names := lo.Associate(override.Providers, func(p domain.ProviderConfig) (string, bool) {
		return p.Name, true
	})
	result.Providers = append(append([]domain.ProviderConfig{}, override.Providers...),
		lo.Reject(base.Providers, func(p domain.ProviderConfig, _ int) bool {
			return p.Name != "" && names[p.Name]
		})...)

	return result
}
