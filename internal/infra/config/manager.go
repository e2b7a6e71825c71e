package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/runoshun/blame-gutter/internal/domain"
)

// Ensure Manager implements domain.ConfigManager.
var _ domain.ConfigManager = (*Manager)(nil)

// Manager manages configuration files.
type Manager struct {
	loader *Loader
}

// NewManager creates a new Manager for the files known to loader.
func NewManager(loader *Loader) *Manager {
	return &Manager{loader: loader}
}

// GetRepoConfigInfo returns information about the repository config file.
func (m *Manager) GetRepoConfigInfo() domain.ConfigInfo {
	return getConfigInfo(m.loader.RepoPath())
}

// GetGlobalConfigInfo returns information about the global config file.
func (m *Manager) GetGlobalConfigInfo() domain.ConfigInfo {
	return getConfigInfo(m.loader.GlobalPath())
}

func getConfigInfo(path string) domain.ConfigInfo {
	if path == "" {
		return domain.ConfigInfo{}
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return domain.ConfigInfo{Path: path}
	}
	return domain.ConfigInfo{
		Path:    path,
		Content: string(content),
		Exists:  true,
	}
}

// InitGlobalConfig creates the global config file with a commented template.
func (m *Manager) InitGlobalConfig() error {
	path := m.loader.GlobalPath()
	if path == "" {
		return errors.New("global config directory not available")
	}
	return writeTemplate(path, 0700)
}

// InitRepoConfig creates the repository config file with a commented template.
func (m *Manager) InitRepoConfig() error {
	path := m.loader.RepoPath()
	if path == "" {
		return domain.ErrNotGitRepository
	}
	return writeTemplate(path, 0755)
}

// Template returns the commented starter config.
func (m *Manager) Template() string {
	return Template()
}

func writeTemplate(path string, dirPerm os.FileMode) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%w: %s", domain.ErrConfigExists, path)
	}
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(Template()), 0600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Template returns the starter config: defaults active, an example provider commented out.
func Template() string {
	var b strings.Builder
	b.WriteString("# blame-gutter configuration\n\n")
	b.WriteString("[gutter]\n")
	b.WriteString("# Initial gutter width in px (50-500).\n")
	b.WriteString("default_width = 250\n\n")
	b.WriteString("[cache]\n")
	b.WriteString("# Commit details kept in memory.\n")
	b.WriteString("max_entries = 1000\n\n")
	b.WriteString("[log]\n")
	b.WriteString("# debug, info, warn, error\n")
	b.WriteString("level = \"info\"\n\n")
	b.WriteString("# Providers listed here are tried before the built-in ones.\n")
	b.WriteString("# [[providers]]\n")
	b.WriteString("# name = \"corp\"\n")
	b.WriteString("# patterns = ['(git\\.corp\\.example)[:/](.+)/(.+?)(\\.git)?$']\n")
	b.WriteString("# template = \"https://{host}/{user}/{repo}/commit/{hash}\"\n")
	return b.String()
}
