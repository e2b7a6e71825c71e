package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5"
	"github.com/runoshun/blame-gutter/internal/app"
	"github.com/runoshun/blame-gutter/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newConfigTestContainer creates an app.Container with real config infrastructure
// for a fresh repository, with global config and state isolated in temp dirs.
func newConfigTestContainer(t *testing.T) (*app.Container, string) {
	t.Helper()

	repoRoot := t.TempDir()
	_, err := git.PlainInit(repoRoot, false)
	require.NoError(t, err)

	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	c, err := app.New(repoRoot)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	return c, configHome
}

func TestConfigCommand_NoSubcommand_ShowsHelp(t *testing.T) {
	c, _ := newConfigTestContainer(t)

	out, err := execute(t, newConfigCommand(c))

	require.NoError(t, err)
	assert.Contains(t, out, "Available Commands:")
	assert.Contains(t, out, "show")
	assert.Contains(t, out, "template")
	assert.Contains(t, out, "init")
}

func TestConfigShowCommand_Defaults(t *testing.T) {
	c, configHome := newConfigTestContainer(t)

	out, err := execute(t, newConfigCommand(c), "show")

	require.NoError(t, err)
	assert.Contains(t, out, "[Loaded from]")
	assert.Contains(t, out, "- "+filepath.Join(configHome, domain.AppName, domain.ConfigFileName)+" (not found)")
	assert.Contains(t, out, "- "+filepath.Join(c.Paths.RepoRoot, domain.RepoConfigFileName)+" (not found)")
	assert.Contains(t, out, "[Effective Config]")
	assert.Contains(t, out, "default_width = 250")
	assert.Contains(t, out, "[[providers]]")
	assert.Contains(t, out, "github")
	assert.NotContains(t, out, "Warnings")
}

func TestConfigShowCommand_RepoOverride(t *testing.T) {
	c, _ := newConfigTestContainer(t)
	repoConfig := filepath.Join(c.Paths.RepoRoot, domain.RepoConfigFileName)
	require.NoError(t, os.WriteFile(repoConfig, []byte("[gutter]\ndefault_width = 300\n"), 0o644))

	out, err := execute(t, newConfigCommand(c), "show")

	require.NoError(t, err)
	assert.Contains(t, out, "- "+repoConfig+"\n")
	assert.Contains(t, out, "default_width = 300")
}

func TestConfigTemplateCommand(t *testing.T) {
	c, _ := newConfigTestContainer(t)

	out, err := execute(t, newConfigCommand(c), "template")

	require.NoError(t, err)
	assert.Equal(t, c.ConfigManager.Template(), out)
}

func TestConfigInitCommand_Repo(t *testing.T) {
	c, _ := newConfigTestContainer(t)
	path := filepath.Join(c.Paths.RepoRoot, domain.RepoConfigFileName)

	out, err := execute(t, newConfigCommand(c), "init")

	require.NoError(t, err)
	assert.Equal(t, "Wrote "+path+"\n", out)
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, c.ConfigManager.Template(), string(content))

	_, err = execute(t, newConfigCommand(c), "init")
	assert.ErrorIs(t, err, domain.ErrConfigExists)
}

func TestConfigInitCommand_Global(t *testing.T) {
	c, configHome := newConfigTestContainer(t)
	path := filepath.Join(configHome, domain.AppName, domain.ConfigFileName)

	out, err := execute(t, newConfigCommand(c), "init", "--global")

	require.NoError(t, err)
	assert.Equal(t, "Wrote "+path+"\n", out)
	assert.FileExists(t, path)
	assert.NoFileExists(t, filepath.Join(c.Paths.RepoRoot, domain.RepoConfigFileName))
}
