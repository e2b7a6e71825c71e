package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/runoshun/blame-gutter/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_GetRepoConfigInfo(t *testing.T) {
	t.Run("returns info when file exists", func(t *testing.T) {
		repo := t.TempDir()
		content := "[gutter]\ndefault_width = 100\n"
		writeFile(t, filepath.Join(repo, domain.RepoConfigFileName), content)

		info := NewManager(NewLoaderWithGlobalDir(repo, "")).GetRepoConfigInfo()

		assert.Equal(t, filepath.Join(repo, domain.RepoConfigFileName), info.Path)
		assert.Equal(t, content, info.Content)
		assert.True(t, info.Exists)
	})

	t.Run("returns info when file does not exist", func(t *testing.T) {
		repo := t.TempDir()

		info := NewManager(NewLoaderWithGlobalDir(repo, "")).GetRepoConfigInfo()

		assert.Equal(t, filepath.Join(repo, domain.RepoConfigFileName), info.Path)
		assert.Empty(t, info.Content)
		assert.False(t, info.Exists)
	})

	t.Run("outside a repository", func(t *testing.T) {
		info := NewManager(NewLoaderWithGlobalDir("", "")).GetRepoConfigInfo()

		assert.Equal(t, domain.ConfigInfo{}, info)
	})
}

func TestManager_InitGlobalConfig(t *testing.T) {
	global := filepath.Join(t.TempDir(), "nested")
	manager := NewManager(NewLoaderWithGlobalDir("", global))

	require.NoError(t, manager.InitGlobalConfig())

	info := manager.GetGlobalConfigInfo()
	assert.True(t, info.Exists)
	assert.Equal(t, Template(), info.Content)

	assert.ErrorIs(t, manager.InitGlobalConfig(), domain.ErrConfigExists)
}

func TestManager_InitGlobalConfig_NoDir(t *testing.T) {
	manager := NewManager(NewLoaderWithGlobalDir("", ""))

	assert.Error(t, manager.InitGlobalConfig())
}

func TestTemplate_LoadsCleanly(t *testing.T) {
	global := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(global, domain.ConfigFileName), []byte(Template()), 0600))

	cfg, err := NewLoaderWithGlobalDir("", global).Load()
	require.NoError(t, err)

	assert.Empty(t, cfg.Warnings)
	assert.Equal(t, 250, cfg.Gutter.DefaultWidth)
}

func TestManager_InitRepoConfig(t *testing.T) {
	repo := t.TempDir()
	manager := NewManager(NewLoaderWithGlobalDir(repo, ""))

	require.NoError(t, manager.InitRepoConfig())

	info := manager.GetRepoConfigInfo()
	assert.True(t, info.Exists)
	assert.Equal(t, manager.Template(), info.Content)

	err := manager.InitRepoConfig()
	assert.ErrorIs(t, err, domain.ErrConfigExists)
	assert.ErrorContains(t, err, domain.RepoConfigFileName)
}

func TestManager_InitRepoConfig_OutsideRepository(t *testing.T) {
	manager := NewManager(NewLoaderWithGlobalDir("", t.TempDir()))

	assert.ErrorIs(t, manager.InitRepoConfig(), domain.ErrNotGitRepository)
}
