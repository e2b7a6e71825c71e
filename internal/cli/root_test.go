package cli

import (
	"context"
	"testing"

	"github.com/runoshun/blame-gutter/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mockLaunch(t *testing.T) *[]string {
	t.Helper()
	original := launchTUIFunc
	t.Cleanup(func() { launchTUIFunc = original })

	var paths []string
	launchTUIFunc = func(_ context.Context, _ *app.Container, path string) error {
		paths = append(paths, path)
		return nil
	}
	return &paths
}

func TestNewRootCommand_WithFile_LaunchesTUI(t *testing.T) {
	launched := mockLaunch(t)
	c, _, path := newTestContainer(t)

	_, err := execute(t, NewRootCommand(c, "test-version"), path)

	require.NoError(t, err)
	assert.Equal(t, []string{path}, *launched)
}

func TestNewRootCommand_NoArgs_ShowsHelp(t *testing.T) {
	launched := mockLaunch(t)

	out, err := execute(t, NewRootCommand(nil, "test-version"))

	require.NoError(t, err)
	assert.Empty(t, *launched)
	assert.Contains(t, out, "Blame Commands:")
	assert.Contains(t, out, "Setup Commands:")
	assert.Contains(t, out, "link")
}

func TestNewRootCommand_TooManyArgs(t *testing.T) {
	launched := mockLaunch(t)

	_, err := execute(t, NewRootCommand(nil, "test-version"), "a.go", "b.go")

	assert.Error(t, err)
	assert.Empty(t, *launched)
}

func TestNewRootCommand_Version(t *testing.T) {
	out, err := execute(t, NewRootCommand(nil, "1.2.3"), "--version")

	require.NoError(t, err)
	assert.Contains(t, out, "1.2.3")
}

func TestNewRootCommand_PrintsConfigWarnings(t *testing.T) {
	mockLaunch(t)
	c, _, path := newTestContainer(t)
	c.Config.Warnings = []string{"unknown key in [gutter]: colour"}
	diag := captureDiag(c)

	_, err := execute(t, NewRootCommand(c, "test-version"), path)

	require.NoError(t, err)
	assert.Contains(t, diag.String(), "level=WARN")
	assert.Contains(t, diag.String(), "unknown key in [gutter]: colour")
}
