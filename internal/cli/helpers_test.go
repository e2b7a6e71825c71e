package cli

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/runoshun/blame-gutter/internal/app"
	"github.com/runoshun/blame-gutter/internal/domain"
	"github.com/runoshun/blame-gutter/internal/testutil"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

const (
	revA = "a1b2c3d4e5f60718293a4b5c6d7e8f9012345678"
	zero = "0000000000000000000000000000000000000000"
)

// newTestContainer creates a container backed by a MockVCS with blame for a
// three-line file, and returns the file path.
func newTestContainer(t *testing.T) (*app.Container, *testutil.MockVCS, string) {
	t.Helper()
	day := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)

	vcs := testutil.NewMockVCS()
	vcs.Records = []domain.BlameRecord{
		{Line: 1, Revision: revA, Author: "Ann", Date: day},
		{Line: 2, Revision: revA, Author: "Ann", Date: day},
		{Line: 3, Revision: zero, Author: domain.UncommittedAuthor},
	}
	vcs.ShowOut[revA] = "ann@acme.io####Add parser####Ann####Line one\nLine two\n"
	vcs.Config[domain.RemoteConfigKey] = "git@github.com:acme/widgets.git"

	cfg := domain.NewDefaultConfig()
	cfg.Providers = []domain.ProviderConfig{{
		Name:     "github",
		Template: "https://{host}/{user}/{repo}/commit/{hash}",
		Patterns: []string{`(github\.com)[:/](.+)/(.+?)(\.git)?$`},
	}}

	c, err := app.NewWithDeps(cfg, vcs, &testutil.MockStateStore{}, &testutil.MockLogger{}, &testutil.MockClock{NowTime: day})
	require.NoError(t, err)
	c.Executor = &testutil.MockExecutor{}

	path := filepath.Join(t.TempDir(), "a.go")
	require.NoError(t, os.WriteFile(path, []byte("package a\n\nfunc A() {}\n"), 0o644))
	return c, vcs, path
}

// execute runs cmd with args and returns stdout.
func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// captureDiag redirects container diagnostics into a buffer.
func captureDiag(c *app.Container) *bytes.Buffer {
	var buf bytes.Buffer
	c.Diag = slog.New(slog.NewTextHandler(&buf, nil))
	return &buf
}
