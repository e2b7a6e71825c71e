package usecase

import (
	"context"
	"testing"

	"github.com/runoshun/blame-gutter/internal/domain"
	"github.com/runoshun/blame-gutter/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func githubProviders(t *testing.T) []domain.Provider {
	t.Helper()
	p, err := domain.NewProvider("github",
		"https://{host}/{user}/{repo}/commit/{hash}",
		`(github\.com)[:/](.+)/(.+?)(\.git)?$`)
	require.NoError(t, err)
	return []domain.Provider{p}
}

func TestResolveLink_Execute_Success(t *testing.T) {
	vcs := testutil.NewMockVCS()
	vcs.Config[domain.RemoteConfigKey] = "git@github.com:acme/widgets.git\n"
	uc := NewResolveLink(vcs, githubProviders(t))

	out, err := uc.Execute(context.Background(), ResolveLinkInput{FilePath: "a.go", Revision: "^abc123"})

	require.NoError(t, err)
	assert.Equal(t, "https://github.com/acme/widgets/commit/abc123", out.URL)
}

func TestResolveLink_Execute_NoRemote(t *testing.T) {
	vcs := testutil.NewMockVCS()
	uc := NewResolveLink(vcs, githubProviders(t))

	_, err := uc.Execute(context.Background(), ResolveLinkInput{FilePath: "a.go", Revision: "abc123"})

	assert.ErrorIs(t, err, domain.ErrNoRemote)
}

func TestResolveLink_Execute_UnknownProvider(t *testing.T) {
	vcs := testutil.NewMockVCS()
	vcs.Config[domain.RemoteConfigKey] = "https://example.org/acme/widgets.git"
	uc := NewResolveLink(vcs, githubProviders(t))

	_, err := uc.Execute(context.Background(), ResolveLinkInput{FilePath: "a.go", Revision: "abc123"})

	assert.ErrorIs(t, err, domain.ErrNoLink)
}

func TestResolveLink_Execute_Uncommitted(t *testing.T) {
	vcs := testutil.NewMockVCS()
	vcs.Config[domain.RemoteConfigKey] = "git@github.com:acme/widgets.git"
	uc := NewResolveLink(vcs, githubProviders(t))

	_, err := uc.Execute(context.Background(), ResolveLinkInput{
		FilePath: "a.go",
		Revision: "0000000000000000000000000000000000000000",
	})

	assert.ErrorIs(t, err, domain.ErrUncommitted)
}
