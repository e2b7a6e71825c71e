package cli

import (
	"testing"

	"github.com/runoshun/blame-gutter/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowCommand(t *testing.T) {
	c, _, path := newTestContainer(t)

	out, err := execute(t, newShowCommand(c), path, revA)

	require.NoError(t, err)
	detail := domain.CommitDetail{AuthorEmail: "ann@acme.io"}
	assert.Equal(t, "commit "+revA+"\n"+
		"Author: Ann <ann@acme.io>\n"+
		"Avatar: "+detail.AvatarURL(domain.DefaultAvatarSize)+"\n"+
		"\n    Add parser\n"+
		"\n    Line one\n    Line two\n", out)
}

func TestShowCommand_BoundaryRevision(t *testing.T) {
	c, vcs, path := newTestContainer(t)

	out, err := execute(t, newShowCommand(c), path, "^"+revA)

	require.NoError(t, err)
	assert.Contains(t, out, "commit "+revA+"\n")
	assert.Equal(t, []string{revA}, vcs.ShowCalls)
}

func TestShowCommand_Uncommitted(t *testing.T) {
	c, vcs, path := newTestContainer(t)

	_, err := execute(t, newShowCommand(c), path, zero)

	assert.ErrorIs(t, err, domain.ErrUncommitted)
	assert.Zero(t, vcs.ShowCallCount())
}

func TestShowCommand_UnknownRevision(t *testing.T) {
	c, _, path := newTestContainer(t)

	_, err := execute(t, newShowCommand(c), path, "deadbeef")

	assert.ErrorContains(t, err, "deadbeef")
}
