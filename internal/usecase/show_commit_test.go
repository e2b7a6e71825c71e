package usecase

import (
	"context"
	"testing"

	"github.com/runoshun/blame-gutter/internal/domain"
	"github.com/runoshun/blame-gutter/internal/infra/commitstore"
	"github.com/runoshun/blame-gutter/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowCommit_Execute(t *testing.T) {
	vcs := testutil.NewMockVCS()
	vcs.ShowOut["abc123"] = "dev@acme.io####Fix bug####Dev Name####Body\n"
	uc := NewShowCommit(commitstore.New(vcs, 10))

	out, err := uc.Execute(context.Background(), ShowCommitInput{FilePath: "a.go", Revision: "^abc123"})

	require.NoError(t, err)
	assert.Equal(t, "abc123", out.Revision)
	assert.Equal(t, "Fix bug", out.Detail.Subject)
	assert.Equal(t, "Body", out.Detail.Message)
}

func TestShowCommit_Execute_Uncommitted(t *testing.T) {
	uc := NewShowCommit(commitstore.New(testutil.NewMockVCS(), 10))

	_, err := uc.Execute(context.Background(), ShowCommitInput{FilePath: "a.go", Revision: "00000000"})

	assert.ErrorIs(t, err, domain.ErrUncommitted)
}
