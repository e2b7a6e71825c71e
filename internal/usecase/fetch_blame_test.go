package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/runoshun/blame-gutter/internal/domain"
	"github.com/runoshun/blame-gutter/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchBlame_Execute_Normalizes(t *testing.T) {
	date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	vcs := testutil.NewMockVCS()
	vcs.Records = []domain.BlameRecord{
		{Line: 1, Revision: "abc1234 main.go", Author: "Alice", Date: date},
		{Line: 2, Revision: "^def5678", Author: "Bob", Date: date},
	}
	uc := NewFetchBlame(vcs, &testutil.MockLogger{})

	out, err := uc.Execute(context.Background(), FetchBlameInput{FilePath: "main.go"})

	require.NoError(t, err)
	require.Len(t, out.Blame, 2)
	assert.Equal(t, "abc1234", out.Blame[0].Revision)
	assert.Equal(t, 0, out.Blame[0].Index)
	assert.Equal(t, "^def5678", out.Blame[1].Revision)
}

func TestFetchBlame_Execute_FailureIsEmpty(t *testing.T) {
	vcs := testutil.NewMockVCS()
	vcs.BlameErr = errors.New("fatal: no such path")
	logger := &testutil.MockLogger{}
	uc := NewFetchBlame(vcs, logger)

	out, err := uc.Execute(context.Background(), FetchBlameInput{FilePath: "main.go"})

	require.NoError(t, err)
	assert.NotNil(t, out.Blame)
	assert.Empty(t, out.Blame)
	require.Len(t, logger.Entries, 1)
	assert.Contains(t, logger.Entries[0], "no such path")
}

func TestFetchBlame_Execute_CancelledContext(t *testing.T) {
	vcs := testutil.NewMockVCS()
	vcs.BlameGate = make(chan struct{})
	uc := NewFetchBlame(vcs, &testutil.MockLogger{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := uc.Execute(ctx, FetchBlameInput{FilePath: "main.go"})
	assert.ErrorIs(t, err, context.Canceled)
}
