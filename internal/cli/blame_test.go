package cli

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/runoshun/blame-gutter/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlameCommand(t *testing.T) {
	c, _, path := newTestContainer(t)

	out, err := execute(t, newBlameCommand(c), path)

	require.NoError(t, err)
	head := "a1b2c3d 2024-03-09 Ann"
	want := head + " │ 1 package a\n" +
		strings.Repeat(" ", len(head)) + " │ 2 \n" +
		"Not Committed Yet" + strings.Repeat(" ", len(head)-len("Not Committed Yet")) + " │ 3 func A() {}\n"
	assert.Equal(t, want, out)
}

func TestBlameCommand_Labels(t *testing.T) {
	c, _, path := newTestContainer(t)

	out, err := execute(t, newBlameCommand(c), "--labels", path)

	require.NoError(t, err)
	assert.Equal(t, "1: a1b2c3d 2024-03-09 Ann\n3: Not Committed Yet\n", out)
}

func TestBlameCommand_NoBlameData(t *testing.T) {
	c, vcs, path := newTestContainer(t)
	vcs.BlameErr = errors.New("fatal: no such path in HEAD")

	_, err := execute(t, newBlameCommand(c), path)

	assert.ErrorIs(t, err, domain.ErrNoBlameData)
}

func TestBlameCommand_MissingFile(t *testing.T) {
	c, vcs, _ := newTestContainer(t)

	_, err := execute(t, newBlameCommand(c), filepath.Join(t.TempDir(), "missing.go"))

	assert.ErrorContains(t, err, "read")
	assert.Zero(t, vcs.BlameCallCount())
}

func TestBlameCommand_RequiresFile(t *testing.T) {
	c, _, _ := newTestContainer(t)

	_, err := execute(t, newBlameCommand(c))

	assert.Error(t, err)
}

func TestPrintBlame_WideAuthorsStayAligned(t *testing.T) {
	var buf bytes.Buffer
	specs := []domain.RenderSpec{
		{Line: 0, Label: "a1b2c3d 2024-03-09 山田", Head: true},
		{Line: 1},
	}

	printBlame(&buf, specs, []string{"x", "y"})

	assert.Equal(t, "a1b2c3d 2024-03-09 山田 │ 1 x\n"+strings.Repeat(" ", 23)+" │ 2 y\n", buf.String())
}
