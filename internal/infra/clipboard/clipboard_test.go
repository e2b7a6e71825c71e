package clipboard

import (
	"bytes"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

func TestClipboard_Copy(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, env(nil))

	require.NoError(t, c.Copy("abc123"))

	assert.Contains(t, buf.String(), "\x1b]52;c;"+base64.StdEncoding.EncodeToString([]byte("abc123")))
}

func TestClipboard_Copy_Tmux(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, env(map[string]string{"TMUX": "/tmp/tmux-1000/default,1,0"}))

	require.NoError(t, c.Copy("abc123"))

	assert.Contains(t, buf.String(), "\x1bPtmux;")
}

func TestClipboard_Copy_Screen(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, env(map[string]string{"TERM": "screen-256color"}))

	require.NoError(t, c.Copy("abc123"))

	assert.Contains(t, buf.String(), "\x1bP")
	assert.NotContains(t, buf.String(), "tmux;")
}
