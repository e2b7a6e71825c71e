package browser

import (
	"errors"
	"testing"

	"github.com/runoshun/blame-gutter/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpener_Open(t *testing.T) {
	const url = "https://github.com/acme/widgets/commit/abc"
	tests := []struct {
		goos    string
		program string
		args    []string
	}{
		{"linux", "xdg-open", []string{url}},
		{"freebsd", "xdg-open", []string{url}},
		{"darwin", "open", []string{url}},
		{"windows", "rundll32", []string{"url.dll,FileProtocolHandler", url}},
	}
	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			exec := &testutil.MockExecutor{}

			require.NoError(t, NewForOS(exec, tt.goos).Open(url))

			require.Len(t, exec.Commands, 1)
			assert.Equal(t, tt.program, exec.Commands[0].Program)
			assert.Equal(t, tt.args, exec.Commands[0].Args)
		})
	}
}

func TestOpener_Open_Error(t *testing.T) {
	exec := &testutil.MockExecutor{StartErr: errors.New("not found")}

	err := NewForOS(exec, "linux").Open("https://x")

	assert.EqualError(t, err, "not found")
}
