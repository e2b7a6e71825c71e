// Package browser opens URLs with the platform's default handler.
package browser

import (
	"runtime"

	"github.com/runoshun/blame-gutter/internal/domain"
)

// Opener launches the platform URL handler.
type Opener struct {
	exec domain.CommandExecutor
	goos string
}

// New creates an Opener for the running platform.
func New(exec domain.CommandExecutor) *Opener {
	return NewForOS(exec, runtime.GOOS)
}

// NewForOS creates an Opener for goos.
func NewForOS(exec domain.CommandExecutor, goos string) *Opener {
	return &Opener{exec: exec, goos: goos}
}

// Open launches the handler for url without waiting for it.
func (o *Opener) Open(url string) error {
	return o.exec.Start(o.command(url))
}

func (o *Opener) command(url string) *domain.ExecCommand {
	switch o.goos {
	case "darwin":
		return domain.NewCommand("open", []string{url}, "")
	case "windows":
		return domain.NewCommand("rundll32", []string{"url.dll,FileProtocolHandler", url}, "")
	default:
		return domain.NewCommand("xdg-open", []string{url}, "")
	}
}
