// Package executor provides command execution functionality.
package executor

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/runoshun/blame-gutter/internal/domain"
)

// Client implements domain.CommandExecutor interface.
type Client struct{}

// NewClient creates a new command executor client.
func NewClient() *Client {
	return &Client{}
}

// Ensure Client implements domain.CommandExecutor interface.
var _ domain.CommandExecutor = (*Client)(nil)

// Output runs the command and returns its stdout.
// On failure the error carries the trimmed stderr.
func (c *Client) Output(ctx context.Context, cmd *domain.ExecCommand) ([]byte, error) {
	// #nosec G204 - cmd.Program and cmd.Args come from trusted code
	execCmd := exec.CommandContext(ctx, cmd.Program, cmd.Args...)
	if cmd.Dir != "" {
		execCmd.Dir = cmd.Dir
	}
	var stderr bytes.Buffer
	execCmd.Stderr = &stderr
	out, err := execCmd.Output()
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("%s %s: %w: %s", cmd.Program, strings.Join(cmd.Args, " "), err, msg)
		}
		return nil, fmt.Errorf("%s %s: %w", cmd.Program, strings.Join(cmd.Args, " "), err)
	}
	return out, nil
}

// Start launches the command and reaps it in the background.
func (c *Client) Start(cmd *domain.ExecCommand) error {
	// #nosec G204 - cmd.Program and cmd.Args come from trusted code
	execCmd := exec.Command(cmd.Program, cmd.Args...)
	if cmd.Dir != "" {
		execCmd.Dir = cmd.Dir
	}
	if err := execCmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", cmd.Program, err)
	}
	go func() { _ = execCmd.Wait() }()
	return nil
}
