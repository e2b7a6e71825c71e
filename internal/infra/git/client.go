// Package git provides the revision-control collaborator backed by git.
package git

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"

	"github.com/runoshun/blame-gutter/internal/domain"
)

// Client runs blame and show through the git binary and reads repository
// configuration through go-git.
type Client struct {
	exec domain.CommandExecutor
}

// NewClient creates a new git client.
func NewClient(exec domain.CommandExecutor) *Client {
	return &Client{exec: exec}
}

// Ensure Client implements domain.VCS interface.
var _ domain.VCS = (*Client)(nil)

// Blame returns one record per line of the file's working copy.
func (c *Client) Blame(ctx context.Context, filePath string) ([]domain.BlameRecord, error) {
	abs, err := filepath.Abs(filePath)
	if err != nil {
		return nil, fmt.Errorf("resolve path: %w", err)
	}
	cmd := domain.NewGitCommand(filepath.Dir(abs), "blame", "--line-porcelain", "--", filepath.Base(abs))
	out, err := c.exec.Output(ctx, cmd)
	if err != nil {
		return nil, fmt.Errorf("git blame: %w", err)
	}
	records, err := ParsePorcelain(strings.NewReader(string(out)))
	if err != nil {
		return nil, fmt.Errorf("parse blame: %w", err)
	}
	if len(records) == 0 {
		return nil, domain.ErrNoBlameData
	}
	return records, nil
}

// Show formats a single revision without its diff.
func (c *Client) Show(ctx context.Context, filePath, revision, format string) (string, error) {
	abs, err := filepath.Abs(filePath)
	if err != nil {
		return "", fmt.Errorf("resolve path: %w", err)
	}
	cmd := domain.NewGitCommand(filepath.Dir(abs), "show", "-s", "--format="+format, revision, "--")
	out, err := c.exec.Output(ctx, cmd)
	if err != nil {
		return "", fmt.Errorf("git show %s: %w", revision, err)
	}
	return string(out), nil
}

// ReadConfig returns the value of a dotted config key such as
// "remote.origin.url" for the repository containing filePath.
func (c *Client) ReadConfig(ctx context.Context, filePath, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	repo, err := openRepository(filePath)
	if err != nil {
		return "", err
	}
	cfg, err := repo.Config()
	if err != nil {
		return "", fmt.Errorf("read config: %w", err)
	}

	section, subsection, option, err := splitKey(key)
	if err != nil {
		return "", err
	}
	s := cfg.Raw.Section(section)
	var value string
	if subsection != "" {
		value = s.Subsection(subsection).Option(option)
	} else {
		value = s.Option(option)
	}
	if value == "" {
		if key == domain.RemoteConfigKey {
			return "", domain.ErrNoRemote
		}
		return "", fmt.Errorf("config key %s not set", key)
	}
	return value, nil
}

// FindRoot returns the working tree root of the repository containing path.
func FindRoot(path string) (string, error) {
	repo, err := openRepository(path)
	if err != nil {
		return "", err
	}
	wt, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("open worktree: %w", err)
	}
	return wt.Filesystem.Root(), nil
}

// openRepository walks up from path to the enclosing repository.
func openRepository(path string) (*git.Repository, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve path: %w", err)
	}
	dir := abs
	if info, statErr := os.Stat(abs); statErr != nil || !info.IsDir() {
		dir = filepath.Dir(abs)
	}
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, domain.ErrNotGitRepository
		}
		return nil, fmt.Errorf("open repository: %w", err)
	}
	return repo, nil
}

// splitKey splits "section[.subsection].option".
func splitKey(key string) (section, subsection, option string, err error) {
	first := strings.Index(key, ".")
	last := strings.LastIndex(key, ".")
	if first <= 0 || last == len(key)-1 {
		return "", "", "", fmt.Errorf("invalid config key %q", key)
	}
	section = key[:first]
	option = key[last+1:]
	if first != last {
		subsection = key[first+1 : last]
	}
	return section, subsection, option, nil
}
