// Package app provides the dependency injection container for the application.
package app

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/runoshun/blame-gutter/internal/domain"
	"github.com/runoshun/blame-gutter/internal/gutter"
	"github.com/runoshun/blame-gutter/internal/infra/browser"
	"github.com/runoshun/blame-gutter/internal/infra/commitstore"
	"github.com/runoshun/blame-gutter/internal/infra/config"
	"github.com/runoshun/blame-gutter/internal/infra/executor"
	"github.com/runoshun/blame-gutter/internal/infra/git"
	"github.com/runoshun/blame-gutter/internal/infra/logging"
	"github.com/runoshun/blame-gutter/internal/infra/statestore"
	"github.com/runoshun/blame-gutter/internal/usecase"
)

// Paths holds the resolved filesystem locations.
type Paths struct {
	RepoRoot  string // Enclosing repository of the target file, empty outside one
	StateDir  string // Per-user state directory
	StatePath string // Persisted UI state
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	VCS           domain.VCS
	Details       domain.CommitDetails
	Executor      domain.CommandExecutor
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager
	State         domain.StateStore
	Logger        domain.Logger
	Clock         domain.Clock

	// Pointer fields
	Config    *domain.Config
	Diag      *slog.Logger // stderr diagnostics for the CLI
	closeLogs func() error

	Providers []domain.Provider
	Paths     Paths
}

// New creates a new Container for working on path. The repository is
// discovered from path; a file outside any repository is not an error.
func New(path string) (*Container, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	repoRoot, err := git.FindRoot(abs)
	if err != nil && !errors.Is(err, domain.ErrNotGitRepository) {
		return nil, err
	}

	loader := config.NewLoader(repoRoot)
	cfg, err := loader.Load()
	if err != nil {
		return nil, err
	}
	providers, err := cfg.CompileProviders()
	if err != nil {
		return nil, err
	}

	stateDir := defaultStateDir()
	paths := Paths{
		RepoRoot: repoRoot,
		StateDir: stateDir,
	}
	var state domain.StateStore
	if stateDir != "" {
		paths.StatePath = domain.StatePath(stateDir)
		state = statestore.New(paths.StatePath)
	}

	logger := logging.New(stateDir, logging.ParseLevel(cfg.Log.Level))
	exec := executor.NewClient()
	gitClient := git.NewClient(exec)

	diag := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	return &Container{
		VCS:           gitClient,
		Details:       commitstore.New(gitClient, cfg.Cache.MaxEntries),
		Executor:      exec,
		ConfigLoader:  loader,
		ConfigManager: config.NewManager(loader),
		State:         state,
		Logger:        logger,
		Clock:         domain.RealClock{},
		Config:        cfg,
		Diag:          diag,
		closeLogs:     logger.Close,
		Providers:     providers,
		Paths:         paths,
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg *domain.Config, vcs domain.VCS, state domain.StateStore, logger domain.Logger, clock domain.Clock) (*Container, error) {
	providers, err := cfg.CompileProviders()
	if err != nil {
		return nil, err
	}
	return &Container{
		VCS:       vcs,
		Details:   commitstore.New(vcs, cfg.Cache.MaxEntries),
		State:     state,
		Logger:    logger,
		Clock:     clock,
		Config:    cfg,
		Diag:      slog.New(slog.NewTextHandler(os.Stderr, nil)),
		Providers: providers,
	}, nil
}

// defaultStateDir returns $XDG_STATE_HOME/blame-gutter, falling back to
// ~/.local/state. It returns "" when no home directory is known.
func defaultStateDir() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return domain.StateDir(stateHome)
}

// Close releases resources held by the container.
func (c *Container) Close() error {
	if c.closeLogs == nil {
		return nil
	}
	return c.closeLogs()
}

// UseCase factory methods

// FetchBlameUseCase returns a new FetchBlame use case.
func (c *Container) FetchBlameUseCase() *usecase.FetchBlame {
	return usecase.NewFetchBlame(c.VCS, c.Logger)
}

// ResolveLinkUseCase returns a new ResolveLink use case.
func (c *Container) ResolveLinkUseCase() *usecase.ResolveLink {
	return usecase.NewResolveLink(c.VCS, c.Providers)
}

// ShowCommitUseCase returns a new ShowCommit use case.
func (c *Container) ShowCommitUseCase() *usecase.ShowCommit {
	return usecase.NewShowCommit(c.Details)
}

// GutterManager returns a gutter manager presenting through presenter.
func (c *Container) GutterManager(presenter domain.Presenter) *gutter.Manager {
	return gutter.NewManager(gutter.Deps{
		Blame:     c.FetchBlameUseCase(),
		Links:     c.ResolveLinkUseCase(),
		Details:   c.Details,
		Presenter: presenter,
		State:     c.State,
		Logger:    c.Logger,
	}, c.Config.Gutter.DefaultWidth)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager, c.ConfigLoader)
}

// ShowConfigTemplateUseCase returns a new ShowConfigTemplate use case.
func (c *Container) ShowConfigTemplateUseCase() *usecase.ShowConfigTemplate {
	return usecase.NewShowConfigTemplate(c.ConfigManager)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}

// Opener returns the external URL opener.
func (c *Container) Opener() *browser.Opener {
	return browser.New(c.Executor)
}

// ShowLogsUseCase returns a new ShowLogs use case.
func (c *Container) ShowLogsUseCase() *usecase.ShowLogs {
	return usecase.NewShowLogs(c.Paths.StateDir)
}
