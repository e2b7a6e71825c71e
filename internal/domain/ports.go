package domain

import (
	"context"
	"time"
)

// VCS is the revision-control collaborator.
type VCS interface {
	// Blame returns per-line records for the file's working copy.
	Blame(ctx context.Context, filePath string) ([]BlameRecord, error)

	// Show formats a single revision of the repository containing filePath.
	Show(ctx context.Context, filePath, revision, format string) (string, error)

	// ReadConfig returns a config value of the repository containing filePath.
	ReadConfig(ctx context.Context, filePath, key string) (string, error)
}

// RemoteConfigKey is the config key of the remote used for links.
const RemoteConfigKey = "remote.origin.url"

// CommitDetails resolves and memoizes commit metadata.
type CommitDetails interface {
	// GetDetail returns the detail of revision, fetching it at most once per key.
	GetDetail(ctx context.Context, filePath, revision string) (*CommitDetail, error)
}

// CommandExecutor runs external commands.
type CommandExecutor interface {
	// Output runs the command and returns its stdout.
	Output(ctx context.Context, cmd *ExecCommand) ([]byte, error)

	// Start launches the command without waiting for it.
	Start(cmd *ExecCommand) error
}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the merged configuration (default + global + repo).
	Load() (*Config, error)
}

// ConfigManager inspects and initializes configuration files.
type ConfigManager interface {
	// GetGlobalConfigInfo returns information about the global config file.
	GetGlobalConfigInfo() ConfigInfo

	// GetRepoConfigInfo returns information about the repository config file.
	GetRepoConfigInfo() ConfigInfo

	// InitGlobalConfig writes a commented starter global config.
	InitGlobalConfig() error

	// InitRepoConfig writes a commented starter repository config.
	InitRepoConfig() error

	// Template returns the commented starter config.
	Template() string
}

// ConfigInfo describes a configuration file.
type ConfigInfo struct {
	Path    string
	Content string
	Exists  bool
}

// StateStore persists user interface state between runs.
type StateStore interface {
	// LoadWidth returns the last saved gutter width, or 0 when unknown.
	LoadWidth() (int, error)

	// SaveWidth stores the gutter width.
	SaveWidth(width int) error
}

// Logger provides category-based logging.
type Logger interface {
	Debug(category, msg string)
	Info(category, msg string)
	Warn(category, msg string)
	Error(category, msg string)
}

// Document is the host's view of one open buffer.
type Document interface {
	// ID returns a stable identity for the document.
	ID() string

	// Path returns the file path backing the document.
	Path() string

	// IsModified reports unsaved modifications.
	IsModified() bool

	// OnDidSave registers fn to run after each save. The returned
	// function unsubscribes.
	OnDidSave(fn func()) (unsubscribe func())
}

// Marker is one installed gutter decoration.
type Marker interface {
	// Destroy removes the decoration. Destroying twice is a no-op.
	Destroy()
}

// GutterSurface is the host's gutter rendering surface for one document.
type GutterSurface interface {
	// AddMarker installs a decoration for spec.Line.
	AddMarker(spec RenderSpec) Marker

	// SetWidth applies the rendered gutter width in pixels.
	SetWidth(width int)

	// Show makes the gutter visible.
	Show()

	// Hide hides the gutter.
	Hide()
}

// Presenter carries the user-facing side effects.
type Presenter interface {
	// CopyToClipboard writes text to the system clipboard.
	CopyToClipboard(text string) error

	// OpenURL opens url externally.
	OpenURL(url string) error

	// Notify shows an informational message.
	Notify(msg string)

	// AttachDetail attaches a persistent detail popover to a marker.
	AttachDetail(m Marker, line BlameLine, detail *CommitDetail)
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}
