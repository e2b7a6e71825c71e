package domain

import "errors"

// Domain errors.
var (
	ErrNotGitRepository    = errors.New("not a git repository (or any of the parent directories)")
	ErrNoBlameData         = errors.New("no blame data")
	ErrMalformedShowOutput = errors.New("malformed show output")
	ErrNoRemote            = errors.New("no remote configured")
	ErrNoLink              = errors.New("no link available")
	ErrNoCommitDetail      = errors.New("no commit detail")
	ErrUncommitted         = errors.New("revision is not committed")
	ErrInvalidProvider     = errors.New("invalid provider configuration")
	ErrConfigExists        = errors.New("config file already exists")
	ErrNoLogFile           = errors.New("no log file")
)
