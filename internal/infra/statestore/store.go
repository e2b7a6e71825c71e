// Package statestore persists user interface state in a YAML file.
package statestore

import (
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"github.com/runoshun/blame-gutter/internal/domain"
	"gopkg.in/yaml.v3"
)

// Ensure Store implements domain.StateStore.
var _ domain.StateStore = (*Store)(nil)

// stateData represents the YAML file structure.
type stateData struct {
	GutterWidth int `yaml:"gutterWidth,omitempty"`
}

// Store implements domain.StateStore using a YAML file.
type Store struct {
	path     string
	lockPath string
}

// New creates a new Store for the given file path.
// The file does not need to exist; it will be created on first write.
func New(path string) *Store {
	return &Store{
		path:     path,
		lockPath: path + ".lock",
	}
}

// LoadWidth returns the saved gutter width, or 0 when nothing was saved.
func (s *Store) LoadWidth() (int, error) {
	var width int
	err := s.withLock(syscall.LOCK_SH, func(data *stateData) (bool, error) {
		width = data.GutterWidth
		return false, nil
	})
	return width, err
}

// SaveWidth stores a clamped gutter width.
func (s *Store) SaveWidth(width int) error {
	return s.withLock(syscall.LOCK_EX, func(data *stateData) (bool, error) {
		data.GutterWidth = domain.ClampWidth(width)
		return true, nil
	})
}

// withLock runs fn on the current state under a file lock and writes the
// state back when fn reports a change.
func (s *Store) withLock(lockType int, fn func(*stateData) (bool, error)) error {
	lock, err := s.acquireLock(lockType)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)

	data, err := s.read()
	if err != nil {
		return err
	}

	changed, err := fn(data)
	if err != nil || !changed {
		return err
	}
	return s.write(data)
}

func (s *Store) acquireLock(lockType int) (*os.File, error) {
	dir := filepath.Dir(s.lockPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create state directory: %w", err)
	}

	lock, err := os.OpenFile(s.lockPath, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open lock file: %w", err)
	}

	if err := syscall.Flock(int(lock.Fd()), lockType); err != nil {
		_ = lock.Close()
		return nil, fmt.Errorf("acquire lock: %w", err)
	}

	return lock, nil
}

func (s *Store) releaseLock(lock *os.File) {
	_ = syscall.Flock(int(lock.Fd()), syscall.LOCK_UN)
	_ = lock.Close()
}

func (s *Store) read() (*stateData, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return &stateData{}, nil
		}
		return nil, fmt.Errorf("read state file: %w", err)
	}

	var data stateData
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, fmt.Errorf("parse state file: %w", err)
	}
	return &data, nil
}

func (s *Store) write(data *stateData) error {
	content, err := yaml.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}

	// Write to temp file first, then rename for atomicity
	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, content, 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}
