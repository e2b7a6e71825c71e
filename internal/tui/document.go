package tui

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/runoshun/blame-gutter/internal/domain"
)

// Ensure Document implements domain.Document.
var _ domain.Document = (*Document)(nil)

// Document is a read-only file buffer. Reloading it from disk plays the
// role of saving: subscribers are told the buffer matches the file again.
// Fields are ordered to minimize memory padding.
type Document struct {
	modTime     time.Time
	subscribers map[int]func()
	id          string
	path        string
	lines       []string
	mu          sync.Mutex
	nextSub     int
}

// OpenDocument reads path into a new document.
func OpenDocument(path string) (*Document, error) {
	d := &Document{
		id:          uuid.NewString(),
		path:        path,
		subscribers: make(map[int]func()),
	}
	if err := d.load(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Document) load() error {
	info, err := os.Stat(d.path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", d.path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", d.path)
	}
	content, err := os.ReadFile(d.path)
	if err != nil {
		return fmt.Errorf("read %s: %w", d.path, err)
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.lines = splitLines(string(content))
	d.modTime = info.ModTime()
	return nil
}

func splitLines(content string) []string {
	content = strings.TrimSuffix(content, "\n")
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// ID returns the document identity.
func (d *Document) ID() string { return d.id }

// Path returns the file path.
func (d *Document) Path() string { return d.path }

// Lines returns the buffer contents.
func (d *Document) Lines() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.lines
}

// IsModified reports whether the file on disk changed since the buffer was loaded.
func (d *Document) IsModified() bool {
	info, err := os.Stat(d.path)
	if err != nil {
		return true
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return !info.ModTime().Equal(d.modTime)
}

// OnDidSave subscribes fn to reloads and returns the unsubscribe function.
func (d *Document) OnDidSave(fn func()) func() {
	d.mu.Lock()
	defer d.mu.Unlock()
	id := d.nextSub
	d.nextSub++
	d.subscribers[id] = fn
	return func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		delete(d.subscribers, id)
	}
}

// Reload re-reads the file and notifies subscribers.
func (d *Document) Reload() error {
	if err := d.load(); err != nil {
		return err
	}
	d.mu.Lock()
	subs := make([]func(), 0, len(d.subscribers))
	for _, fn := range d.subscribers {
		subs = append(subs, fn)
	}
	d.mu.Unlock()
	for _, fn := range subs {
		fn()
	}
	return nil
}
