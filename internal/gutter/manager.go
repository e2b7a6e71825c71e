package gutter

import (
	"fmt"
	"sync"

	"github.com/runoshun/blame-gutter/internal/domain"
)

// Manager keeps one controller per open document.
type Manager struct {
	controllers  map[string]*Controller
	deps         Deps
	defaultWidth int
	mu           sync.Mutex
}

// NewManager creates a manager. New gutters start at the persisted width
// when one exists and at defaultWidth otherwise.
func NewManager(deps Deps, defaultWidth int) *Manager {
	return &Manager{
		controllers:  make(map[string]*Controller),
		deps:         deps,
		defaultWidth: defaultWidth,
	}
}

// Toggle flips the gutter of doc. The first toggle of a document creates
// its controller on surface and shows it.
func (m *Manager) Toggle(doc domain.Document, surface domain.GutterSurface) (*Controller, domain.Visibility) {
	m.mu.Lock()
	c, ok := m.controllers[doc.ID()]
	if !ok {
		c = NewController(doc, surface, m.initialWidth(), m.deps)
		m.controllers[doc.ID()] = c
	}
	m.mu.Unlock()

	if !ok {
		return c, c.SetVisible(true)
	}
	return c, c.ToggleVisible()
}

func (m *Manager) initialWidth() int {
	if m.deps.State == nil {
		return m.defaultWidth
	}
	w, err := m.deps.State.LoadWidth()
	if err != nil {
		m.deps.Logger.Warn("gutter", fmt.Sprintf("load width: %v", err))
		return m.defaultWidth
	}
	if w <= 0 {
		return m.defaultWidth
	}
	return w
}

// Get returns the controller of a document, if any.
func (m *Manager) Get(docID string) (*Controller, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.controllers[docID]
	return c, ok
}

// Len returns the number of tracked documents.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.controllers)
}

// Close disposes the controller of a closed document.
func (m *Manager) Close(docID string) {
	m.mu.Lock()
	c, ok := m.controllers[docID]
	delete(m.controllers, docID)
	m.mu.Unlock()
	if ok {
		c.Dispose()
	}
}

// DisposeAll disposes every controller.
func (m *Manager) DisposeAll() {
	m.mu.Lock()
	controllers := m.controllers
	m.controllers = make(map[string]*Controller)
	m.mu.Unlock()
	for _, c := range controllers {
		c.Dispose()
	}
}
