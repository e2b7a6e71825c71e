// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/runoshun/blame-gutter/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// MockVCS is a test double for domain.VCS.
// Fields are ordered to minimize memory padding.
type MockVCS struct {
	BlameErr   error
	ShowErr    error
	ConfigErr  error
	ShowOut    map[string]string // revision -> output
	Config     map[string]string // key -> value
	BlameGate  chan struct{}     // when set, Blame waits for a receive
	Records    []domain.BlameRecord
	ShowCalls  []string
	BlameCalls int
	mu         sync.Mutex
}

// NewMockVCS creates a new MockVCS with initialized maps.
func NewMockVCS() *MockVCS {
	return &MockVCS{
		ShowOut: make(map[string]string),
		Config:  make(map[string]string),
	}
}

// Blame returns the configured records.
func (m *MockVCS) Blame(ctx context.Context, _ string) ([]domain.BlameRecord, error) {
	m.mu.Lock()
	m.BlameCalls++
	gate := m.BlameGate
	records := append([]domain.BlameRecord(nil), m.Records...)
	err := m.BlameErr
	m.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if err != nil {
		return nil, err
	}
	return records, nil
}

// Show returns the configured output for revision.
func (m *MockVCS) Show(_ context.Context, _, revision, _ string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ShowCalls = append(m.ShowCalls, revision)
	if m.ShowErr != nil {
		return "", m.ShowErr
	}
	out, ok := m.ShowOut[revision]
	if !ok {
		return "", fmt.Errorf("unknown revision %s", revision)
	}
	return out, nil
}

// ReadConfig returns the configured value for key.
func (m *MockVCS) ReadConfig(_ context.Context, _, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ConfigErr != nil {
		return "", m.ConfigErr
	}
	v, ok := m.Config[key]
	if !ok {
		return "", domain.ErrNoRemote
	}
	return v, nil
}

// SetRecords replaces the blame records.
func (m *MockVCS) SetRecords(records []domain.BlameRecord) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Records = records
}

// ShowCallCount returns how many show queries were issued.
func (m *MockVCS) ShowCallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.ShowCalls)
}

// BlameCallCount returns how many blame queries were issued.
func (m *MockVCS) BlameCallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.BlameCalls
}

// MockDocument is a test double for domain.Document.
type MockDocument struct {
	subscribers map[int]func()
	DocID       string
	FilePath    string
	nextSub     int
	mu          sync.Mutex
	Modified    bool
}

// NewMockDocument creates a new MockDocument.
func NewMockDocument(id, path string) *MockDocument {
	return &MockDocument{
		DocID:       id,
		FilePath:    path,
		subscribers: make(map[int]func()),
	}
}

// ID returns the document ID.
func (m *MockDocument) ID() string { return m.DocID }

// Path returns the document path.
func (m *MockDocument) Path() string { return m.FilePath }

// IsModified returns the configured modification state.
func (m *MockDocument) IsModified() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Modified
}

// SetModified changes the modification state.
func (m *MockDocument) SetModified(modified bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Modified = modified
}

// OnDidSave registers a save subscriber.
func (m *MockDocument) OnDidSave(fn func()) func() {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.nextSub
	m.nextSub++
	m.subscribers[id] = fn
	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.subscribers, id)
	}
}

// Save runs every save subscriber.
func (m *MockDocument) Save() {
	m.mu.Lock()
	subs := make([]func(), 0, len(m.subscribers))
	for _, fn := range m.subscribers {
		subs = append(subs, fn)
	}
	m.mu.Unlock()
	for _, fn := range subs {
		fn()
	}
}

// SubscriberCount returns the number of save subscribers.
func (m *MockDocument) SubscriberCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.subscribers)
}

// MockMarker is a test double for domain.Marker.
type MockMarker struct {
	surface   *MockSurface
	Spec      domain.RenderSpec
	Destroyed int
}

// Destroy marks the marker destroyed.
func (m *MockMarker) Destroy() {
	m.surface.mu.Lock()
	defer m.surface.mu.Unlock()
	m.Destroyed++
}

// MockSurface is a test double for domain.GutterSurface.
type MockSurface struct {
	Markers []*MockMarker
	Widths  []int
	mu      sync.Mutex
	Shown   bool
}

// NewMockSurface creates a new MockSurface.
func NewMockSurface() *MockSurface {
	return &MockSurface{}
}

// AddMarker records a marker.
func (m *MockSurface) AddMarker(spec domain.RenderSpec) domain.Marker {
	m.mu.Lock()
	defer m.mu.Unlock()
	marker := &MockMarker{surface: m, Spec: spec}
	m.Markers = append(m.Markers, marker)
	return marker
}

// SetWidth records the width.
func (m *MockSurface) SetWidth(width int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Widths = append(m.Widths, width)
}

// Show marks the surface shown.
func (m *MockSurface) Show() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Shown = true
}

// Hide marks the surface hidden.
func (m *MockSurface) Hide() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Shown = false
}

// Live returns the markers that have not been destroyed.
func (m *MockSurface) Live() []*MockMarker {
	m.mu.Lock()
	defer m.mu.Unlock()
	var live []*MockMarker
	for _, mk := range m.Markers {
		if mk.Destroyed == 0 {
			live = append(live, mk)
		}
	}
	return live
}

// IsShown reports whether Show was called last.
func (m *MockSurface) IsShown() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Shown
}

// LastWidth returns the last applied width, or 0.
func (m *MockSurface) LastWidth() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Widths) == 0 {
		return 0
	}
	return m.Widths[len(m.Widths)-1]
}

// MockPresenter is a test double for domain.Presenter.
type MockPresenter struct {
	CopyErr  error
	OpenErr  error
	Attached map[domain.Marker]*domain.CommitDetail
	Copied   []string
	Opened   []string
	Notices  []string
	mu       sync.Mutex
}

// NewMockPresenter creates a new MockPresenter.
func NewMockPresenter() *MockPresenter {
	return &MockPresenter{Attached: make(map[domain.Marker]*domain.CommitDetail)}
}

// CopyToClipboard records the copied text.
func (m *MockPresenter) CopyToClipboard(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CopyErr != nil {
		return m.CopyErr
	}
	m.Copied = append(m.Copied, text)
	return nil
}

// OpenURL records the opened URL.
func (m *MockPresenter) OpenURL(url string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.OpenErr != nil {
		return m.OpenErr
	}
	m.Opened = append(m.Opened, url)
	return nil
}

// Notify records the notice.
func (m *MockPresenter) Notify(msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Notices = append(m.Notices, msg)
}

// AttachDetail records the attachment.
func (m *MockPresenter) AttachDetail(marker domain.Marker, _ domain.BlameLine, detail *domain.CommitDetail) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Attached[marker] = detail
}

// AttachedCount returns the number of attached popovers.
func (m *MockPresenter) AttachedCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Attached)
}

// MockLogger is a test double for domain.Logger that records entries.
type MockLogger struct {
	Entries []string
	mu      sync.Mutex
}

func (m *MockLogger) log(level, category, msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Entries = append(m.Entries, fmt.Sprintf("[%s] [%s] %s", level, category, msg))
}

// Debug records a debug entry.
func (m *MockLogger) Debug(category, msg string) { m.log("DEBUG", category, msg) }

// Info records an info entry.
func (m *MockLogger) Info(category, msg string) { m.log("INFO", category, msg) }

// Warn records a warning entry.
func (m *MockLogger) Warn(category, msg string) { m.log("WARN", category, msg) }

// Error records an error entry.
func (m *MockLogger) Error(category, msg string) { m.log("ERROR", category, msg) }

// MockStateStore is a test double for domain.StateStore.
type MockStateStore struct {
	SaveErr error
	Width   int
	Saves   int
}

// LoadWidth returns the stored width.
func (m *MockStateStore) LoadWidth() (int, error) {
	return m.Width, nil
}

// SaveWidth stores the width.
func (m *MockStateStore) SaveWidth(width int) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Width = width
	m.Saves++
	return nil
}

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config  *domain.Config
	LoadErr error
}

// NewMockConfigLoader creates a loader returning the default config.
func NewMockConfigLoader() *MockConfigLoader {
	return &MockConfigLoader{Config: domain.NewDefaultConfig()}
}

// Load returns the configured config.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return m.Config, nil
}

// MockExecutor is a test double for domain.CommandExecutor.
type MockExecutor struct {
	OutputErr error
	StartErr  error
	Out       []byte
	Commands  []*domain.ExecCommand
	mu        sync.Mutex
}

// Output records the command and returns the configured output.
func (m *MockExecutor) Output(_ context.Context, cmd *domain.ExecCommand) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Commands = append(m.Commands, cmd)
	if m.OutputErr != nil {
		return nil, m.OutputErr
	}
	return m.Out, nil
}

// Start records the command.
func (m *MockExecutor) Start(cmd *domain.ExecCommand) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Commands = append(m.Commands, cmd)
	return m.StartErr
}

// MockConfigManager is a test double for domain.ConfigManager.
// Fields are ordered to minimize memory padding.
type MockConfigManager struct {
	InitRepoErr      error
	InitGlobalErr    error
	TemplateText     string
	RepoConfigInfo   domain.ConfigInfo
	GlobalConfigInfo domain.ConfigInfo
	InitRepoCalled   bool
	InitGlobalCalled bool
}

// NewMockConfigManager creates a new MockConfigManager.
func NewMockConfigManager() *MockConfigManager {
	return &MockConfigManager{
		TemplateText: "[gutter]\n",
		RepoConfigInfo: domain.ConfigInfo{
			Path: "/repo/" + domain.RepoConfigFileName,
		},
		GlobalConfigInfo: domain.ConfigInfo{
			Path: "/home/test/.config/blame-gutter/config.toml",
		},
	}
}

// Ensure MockConfigManager implements domain.ConfigManager interface.
var _ domain.ConfigManager = (*MockConfigManager)(nil)

// GetRepoConfigInfo returns the configured repo config info.
func (m *MockConfigManager) GetRepoConfigInfo() domain.ConfigInfo {
	return m.RepoConfigInfo
}

// GetGlobalConfigInfo returns the configured global config info.
func (m *MockConfigManager) GetGlobalConfigInfo() domain.ConfigInfo {
	return m.GlobalConfigInfo
}

// InitRepoConfig records the call and returns configured error.
func (m *MockConfigManager) InitRepoConfig() error {
	m.InitRepoCalled = true
	return m.InitRepoErr
}

// InitGlobalConfig records the call and returns configured error.
func (m *MockConfigManager) InitGlobalConfig() error {
	m.InitGlobalCalled = true
	return m.InitGlobalErr
}

// Template returns the configured template.
func (m *MockConfigManager) Template() string {
	return m.TemplateText
}
