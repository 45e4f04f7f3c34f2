package mocks

import (
	"context"
	"sync"

	"prezo/internal/core/domain"
)

// FolderView adapts MockCatalog to ports.FolderAPI; the mock keeps one
// namespace per resource, the ports use short method names.
type FolderView struct{ m *MockCatalog }

// Folders returns the mock's FolderAPI view.
func (m *MockCatalog) Folders() FolderView { return FolderView{m: m} }

func (v FolderView) Create(ctx context.Context, categoryID, name string) error {
	return v.m.CreateFolder(ctx, categoryID, name)
}

// VideoView adapts MockCatalog to ports.VideoAPI.
type VideoView struct{ m *MockCatalog }

// Videos returns the mock's VideoAPI view.
func (m *MockCatalog) Videos() VideoView { return VideoView{m: m} }

func (v VideoView) Generate(ctx context.Context, categoryID, folder string) (*domain.GenerateResult, error) {
	return v.m.GenerateVideo(ctx, categoryID, folder)
}

func (v VideoView) Merge(ctx context.Context) (*domain.MergeResult, error) {
	return v.m.Merge(ctx)
}

func (v VideoView) Finish(ctx context.Context) error {
	return v.m.Finish(ctx)
}

// RecordingNotifier captures notifications for assertions.
type RecordingNotifier struct {
	mu        sync.Mutex
	Successes []string
	Errors    []string
	Infos     []string
}

// NewRecordingNotifier creates an empty recorder.
func NewRecordingNotifier() *RecordingNotifier {
	return &RecordingNotifier{}
}

func (n *RecordingNotifier) Success(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Successes = append(n.Successes, msg)
}

func (n *RecordingNotifier) Error(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Errors = append(n.Errors, msg)
}

func (n *RecordingNotifier) Info(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Infos = append(n.Infos, msg)
}

// ErrorCount returns how many error notifications fired.
func (n *RecordingNotifier) ErrorCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.Errors)
}
