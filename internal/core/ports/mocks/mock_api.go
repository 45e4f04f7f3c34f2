package mocks

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"prezo/internal/core/domain"
)

// MockCatalog is an in-memory stand-in for the whole catalog backend.
// It implements CategoryAPI, FolderAPI, MediaAPI, SpeechAPI and
// VideoAPI, counts every call, and can be forced to fail per operation.
type MockCatalog struct {
	mu         sync.Mutex
	nextID     int
	categories map[string]*domain.Category
	folders    map[string][]string            // categoryID -> folder names
	images     map[string][]string            // categoryID/folder -> image names
	narrations map[string]bool                // categoryID/folder -> audio present
	generated  map[string]int                 // categoryID/folder -> generated video count
	videos     []domain.VideoAsset            // global collection
	failures   map[string]error               // op name -> forced error
	Calls      map[string]int                 // op name -> invocation count
}

// NewMockCatalog creates an empty mock backend.
func NewMockCatalog() *MockCatalog {
	return &MockCatalog{
		categories: make(map[string]*domain.Category),
		folders:    make(map[string][]string),
		images:     make(map[string][]string),
		narrations: make(map[string]bool),
		generated:  make(map[string]int),
		failures:   make(map[string]error),
		Calls:      make(map[string]int),
	}
}

// FailWith forces the named operation to return err.
func (m *MockCatalog) FailWith(op string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failures[op] = err
}

// CallCount returns how many times the named operation ran.
func (m *MockCatalog) CallCount(op string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Calls[op]
}

func (m *MockCatalog) enter(op string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls[op]++
	return m.failures[op]
}

func folderKey(categoryID, folder string) string {
	return categoryID + "/" + folder
}

// --- CategoryAPI ---

func (m *MockCatalog) List(ctx context.Context) ([]domain.Category, error) {
	if err := m.enter("category.list"); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Category, 0, len(m.categories))
	for _, c := range m.categories {
		out = append(out, *c)
	}
	return out, nil
}

func (m *MockCatalog) Create(ctx context.Context, name string) (*domain.Category, error) {
	if err := m.enter("category.create"); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	c := &domain.Category{ID: "cat-" + strconv.Itoa(m.nextID), Name: name}
	m.categories[c.ID] = c
	return c, nil
}

func (m *MockCatalog) Get(ctx context.Context, id string) (*domain.Category, error) {
	if err := m.enter("category.get"); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.categories[id]
	if !ok {
		return nil, &domain.RequestError{Status: 404, Message: fmt.Sprintf("category not found: %s", id)}
	}
	copy := *c
	return &copy, nil
}

func (m *MockCatalog) Update(ctx context.Context, id, name string) error {
	if err := m.enter("category.update"); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.categories[id]
	if !ok {
		return &domain.RequestError{Status: 404, Message: fmt.Sprintf("category not found: %s", id)}
	}
	c.Name = name
	return nil
}

func (m *MockCatalog) Delete(ctx context.Context, id string) error {
	if err := m.enter("category.delete"); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.categories[id]; !ok {
		return &domain.RequestError{Status: 404, Message: fmt.Sprintf("category not found: %s", id)}
	}
	delete(m.categories, id)
	return nil
}

// --- FolderAPI ---

func (m *MockCatalog) CreateFolder(ctx context.Context, categoryID, name string) error {
	if err := m.enter("folder.create"); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.folders[categoryID] = append(m.folders[categoryID], name)
	return nil
}

// --- MediaAPI ---

func (m *MockCatalog) UploadImages(ctx context.Context, categoryID, folder string, files []string) error {
	if err := m.enter("media.uploadImages"); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	key := folderKey(categoryID, folder)
	m.images[key] = append(m.images[key], files...)
	return nil
}

func (m *MockCatalog) UploadVideos(ctx context.Context, files []string) error {
	if err := m.enter("media.uploadVideos"); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, f := range files {
		m.videos = append(m.videos, domain.VideoAsset{Name: f})
	}
	return nil
}

func (m *MockCatalog) ListVideos(ctx context.Context) ([]domain.VideoAsset, error) {
	if err := m.enter("media.listVideos"); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.VideoAsset, len(m.videos))
	copy(out, m.videos)
	return out, nil
}

func (m *MockCatalog) DeleteVideo(ctx context.Context, name string) error {
	if err := m.enter("media.deleteVideo"); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, v := range m.videos {
		if v.Name == name {
			m.videos = append(m.videos[:i], m.videos[i+1:]...)
			return nil
		}
	}
	return &domain.RequestError{Status: 404, Message: fmt.Sprintf("video not found: %s", name)}
}

func (m *MockCatalog) ListImages(ctx context.Context, category, folder string) ([]string, error) {
	if err := m.enter("media.listImages"); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	imgs := m.images[folderKey(category, folder)]
	out := make([]string, len(imgs))
	copy(out, imgs)
	return out, nil
}

func (m *MockCatalog) Statistics(ctx context.Context, category, folder string) (*domain.MediaStats, error) {
	if err := m.enter("media.statistics"); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	key := folderKey(category, folder)
	return &domain.MediaStats{
		ImageCount: len(m.images[key]),
		VideoCount: m.generated[key],
	}, nil
}

// --- SpeechAPI ---

func (m *MockCatalog) Generate(ctx context.Context, categoryID, folder, text string) error {
	if err := m.enter("speech.generate"); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.narrations[folderKey(categoryID, folder)] = true
	return nil
}

func (m *MockCatalog) HasNarration(ctx context.Context, categoryID, folder string) (bool, error) {
	if err := m.enter("speech.hasNarration"); err != nil {
		return false, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.narrations[folderKey(categoryID, folder)], nil
}

// --- VideoAPI ---

func (m *MockCatalog) GenerateVideo(ctx context.Context, categoryID, folder string) (*domain.GenerateResult, error) {
	if err := m.enter("video.generate"); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	key := folderKey(categoryID, folder)
	m.generated[key]++
	return &domain.GenerateResult{
		Message:    "Video generated successfully",
		OutputPath: fmt.Sprintf("uploads/%s/video_%d.mp4", key, m.generated[key]),
	}, nil
}

func (m *MockCatalog) Merge(ctx context.Context) (*domain.MergeResult, error) {
	if err := m.enter("video.merge"); err != nil {
		return nil, err
	}
	return &domain.MergeResult{
		Message:        "Videos merged successfully",
		OutputFilePath: "uploads/videos/merged-output.mp4",
	}, nil
}

func (m *MockCatalog) Finish(ctx context.Context) error {
	if err := m.enter("video.finish"); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.videos = nil
	return nil
}
