package ports

import (
	"context"

	"prezo/internal/core/domain"
)

// CategoryAPI covers the catalog's category resource.
type CategoryAPI interface {
	// List returns all categories
	List(ctx context.Context) ([]domain.Category, error)

	// Create adds a category with the given name
	Create(ctx context.Context, name string) (*domain.Category, error)

	// Get retrieves one category by id
	Get(ctx context.Context, id string) (*domain.Category, error)

	// Update renames a category
	Update(ctx context.Context, id, name string) error

	// Delete removes a category
	Delete(ctx context.Context, id string) error
}

// FolderAPI covers folder creation; the catalog exposes nothing else
// for folders.
type FolderAPI interface {
	Create(ctx context.Context, categoryID, name string) error
}

// MediaAPI covers uploads and the global video collection.
type MediaAPI interface {
	// UploadImages sends an image batch into a folder
	UploadImages(ctx context.Context, categoryID, folder string, files []string) error

	// UploadVideos sends a video batch into the global collection
	UploadVideos(ctx context.Context, files []string) error

	// ListVideos returns the global collection
	ListVideos(ctx context.Context) ([]domain.VideoAsset, error)

	// DeleteVideo removes one video from the global collection
	DeleteVideo(ctx context.Context, name string) error

	// ListImages returns the image names stored for a folder
	ListImages(ctx context.Context, category, folder string) ([]string, error)

	// Statistics returns stored-media counts for a folder
	Statistics(ctx context.Context, category, folder string) (*domain.MediaStats, error)
}

// SpeechAPI covers narration synthesis.
type SpeechAPI interface {
	// Generate synthesizes (or overwrites) the folder's audio.mp3
	Generate(ctx context.Context, categoryID, folder, text string) error

	// HasNarration probes for the folder's audio.mp3 at its
	// conventional path without raising the global notifier
	HasNarration(ctx context.Context, categoryID, folder string) (bool, error)
}

// VideoAPI covers server-side video assembly.
type VideoAPI interface {
	// Generate builds a folder's video from its images and narration
	Generate(ctx context.Context, categoryID, folder string) (*domain.GenerateResult, error)

	// Merge concatenates the global collection into one output
	Merge(ctx context.Context) (*domain.MergeResult, error)

	// Finish clears the global collection
	Finish(ctx context.Context) error
}

// Notifier is the terminal stand-in for toast notifications. The
// gateway reports every request failure here in addition to returning
// the error, so ambient feedback survives even when the caller swallows
// its local error state.
type Notifier interface {
	Success(msg string)
	Error(msg string)
	Info(msg string)
}
