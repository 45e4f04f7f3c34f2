package services

import (
	"context"
	"strings"

	"prezo/internal/cache"
	"prezo/internal/core/domain"
	"prezo/internal/core/ports"
)

// StatusService recomputes a folder's workflow stage from what the
// backend actually holds. Nothing is persisted client-side; each view
// load derives the stage again from listings, so the checklist reflects
// reality rather than the last action the user happened to run.
type StatusService struct {
	media  ports.MediaAPI
	speech ports.SpeechAPI
	cache  *cache.Cache
}

// NewStatusService creates a new status service.
func NewStatusService(media ports.MediaAPI, speech ports.SpeechAPI, c *cache.Cache) *StatusService {
	return &StatusService{media: media, speech: speech, cache: c}
}

// FolderStatus is the derived progress of one folder.
type FolderStatus struct {
	Flags  domain.StageFlags
	Stage  domain.Stage
	Images []string
	Stats  *domain.MediaStats
}

// Flags derives the stage flags for a folder: images from the folder
// listing, narration from an existence probe on the conventional audio
// path, generated video from the statistics endpoint.
func (s *StatusService) Flags(ctx context.Context, categoryID, folder string) (domain.StageFlags, error) {
	status, err := s.Load(ctx, categoryID, folder)
	if err != nil {
		return domain.StageFlags{}, err
	}
	return status.Flags, nil
}

// Load fetches the folder's listings and derives its status. The result
// is cached under the folder's media key; writes to the folder
// invalidate it.
func (s *StatusService) Load(ctx context.Context, categoryID, folder string) (*FolderStatus, error) {
	categoryID = strings.TrimSpace(categoryID)
	folder = strings.TrimSpace(folder)
	if categoryID == "" || folder == "" {
		return nil, domain.NewValidationError("folder", "category and folder are required")
	}
	v, err := s.cache.Get(ctx, keyFolderMedia(categoryID, folder), func(ctx context.Context) (any, error) {
		return s.load(ctx, categoryID, folder)
	})
	if err != nil {
		return nil, err
	}
	return v.(*FolderStatus), nil
}

func (s *StatusService) load(ctx context.Context, categoryID, folder string) (*FolderStatus, error) {
	images, err := s.media.ListImages(ctx, categoryID, folder)
	if err != nil {
		return nil, err
	}
	hasAudio, err := s.speech.HasNarration(ctx, categoryID, folder)
	if err != nil {
		return nil, err
	}
	stats, err := s.media.Statistics(ctx, categoryID, folder)
	if err != nil {
		return nil, err
	}
	flags := domain.StageFlags{
		HasImages: len(images) > 0,
		HasAudio:  hasAudio,
		HasVideo:  stats.VideoCount > 0,
	}
	return &FolderStatus{
		Flags:  flags,
		Stage:  flags.Stage(),
		Images: images,
		Stats:  stats,
	}, nil
}
