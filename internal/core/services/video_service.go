package services

import (
	"context"
	"strings"

	"prezo/internal/cache"
	"prezo/internal/core/domain"
	"prezo/internal/core/ports"
)

// VideoService handles server-side video assembly: per-folder
// generation, merging the global collection, and the destructive
// finish. Action guards close the gaps the browser client left open:
// generation requires the prerequisites to actually exist, merge
// requires a non-empty collection, and rapid repeated submissions are
// rejected while one is in flight.
type VideoService struct {
	api    ports.VideoAPI
	status *StatusService
	media  *MediaService
	cache  *cache.Cache
	guard  *cache.Guard
}

// NewVideoService creates a new video service.
func NewVideoService(api ports.VideoAPI, status *StatusService, media *MediaService, c *cache.Cache, g *cache.Guard) *VideoService {
	return &VideoService{api: api, status: status, media: media, cache: c, guard: g}
}

// Generate builds a folder's video from its images and narration. The
// prerequisites are checked against live listings first; a folder
// without images or without narration is refused locally.
func (s *VideoService) Generate(ctx context.Context, categoryID, folder string) (*domain.GenerateResult, error) {
	categoryID = strings.TrimSpace(categoryID)
	folder = strings.TrimSpace(folder)
	if categoryID == "" || folder == "" {
		return nil, domain.NewValidationError("folder", "category and folder are required")
	}
	flags, err := s.status.Flags(ctx, categoryID, folder)
	if err != nil {
		return nil, err
	}
	if !flags.CanGenerateVideo() {
		if !flags.HasImages {
			return nil, domain.NewValidationError("images", "upload images before generating a video")
		}
		return nil, domain.NewValidationError("audio", "generate narration before generating a video")
	}
	release, err := s.guard.Begin("video:generate:" + categoryID + "/" + folder)
	if err != nil {
		return nil, err
	}
	defer release()

	result, err := s.api.Generate(ctx, categoryID, folder)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(keyFolderMedia(categoryID, folder))
	return result, nil
}

// Merge concatenates the global collection into one output. Merging an
// empty collection is refused before a request is built. The collection
// itself is unchanged by a merge; the listing is invalidated so the new
// output shows up on the next read.
func (s *VideoService) Merge(ctx context.Context) (*domain.MergeResult, error) {
	state, err := s.media.CollectionState(ctx)
	if err != nil {
		return nil, err
	}
	if !state.CanMerge() {
		return nil, domain.NewValidationError("videos", "no videos to merge")
	}
	release, err := s.guard.Begin("video:merge")
	if err != nil {
		return nil, err
	}
	defer release()

	result, err := s.api.Merge(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(keyVideos)
	return result, nil
}

// Finish clears the global video collection. It never depends on a
// merge having run; it is irreversible from the client's side.
func (s *VideoService) Finish(ctx context.Context) error {
	release, err := s.guard.Begin("video:finish")
	if err != nil {
		return err
	}
	defer release()

	if err := s.api.Finish(ctx); err != nil {
		return err
	}
	s.cache.Invalidate(keyVideos)
	return nil
}
