package services

import (
	"context"
	"fmt"
	"strings"

	"prezo/internal/cache"
	"prezo/internal/core/domain"
	"prezo/internal/core/ports"
)

const keyVideos = "videos"

func keyFolderMedia(categoryID, folder string) string {
	return fmt.Sprintf("media/%s/%s", categoryID, folder)
}

// MediaService handles image uploads into folders and the global video
// collection. File selections are filtered against the extension
// allow-lists before any request is built; when files were dropped,
// exactly one aggregate notification fires regardless of how many.
type MediaService struct {
	api      ports.MediaAPI
	cache    *cache.Cache
	guard    *cache.Guard
	notifier ports.Notifier
}

// NewMediaService creates a new media service.
func NewMediaService(api ports.MediaAPI, c *cache.Cache, g *cache.Guard, n ports.Notifier) *MediaService {
	return &MediaService{api: api, cache: c, guard: g, notifier: n}
}

// UploadImagesRequest is an image batch destined for one folder.
type UploadImagesRequest struct {
	CategoryID string
	Folder     string
	Files      []string
}

// UploadResponse reports what was sent and what was dropped.
type UploadResponse struct {
	Uploaded []string
	Rejected []string
}

// UploadImages filters and sends an image batch.
func (s *MediaService) UploadImages(ctx context.Context, req UploadImagesRequest) (*UploadResponse, error) {
	categoryID := strings.TrimSpace(req.CategoryID)
	folder := strings.TrimSpace(req.Folder)
	if categoryID == "" || folder == "" {
		return nil, domain.NewValidationError("folder", "category and folder are required")
	}
	sel := domain.FilterFiles(req.Files, domain.IsImageFile)
	if len(sel.Rejected) > 0 {
		s.notifier.Error("Some files are not valid images")
	}
	if len(sel.Accepted) == 0 {
		return nil, domain.NewValidationError("files", "select at least one image")
	}
	release, err := s.guard.Begin("media:upload:" + categoryID + "/" + folder)
	if err != nil {
		return nil, err
	}
	defer release()

	if err := s.api.UploadImages(ctx, categoryID, folder, sel.Accepted); err != nil {
		return nil, err
	}
	s.cache.Invalidate(keyFolderMedia(categoryID, folder))
	return &UploadResponse{Uploaded: sel.Accepted, Rejected: sel.Rejected}, nil
}

// UploadVideos filters and sends a video batch into the global
// collection.
func (s *MediaService) UploadVideos(ctx context.Context, files []string) (*UploadResponse, error) {
	sel := domain.FilterFiles(files, domain.IsVideoFile)
	if len(sel.Rejected) > 0 {
		s.notifier.Error("Some files are not valid videos")
	}
	if len(sel.Accepted) == 0 {
		return nil, domain.NewValidationError("files", "select at least one video")
	}
	release, err := s.guard.Begin("media:uploadVideos")
	if err != nil {
		return nil, err
	}
	defer release()

	if err := s.api.UploadVideos(ctx, sel.Accepted); err != nil {
		return nil, err
	}
	s.cache.Invalidate(keyVideos)
	return &UploadResponse{Uploaded: sel.Accepted, Rejected: sel.Rejected}, nil
}

// ListVideos returns the global collection, cached.
func (s *MediaService) ListVideos(ctx context.Context) ([]domain.VideoAsset, error) {
	v, err := s.cache.Get(ctx, keyVideos, func(ctx context.Context) (any, error) {
		return s.api.ListVideos(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.VideoAsset), nil
}

// CollectionState derives the global collection's state from a fresh
// (or cached) listing.
func (s *MediaService) CollectionState(ctx context.Context) (domain.CollectionState, error) {
	videos, err := s.ListVideos(ctx)
	if err != nil {
		return domain.CollectionEmpty, err
	}
	return domain.CollectionStateOf(videos), nil
}

// DeleteVideo removes one video from the global collection.
func (s *MediaService) DeleteVideo(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.NewValidationError("name", "video name is required")
	}
	release, err := s.guard.Begin("media:deleteVideo:" + name)
	if err != nil {
		return err
	}
	defer release()

	if err := s.api.DeleteVideo(ctx, name); err != nil {
		return err
	}
	s.cache.Invalidate(keyVideos)
	return nil
}
