package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"prezo/internal/core/domain"
)

// MediaService maps uploads and the global video collection onto their
// endpoints.
type MediaService struct {
	client *Client
}

// NewMediaService builds the media facade.
func NewMediaService(client *Client) *MediaService {
	return &MediaService{client: client}
}

func (s *MediaService) UploadImages(ctx context.Context, categoryID, folder string, files []string) error {
	path := fmt.Sprintf("/allCategories/%s/folders/%s/upload", url.PathEscape(categoryID), url.PathEscape(folder))
	return s.client.UploadFiles(ctx, path, "files", files)
}

func (s *MediaService) UploadVideos(ctx context.Context, files []string) error {
	return s.client.UploadFiles(ctx, "/uploadVideos", "video", files)
}

// ListVideos tolerates both wire shapes the backend has used: an array
// of {name,path} objects and an array of bare name strings.
func (s *MediaService) ListVideos(ctx context.Context) ([]domain.VideoAsset, error) {
	var raw json.RawMessage
	if err := s.client.GetJSON(ctx, "/videos", &raw); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, nil
	}
	var assets []domain.VideoAsset
	if err := json.Unmarshal(raw, &assets); err == nil {
		return assets, nil
	}
	var names []string
	if err := json.Unmarshal(raw, &names); err != nil {
		return nil, fmt.Errorf("decode /videos response: %w", err)
	}
	assets = make([]domain.VideoAsset, len(names))
	for i, name := range names {
		assets[i] = domain.VideoAsset{Name: name}
	}
	return assets, nil
}

func (s *MediaService) DeleteVideo(ctx context.Context, name string) error {
	return s.client.SendJSON(ctx, http.MethodDelete, "/videos/"+url.PathEscape(name), nil, nil)
}

func (s *MediaService) ListImages(ctx context.Context, category, folder string) ([]string, error) {
	var resp struct {
		ImageCount int      `json:"imageCount"`
		Images     []string `json:"images"`
	}
	path := fmt.Sprintf("/media/%s/%s/images", url.PathEscape(category), url.PathEscape(folder))
	if err := s.client.GetJSON(ctx, path, &resp); err != nil {
		return nil, err
	}
	return resp.Images, nil
}

func (s *MediaService) Statistics(ctx context.Context, category, folder string) (*domain.MediaStats, error) {
	var stats domain.MediaStats
	path := fmt.Sprintf("/media/%s/%s/statistics", url.PathEscape(category), url.PathEscape(folder))
	if err := s.client.GetJSON(ctx, path, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
