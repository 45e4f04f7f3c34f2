package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"prezo/internal/core/domain"
)

// VideoService maps server-side video assembly onto its endpoints.
type VideoService struct {
	client *Client
}

// NewVideoService builds the video facade.
func NewVideoService(client *Client) *VideoService {
	return &VideoService{client: client}
}

func (s *VideoService) Generate(ctx context.Context, categoryID, folder string) (*domain.GenerateResult, error) {
	path := fmt.Sprintf("/allCategories/%s/folders/%s/generateVideo", url.PathEscape(categoryID), url.PathEscape(folder))
	var result domain.GenerateResult
	if err := s.client.SendJSON(ctx, http.MethodPost, path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *VideoService) Merge(ctx context.Context) (*domain.MergeResult, error) {
	var result domain.MergeResult
	if err := s.client.SendJSON(ctx, http.MethodPost, "/convert_videos", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *VideoService) Finish(ctx context.Context) error {
	return s.client.SendJSON(ctx, http.MethodPost, "/finish", nil, nil)
}
