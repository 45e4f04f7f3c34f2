package services

import (
	"context"
	"strings"

	"prezo/internal/cache"
	"prezo/internal/core/domain"
	"prezo/internal/core/ports"
)

// SpeechService handles narration synthesis for folders.
type SpeechService struct {
	api   ports.SpeechAPI
	cache *cache.Cache
	guard *cache.Guard
}

// NewSpeechService creates a new speech service.
func NewSpeechService(api ports.SpeechAPI, c *cache.Cache, g *cache.Guard) *SpeechService {
	return &SpeechService{api: api, cache: c, guard: g}
}

// Generate synthesizes the folder's narration, overwriting any previous
// audio.mp3. Empty or whitespace-only text is rejected before a request
// is built.
func (s *SpeechService) Generate(ctx context.Context, categoryID, folder, text string) error {
	categoryID = strings.TrimSpace(categoryID)
	folder = strings.TrimSpace(folder)
	if categoryID == "" || folder == "" {
		return domain.NewValidationError("folder", "category and folder are required")
	}
	if strings.TrimSpace(text) == "" {
		return domain.NewValidationError("text", "text is required")
	}
	release, err := s.guard.Begin("tts:" + categoryID + "/" + folder)
	if err != nil {
		return err
	}
	defer release()

	if err := s.api.Generate(ctx, categoryID, folder, text); err != nil {
		return err
	}
	s.cache.Invalidate(keyFolderMedia(categoryID, folder))
	return nil
}
