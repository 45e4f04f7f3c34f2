package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// SpeechService maps narration synthesis onto its endpoint. The backend
// writes the result to the folder's single audio.mp3, overwriting any
// previous narration.
type SpeechService struct {
	client *Client
}

// NewSpeechService builds the speech facade.
func NewSpeechService(client *Client) *SpeechService {
	return &SpeechService{client: client}
}

func (s *SpeechService) Generate(ctx context.Context, categoryID, folder, text string) error {
	path := fmt.Sprintf("/allCategories/%s/folders/%s/tts", url.PathEscape(categoryID), url.PathEscape(folder))
	body := map[string]string{"text": text}
	return s.client.SendJSON(ctx, http.MethodPost, path, body, nil)
}

// HasNarration probes the conventional audio path. A 404 means no
// narration yet, not a failure, so the probe bypasses the global
// notifier.
func (s *SpeechService) HasNarration(ctx context.Context, categoryID, folder string) (bool, error) {
	path := fmt.Sprintf("/public/images/%s/%s/audio.mp3", url.PathEscape(categoryID), url.PathEscape(folder))
	return s.client.Probe(ctx, path)
}
