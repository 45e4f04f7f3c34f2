package services

import (
	"context"
	"testing"

	"prezo/internal/cache"
	"prezo/internal/core/domain"
	"prezo/internal/core/ports/mocks"
)

func newSpeechFixture() (*SpeechService, *StatusService, *mocks.MockCatalog) {
	backend := mocks.NewMockCatalog()
	c := cache.New(0)
	g := cache.NewGuard()
	speech := NewSpeechService(backend, c, g)
	status := NewStatusService(backend, backend, c)
	return speech, status, backend
}

func TestSpeechService_GenerateValidatesText(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "empty", text: ""},
		{name: "spaces", text: "   "},
		{name: "tabs and newlines", text: "\t\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			speech, _, backend := newSpeechFixture()

			err := speech.Generate(context.Background(), "cat-1", "intro", tt.text)
			if !domain.IsValidation(err) {
				t.Errorf("want validation error, got %v", err)
			}
			if backend.CallCount("speech.generate") != 0 {
				t.Error("request issued for blank text")
			}
		})
	}
}

func TestSpeechService_GenerateSetsNarration(t *testing.T) {
	speech, status, _ := newSpeechFixture()
	ctx := context.Background()

	flags, err := status.Flags(ctx, "cat-1", "intro")
	if err != nil {
		t.Fatalf("Flags: %v", err)
	}
	if flags.HasAudio {
		t.Fatal("narration present before generation")
	}

	if err := speech.Generate(ctx, "cat-1", "intro", "Welcome to the course."); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	// The folder's cached status must be invalidated by the write.
	flags, err = status.Flags(ctx, "cat-1", "intro")
	if err != nil {
		t.Fatalf("Flags: %v", err)
	}
	if !flags.HasAudio {
		t.Error("narration not visible after generation")
	}
}

func TestSpeechService_GenerateScopedInvalidation(t *testing.T) {
	speech, status, backend := newSpeechFixture()
	ctx := context.Background()

	// Warm both folders' statuses.
	if _, err := status.Load(ctx, "cat-1", "intro"); err != nil {
		t.Fatalf("Load intro: %v", err)
	}
	if _, err := status.Load(ctx, "cat-1", "outro"); err != nil {
		t.Fatalf("Load outro: %v", err)
	}
	listings := backend.CallCount("media.listImages")

	if err := speech.Generate(ctx, "cat-1", "intro", "hello"); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	status.Load(ctx, "cat-1", "intro")
	status.Load(ctx, "cat-1", "outro")
	if got := backend.CallCount("media.listImages"); got != listings+1 {
		t.Errorf("listings refetched = %d, want 1 (intro only)", got-listings)
	}
}
