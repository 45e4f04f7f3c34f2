package services

import (
	"context"
	"testing"

	"prezo/internal/cache"
	"prezo/internal/core/domain"
	"prezo/internal/core/ports/mocks"
)

func TestStatusService_StageProgression(t *testing.T) {
	backend := mocks.NewMockCatalog()
	notifier := mocks.NewRecordingNotifier()
	c := cache.New(0)
	g := cache.NewGuard()
	media := NewMediaService(backend, c, g, notifier)
	speech := NewSpeechService(backend, c, g)
	status := NewStatusService(backend, backend, c)
	video := NewVideoService(backend.Videos(), status, media, c, g)
	ctx := context.Background()

	stageAt := func(step string) domain.Stage {
		t.Helper()
		s, err := status.Load(ctx, "cat-1", "intro")
		if err != nil {
			t.Fatalf("%s: Load: %v", step, err)
		}
		return s.Stage
	}

	if got := stageAt("fresh folder"); got != domain.StageEmpty {
		t.Fatalf("fresh folder stage = %v, want empty", got)
	}

	if _, err := media.UploadImages(ctx, UploadImagesRequest{
		CategoryID: "cat-1", Folder: "intro", Files: []string{"001.png", "002.png"},
	}); err != nil {
		t.Fatalf("UploadImages: %v", err)
	}
	if got := stageAt("after images"); got != domain.StageImagesReady {
		t.Fatalf("stage after images = %v, want images-ready", got)
	}

	if err := speech.Generate(ctx, "cat-1", "intro", "hello"); err != nil {
		t.Fatalf("Generate narration: %v", err)
	}
	if got := stageAt("after narration"); got != domain.StageAudioReady {
		t.Fatalf("stage after narration = %v, want audio-ready", got)
	}

	if _, err := video.Generate(ctx, "cat-1", "intro"); err != nil {
		t.Fatalf("Generate video: %v", err)
	}
	if got := stageAt("after video"); got != domain.StageVideoReady {
		t.Fatalf("stage after video = %v, want video-ready", got)
	}
}

func TestStatusService_LoadCached(t *testing.T) {
	backend := mocks.NewMockCatalog()
	c := cache.New(0)
	status := NewStatusService(backend, backend, c)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := status.Load(ctx, "cat-1", "intro"); err != nil {
			t.Fatalf("Load %d: %v", i, err)
		}
	}
	if got := backend.CallCount("media.listImages"); got != 1 {
		t.Errorf("listImages calls = %d, want 1", got)
	}
	if got := backend.CallCount("speech.hasNarration"); got != 1 {
		t.Errorf("hasNarration calls = %d, want 1", got)
	}
}

func TestStatusService_ValidatesIdentifiers(t *testing.T) {
	backend := mocks.NewMockCatalog()
	status := NewStatusService(backend, backend, cache.New(0))

	tests := []struct {
		name     string
		category string
		folder   string
	}{
		{name: "blank category", category: "  ", folder: "intro"},
		{name: "blank folder", category: "cat-1", folder: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := status.Load(context.Background(), tt.category, tt.folder); !domain.IsValidation(err) {
				t.Errorf("want validation error, got %v", err)
			}
		})
	}
}

func TestStatusService_ProbeFailurePropagates(t *testing.T) {
	backend := mocks.NewMockCatalog()
	c := cache.New(0)
	status := NewStatusService(backend, backend, c)
	ctx := context.Background()

	backend.FailWith("speech.hasNarration", &domain.TransportError{Err: context.DeadlineExceeded})
	if _, err := status.Load(ctx, "cat-1", "intro"); err == nil {
		t.Fatal("Load succeeded despite probe failure")
	}

	// Failures are never cached; the next load retries the probe.
	backend.FailWith("speech.hasNarration", nil)
	if _, err := status.Load(ctx, "cat-1", "intro"); err != nil {
		t.Errorf("Load after recovery: %v", err)
	}
}
