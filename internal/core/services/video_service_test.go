package services

import (
	"context"
	"errors"
	"testing"

	"prezo/internal/cache"
	"prezo/internal/core/domain"
	"prezo/internal/core/ports/mocks"
)

type videoFixture struct {
	backend  *mocks.MockCatalog
	notifier *mocks.RecordingNotifier
	cache    *cache.Cache
	guard    *cache.Guard
	media    *MediaService
	speech   *SpeechService
	status   *StatusService
	video    *VideoService
}

func newVideoFixture() *videoFixture {
	backend := mocks.NewMockCatalog()
	notifier := mocks.NewRecordingNotifier()
	c := cache.New(0)
	g := cache.NewGuard()
	media := NewMediaService(backend, c, g, notifier)
	speech := NewSpeechService(backend, c, g)
	status := NewStatusService(backend, backend, c)
	video := NewVideoService(backend.Videos(), status, media, c, g)
	return &videoFixture{
		backend:  backend,
		notifier: notifier,
		cache:    c,
		guard:    g,
		media:    media,
		speech:   speech,
		status:   status,
		video:    video,
	}
}

func (f *videoFixture) prepareFolder(t *testing.T, withImages, withAudio bool) {
	t.Helper()
	ctx := context.Background()
	if withImages {
		if _, err := f.media.UploadImages(ctx, UploadImagesRequest{
			CategoryID: "cat-1",
			Folder:     "intro",
			Files:      []string{"001.png"},
		}); err != nil {
			t.Fatalf("UploadImages: %v", err)
		}
	}
	if withAudio {
		if err := f.speech.Generate(ctx, "cat-1", "intro", "hello"); err != nil {
			t.Fatalf("Generate narration: %v", err)
		}
	}
}

func TestVideoService_GenerateRequiresPrerequisites(t *testing.T) {
	tests := []struct {
		name       string
		withImages bool
		withAudio  bool
		wantOK     bool
	}{
		{name: "nothing uploaded", withImages: false, withAudio: false, wantOK: false},
		{name: "images only", withImages: true, withAudio: false, wantOK: false},
		{name: "audio only", withImages: false, withAudio: true, wantOK: false},
		{name: "images and audio", withImages: true, withAudio: true, wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newVideoFixture()
			f.prepareFolder(t, tt.withImages, tt.withAudio)

			result, err := f.video.Generate(context.Background(), "cat-1", "intro")
			if tt.wantOK {
				if err != nil {
					t.Fatalf("Generate: %v", err)
				}
				if result.OutputPath == "" {
					t.Error("no output path returned")
				}
				return
			}
			if !domain.IsValidation(err) {
				t.Errorf("want validation error, got %v", err)
			}
			if f.backend.CallCount("video.generate") != 0 {
				t.Error("generate request issued without prerequisites")
			}
		})
	}
}

func TestVideoService_MergeRefusedWhenEmpty(t *testing.T) {
	f := newVideoFixture()

	_, err := f.video.Merge(context.Background())
	if !domain.IsValidation(err) {
		t.Errorf("want validation error, got %v", err)
	}
	if f.backend.CallCount("video.merge") != 0 {
		t.Error("merge request issued against an empty collection")
	}
}

func TestVideoService_MergeLeavesCollection(t *testing.T) {
	f := newVideoFixture()
	ctx := context.Background()

	if _, err := f.media.UploadVideos(ctx, []string{"a.mp4", "b.mp4"}); err != nil {
		t.Fatalf("UploadVideos: %v", err)
	}

	result, err := f.video.Merge(ctx)
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}
	if result.OutputFilePath == "" {
		t.Error("merge returned no output path")
	}

	// Merge never removes the inputs.
	videos, _ := f.media.ListVideos(ctx)
	if len(videos) < 2 {
		t.Errorf("collection lost entries after merge: %v", videos)
	}
}

func TestVideoService_FinishAlwaysEmpties(t *testing.T) {
	t.Run("without a prior merge", func(t *testing.T) {
		f := newVideoFixture()
		ctx := context.Background()

		f.media.UploadVideos(ctx, []string{"a.mp4", "b.mp4"})
		if err := f.video.Finish(ctx); err != nil {
			t.Fatalf("Finish: %v", err)
		}

		state, _ := f.media.CollectionState(ctx)
		if state != domain.CollectionEmpty {
			t.Errorf("state = %v after finish, want empty", state)
		}
	})

	t.Run("on an already empty collection", func(t *testing.T) {
		f := newVideoFixture()
		if err := f.video.Finish(context.Background()); err != nil {
			t.Errorf("Finish on empty collection: %v", err)
		}
	})
}

func TestVideoService_DuplicateMergeRejected(t *testing.T) {
	f := newVideoFixture()
	ctx := context.Background()
	f.media.UploadVideos(ctx, []string{"a.mp4"})

	release, err := f.guard.Begin("video:merge")
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}
	defer release()

	if _, err := f.video.Merge(ctx); !errors.Is(err, domain.ErrDuplicateAction) {
		t.Errorf("want ErrDuplicateAction, got %v", err)
	}
	if f.backend.CallCount("video.merge") != 0 {
		t.Error("duplicate merge issued a request")
	}
}

func TestVideoService_FailureLeavesStateUnchanged(t *testing.T) {
	f := newVideoFixture()
	ctx := context.Background()
	f.media.UploadVideos(ctx, []string{"a.mp4"})

	f.backend.FailWith("video.merge", &domain.RequestError{Status: 500, Message: "encoder crashed"})
	if _, err := f.video.Merge(ctx); err == nil {
		t.Fatal("Merge succeeded despite backend failure")
	}

	// The same action can be retried right away.
	f.backend.FailWith("video.merge", nil)
	if _, err := f.video.Merge(ctx); err != nil {
		t.Errorf("retry after failure: %v", err)
	}
}
