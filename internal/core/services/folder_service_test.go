package services

import (
	"context"
	"errors"
	"testing"

	"prezo/internal/cache"
	"prezo/internal/core/domain"
	"prezo/internal/core/ports/mocks"
)

func TestFolderService_CreateValidation(t *testing.T) {
	tests := []struct {
		name       string
		categoryID string
		folder     string
	}{
		{name: "blank category", categoryID: "   ", folder: "intro"},
		{name: "blank folder", categoryID: "cat-1", folder: ""},
		{name: "whitespace folder", categoryID: "cat-1", folder: "  \t"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := mocks.NewMockCatalog()
			svc := NewFolderService(backend.Folders(), cache.New(0), cache.NewGuard())

			err := svc.Create(context.Background(), tt.categoryID, tt.folder)
			if !domain.IsValidation(err) {
				t.Errorf("want validation error, got %v", err)
			}
			if backend.CallCount("folder.create") != 0 {
				t.Error("request issued for invalid input")
			}
		})
	}
}

func TestFolderService_CreateTrimsAndInvalidates(t *testing.T) {
	backend := mocks.NewMockCatalog()
	c := cache.New(0)
	svc := NewFolderService(backend.Folders(), c, cache.NewGuard())
	ctx := context.Background()

	// Warm a per-category entry that folder creation must invalidate,
	// and an unrelated one it must leave alone.
	c.Get(ctx, "categories/cat-1", func(context.Context) (any, error) { return "stale", nil })
	c.Get(ctx, "categories/cat-2", func(context.Context) (any, error) { return "other", nil })

	if err := svc.Create(ctx, " cat-1 ", "  intro  "); err != nil {
		t.Fatalf("Create: %v", err)
	}

	refetched := 0
	c.Get(ctx, "categories/cat-1", func(context.Context) (any, error) { refetched++; return "fresh", nil })
	c.Get(ctx, "categories/cat-2", func(context.Context) (any, error) { refetched++; return "other", nil })
	if refetched != 1 {
		t.Errorf("refetched %d entries, want 1 (cat-1 only)", refetched)
	}
}

func TestFolderService_DuplicateCreateRejected(t *testing.T) {
	backend := mocks.NewMockCatalog()
	g := cache.NewGuard()
	svc := NewFolderService(backend.Folders(), cache.New(0), g)

	release, err := g.Begin("folder:create:cat-1/intro")
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}
	defer release()

	if err := svc.Create(context.Background(), "cat-1", "intro"); !errors.Is(err, domain.ErrDuplicateAction) {
		t.Errorf("want ErrDuplicateAction, got %v", err)
	}
	if backend.CallCount("folder.create") != 0 {
		t.Error("duplicate create issued a request")
	}
}
