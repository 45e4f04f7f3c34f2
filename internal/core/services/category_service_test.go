package services

import (
	"context"
	"testing"

	"prezo/internal/cache"
	"prezo/internal/core/domain"
	"prezo/internal/core/ports/mocks"
)

func newCategoryFixture() (*CategoryService, *mocks.MockCatalog) {
	backend := mocks.NewMockCatalog()
	svc := NewCategoryService(backend, cache.New(0), cache.NewGuard())
	return svc, backend
}

func TestCategoryService_CreateValidation(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty name", input: ""},
		{name: "whitespace only", input: "   "},
		{name: "tabs and newlines", input: "\t\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, backend := newCategoryFixture()

			_, err := svc.Create(context.Background(), tt.input)
			if !domain.IsValidation(err) {
				t.Errorf("want validation error, got %v", err)
			}
			if backend.CallCount("category.create") != 0 {
				t.Error("a network call was issued for invalid input")
			}
		})
	}
}

func TestCategoryService_CreateInvalidatesListing(t *testing.T) {
	svc, backend := newCategoryFixture()
	ctx := context.Background()

	if _, err := svc.List(ctx); err != nil {
		t.Fatalf("List: %v", err)
	}
	if _, err := svc.List(ctx); err != nil {
		t.Fatalf("List: %v", err)
	}
	if backend.CallCount("category.list") != 1 {
		t.Fatalf("listing not cached: %d fetches", backend.CallCount("category.list"))
	}

	created, err := svc.Create(ctx, "Demo")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	categories, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List after create: %v", err)
	}
	if backend.CallCount("category.list") != 2 {
		t.Error("stale listing served after a successful write")
	}
	found := false
	for _, c := range categories {
		if c.Name == "Demo" && c.ID == created.ID {
			found = true
		}
	}
	if !found {
		t.Errorf("created category missing from fresh listing: %v", categories)
	}
}

func TestCategoryService_RenameAndDelete(t *testing.T) {
	svc, backend := newCategoryFixture()
	ctx := context.Background()

	created, err := svc.Create(ctx, "Old")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := svc.Rename(ctx, created.ID, "New"); err != nil {
		t.Fatalf("Rename: %v", err)
	}
	got, err := svc.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Name != "New" {
		t.Errorf("name = %q after rename", got.Name)
	}

	if err := svc.Rename(ctx, created.ID, "  "); !domain.IsValidation(err) {
		t.Errorf("blank rename: want validation error, got %v", err)
	}

	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.Get(ctx, created.ID); err == nil {
		t.Error("Get succeeded after delete")
	}
	_ = backend
}

func TestCategoryService_DuplicateCreateRejected(t *testing.T) {
	backend := mocks.NewMockCatalog()
	guard := cache.NewGuard()
	svc := NewCategoryService(backend, cache.New(0), guard)

	// Simulate a create still in flight.
	release, err := guard.Begin("category:create")
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}
	defer release()

	if _, err := svc.Create(context.Background(), "Demo"); err != domain.ErrDuplicateAction {
		t.Errorf("want ErrDuplicateAction, got %v", err)
	}
	if backend.CallCount("category.create") != 0 {
		t.Error("duplicate submission issued a request")
	}
}
