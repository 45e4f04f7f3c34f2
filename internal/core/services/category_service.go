package services

import (
	"context"
	"strings"

	"prezo/internal/cache"
	"prezo/internal/core/domain"
	"prezo/internal/core/ports"
)

// Cache keys for category reads. Writes invalidate the whole prefix so
// listings and single-category reads never serve stale data.
const (
	keyCategories = "categories"
)

// CategoryService handles category listing and lifecycle. Reads go
// through the shared cache; every successful write invalidates the
// category keys before returning.
type CategoryService struct {
	api   ports.CategoryAPI
	cache *cache.Cache
	guard *cache.Guard
}

// NewCategoryService creates a new category service.
func NewCategoryService(api ports.CategoryAPI, c *cache.Cache, g *cache.Guard) *CategoryService {
	return &CategoryService{api: api, cache: c, guard: g}
}

// List returns all categories, cached.
func (s *CategoryService) List(ctx context.Context) ([]domain.Category, error) {
	v, err := s.cache.Get(ctx, keyCategories, func(ctx context.Context) (any, error) {
		return s.api.List(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.Category), nil
}

// Get returns one category, cached by id.
func (s *CategoryService) Get(ctx context.Context, id string) (*domain.Category, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, domain.NewValidationError("id", "category id is required")
	}
	v, err := s.cache.Get(ctx, keyCategories+"/"+id, func(ctx context.Context) (any, error) {
		return s.api.Get(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.Category), nil
}

// Create adds a category. An empty or whitespace-only name is rejected
// before any request is built.
func (s *CategoryService) Create(ctx context.Context, name string) (*domain.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.NewValidationError("name", "category name is required")
	}
	release, err := s.guard.Begin("category:create")
	if err != nil {
		return nil, err
	}
	defer release()

	created, err := s.api.Create(ctx, name)
	if err != nil {
		return nil, err
	}
	s.cache.InvalidatePrefix(keyCategories)
	return created, nil
}

// Rename changes a category's name, its only mutable field.
func (s *CategoryService) Rename(ctx context.Context, id, name string) error {
	id = strings.TrimSpace(id)
	name = strings.TrimSpace(name)
	if id == "" {
		return domain.NewValidationError("id", "category id is required")
	}
	if name == "" {
		return domain.NewValidationError("name", "category name is required")
	}
	release, err := s.guard.Begin("category:update:" + id)
	if err != nil {
		return err
	}
	defer release()

	if err := s.api.Update(ctx, id, name); err != nil {
		return err
	}
	s.cache.InvalidatePrefix(keyCategories)
	return nil
}

// Delete removes a category.
func (s *CategoryService) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.NewValidationError("id", "category id is required")
	}
	release, err := s.guard.Begin("category:delete:" + id)
	if err != nil {
		return err
	}
	defer release()

	if err := s.api.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.InvalidatePrefix(keyCategories)
	return nil
}
