package services

import (
	"context"
	"strings"

	"prezo/internal/cache"
	"prezo/internal/core/domain"
	"prezo/internal/core/ports"
)

// FolderService handles folder creation under a category.
type FolderService struct {
	api   ports.FolderAPI
	cache *cache.Cache
	guard *cache.Guard
}

// NewFolderService creates a new folder service.
func NewFolderService(api ports.FolderAPI, c *cache.Cache, g *cache.Guard) *FolderService {
	return &FolderService{api: api, cache: c, guard: g}
}

// Create adds a folder. Empty names are rejected locally.
func (s *FolderService) Create(ctx context.Context, categoryID, name string) error {
	categoryID = strings.TrimSpace(categoryID)
	name = strings.TrimSpace(name)
	if categoryID == "" {
		return domain.NewValidationError("category", "category id is required")
	}
	if name == "" {
		return domain.NewValidationError("name", "folder name is required")
	}
	release, err := s.guard.Begin("folder:create:" + categoryID + "/" + name)
	if err != nil {
		return err
	}
	defer release()

	if err := s.api.Create(ctx, categoryID, name); err != nil {
		return err
	}
	s.cache.InvalidatePrefix(keyCategories + "/" + categoryID)
	return nil
}
