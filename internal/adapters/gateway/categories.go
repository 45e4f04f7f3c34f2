package gateway

import (
	"context"
	"net/http"
	"net/url"

	"prezo/internal/core/domain"
)

// CategoryService maps the category resource onto its REST endpoints.
type CategoryService struct {
	client *Client
}

// NewCategoryService builds the category facade.
func NewCategoryService(client *Client) *CategoryService {
	return &CategoryService{client: client}
}

func (s *CategoryService) List(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	if err := s.client.GetJSON(ctx, "/allCategories", &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *CategoryService) Create(ctx context.Context, name string) (*domain.Category, error) {
	created := domain.Category{Name: name}
	if err := s.client.SendJSON(ctx, http.MethodPost, "/categories", domain.Category{Name: name}, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *CategoryService) Get(ctx context.Context, id string) (*domain.Category, error) {
	var category domain.Category
	if err := s.client.GetJSON(ctx, "/categories/"+url.PathEscape(id), &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *CategoryService) Update(ctx context.Context, id, name string) error {
	return s.client.SendJSON(ctx, http.MethodPut, "/categories/"+url.PathEscape(id), domain.Category{Name: name}, nil)
}

func (s *CategoryService) Delete(ctx context.Context, id string) error {
	return s.client.SendJSON(ctx, http.MethodDelete, "/categories/"+url.PathEscape(id), nil, nil)
}
