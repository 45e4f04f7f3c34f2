package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// FolderService maps folder creation onto its nested endpoint.
type FolderService struct {
	client *Client
}

// NewFolderService builds the folder facade.
func NewFolderService(client *Client) *FolderService {
	return &FolderService{client: client}
}

func (s *FolderService) Create(ctx context.Context, categoryID, name string) error {
	path := fmt.Sprintf("/allCategories/%s/folders", url.PathEscape(categoryID))
	body := map[string]string{"name": name}
	return s.client.SendJSON(ctx, http.MethodPost, path, body, nil)
}
