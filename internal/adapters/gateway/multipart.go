package gateway

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
)

// UploadFiles sends the given files as one multipart request. field is
// the form field name the backend expects ("files" for image batches,
// "video" for video batches). The upload is all-or-nothing at the HTTP
// layer; there is no per-file result.
func (c *Client) UploadFiles(ctx context.Context, path, field string, files []string) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, file := range files {
		if err := appendFile(w, field, file); err != nil {
			w.Close()
			return err
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("finalize multipart body: %w", err)
	}
	_, err := c.Do(ctx, http.MethodPost, path, buf.Bytes(), w.FormDataContentType())
	return err
}

func appendFile(w *multipart.Writer, field, file string) error {
	f, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("open %s: %w", file, err)
	}
	defer f.Close()

	part, err := w.CreateFormFile(field, filepath.Base(file))
	if err != nil {
		return fmt.Errorf("create form part for %s: %w", file, err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return fmt.Errorf("read %s: %w", file, err)
	}
	return nil
}
