package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"prezo/internal/core/domain"
	"prezo/internal/core/ports"
)

const defaultTimeout = 60 * time.Second

// HTTPDoer describes the HTTP client used by the gateway.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is the single configured HTTP client behind every resource
// facade. All paths are relative to the catalog base URL. Failures are
// normalized into domain.RequestError / domain.TransportError and
// reported to the global notifier before being returned, so ambient
// and local feedback both fire.
type Client struct {
	baseURL  string
	http     HTTPDoer
	notifier ports.Notifier
}

// New builds a gateway client. baseURL should include the /api/catalog
// base path, e.g. http://localhost:8080/api/catalog.
func New(baseURL string, notifier ports.Notifier) *Client {
	return &Client{
		baseURL:  strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		http:     &http.Client{Timeout: defaultTimeout},
		notifier: notifier,
	}
}

// NewWithDoer builds a gateway client around a caller-supplied HTTPDoer,
// for custom timeouts or test doubles.
func NewWithDoer(baseURL string, doer HTTPDoer, notifier ports.Notifier) *Client {
	return &Client{
		baseURL:  strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		http:     doer,
		notifier: notifier,
	}
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do issues one request and returns the raw response body. GET requests
// get exactly one automatic retry on failure; writes are never retried.
func (c *Client) Do(ctx context.Context, method, path string, body []byte, contentType string) ([]byte, error) {
	attempts := 1
	if method == http.MethodGet {
		attempts = 2
	}
	var lastErr error
	for i := 0; i < attempts; i++ {
		data, err := c.once(ctx, method, path, body, contentType)
		if err == nil {
			return data, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			break
		}
	}
	c.report(lastErr)
	return nil, lastErr
}

func (c *Client) once(ctx context.Context, method, path string, body []byte, contentType string) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.url(path), reader)
	if err != nil {
		return nil, &domain.TransportError{Err: err}
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &domain.TransportError{Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.TransportError{Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &domain.RequestError{
			Status:  resp.StatusCode,
			Message: extractMessage(data, resp.StatusCode),
		}
	}
	return data, nil
}

// Probe checks whether a resource exists without raising the global
// notifier: a 404 is an answer, not a failure. Used for the narration
// existence check, where the asset is addressed purely by convention.
func (c *Client) Probe(ctx context.Context, path string) (bool, error) {
	status, err := c.probeOnce(ctx, http.MethodHead, path)
	if err != nil {
		return false, err
	}
	if status == http.StatusMethodNotAllowed {
		// Static file handlers do not always answer HEAD.
		status, err = c.probeOnce(ctx, http.MethodGet, path)
		if err != nil {
			return false, err
		}
	}
	switch {
	case status >= 200 && status <= 299:
		return true, nil
	case status == http.StatusNotFound:
		return false, nil
	default:
		return false, &domain.RequestError{
			Status:  status,
			Message: fmt.Sprintf("request failed with status %d", status),
		}
	}
}

func (c *Client) probeOnce(ctx context.Context, method, path string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.url(path), nil)
	if err != nil {
		return 0, &domain.TransportError{Err: err}
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return 0, &domain.TransportError{Err: err}
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)
	return resp.StatusCode, nil
}

// GetJSON fetches path and decodes the response into out.
func (c *Client) GetJSON(ctx context.Context, path string, out any) error {
	data, err := c.Do(ctx, http.MethodGet, path, nil, "")
	if err != nil {
		return err
	}
	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

// SendJSON issues a write with a JSON body (or none) and optionally
// decodes the response.
func (c *Client) SendJSON(ctx context.Context, method, path string, in, out any) error {
	var body []byte
	contentType := ""
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s request: %w", path, err)
		}
		body = b
		contentType = "application/json"
	}
	data, err := c.Do(ctx, method, path, body, contentType)
	if err != nil {
		return err
	}
	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

func (c *Client) url(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.baseURL + path
}

func (c *Client) report(err error) {
	if c.notifier == nil || err == nil {
		return
	}
	switch e := err.(type) {
	case *domain.RequestError:
		c.notifier.Error(e.Message)
	case *domain.TransportError:
		c.notifier.Error(e.Error())
	default:
		c.notifier.Error(err.Error())
	}
}

// extractMessage normalizes the backend's loose error bodies: some
// routes return {"message": ...} or {"error": ...}, others a raw string
// body. Anything else falls back to a generic line.
func extractMessage(body []byte, status int) string {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 {
		var payload struct {
			Message string `json:"message"`
			Error   string `json:"error"`
		}
		if err := json.Unmarshal(trimmed, &payload); err == nil {
			if payload.Message != "" {
				return payload.Message
			}
			if payload.Error != "" {
				return payload.Error
			}
		}
		var raw string
		if err := json.Unmarshal(trimmed, &raw); err == nil && raw != "" {
			return raw
		}
		if !bytes.HasPrefix(trimmed, []byte("{")) && !bytes.HasPrefix(trimmed, []byte("[")) {
			return string(trimmed)
		}
	}
	return fmt.Sprintf("request failed with status %d", status)
}
