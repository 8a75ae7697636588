// Package api implements the HTTP client for the analytics backend.
// All operations are read-only JSON GETs; media downloads are the one
// binary surface. Every method is context-bound and maps failures onto
// the package's error kinds.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"telestat/internal/config"
)

// Client talks to the analytics backend REST API.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	mediaClient *http.Client
	log         *slog.Logger
}

// NewClient creates a backend client from the API configuration.
// The media client carries its own, longer timeout.
func NewClient(cfg config.APIConfig, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		mediaClient: &http.Client{Timeout: cfg.MediaTimeout},
		log:         logger.With("component", "api_client"),
	}
}

// getJSON issues a GET against path with the given query values and decodes
// the response body into out.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to build request for %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.ErrorContext(ctx, "Backend request failed", "path", path, "error", err)
		return fmt.Errorf("%w: GET %s: %v", ErrFetch, path, err)
	}
	defer closeBody(ctx, c.log, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.WarnContext(ctx, "Backend returned non-success status", "path", path, "status", resp.StatusCode)
		return fmt.Errorf("%w: GET %s: status %d", ErrFetch, path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: GET %s: decode: %v", ErrFetch, path, err)
	}
	return nil
}

func closeBody(ctx context.Context, log *slog.Logger, body io.ReadCloser) {
	if err := body.Close(); err != nil {
		log.WarnContext(ctx, "Failed to close response body", "error", err)
	}
}
