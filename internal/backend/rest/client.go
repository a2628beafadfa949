// Package rest implements the backend interfaces over the VitalMotion
// HTTP/JSON wire contract.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"vitalmotion/client/internal/backend"

	"github.com/coocood/freecache"
)

const nameCacheSize = 1024 * 1024 // resolved names are tiny; 1MB is plenty

// Client talks to the remote backend (and the identity endpoints, which may
// live on a different host). It is safe for concurrent use.
type Client struct {
	baseURL     string
	identityURL string
	httpClient  *http.Client
	names       *freecache.Cache // exerciseID -> resolved display name
}

// New creates a backend client. httpClient may be nil, in which case
// http.DefaultClient is used; pass a client with a timeout in production.
func New(baseURL, identityURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if identityURL == "" {
		identityURL = baseURL
	}
	return &Client{
		baseURL:     baseURL,
		identityURL: identityURL,
		httpClient:  httpClient,
		names:       freecache.NewCache(nameCacheSize),
	}
}

// errorResponse is the backend's uniform failure body.
type errorResponse struct {
	Error string `json:"error"`
}

// doJSON issues one request and decodes the response into out (which may be
// nil). Failures are classified into the backend error taxonomy so callers
// can use errors.Is.
func (c *Client) doJSON(ctx context.Context, method, url string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", backend.ErrTransport, err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read response: %v", backend.ErrTransport, err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s %s", backend.ErrNotFound, method, url)
	case resp.StatusCode == http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", backend.ErrUnauthorized, serverMessage(respBytes))
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return fmt.Errorf("%w: status %d: %s", backend.ErrTransport, resp.StatusCode, serverMessage(respBytes))
	}

	if out != nil && len(respBytes) > 0 {
		if err := json.Unmarshal(respBytes, out); err != nil {
			return fmt.Errorf("%w: decode response: %v", backend.ErrTransport, err)
		}
	}
	return nil
}

func serverMessage(body []byte) string {
	var er errorResponse
	if err := json.Unmarshal(body, &er); err == nil && er.Error != "" {
		return er.Error
	}
	return string(body)
}

func (c *Client) url(format string, args ...any) string {
	return c.baseURL + fmt.Sprintf(format, args...)
}
