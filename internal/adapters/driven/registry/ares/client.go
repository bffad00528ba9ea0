// Package ares provides a registry client adapter for the Czech ARES
// business registry REST endpoint.
package ares

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/ares-tools/ares-cli/internal/core/domain"
	"github.com/ares-tools/ares-cli/internal/core/ports/driven"
)

// Ensure Client implements the interface.
var _ driven.RegistryClient = (*Client)(nil)

// Default configuration values.
const (
	// DefaultBaseURL is the public ARES economic-subjects endpoint.
	// The identifier is appended directly to this URL.
	DefaultBaseURL = "https://ares.gov.cz/ekonomicke-subjekty-v-be/rest/ekonomicke-subjekty/"

	// DefaultTimeout bounds one lookup round-trip. The endpoint has no
	// server-side deadline, so an unbounded client would hang on an
	// unresponsive server.
	DefaultTimeout = 10 * time.Second
)

// Config holds configuration for the ARES client.
type Config struct {
	// BaseURL is the registry endpoint (default: the public ARES URL).
	// Overridable for testing against a mock endpoint.
	BaseURL string

	// Timeout is the request timeout (default: 10s).
	Timeout time.Duration
}

// Client fetches subject records over the ARES REST API.
type Client struct {
	client  *http.Client
	baseURL string
}

// NewClient creates a new ARES registry client.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Client{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: cfg.BaseURL,
	}
}

// FetchSubject retrieves the record for a canonical identifier with a single
// GET request. A non-200 status and a transport failure both collapse to an
// error matching domain.ErrNotFound; the underlying cause stays on the error
// chain for callers that want it. A 200 response that cannot be decoded is a
// protocol violation by the registry and surfaces as
// domain.ErrMalformedResponse.
func (c *Client) FetchSubject(ctx context.Context, ico domain.ICO) (*domain.Subject, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+ico.String(), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrNotFound, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: registry returned status %d", domain.ErrNotFound, resp.StatusCode)
	}

	var subject domain.Subject
	if err := json.NewDecoder(resp.Body).Decode(&subject); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrMalformedResponse, err)
	}

	return &subject, nil
}
