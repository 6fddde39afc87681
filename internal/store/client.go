package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/campusworks/coursedash/internal/record"
)

// apiKeyHeader is the header the hosted store reads its key from.
const apiKeyHeader = "x-apikey"

// Client performs CRUD against the record store over HTTP.
//
// Construct with New; the zero value is not usable. Client is safe for
// concurrent use: it holds no mutable state beyond the shared http.Client.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	cols    record.Collections
	tokens  TokenGenerator
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client. Used by tests and by
// deployments that need custom transports.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithCollections overrides the default collection tokens.
func WithCollections(cols record.Collections) Option {
	return func(c *Client) { c.cols = cols }
}

// WithTokenGenerator replaces the reload token generator.
// Tests install a FixedGenerator for deterministic snapshots.
func WithTokenGenerator(g TokenGenerator) Option {
	return func(c *Client) { c.tokens = g }
}

// New creates a client for the store at baseURL, authenticating every
// request with apiKey.
func New(baseURL, apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 30 * time.Second},
		cols:    record.DefaultCollections(),
		tokens:  UUIDv7Generator{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the configured store base URL. References persisted by
// callers must be encoded against this base (see internal/ref).
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Collections returns the configured collection tokens.
func (c *Client) Collections() record.Collections {
	return c.cols
}

// collectionURL builds the endpoint for a collection, optionally suffixed
// with a record id.
func (c *Client) collectionURL(collection record.Collection, id string) string {
	u := c.baseURL + "/rest/" + string(collection)
	if id != "" {
		u += "/" + id
	}
	return u
}

// do issues one request and decodes the JSON response into out (skipped
// when out is nil). All failure modes collapse into ErrRequestFailed.
func (c *Client) do(ctx context.Context, method, url string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return requestError(method, url, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return requestError(method, url, err)
	}
	req.Header.Set(apiKeyHeader, c.apiKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return requestError(method, url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(method, url, resp.StatusCode)
	}

	if out == nil {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %s %s: decode response: %v", ErrRequestFailed, method, url, err)
	}
	return nil
}

// List fetches every record of a collection. The store sends the full set
// in one response; the result is the single source of truth post-fetch.
func List[T any](ctx context.Context, c *Client, collection record.Collection) ([]T, error) {
	var out []T
	if err := c.do(ctx, http.MethodGet, c.collectionURL(collection, ""), nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

// Create submits a new record and returns the server's copy, including the
// generated identifier and timestamps.
func Create[T any](ctx context.Context, c *Client, collection record.Collection, fields any) (T, error) {
	var out T
	if err := c.do(ctx, http.MethodPost, c.collectionURL(collection, ""), fields, &out); err != nil {
		return out, err
	}
	return out, nil
}

// Update submits a partial field set for an existing record. The merge of
// unspecified fields happens server-side; callers intending a full
// replacement must submit the full intended field set.
func Update[T any](ctx context.Context, c *Client, collection record.Collection, id string, fields any) (T, error) {
	var out T
	if err := c.do(ctx, http.MethodPatch, c.collectionURL(collection, id), fields, &out); err != nil {
		return out, err
	}
	return out, nil
}

// Delete removes a record by identifier. Idempotency of repeated deletes is
// the server's contract, not checked here.
func (c *Client) Delete(ctx context.Context, collection record.Collection, id string) error {
	return c.do(ctx, http.MethodDelete, c.collectionURL(collection, id), nil, nil)
}
