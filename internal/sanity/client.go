// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package sanity provides a read-only client for a Sanity-compatible
// headless content store. Queries are GROQ strings sent over HTTP; the
// client decodes the response envelope and unmarshals the result into a
// caller-supplied target. It also builds CDN image URLs from asset
// references.
package sanity

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Config holds the connection parameters for the content store. It is
// resolved once at startup and passed explicitly into NewClient — query
// functions never reach for ambient global state.
type Config struct {
	ProjectID  string
	Dataset    string
	APIVersion string // e.g. "2024-01-01"
	Token      string // optional; private datasets only
	UseCDN     bool   // query the CDN edge instead of the live API

	// BaseURL overrides the derived API host. Used by tests and
	// self-hosted stores. Empty means the public Sanity endpoints.
	BaseURL string

	Timeout time.Duration
}

// Client executes GROQ queries against one project/dataset pair.
type Client struct {
	config Config
	client *http.Client
}

// FetchError reports a failed content fetch: the store was unreachable,
// returned a non-2xx status, or sent a malformed body. Callers convert
// it into a local error state at the page boundary.
type FetchError struct {
	Status int // HTTP status, 0 for transport errors
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("sanity: query failed with status %d: %v", e.Status, e.Err)
	}
	return fmt.Sprintf("sanity: query failed: %v", e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// NewClient creates a content-store client from the given config.
func NewClient(cfg Config) *Client {
	if cfg.APIVersion == "" {
		cfg.APIVersion = "2024-01-01"
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 15 * time.Second
	}
	return &Client{
		config: cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

// queryEnvelope is the response wrapper the store puts around every
// query result.
type queryEnvelope struct {
	Result json.RawMessage `json:"result"`
	MS     int             `json:"ms"`
}

// Query runs a GROQ query with the given parameters and unmarshals the
// result into target. A null result is decoded as-is: single-document
// queries leave pointer targets nil, which the typed store layer maps
// to its not-found sentinel.
func (c *Client) Query(ctx context.Context, groq string, params map[string]any, target any) error {
	endpoint := fmt.Sprintf("%s/v%s/data/query/%s", c.baseURL(), c.config.APIVersion, c.config.Dataset)

	values := url.Values{}
	values.Set("query", groq)
	for name, val := range params {
		encoded, err := json.Marshal(val)
		if err != nil {
			return &FetchError{Err: fmt.Errorf("encode param %q: %w", name, err)}
		}
		values.Set("$"+name, string(encoded))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+values.Encode(), nil)
	if err != nil {
		return &FetchError{Err: fmt.Errorf("build request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")
	if c.config.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.config.Token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return &FetchError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &FetchError{Status: resp.StatusCode, Err: fmt.Errorf("read body: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &FetchError{Status: resp.StatusCode, Err: fmt.Errorf("%s", truncate(body, 200))}
	}

	var envelope queryEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return &FetchError{Status: resp.StatusCode, Err: fmt.Errorf("unmarshal envelope: %w", err)}
	}

	if len(envelope.Result) == 0 || string(envelope.Result) == "null" {
		// Leave the target at its zero value; absence is decided by
		// the caller, not treated as a transport failure.
		return nil
	}

	if err := json.Unmarshal(envelope.Result, target); err != nil {
		return &FetchError{Status: resp.StatusCode, Err: fmt.Errorf("unmarshal result: %w", err)}
	}

	return nil
}

// baseURL derives the API host from the project config unless an
// explicit override is set.
func (c *Client) baseURL() string {
	if c.config.BaseURL != "" {
		return c.config.BaseURL
	}
	host := "api.sanity.io"
	if c.config.UseCDN {
		host = "apicdn.sanity.io"
	}
	return fmt.Sprintf("https://%s.%s", c.config.ProjectID, host)
}

// truncate caps an error body at n bytes for log-friendly messages.
func truncate(b []byte, n int) string {
	if len(b) > n {
		return string(b[:n]) + "..."
	}
	return string(b)
}
