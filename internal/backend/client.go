// Package backend is the typed REST client for the external grading
// service. One parameterized invoker covers every verb plus multipart
// uploads; bearer tokens are resolved from the session stores unless a
// call overrides them explicitly.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/mbsaloka/AutoEssayGrader/internal/metrics"
)

// TokenSource resolves the bearer token for outgoing requests.
// session.Repository implements it (cookie first, fallback second).
type TokenSource interface {
	Token(ctx context.Context) string
}

// RequestConfig carries per-call overrides.
type RequestConfig struct {
	// Token overrides store-based resolution when set.
	Token string
	// Header entries are added to the request verbatim.
	Header http.Header
}

// Client invokes the grading backend. The zero value is not usable;
// construct with New and bind a per-request token source with
// WithTokenSource.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
}

// New creates a backend client with pooled connections.
func New(baseURL string) *Client {
	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	}

	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

// WithTokenSource returns a shallow copy bound to the given source,
// typically one request's session repository.
func (c *Client) WithTokenSource(ts TokenSource) *Client {
	bound := *c
	bound.tokens = ts
	return &bound
}

// Get performs a GET and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, endpoint string, out any, cfg *RequestConfig) error {
	return c.do(ctx, http.MethodGet, endpoint, nil, out, cfg)
}

// Post performs a POST with an optional JSON body.
func (c *Client) Post(ctx context.Context, endpoint string, body, out any, cfg *RequestConfig) error {
	return c.do(ctx, http.MethodPost, endpoint, body, out, cfg)
}

// Put performs a PUT with an optional JSON body.
func (c *Client) Put(ctx context.Context, endpoint string, body, out any, cfg *RequestConfig) error {
	return c.do(ctx, http.MethodPut, endpoint, body, out, cfg)
}

// Patch performs a PATCH with an optional JSON body.
func (c *Client) Patch(ctx context.Context, endpoint string, body, out any, cfg *RequestConfig) error {
	return c.do(ctx, http.MethodPatch, endpoint, body, out, cfg)
}

// Delete performs a DELETE and decodes the response when there is one.
func (c *Client) Delete(ctx context.Context, endpoint string, out any, cfg *RequestConfig) error {
	return c.do(ctx, http.MethodDelete, endpoint, nil, out, cfg)
}

// UploadFile sends a multipart POST. Content-Type is left to the
// multipart writer so the boundary is set correctly.
func (c *Client) UploadFile(ctx context.Context, endpoint, fieldName, fileName string, file io.Reader, fields map[string]string, out any, cfg *RequestConfig) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile(fieldName, fileName)
	if err != nil {
		return fmt.Errorf("backend: create form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("backend: copy file: %w", err)
	}
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			return fmt.Errorf("backend: write field: %w", err)
		}
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("backend: close multipart: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, &buf)
	if err != nil {
		return fmt.Errorf("backend: build request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	c.applyAuth(ctx, req, cfg)
	applyExtraHeaders(req, cfg)

	return c.send(req, out)
}

func (c *Client) do(ctx context.Context, method, endpoint string, body, out any, cfg *RequestConfig) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("backend: encode body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return fmt.Errorf("backend: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.applyAuth(ctx, req, cfg)
	applyExtraHeaders(req, cfg)

	return c.send(req, out)
}

// applyAuth attaches the bearer token: explicit override first, then
// the bound token source. Requests without a resolvable token go out
// bare; the backend's 401 is the signal.
func (c *Client) applyAuth(ctx context.Context, req *http.Request, cfg *RequestConfig) {
	token := ""
	if cfg != nil && cfg.Token != "" {
		token = cfg.Token
	} else if c.tokens != nil {
		token = c.tokens.Token(ctx)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

func applyExtraHeaders(req *http.Request, cfg *RequestConfig) {
	if cfg == nil {
		return
	}
	for k, values := range cfg.Header {
		for _, v := range values {
			req.Header.Add(k, v)
		}
	}
}

func (c *Client) send(req *http.Request, out any) error {
	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		metrics.ObserveBackendRequest(req.Method, 0, time.Since(start))
		return fmt.Errorf("backend: %s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()
	metrics.ObserveBackendRequest(req.Method, resp.StatusCode, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp)
	}

	// 204 resolves to the caller's zero value; there is no body to
	// decode and that must never surface as a decode error.
	if resp.StatusCode == http.StatusNoContent || out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("backend: decode response: %w", err)
	}
	return nil
}
