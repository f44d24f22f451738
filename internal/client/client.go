// Package client calls the commentor and files roles over HTTP.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"autocomment.dev/pkg/autocomment/internal/server"
)

// DefaultTimeout bounds each request when no http.Client is supplied.
const DefaultTimeout = 30 * time.Second

const maxErrorBody = 4 << 10

// StatusError is returned for non-2xx responses.
type StatusError struct {
	StatusCode int
	Title      string
	Detail     string
}

func (e *StatusError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("upstream %d: %s", e.StatusCode, e.Detail)
	}

	return fmt.Sprintf("upstream %d: %s", e.StatusCode, e.Title)
}

// HTTPStatus returns the upstream status code.
func (e *StatusError) HTTPStatus() int {
	return e.StatusCode
}

type base struct {
	url  string
	http *http.Client
}

func newBase(baseURL string, httpClient *http.Client) base {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}

	return base{url: strings.TrimRight(baseURL, "/"), http: httpClient}
}

// do sends body (when non-nil) as JSON and decodes a 2xx response into out.
// The caller's request ID is forwarded.
func (b base) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader

	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}

		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, b.url+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if id := server.RequestIDFromContext(ctx); id != "" {
		req.Header.Set(server.HeaderRequestID, id)
	}

	if id := server.TraceIDFromContext(ctx); id != "" {
		req.Header.Set(server.HeaderTraceID, id)
	}

	resp, err := b.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}

	return nil
}

func statusError(resp *http.Response) error {
	data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	var problem server.Problem
	if err := json.Unmarshal(data, &problem); err == nil && (problem.Title != "" || problem.Detail != "") {
		return &StatusError{StatusCode: resp.StatusCode, Title: problem.Title, Detail: problem.Detail}
	}

	return &StatusError{
		StatusCode: resp.StatusCode,
		Title:      http.StatusText(resp.StatusCode),
		Detail:     strings.TrimSpace(string(data)),
	}
}
