package client

import (
	"context"
	"net/http"

	m "autocomment.dev/pkg/autocomment/internal/model"
	"autocomment.dev/pkg/autocomment/internal/server"
)

// FilesClient calls the files role.
type FilesClient struct {
	base
}

// NewFilesClient creates a client for the files role at baseURL.
func NewFilesClient(baseURL string, httpClient *http.Client) *FilesClient {
	return &FilesClient{base: newBase(baseURL, httpClient)}
}

// Save stores content under filename and returns where it landed.
func (c *FilesClient) Save(ctx context.Context, filename, content string) (m.SavedFile, error) {
	var saved m.SavedFile

	err := c.do(ctx, http.MethodPost, "/save", server.SaveRequest{Filename: filename, Content: content}, &saved)

	return saved, err
}

// List returns the names of the annotated files.
func (c *FilesClient) List(ctx context.Context) ([]string, error) {
	var names []string

	err := c.do(ctx, http.MethodGet, "/files", nil, &names)

	return names, err
}
