package client

import (
	"context"
	"net/http"

	m "autocomment.dev/pkg/autocomment/internal/model"
	"autocomment.dev/pkg/autocomment/internal/server"
)

// CommentorClient calls POST /process on a commentor role.
type CommentorClient struct {
	base
}

// NewCommentorClient creates a client for the commentor at baseURL. A nil
// httpClient gets DefaultTimeout.
func NewCommentorClient(baseURL string, httpClient *http.Client) *CommentorClient {
	return &CommentorClient{base: newBase(baseURL, httpClient)}
}

// Process annotates code remotely.
func (c *CommentorClient) Process(ctx context.Context, code string, language m.Language) (m.ProcessingResult, error) {
	var result m.ProcessingResult

	err := c.do(ctx, http.MethodPost, "/process", server.ProcessRequest{Code: code, Language: language}, &result)

	return result, err
}
