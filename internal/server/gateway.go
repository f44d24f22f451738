package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	m "autocomment.dev/pkg/autocomment/internal/model"
)

// GatewayFilename is the name the gateway saves processed snippets under.
const GatewayFilename = "commented_code.js"

// CommentorService is the remote commentor role as seen by the gateway.
type CommentorService interface {
	Process(ctx context.Context, code string, language m.Language) (m.ProcessingResult, error)
}

// FilesService is the remote files role as seen by the gateway.
type FilesService interface {
	Save(ctx context.Context, filename, content string) (m.SavedFile, error)
	List(ctx context.Context) ([]string, error)
}

// GatewayResponse is a processing result together with the saved file.
type GatewayResponse struct {
	m.ProcessingResult
	FileInfo m.SavedFile `json:"fileInfo"`
}

// upstreamStatus is implemented by client errors carrying the upstream status.
type upstreamStatus interface {
	HTTPStatus() int
}

// MountGateway registers the gateway role: POST /api/process and GET /api/files.
func (s *Server) MountGateway(commentor CommentorService, files FilesService) {
	s.handle("POST /api/process", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req ProcessRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			decodeError(w, r, err)
			return
		}

		if req.Code == "" {
			writeProblem(w, r, http.StatusBadRequest, "Bad Request", "No code provided")
			return
		}

		result, err := commentor.Process(r.Context(), req.Code, req.Language)
		if err != nil {
			upstreamProblem(w, r, "commentor", err)
			return
		}

		saved, err := files.Save(r.Context(), GatewayFilename, result.CommentedCode)
		if err != nil {
			upstreamProblem(w, r, "files", err)
			return
		}

		writeJSON(w, r, http.StatusOK, GatewayResponse{ProcessingResult: result, FileInfo: saved})
	}))

	s.handle("GET /api/files", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		names, err := files.List(r.Context())
		if err != nil {
			upstreamProblem(w, r, "files", err)
			return
		}

		writeJSON(w, r, http.StatusOK, names)
	}))
}

// upstreamProblem passes client errors (4xx) through and reports everything
// else as 502.
func upstreamProblem(w http.ResponseWriter, r *http.Request, upstream string, err error) {
	slog.Error("upstream call failed",
		"upstream", upstream,
		"request_id", RequestIDFromContext(r.Context()),
		"error", err,
	)

	var status upstreamStatus
	if errors.As(err, &status) && status.HTTPStatus() >= 400 && status.HTTPStatus() < 500 {
		writeProblem(w, r, status.HTTPStatus(), http.StatusText(status.HTTPStatus()), err.Error())
		return
	}

	writeProblem(w, r, http.StatusBadGateway, "Bad Gateway", err.Error())
}
