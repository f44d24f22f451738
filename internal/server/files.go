package server

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"autocomment.dev/pkg/autocomment/internal/adapter"
)

// SaveRequest is the body of POST /save. CommentedCode is accepted as an
// alias of Content.
type SaveRequest struct {
	Filename      string `json:"filename"`
	Content       string `json:"content,omitempty"`
	CommentedCode string `json:"commentedCode,omitempty"`
}

// MountFiles registers the files role: POST /save and GET /files.
func (s *Server) MountFiles(files adapter.FileManager) {
	s.handle("POST /save", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req SaveRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			decodeError(w, r, err)
			return
		}

		content := req.Content
		if content == "" {
			content = req.CommentedCode
		}

		if req.Filename == "" || content == "" {
			writeProblem(w, r, http.StatusBadRequest, "Bad Request", "Missing data")
			return
		}

		saved, err := files.SaveCommentedFile(r.Context(), req.Filename, content)
		if err != nil {
			slog.Error("save failed", "request_id", RequestIDFromContext(r.Context()), "error", err)
			writeProblem(w, r, http.StatusInternalServerError, "Internal Server Error", err.Error())

			return
		}

		writeJSON(w, r, http.StatusOK, saved)
	}))

	s.handle("GET /files", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		names, err := files.ListCommentedFiles(r.Context())
		if err != nil {
			writeProblem(w, r, http.StatusInternalServerError, "Internal Server Error", err.Error())
			return
		}

		writeJSON(w, r, http.StatusOK, names)
	}))
}
