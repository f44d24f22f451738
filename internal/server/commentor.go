package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"autocomment.dev/pkg/autocomment/internal/domain"
	m "autocomment.dev/pkg/autocomment/internal/model"
)

// ProcessRequest is the body of POST /process and POST /api/process.
type ProcessRequest struct {
	Code     string     `json:"code"`
	Language m.Language `json:"language,omitempty"`
}

// MountCommentor registers the commentor role: POST /process.
func (s *Server) MountCommentor(commentor domain.Commentor) {
	s.handle("POST /process", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req ProcessRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			decodeError(w, r, err)
			return
		}

		if req.Code == "" {
			writeProblem(w, r, http.StatusBadRequest, "Bad Request", "No code provided")
			return
		}

		result, err := commentor.Process(req.Code, req.Language)
		if err != nil {
			var unsupported *domain.UnsupportedLanguageError
			if errors.As(err, &unsupported) {
				writeProblem(w, r, http.StatusBadRequest, "Unsupported Language", err.Error())
				return
			}

			slog.Error("process failed", "request_id", RequestIDFromContext(r.Context()), "error", err)
			writeProblem(w, r, http.StatusInternalServerError, "Internal Server Error", err.Error())

			return
		}

		s.metrics.ObserveResult(result.Stats)
		writeJSON(w, r, http.StatusOK, result)
	}))
}
