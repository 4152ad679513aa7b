// Package server - handlers_rewrite.go serves single-section LLM rewrites.
package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/resume-tailor/internal/server/middleware"
)

// rewriteRequest is the request body for POST /rewrite.
type rewriteRequest struct {
	OriginalText string `json:"original_text"`
	Instruction  string `json:"instruction"`
	JobContext   string `json:"job_context,omitempty"`
}

// handleRewrite rewrites one resume section (a summary, a bullet) per the
// caller's instruction, optionally steering toward a job description.
func (s *Server) handleRewrite(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if !s.checkRateLimit(w, "rewrite:"+userID.String()) {
		return
	}

	if s.tailor == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "Section rewriting requires an LLM API key")
		return
	}

	var req rewriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.OriginalText == "" {
		s.errorResponse(w, http.StatusBadRequest, "original_text is required")
		return
	}
	if req.Instruction == "" {
		s.errorResponse(w, http.StatusBadRequest, "instruction is required")
		return
	}

	rewritten, err := s.tailor.RewriteSection(r.Context(), req.OriginalText, req.Instruction, req.JobContext)
	if err != nil {
		s.errorResponse(w, http.StatusBadGateway, "Failed to rewrite section: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"rewritten": rewritten})
}
