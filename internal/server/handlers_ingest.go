// Package server - handlers_ingest.go serves job posting ingestion.
package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/resume-tailor/internal/ingestion"
	"github.com/jonathan/resume-tailor/internal/server/middleware"
	"github.com/jonathan/resume-tailor/internal/types"
)

// ingestJobRequest is the request body for POST /ingest/job.
type ingestJobRequest struct {
	URL        string `json:"url"`
	UseBrowser bool   `json:"use_browser,omitempty"`
}

// ingestJobResponse carries the fetched posting text and derived metadata.
type ingestJobResponse struct {
	URL      string            `json:"url"`
	Text     string            `json:"text"`
	Metadata types.JobMetadata `json:"metadata"`
	Rendered bool              `json:"rendered"`
}

// handleIngestJob fetches a job posting URL, extracts its readable text,
// and derives job metadata.
func (s *Server) handleIngestJob(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if !s.checkRateLimit(w, "ingest:"+userID.String()) {
		return
	}

	var req ingestJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.URL == "" {
		s.errorResponse(w, http.StatusBadRequest, "url is required")
		return
	}

	opts := ingestion.DefaultOptions()
	opts.UseBrowser = req.UseBrowser

	result, err := ingestion.FetchJobPosting(r.Context(), req.URL, opts)
	if err != nil {
		s.errorResponse(w, http.StatusBadGateway, err.Error())
		return
	}

	metadata := ingestion.GuessJobMetadata(result.Text, req.URL)
	if s.tailor != nil {
		if meta, err := s.tailor.ExtractJobMetadata(r.Context(), result.Text); err == nil && meta != nil {
			meta.URL = metadata.URL
			meta.Source = metadata.Source
			metadata = meta
		}
	}

	s.jsonResponse(w, http.StatusOK, ingestJobResponse{
		URL:      result.URL,
		Text:     result.Text,
		Metadata: *metadata,
		Rendered: result.Rendered,
	})
}
