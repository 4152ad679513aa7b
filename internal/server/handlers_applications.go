// Package server - handlers_applications.go serves the tailored-application
// lifecycle: create (quota check, optional LLM tailoring, ATS scoring),
// list, status updates, deletion, and document download.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-tailor/internal/ats"
	"github.com/jonathan/resume-tailor/internal/db"
	"github.com/jonathan/resume-tailor/internal/docgen"
	"github.com/jonathan/resume-tailor/internal/ingestion"
	"github.com/jonathan/resume-tailor/internal/server/middleware"
	"github.com/jonathan/resume-tailor/internal/types"
)

// createApplicationResponse mirrors the original API shape: the stored
// application plus the score breakdown and raw missing keywords, which are
// not persisted on the application row.
type createApplicationResponse struct {
	Application     *types.Application `json:"application"`
	Breakdown       types.ATSBreakdown `json:"breakdown"`
	Recommendations []string           `json:"recommendations"`
	MissingKeywords []string           `json:"missingKeywords"`
}

// handleCreateApplication creates a tailored application: checks the
// free-tier quota, optionally tailors the stored resume with the LLM,
// scores the result against the job description, and persists everything.
func (s *Server) handleCreateApplication(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if !s.checkRateLimit(w, "applications:"+userID.String()) {
		return
	}

	var req types.CreateApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	resumeID, err := uuid.Parse(req.ResumeID)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid resume ID format")
		return
	}

	if err := s.checkApplicationQuota(r, userID); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	resume, err := s.db.GetResume(r.Context(), userID, resumeID)
	if errors.Is(err, db.ErrNotFound) {
		s.errorResponse(w, http.StatusNotFound, "Resume not found")
		return
	}
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to fetch resume")
		return
	}

	tailored, err := s.resolveTailoredResume(r, &req, resume)
	if err != nil {
		s.errorResponse(w, http.StatusBadGateway, err.Error())
		return
	}

	result, err := ats.CalculateATSScore(tailored, req.JobDescription)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	metadata := s.resolveJobMetadata(r, req.JobDescription)

	app, err := s.db.CreateApplication(r.Context(), &db.ApplicationCreateInput{
		UserID:         userID,
		ResumeID:       resumeID,
		JobDescription: req.JobDescription,
		JobMetadata:    metadata,
		TailoredResume: *tailored,
		ATSScore:       result.Score,
		Keywords:       result.Keywords,
	})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to save application")
		return
	}

	s.jsonResponse(w, http.StatusCreated, createApplicationResponse{
		Application:     app,
		Breakdown:       result.Breakdown,
		Recommendations: result.Recommendations,
		MissingKeywords: result.MissingKeywords,
	})
}

// checkApplicationQuota enforces the free-tier monthly application limit.
func (s *Server) checkApplicationQuota(r *http.Request, userID uuid.UUID) error {
	user, err := s.db.GetUser(r.Context(), userID)
	if errors.Is(err, db.ErrNotFound) {
		return &ErrUserNotFound{UserID: userID}
	}
	if err != nil {
		return fmt.Errorf("failed to fetch user: %w", err)
	}
	if user.Subscription == db.TierPro {
		return nil
	}

	count, err := s.db.CountApplicationsSince(r.Context(), userID, monthStart(time.Now()))
	if err != nil {
		return fmt.Errorf("failed to count applications: %w", err)
	}
	if count >= db.FreeTierApplicationLimit {
		return &ErrQuotaExceeded{Limit: db.FreeTierApplicationLimit}
	}
	return nil
}

// monthStart returns the first instant of now's calendar month in UTC.
// The quota window boundary is UTC regardless of the caller's zone.
func monthStart(now time.Time) time.Time {
	now = now.UTC()
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// resolveTailoredResume decides which resume gets scored and stored: the
// client-provided tailored resume, an LLM-tailored copy, or the stored
// master as-is.
func (s *Server) resolveTailoredResume(r *http.Request, req *types.CreateApplicationRequest, resume *db.Resume) (*types.StructuredResume, error) {
	if req.TailoredResume != nil {
		return req.TailoredResume, nil
	}
	if req.Tailor {
		if s.tailor == nil {
			return nil, fmt.Errorf("tailoring requires an LLM API key")
		}
		tailored, err := s.tailor.TailorResume(r.Context(), &resume.Structured, req.JobDescription)
		if err != nil {
			return nil, fmt.Errorf("failed to tailor resume: %w", err)
		}
		return tailored, nil
	}
	return &resume.Structured, nil
}

// resolveJobMetadata extracts job metadata via the LLM when configured,
// falling back to heuristic extraction.
func (s *Server) resolveJobMetadata(r *http.Request, jobDescription string) types.JobMetadata {
	if s.tailor != nil {
		meta, err := s.tailor.ExtractJobMetadata(r.Context(), jobDescription)
		if err == nil && meta != nil {
			return *meta
		}
		log.Printf("LLM metadata extraction failed, using heuristics: %v", err)
	}
	return *ingestion.GuessJobMetadata(jobDescription, "")
}

// handleListApplications returns the caller's applications, newest first.
func (s *Server) handleListApplications(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	apps, err := s.db.ListApplications(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list applications")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"applications": apps})
}

// handleGetApplication returns one application by ID.
func (s *Server) handleGetApplication(w http.ResponseWriter, r *http.Request) {
	userID, appID, ok := s.applicationScope(w, r)
	if !ok {
		return
	}

	app, err := s.db.GetApplication(r.Context(), userID, appID)
	if errors.Is(err, db.ErrNotFound) {
		s.errorResponse(w, http.StatusNotFound, "Application not found")
		return
	}
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to fetch application")
		return
	}

	s.jsonResponse(w, http.StatusOK, app)
}

// handleUpdateApplicationStatus moves an application through the hiring
// funnel (applied, screening, interview, rejected, offer).
func (s *Server) handleUpdateApplicationStatus(w http.ResponseWriter, r *http.Request) {
	userID, appID, ok := s.applicationScope(w, r)
	if !ok {
		return
	}

	var req types.UpdateApplicationStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.db.UpdateApplicationStatus(r.Context(), userID, appID, req.Status); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			s.errorResponse(w, http.StatusNotFound, "Application not found")
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Failed to update application")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"status": req.Status})
}

// handleDeleteApplication deletes one application by ID.
func (s *Server) handleDeleteApplication(w http.ResponseWriter, r *http.Request) {
	userID, appID, ok := s.applicationScope(w, r)
	if !ok {
		return
	}

	if err := s.db.DeleteApplication(r.Context(), userID, appID); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			s.errorResponse(w, http.StatusNotFound, "Application not found")
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Failed to delete application")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleApplicationDocument renders the application's tailored resume as a
// downloadable document. Format defaults to docx; html is also supported.
func (s *Server) handleApplicationDocument(w http.ResponseWriter, r *http.Request) {
	userID, appID, ok := s.applicationScope(w, r)
	if !ok {
		return
	}

	app, err := s.db.GetApplication(r.Context(), userID, appID)
	if errors.Is(err, db.ErrNotFound) {
		s.errorResponse(w, http.StatusNotFound, "Application not found")
		return
	}
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to fetch application")
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "docx"
	}

	data, contentType, err := docgen.ForFormat(format).Render(&app.TailoredResume)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to render document")
		return
	}

	filename := fmt.Sprintf("resume-%s.%s", appID, format)
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		log.Printf("Error writing document response: %v", err)
	}
}

// applicationScope pulls the authenticated user and the {id} path value.
// On failure it writes the error response and returns ok=false.
func (s *Server) applicationScope(w http.ResponseWriter, r *http.Request) (uuid.UUID, uuid.UUID, bool) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return uuid.Nil, uuid.Nil, false
	}

	appID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid application ID format")
		return uuid.Nil, uuid.Nil, false
	}

	return userID, appID, true
}
