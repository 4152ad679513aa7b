// Package server - handlers_resumes.go serves master resume CRUD.
package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/jonathan/resume-tailor/internal/db"
	"github.com/jonathan/resume-tailor/internal/ingestion"
	"github.com/jonathan/resume-tailor/internal/schemas"
	"github.com/jonathan/resume-tailor/internal/server/middleware"
	"github.com/jonathan/resume-tailor/internal/types"
)

// maxUploadSize caps resume file uploads at 10 MB.
const maxUploadSize = 10 << 20

// uploadResumeJSON is the JSON body for pre-structured resume uploads.
type uploadResumeJSON struct {
	Structured *types.StructuredResume `json:"structured"`
	RawText    string                  `json:"raw_text,omitempty"`
}

// handleUploadResume stores a master resume. Two content types are
// accepted: multipart file uploads (PDF, DOCX, plain text) that go through
// extraction and LLM structuring, and application/json bodies carrying an
// already structured resume.
func (s *Server) handleUploadResume(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var structured *types.StructuredResume
	var rawText string

	contentType := r.Header.Get("Content-Type")
	switch {
	case strings.HasPrefix(contentType, "application/json"):
		var body uploadResumeJSON
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if body.Structured == nil {
			s.errorResponse(w, http.StatusBadRequest, "structured resume is required")
			return
		}
		structured = body.Structured
		rawText = body.RawText

	case strings.HasPrefix(contentType, "multipart/form-data"):
		structured, rawText = s.structureUploadedFile(w, r)
		if structured == nil {
			// structureUploadedFile already wrote the error response
			return
		}

	default:
		s.errorResponse(w, http.StatusUnsupportedMediaType, "Use multipart/form-data or application/json")
		return
	}

	// Reject documents that do not conform before persisting
	encoded, err := json.Marshal(structured)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to encode resume")
		return
	}
	if err := schemas.ValidateStructuredResume(encoded); err != nil {
		var ve *schemas.ValidationError
		if errors.As(err, &ve) {
			s.errorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Schema validation failed")
		return
	}

	resumeID, err := s.db.SaveResume(r.Context(), userID, structured, rawText)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to save resume")
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]any{
		"id":         resumeID,
		"structured": structured,
	})
}

// structureUploadedFile extracts text from the uploaded file and structures
// it with the LLM. On failure it writes the error response and returns a
// nil resume.
func (s *Server) structureUploadedFile(w http.ResponseWriter, r *http.Request) (*types.StructuredResume, string) {
	if s.structurer == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "Resume structuring requires an LLM API key")
		return nil, ""
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart form")
		return nil, ""
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "file field is required")
		return nil, ""
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadSize))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read file")
		return nil, ""
	}

	mimeType := header.Header.Get("Content-Type")
	rawText, err := ingestion.ExtractFileText(data, mimeType)
	if err != nil {
		s.errorResponse(w, http.StatusUnsupportedMediaType, err.Error())
		return nil, ""
	}
	if strings.TrimSpace(rawText) == "" {
		s.errorResponse(w, http.StatusBadRequest, "No text could be extracted from the file")
		return nil, ""
	}

	structured, err := s.structurer.Structure(r.Context(), rawText)
	if err != nil {
		s.errorResponse(w, http.StatusBadGateway, "Failed to structure resume: "+err.Error())
		return nil, ""
	}

	return structured, rawText
}

// handleListResumes returns the caller's stored resumes, newest first.
func (s *Server) handleListResumes(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	resumes, err := s.db.ListResumes(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list resumes")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"resumes": resumes})
}

// handleGetLatestResume returns the caller's most recently stored resume.
func (s *Server) handleGetLatestResume(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	resume, err := s.db.GetLatestResume(r.Context(), userID)
	if errors.Is(err, db.ErrNotFound) {
		s.errorResponse(w, http.StatusNotFound, "No resumes stored")
		return
	}
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to fetch resume")
		return
	}

	s.jsonResponse(w, http.StatusOK, resume)
}

// handleGetResume returns one stored resume by ID.
func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	resumeID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid resume ID format")
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

	s.jsonResponse(w, http.StatusOK, resume)
}

// handleDeleteResume deletes one stored resume by ID.
func (s *Server) handleDeleteResume(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	resumeID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid resume ID format")
		return
	}

	if err := s.db.DeleteResume(r.Context(), userID, resumeID); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			s.errorResponse(w, http.StatusNotFound, "Resume not found")
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Failed to delete resume")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
