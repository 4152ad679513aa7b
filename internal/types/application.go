package types

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ApplicationStatus tracks where a tailored application is in the hiring funnel.
type ApplicationStatus string

const (
	StatusApplied   ApplicationStatus = "applied"
	StatusScreening ApplicationStatus = "screening"
	StatusInterview ApplicationStatus = "interview"
	StatusRejected  ApplicationStatus = "rejected"
	StatusOffer     ApplicationStatus = "offer"
)

// ValidStatus reports whether s is a known application status.
func ValidStatus(s ApplicationStatus) bool {
	switch s {
	case StatusApplied, StatusScreening, StatusInterview, StatusRejected, StatusOffer:
		return true
	}
	return false
}

// JobMetadata is the lightweight metadata extracted from a job description.
type JobMetadata struct {
	Company  string `json:"company,omitempty"`
	Role     string `json:"role,omitempty"`
	Location string `json:"location,omitempty"`
	URL      string `json:"url,omitempty"`
	Source   string `json:"source,omitempty"`
}

// Application is one tailored-resume application record.
type Application struct {
	ID             uuid.UUID         `json:"id"`
	UserID         uuid.UUID         `json:"user_id"`
	ResumeID       uuid.UUID         `json:"resume_id"`
	JobDescription string            `json:"job_description"`
	JobMetadata    JobMetadata       `json:"job_metadata"`
	TailoredResume StructuredResume  `json:"tailored_resume"`
	ATSScore       int               `json:"ats_score"`
	Keywords       Keywords          `json:"keywords"`
	Status         ApplicationStatus `json:"status"`
	AppliedDate    *time.Time        `json:"applied_date,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// CreateApplicationRequest is the request body for creating an application.
// TailoredResume is optional; when omitted the stored resume is scored as-is.
type CreateApplicationRequest struct {
	ResumeID       string            `json:"resume_id" validate:"required,uuid"`
	JobDescription string            `json:"job_description" validate:"required,min=1"`
	TailoredResume *StructuredResume `json:"tailored_resume,omitempty"`
	Tailor         bool              `json:"tailor,omitempty"` // ask the LLM to tailor before scoring
}

// Validate validates the CreateApplicationRequest using the validator.
func (r *CreateApplicationRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// UpdateApplicationStatusRequest updates the status of an application.
type UpdateApplicationStatusRequest struct {
	Status ApplicationStatus `json:"status" validate:"required"`
}

// Validate validates the UpdateApplicationStatusRequest.
func (r *UpdateApplicationStatusRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return err
	}
	if !ValidStatus(r.Status) {
		return fmt.Errorf("invalid status: %s", r.Status)
	}
	return nil
}

// ScoreRequest is the request body for the stateless scoring endpoint.
type ScoreRequest struct {
	Resume         *StructuredResume `json:"resume" validate:"required"`
	JobDescription string            `json:"job_description" validate:"required,min=1"`
}

// Validate validates the ScoreRequest using the validator.
func (r *ScoreRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
