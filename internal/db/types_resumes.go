package db

import (
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-tailor/internal/types"
)

// Resume is a stored master resume: the structured form plus a copy of the
// raw text it was extracted from.
type Resume struct {
	ID         uuid.UUID              `json:"id"`
	UserID     uuid.UUID              `json:"user_id"`
	Structured types.StructuredResume `json:"structured"`
	RawText    string                 `json:"raw_text,omitempty"`
	CreatedAt  time.Time              `json:"created_at"`
}
