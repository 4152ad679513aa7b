package db

import (
	"time"

	"github.com/google/uuid"
)

// Subscription tiers. The free tier is capped at a fixed number of
// tailored applications per month.
const (
	TierFree = "free"
	TierPro  = "pro"
)

// FreeTierApplicationLimit is the number of applications a free-tier user
// may create per month.
const FreeTierApplicationLimit = 10

// User represents a registered account
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-" db:"password_hash"` // Never serialize to JSON
	Subscription string    `json:"subscription"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
