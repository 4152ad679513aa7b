package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-tailor/internal/types"
)

// ApplicationCreateInput carries the fields needed to persist an application.
type ApplicationCreateInput struct {
	UserID         uuid.UUID
	ResumeID       uuid.UUID
	JobDescription string
	JobMetadata    types.JobMetadata
	TailoredResume types.StructuredResume
	ATSScore       int
	Keywords       types.Keywords
}

// CreateApplication inserts a new application record and returns it.
func (db *DB) CreateApplication(ctx context.Context, input *ApplicationCreateInput) (*types.Application, error) {
	metadataJSON, err := json.Marshal(input.JobMetadata)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal job metadata: %w", err)
	}
	resumeJSON, err := json.Marshal(input.TailoredResume)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal tailored resume: %w", err)
	}
	keywordsJSON, err := json.Marshal(input.Keywords)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal keywords: %w", err)
	}

	return db.scanApplication(db.pool.QueryRow(ctx,
		`INSERT INTO applications
		  (user_id, resume_id, job_description, job_metadata, tailored_resume, ats_score, keywords, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, user_id, resume_id, job_description, job_metadata, tailored_resume,
		           ats_score, keywords, status, applied_date, created_at, updated_at`,
		input.UserID, input.ResumeID, input.JobDescription, metadataJSON,
		resumeJSON, input.ATSScore, keywordsJSON, types.StatusApplied,
	))
}

// GetApplication fetches an application by ID, scoped to a user.
func (db *DB) GetApplication(ctx context.Context, userID, appID uuid.UUID) (*types.Application, error) {
	return db.scanApplication(db.pool.QueryRow(ctx,
		`SELECT id, user_id, resume_id, job_description, job_metadata, tailored_resume,
		        ats_score, keywords, status, applied_date, created_at, updated_at
		 FROM applications WHERE id = $1 AND user_id = $2`,
		appID, userID,
	))
}

// ListApplications returns all applications for a user, newest first.
func (db *DB) ListApplications(ctx context.Context, userID uuid.UUID) ([]types.Application, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, resume_id, job_description, job_metadata, tailored_resume,
		        ats_score, keywords, status, applied_date, created_at, updated_at
		 FROM applications WHERE user_id = $1
		 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	defer rows.Close()

	var apps []types.Application
	for rows.Next() {
		app, err := db.scanApplication(rows)
		if err != nil {
			return nil, err
		}
		apps = append(apps, *app)
	}
	return apps, rows.Err()
}

// UpdateApplicationStatus changes the funnel status of an application.
func (db *DB) UpdateApplicationStatus(ctx context.Context, userID, appID uuid.UUID, status types.ApplicationStatus) error {
	tag, err := db.pool.Exec(ctx,
		`UPDATE applications SET status = $1, updated_at = NOW()
		 WHERE id = $2 AND user_id = $3`,
		status, appID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to update application status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateApplicationScore replaces the stored score and keywords of an
// application, used by the batch rescore path.
func (db *DB) UpdateApplicationScore(ctx context.Context, appID uuid.UUID, score int, keywords types.Keywords) error {
	keywordsJSON, err := json.Marshal(keywords)
	if err != nil {
		return fmt.Errorf("failed to marshal keywords: %w", err)
	}
	tag, err := db.pool.Exec(ctx,
		`UPDATE applications SET ats_score = $1, keywords = $2, updated_at = NOW()
		 WHERE id = $3`,
		score, keywordsJSON, appID,
	)
	if err != nil {
		return fmt.Errorf("failed to update application score: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteApplication removes an application, scoped to a user.
func (db *DB) DeleteApplication(ctx context.Context, userID, appID uuid.UUID) error {
	tag, err := db.pool.Exec(ctx,
		`DELETE FROM applications WHERE id = $1 AND user_id = $2`,
		appID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete application: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ListAllApplications returns every stored application, oldest first.
// Used by the batch rescore command after scoring rules change.
func (db *DB) ListAllApplications(ctx context.Context) ([]types.Application, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, resume_id, job_description, job_metadata, tailored_resume,
		        ats_score, keywords, status, applied_date, created_at, updated_at
		 FROM applications
		 ORDER BY created_at ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	defer rows.Close()

	var apps []types.Application
	for rows.Next() {
		app, err := db.scanApplication(rows)
		if err != nil {
			return nil, err
		}
		apps = append(apps, *app)
	}
	return apps, rows.Err()
}

// CountApplicationsSince counts a user's applications created at or after
// the given time. Used for the free-tier monthly quota check.
func (db *DB) CountApplicationsSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error) {
	var count int
	err := db.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM applications WHERE user_id = $1 AND created_at >= $2`,
		userID, since,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count applications: %w", err)
	}
	return count, nil
}

func (db *DB) scanApplication(row scanRow) (*types.Application, error) {
	var app types.Application
	var metadataJSON, resumeJSON, keywordsJSON []byte
	err := row.Scan(
		&app.ID, &app.UserID, &app.ResumeID, &app.JobDescription,
		&metadataJSON, &resumeJSON, &app.ATSScore, &keywordsJSON,
		&app.Status, &app.AppliedDate, &app.CreatedAt, &app.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan application: %w", err)
	}

	if err := json.Unmarshal(metadataJSON, &app.JobMetadata); err != nil {
		return nil, fmt.Errorf("failed to unmarshal job metadata: %w", err)
	}
	if err := json.Unmarshal(resumeJSON, &app.TailoredResume); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tailored resume: %w", err)
	}
	if err := json.Unmarshal(keywordsJSON, &app.Keywords); err != nil {
		return nil, fmt.Errorf("failed to unmarshal keywords: %w", err)
	}
	return &app, nil
}
