package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-tailor/internal/types"
)

// SaveResume stores a structured resume for a user and returns its ID.
func (db *DB) SaveResume(ctx context.Context, userID uuid.UUID, structured *types.StructuredResume, rawText string) (uuid.UUID, error) {
	structuredJSON, err := json.Marshal(structured)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal structured resume: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO resumes (user_id, structured, raw_text)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		userID, structuredJSON, rawText,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save resume: %w", err)
	}
	return id, nil
}

// GetResume fetches a resume by ID, scoped to a user.
func (db *DB) GetResume(ctx context.Context, userID, resumeID uuid.UUID) (*Resume, error) {
	return db.scanResume(db.pool.QueryRow(ctx,
		`SELECT id, user_id, structured, raw_text, created_at
		 FROM resumes WHERE id = $1 AND user_id = $2`,
		resumeID, userID,
	))
}

// GetLatestResume fetches the most recently uploaded resume for a user.
func (db *DB) GetLatestResume(ctx context.Context, userID uuid.UUID) (*Resume, error) {
	return db.scanResume(db.pool.QueryRow(ctx,
		`SELECT id, user_id, structured, raw_text, created_at
		 FROM resumes WHERE user_id = $1
		 ORDER BY created_at DESC LIMIT 1`,
		userID,
	))
}

// ListResumes returns all resumes for a user, newest first.
func (db *DB) ListResumes(ctx context.Context, userID uuid.UUID) ([]Resume, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, structured, raw_text, created_at
		 FROM resumes WHERE user_id = $1
		 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	defer rows.Close()

	var resumes []Resume
	for rows.Next() {
		resume, err := db.scanResume(rows)
		if err != nil {
			return nil, err
		}
		resumes = append(resumes, *resume)
	}
	return resumes, rows.Err()
}

// DeleteResume removes a resume, scoped to a user.
func (db *DB) DeleteResume(ctx context.Context, userID, resumeID uuid.UUID) error {
	tag, err := db.pool.Exec(ctx,
		`DELETE FROM resumes WHERE id = $1 AND user_id = $2`,
		resumeID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete resume: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// scanRow is the subset of pgx.Row/pgx.Rows needed for scanning.
type scanRow interface {
	Scan(dest ...any) error
}

func (db *DB) scanResume(row scanRow) (*Resume, error) {
	var r Resume
	var structuredJSON []byte
	err := row.Scan(&r.ID, &r.UserID, &structuredJSON, &r.RawText, &r.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan resume: %w", err)
	}
	if err := json.Unmarshal(structuredJSON, &r.Structured); err != nil {
		return nil, fmt.Errorf("failed to unmarshal structured resume: %w", err)
	}
	return &r, nil
}
