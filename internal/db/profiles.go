package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/interview-coach/internal/types"
)

// ProfileSummary identifies one stored candidate profile.
type ProfileSummary struct {
	ID            uuid.UUID `json:"id"`
	CandidateName string    `json:"candidate_name"`
	CreatedAt     time.Time `json:"created_at"`
}

// SaveProfile stores a parsed resume as a JSON document and returns its ID.
// The candidate name is denormalized from the headline for listing.
func (db *DB) SaveProfile(ctx context.Context, resume *types.ParsedResume) (uuid.UUID, error) {
	content, err := json.Marshal(resume)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal parsed resume: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO profiles (candidate_name, content)
		 VALUES ($1, $2)
		 RETURNING id`,
		resume.Headline.Name, content,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save profile: %w", err)
	}
	return id, nil
}

// GetProfile loads a stored parsed resume by ID. Returns nil, nil when no
// profile exists with that ID.
func (db *DB) GetProfile(ctx context.Context, id uuid.UUID) (*types.ParsedResume, error) {
	var content []byte
	err := db.pool.QueryRow(ctx,
		`SELECT content FROM profiles WHERE id = $1`, id,
	).Scan(&content)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	var resume types.ParsedResume
	if err := json.Unmarshal(content, &resume); err != nil {
		return nil, fmt.Errorf("failed to unmarshal parsed resume: %w", err)
	}
	return &resume, nil
}

// ListProfiles returns summaries of all stored profiles, newest first.
func (db *DB) ListProfiles(ctx context.Context) ([]ProfileSummary, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, candidate_name, created_at FROM profiles ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	defer rows.Close()

	var summaries []ProfileSummary
	for rows.Next() {
		var s ProfileSummary
		if err := rows.Scan(&s.ID, &s.CandidateName, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan profile row: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read profile rows: %w", err)
	}
	return summaries, nil
}

// DeleteProfile removes a stored profile. Deleting a missing profile is not
// an error.
func (db *DB) DeleteProfile(ctx context.Context, id uuid.UUID) error {
	_, err := db.pool.Exec(ctx, `DELETE FROM profiles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	return nil
}
