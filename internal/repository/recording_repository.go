package repository

import (
	"context"
	"errors"
	"time"

	"athlete-portal/internal/database"

	"github.com/google/uuid"
)

var ErrRecordingNotFound = errors.New("recording not found")

type Recording struct {
	ID           uuid.UUID
	ProfileID    uuid.UUID
	Title        string
	URL          string
	Description  *string
	Verification string
	CreatedAt    time.Time
}

type RecordingRepository interface {
	ListByProfileID(ctx context.Context, profileID uuid.UUID) ([]Recording, error)
	Create(ctx context.Context, rec Recording) (Recording, error)
	Delete(ctx context.Context, id uuid.UUID, profileID uuid.UUID) error
}

type PostgresRecordingRepository struct {
	db database.DB
}

func NewPostgresRecordingRepository(db database.DB) *PostgresRecordingRepository {
	return &PostgresRecordingRepository{db: db}
}

func (r *PostgresRecordingRepository) ListByProfileID(ctx context.Context, profileID uuid.UUID) ([]Recording, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, profile_id, title, url, description, verification, created_at
		 FROM recordings
		 WHERE profile_id = $1
		 ORDER BY created_at DESC`,
		profileID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Recording, 0)
	for rows.Next() {
		var rec Recording
		if err := rows.Scan(&rec.ID, &rec.ProfileID, &rec.Title, &rec.URL, &rec.Description, &rec.Verification, &rec.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresRecordingRepository) Create(ctx context.Context, rec Recording) (Recording, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO recordings (id, profile_id, title, url, description, verification)
		 VALUES (gen_random_uuid(), $1, $2, $3, $4, $5)
		 RETURNING id, profile_id, title, url, description, verification, created_at`,
		rec.ProfileID, rec.Title, rec.URL, rec.Description, VerificationUnverified,
	)
	var saved Recording
	if err := row.Scan(&saved.ID, &saved.ProfileID, &saved.Title, &saved.URL, &saved.Description, &saved.Verification, &saved.CreatedAt); err != nil {
		return Recording{}, err
	}
	return saved, nil
}

func (r *PostgresRecordingRepository) Delete(ctx context.Context, id uuid.UUID, profileID uuid.UUID) error {
	affected, err := r.db.Exec(ctx,
		`DELETE FROM recordings WHERE id = $1 AND profile_id = $2`,
		id, profileID,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrRecordingNotFound
	}
	return nil
}
