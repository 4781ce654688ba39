package repository

import (
	"context"
	"errors"
	"time"

	"athlete-portal/internal/database"

	"github.com/google/uuid"
)

var ErrStatNotFound = errors.New("stat not found")

// Stat carries a numeric and/or a string value; either may be NULL but the
// portal never stores both as NULL-only noise (the usecase requires one).
type Stat struct {
	ID           uuid.UUID
	ProfileID    uuid.UUID
	Category     string
	Name         string
	Unit         *string
	ValueNumber  *float64
	ValueString  *string
	Verification string
	CreatedAt    time.Time
}

type StatRepository interface {
	ListByProfileID(ctx context.Context, profileID uuid.UUID) ([]Stat, error)
	Create(ctx context.Context, s Stat) (Stat, error)
	// Delete is keyed by both the stat id and the owner's profile id, so a
	// request can only remove rows belonging to the resolved identity.
	Delete(ctx context.Context, id uuid.UUID, profileID uuid.UUID) error
}

type PostgresStatRepository struct {
	db database.DB
}

func NewPostgresStatRepository(db database.DB) *PostgresStatRepository {
	return &PostgresStatRepository{db: db}
}

func (r *PostgresStatRepository) ListByProfileID(ctx context.Context, profileID uuid.UUID) ([]Stat, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, profile_id, category, name, unit, value_number, value_string, verification, created_at
		 FROM stats
		 WHERE profile_id = $1
		 ORDER BY created_at DESC`,
		profileID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Stat, 0)
	for rows.Next() {
		var s Stat
		if err := rows.Scan(&s.ID, &s.ProfileID, &s.Category, &s.Name, &s.Unit, &s.ValueNumber, &s.ValueString, &s.Verification, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresStatRepository) Create(ctx context.Context, s Stat) (Stat, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO stats (id, profile_id, category, name, unit, value_number, value_string, verification)
		 VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, profile_id, category, name, unit, value_number, value_string, verification, created_at`,
		s.ProfileID, s.Category, s.Name, s.Unit, s.ValueNumber, s.ValueString, VerificationUnverified,
	)
	var saved Stat
	if err := row.Scan(&saved.ID, &saved.ProfileID, &saved.Category, &saved.Name, &saved.Unit, &saved.ValueNumber, &saved.ValueString, &saved.Verification, &saved.CreatedAt); err != nil {
		return Stat{}, err
	}
	return saved, nil
}

func (r *PostgresStatRepository) Delete(ctx context.Context, id uuid.UUID, profileID uuid.UUID) error {
	affected, err := r.db.Exec(ctx,
		`DELETE FROM stats WHERE id = $1 AND profile_id = $2`,
		id, profileID,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrStatNotFound
	}
	return nil
}
