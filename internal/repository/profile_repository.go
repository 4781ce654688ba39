package repository

import (
	"context"
	"errors"
	"time"

	"athlete-portal/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrProfileNotFound = errors.New("profile not found")

// AthleteProfile is keyed one-to-one by its owning user. Optional columns are
// pointers; nil means NULL.
type AthleteProfile struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Sport          *string
	Positions      []string
	Bio            *string
	HeightCm       *float64
	WeightKg       *float64
	GraduationYear *int
	Location       *string
	PrimaryEmail   *string
	Phone          *string
	WebsiteURL     *string
	InstagramURL   *string
	YouTubeURL     *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (AthleteProfile, error)
	// UpsertWithUserName writes the user's display name and the profile row
	// in a single transaction, so a failed profile write never leaves a
	// half-updated identity.
	UpsertWithUserName(ctx context.Context, userID uuid.UUID, name string, p AthleteProfile) (AthleteProfile, error)
}

type PostgresProfileRepository struct {
	db database.DB
}

func NewPostgresProfileRepository(db database.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

const profileColumns = `id, user_id, sport, positions, bio, height_cm, weight_kg, graduation_year,
	location, primary_email, phone, website_url, instagram_url, youtube_url, created_at, updated_at`

func (r *PostgresProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (AthleteProfile, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM athlete_profiles WHERE user_id = $1`,
		userID,
	)
	return scanProfile(row)
}

func (r *PostgresProfileRepository) UpsertWithUserName(ctx context.Context, userID uuid.UUID, name string, p AthleteProfile) (AthleteProfile, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return AthleteProfile{}, err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	affected, err := tx.Exec(ctx,
		`UPDATE users SET name = $1, updated_at = now() WHERE id = $2`,
		name, userID,
	)
	if err != nil {
		return AthleteProfile{}, err
	}
	if affected == 0 {
		return AthleteProfile{}, ErrProfileNotFound
	}

	row := tx.QueryRow(ctx,
		`INSERT INTO athlete_profiles
			(id, user_id, sport, positions, bio, height_cm, weight_kg, graduation_year,
			 location, primary_email, phone, website_url, instagram_url, youtube_url)
		 VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		 ON CONFLICT (user_id) DO UPDATE SET
			sport = EXCLUDED.sport,
			positions = EXCLUDED.positions,
			bio = EXCLUDED.bio,
			height_cm = EXCLUDED.height_cm,
			weight_kg = EXCLUDED.weight_kg,
			graduation_year = EXCLUDED.graduation_year,
			location = EXCLUDED.location,
			primary_email = EXCLUDED.primary_email,
			phone = EXCLUDED.phone,
			website_url = EXCLUDED.website_url,
			instagram_url = EXCLUDED.instagram_url,
			youtube_url = EXCLUDED.youtube_url,
			updated_at = now()
		 RETURNING `+profileColumns,
		userID, p.Sport, p.Positions, p.Bio, p.HeightCm, p.WeightKg, p.GraduationYear,
		p.Location, p.PrimaryEmail, p.Phone, p.WebsiteURL, p.InstagramURL, p.YouTubeURL,
	)
	saved, err := scanProfile(row)
	if err != nil {
		return AthleteProfile{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return AthleteProfile{}, err
	}
	return saved, nil
}

func scanProfile(row database.Row) (AthleteProfile, error) {
	var p AthleteProfile
	err := row.Scan(
		&p.ID, &p.UserID, &p.Sport, &p.Positions, &p.Bio, &p.HeightCm, &p.WeightKg,
		&p.GraduationYear, &p.Location, &p.PrimaryEmail, &p.Phone,
		&p.WebsiteURL, &p.InstagramURL, &p.YouTubeURL, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return AthleteProfile{}, ErrProfileNotFound
		}
		return AthleteProfile{}, err
	}
	return p, nil
}
