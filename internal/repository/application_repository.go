package repository

import (
	"context"
	"errors"
	"time"

	"athlete-portal/internal/database"

	"github.com/google/uuid"
)

var ErrApplicationNotFound = errors.New("application not found")

const ApplicationStatusSubmitted = "SUBMITTED"

// Application links an athlete to a program. There is deliberately no unique
// constraint on (athlete_user_id, program_id): repeated submissions create
// repeated rows, matching observed behavior.
type Application struct {
	ID            uuid.UUID
	AthleteUserID uuid.UUID
	ProgramID     uuid.UUID
	Status        string
	Withdrawn     bool
	SubmittedAt   time.Time
	CreatedAt     time.Time

	ProgramName  string
	ProgramSport string
	AcademyName  string
}

type ApplicationRepository interface {
	ListByAthlete(ctx context.Context, athleteUserID uuid.UUID) ([]Application, error)
	Create(ctx context.Context, a Application) (Application, error)
	// Withdraw soft-deletes: the row stays listed, flagged withdrawn. Scoped
	// to the requesting athlete.
	Withdraw(ctx context.Context, id uuid.UUID, athleteUserID uuid.UUID) error
}

type PostgresApplicationRepository struct {
	db database.DB
}

func NewPostgresApplicationRepository(db database.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

func (r *PostgresApplicationRepository) ListByAthlete(ctx context.Context, athleteUserID uuid.UUID) ([]Application, error) {
	rows, err := r.db.Query(ctx,
		`SELECT ap.id, ap.athlete_user_id, ap.program_id, ap.status, ap.withdrawn, ap.submitted_at, ap.created_at,
		        p.name, p.sport, a.name
		 FROM applications ap
		 JOIN programs p ON p.id = ap.program_id
		 JOIN academies a ON a.id = p.academy_id
		 WHERE ap.athlete_user_id = $1
		 ORDER BY ap.created_at DESC`,
		athleteUserID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Application, 0)
	for rows.Next() {
		var a Application
		if err := rows.Scan(&a.ID, &a.AthleteUserID, &a.ProgramID, &a.Status, &a.Withdrawn, &a.SubmittedAt, &a.CreatedAt,
			&a.ProgramName, &a.ProgramSport, &a.AcademyName); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresApplicationRepository) Create(ctx context.Context, a Application) (Application, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO applications (id, athlete_user_id, program_id, status, withdrawn, submitted_at)
		 VALUES (gen_random_uuid(), $1, $2, $3, FALSE, $4)
		 RETURNING id, athlete_user_id, program_id, status, withdrawn, submitted_at, created_at`,
		a.AthleteUserID, a.ProgramID, ApplicationStatusSubmitted, a.SubmittedAt,
	)
	var saved Application
	if err := row.Scan(&saved.ID, &saved.AthleteUserID, &saved.ProgramID, &saved.Status, &saved.Withdrawn, &saved.SubmittedAt, &saved.CreatedAt); err != nil {
		return Application{}, err
	}
	return saved, nil
}

func (r *PostgresApplicationRepository) Withdraw(ctx context.Context, id uuid.UUID, athleteUserID uuid.UUID) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE applications SET withdrawn = TRUE WHERE id = $1 AND athlete_user_id = $2`,
		id, athleteUserID,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}
