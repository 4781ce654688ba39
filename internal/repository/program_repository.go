package repository

import (
	"context"

	"athlete-portal/internal/database"

	"github.com/google/uuid"
)

type Program struct {
	ID          uuid.UUID
	AcademyID   uuid.UUID
	Name        string
	Sport       string
	Description *string
	AcademyName string
}

type ProgramRepository interface {
	ListWithAcademy(ctx context.Context, limit int) ([]Program, error)
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
}

type PostgresProgramRepository struct {
	db database.DB
}

func NewPostgresProgramRepository(db database.DB) *PostgresProgramRepository {
	return &PostgresProgramRepository{db: db}
}

func (r *PostgresProgramRepository) ListWithAcademy(ctx context.Context, limit int) ([]Program, error) {
	rows, err := r.db.Query(ctx,
		`SELECT p.id, p.academy_id, p.name, p.sport, p.description, a.name
		 FROM programs p
		 JOIN academies a ON a.id = p.academy_id
		 ORDER BY p.name ASC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Program, 0)
	for rows.Next() {
		var p Program
		if err := rows.Scan(&p.ID, &p.AcademyID, &p.Name, &p.Sport, &p.Description, &p.AcademyName); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresProgramRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM programs WHERE id = $1)`, id)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
