package repository

import (
	"context"
	"time"

	"athlete-portal/internal/database"

	"github.com/google/uuid"
)

type Academy struct {
	ID              uuid.UUID
	Name            string
	Description     *string
	Website         *string
	Location        *string
	CreatedByUserID *uuid.UUID
	CreatedAt       time.Time
	Programs        []Program
}

type AcademyRepository interface {
	// ListWithPrograms returns academies name-ordered with their programs
	// attached. Read-only reference data; no identity scoping.
	ListWithPrograms(ctx context.Context, limit int) ([]Academy, error)
}

type PostgresAcademyRepository struct {
	db database.DB
}

func NewPostgresAcademyRepository(db database.DB) *PostgresAcademyRepository {
	return &PostgresAcademyRepository{db: db}
}

func (r *PostgresAcademyRepository) ListWithPrograms(ctx context.Context, limit int) ([]Academy, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, description, website, location, created_by_user_id, created_at
		 FROM academies
		 ORDER BY name ASC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	academies := make([]Academy, 0)
	index := map[uuid.UUID]int{}
	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var a Academy
		if err := rows.Scan(&a.ID, &a.Name, &a.Description, &a.Website, &a.Location, &a.CreatedByUserID, &a.CreatedAt); err != nil {
			return nil, err
		}
		a.Programs = make([]Program, 0)
		index[a.ID] = len(academies)
		ids = append(ids, a.ID)
		academies = append(academies, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(academies) == 0 {
		return academies, nil
	}

	prows, err := r.db.Query(ctx,
		`SELECT p.id, p.academy_id, p.name, p.sport, p.description, a.name
		 FROM programs p
		 JOIN academies a ON a.id = p.academy_id
		 WHERE p.academy_id = ANY($1)
		 ORDER BY p.name ASC`,
		ids,
	)
	if err != nil {
		return nil, err
	}
	defer prows.Close()

	for prows.Next() {
		var p Program
		if err := prows.Scan(&p.ID, &p.AcademyID, &p.Name, &p.Sport, &p.Description, &p.AcademyName); err != nil {
			return nil, err
		}
		if i, ok := index[p.AcademyID]; ok {
			academies[i].Programs = append(academies[i].Programs, p)
		}
	}
	if err := prows.Err(); err != nil {
		return nil, err
	}
	return academies, nil
}
