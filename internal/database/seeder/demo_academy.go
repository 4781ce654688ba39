package seeder

import (
	"context"
	"fmt"

	"athlete-portal/internal/database"
	"athlete-portal/internal/domain/user"
)

type DemoAcademySeeder struct{}

func (DemoAcademySeeder) Name() string { return "demo_academy" }

func (DemoAcademySeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "academies", "id", "name", "description", "website", "location", "created_by_user_id"); err != nil {
		return err
	}
	if err := EnsureTableColumns(ctx, db, "programs", "id", "academy_id", "name", "sport", "description"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	// The academy admin has no password hash: it exists only as the
	// academy's creator reference and can not sign in with credentials.
	_, err = tx.Exec(ctx,
		`INSERT INTO users (id, email, name, role)
		 VALUES (gen_random_uuid(), $1, $2, $3)
		 ON CONFLICT (email) DO NOTHING`,
		DemoAdminEmail, DemoAdminName, string(user.RoleAcademyAdmin),
	)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO academies (id, name, description, website, location, created_by_user_id)
		 SELECT gen_random_uuid(), $1, $2, $3, $4, u.id
		 FROM users u
		 WHERE u.email = $5
		 ON CONFLICT (name) DO NOTHING`,
		DemoAcademyName, DemoAcademyDescription, DemoAcademyWebsite, DemoAcademyLocation, DemoAdminEmail,
	)
	if err != nil {
		return err
	}

	programs := []struct {
		Name        string
		Sport       string
		Description string
	}{
		{Name: "U18 Soccer", Sport: "Soccer", Description: "U18 competitive program"},
		{Name: "Track Sprint", Sport: "Track", Description: "100m/200m sprint focus"},
	}

	for _, p := range programs {
		_, err = tx.Exec(ctx,
			`INSERT INTO programs (id, academy_id, name, sport, description)
			 SELECT gen_random_uuid(), a.id, $2, $3, $4
			 FROM academies a
			 WHERE a.name = $1
			 ON CONFLICT (academy_id, name) DO NOTHING`,
			DemoAcademyName, p.Name, p.Sport, p.Description,
		)
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
