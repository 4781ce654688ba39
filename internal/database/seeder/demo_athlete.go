package seeder

import (
	"context"
	"fmt"

	"athlete-portal/internal/database"
	"athlete-portal/internal/domain/user"

	"golang.org/x/crypto/bcrypt"
)

type DemoAthleteSeeder struct{}

func (DemoAthleteSeeder) Name() string { return "demo_athlete" }

func (DemoAthleteSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "users", "id", "email", "name", "password_hash", "role"); err != nil {
		return err
	}
	if err := EnsureTableColumns(ctx, db, "athlete_profiles", "id", "user_id", "sport", "positions", "bio"); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(DemoAthletePassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	_, err = tx.Exec(ctx,
		`INSERT INTO users (id, email, name, password_hash, role)
		 VALUES (gen_random_uuid(), $1, $2, $3, $4)
		 ON CONFLICT (email) DO NOTHING`,
		DemoAthleteEmail, DemoAthleteName, string(hash), string(user.RoleAthlete),
	)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO athlete_profiles (id, user_id, sport, positions, bio)
		 SELECT gen_random_uuid(), u.id, $2, $3, $4
		 FROM users u
		 WHERE u.email = $1
		 ON CONFLICT (user_id) DO NOTHING`,
		DemoAthleteEmail, DemoAthleteSport, DemoAthletePositions, DemoAthleteBio,
	)
	if err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
