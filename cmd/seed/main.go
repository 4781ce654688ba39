package main

import (
	"context"
	"flag"
	"log"
	"time"

	// Autoloads .env to supply environment variables.
	_ "github.com/joho/godotenv/autoload"

	"athlete-portal/internal/config"
	"athlete-portal/internal/database/migration"
	dbpostgres "athlete-portal/internal/database/postgres"
	"athlete-portal/internal/database/seeder"
)

// Applies migrations and upserts the demo fixtures. Safe to run repeatedly;
// everything is keyed by unique columns.
func main() {
	migrationsDir := flag.String("migrations", "migrations", "directory holding SQL migrations")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := (migration.Runner{Dir: *migrationsDir}).Run(ctx, db); err != nil {
		log.Fatalf("migrations failed: %v", err)
	}

	if err := seeder.Default().Run(ctx, db); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}

	log.Printf("seeded demo athlete (%s) and %q", seeder.DemoAthleteEmail, seeder.DemoAcademyName)
}
