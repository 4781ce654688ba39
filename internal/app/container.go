package app

import (
	"context"
	"log"
	"time"

	"athlete-portal/internal/config"
	"athlete-portal/internal/database"
	"athlete-portal/internal/database/migration"
	dbpostgres "athlete-portal/internal/database/postgres"
	"athlete-portal/internal/infrastructure/cache"
)

// Container owns the shared process resources: the connection pool and the
// view cache. Built once at startup, closed once at shutdown.
type Container struct {
	Config config.Config
	DB     database.DB
	Cache  *cache.ViewCache
}

func NewContainer(cfg config.Config) (*Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	if cfg.Database.Migrate {
		if err := (migration.Runner{Dir: "migrations"}).Run(ctx, db); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	return &Container{
		Config: cfg,
		DB:     db,
		Cache:  cache.NewViewCache(cfg.Redis, log.Default()),
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
