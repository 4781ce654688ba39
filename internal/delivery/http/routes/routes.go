package routes

import (
	"athlete-portal/internal/config"
	"athlete-portal/internal/database"
	"athlete-portal/internal/delivery/http/handler"
	v1 "athlete-portal/internal/delivery/http/routes/v1"
	"athlete-portal/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	cfg   config.Config
	db    database.DB
	cache usecase.ViewCache

	health *handler.HealthHandler
}

func NewRegistry(cfg config.Config, db database.DB, cache usecase.ViewCache) *Registry {
	return &Registry{cfg: cfg, db: db, cache: cache, health: handler.NewHealthHandler()}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)

	api := app.Group("/api")
	v1.Register(api.Group("/v1"), app, r.cfg, r.db, r.cache)
}
