package v1

import (
	"athlete-portal/internal/config"
	"athlete-portal/internal/database"
	"athlete-portal/internal/delivery/http/handler"
	"athlete-portal/internal/delivery/http/middleware"
	"athlete-portal/internal/pkg/jwt"
	"athlete-portal/internal/repository"
	"athlete-portal/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// Register wires the v1 API. The root router only receives the sign-in
// descriptor route that the session middleware redirects to.
func Register(r fiber.Router, root fiber.Router, cfg config.Config, db database.DB, cache usecase.ViewCache) {
	if r == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(cfg.Session.Secret, cfg.Session.ExpiresIn)
	sessionMw := middleware.NewSessionMiddleware(jwtSvc)

	userRepo := repository.NewPostgresUserRepository(db)
	profileRepo := repository.NewPostgresProfileRepository(db)
	statRepo := repository.NewPostgresStatRepository(db)
	recordingRepo := repository.NewPostgresRecordingRepository(db)
	academyRepo := repository.NewPostgresAcademyRepository(db)
	programRepo := repository.NewPostgresProgramRepository(db)
	applicationRepo := repository.NewPostgresApplicationRepository(db)

	authUC := usecase.NewAuthUsecase(userRepo, jwtSvc)
	profileUC := usecase.NewProfileUsecase(userRepo, profileRepo, cache)
	statUC := usecase.NewStatUsecase(profileRepo, statRepo, cache)
	recordingUC := usecase.NewRecordingUsecase(profileRepo, recordingRepo, cache)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, programRepo, cache)
	academyUC := usecase.NewAcademyUsecase(academyRepo, cache)
	seedUC := usecase.NewSeedUsecase(db, userRepo, profileRepo, academyRepo, cache)

	authHandler := handler.NewAuthHandler(authUC, cfg.Session.ExpiresIn)
	profileHandler := handler.NewProfileHandler(profileUC)
	statHandler := handler.NewStatHandler(statUC)
	recordingHandler := handler.NewRecordingHandler(recordingUC)
	applicationHandler := handler.NewApplicationHandler(applicationUC)
	academyHandler := handler.NewAcademyHandler(academyUC)
	seedHandler := handler.NewSeedHandler(seedUC)

	if root != nil {
		root.Get(middleware.SignInPath, authHandler.SignIn)
	}

	authGroup := r.Group("/auth")
	authHandler.RegisterRoutes(authGroup)

	seedHandler.RegisterRoutes(r)
	academyHandler.RegisterRoutes(r)

	protected := r.Group("", sessionMw.Middleware())
	profileHandler.RegisterRoutes(protected)
	statHandler.RegisterRoutes(protected)
	recordingHandler.RegisterRoutes(protected)
	applicationHandler.RegisterRoutes(protected)
}
