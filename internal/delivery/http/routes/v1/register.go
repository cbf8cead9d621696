package v1

import (
	"fitpartner/internal/config"
	"fitpartner/internal/database"
	"fitpartner/internal/delivery/http/handler"
	"fitpartner/internal/delivery/http/middleware"
	"fitpartner/internal/infrastructure/cache"
	"fitpartner/internal/pkg/jwt"
	"fitpartner/internal/repository"
	"fitpartner/internal/usecase"
	ucauth "fitpartner/internal/usecase/auth"
	ucuser "fitpartner/internal/usecase/user"

	"github.com/gofiber/fiber/v3"
)

// Register wires the v1 surface: repositories over the shared pool,
// usecases on top, handlers grouped by concern.
func Register(r fiber.Router, cfg config.Config, db database.DB, cacheClient *cache.Redis) {
	if r == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)

	authMw := middleware.NewAuthMiddleware(jwtSvc)

	userRepo := repository.NewPostgresUserRepository(db)
	matchRepo := repository.NewPostgresMatchRepository(db)
	prefRepo := repository.NewPostgresPreferenceRepository(db)

	authUC := ucauth.NewService(userRepo, jwtSvc)
	userUC := ucuser.NewService(userRepo, prefRepo)
	matchUC := usecase.NewMatchUsecase(userRepo, matchRepo)
	prefUC := usecase.NewPreferenceUsecase(prefRepo, cacheClient)

	authHandler := handler.NewAuthHandler(authUC)
	userHandler := handler.NewUserHandler(userUC)
	matchHandler := handler.NewMatchHandler(matchUC)
	prefHandler := handler.NewPreferenceHandler(prefUC)

	authHandler.RegisterRoutes(r.Group("/auth"))
	prefHandler.RegisterRoutes(r.Group("/workout-preferences"))

	protected := r.Group("", authMw.Middleware())
	userHandler.RegisterRoutes(protected.Group("/users"))
	matchHandler.RegisterRoutes(protected.Group("/matches"))
}
