package routes

import (
	"fitpartner/internal/config"
	"fitpartner/internal/database"
	"fitpartner/internal/delivery/http/handler"
	v1 "fitpartner/internal/delivery/http/routes/v1"
	"fitpartner/internal/infrastructure/cache"
	"fitpartner/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health *handler.HealthHandler
	ws     *ws.Handler
}

func NewRegistry(db database.DB, wsHandler *ws.Handler) *Registry {
	return &Registry{
		health: handler.NewHealthHandler(db),
		ws:     wsHandler,
	}
}

func (r *Registry) Register(app *fiber.App, cfg config.Config, db database.DB, cacheClient *cache.Redis) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)
	if r.ws != nil {
		app.Get("/ws", r.ws.HandleMatchEvents)
	}

	api := app.Group("/api")
	v1.Register(api.Group("/v1"), cfg, db, cacheClient)
}
