package app

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"fitpartner/internal/config"
	"fitpartner/internal/database/migration"
	"fitpartner/internal/database/seeder"
	"fitpartner/internal/delivery/http/middleware"
	"fitpartner/internal/delivery/http/routes"
	"fitpartner/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

// Bootstrap builds the full application: database pool, schema migrations,
// reference-data seeders, realtime hub, and the HTTP surface. The returned
// cleanup function releases every held resource.
func Bootstrap(cfg config.Config, logger *log.Logger) (*App, func() error, error) {
	if logger == nil {
		logger = log.Default()
	}

	c, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("container: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := (migration.Runner{}).Run(ctx, c.DB.SQLDB()); err != nil {
		_ = c.Close()
		return nil, nil, fmt.Errorf("migrations: %w", err)
	}

	seedRunner := seeder.Runner{Seeders: []seeder.Seeder{
		seeder.WorkoutPreferencesSeeder{},
	}}
	results, err := seedRunner.Run(ctx, c.DB)
	if err != nil {
		_ = c.Close()
		return nil, nil, fmt.Errorf("seeders: %w", err)
	}
	for _, r := range results {
		logger.Printf("Seed done | name=%s inserted=%d skipped=%d", r.Name, r.Inserted, r.Skipped)
	}

	go c.Hub.Run()
	ws.SetDefaultHub(c.Hub)

	f := fiber.New(fiber.Config{
		AppName: cfg.App.AppName,
	})

	accessMw := middleware.NewAccessLogMiddleware(logger)
	errMw := middleware.NewErrorMiddleware()
	f.Use(accessMw.Middleware())
	f.Use(errMw.Middleware())

	registry := routes.NewRegistry(c.DB, ws.NewHandler(c.Hub, logger))
	registry.Register(f, cfg, c.DB, c.Cache)

	app := &App{Fiber: f, Container: c}
	cleanup := func() error {
		ws.SetDefaultHub(nil)
		return c.Close()
	}
	return app, cleanup, nil
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
