package main

import (
	"context"
	"errors"
	"log"
	"log/slog"

	httpadapter "cv-genius/internal/adapter/http"
	repo "cv-genius/internal/adapter/repository"
	"cv-genius/internal/ai"
	"cv-genius/internal/config"
	"cv-genius/internal/export"
	"cv-genius/internal/infrastructure/migration"
	"cv-genius/internal/render"
	infra "cv-genius/pkg/infrastructure"

	"github.com/gofiber/fiber/v2"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()

	// infra setup
	pool, err := infra.NewExportPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Printf("warning: export audit DB not available: %v", err)
	}
	if pool != nil {
		if err := migration.RunMigrations(ctx, pool); err != nil {
			log.Printf("warning: migrations failed: %v", err)
		}
	}

	renderer, err := render.New()
	if err != nil {
		log.Fatalf("renderer init failed: %v", err)
	}

	var aiSvc httpadapter.AIService
	client, err := ai.NewClient(ai.Config{
		BaseURL: cfg.AIServiceURL,
		APIKey:  cfg.AIAPIKey,
		Timeout: cfg.AITimeout,
	})
	switch {
	case err == nil:
		aiSvc = client
	case errors.Is(err, ai.ErrNotConfigured):
		slog.Warn("AI_API_KEY is not set; assistant endpoints are disabled")
	default:
		log.Printf("warning: assistant unavailable: %v", err)
	}

	rasterizer := export.NewChromedpRasterizer(cfg.ChromePath)
	jobsRepo := repo.NewExportJobsRepo(pool)
	exporter := export.NewExporter(renderer, rasterizer, jobsRepo)

	// Body limit leaves headroom over the 5MB photo cap so the handler can
	// answer oversized uploads itself.
	app := fiber.New(fiber.Config{BodyLimit: 2 * httpadapter.MaxPhotoBytes})

	h := httpadapter.NewHandler(renderer, exporter, aiSvc, jobsRepo, cfg.SchemaPath)
	h.Register(app)

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
