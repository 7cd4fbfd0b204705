package main

import (
	"context"
	"strings"
	"time"

	"savr/config"
	httpapi "savr/menu-svc/internal/api/http"
	"savr/menu-svc/internal/service"
	"savr/menu-svc/internal/storage"

	"go.uber.org/zap"
)

type repository interface {
	service.MenuRepository
	service.ProfileRepository
}

func main() {
	cfg := config.Load("menu-svc", ":8082")
	logger := config.NewLogger(cfg.Env, cfg.Name)
	defer logger.Sync()

	if err := cfg.Validate(); err != nil {
		logger.Fatalw("invalid configuration", "error", err)
	}

	latency := service.DefaultLatency
	if !config.GetBool("SIMULATE_LATENCY", true) {
		latency = service.Latency{}
	}

	loc, err := time.LoadLocation(config.GetString("PANEL_TIMEZONE", "Local"))
	if err != nil {
		logger.Fatalw("invalid PANEL_TIMEZONE", "error", err)
	}

	repo := mustInitRepository(logger)

	handler := httpapi.NewHandler(
		service.NewCatalogService(service.FixtureRestaurants(), latency.Catalog),
		service.NewMenuService(repo, latency, loc, logger),
		service.NewProfileService(repo, latency, loc, logger),
		logger,
	)
	httpapi.StartServer(cfg.Addr, httpapi.NewRouter(handler), logger)
}

func mustInitRepository(logger *zap.SugaredLogger) repository {
	driver := strings.ToLower(config.GetString("STORAGE_DRIVER", "memory"))
	switch driver {
	case "postgres":
		repo := storage.NewPostgresRepository(config.MustInitPostgres(logger))
		ctx := context.Background()
		if err := repo.EnsureSchema(ctx); err != nil {
			logger.Fatalw("failed to ensure schema", "error", err)
		}
		if err := repo.Seed(ctx, service.FixtureProfile(), service.FixtureMenu()); err != nil {
			logger.Fatalw("failed to seed fixtures", "error", err)
		}
		return repo
	case "memory":
		return storage.NewMemoryRepository(service.FixtureProfile(), service.FixtureMenu())
	default:
		logger.Fatalw("unknown STORAGE_DRIVER", "driver", driver)
		return nil
	}
}
