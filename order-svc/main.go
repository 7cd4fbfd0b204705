package main

import (
	"context"
	"net/http"
	"time"

	"savr/config"
	httpapi "savr/order-svc/internal/api/http"
	"savr/order-svc/internal/service"
	"savr/order-svc/internal/storage"
)

func main() {
	cfg := config.Load("order-svc", ":8081")
	logger := config.NewLogger(cfg.Env, cfg.Name)
	defer logger.Sync()

	if err := cfg.Validate(); err != nil {
		logger.Fatalw("invalid configuration", "error", err)
	}

	db := config.MustInitPostgres(logger)
	defer db.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(context.Background()); err != nil {
		logger.Fatalw("failed to ensure schema", "error", err)
	}

	writer := config.NewKafkaWriter(config.GetString("ORDERS_TOPIC", "orders"))
	defer writer.Close()

	catalog := storage.NewHTTPCatalog(
		config.GetString("MENU_SVC_URL", "http://localhost:8082"),
		&http.Client{Timeout: config.GetDuration("CATALOG_TIMEOUT", 5*time.Second)},
	)

	sessions := service.NewSessionService(
		catalog,
		repo,
		storage.NewKafkaPublisher(writer),
		logger,
		service.WithQRGenerator(service.DefaultQRGenerator{BaseURL: cfg.PublicBaseURL}),
		service.WithIdleTTL(config.GetDuration("SESSION_IDLE_TTL", 24*time.Hour)),
	)

	handler := httpapi.NewHandler(sessions)
	httpapi.StartServer(cfg.Addr, httpapi.NewRouter(handler), logger)
}
