package main

import (
	"time"

	httpapi "savr/auth-svc/internal/api/http"
	"savr/auth-svc/internal/service"
	"savr/auth-svc/internal/storage"
	"savr/config"
)

func main() {
	cfg := config.Load("auth-svc", ":8084")
	logger := config.NewLogger(cfg.Env, cfg.Name)
	defer logger.Sync()

	if err := cfg.Validate(); err != nil {
		logger.Fatalw("invalid configuration", "error", err)
	}

	secret := config.GetString("JWT_SECRET", "")
	if secret == "" {
		logger.Fatalw("JWT_SECRET is required")
	}

	rdb := config.MustInitRedis(logger)
	defer rdb.Close()

	latency := service.DefaultLatency
	if !config.GetBool("SIMULATE_LATENCY", true) {
		latency = service.Latency{}
	}

	users := storage.NewRedisPersistence(rdb, logger)
	auth := service.NewAuthService(
		service.TokenIssuer{Secret: []byte(secret), TTL: config.GetDuration("JWT_TTL", 24*time.Hour)},
		users,
		latency,
		logger,
	)

	handler := httpapi.NewHandler(auth, users, logger)
	httpapi.StartServer(cfg.Addr, httpapi.NewRouter(handler), logger)
}
