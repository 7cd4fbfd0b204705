package main

import (
	"time"

	httpapi "savr/analytics-svc/internal/api/http"
	"savr/analytics-svc/internal/service"
	"savr/analytics-svc/internal/storage"
	"savr/config"
)

func main() {
	cfg := config.Load("analytics-svc", ":8083")
	logger := config.NewLogger(cfg.Env, cfg.Name)
	defer logger.Sync()

	if err := cfg.Validate(); err != nil {
		logger.Fatalw("invalid configuration", "error", err)
	}

	rdb := config.MustInitRedis(logger)
	defer rdb.Close()

	latency := 300 * time.Millisecond
	if !config.GetBool("SIMULATE_LATENCY", true) {
		latency = 0
	}

	analytics := service.NewAnalyticsService(storage.NewRedisMetricsStore(rdb), latency, logger)
	handler := httpapi.NewHandler(analytics, logger)
	httpapi.StartServer(cfg.Addr, httpapi.NewRouter(handler), logger)
}
