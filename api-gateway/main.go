package main

import (
	"net/http"
	"time"

	"savr/api-gateway/internal/gateway"
	"savr/config"

	"github.com/rs/cors"
)

func main() {
	cfg := config.Load("api-gateway", ":8080")
	logger := config.NewLogger(cfg.Env, cfg.Name)
	defer logger.Sync()

	routes := gateway.Config{
		OrderSvcURL:     config.GetString("ORDER_SVC_URL", "http://localhost:8081"),
		MenuSvcURL:      config.GetString("MENU_SVC_URL", "http://localhost:8082"),
		AnalyticsSvcURL: config.GetString("ANALYTICS_SVC_URL", "http://localhost:8083"),
		AuthSvcURL:      config.GetString("AUTH_SVC_URL", "http://localhost:8084"),
		NotifySvcURL:    config.GetString("NOTIFY_SVC_URL", "http://localhost:8085"),
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatalw("invalid configuration", "error", err)
	}
	if err := routes.Validate(); err != nil {
		logger.Fatalw("invalid upstream configuration", "error", err)
	}

	client := &http.Client{Timeout: config.GetDuration("UPSTREAM_TIMEOUT", 10*time.Second)}
	gw := gateway.NewGateway(routes, client, logger)

	handler := cors.New(cors.Options{
		AllowedOrigins:   config.GetSlice("CORS_ORIGINS", []string{"*"}),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}).Handler(gw.SetupRoutes())

	logger.Infow("api gateway starting", "addr", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, handler); err != nil {
		logger.Fatalw("api gateway stopped", "error", err)
	}
}
