package main

import (
	"context"
	"os/signal"
	"syscall"

	"savr/config"
	httpapi "savr/notify-svc/internal/api/http"
	"savr/notify-svc/internal/service"
	"savr/notify-svc/internal/storage"
)

func main() {
	cfg := config.Load("notify-svc", ":8085")
	logger := config.NewLogger(cfg.Env, cfg.Name)
	defer logger.Sync()

	if err := cfg.Validate(); err != nil {
		logger.Fatalw("invalid configuration", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rdb := config.MustInitRedis(logger)
	defer rdb.Close()

	notifications := service.NewNotificationService(storage.NewRedisFeed(rdb, logger), logger)

	reader := config.NewKafkaReader(
		config.GetString("ORDERS_TOPIC", "orders"),
		config.GetString("KAFKA_GROUP_ID", "notify-svc"),
	)
	defer reader.Close()
	go service.NewConsumer(reader, notifications, logger).Start(ctx)

	handler := httpapi.NewHandler(notifications, logger)
	httpapi.StartServer(cfg.Addr, httpapi.NewRouter(handler), logger)
}
