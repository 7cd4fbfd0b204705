package httpapi

import (
	"net/http"

	"savr/monitoring"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

func NewRouter(handler *Handler) http.Handler {
	r := mux.NewRouter()
	r.Use(monitoring.Middleware("notify-svc"))
	r.Handle("/metrics", monitoring.Handler()).Methods("GET")
	handler.RegisterRoutes(r)
	return cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type", "X-Session-Token"},
	}).Handler(r)
}

func StartServer(addr string, handler http.Handler, logger *zap.SugaredLogger) {
	logger.Infow("notify service starting", "addr", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		logger.Fatalw("notify service stopped", "error", err)
	}
}
