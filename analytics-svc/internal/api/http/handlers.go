package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"savr/analytics-svc/internal/domain"
	"savr/analytics-svc/internal/service"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type Handler struct {
	Analytics service.AnalyticsInterface
	Logger    *zap.SugaredLogger
}

func NewHandler(svc service.AnalyticsInterface, logger *zap.SugaredLogger) *Handler {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Handler{Analytics: svc, Logger: logger}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")
	r.HandleFunc("/api/panel/metrics", h.getMetrics).Methods("GET")
	r.HandleFunc("/api/panel/metrics", h.putMetrics).Methods("PUT")
	r.HandleFunc("/api/panel/dashboard", h.getDashboard).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "analytics-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) getMetrics(w http.ResponseWriter, r *http.Request) {
	metrics, err := h.Analytics.FetchMetrics(r.Context(), r.URL.Query().Get("restaurant_id"))
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, metrics)
}

func (h *Handler) putMetrics(w http.ResponseWriter, r *http.Request) {
	var metrics domain.RestaurantMetrics
	if err := json.NewDecoder(r.Body).Decode(&metrics); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Analytics.SaveMetrics(r.Context(), r.URL.Query().Get("restaurant_id"), metrics); err != nil {
		if errors.Is(err, service.ErrInvalidMetrics) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, metrics)
}

func (h *Handler) getDashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.Analytics.Dashboard(r.Context(), r.URL.Query().Get("restaurant_id"))
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dashboard)
}

func (h *Handler) fail(w http.ResponseWriter, err error) {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		http.Error(w, err.Error(), http.StatusGatewayTimeout)
		return
	}
	h.Logger.Errorw("analytics request failed", "error", err)
	http.Error(w, "Unable to load restaurant dashboard.", http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
