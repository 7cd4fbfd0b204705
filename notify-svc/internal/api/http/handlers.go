package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"savr/notify-svc/internal/domain"
	"savr/notify-svc/internal/service"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type Handler struct {
	Notifications service.NotificationServiceInterface
	Logger        *zap.SugaredLogger
}

func NewHandler(svc service.NotificationServiceInterface, logger *zap.SugaredLogger) *Handler {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Handler{Notifications: svc, Logger: logger}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")
	r.HandleFunc("/api/notifications", h.list).Methods("GET")
	r.HandleFunc("/api/notifications", h.push).Methods("POST")
	r.HandleFunc("/api/notifications", h.clear).Methods("DELETE")
	r.HandleFunc("/api/notifications/ingest", h.ingest).Methods("POST")
	r.HandleFunc("/api/notifications/read-all", h.markAllRead).Methods("POST")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "notify-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	items, err := h.Notifications.List(r.Context(), owner(r))
	if err != nil {
		h.fail(w, err)
		return
	}
	unread := 0
	for _, item := range items {
		if !item.Read {
			unread++
		}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"items":  items,
		"unread": unread,
	})
}

func (h *Handler) push(w http.ResponseWriter, r *http.Request) {
	var input domain.PushInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	n, err := h.Notifications.Push(r.Context(), owner(r), input)
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, n)
}

func (h *Handler) ingest(w http.ResponseWriter, r *http.Request) {
	var message domain.FCMMessage
	if err := json.NewDecoder(r.Body).Decode(&message); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	n, err := h.Notifications.Ingest(r.Context(), owner(r), message)
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, n)
}

func (h *Handler) markAllRead(w http.ResponseWriter, r *http.Request) {
	if err := h.Notifications.MarkAllRead(r.Context(), owner(r)); err != nil {
		h.fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) clear(w http.ResponseWriter, r *http.Request) {
	if err := h.Notifications.Clear(r.Context(), owner(r)); err != nil {
		h.fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) fail(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrMissingOwner):
		http.Error(w, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		http.Error(w, err.Error(), http.StatusGatewayTimeout)
	default:
		h.Logger.Errorw("notification request failed", "error", err)
		http.Error(w, "Unable to load notifications.", http.StatusInternalServerError)
	}
}

// owner resolves the feed owner from the diner token, or "" without one.
func owner(r *http.Request) string {
	token := strings.TrimSpace(r.Header.Get("X-Session-Token"))
	if auth := r.Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		token = strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
	}
	if token == "" {
		return ""
	}
	return service.OwnerID(token)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
