package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"savr/menu-svc/internal/domain"
	"savr/menu-svc/internal/service"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type Handler struct {
	Catalog service.CatalogServiceInterface
	Menu    service.MenuServiceInterface
	Profile service.ProfileServiceInterface
	Logger  *zap.SugaredLogger
}

func NewHandler(catalog service.CatalogServiceInterface, menu service.MenuServiceInterface, profile service.ProfileServiceInterface, logger *zap.SugaredLogger) *Handler {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Handler{Catalog: catalog, Menu: menu, Profile: profile, Logger: logger}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/restaurants/nearby", h.getNearby).Methods("GET")

	r.HandleFunc("/api/panel/profile", h.getProfile).Methods("GET")
	r.HandleFunc("/api/panel/profile", h.saveProfile).Methods("PUT")

	r.HandleFunc("/api/panel/menu", h.getMenu).Methods("GET")
	r.HandleFunc("/api/panel/menu", h.upsertMenuItem).Methods("PUT")
	r.HandleFunc("/api/panel/menu/lookup", h.lookupMenuItem).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "menu-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) getNearby(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	lat, _ := strconv.ParseFloat(query.Get("lat"), 64)
	lng, _ := strconv.ParseFloat(query.Get("lng"), 64)

	restaurants, err := h.Catalog.FetchNearby(r.Context(), lat, lng, bearerToken(r))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingToken):
			http.Error(w, err.Error(), http.StatusUnauthorized)
		case isContextError(err):
			http.Error(w, err.Error(), http.StatusGatewayTimeout)
		default:
			h.Logger.Errorw("fetch nearby failed", "error", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	filter, filtered, err := parseFilter(query)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if filtered {
		restaurants = service.FilterRestaurants(restaurants, filter)
	}
	writeJSON(w, http.StatusOK, restaurants)
}

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.Profile.FetchProfile(r.Context())
	if err != nil {
		h.fail(w, err, service.MessageDashboardLoadError)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (h *Handler) saveProfile(w http.ResponseWriter, r *http.Request) {
	var update domain.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	profile, err := h.Profile.SaveProfile(r.Context(), update)
	if err != nil {
		if errors.Is(err, service.ErrInvalidTimeLabel) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.fail(w, err, service.MessageProfileSaveFailed)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"profile": profile,
		"message": service.MessageProfileSaved,
	})
}

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	menu, err := h.Menu.FetchMenu(r.Context())
	if err != nil {
		h.fail(w, err, service.MessageDashboardLoadError)
		return
	}
	writeJSON(w, http.StatusOK, menu)
}

func (h *Handler) lookupMenuItem(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if strings.TrimSpace(name) == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}
	result, err := h.Menu.FindByName(r.Context(), name)
	if err != nil {
		h.fail(w, err, "Unable to fetch existing item details.")
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) upsertMenuItem(w http.ResponseWriter, r *http.Request) {
	var input domain.MenuItemInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	result, err := h.Menu.Upsert(r.Context(), input)
	if err != nil {
		if errors.Is(err, service.ErrInvalidMenuItem) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.fail(w, err, "Unable to save menu item.")
		return
	}
	status := http.StatusOK
	if !result.WasExisting {
		status = http.StatusCreated
	}
	writeJSON(w, status, result)
}

// fail reports a backend failure with the caller-facing message.
func (h *Handler) fail(w http.ResponseWriter, err error, message string) {
	if isContextError(err) {
		http.Error(w, err.Error(), http.StatusGatewayTimeout)
		return
	}
	h.Logger.Errorw(message, "error", err)
	http.Error(w, message, http.StatusInternalServerError)
}

func parseFilter(query map[string][]string) (domain.RestaurantFilter, bool, error) {
	get := func(key string) string {
		if values := query[key]; len(values) > 0 {
			return values[0]
		}
		return ""
	}

	filter := service.DefaultFilter()
	filtered := false

	if q := get("q"); q != "" {
		filter.Query = q
		filtered = true
	}
	if raw := get("max_distance"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return filter, false, errors.New("max_distance must be a number")
		}
		filter.MaxDistanceKm = v
		filtered = true
	}
	if raw := get("min_rating"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return filter, false, errors.New("min_rating must be a number")
		}
		filter.MinRating = v
		filtered = true
	}
	if raw := get("sort"); raw != "" {
		switch sortBy := domain.SortBy(strings.ToLower(raw)); sortBy {
		case domain.SortByDistance, domain.SortByRating:
			filter.SortBy = sortBy
		default:
			return filter, false, errors.New("sort must be distance or rating")
		}
		filtered = true
	}
	return filter, filtered, nil
}

func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
}

func isContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
