package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"savr/auth-svc/internal/domain"
	"savr/auth-svc/internal/service"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type Handler struct {
	Auth   service.AuthServiceInterface
	Users  service.Persistence
	Logger *zap.SugaredLogger
}

func NewHandler(auth service.AuthServiceInterface, users service.Persistence, logger *zap.SugaredLogger) *Handler {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Handler{Auth: auth, Users: users, Logger: logger}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/auth/otp/request", h.requestOTP).Methods("POST")
	r.HandleFunc("/api/auth/otp/autofill", h.autoFillOTP).Methods("GET")
	r.HandleFunc("/api/auth/otp/confirm", h.confirmOTP).Methods("POST")
	r.HandleFunc("/api/auth/role", h.role).Methods("GET")

	r.HandleFunc("/api/users/{phone}", h.clearAll).Methods("DELETE")
	r.HandleFunc("/api/users/{phone}/auth-state", h.getAuthState).Methods("GET")
	r.HandleFunc("/api/users/{phone}/auth-state", h.putAuthState).Methods("PUT")
	r.HandleFunc("/api/users/{phone}/auth-state", h.deleteAuthState).Methods("DELETE")
	r.HandleFunc("/api/users/{phone}/profile", h.getProfile).Methods("GET")
	r.HandleFunc("/api/users/{phone}/profile", h.putProfile).Methods("PUT")
	r.HandleFunc("/api/users/{phone}/profile", h.deleteProfile).Methods("DELETE")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "auth-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

type otpRequest struct {
	Phone string `json:"phone"`
	Token string `json:"token"`
}

func (h *Handler) requestOTP(w http.ResponseWriter, r *http.Request) {
	var req otpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	session, err := h.Auth.RequestOTP(r.Context(), req.Phone, req.Token)
	if err != nil {
		h.fail(w, err, "Unable to request OTP.")
		return
	}
	writeJSON(w, http.StatusOK, session)
}

func (h *Handler) autoFillOTP(w http.ResponseWriter, r *http.Request) {
	otp, err := h.Auth.AutoFillOTP(r.Context())
	if err != nil {
		h.fail(w, err, "Unable to request OTP.")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"otp": otp})
}

type confirmRequest struct {
	Session *domain.AuthSession `json:"session"`
	OTP     string              `json:"otp"`
}

func (h *Handler) confirmOTP(w http.ResponseWriter, r *http.Request) {
	var req confirmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	session, err := h.Auth.ConfirmOTP(r.Context(), req.Session, req.OTP)
	if err != nil {
		h.fail(w, err, "Unable to verify OTP.")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"role":    session.Role,
		"session": session,
	})
}

func (h *Handler) role(w http.ResponseWriter, r *http.Request) {
	token := strings.TrimSpace(strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer "))
	writeJSON(w, http.StatusOK, map[string]domain.UserRole{"role": service.RoleFromToken(token)})
}

func (h *Handler) getAuthState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Users.LoadAuthState(r.Context(), mux.Vars(r)["phone"]))
}

func (h *Handler) putAuthState(w http.ResponseWriter, r *http.Request) {
	var state domain.AuthState
	if err := json.NewDecoder(r.Body).Decode(&state); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	h.Users.SaveAuthState(r.Context(), mux.Vars(r)["phone"], state)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteAuthState(w http.ResponseWriter, r *http.Request) {
	h.Users.ClearAuthState(r.Context(), mux.Vars(r)["phone"])
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Users.LoadProfile(r.Context(), mux.Vars(r)["phone"]))
}

func (h *Handler) putProfile(w http.ResponseWriter, r *http.Request) {
	var profile domain.UserProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	h.Users.SaveProfile(r.Context(), mux.Vars(r)["phone"], profile)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteProfile(w http.ResponseWriter, r *http.Request) {
	h.Users.ClearProfile(r.Context(), mux.Vars(r)["phone"])
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) clearAll(w http.ResponseWriter, r *http.Request) {
	h.Users.ClearAll(r.Context(), mux.Vars(r)["phone"])
	w.WriteHeader(http.StatusNoContent)
}

// fail maps validation errors to 4xx with their own text and everything else
// to fallback.
func (h *Handler) fail(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrPhoneRequired), errors.Is(err, service.ErrMissingSession):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrInvalidOTP):
		http.Error(w, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		http.Error(w, err.Error(), http.StatusGatewayTimeout)
	default:
		h.Logger.Errorw(fallback, "error", err)
		http.Error(w, fallback, http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
