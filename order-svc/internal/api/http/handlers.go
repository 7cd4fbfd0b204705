package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"savr/order-svc/internal/domain"
	"savr/order-svc/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Sessions service.SessionServiceInterface
}

func NewHandler(sessions service.SessionServiceInterface) *Handler {
	return &Handler{Sessions: sessions}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/session/cart", h.getCart).Methods("GET")
	r.HandleFunc("/api/session/cart", h.clearCart).Methods("DELETE")
	r.HandleFunc("/api/session/cart/items", h.addCartItem).Methods("POST")
	r.HandleFunc("/api/session/cart/items/{itemId}", h.changeCartItem).Methods("PATCH")
	r.HandleFunc("/api/session/cart/items/{itemId}", h.removeCartItem).Methods("DELETE")

	r.HandleFunc("/api/session/orders", h.placeOrder).Methods("POST")
	r.HandleFunc("/api/session/orders", h.getOrders).Methods("GET")
	r.HandleFunc("/api/session/orders/{orderId}/status", h.updateOrderStatus).Methods("PATCH")
	r.HandleFunc("/api/session/orders/{orderId}/rating", h.submitRating).Methods("POST")
	r.HandleFunc("/api/session/orders/{orderId}/qrcode", h.getOrderQRCode).Methods("GET")

	r.HandleFunc("/api/session/rating-prompt", h.getRatingPrompt).Methods("GET")
	r.HandleFunc("/api/session/rating-prompt", h.dismissRatingPrompt).Methods("DELETE")

	r.HandleFunc("/api/session/metrics", h.getMetrics).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "order-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Sessions.Cart(r.Context(), sessionToken(r), location(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	if err := h.Sessions.ClearCart(r.Context(), sessionToken(r)); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request) {
	var req domain.AddToCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	item, err := h.Sessions.AddToCart(r.Context(), sessionToken(r), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) changeCartItem(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Delta int `json:"delta"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Sessions.ChangeQuantity(r.Context(), sessionToken(r), mux.Vars(r)["itemId"], payload.Delta); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	if err := h.Sessions.RemoveCartItem(r.Context(), sessionToken(r), mux.Vars(r)["itemId"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) placeOrder(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Sessions.PlaceOrder(r.Context(), sessionToken(r))
	if err != nil {
		writeError(w, err)
		return
	}
	status := http.StatusOK
	if len(orders) > 0 {
		status = http.StatusCreated
	}
	writeJSON(w, status, orders)
}

func (h *Handler) getOrders(w http.ResponseWriter, r *http.Request) {
	view, err := h.Sessions.Orders(r.Context(), sessionToken(r), r.URL.Query().Get("tab"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	status, err := domain.ParseOrderStatus(payload.Status)
	if err != nil {
		writeError(w, err)
		return
	}

	order, err := h.Sessions.UpdateOrderStatus(r.Context(), sessionToken(r), mux.Vars(r)["orderId"], status)
	if err != nil {
		writeError(w, err)
		return
	}
	if order == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) submitRating(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Rating int `json:"rating"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	order, err := h.Sessions.SubmitRating(r.Context(), sessionToken(r), mux.Vars(r)["orderId"], payload.Rating)
	if err != nil {
		writeError(w, err)
		return
	}
	if order == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	qr, err := h.Sessions.OrderQRCode(r.Context(), sessionToken(r), mux.Vars(r)["orderId"])
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(qr)
}

func (h *Handler) getRatingPrompt(w http.ResponseWriter, r *http.Request) {
	orderID, err := h.Sessions.PendingRating(r.Context(), sessionToken(r))
	if err != nil {
		writeError(w, err)
		return
	}
	var body struct {
		OrderID *string `json:"order_id"`
	}
	if orderID != "" {
		body.OrderID = &orderID
	}
	writeJSON(w, http.StatusOK, body)
}

func (h *Handler) dismissRatingPrompt(w http.ResponseWriter, r *http.Request) {
	if err := h.Sessions.DismissRatingPrompt(r.Context(), sessionToken(r)); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getMetrics(w http.ResponseWriter, r *http.Request) {
	metrics, err := h.Sessions.Metrics(r.Context(), sessionToken(r), location(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, metrics)
}

func sessionToken(r *http.Request) string {
	if auth := r.Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
	}
	return strings.TrimSpace(r.Header.Get("X-Session-Token"))
}

func location(r *http.Request) domain.Location {
	lat, _ := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	lng, _ := strconv.ParseFloat(r.URL.Query().Get("lng"), 64)
	return domain.Location{Latitude: lat, Longitude: lng}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, err error) {
	var validation *service.ValidationError
	switch {
	case errors.Is(err, service.ErrMissingToken):
		http.Error(w, err.Error(), http.StatusUnauthorized)
	case errors.As(err, &validation),
		errors.Is(err, service.ErrInvalidDelta),
		errors.Is(err, domain.ErrUnknownStatus):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, domain.ErrInvalidTransition):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, service.ErrOrderNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		http.Error(w, err.Error(), http.StatusGatewayTimeout)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
