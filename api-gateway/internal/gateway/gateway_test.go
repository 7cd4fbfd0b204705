package gateway_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"savr/api-gateway/internal/gateway"
	"savr/api-gateway/internal/mocks"
	"savr/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var upstreams = gateway.Config{
	OrderSvcURL:     "http://order-svc:8081",
	MenuSvcURL:      "http://menu-svc:8082",
	AnalyticsSvcURL: "http://analytics-svc:8083",
	AuthSvcURL:      "http://auth-svc:8084",
	NotifySvcURL:    "http://notify-svc:8085",
}

func okResponse(body string) *http.Response {
	resp := &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
	resp.Header.Set("Content-Type", "application/json")
	return resp
}

func TestGateway_HealthCheck(t *testing.T) {
	gw := gateway.NewGateway(upstreams, nil, nil)

	rr := httptest.NewRecorder()
	gw.SetupRoutes().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	var body map[string]string
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "api-gateway", body["service"])
}

func TestGateway_Target(t *testing.T) {
	gw := gateway.NewGateway(upstreams, nil, nil)

	tests := []struct {
		path     string
		expected string
	}{
		{"/api/session/orders", upstreams.OrderSvcURL},
		{"/api/session/orders/o-1-r1/status", upstreams.OrderSvcURL},
		{"/api/session/cart", upstreams.OrderSvcURL},
		{"/api/restaurants", upstreams.MenuSvcURL},
		{"/api/restaurants/nearby", upstreams.MenuSvcURL},
		{"/api/panel/profile", upstreams.MenuSvcURL},
		{"/api/panel/menu", upstreams.MenuSvcURL},
		{"/api/panel/menu/lookup", upstreams.MenuSvcURL},
		{"/api/panel/metrics", upstreams.AnalyticsSvcURL},
		{"/api/panel/dashboard", upstreams.AnalyticsSvcURL},
		{"/api/auth/otp/request", upstreams.AuthSvcURL},
		{"/api/users/9876543210/profile", upstreams.AuthSvcURL},
		{"/api/notifications", upstreams.NotifySvcURL},
		{"/api/notifications/read-all", upstreams.NotifySvcURL},
		{"/api/sessions", ""},
		{"/api/panel", ""},
		{"/api/unknown", ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expected, gw.Target(tt.path))
		})
	}
}

func TestGateway_proxiesToOwner(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(upstreams, mockClient, nil)

	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.Method == http.MethodGet &&
			req.URL.String() == "http://menu-svc:8082/api/restaurants/nearby?lat=12.97&lng=77.59" &&
			req.Header.Get("X-Session-Token") == "diner-token"
	})).Return(okResponse(`[{"id":"r1","name":"Spice Route Kitchen"}]`), nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/restaurants/nearby?lat=12.97&lng=77.59", nil)
	req.Header.Set("X-Session-Token", "diner-token")
	rr := httptest.NewRecorder()
	gw.SetupRoutes().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.Contains(t, rr.Body.String(), "Spice Route Kitchen")
}

func TestGateway_forwardsBodyAndStatus(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(upstreams, mockClient, nil)

	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		body, _ := io.ReadAll(req.Body)
		return req.Method == http.MethodPost &&
			req.URL.Host == "order-svc:8081" &&
			string(body) == `{"restaurant_id":"r1"}`
	})).Return(&http.Response{
		StatusCode: http.StatusCreated,
		Body:       io.NopCloser(strings.NewReader(`{"id":"o-1-r1"}`)),
		Header:     make(http.Header),
	}, nil).Once()

	rr := httptest.NewRecorder()
	gw.RouteHandler(rr, httptest.NewRequest(http.MethodPost, "/api/session/checkout", strings.NewReader(`{"restaurant_id":"r1"}`)))

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Contains(t, rr.Body.String(), "o-1-r1")
}

func TestGateway_RouteHandler_UnknownAPI(t *testing.T) {
	gw := gateway.NewGateway(upstreams, mocks.NewHTTPClient(t), nil)

	rr := httptest.NewRecorder()
	gw.RouteHandler(rr, httptest.NewRequest(http.MethodGet, "/api/unknown", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "API route not found")
}

func TestGateway_RouteHandler_ProxyError(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(upstreams, mockClient, nil)
	mockClient.On("Do", mock.Anything).Return(nil, errors.New("connection refused")).Once()

	rr := httptest.NewRecorder()
	gw.RouteHandler(rr, httptest.NewRequest(http.MethodGet, "/api/notifications", nil))

	assert.Equal(t, http.StatusBadGateway, rr.Code)
}

func TestGateway_RouteHandler_ClientGone(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(upstreams, mockClient, nil)
	mockClient.On("Do", mock.Anything).Return(nil, context.Canceled).Once()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	rr := httptest.NewRecorder()
	gw.RouteHandler(rr, httptest.NewRequest(http.MethodGet, "/api/panel/dashboard", nil).WithContext(ctx))

	assert.Equal(t, http.StatusGatewayTimeout, rr.Code)
}

func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, upstreams.Validate())

	missing := upstreams
	missing.NotifySvcURL = ""
	err := missing.Validate()
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.ErrorContains(t, err, "NOTIFY_SVC_URL")

	relative := upstreams
	relative.AuthSvcURL = "auth-svc:8084"
	assert.ErrorIs(t, relative.Validate(), config.ErrInvalidConfig)
}
