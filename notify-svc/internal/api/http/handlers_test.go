package httpapi_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	httpapi "savr/notify-svc/internal/api/http"
	"savr/notify-svc/internal/domain"
	"savr/notify-svc/internal/mocks"
	"savr/notify-svc/internal/service"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var dinerOwner = service.OwnerID("diner-token")

func setupTestRouter(mockSvc *mocks.NotificationServiceInterface) *mux.Router {
	handler := httpapi.NewHandler(mockSvc, nil)
	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	return r
}

func serve(router http.Handler, method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

var bearer = map[string]string{"Authorization": "Bearer diner-token"}

func TestHandler_healthCheck(t *testing.T) {
	router := setupTestRouter(mocks.NewNotificationServiceInterface(t))

	rec := serve(router, http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"service":"notify-svc"`)
}

func TestHandler_list(t *testing.T) {
	mockSvc := mocks.NewNotificationServiceInterface(t)
	router := setupTestRouter(mockSvc)

	tests := []struct {
		name         string
		headers      map[string]string
		prepareMocks func()
		expectedCode int
		expectedBody string
	}{
		{
			name:    "bearer_token",
			headers: bearer,
			prepareMocks: func() {
				mockSvc.On("List", mock.Anything, dinerOwner).Return([]domain.Notification{
					{ID: "n-2", Title: "Order placed"},
					{ID: "n-1", Title: "Order completed", Read: true},
				}, nil).Once()
			},
			expectedCode: http.StatusOK,
			expectedBody: `"unread":1`,
		},
		{
			name:    "session_token_header",
			headers: map[string]string{"X-Session-Token": "diner-token"},
			prepareMocks: func() {
				mockSvc.On("List", mock.Anything, dinerOwner).Return(nil, nil).Once()
			},
			expectedCode: http.StatusOK,
			expectedBody: `"unread":0`,
		},
		{
			name:    "missing_token",
			headers: nil,
			prepareMocks: func() {
				mockSvc.On("List", mock.Anything, "").Return(nil, service.ErrMissingOwner).Once()
			},
			expectedCode: http.StatusUnauthorized,
			expectedBody: "Missing authenticated token.",
		},
		{
			name:    "store_failure",
			headers: bearer,
			prepareMocks: func() {
				mockSvc.On("List", mock.Anything, dinerOwner).Return(nil, errors.New("redis down")).Once()
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: "Unable to load notifications.",
		},
		{
			name:    "timeout",
			headers: bearer,
			prepareMocks: func() {
				mockSvc.On("List", mock.Anything, dinerOwner).Return(nil, context.DeadlineExceeded).Once()
			},
			expectedCode: http.StatusGatewayTimeout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMocks()

			rec := serve(router, http.MethodGet, "/api/notifications", "", tt.headers)

			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
		})
	}
}

func TestHandler_push(t *testing.T) {
	mockSvc := mocks.NewNotificationServiceInterface(t)
	router := setupTestRouter(mockSvc)

	tests := []struct {
		name         string
		body         string
		prepareMocks func()
		expectedCode int
		expectedBody string
	}{
		{
			name: "created",
			body: `{"title":"Offer","body":"20% off"}`,
			prepareMocks: func() {
				mockSvc.On("Push", mock.Anything, dinerOwner, domain.PushInput{Title: "Offer", Body: "20% off"}).
					Return(domain.Notification{ID: "n-1-abc1234", Title: "Offer", Body: "20% off"}, nil).Once()
			},
			expectedCode: http.StatusCreated,
			expectedBody: `"id":"n-1-abc1234"`,
		},
		{
			name:         "invalid_json",
			body:         `{"title":`,
			prepareMocks: func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMocks()

			rec := serve(router, http.MethodPost, "/api/notifications", tt.body, bearer)

			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
		})
	}
}

func TestHandler_ingest(t *testing.T) {
	mockSvc := mocks.NewNotificationServiceInterface(t)
	router := setupTestRouter(mockSvc)
	mockSvc.On("Ingest", mock.Anything, dinerOwner, mock.MatchedBy(func(m domain.FCMMessage) bool {
		return m.Notification != nil && *m.Notification.Title == "Offer" && m.Data["promo"] == "yes"
	})).Return(domain.Notification{ID: "n-5-abc1234", Title: "Offer"}, nil).Once()

	rec := serve(router, http.MethodPost, "/api/notifications/ingest",
		`{"messageId":"m1","notification":{"title":"Offer"},"data":{"promo":"yes"}}`, bearer)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"n-5-abc1234"`)
}

func TestHandler_markAllReadAndClear(t *testing.T) {
	mockSvc := mocks.NewNotificationServiceInterface(t)
	router := setupTestRouter(mockSvc)
	mockSvc.On("MarkAllRead", mock.Anything, dinerOwner).Return(nil).Once()
	mockSvc.On("Clear", mock.Anything, dinerOwner).Return(nil).Once()
	mockSvc.On("Clear", mock.Anything, "").Return(service.ErrMissingOwner).Once()

	rec := serve(router, http.MethodPost, "/api/notifications/read-all", "", bearer)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = serve(router, http.MethodDelete, "/api/notifications", "", bearer)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = serve(router, http.MethodDelete, "/api/notifications", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
