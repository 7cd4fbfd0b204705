package httpapi_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	httpapi "savr/menu-svc/internal/api/http"
	"savr/menu-svc/internal/domain"
	"savr/menu-svc/internal/mocks"
	"savr/menu-svc/internal/service"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type testMocks struct {
	catalog *mocks.CatalogServiceInterface
	menu    *mocks.MenuServiceInterface
	profile *mocks.ProfileServiceInterface
}

func setupTestRouter(t *testing.T) (*mux.Router, testMocks) {
	m := testMocks{
		catalog: mocks.NewCatalogServiceInterface(t),
		menu:    mocks.NewMenuServiceInterface(t),
		profile: mocks.NewProfileServiceInterface(t),
	}
	handler := httpapi.NewHandler(m.catalog, m.menu, m.profile, nil)
	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	return r, m
}

func do(router http.Handler, method, target, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandler_healthCheck(t *testing.T) {
	router, _ := setupTestRouter(t)

	rec := do(router, http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"service":"menu-svc"`)
}

func TestHandler_getNearby(t *testing.T) {
	tests := []struct {
		name         string
		target       string
		token        string
		prepareMocks func(m testMocks)
		expectedCode int
		expectedBody string
	}{
		{
			name:   "seed_order_without_filters",
			target: "/api/restaurants/nearby?lat=12.5&lng=77.25",
			token:  "diner",
			prepareMocks: func(m testMocks) {
				m.catalog.On("FetchNearby", mock.Anything, 12.5, 77.25, "diner").
					Return(service.FixtureRestaurants(), nil).Once()
			},
			expectedCode: http.StatusOK,
			expectedBody: `"id":"r1"`,
		},
		{
			name:   "filtered",
			target: "/api/restaurants/nearby?lat=1&lng=2&q=healthy",
			token:  "diner",
			prepareMocks: func(m testMocks) {
				m.catalog.On("FetchNearby", mock.Anything, 1.0, 2.0, "diner").
					Return(service.FixtureRestaurants(), nil).Once()
			},
			expectedCode: http.StatusOK,
			expectedBody: `"name":"Green Fork Cafe"`,
		},
		{
			name:   "missing_token",
			target: "/api/restaurants/nearby?lat=1&lng=2",
			prepareMocks: func(m testMocks) {
				m.catalog.On("FetchNearby", mock.Anything, 1.0, 2.0, "").
					Return(nil, service.ErrMissingToken).Once()
			},
			expectedCode: http.StatusUnauthorized,
			expectedBody: "Missing authenticated token.",
		},
		{
			name:   "bad_filter",
			target: "/api/restaurants/nearby?lat=1&lng=2&sort=price",
			token:  "diner",
			prepareMocks: func(m testMocks) {
				m.catalog.On("FetchNearby", mock.Anything, 1.0, 2.0, "diner").
					Return(service.FixtureRestaurants(), nil).Once()
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: "sort must be distance or rating",
		},
		{
			name:   "timeout",
			target: "/api/restaurants/nearby?lat=1&lng=2",
			token:  "diner",
			prepareMocks: func(m testMocks) {
				m.catalog.On("FetchNearby", mock.Anything, 1.0, 2.0, "diner").
					Return(nil, context.DeadlineExceeded).Once()
			},
			expectedCode: http.StatusGatewayTimeout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := setupTestRouter(t)
			tt.prepareMocks(m)

			rec := do(router, http.MethodGet, tt.target, "", tt.token)

			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
		})
	}
}

func TestHandler_getNearby_filteredExcludesOthers(t *testing.T) {
	router, m := setupTestRouter(t)
	m.catalog.On("FetchNearby", mock.Anything, 0.0, 0.0, "diner").Return(service.FixtureRestaurants(), nil).Once()

	rec := do(router, http.MethodGet, "/api/restaurants/nearby?max_distance=1", "", "diner")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"r3"`)
	assert.NotContains(t, rec.Body.String(), `"id":"r1"`)
}

func TestHandler_profile(t *testing.T) {
	view := domain.ProfileView{
		RestaurantProfile: domain.RestaurantProfile{StoreName: "Savr Signature Kitchen"},
		OpenTimeLabel:     "06:30",
		CloseTimeLabel:    "20:30",
	}

	tests := []struct {
		name         string
		method       string
		body         string
		prepareMocks func(m testMocks)
		expectedCode int
		expectedBody string
	}{
		{
			name:   "get",
			method: http.MethodGet,
			prepareMocks: func(m testMocks) {
				m.profile.On("FetchProfile", mock.Anything).Return(view, nil).Once()
			},
			expectedCode: http.StatusOK,
			expectedBody: `"open_time_label":"06:30"`,
		},
		{
			name:   "get_failure",
			method: http.MethodGet,
			prepareMocks: func(m testMocks) {
				m.profile.On("FetchProfile", mock.Anything).Return(domain.ProfileView{}, errors.New("db down")).Once()
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: service.MessageDashboardLoadError,
		},
		{
			name:   "save",
			method: http.MethodPut,
			body:   `{"store_name":"Savr Signature Kitchen","open_time":"06:30"}`,
			prepareMocks: func(m testMocks) {
				m.profile.On("SaveProfile", mock.Anything, domain.ProfileUpdate{
					RestaurantProfile: domain.RestaurantProfile{StoreName: "Savr Signature Kitchen"},
					OpenTime:          "06:30",
				}).Return(view, nil).Once()
			},
			expectedCode: http.StatusOK,
			expectedBody: service.MessageProfileSaved,
		},
		{
			name:   "save_invalid_label",
			method: http.MethodPut,
			body:   `{"open_time":"99:00"}`,
			prepareMocks: func(m testMocks) {
				m.profile.On("SaveProfile", mock.Anything, mock.Anything).
					Return(domain.ProfileView{}, fmt.Errorf("%w: %q", service.ErrInvalidTimeLabel, "99:00")).Once()
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: "invalid time label",
		},
		{
			name:   "save_failure",
			method: http.MethodPut,
			body:   `{}`,
			prepareMocks: func(m testMocks) {
				m.profile.On("SaveProfile", mock.Anything, mock.Anything).
					Return(domain.ProfileView{}, errors.New("db down")).Once()
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: service.MessageProfileSaveFailed,
		},
		{
			name:         "save_bad_json",
			method:       http.MethodPut,
			body:         `{`,
			prepareMocks: func(m testMocks) {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := setupTestRouter(t)
			tt.prepareMocks(m)

			rec := do(router, tt.method, "/api/panel/profile", tt.body, "owner")

			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
		})
	}
}

func TestHandler_getMenu(t *testing.T) {
	router, m := setupTestRouter(t)
	m.menu.On("FetchMenu", mock.Anything).Return([]domain.MenuItemView{
		{FoodItem: domain.FoodItem{ID: "m1", Name: "Pesto Pasta"}, FormattedSavings: "₹45.00"},
	}, nil).Once()

	rec := do(router, http.MethodGet, "/api/panel/menu", "", "owner")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"formatted_savings":"₹45.00"`)
}

func TestHandler_lookupMenuItem(t *testing.T) {
	tests := []struct {
		name         string
		target       string
		prepareMocks func(m testMocks)
		expectedCode int
		expectedBody string
	}{
		{
			name:   "found",
			target: "/api/panel/menu/lookup?name=pesto+pasta",
			prepareMocks: func(m testMocks) {
				m.menu.On("FindByName", mock.Anything, "pesto pasta").
					Return(domain.LookupResult{Item: &domain.FoodItem{ID: "m1"}, Message: service.MessageItemFound}, nil).Once()
			},
			expectedCode: http.StatusOK,
			expectedBody: service.MessageItemFound,
		},
		{
			name:   "not_found",
			target: "/api/panel/menu/lookup?name=soup",
			prepareMocks: func(m testMocks) {
				m.menu.On("FindByName", mock.Anything, "soup").
					Return(domain.LookupResult{Message: service.MessageItemNotFound}, nil).Once()
			},
			expectedCode: http.StatusOK,
			expectedBody: `"item":null`,
		},
		{
			name:         "blank_name",
			target:       "/api/panel/menu/lookup?name=%20",
			prepareMocks: func(m testMocks) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: "name is required",
		},
		{
			name:   "failure",
			target: "/api/panel/menu/lookup?name=soup",
			prepareMocks: func(m testMocks) {
				m.menu.On("FindByName", mock.Anything, "soup").Return(domain.LookupResult{}, errors.New("db down")).Once()
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: "Unable to fetch existing item details.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := setupTestRouter(t)
			tt.prepareMocks(m)

			rec := do(router, http.MethodGet, tt.target, "", "owner")

			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
		})
	}
}

func TestHandler_upsertMenuItem(t *testing.T) {
	input := domain.MenuItemInput{Name: "Soup", ActualPrice: 90, DiscountedPrice: 80, Quantity: 5}
	body := `{"name":"Soup","actual_price":90,"discounted_price":80,"quantity":5}`

	tests := []struct {
		name         string
		body         string
		prepareMocks func(m testMocks)
		expectedCode int
		expectedBody string
	}{
		{
			name: "added",
			body: body,
			prepareMocks: func(m testMocks) {
				m.menu.On("Upsert", mock.Anything, input).
					Return(domain.UpsertResult{Item: domain.FoodItem{ID: "m3"}, Message: service.MessageItemAdded}, nil).Once()
			},
			expectedCode: http.StatusCreated,
			expectedBody: `"was_existing":false`,
		},
		{
			name: "updated",
			body: body,
			prepareMocks: func(m testMocks) {
				m.menu.On("Upsert", mock.Anything, input).
					Return(domain.UpsertResult{Item: domain.FoodItem{ID: "m1"}, WasExisting: true, Message: service.MessageItemUpdated}, nil).Once()
			},
			expectedCode: http.StatusOK,
			expectedBody: service.MessageItemUpdated,
		},
		{
			name: "invalid",
			body: `{"name":""}`,
			prepareMocks: func(m testMocks) {
				m.menu.On("Upsert", mock.Anything, domain.MenuItemInput{}).
					Return(domain.UpsertResult{}, fmt.Errorf("%w: name is required", service.ErrInvalidMenuItem)).Once()
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: "name is required",
		},
		{
			name: "failure",
			body: body,
			prepareMocks: func(m testMocks) {
				m.menu.On("Upsert", mock.Anything, input).Return(domain.UpsertResult{}, errors.New("db down")).Once()
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: "Unable to save menu item.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := setupTestRouter(t)
			tt.prepareMocks(m)

			rec := do(router, http.MethodPut, "/api/panel/menu", tt.body, "owner")

			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
		})
	}
}
