package service_test

import (
	"testing"

	"savr/menu-svc/internal/domain"
	"savr/menu-svc/internal/service"

	"github.com/stretchr/testify/assert"
)

func TestFilterRestaurants(t *testing.T) {
	restaurants := service.FixtureRestaurants()

	tests := []struct {
		name     string
		modify   func(f *domain.RestaurantFilter)
		expected []string
	}{
		{name: "defaults_sort_by_distance", modify: func(f *domain.RestaurantFilter) {}, expected: []string{"r3", "r1", "r2"}},
		{name: "sort_by_rating", modify: func(f *domain.RestaurantFilter) { f.SortBy = domain.SortByRating }, expected: []string{"r3", "r1", "r2"}},
		{name: "max_distance", modify: func(f *domain.RestaurantFilter) { f.MaxDistanceKm = 1.4 }, expected: []string{"r3", "r1"}},
		{name: "min_rating", modify: func(f *domain.RestaurantFilter) { f.MinRating = 4.6 }, expected: []string{"r3", "r1"}},
		{name: "query_matches_cuisine", modify: func(f *domain.RestaurantFilter) { f.Query = "healthy" }, expected: []string{"r2"}},
		{name: "query_is_case_insensitive", modify: func(f *domain.RestaurantFilter) { f.Query = "  SLICE " }, expected: []string{"r3"}},
		{name: "no_match", modify: func(f *domain.RestaurantFilter) { f.Query = "sushi" }, expected: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter := service.DefaultFilter()
			tt.modify(&filter)

			assert.Equal(t, tt.expected, ids(service.FilterRestaurants(restaurants, filter)))
		})
	}
}

func TestFilterRestaurants_keepsInput(t *testing.T) {
	restaurants := service.FixtureRestaurants()

	service.FilterRestaurants(restaurants, service.DefaultFilter())

	assert.Equal(t, []string{"r1", "r2", "r3"}, ids(restaurants))
}
