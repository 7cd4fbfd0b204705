package service

import (
	"sort"
	"strings"

	"savr/menu-svc/internal/domain"
)

const (
	DefaultMaxDistanceKm = 10
	DefaultMinRating     = 0
)

func DefaultFilter() domain.RestaurantFilter {
	return domain.RestaurantFilter{
		MaxDistanceKm: DefaultMaxDistanceKm,
		MinRating:     DefaultMinRating,
		SortBy:        domain.SortByDistance,
	}
}

// FilterRestaurants narrows a nearby list the way the diner's search and
// filter sheet does. The input slice is not modified.
func FilterRestaurants(restaurants []domain.Restaurant, filter domain.RestaurantFilter) []domain.Restaurant {
	query := strings.ToLower(strings.TrimSpace(filter.Query))

	out := make([]domain.Restaurant, 0, len(restaurants))
	for _, restaurant := range restaurants {
		if restaurant.DistanceKm > filter.MaxDistanceKm {
			continue
		}
		if restaurant.AverageRating < filter.MinRating {
			continue
		}
		if query != "" {
			haystack := strings.ToLower(restaurant.Name + " " + restaurant.Cuisine)
			if !strings.Contains(haystack, query) {
				continue
			}
		}
		out = append(out, restaurant)
	}

	switch filter.SortBy {
	case domain.SortByRating:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].AverageRating > out[j].AverageRating
		})
	case domain.SortByDistance:
		fallthrough
	default:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].DistanceKm < out[j].DistanceKm
		})
	}
	return out
}
