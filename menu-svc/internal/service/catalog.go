package service

import (
	"context"
	"math"
	"sort"
	"strings"
	"time"

	"savr/menu-svc/internal/domain"
	"savr/monitoring"
)

type CatalogService struct {
	restaurants []domain.Restaurant
	latency     time.Duration
}

func NewCatalogService(restaurants []domain.Restaurant, latency time.Duration) *CatalogService {
	return &CatalogService{restaurants: restaurants, latency: latency}
}

// FetchNearby returns the catalog in a coordinate-dependent order.
func (s *CatalogService) FetchNearby(ctx context.Context, latitude, longitude float64, token string) ([]domain.Restaurant, error) {
	if strings.TrimSpace(token) == "" {
		return nil, ErrMissingToken
	}
	if err := wait(ctx, s.latency); err != nil {
		return nil, err
	}

	seed := int(math.Abs(jsRound(latitude*1000+longitude*1000))) % 3
	out := make([]domain.Restaurant, len(s.restaurants))
	for i, restaurant := range s.restaurants {
		out[i] = cloneRestaurant(restaurant)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return rank(out[i].ID, seed) < rank(out[j].ID, seed)
	})

	monitoring.RecordOperation(serviceName, "fetch_nearby", true)
	return out, nil
}

func rank(id string, seed int) int {
	var code int
	if len(id) > 1 {
		code = int(id[1])
	}
	return (code + seed) % 3
}

// jsRound rounds half up, towards positive infinity.
func jsRound(x float64) float64 {
	return math.Floor(x + 0.5)
}

func cloneRestaurant(r domain.Restaurant) domain.Restaurant {
	foods := make([]domain.FoodItem, len(r.Foods))
	copy(foods, r.Foods)
	r.Foods = foods
	return r
}

var _ CatalogServiceInterface = (*CatalogService)(nil)
