package service

import (
	"context"

	"savr/analytics-svc/internal/domain"
)

type MetricsStore interface {
	// Get returns nil without an error when no snapshot is stored.
	Get(ctx context.Context, restaurantID string) (*domain.RestaurantMetrics, error)
	Put(ctx context.Context, restaurantID string, metrics domain.RestaurantMetrics) error
}

type AnalyticsInterface interface {
	FetchMetrics(ctx context.Context, restaurantID string) (domain.RestaurantMetrics, error)
	SaveMetrics(ctx context.Context, restaurantID string, metrics domain.RestaurantMetrics) error
	Dashboard(ctx context.Context, restaurantID string) (domain.Dashboard, error)
}

var _ AnalyticsInterface = (*AnalyticsService)(nil)
