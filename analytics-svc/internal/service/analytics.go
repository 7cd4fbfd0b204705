package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"savr/analytics-svc/internal/domain"
	"savr/monitoring"

	"go.uber.org/zap"
)

const serviceName = "analytics-svc"

const DefaultRestaurantID = "r1"

var ErrInvalidMetrics = errors.New("invalid metrics")

// FixtureMetrics is served until a snapshot is stored for a restaurant.
func FixtureMetrics() domain.RestaurantMetrics {
	return domain.RestaurantMetrics{
		TodayEarnings:     18650,
		TotalRevenue:      892000,
		WeeklyRevenue:     120450,
		MonthlyRevenue:    402300,
		AverageOrderValue: 412,
		OrdersToday:       46,
		OrderStatus: domain.OrderStatusCounts{
			Pending:   8,
			Preparing: 5,
			Completed: 31,
			Cancelled: 2,
		},
		RevenueChannels: []domain.RevenueChannel{
			{Label: "Dine In", Amount: 6200, Percentage: 33},
			{Label: "Delivery", Amount: 9300, Percentage: 50},
			{Label: "Takeaway", Amount: 3150, Percentage: 17},
		},
	}
}

type AnalyticsService struct {
	store   MetricsStore
	latency time.Duration
	logger  *zap.SugaredLogger
}

func NewAnalyticsService(store MetricsStore, latency time.Duration, logger *zap.SugaredLogger) *AnalyticsService {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &AnalyticsService{store: store, latency: latency, logger: logger}
}

// FetchMetrics reads the stored snapshot, falling back to the fixture when
// the store has none or cannot be read.
func (s *AnalyticsService) FetchMetrics(ctx context.Context, restaurantID string) (domain.RestaurantMetrics, error) {
	restaurantID = normalizeRestaurantID(restaurantID)
	if err := wait(ctx, s.latency); err != nil {
		return domain.RestaurantMetrics{}, err
	}

	metrics, err := s.store.Get(ctx, restaurantID)
	if err != nil {
		if ctx.Err() != nil {
			return domain.RestaurantMetrics{}, ctx.Err()
		}
		s.logger.Warnw("metrics store read failed, serving fixture", "restaurant_id", restaurantID, "error", err)
		monitoring.RecordOperation(serviceName, "fetch_metrics", false)
		return FixtureMetrics(), nil
	}
	monitoring.RecordOperation(serviceName, "fetch_metrics", true)
	if metrics == nil {
		return FixtureMetrics(), nil
	}
	return *metrics, nil
}

func (s *AnalyticsService) SaveMetrics(ctx context.Context, restaurantID string, metrics domain.RestaurantMetrics) error {
	if err := validateMetrics(metrics); err != nil {
		return err
	}
	restaurantID = normalizeRestaurantID(restaurantID)
	if metrics.RevenueChannels == nil {
		metrics.RevenueChannels = []domain.RevenueChannel{}
	}
	if err := s.store.Put(ctx, restaurantID, metrics); err != nil {
		monitoring.RecordOperation(serviceName, "save_metrics", false)
		return fmt.Errorf("store metrics for %s: %w", restaurantID, err)
	}
	monitoring.RecordOperation(serviceName, "save_metrics", true)
	s.logger.Infow("metrics snapshot stored", "restaurant_id", restaurantID)
	return nil
}

func (s *AnalyticsService) Dashboard(ctx context.Context, restaurantID string) (domain.Dashboard, error) {
	metrics, err := s.FetchMetrics(ctx, restaurantID)
	if err != nil {
		return domain.Dashboard{}, err
	}
	return BuildDashboard(metrics), nil
}

func normalizeRestaurantID(id string) string {
	if id = strings.TrimSpace(id); id == "" {
		return DefaultRestaurantID
	}
	return id
}

func validateMetrics(m domain.RestaurantMetrics) error {
	switch {
	case m.TodayEarnings < 0 || m.TotalRevenue < 0 || m.WeeklyRevenue < 0 || m.MonthlyRevenue < 0 || m.AverageOrderValue < 0:
		return fmt.Errorf("%w: revenue must not be negative", ErrInvalidMetrics)
	case m.OrdersToday < 0:
		return fmt.Errorf("%w: orders today must not be negative", ErrInvalidMetrics)
	case m.OrderStatus.Pending < 0 || m.OrderStatus.Preparing < 0 || m.OrderStatus.Completed < 0 || m.OrderStatus.Cancelled < 0:
		return fmt.Errorf("%w: order status counts must not be negative", ErrInvalidMetrics)
	}
	for _, channel := range m.RevenueChannels {
		if strings.TrimSpace(channel.Label) == "" {
			return fmt.Errorf("%w: revenue channel label is required", ErrInvalidMetrics)
		}
		if channel.Amount < 0 || channel.Percentage < 0 || channel.Percentage > 100 {
			return fmt.Errorf("%w: revenue channel %q is out of range", ErrInvalidMetrics, channel.Label)
		}
	}
	return nil
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
