package mocks

import (
	"context"

	"savr/analytics-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

type AnalyticsInterface struct {
	mock.Mock
}

func NewAnalyticsInterface(t testingT) *AnalyticsInterface {
	m := &AnalyticsInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *AnalyticsInterface) FetchMetrics(ctx context.Context, restaurantID string) (domain.RestaurantMetrics, error) {
	ret := _m.Called(ctx, restaurantID)
	return ret.Get(0).(domain.RestaurantMetrics), ret.Error(1)
}

func (_m *AnalyticsInterface) SaveMetrics(ctx context.Context, restaurantID string, metrics domain.RestaurantMetrics) error {
	return _m.Called(ctx, restaurantID, metrics).Error(0)
}

func (_m *AnalyticsInterface) Dashboard(ctx context.Context, restaurantID string) (domain.Dashboard, error) {
	ret := _m.Called(ctx, restaurantID)
	return ret.Get(0).(domain.Dashboard), ret.Error(1)
}

type MetricsStore struct {
	mock.Mock
}

func NewMetricsStore(t testingT) *MetricsStore {
	m := &MetricsStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *MetricsStore) Get(ctx context.Context, restaurantID string) (*domain.RestaurantMetrics, error) {
	ret := _m.Called(ctx, restaurantID)
	var r0 *domain.RestaurantMetrics
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.RestaurantMetrics)
	}
	return r0, ret.Error(1)
}

func (_m *MetricsStore) Put(ctx context.Context, restaurantID string, metrics domain.RestaurantMetrics) error {
	return _m.Called(ctx, restaurantID, metrics).Error(0)
}
