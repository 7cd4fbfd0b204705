// Package mocks holds testify mocks for the order-svc interfaces.
package mocks

import (
	"context"

	"savr/order-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

type CatalogProvider struct {
	mock.Mock
}

func NewCatalogProvider(t testingT) *CatalogProvider {
	m := &CatalogProvider{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *CatalogProvider) FetchNearby(ctx context.Context, latitude, longitude float64, token string) ([]domain.Restaurant, error) {
	ret := _m.Called(ctx, latitude, longitude, token)
	var r0 []domain.Restaurant
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.Restaurant)
	}
	return r0, ret.Error(1)
}

type OrderRepository struct {
	mock.Mock
}

func NewOrderRepository(t testingT) *OrderRepository {
	m := &OrderRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *OrderRepository) SaveOrder(ctx context.Context, sessionID string, order domain.Order) error {
	return _m.Called(ctx, sessionID, order).Error(0)
}

func (_m *OrderRepository) UpdateStatus(ctx context.Context, sessionID, orderID string, status domain.OrderStatus, completedAtEpoch *int64) error {
	return _m.Called(ctx, sessionID, orderID, status, completedAtEpoch).Error(0)
}

func (_m *OrderRepository) SaveRating(ctx context.Context, sessionID, orderID string, rating int) error {
	return _m.Called(ctx, sessionID, orderID, rating).Error(0)
}

func (_m *OrderRepository) ListOrders(ctx context.Context, sessionID string) ([]domain.Order, error) {
	ret := _m.Called(ctx, sessionID)
	var r0 []domain.Order
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.Order)
	}
	return r0, ret.Error(1)
}

func (_m *OrderRepository) SaveQRCode(ctx context.Context, sessionID, orderID string, qr []byte) error {
	return _m.Called(ctx, sessionID, orderID, qr).Error(0)
}

func (_m *OrderRepository) GetQRCode(ctx context.Context, sessionID, orderID string) ([]byte, error) {
	ret := _m.Called(ctx, sessionID, orderID)
	var r0 []byte
	if v := ret.Get(0); v != nil {
		r0 = v.([]byte)
	}
	return r0, ret.Error(1)
}

type OrderPublisher struct {
	mock.Mock
}

func NewOrderPublisher(t testingT) *OrderPublisher {
	m := &OrderPublisher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *OrderPublisher) PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error {
	return _m.Called(ctx, event).Error(0)
}

type QRGenerator struct {
	mock.Mock
}

func NewQRGenerator(t testingT) *QRGenerator {
	m := &QRGenerator{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *QRGenerator) Generate(orderID string) ([]byte, error) {
	ret := _m.Called(orderID)
	var r0 []byte
	if v := ret.Get(0); v != nil {
		r0 = v.([]byte)
	}
	return r0, ret.Error(1)
}
