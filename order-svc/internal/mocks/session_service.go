package mocks

import (
	"context"

	"savr/order-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

type SessionServiceInterface struct {
	mock.Mock
}

func NewSessionServiceInterface(t testingT) *SessionServiceInterface {
	m := &SessionServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *SessionServiceInterface) Cart(ctx context.Context, token string, loc domain.Location) (domain.CartSummary, error) {
	ret := _m.Called(ctx, token, loc)
	return ret.Get(0).(domain.CartSummary), ret.Error(1)
}

func (_m *SessionServiceInterface) AddToCart(ctx context.Context, token string, req domain.AddToCartRequest) (domain.CartItem, error) {
	ret := _m.Called(ctx, token, req)
	return ret.Get(0).(domain.CartItem), ret.Error(1)
}

func (_m *SessionServiceInterface) ChangeQuantity(ctx context.Context, token, itemID string, delta int) error {
	return _m.Called(ctx, token, itemID, delta).Error(0)
}

func (_m *SessionServiceInterface) RemoveCartItem(ctx context.Context, token, itemID string) error {
	return _m.Called(ctx, token, itemID).Error(0)
}

func (_m *SessionServiceInterface) ClearCart(ctx context.Context, token string) error {
	return _m.Called(ctx, token).Error(0)
}

func (_m *SessionServiceInterface) PlaceOrder(ctx context.Context, token string) ([]domain.Order, error) {
	ret := _m.Called(ctx, token)
	var r0 []domain.Order
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.Order)
	}
	return r0, ret.Error(1)
}

func (_m *SessionServiceInterface) Orders(ctx context.Context, token, tab string) (domain.OrdersView, error) {
	ret := _m.Called(ctx, token, tab)
	return ret.Get(0).(domain.OrdersView), ret.Error(1)
}

func (_m *SessionServiceInterface) UpdateOrderStatus(ctx context.Context, token, orderID string, status domain.OrderStatus) (*domain.Order, error) {
	ret := _m.Called(ctx, token, orderID, status)
	var r0 *domain.Order
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.Order)
	}
	return r0, ret.Error(1)
}

func (_m *SessionServiceInterface) SubmitRating(ctx context.Context, token, orderID string, rating int) (*domain.Order, error) {
	ret := _m.Called(ctx, token, orderID, rating)
	var r0 *domain.Order
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.Order)
	}
	return r0, ret.Error(1)
}

func (_m *SessionServiceInterface) PendingRating(ctx context.Context, token string) (string, error) {
	ret := _m.Called(ctx, token)
	return ret.String(0), ret.Error(1)
}

func (_m *SessionServiceInterface) DismissRatingPrompt(ctx context.Context, token string) error {
	return _m.Called(ctx, token).Error(0)
}

func (_m *SessionServiceInterface) Metrics(ctx context.Context, token string, loc domain.Location) (domain.DinerMetrics, error) {
	ret := _m.Called(ctx, token, loc)
	return ret.Get(0).(domain.DinerMetrics), ret.Error(1)
}

func (_m *SessionServiceInterface) OrderQRCode(ctx context.Context, token, orderID string) ([]byte, error) {
	ret := _m.Called(ctx, token, orderID)
	var r0 []byte
	if v := ret.Get(0); v != nil {
		r0 = v.([]byte)
	}
	return r0, ret.Error(1)
}
