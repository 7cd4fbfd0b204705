package mocks

import (
	"context"

	"savr/notify-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

type NotificationServiceInterface struct {
	mock.Mock
}

func NewNotificationServiceInterface(t testingT) *NotificationServiceInterface {
	m := &NotificationServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *NotificationServiceInterface) Push(ctx context.Context, owner string, input domain.PushInput) (domain.Notification, error) {
	ret := _m.Called(ctx, owner, input)
	return ret.Get(0).(domain.Notification), ret.Error(1)
}

func (_m *NotificationServiceInterface) Ingest(ctx context.Context, owner string, message domain.FCMMessage) (domain.Notification, error) {
	ret := _m.Called(ctx, owner, message)
	return ret.Get(0).(domain.Notification), ret.Error(1)
}

func (_m *NotificationServiceInterface) List(ctx context.Context, owner string) ([]domain.Notification, error) {
	ret := _m.Called(ctx, owner)
	var r0 []domain.Notification
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.Notification)
	}
	return r0, ret.Error(1)
}

func (_m *NotificationServiceInterface) MarkAllRead(ctx context.Context, owner string) error {
	return _m.Called(ctx, owner).Error(0)
}

func (_m *NotificationServiceInterface) Clear(ctx context.Context, owner string) error {
	return _m.Called(ctx, owner).Error(0)
}

type FeedStore struct {
	mock.Mock
}

func NewFeedStore(t testingT) *FeedStore {
	m := &FeedStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *FeedStore) Prepend(ctx context.Context, owner string, n domain.Notification, limit int) error {
	return _m.Called(ctx, owner, n, limit).Error(0)
}

func (_m *FeedStore) List(ctx context.Context, owner string) ([]domain.Notification, error) {
	ret := _m.Called(ctx, owner)
	var r0 []domain.Notification
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.Notification)
	}
	return r0, ret.Error(1)
}

func (_m *FeedStore) MarkAllRead(ctx context.Context, owner string) error {
	return _m.Called(ctx, owner).Error(0)
}

func (_m *FeedStore) Clear(ctx context.Context, owner string) error {
	return _m.Called(ctx, owner).Error(0)
}

type OrderEventHandler struct {
	mock.Mock
}

func NewOrderEventHandler(t testingT) *OrderEventHandler {
	m := &OrderEventHandler{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *OrderEventHandler) HandleOrderEvent(ctx context.Context, event domain.OrderEvent) error {
	return _m.Called(ctx, event).Error(0)
}
