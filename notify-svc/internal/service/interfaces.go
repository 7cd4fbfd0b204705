package service

import (
	"context"

	"savr/notify-svc/internal/domain"
)

type FeedStore interface {
	// Prepend adds n in front of owner's feed and keeps the newest limit
	// entries.
	Prepend(ctx context.Context, owner string, n domain.Notification, limit int) error
	List(ctx context.Context, owner string) ([]domain.Notification, error)
	MarkAllRead(ctx context.Context, owner string) error
	Clear(ctx context.Context, owner string) error
}

type NotificationServiceInterface interface {
	Push(ctx context.Context, owner string, input domain.PushInput) (domain.Notification, error)
	Ingest(ctx context.Context, owner string, message domain.FCMMessage) (domain.Notification, error)
	List(ctx context.Context, owner string) ([]domain.Notification, error)
	MarkAllRead(ctx context.Context, owner string) error
	Clear(ctx context.Context, owner string) error
}

type OrderEventHandler interface {
	HandleOrderEvent(ctx context.Context, event domain.OrderEvent) error
}

var (
	_ NotificationServiceInterface = (*NotificationService)(nil)
	_ OrderEventHandler            = (*NotificationService)(nil)
)
