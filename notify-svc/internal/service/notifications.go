package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"savr/monitoring"
	"savr/notify-svc/internal/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const serviceName = "notify-svc"

// FeedLimit is how many notifications a feed keeps.
const FeedLimit = 50

const (
	defaultTitle       = "Notification"
	defaultBody        = "New update available."
	defaultIngestTitle = "Notification"
	defaultIngestBody  = "You have a new update."
)

var ErrMissingOwner = errors.New("Missing authenticated token.")

// OwnerID maps a diner token to the session id order-svc stamps on its
// events.
func OwnerID(token string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(token)).String()
}

type NotificationService struct {
	store  FeedStore
	now    func() time.Time
	suffix func() string
	logger *zap.SugaredLogger
}

type Option func(*NotificationService)

func WithClock(now func() time.Time) Option {
	return func(s *NotificationService) { s.now = now }
}

func WithIDSuffix(suffix func() string) Option {
	return func(s *NotificationService) { s.suffix = suffix }
}

func NewNotificationService(store FeedStore, logger *zap.SugaredLogger, opts ...Option) *NotificationService {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	s := &NotificationService{store: store, now: time.Now, suffix: randomSuffix, logger: logger}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func randomSuffix() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:7]
}

func (s *NotificationService) Push(ctx context.Context, owner string, input domain.PushInput) (domain.Notification, error) {
	if owner == "" {
		return domain.Notification{}, ErrMissingOwner
	}
	received := input.ReceivedAtEpoch
	if received == 0 {
		received = s.now().UnixMilli()
	}
	n := domain.Notification{
		ID:              fmt.Sprintf("n-%d-%s", received, s.suffix()),
		Title:           orDefault(input.Title, defaultTitle),
		Body:            orDefault(input.Body, defaultBody),
		ReceivedAtEpoch: received,
		Data:            input.Data,
	}
	if err := s.store.Prepend(ctx, owner, n, FeedLimit); err != nil {
		monitoring.RecordOperation(serviceName, "push", false)
		return domain.Notification{}, fmt.Errorf("prepend notification: %w", err)
	}
	monitoring.RecordOperation(serviceName, "push", true)
	return n, nil
}

// Ingest turns a push-service payload into a feed entry. Notification fields
// win over data fields; missing ones fall back to defaults.
func (s *NotificationService) Ingest(ctx context.Context, owner string, message domain.FCMMessage) (domain.Notification, error) {
	title, body := defaultIngestTitle, defaultIngestBody
	if v, ok := message.Data["title"]; ok {
		title = v
	}
	if v, ok := message.Data["body"]; ok {
		body = v
	}
	if message.Notification != nil {
		if message.Notification.Title != nil {
			title = *message.Notification.Title
		}
		if message.Notification.Body != nil {
			body = *message.Notification.Body
		}
	}
	input := domain.PushInput{Title: title, Body: body, Data: message.Data}
	if message.SentTime != nil {
		input.ReceivedAtEpoch = *message.SentTime
	}
	return s.Push(ctx, owner, input)
}

func (s *NotificationService) List(ctx context.Context, owner string) ([]domain.Notification, error) {
	if owner == "" {
		return nil, ErrMissingOwner
	}
	return s.store.List(ctx, owner)
}

func (s *NotificationService) MarkAllRead(ctx context.Context, owner string) error {
	if owner == "" {
		return ErrMissingOwner
	}
	return s.store.MarkAllRead(ctx, owner)
}

func (s *NotificationService) Clear(ctx context.Context, owner string) error {
	if owner == "" {
		return ErrMissingOwner
	}
	return s.store.Clear(ctx, owner)
}

// HandleOrderEvent notifies the diner who owns the order. Events that do not
// concern the diner are ignored.
func (s *NotificationService) HandleOrderEvent(ctx context.Context, event domain.OrderEvent) error {
	input, ok := notificationFor(event)
	if !ok || event.SessionID == "" {
		return nil
	}
	if !event.Timestamp.IsZero() {
		input.ReceivedAtEpoch = event.Timestamp.UnixMilli()
	}
	n, err := s.Push(ctx, event.SessionID, input)
	if err != nil {
		return err
	}
	s.logger.Infow("order notification pushed", "order_id", event.OrderID, "type", event.Type, "notification_id", n.ID)
	return nil
}

func notificationFor(event domain.OrderEvent) (domain.PushInput, bool) {
	restaurant := orDefault(event.RestaurantName, "the restaurant")
	data := map[string]string{
		"type":          event.Type,
		"order_id":      event.OrderID,
		"restaurant_id": event.RestaurantID,
	}
	switch event.Type {
	case domain.EventOrderPlaced:
		return domain.PushInput{
			Title: "Order placed",
			Body:  fmt.Sprintf("Your order from %s has been placed.", restaurant),
			Data:  data,
		}, true
	case domain.EventOrderStatusChanged:
		switch event.Status {
		case "preparing":
			return domain.PushInput{
				Title: "Order is being prepared",
				Body:  fmt.Sprintf("%s has started preparing your order.", restaurant),
				Data:  data,
			}, true
		case "completed":
			return domain.PushInput{
				Title: "Order completed",
				Body:  fmt.Sprintf("Rate your meal from %s.", restaurant),
				Data:  data,
			}, true
		}
	case domain.EventOrderRated:
		return domain.PushInput{
			Title: "Thanks for rating",
			Body:  fmt.Sprintf("You rated %s %d/5.", restaurant, event.Rating),
			Data:  data,
		}, true
	}
	return domain.PushInput{}, false
}

func orDefault(s, fallback string) string {
	if s = strings.TrimSpace(s); s == "" {
		return fallback
	}
	return s
}
