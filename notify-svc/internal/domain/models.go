package domain

import "time"

type Notification struct {
	ID              string            `json:"id"`
	Title           string            `json:"title"`
	Body            string            `json:"body"`
	ReceivedAtEpoch int64             `json:"received_at_epoch"`
	Read            bool              `json:"read"`
	Data            map[string]string `json:"data,omitempty"`
}

type PushInput struct {
	Title           string            `json:"title"`
	Body            string            `json:"body"`
	Data            map[string]string `json:"data,omitempty"`
	ReceivedAtEpoch int64             `json:"received_at_epoch,omitempty"`
}

type FCMNotification struct {
	Title *string `json:"title,omitempty"`
	Body  *string `json:"body,omitempty"`
}

// FCMMessage is the subset of a push-service payload the feed understands.
type FCMMessage struct {
	MessageID    string            `json:"messageId,omitempty"`
	SentTime     *int64            `json:"sentTime,omitempty"`
	Notification *FCMNotification  `json:"notification,omitempty"`
	Data         map[string]string `json:"data,omitempty"`
}

const (
	EventOrderPlaced        = "order_placed"
	EventOrderStatusChanged = "order_status_changed"
	EventOrderRated         = "order_rated"
)

// OrderEvent is the message order-svc publishes on the orders topic.
type OrderEvent struct {
	Type             string    `json:"type"`
	SessionID        string    `json:"session_id"`
	OrderID          string    `json:"order_id"`
	RestaurantID     string    `json:"restaurant_id"`
	RestaurantName   string    `json:"restaurant_name"`
	Status           string    `json:"status"`
	TotalAmount      float64   `json:"total_amount"`
	Rating           int       `json:"rating,omitempty"`
	CompletedAtEpoch int64     `json:"completed_at_epoch,omitempty"`
	Timestamp        time.Time `json:"timestamp"`
}
