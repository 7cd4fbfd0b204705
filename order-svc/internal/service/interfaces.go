package service

import (
	"context"

	"savr/order-svc/internal/domain"
)

type CatalogProvider interface {
	FetchNearby(ctx context.Context, latitude, longitude float64, token string) ([]domain.Restaurant, error)
}

// OrderRepository stores orders per session. Order ids are only unique
// within a session, so every lookup is scoped by sessionID.
type OrderRepository interface {
	SaveOrder(ctx context.Context, sessionID string, order domain.Order) error
	UpdateStatus(ctx context.Context, sessionID, orderID string, status domain.OrderStatus, completedAtEpoch *int64) error
	SaveRating(ctx context.Context, sessionID, orderID string, rating int) error
	ListOrders(ctx context.Context, sessionID string) ([]domain.Order, error)
	SaveQRCode(ctx context.Context, sessionID, orderID string, qr []byte) error
	GetQRCode(ctx context.Context, sessionID, orderID string) ([]byte, error)
}

type OrderPublisher interface {
	PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error
}

type SessionServiceInterface interface {
	Cart(ctx context.Context, token string, loc domain.Location) (domain.CartSummary, error)
	AddToCart(ctx context.Context, token string, req domain.AddToCartRequest) (domain.CartItem, error)
	ChangeQuantity(ctx context.Context, token, itemID string, delta int) error
	RemoveCartItem(ctx context.Context, token, itemID string) error
	ClearCart(ctx context.Context, token string) error
	PlaceOrder(ctx context.Context, token string) ([]domain.Order, error)
	Orders(ctx context.Context, token, tab string) (domain.OrdersView, error)
	UpdateOrderStatus(ctx context.Context, token, orderID string, status domain.OrderStatus) (*domain.Order, error)
	SubmitRating(ctx context.Context, token, orderID string, rating int) (*domain.Order, error)
	PendingRating(ctx context.Context, token string) (string, error)
	DismissRatingPrompt(ctx context.Context, token string) error
	Metrics(ctx context.Context, token string, loc domain.Location) (domain.DinerMetrics, error)
	OrderQRCode(ctx context.Context, token, orderID string) ([]byte, error)
}

var _ SessionServiceInterface = (*SessionService)(nil)
