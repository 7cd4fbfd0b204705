package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"savr/monitoring"
	"savr/order-svc/internal/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrMissingToken  = errors.New("Missing authenticated token.")
	ErrOrderNotFound = errors.New("order not found")
	ErrQRUnavailable = errors.New("qr code unavailable")
)

const (
	TabUpcoming  = "upcoming"
	TabCompleted = "completed"
)

// SessionID derives a stable identifier from a diner token so the raw token
// never reaches storage or the event stream.
func SessionID(token string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(token)).String()
}

// Session is the owned state of one diner token.
type Session struct {
	mu     sync.Mutex
	ID     string
	Cart   *Cart
	Orders *OrderBook

	lastSeen time.Time
}

type SessionService struct {
	mu       sync.Mutex
	sessions map[string]*Session

	catalog   CatalogProvider
	repo      OrderRepository
	publisher OrderPublisher
	qr        QRGenerator
	logger    *zap.SugaredLogger
	now       func() time.Time

	idleTTL   time.Duration
	lastSweep time.Time
}

type Option func(*SessionService)

func WithClock(now func() time.Time) Option {
	return func(s *SessionService) { s.now = now }
}

func WithQRGenerator(qr QRGenerator) Option {
	return func(s *SessionService) { s.qr = qr }
}

// WithIdleTTL drops sessions unused for ttl. Their carts are lost; orders
// are reloaded from the repository on the next request. Zero keeps sessions
// forever.
func WithIdleTTL(ttl time.Duration) Option {
	return func(s *SessionService) { s.idleTTL = ttl }
}

func NewSessionService(catalog CatalogProvider, repo OrderRepository, publisher OrderPublisher, logger *zap.SugaredLogger, opts ...Option) *SessionService {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	s := &SessionService{
		sessions:  make(map[string]*Session),
		catalog:   catalog,
		repo:      repo,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// acquire returns the token's session locked. Callers must unlock it.
func (s *SessionService) acquire(ctx context.Context, token string) (*Session, error) {
	if strings.TrimSpace(token) == "" {
		return nil, ErrMissingToken
	}

	s.mu.Lock()
	now := s.now()
	s.evictIdle(now)
	sess, ok := s.sessions[token]
	if !ok {
		sess = &Session{ID: SessionID(token), Cart: NewCart()}
		s.sessions[token] = sess
	}
	sess.lastSeen = now
	s.mu.Unlock()

	sess.mu.Lock()
	if sess.Orders == nil {
		// Hydration outlives the request so a disconnect cannot leave the
		// session with an empty history.
		sess.Orders = NewOrderBook(s.now, s.loadOrders(context.WithoutCancel(ctx), sess.ID)...)
	}
	return sess, nil
}

// evictIdle removes expired sessions, scanning at most once per idleTTL.
// Callers must hold s.mu.
func (s *SessionService) evictIdle(now time.Time) {
	if s.idleTTL <= 0 || now.Sub(s.lastSweep) < s.idleTTL {
		return
	}
	s.lastSweep = now
	for token, sess := range s.sessions {
		if now.Sub(sess.lastSeen) >= s.idleTTL {
			delete(s.sessions, token)
		}
	}
}

// ActiveSessions reports how many sessions are held in memory.
func (s *SessionService) ActiveSessions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *SessionService) loadOrders(ctx context.Context, sessionID string) []domain.Order {
	if s.repo == nil {
		return nil
	}
	orders, err := s.repo.ListOrders(ctx, sessionID)
	if err != nil {
		s.logger.Warnw("failed to load orders, starting with an empty history",
			"session_id", sessionID, "error", err)
		return nil
	}
	return orders
}

func (s *SessionService) Cart(ctx context.Context, token string, loc domain.Location) (domain.CartSummary, error) {
	sess, err := s.acquire(ctx, token)
	if err != nil {
		return domain.CartSummary{}, err
	}
	items := sess.Cart.Items()
	sess.mu.Unlock()

	catalog, err := s.liveCatalog(ctx, token, loc)
	if err != nil {
		return domain.CartSummary{}, err
	}
	return ComputeCartSummary(items, catalog), nil
}

func (s *SessionService) AddToCart(ctx context.Context, token string, req domain.AddToCartRequest) (domain.CartItem, error) {
	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}
	if err := ValidateQuantity(req.Food, quantity); err != nil {
		return domain.CartItem{}, err
	}
	if strings.TrimSpace(req.RestaurantID) == "" {
		return domain.CartItem{}, &ValidationError{Reason: "restaurant_id is required"}
	}

	sess, err := s.acquire(ctx, token)
	if err != nil {
		return domain.CartItem{}, err
	}
	defer sess.mu.Unlock()

	var item domain.CartItem
	for i := 0; i < quantity; i++ {
		item = sess.Cart.AddItem(req.RestaurantID, req.RestaurantName, *req.Food)
	}
	monitoring.RecordOrderOperation("add_to_cart", true)
	return item, nil
}

func (s *SessionService) ChangeQuantity(ctx context.Context, token, itemID string, delta int) error {
	sess, err := s.acquire(ctx, token)
	if err != nil {
		return err
	}
	defer sess.mu.Unlock()

	return sess.Cart.ChangeQuantity(itemID, delta)
}

func (s *SessionService) RemoveCartItem(ctx context.Context, token, itemID string) error {
	sess, err := s.acquire(ctx, token)
	if err != nil {
		return err
	}
	defer sess.mu.Unlock()

	sess.Cart.RemoveItem(itemID)
	return nil
}

func (s *SessionService) ClearCart(ctx context.Context, token string) error {
	sess, err := s.acquire(ctx, token)
	if err != nil {
		return err
	}
	defer sess.mu.Unlock()

	sess.Cart.Clear()
	return nil
}

func (s *SessionService) PlaceOrder(ctx context.Context, token string) ([]domain.Order, error) {
	sess, err := s.acquire(ctx, token)
	if err != nil {
		return nil, err
	}
	created := sess.Orders.PlaceOrder(sess.Cart)
	sessionID := sess.ID
	sess.mu.Unlock()

	if len(created) == 0 {
		return []domain.Order{}, nil
	}

	// The session already owns the orders; side effects must not be
	// abandoned when the caller disconnects.
	bg := context.WithoutCancel(ctx)
	for _, order := range created {
		s.persistOrder(bg, sessionID, order)
		s.publish(bg, sessionID, domain.EventOrderPlaced, order)
	}
	monitoring.RecordOrderOperation("place_order", true)
	s.logger.Infow("orders placed", "session_id", sessionID, "count", len(created))
	return created, nil
}

func (s *SessionService) persistOrder(ctx context.Context, sessionID string, order domain.Order) {
	if s.repo == nil {
		return
	}
	if err := s.repo.SaveOrder(ctx, sessionID, order); err != nil {
		s.logger.Warnw("failed to persist order", "order_id", order.ID, "error", err)
		monitoring.RecordOrderOperation("persist_order", false)
		return
	}
	if s.qr == nil {
		return
	}
	qr, err := s.qr.Generate(order.ID)
	if err != nil {
		s.logger.Warnw("failed to generate receipt qr", "order_id", order.ID, "error", err)
		return
	}
	if err := s.repo.SaveQRCode(ctx, sessionID, order.ID, qr); err != nil {
		s.logger.Warnw("failed to store receipt qr", "order_id", order.ID, "error", err)
	}
}

func (s *SessionService) publish(ctx context.Context, sessionID, eventType string, order domain.Order) {
	if s.publisher == nil {
		return
	}
	event := domain.OrderEvent{
		Type:           eventType,
		SessionID:      sessionID,
		OrderID:        order.ID,
		RestaurantID:   order.RestaurantID,
		RestaurantName: order.RestaurantName,
		Status:         order.Status,
		TotalAmount:    order.TotalAmount,
		Timestamp:      s.now(),
	}
	if order.Rating != nil {
		event.Rating = *order.Rating
	}
	if order.CompletedAtEpoch != nil {
		event.CompletedAtEpoch = *order.CompletedAtEpoch
	}
	if err := s.publisher.PublishOrderEvent(ctx, event); err != nil {
		s.logger.Warnw("failed to publish order event", "type", eventType, "order_id", order.ID, "error", err)
	}
}

func (s *SessionService) Orders(ctx context.Context, token, tab string) (domain.OrdersView, error) {
	if tab == "" {
		tab = TabUpcoming
	}
	sess, err := s.acquire(ctx, token)
	if err != nil {
		return domain.OrdersView{}, err
	}
	orders := sess.Orders.Orders()
	sess.mu.Unlock()

	var selected []domain.Order
	switch tab {
	case TabUpcoming:
		selected = UpcomingOrders(orders)
	case TabCompleted:
		selected = CompletedOrders(orders)
	default:
		return domain.OrdersView{}, &ValidationError{Reason: "tab must be upcoming or completed"}
	}

	return domain.OrdersView{
		Tab:    tab,
		Orders: selected,
		Groups: GroupOrders(selected),
	}, nil
}

// UpdateOrderStatus returns nil without error when the order does not exist.
func (s *SessionService) UpdateOrderStatus(ctx context.Context, token, orderID string, status domain.OrderStatus) (*domain.Order, error) {
	sess, err := s.acquire(ctx, token)
	if err != nil {
		return nil, err
	}
	order, found, err := sess.Orders.UpdateStatus(orderID, status)
	sessionID := sess.ID
	sess.mu.Unlock()

	if err != nil {
		monitoring.RecordOrderOperation("update_status", false)
		return nil, err
	}
	if !found {
		return nil, nil
	}

	bg := context.WithoutCancel(ctx)
	if s.repo != nil {
		if err := s.repo.UpdateStatus(bg, sessionID, order.ID, order.Status, order.CompletedAtEpoch); err != nil {
			s.logger.Warnw("failed to persist order status", "order_id", order.ID, "error", err)
		}
	}
	s.publish(bg, sessionID, domain.EventOrderStatusChanged, order)
	monitoring.RecordOrderOperation("update_status", true)
	return &order, nil
}

// SubmitRating returns nil without error when the order does not exist.
func (s *SessionService) SubmitRating(ctx context.Context, token, orderID string, rating int) (*domain.Order, error) {
	sess, err := s.acquire(ctx, token)
	if err != nil {
		return nil, err
	}
	order, found, err := sess.Orders.SubmitRating(orderID, rating)
	sessionID := sess.ID
	sess.mu.Unlock()

	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}

	bg := context.WithoutCancel(ctx)
	if s.repo != nil {
		if err := s.repo.SaveRating(bg, sessionID, order.ID, rating); err != nil {
			s.logger.Warnw("failed to persist rating", "order_id", order.ID, "error", err)
		}
	}
	s.publish(bg, sessionID, domain.EventOrderRated, order)
	monitoring.RecordOrderOperation("submit_rating", true)
	return &order, nil
}

// PendingRating returns the order id awaiting a rating, or "".
func (s *SessionService) PendingRating(ctx context.Context, token string) (string, error) {
	sess, err := s.acquire(ctx, token)
	if err != nil {
		return "", err
	}
	defer sess.mu.Unlock()

	orderID, _ := sess.Orders.PendingRating()
	return orderID, nil
}

func (s *SessionService) DismissRatingPrompt(ctx context.Context, token string) error {
	sess, err := s.acquire(ctx, token)
	if err != nil {
		return err
	}
	defer sess.mu.Unlock()

	sess.Orders.DismissRatingPrompt()
	return nil
}

func (s *SessionService) Metrics(ctx context.Context, token string, loc domain.Location) (domain.DinerMetrics, error) {
	sess, err := s.acquire(ctx, token)
	if err != nil {
		return domain.DinerMetrics{}, err
	}
	orders := sess.Orders.Orders()
	sess.mu.Unlock()

	catalog, err := s.liveCatalog(ctx, token, loc)
	if err != nil {
		return domain.DinerMetrics{}, err
	}
	return ComputeDinerMetrics(orders, catalog), nil
}

func (s *SessionService) OrderQRCode(ctx context.Context, token, orderID string) ([]byte, error) {
	sess, err := s.acquire(ctx, token)
	if err != nil {
		return nil, err
	}
	_, found := sess.Orders.Order(orderID)
	sessionID := sess.ID
	sess.mu.Unlock()
	if !found {
		return nil, ErrOrderNotFound
	}

	var qr []byte
	if s.repo != nil {
		if stored, err := s.repo.GetQRCode(ctx, sessionID, orderID); err == nil {
			qr = stored
		}
	}
	if len(qr) == 0 && s.qr != nil {
		regenerated, err := s.qr.Generate(orderID)
		if err != nil {
			return nil, err
		}
		if s.repo != nil {
			if err := s.repo.SaveQRCode(context.WithoutCancel(ctx), sessionID, orderID, regenerated); err != nil {
				s.logger.Warnw("failed to store receipt qr", "order_id", orderID, "error", err)
			}
		}
		qr = regenerated
	}
	if len(qr) == 0 {
		return nil, ErrQRUnavailable
	}
	return qr, nil
}

// liveCatalog fetches current prices. A failing catalog degrades to an empty
// one; only cancellation of ctx is reported.
func (s *SessionService) liveCatalog(ctx context.Context, token string, loc domain.Location) (Catalog, error) {
	if s.catalog == nil {
		return NewCatalog(nil), nil
	}
	restaurants, err := s.catalog.FetchNearby(ctx, loc.Latitude, loc.Longitude, token)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return Catalog{}, ctxErr
		}
		s.logger.Warnw("catalog unavailable, using empty catalog", "error", err)
		return NewCatalog(nil), nil
	}
	return NewCatalog(restaurants), nil
}
