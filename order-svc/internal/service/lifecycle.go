package service

import (
	"strconv"
	"time"

	"savr/order-svc/internal/domain"

	"github.com/shopspring/decimal"
)

// OrderBook holds a diner's orders, most recent first, and the single
// pending-rating pointer.
type OrderBook struct {
	orders        []domain.Order
	pendingRating string
	now           func() time.Time
}

func NewOrderBook(now func() time.Time, orders ...domain.Order) *OrderBook {
	if now == nil {
		now = time.Now
	}
	b := &OrderBook{now: now}
	for _, order := range orders {
		b.orders = append(b.orders, cloneOrder(order))
	}
	return b
}

// PlaceOrder turns the cart into one placed order per restaurant and empties
// the cart. An empty cart creates nothing. The created orders are returned in
// the order their restaurants first appeared in the cart.
func (b *OrderBook) PlaceOrder(cart *Cart) []domain.Order {
	if cart == nil || cart.IsEmpty() {
		return nil
	}

	var restaurantOrder []string
	groups := make(map[string][]domain.CartItem)
	for _, item := range cart.Items() {
		if _, ok := groups[item.RestaurantID]; !ok {
			restaurantOrder = append(restaurantOrder, item.RestaurantID)
		}
		groups[item.RestaurantID] = append(groups[item.RestaurantID], item)
	}

	orderedAt := b.now().UnixMilli()
	created := make([]domain.Order, 0, len(restaurantOrder))
	for _, restaurantID := range restaurantOrder {
		items := groups[restaurantID]
		total := decimal.Zero
		for _, item := range items {
			total = total.Add(lineTotal(item.UnitPrice, item.Quantity))
		}

		order := domain.Order{
			ID:             "o-" + strconv.FormatInt(orderedAt, 10) + "-" + restaurantID,
			RestaurantID:   restaurantID,
			RestaurantName: items[0].RestaurantName,
			Status:         domain.StatusPlaced,
			Items:          items,
			TotalAmount:    toFloat(total),
			OrderedAtEpoch: orderedAt,
		}
		b.orders = append([]domain.Order{order}, b.orders...)
		created = append(created, cloneOrder(order))
	}

	cart.Clear()
	return created
}

// UpdateStatus moves an order to target. It returns false when the order does
// not exist. Entering completed stamps completedAt and makes the order the
// pending rating target; repeating completed only re-stamps the time.
func (b *OrderBook) UpdateStatus(orderID string, target domain.OrderStatus) (domain.Order, bool, error) {
	idx := b.indexOf(orderID)
	if idx < 0 {
		return domain.Order{}, false, nil
	}
	order := &b.orders[idx]
	if err := domain.CanTransition(order.Status, target); err != nil {
		return cloneOrder(*order), true, err
	}

	previous := order.Status
	order.Status = target
	switch target {
	case domain.StatusCompleted:
		completedAt := b.now().UnixMilli()
		order.CompletedAtEpoch = &completedAt
		if previous != domain.StatusCompleted {
			b.pendingRating = order.ID
		}
	case domain.StatusPlaced, domain.StatusPreparing:
		// status write only
	}
	return cloneOrder(*order), true, nil
}

// SubmitRating records the rating and clears the pending pointer only when it
// targets this order.
func (b *OrderBook) SubmitRating(orderID string, rating int) (domain.Order, bool, error) {
	if err := ValidateRating(rating); err != nil {
		return domain.Order{}, false, err
	}
	idx := b.indexOf(orderID)
	if idx < 0 {
		return domain.Order{}, false, nil
	}

	value := rating
	b.orders[idx].Rating = &value
	if b.pendingRating == orderID {
		b.pendingRating = ""
	}
	return cloneOrder(b.orders[idx]), true, nil
}

func (b *OrderBook) DismissRatingPrompt() {
	b.pendingRating = ""
}

func (b *OrderBook) PendingRating() (string, bool) {
	return b.pendingRating, b.pendingRating != ""
}

func (b *OrderBook) Orders() []domain.Order {
	out := make([]domain.Order, len(b.orders))
	for i, order := range b.orders {
		out[i] = cloneOrder(order)
	}
	return out
}

func (b *OrderBook) Order(orderID string) (domain.Order, bool) {
	if idx := b.indexOf(orderID); idx >= 0 {
		return cloneOrder(b.orders[idx]), true
	}
	return domain.Order{}, false
}

func (b *OrderBook) indexOf(orderID string) int {
	for i := range b.orders {
		if b.orders[i].ID == orderID {
			return i
		}
	}
	return -1
}

func cloneOrder(order domain.Order) domain.Order {
	out := order
	out.Items = make([]domain.CartItem, len(order.Items))
	copy(out.Items, order.Items)
	if order.CompletedAtEpoch != nil {
		completedAt := *order.CompletedAtEpoch
		out.CompletedAtEpoch = &completedAt
	}
	if order.Rating != nil {
		rating := *order.Rating
		out.Rating = &rating
	}
	return out
}
