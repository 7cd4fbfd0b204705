package service

import (
	"errors"

	"savr/order-svc/internal/domain"
)

var ErrInvalidDelta = errors.New("quantity delta must be 1 or -1")

func CartItemID(restaurantID, foodID string) string {
	return restaurantID + "-" + foodID
}

// Cart keeps line items in insertion order. It is not safe for concurrent
// use; the owning Session serialises access.
type Cart struct {
	items []domain.CartItem
}

func NewCart(items ...domain.CartItem) *Cart {
	c := &Cart{}
	for _, item := range items {
		if item.Quantity > 0 {
			c.items = append(c.items, item)
		}
	}
	return c
}

// AddItem increments an existing line by one or inserts a new line priced at
// the food's current discounted price. Name and price of an existing line are
// never re-synced.
func (c *Cart) AddItem(restaurantID, restaurantName string, food domain.FoodItem) domain.CartItem {
	id := CartItemID(restaurantID, food.ID)
	if idx := c.indexOf(id); idx >= 0 {
		c.items[idx].Quantity++
		return c.items[idx]
	}

	item := domain.CartItem{
		ID:             id,
		RestaurantID:   restaurantID,
		RestaurantName: restaurantName,
		FoodID:         food.ID,
		Name:           food.Name,
		UnitPrice:      food.DiscountedPrice,
		Quantity:       1,
	}
	c.items = append(c.items, item)
	return item
}

// ChangeQuantity applies delta to the line and drops it once the quantity
// reaches zero. Unknown ids are ignored.
func (c *Cart) ChangeQuantity(itemID string, delta int) error {
	if delta != 1 && delta != -1 {
		return ErrInvalidDelta
	}
	idx := c.indexOf(itemID)
	if idx < 0 {
		return nil
	}

	c.items[idx].Quantity += delta
	if c.items[idx].Quantity <= 0 {
		c.items = append(c.items[:idx], c.items[idx+1:]...)
	}
	return nil
}

func (c *Cart) RemoveItem(itemID string) {
	if idx := c.indexOf(itemID); idx >= 0 {
		c.items = append(c.items[:idx], c.items[idx+1:]...)
	}
}

func (c *Cart) Clear() {
	c.items = nil
}

func (c *Cart) Items() []domain.CartItem {
	out := make([]domain.CartItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) Item(itemID string) (domain.CartItem, bool) {
	if idx := c.indexOf(itemID); idx >= 0 {
		return c.items[idx], true
	}
	return domain.CartItem{}, false
}

func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

func (c *Cart) indexOf(itemID string) int {
	for i := range c.items {
		if c.items[i].ID == itemID {
			return i
		}
	}
	return -1
}
