package service

import (
	"savr/order-svc/internal/domain"

	"github.com/shopspring/decimal"
)

// Catalog indexes live foods by restaurant for price lookups.
type Catalog struct {
	foods map[string]map[string]domain.FoodItem
}

func NewCatalog(restaurants []domain.Restaurant) Catalog {
	c := Catalog{foods: make(map[string]map[string]domain.FoodItem, len(restaurants))}
	for _, restaurant := range restaurants {
		foods := make(map[string]domain.FoodItem, len(restaurant.Foods))
		for _, food := range restaurant.Foods {
			foods[food.ID] = food
		}
		c.foods[restaurant.ID] = foods
	}
	return c
}

func (c Catalog) Food(restaurantID, foodID string) (domain.FoodItem, bool) {
	foods, ok := c.foods[restaurantID]
	if !ok {
		return domain.FoodItem{}, false
	}
	food, ok := foods[foodID]
	return food, ok
}

func UpcomingOrders(orders []domain.Order) []domain.Order {
	out := make([]domain.Order, 0, len(orders))
	for _, order := range orders {
		if order.Status != domain.StatusCompleted {
			out = append(out, order)
		}
	}
	return out
}

func CompletedOrders(orders []domain.Order) []domain.Order {
	out := make([]domain.Order, 0, len(orders))
	for _, order := range orders {
		if order.Status == domain.StatusCompleted {
			out = append(out, order)
		}
	}
	return out
}

// OrderSavings prices each line against the live catalog. Lines whose
// restaurant or food is gone contribute nothing.
func OrderSavings(order domain.Order, catalog Catalog) decimal.Decimal {
	saved := decimal.Zero
	for _, item := range order.Items {
		food, ok := catalog.Food(order.RestaurantID, item.FoodID)
		if !ok {
			continue
		}
		perUnit := nonNegative(decimal.NewFromFloat(food.ActualPrice).Sub(decimal.NewFromFloat(food.DiscountedPrice)))
		saved = saved.Add(perUnit.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return saved
}

func ComputeDinerMetrics(orders []domain.Order, catalog Catalog) domain.DinerMetrics {
	upcoming := UpcomingOrders(orders)

	amountSaved := decimal.Zero
	placed, completed := 0, 0
	for _, order := range orders {
		amountSaved = amountSaved.Add(OrderSavings(order, catalog))
		switch order.Status {
		case domain.StatusPlaced:
			placed++
		case domain.StatusCompleted:
			completed++
		case domain.StatusPreparing:
		}
	}

	upcomingSaved := decimal.Zero
	for _, order := range upcoming {
		upcomingSaved = upcomingSaved.Add(OrderSavings(order, catalog))
	}

	return domain.DinerMetrics{
		TotalOrders:    len(orders),
		UpcomingCount:  len(upcoming),
		CompletedCount: len(orders) - len(upcoming),
		AmountSaved:    toFloat(amountSaved),
		UpcomingSaved:  toFloat(upcomingSaved),
		Histogram: domain.StatusHistogram{
			Placed:    placed,
			Completed: completed,
			ChartMax:  max(placed, completed, 1),
		},
	}
}

// GroupOrders groups by restaurant in order of first appearance.
func GroupOrders(orders []domain.Order) []domain.OrderGroup {
	index := make(map[string]int)
	groups := make([]domain.OrderGroup, 0)
	amounts := make([]decimal.Decimal, 0)

	for _, order := range orders {
		idx, ok := index[order.RestaurantID]
		if !ok {
			idx = len(groups)
			index[order.RestaurantID] = idx
			groups = append(groups, domain.OrderGroup{
				RestaurantID:   order.RestaurantID,
				RestaurantName: order.RestaurantName,
			})
			amounts = append(amounts, decimal.Zero)
		}
		group := &groups[idx]
		group.Orders = append(group.Orders, order)
		for _, item := range order.Items {
			group.TotalItems += item.Quantity
		}
		amounts[idx] = amounts[idx].Add(decimal.NewFromFloat(order.TotalAmount))
	}

	for i := range groups {
		groups[i].TotalAmount = toFloat(amounts[i])
	}
	return groups
}

// ComputeCartSummary derives what the diner pays and what the same cart would
// cost at live undiscounted prices. Foods missing from the catalog fall back
// to their unit price.
func ComputeCartSummary(items []domain.CartItem, catalog Catalog) domain.CartSummary {
	type totals struct {
		subtotal, orderAmount, saved decimal.Decimal
	}

	payable, orderAmount := decimal.Zero, decimal.Zero
	index := make(map[string]int)
	groups := make([]domain.CartGroup, 0)
	groupTotals := make([]totals, 0)

	for _, item := range items {
		actualPrice := item.UnitPrice
		if food, ok := catalog.Food(item.RestaurantID, item.FoodID); ok {
			actualPrice = food.ActualPrice
		}
		discountedTotal := lineTotal(item.UnitPrice, item.Quantity)
		actualTotal := lineTotal(actualPrice, item.Quantity)

		payable = payable.Add(discountedTotal)
		orderAmount = orderAmount.Add(actualTotal)

		idx, ok := index[item.RestaurantID]
		if !ok {
			idx = len(groups)
			index[item.RestaurantID] = idx
			groups = append(groups, domain.CartGroup{
				RestaurantID:   item.RestaurantID,
				RestaurantName: item.RestaurantName,
			})
			groupTotals = append(groupTotals, totals{decimal.Zero, decimal.Zero, decimal.Zero})
		}
		groups[idx].Items = append(groups[idx].Items, item)
		t := &groupTotals[idx]
		t.subtotal = t.subtotal.Add(discountedTotal)
		t.orderAmount = t.orderAmount.Add(actualTotal)
		t.saved = t.saved.Add(nonNegative(actualTotal.Sub(discountedTotal)))
	}

	for i := range groups {
		groups[i].Subtotal = toFloat(groupTotals[i].subtotal)
		groups[i].OrderAmount = toFloat(groupTotals[i].orderAmount)
		groups[i].SavedAmount = toFloat(groupTotals[i].saved)
	}

	if items == nil {
		items = []domain.CartItem{}
	}
	return domain.CartSummary{
		Items:        items,
		PayableTotal: toFloat(payable),
		OrderAmount:  toFloat(orderAmount),
		TotalSaved:   toFloat(nonNegative(orderAmount.Sub(payable))),
		Groups:       groups,
	}
}
