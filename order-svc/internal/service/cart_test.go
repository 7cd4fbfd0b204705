package service_test

import (
	"math/rand"
	"testing"

	"savr/order-svc/internal/domain"
	"savr/order-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func food(id, name string, actual, discounted float64) domain.FoodItem {
	return domain.FoodItem{ID: id, Name: name, ActualPrice: actual, DiscountedPrice: discounted}
}

func TestCart_AddItem_IncrementsAndKeepsFirstPrice(t *testing.T) {
	cart := service.NewCart()
	pizza := food("f5", "Margherita Pizza", 17.25, 15.5)

	cart.AddItem("r3", "Urban Slice", pizza)
	pizza.DiscountedPrice = 9.99
	pizza.Name = "Renamed Pizza"
	cart.AddItem("r3", "Urban Slice", pizza)
	item := cart.AddItem("r3", "Urban Slice", pizza)

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "r3-f5", items[0].ID)
	assert.Equal(t, 3, items[0].Quantity)
	assert.Equal(t, 15.5, items[0].UnitPrice)
	assert.Equal(t, "Margherita Pizza", items[0].Name)
	assert.Equal(t, items[0], item)
}

func TestCart_AddItem_SameFoodDifferentRestaurants(t *testing.T) {
	cart := service.NewCart()
	wrap := food("f2", "Paneer Tikka Wrap", 12.75, 11)

	cart.AddItem("r1", "Spice Route Kitchen", wrap)
	cart.AddItem("r2", "Green Fork Cafe", wrap)

	items := cart.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "r1-f2", items[0].ID)
	assert.Equal(t, "r2-f2", items[1].ID)
}

func TestCart_ChangeQuantity(t *testing.T) {
	tests := []struct {
		name         string
		delta        int
		startQty     int
		itemID       string
		wantErr      error
		wantQuantity int
		wantPresent  bool
	}{
		{name: "increment", delta: 1, startQty: 1, itemID: "r1-f1", wantQuantity: 2, wantPresent: true},
		{name: "decrement keeps line", delta: -1, startQty: 2, itemID: "r1-f1", wantQuantity: 1, wantPresent: true},
		{name: "decrement to zero removes line", delta: -1, startQty: 1, itemID: "r1-f1", wantPresent: false},
		{name: "unknown id is a no-op", delta: -1, startQty: 1, itemID: "r9-f9", wantQuantity: 1, wantPresent: true},
		{name: "invalid delta", delta: 2, startQty: 1, itemID: "r1-f1", wantErr: service.ErrInvalidDelta, wantQuantity: 1, wantPresent: true},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			cart := service.NewCart()
			for i := 0; i < testCase.startQty; i++ {
				cart.AddItem("r1", "Spice Route Kitchen", food("f1", "Butter Chicken Bowl", 16.5, 14.5))
			}

			err := cart.ChangeQuantity(testCase.itemID, testCase.delta)
			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
			} else {
				assert.NoError(t, err)
			}

			item, ok := cart.Item("r1-f1")
			assert.Equal(t, testCase.wantPresent, ok)
			if ok {
				assert.Equal(t, testCase.wantQuantity, item.Quantity)
			}
		})
	}
}

func TestCart_NeverHoldsNonPositiveQuantities(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	cart := service.NewCart()
	foods := []domain.FoodItem{
		food("f1", "Butter Chicken Bowl", 16.5, 14.5),
		food("f2", "Paneer Tikka Wrap", 12.75, 11),
		food("f3", "Quinoa Harvest Salad", 13.5, 12),
	}

	for step := 0; step < 500; step++ {
		f := foods[rng.Intn(len(foods))]
		switch rng.Intn(4) {
		case 0:
			cart.AddItem("r1", "Spice Route Kitchen", f)
		case 1:
			require.NoError(t, cart.ChangeQuantity(service.CartItemID("r1", f.ID), 1))
		default:
			require.NoError(t, cart.ChangeQuantity(service.CartItemID("r1", f.ID), -1))
		}

		for _, item := range cart.Items() {
			require.Greater(t, item.Quantity, 0, "step %d left %s at %d", step, item.ID, item.Quantity)
		}
	}
}

func TestCart_RemoveAndClear(t *testing.T) {
	cart := service.NewCart()
	cart.AddItem("r1", "Spice Route Kitchen", food("f1", "Butter Chicken Bowl", 16.5, 14.5))
	cart.AddItem("r2", "Green Fork Cafe", food("f3", "Quinoa Harvest Salad", 13.5, 12))

	cart.RemoveItem("missing")
	assert.Len(t, cart.Items(), 2)

	cart.RemoveItem("r1-f1")
	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "r2-f3", items[0].ID)

	cart.Clear()
	assert.True(t, cart.IsEmpty())
	assert.Empty(t, cart.Items())
}

func TestCart_ItemsReturnsCopy(t *testing.T) {
	cart := service.NewCart()
	cart.AddItem("r1", "Spice Route Kitchen", food("f1", "Butter Chicken Bowl", 16.5, 14.5))

	items := cart.Items()
	items[0].Quantity = 99

	item, _ := cart.Item("r1-f1")
	assert.Equal(t, 1, item.Quantity)
}
