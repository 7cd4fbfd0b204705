package service_test

import (
	"testing"

	"savr/order-svc/internal/domain"
	"savr/order-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateQuantity(t *testing.T) {
	three := 3
	withStock := food("f1", "Butter Chicken Bowl", 16.5, 14.5)
	withStock.Quantity = &three
	noStock := food("f2", "Paneer Tikka Wrap", 12.75, 11)

	tests := []struct {
		name       string
		food       *domain.FoodItem
		quantity   int
		wantReason string
	}{
		{name: "no food selected", food: nil, quantity: 1, wantReason: "Please select an item."},
		{name: "food without id", food: &domain.FoodItem{Name: "ghost"}, quantity: 1, wantReason: "Please select an item."},
		{name: "zero quantity", food: &noStock, quantity: 0, wantReason: "Quantity should be at least 1."},
		{name: "over published stock", food: &withStock, quantity: 4, wantReason: "Only 3 item(s) available."},
		{name: "at published stock", food: &withStock, quantity: 3},
		{name: "over default stock", food: &noStock, quantity: 11, wantReason: "Only 10 item(s) available."},
		{name: "at default stock", food: &noStock, quantity: 10},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			err := service.ValidateQuantity(testCase.food, testCase.quantity)
			if testCase.wantReason == "" {
				assert.NoError(t, err)
				return
			}
			var validation *service.ValidationError
			require.ErrorAs(t, err, &validation)
			assert.Equal(t, testCase.wantReason, validation.Reason)
		})
	}
}

func TestValidateRating(t *testing.T) {
	for rating := 1; rating <= 5; rating++ {
		assert.NoError(t, service.ValidateRating(rating))
	}
	assert.Error(t, service.ValidateRating(0))
	assert.Error(t, service.ValidateRating(6))
}
