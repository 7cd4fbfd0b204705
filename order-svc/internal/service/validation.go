package service

import (
	"fmt"

	"savr/order-svc/internal/domain"
)

// DefaultStock applies to foods that do not publish a stock count.
const DefaultStock = 10

// ValidationError carries a reason that is safe to show to the diner.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func ValidateQuantity(food *domain.FoodItem, quantity int) error {
	if food == nil || food.ID == "" {
		return &ValidationError{Reason: "Please select an item."}
	}
	if quantity < 1 {
		return &ValidationError{Reason: "Quantity should be at least 1."}
	}
	stock := DefaultStock
	if food.Quantity != nil {
		stock = *food.Quantity
	}
	if quantity > stock {
		return &ValidationError{Reason: fmt.Sprintf("Only %d item(s) available.", stock)}
	}
	return nil
}

func ValidateRating(rating int) error {
	if rating < 1 || rating > 5 {
		return &ValidationError{Reason: "rating must be between 1 and 5"}
	}
	return nil
}
