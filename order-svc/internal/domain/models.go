package domain

import "time"

type FoodItem struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	ActualPrice     float64 `json:"actual_price"`
	DiscountedPrice float64 `json:"discounted_price"`
	ImageURL        string  `json:"image_url,omitempty"`
	AvailableFrom   *int64  `json:"available_from,omitempty"`
	Quantity        *int    `json:"quantity,omitempty"`
}

type Restaurant struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Cuisine       string     `json:"cuisine"`
	DistanceKm    float64    `json:"distance_km"`
	AverageRating float64    `json:"average_rating"`
	ImageURL      string     `json:"image_url,omitempty"`
	Foods         []FoodItem `json:"foods"`
}

// CartItem is keyed by "<restaurantID>-<foodID>". UnitPrice is the
// discounted price captured when the line was first added.
type CartItem struct {
	ID             string  `json:"id"`
	RestaurantID   string  `json:"restaurant_id"`
	RestaurantName string  `json:"restaurant_name"`
	FoodID         string  `json:"food_id"`
	Name           string  `json:"name"`
	UnitPrice      float64 `json:"unit_price"`
	Quantity       int     `json:"quantity"`
}

type Order struct {
	ID               string      `json:"id"`
	RestaurantID     string      `json:"restaurant_id"`
	RestaurantName   string      `json:"restaurant_name"`
	Status           OrderStatus `json:"status"`
	Items            []CartItem  `json:"items"`
	TotalAmount      float64     `json:"total_amount"`
	OrderedAtEpoch   int64       `json:"ordered_at_epoch"`
	CompletedAtEpoch *int64      `json:"completed_at_epoch,omitempty"`
	Rating           *int        `json:"rating,omitempty"`
}

const (
	EventOrderPlaced        = "order_placed"
	EventOrderStatusChanged = "order_status_changed"
	EventOrderRated         = "order_rated"
)

type OrderEvent struct {
	Type             string      `json:"type"`
	SessionID        string      `json:"session_id"`
	OrderID          string      `json:"order_id"`
	RestaurantID     string      `json:"restaurant_id"`
	RestaurantName   string      `json:"restaurant_name"`
	Status           OrderStatus `json:"status"`
	TotalAmount      float64     `json:"total_amount"`
	Rating           int         `json:"rating,omitempty"`
	CompletedAtEpoch int64       `json:"completed_at_epoch,omitempty"`
	Timestamp        time.Time   `json:"timestamp"`
}
