package domain

type StatusHistogram struct {
	Placed    int `json:"placed"`
	Completed int `json:"completed"`
	ChartMax  int `json:"chart_max"`
}

type DinerMetrics struct {
	TotalOrders    int             `json:"total_orders"`
	UpcomingCount  int             `json:"upcoming_count"`
	CompletedCount int             `json:"completed_count"`
	AmountSaved    float64         `json:"amount_saved"`
	UpcomingSaved  float64         `json:"upcoming_saved"`
	Histogram      StatusHistogram `json:"histogram"`
}

type OrderGroup struct {
	RestaurantID   string  `json:"restaurant_id"`
	RestaurantName string  `json:"restaurant_name"`
	Orders         []Order `json:"orders"`
	TotalItems     int     `json:"total_items"`
	TotalAmount    float64 `json:"total_amount"`
}

type OrdersView struct {
	Tab    string       `json:"tab"`
	Orders []Order      `json:"orders"`
	Groups []OrderGroup `json:"groups"`
}

type CartGroup struct {
	RestaurantID   string     `json:"restaurant_id"`
	RestaurantName string     `json:"restaurant_name"`
	Items          []CartItem `json:"items"`
	Subtotal       float64    `json:"subtotal"`
	OrderAmount    float64    `json:"order_amount"`
	SavedAmount    float64    `json:"saved_amount"`
}

type CartSummary struct {
	Items        []CartItem  `json:"items"`
	PayableTotal float64     `json:"payable_total"`
	OrderAmount  float64     `json:"order_amount"`
	TotalSaved   float64     `json:"total_saved"`
	Groups       []CartGroup `json:"groups"`
}

type AddToCartRequest struct {
	RestaurantID   string    `json:"restaurant_id"`
	RestaurantName string    `json:"restaurant_name"`
	Food           *FoodItem `json:"food"`
	Quantity       *int      `json:"quantity,omitempty"`
}

type Location struct {
	Latitude  float64
	Longitude float64
}
