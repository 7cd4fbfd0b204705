package domain

type OrderStatusCounts struct {
	Pending   int `json:"pending"`
	Preparing int `json:"preparing"`
	Completed int `json:"completed"`
	Cancelled int `json:"cancelled"`
}

type RevenueChannel struct {
	Label      string  `json:"label"`
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
}

// RestaurantMetrics is a snapshot owned by the backend. Nothing here derives
// it from orders.
type RestaurantMetrics struct {
	TodayEarnings     float64           `json:"today_earnings"`
	TotalRevenue      float64           `json:"total_revenue"`
	WeeklyRevenue     float64           `json:"weekly_revenue"`
	MonthlyRevenue    float64           `json:"monthly_revenue"`
	AverageOrderValue float64           `json:"average_order_value"`
	OrdersToday       int               `json:"orders_today"`
	OrderStatus       OrderStatusCounts `json:"order_status"`
	RevenueChannels   []RevenueChannel  `json:"revenue_channels"`
}

type Bar struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Ratio float64 `json:"ratio"`
}

type Dashboard struct {
	Metrics     RestaurantMetrics `json:"metrics"`
	RevenueBars []Bar             `json:"revenue_bars"`
	OrderBars   []Bar             `json:"order_bars"`
}
