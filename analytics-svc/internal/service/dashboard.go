package service

import "savr/analytics-svc/internal/domain"

// BuildDashboard derives the revenue and order bar charts. Each ratio is
// relative to the largest value in its chart, with a floor of 1.
func BuildDashboard(metrics domain.RestaurantMetrics) domain.Dashboard {
	revenue := bars([]string{"Today", "Week", "Month"},
		metrics.TodayEarnings, metrics.WeeklyRevenue, metrics.MonthlyRevenue)
	orders := bars([]string{"Pending", "Completed", "Cancelled"},
		float64(metrics.OrderStatus.Pending), float64(metrics.OrderStatus.Completed), float64(metrics.OrderStatus.Cancelled))
	return domain.Dashboard{Metrics: metrics, RevenueBars: revenue, OrderBars: orders}
}

func bars(labels []string, values ...float64) []domain.Bar {
	top := 1.0
	for _, v := range values {
		if v > top {
			top = v
		}
	}
	out := make([]domain.Bar, len(values))
	for i, v := range values {
		out[i] = domain.Bar{Label: labels[i], Value: v, Ratio: v / top}
	}
	return out
}
