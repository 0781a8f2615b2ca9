package models

// DashboardStats is the read-only admin overview snapshot, derived from the
// product and order collections at request time. Never stored.
type DashboardStats struct {
	TotalProducts int     `json:"total_products"`
	TotalOrders   int     `json:"total_orders"`
	TotalRevenue  float64 `json:"total_revenue"`
	PendingOrders int     `json:"pending_orders"`
}
