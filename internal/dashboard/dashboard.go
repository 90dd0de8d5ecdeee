package dashboard

// Stats is the owner's home-screen summary. Revenue counts delivered
// orders only; money still in flight is not revenue yet.
type Stats struct {
	TotalOrders    int     `json:"totalOrders"`
	PendingOrders  int     `json:"pendingOrders"`
	TotalRevenue   float64 `json:"totalRevenue"`
	TotalMenuItems int     `json:"totalMenuItems"`
}
