package dto

// Error is returned for every failed request.
type Error struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Dashboard combines the admin summary figures.
type Dashboard struct {
	TotalOrders   int64 `json:"totalOrders"`
	TotalRevenue  Money `json:"totalRevenue"`
	TotalProducts int64 `json:"totalProducts"`
	TotalUsers    int64 `json:"totalUsers"`
}
