package dto

type StockOperationRequest struct {
	Quantity    int    `json:"quantity" binding:"required,gt=0"`
	Notes       string `json:"notes"`
	PerformedBy string `json:"performed_by"`
}

type SaleRequest struct {
	Quantity    int     `json:"quantity" binding:"required,gt=0"`
	SalePrice   float64 `json:"sale_price"`
	Notes       string  `json:"notes"`
	PerformedBy string  `json:"performed_by"`
}

type RestockRequest struct {
	Quantity    int     `json:"quantity" binding:"required,gt=0"`
	TotalCost   float64 `json:"total_cost"`
	Notes       string  `json:"notes"`
	PerformedBy string  `json:"performed_by"`
}

type AdjustmentRequest struct {
	NewQuantity int    `json:"new_quantity" binding:"gte=0"`
	Reason      string `json:"reason"`
	PerformedBy string `json:"performed_by"`
}

type ConfigRequest struct {
	LeadTimeDays int     `json:"lead_time_days"`
	ServiceLevel float64 `json:"service_level"`
}

type BulkRestockItem struct {
	ProductID int64   `json:"product_id"`
	Quantity  int     `json:"quantity"`
	TotalCost float64 `json:"total_cost"`
}

// StockOperationResult is what use/sell report back, and what the
// idempotency layer replays for a repeated request.
type StockOperationResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
