package dto

type CreateProductRequest struct {
	Name         string  `json:"name" binding:"required"`
	Category     string  `json:"category" binding:"required"`
	InitialStock int     `json:"initial_stock" binding:"gte=0"`
	MinThreshold int     `json:"min_threshold" binding:"gte=0"`
	UnitCost     float64 `json:"unit_cost" binding:"gte=0"`
	Supplier     string  `json:"supplier" binding:"required"`
}

type UpdateProductRequest struct {
	Name         string  `json:"name" binding:"required"`
	Category     string  `json:"category" binding:"required"`
	CurrentStock int     `json:"current_stock" binding:"gte=0"`
	MinThreshold int     `json:"min_threshold" binding:"gte=0"`
	UnitCost     float64 `json:"unit_cost" binding:"gte=0"`
	Supplier     string  `json:"supplier" binding:"required"`
}
