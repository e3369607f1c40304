package domain

import (
	"math"
	"time"
)

// NoUsageData is the days-until-reorder value for products with no
// stock-reducing transactions in the prediction window. It is a sentinel,
// not a day count: there is nothing to extrapolate from.
const NoUsageData = math.MaxInt32

// CategoryValue is one category's summed stock value. Report categories
// are ordered, so a slice of pairs rather than a map.
type CategoryValue struct {
	Category string  `json:"category"`
	Value    float64 `json:"value"`
}

type InventoryReport struct {
	ReportDate             time.Time       `json:"report_date"`
	TotalProducts          int             `json:"total_products"`
	TotalValue             float64         `json:"total_value"`
	LowStockCount          int             `json:"low_stock_count"`
	OutOfStockCount        int             `json:"out_of_stock_count"`
	ProductsNeedingReorder []*Product      `json:"products_needing_reorder"`
	TopCategories          []CategoryValue `json:"top_categories"`
	RecentActivity         map[string]int  `json:"recent_activity"`
	AverageTurnoverDays    float64         `json:"average_turnover_days"`
	SlowMovingProducts     []*Product      `json:"slow_moving_products"`
}

type InventoryStatistics struct {
	TotalProducts           int     `json:"total_products"`
	TotalValue              float64 `json:"total_value"`
	TotalStockUnits         int     `json:"total_stock_units"`
	LowStockCount           int     `json:"low_stock_count"`
	OutOfStockCount         int     `json:"out_of_stock_count"`
	CategoriesCount         int     `json:"categories_count"`
	RecentTransactionsCount int     `json:"recent_transactions_count"`
}
