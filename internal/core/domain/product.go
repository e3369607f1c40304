package domain

import "time"

const (
	StockStatusOut = "OUT OF STOCK"
	StockStatusLow = "LOW STOCK"
	StockStatusIn  = "IN STOCK"
)

type Product struct {
	ID            ID
	Name          string
	Category      string
	CurrentStock  int
	MinThreshold  int
	UnitCost      float64
	Supplier      string
	LastRestocked time.Time
	CreatedAt     time.Time
}

func NewProduct(name, category string, currentStock, minThreshold int, unitCost float64, supplier string, now time.Time) *Product {
	return &Product{
		Name:          name,
		Category:      category,
		CurrentStock:  currentStock,
		MinThreshold:  minThreshold,
		UnitCost:      unitCost,
		Supplier:      supplier,
		LastRestocked: now,
		CreatedAt:     now,
	}
}

// IsLowStock reports whether stock is at or below the minimum threshold.
func (p *Product) IsLowStock() bool {
	return p.CurrentStock <= p.MinThreshold
}

// TotalValue is the value of the stock currently on hand.
func (p *Product) TotalValue() float64 {
	return float64(p.CurrentStock) * p.UnitCost
}

func (p *Product) StockStatus() string {
	switch {
	case p.CurrentStock == 0:
		return StockStatusOut
	case p.IsLowStock():
		return StockStatusLow
	default:
		return StockStatusIn
	}
}

func (p *Product) DaysSinceRestock(now time.Time) int {
	if p.LastRestocked.IsZero() {
		return 0
	}
	return int(now.Sub(p.LastRestocked).Hours() / 24)
}

type ReorderAlertEvent struct {
	ProductID         ID        `json:"product_id"`
	ProductName       string    `json:"product_name"`
	CurrentStock      int       `json:"current_stock"`
	MinThreshold      int       `json:"min_threshold"`
	DaysUntilReorder  int       `json:"days_until_reorder"`
	SuggestedQuantity int       `json:"suggested_quantity"`
	TriggeredAt       time.Time `json:"triggered_at"`
}

func (e *ReorderAlertEvent) GetName() string {
	return "product.reorder_alert"
}

func (e *ReorderAlertEvent) GetEntityName() string {
	return "product"
}

func NewReorderAlertEvent(p *Product, daysUntilReorder, suggestedQuantity int, triggeredAt time.Time) *ReorderAlertEvent {
	return &ReorderAlertEvent{
		ProductID:         p.ID,
		ProductName:       p.Name,
		CurrentStock:      p.CurrentStock,
		MinThreshold:      p.MinThreshold,
		DaysUntilReorder:  daysUntilReorder,
		SuggestedQuantity: suggestedQuantity,
		TriggeredAt:       triggeredAt,
	}
}
