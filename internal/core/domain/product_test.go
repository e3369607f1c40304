package domain

import (
	"testing"
	"time"
)

func TestProduct_IsLowStock(t *testing.T) {
	tests := []struct {
		name      string
		stock     int
		threshold int
		want      bool
	}{
		{"above threshold", 50, 10, false},
		{"at threshold", 10, 10, true},
		{"below threshold", 5, 10, true},
		{"zero stock", 0, 10, true},
		{"zero threshold and zero stock", 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Product{CurrentStock: tt.stock, MinThreshold: tt.threshold}
			if got := p.IsLowStock(); got != tt.want {
				t.Errorf("IsLowStock() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestProduct_StockStatus(t *testing.T) {
	tests := []struct {
		name      string
		stock     int
		threshold int
		want      string
	}{
		{"out of stock", 0, 10, StockStatusOut},
		{"low stock", 8, 10, StockStatusLow},
		{"in stock", 30, 10, StockStatusIn},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Product{CurrentStock: tt.stock, MinThreshold: tt.threshold}
			if got := p.StockStatus(); got != tt.want {
				t.Errorf("StockStatus() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestProduct_TotalValue(t *testing.T) {
	p := &Product{CurrentStock: 20, UnitCost: 9.99}
	if got, want := p.TotalValue(), 20*9.99; got != want {
		t.Fatalf("TotalValue() = %v, want %v", got, want)
	}
}

func TestProduct_DaysSinceRestock(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	t.Run("whole days truncated", func(t *testing.T) {
		p := &Product{LastRestocked: now.Add(-49 * time.Hour)}
		if got := p.DaysSinceRestock(now); got != 2 {
			t.Fatalf("DaysSinceRestock() = %d, want 2", got)
		}
	})

	t.Run("zero time", func(t *testing.T) {
		p := &Product{}
		if got := p.DaysSinceRestock(now); got != 0 {
			t.Fatalf("DaysSinceRestock() = %d, want 0", got)
		}
	})
}

func TestNewProduct(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	p := NewProduct("USB-C Hub", "Electronics", 75, 15, 89.99, "TechGear", now)

	if p.ID != 0 {
		t.Fatal("id should be unassigned until the registry stores the product")
	}
	if !p.CreatedAt.Equal(now) || !p.LastRestocked.Equal(now) {
		t.Fatal("timestamps should come from the supplied clock reading")
	}
	if p.CurrentStock != 75 || p.MinThreshold != 15 {
		t.Fatalf("unexpected stock fields: %d/%d", p.CurrentStock, p.MinThreshold)
	}
}
