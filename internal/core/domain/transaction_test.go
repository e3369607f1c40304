package domain

import "testing"

func TestTransactionType_StockDirection(t *testing.T) {
	tests := []struct {
		name      string
		typ       TransactionType
		reduces   bool
		increases bool
	}{
		{"usage reduces", TransactionUsage, true, false},
		{"sale reduces", TransactionSale, true, false},
		{"damage reduces", TransactionDamage, true, false},
		{"transfer reduces", TransactionTransfer, true, false},
		{"restock increases", TransactionRestock, false, true},
		{"return increases", TransactionReturn, false, true},
		{"adjustment is neither", TransactionAdjustment, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.typ.ReducesStock(); got != tt.reduces {
				t.Errorf("ReducesStock() = %v, want %v", got, tt.reduces)
			}
			if got := tt.typ.IncreasesStock(); got != tt.increases {
				t.Errorf("IncreasesStock() = %v, want %v", got, tt.increases)
			}
		})
	}
}

func TestTransactionType_IsValid(t *testing.T) {
	if !TransactionUsage.IsValid() {
		t.Error("USAGE should be valid")
	}
	if TransactionType("REFUND").IsValid() {
		t.Error("unknown type should be invalid")
	}
	if TransactionType("").IsValid() {
		t.Error("empty type should be invalid")
	}
}

func TestTransaction_EffectiveQuantityChange(t *testing.T) {
	tests := []struct {
		name string
		tx   Transaction
		want int
	}{
		{"usage is negative", Transaction{Type: TransactionUsage, Quantity: 5}, -5},
		{"sale is negative", Transaction{Type: TransactionSale, Quantity: 3}, -3},
		{"restock is positive", Transaction{Type: TransactionRestock, Quantity: 10}, 10},
		{"return is positive", Transaction{Type: TransactionReturn, Quantity: 2}, 2},
		{"adjustment keeps raw quantity", Transaction{Type: TransactionAdjustment, Quantity: 7}, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tx.EffectiveQuantityChange(); got != tt.want {
				t.Errorf("EffectiveQuantityChange() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestTransaction_UnitCost(t *testing.T) {
	tests := []struct {
		name string
		tx   Transaction
		want float64
	}{
		{"cost divided by quantity", Transaction{Quantity: 4, TotalCost: 100}, 25},
		{"zero quantity", Transaction{Quantity: 0, TotalCost: 100}, 0},
		{"zero cost", Transaction{Quantity: 4, TotalCost: 0}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tx.UnitCost(); got != tt.want {
				t.Errorf("UnitCost() = %v, want %v", got, tt.want)
			}
		})
	}
}
