package domain

import "time"

type TransactionType string

const (
	TransactionUsage      TransactionType = "USAGE"
	TransactionSale       TransactionType = "SALE"
	TransactionRestock    TransactionType = "RESTOCK"
	TransactionAdjustment TransactionType = "ADJUSTMENT"
	TransactionReturn     TransactionType = "RETURN"
	TransactionDamage     TransactionType = "DAMAGE"
	TransactionTransfer   TransactionType = "TRANSFER"
)

func (t TransactionType) IsValid() bool {
	switch t {
	case TransactionUsage, TransactionSale, TransactionRestock, TransactionAdjustment,
		TransactionReturn, TransactionDamage, TransactionTransfer:
		return true
	}
	return false
}

// ReducesStock reports whether the type subtracts from stock on replay.
func (t TransactionType) ReducesStock() bool {
	return t == TransactionUsage || t == TransactionSale || t == TransactionDamage || t == TransactionTransfer
}

// IncreasesStock reports whether the type adds to stock on replay.
// Adjustments are neither: they set stock to an absolute value.
func (t TransactionType) IncreasesStock() bool {
	return t == TransactionRestock || t == TransactionReturn
}

func (t TransactionType) Description() string {
	switch t {
	case TransactionUsage:
		return "Usage/Consumption"
	case TransactionSale:
		return "Sale"
	case TransactionRestock:
		return "Restock/Purchase"
	case TransactionAdjustment:
		return "Manual Adjustment"
	case TransactionReturn:
		return "Return/Refund"
	case TransactionDamage:
		return "Damaged Goods"
	case TransactionTransfer:
		return "Transfer"
	}
	return string(t)
}

// Transaction is an immutable ledger record. It weakly references its
// product by id: entries outlive product deletion.
type Transaction struct {
	ID          ID
	ProductID   ID
	Type        TransactionType
	Quantity    int
	TotalCost   float64
	Timestamp   time.Time
	Notes       string
	PerformedBy string
}

// UnitCost is the cost per item recorded in this transaction.
func (t *Transaction) UnitCost() float64 {
	if t.Quantity == 0 {
		return 0
	}
	return t.TotalCost / float64(t.Quantity)
}

func (t *Transaction) HasCost() bool {
	return t.TotalCost != 0
}

// EffectiveQuantityChange is the signed stock delta this transaction
// represents: positive for increases, negative for reductions, the raw
// quantity for adjustments.
func (t *Transaction) EffectiveQuantityChange() int {
	switch {
	case t.Type.IncreasesStock():
		return t.Quantity
	case t.Type.ReducesStock():
		return -t.Quantity
	default:
		return t.Quantity
	}
}
