package repair

import (
	"time"

	"github.com/shopspring/decimal"
)

// PartEntry is a spare part used in a repair, owned by the repair record.
type PartEntry struct {
	Name         string
	Supplier     string
	UnitCost     decimal.Decimal
	Qty          int
	PurchaseDate *time.Time
}

// TotalCost returns unit cost times quantity, treating a missing or
// non-positive quantity as one.
func (p PartEntry) TotalCost() decimal.Decimal {
	qty := p.Qty
	if qty < 1 {
		qty = 1
	}
	return p.UnitCost.Mul(decimal.NewFromInt(int64(qty)))
}
