// Package accounting computes profit figures from delivered repairs. All
// arithmetic goes through decimal values so splits never drift by a cent.
package accounting

import (
	"github.com/shopspring/decimal"

	"fixtrack/internal/domain/repair"
)

var hundred = decimal.NewFromInt(100)

// ProfitSplit is the commission breakdown of one delivered repair.
type ProfitSplit struct {
	FinalPrice      decimal.Decimal
	PartsCost       decimal.Decimal
	NetProfit       decimal.Decimal
	CommissionPct   int
	TechnicianShare decimal.Decimal
	ShopShare       decimal.Decimal
}

// ResolveCommissionPct picks the commission percentage for a repair:
// the technician's personal percentage when set, otherwise the shop
// default. A nil technician percentage falls through; zero is a real
// value and is honored.
func ResolveCommissionPct(technicianPct *int, shopDefault int) int {
	if technicianPct != nil {
		return *technicianPct
	}
	return shopDefault
}

// PartsCost sums unit cost times quantity across all parts. Quantities
// below one count as one, matching how parts are entered at the counter.
func PartsCost(parts []repair.PartEntry) decimal.Decimal {
	total := decimal.Zero
	for _, p := range parts {
		total = total.Add(p.TotalCost())
	}
	return total
}

// ComputeSplit breaks a delivered repair's final price into parts cost,
// net profit and the technician/shop shares. Net profit may be negative
// when parts cost more than the price charged; the negative split is
// preserved so the books reflect the loss.
func ComputeSplit(finalPrice decimal.Decimal, parts []repair.PartEntry, commissionPct int) ProfitSplit {
	partsCost := PartsCost(parts)
	netProfit := finalPrice.Sub(partsCost)
	techShare := netProfit.Mul(decimal.NewFromInt(int64(commissionPct))).Div(hundred)
	shopShare := netProfit.Sub(techShare)

	return ProfitSplit{
		FinalPrice:      finalPrice,
		PartsCost:       partsCost,
		NetProfit:       netProfit,
		CommissionPct:   commissionPct,
		TechnicianShare: techShare,
		ShopShare:       shopShare,
	}
}

// SplitForRepair computes the split for a delivered repair using its
// effective price. Repairs that are not delivered have no realized
// profit and return a zero split with ok=false.
func SplitForRepair(r *repair.Repair, commissionPct int) (ProfitSplit, bool) {
	if !r.Status().IsDelivered() {
		return ProfitSplit{}, false
	}
	return ComputeSplit(r.EffectivePrice(), r.Parts(), commissionPct), true
}
