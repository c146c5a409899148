package accounting

import (
	"sort"

	"github.com/shopspring/decimal"

	"fixtrack/internal/domain/ledger"
	"fixtrack/internal/domain/repair"
)

// TechnicianEarnings aggregates one technician's delivered work inside a
// summary period.
type TechnicianEarnings struct {
	TechnicianID   uint
	DeliveredCount int
	Revenue        decimal.Decimal
	PartsCost      decimal.Decimal
	Share          decimal.Decimal
}

// Summary is the shop's financial picture for a period: delivered repair
// revenue minus parts cost, adjusted by manual ledger movement, with the
// technician commission breakdown alongside.
type Summary struct {
	DeliveredCount  int
	GrossRevenue    decimal.Decimal
	PartsCost       decimal.Decimal
	RepairProfit    decimal.Decimal
	TechnicianTotal decimal.Decimal
	ShopProfit      decimal.Decimal
	ManualIn        decimal.Decimal
	ManualOut       decimal.Decimal
	NetBalance      decimal.Decimal
	ByTechnician    []TechnicianEarnings
}

// CommissionResolver returns the commission percentage to apply for a
// repair's technician. A nil technician ID means the repair is
// unassigned; its whole profit stays with the shop.
type CommissionResolver func(technicianID *uint) int

// BuildSummary folds delivered repairs and manual transactions into a
// Summary. Repairs that are not delivered are skipped; callers normally
// pass a pre-filtered delivered set but the guard keeps the math honest.
func BuildSummary(repairs []*repair.Repair, txs []*ledger.Transaction, resolve CommissionResolver) Summary {
	s := Summary{
		GrossRevenue:    decimal.Zero,
		PartsCost:       decimal.Zero,
		RepairProfit:    decimal.Zero,
		TechnicianTotal: decimal.Zero,
		ShopProfit:      decimal.Zero,
		ManualIn:        decimal.Zero,
		ManualOut:       decimal.Zero,
	}

	byTech := make(map[uint]*TechnicianEarnings)

	for _, r := range repairs {
		if !r.Status().IsDelivered() {
			continue
		}

		pct := 0
		techID := r.TechnicianID()
		if techID != nil {
			pct = resolve(techID)
		}

		split := ComputeSplit(r.EffectivePrice(), r.Parts(), pct)

		s.DeliveredCount++
		s.GrossRevenue = s.GrossRevenue.Add(split.FinalPrice)
		s.PartsCost = s.PartsCost.Add(split.PartsCost)
		s.RepairProfit = s.RepairProfit.Add(split.NetProfit)
		s.TechnicianTotal = s.TechnicianTotal.Add(split.TechnicianShare)
		s.ShopProfit = s.ShopProfit.Add(split.ShopShare)

		if techID != nil {
			e, ok := byTech[*techID]
			if !ok {
				e = &TechnicianEarnings{
					TechnicianID: *techID,
					Revenue:      decimal.Zero,
					PartsCost:    decimal.Zero,
					Share:        decimal.Zero,
				}
				byTech[*techID] = e
			}
			e.DeliveredCount++
			e.Revenue = e.Revenue.Add(split.FinalPrice)
			e.PartsCost = e.PartsCost.Add(split.PartsCost)
			e.Share = e.Share.Add(split.TechnicianShare)
		}
	}

	for _, t := range txs {
		switch t.Direction() {
		case ledger.DirectionIn:
			s.ManualIn = s.ManualIn.Add(t.Amount())
		case ledger.DirectionOut:
			s.ManualOut = s.ManualOut.Add(t.Amount())
		}
	}

	s.NetBalance = s.RepairProfit.Add(s.ManualIn).Sub(s.ManualOut)

	s.ByTechnician = make([]TechnicianEarnings, 0, len(byTech))
	for _, e := range byTech {
		s.ByTechnician = append(s.ByTechnician, *e)
	}
	sort.Slice(s.ByTechnician, func(i, j int) bool {
		return s.ByTechnician[i].TechnicianID < s.ByTechnician[j].TechnicianID
	})

	return s
}
