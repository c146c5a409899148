package usecases

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"fixtrack/internal/domain/repair"
	"fixtrack/internal/domain/user"
	"fixtrack/internal/shared/biztime"
	"fixtrack/internal/shared/errors"
	"fixtrack/internal/shared/logger"
)

type GetPartsReportQuery struct {
	ActorID   uint
	StartDate string
	EndDate   string
}

type PartsReportLineDTO struct {
	RepairNumber int    `json:"repairId"`
	CustomerName string `json:"customerName"`
	PartName     string `json:"partName"`
	Supplier     string `json:"supplier,omitempty"`
	UnitCost     string `json:"unitCost"`
	Qty          int    `json:"qty"`
	TotalCost    string `json:"totalCost"`
	PurchaseDate string `json:"purchaseDate,omitempty"`
}

type SupplierTotalDTO struct {
	Supplier  string `json:"supplier,omitempty"`
	TotalCost string `json:"totalCost"`
	Count     int    `json:"count"`
}

type PartsReportDTO struct {
	Lines      []PartsReportLineDTO `json:"lines"`
	BySupplier []SupplierTotalDTO   `json:"bySupplier"`
	TotalCost  string               `json:"totalCost"`
	Count      int                  `json:"count"`
}

// GetPartsReportUseCase flattens the parts bought across all repairs into
// a purchase invoice for the period, keyed on each part's purchase date.
// Parts without a purchase date never appear.
type GetPartsReportUseCase struct {
	repairRepo repair.RepairRepository
	userRepo   user.UserRepository
	logger     logger.Interface
}

func NewGetPartsReportUseCase(
	repairRepo repair.RepairRepository,
	userRepo user.UserRepository,
	logger logger.Interface,
) *GetPartsReportUseCase {
	return &GetPartsReportUseCase{
		repairRepo: repairRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

func (uc *GetPartsReportUseCase) Execute(ctx context.Context, query GetPartsReportQuery) (*PartsReportDTO, error) {
	actor, err := uc.userRepo.GetByID(ctx, query.ActorID)
	if err != nil {
		return nil, errors.NewUnauthorizedError("unknown user")
	}
	if !actor.IsAdminCapable() && !actor.HasCapability(user.CapAccessAccounts) {
		return nil, errors.NewForbiddenError("you do not have access to accounts")
	}

	start, end, err := biztime.DateRangeUTC(query.StartDate, query.EndDate)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	repairs, err := uc.repairRepo.ListWithParts(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load repairs with parts", "error", err)
		return nil, errors.NewInternalError("failed to build parts report")
	}

	report := &PartsReportDTO{Lines: []PartsReportLineDTO{}, BySupplier: []SupplierTotalDTO{}}
	total := decimal.Zero
	supplierSums := make(map[string]decimal.Decimal)
	supplierCounts := make(map[string]int)

	for _, r := range repairs {
		for _, p := range r.Parts() {
			if !purchasedWithin(p.PurchaseDate, start, end) {
				continue
			}
			report.Lines = append(report.Lines, PartsReportLineDTO{
				RepairNumber: r.RepairID(),
				CustomerName: r.CustomerName(),
				PartName:     p.Name,
				Supplier:     p.Supplier,
				UnitCost:     p.UnitCost.String(),
				Qty:          p.Qty,
				TotalCost:    p.TotalCost().String(),
				PurchaseDate: p.PurchaseDate.Format("2006-01-02"),
			})
			total = total.Add(p.TotalCost())
			supplierSums[p.Supplier] = supplierSums[p.Supplier].Add(p.TotalCost())
			supplierCounts[p.Supplier]++
		}
	}

	sort.SliceStable(report.Lines, func(i, j int) bool {
		return report.Lines[i].PurchaseDate < report.Lines[j].PurchaseDate
	})

	suppliers := make([]string, 0, len(supplierSums))
	for s := range supplierSums {
		suppliers = append(suppliers, s)
	}
	sort.Strings(suppliers)
	for _, s := range suppliers {
		report.BySupplier = append(report.BySupplier, SupplierTotalDTO{
			Supplier:  s,
			TotalCost: supplierSums[s].String(),
			Count:     supplierCounts[s],
		})
	}

	report.TotalCost = total.String()
	report.Count = len(report.Lines)
	return report, nil
}

// purchasedWithin reports whether a part's purchase date falls inside the
// optional range. Undated parts are always out.
func purchasedWithin(date, start, end *time.Time) bool {
	if date == nil {
		return false
	}
	if start != nil && date.Before(*start) {
		return false
	}
	if end != nil && date.After(*end) {
		return false
	}
	return true
}
