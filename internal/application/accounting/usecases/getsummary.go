package usecases

import (
	"context"

	"fixtrack/internal/domain/accounting"
	"fixtrack/internal/domain/ledger"
	"fixtrack/internal/domain/repair"
	"fixtrack/internal/domain/setting"
	"fixtrack/internal/domain/user"
	"fixtrack/internal/shared/biztime"
	"fixtrack/internal/shared/errors"
	"fixtrack/internal/shared/logger"
)

type GetSummaryQuery struct {
	ActorID   uint
	StartDate string
	EndDate   string
}

type TechnicianEarningsDTO struct {
	TechnicianID   uint   `json:"technicianId"`
	Name           string `json:"name"`
	CommissionPct  int    `json:"commissionPct"`
	DeliveredCount int    `json:"deliveredCount"`
	Revenue        string `json:"revenue"`
	PartsCost      string `json:"partsCost"`
	Share          string `json:"share"`
}

type SummaryDTO struct {
	DeliveredCount  int                     `json:"deliveredCount"`
	GrossRevenue    string                  `json:"grossRevenue"`
	PartsCost       string                  `json:"partsCost"`
	RepairProfit    string                  `json:"repairProfit"`
	TechnicianTotal string                  `json:"technicianTotal"`
	ShopProfit      string                  `json:"shopProfit"`
	ManualIn        string                  `json:"manualIn"`
	ManualOut       string                  `json:"manualOut"`
	NetBalance      string                  `json:"netBalance"`
	ByTechnician    []TechnicianEarningsDTO `json:"byTechnician"`
}

type GetSummaryUseCase struct {
	repairRepo   repair.RepairRepository
	txRepo       ledger.TransactionRepository
	userRepo     user.UserRepository
	settingsRepo setting.SettingsRepository
	logger       logger.Interface
}

func NewGetSummaryUseCase(
	repairRepo repair.RepairRepository,
	txRepo ledger.TransactionRepository,
	userRepo user.UserRepository,
	settingsRepo setting.SettingsRepository,
	logger logger.Interface,
) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		repairRepo:   repairRepo,
		txRepo:       txRepo,
		userRepo:     userRepo,
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

func (uc *GetSummaryUseCase) Execute(ctx context.Context, query GetSummaryQuery) (*SummaryDTO, error) {
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

	repairs, err := uc.repairRepo.ListDeliveredBetween(ctx, start, end)
	if err != nil {
		uc.logger.Errorw("failed to load delivered repairs", "error", err)
		return nil, errors.NewInternalError("failed to build summary")
	}

	txs, err := uc.txRepo.ListBetween(ctx, start, end)
	if err != nil {
		uc.logger.Errorw("failed to load transactions", "error", err)
		return nil, errors.NewInternalError("failed to build summary")
	}

	resolver, techs, err := uc.commissionResolver(ctx)
	if err != nil {
		return nil, err
	}

	summary := accounting.BuildSummary(repairs, txs, resolver)
	return uc.toDTO(summary, techs, resolver), nil
}

// commissionResolver loads technicians once and resolves each repair's
// commission against the technician's personal percentage, falling back
// to the shop default.
func (uc *GetSummaryUseCase) commissionResolver(ctx context.Context) (accounting.CommissionResolver, map[uint]*user.User, error) {
	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load settings", "error", err)
		return nil, nil, errors.NewInternalError("failed to build summary")
	}

	technicians, err := uc.userRepo.ListByRole(ctx, user.RoleTechnician)
	if err != nil {
		uc.logger.Errorw("failed to load technicians", "error", err)
		return nil, nil, errors.NewInternalError("failed to build summary")
	}

	techByID := make(map[uint]*user.User, len(technicians))
	for _, t := range technicians {
		techByID[t.ID()] = t
	}

	shopDefault := settings.DefaultTechCommissionPct()
	resolver := func(technicianID *uint) int {
		if technicianID == nil {
			return shopDefault
		}
		if t, ok := techByID[*technicianID]; ok {
			return accounting.ResolveCommissionPct(t.CommissionPct(), shopDefault)
		}
		return shopDefault
	}
	return resolver, techByID, nil
}

func (uc *GetSummaryUseCase) toDTO(s accounting.Summary, techs map[uint]*user.User, resolver accounting.CommissionResolver) *SummaryDTO {
	dto := &SummaryDTO{
		DeliveredCount:  s.DeliveredCount,
		GrossRevenue:    s.GrossRevenue.String(),
		PartsCost:       s.PartsCost.String(),
		RepairProfit:    s.RepairProfit.String(),
		TechnicianTotal: s.TechnicianTotal.String(),
		ShopProfit:      s.ShopProfit.String(),
		ManualIn:        s.ManualIn.String(),
		ManualOut:       s.ManualOut.String(),
		NetBalance:      s.NetBalance.String(),
		ByTechnician:    make([]TechnicianEarningsDTO, 0, len(s.ByTechnician)),
	}

	for _, e := range s.ByTechnician {
		entry := TechnicianEarningsDTO{
			TechnicianID:   e.TechnicianID,
			CommissionPct:  resolver(&e.TechnicianID),
			DeliveredCount: e.DeliveredCount,
			Revenue:        e.Revenue.String(),
			PartsCost:      e.PartsCost.String(),
			Share:          e.Share.String(),
		}
		if t, ok := techs[e.TechnicianID]; ok {
			entry.Name = t.Name()
		}
		dto.ByTechnician = append(dto.ByTechnician, entry)
	}
	return dto
}
