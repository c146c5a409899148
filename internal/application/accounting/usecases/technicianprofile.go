package usecases

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	repairdto "fixtrack/internal/application/repair/dto"
	"fixtrack/internal/domain/accounting"
	"fixtrack/internal/domain/repair"
	"fixtrack/internal/domain/setting"
	"fixtrack/internal/domain/user"
	"fixtrack/internal/shared/errors"
	"fixtrack/internal/shared/logger"
)

type GetTechnicianProfileQuery struct {
	TechnicianID uint
	ActorID      uint
}

type TechnicianProfileDTO struct {
	TechnicianID   uint                  `json:"technicianId"`
	Name           string                `json:"name"`
	Username       string                `json:"username"`
	CommissionPct  int                   `json:"commissionPct"`
	ActiveCount    int                   `json:"activeCount"`
	DeliveredCount int                   `json:"deliveredCount"`
	TotalShare     string                `json:"totalShare"`
	Repairs        []repairdto.RepairDTO `json:"repairs"`
}

// GetTechnicianProfileUseCase builds one technician's workload and
// earnings view. Technicians may look at their own profile; anything
// wider needs accounts access.
type GetTechnicianProfileUseCase struct {
	repairRepo   repair.RepairRepository
	userRepo     user.UserRepository
	settingsRepo setting.SettingsRepository
	logger       logger.Interface
}

func NewGetTechnicianProfileUseCase(
	repairRepo repair.RepairRepository,
	userRepo user.UserRepository,
	settingsRepo setting.SettingsRepository,
	logger logger.Interface,
) *GetTechnicianProfileUseCase {
	return &GetTechnicianProfileUseCase{
		repairRepo:   repairRepo,
		userRepo:     userRepo,
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

func (uc *GetTechnicianProfileUseCase) Execute(ctx context.Context, query GetTechnicianProfileQuery) (*TechnicianProfileDTO, error) {
	actor, err := uc.userRepo.GetByID(ctx, query.ActorID)
	if err != nil {
		return nil, errors.NewUnauthorizedError("unknown user")
	}
	if actor.ID() != query.TechnicianID && !actor.IsAdminCapable() && !actor.HasCapability(user.CapAccessAccounts) {
		return nil, errors.NewForbiddenError("you cannot view another technician's profile")
	}

	tech, err := uc.userRepo.GetByID(ctx, query.TechnicianID)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("technician %d not found", query.TechnicianID))
	}

	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load settings", "error", err)
		return nil, errors.NewInternalError("failed to build technician profile")
	}
	pct := accounting.ResolveCommissionPct(tech.CommissionPct(), settings.DefaultTechCommissionPct())

	repairs, err := uc.repairRepo.ListByTechnician(ctx, query.TechnicianID)
	if err != nil {
		uc.logger.Errorw("failed to load technician repairs", "technician_id", query.TechnicianID, "error", err)
		return nil, errors.NewInternalError("failed to build technician profile")
	}

	profile := &TechnicianProfileDTO{
		TechnicianID:  tech.ID(),
		Name:          tech.Name(),
		Username:      tech.Username(),
		CommissionPct: pct,
		Repairs:       repairdto.FromRepairs(repairs),
	}

	totalShare := decimal.Zero
	for _, r := range repairs {
		if split, ok := accounting.SplitForRepair(r, pct); ok {
			profile.DeliveredCount++
			totalShare = totalShare.Add(split.TechnicianShare)
		} else if !r.Status().IsRejected() {
			profile.ActiveCount++
		}
	}
	profile.TotalShare = totalShare.String()

	return profile, nil
}
