package usecases

import (
	"context"
	"fmt"

	"fixtrack/internal/application/repair/dto"
	"fixtrack/internal/domain/repair"
	"fixtrack/internal/domain/user"
	"fixtrack/internal/shared/errors"
	"fixtrack/internal/shared/logger"
)

type GetRepairQuery struct {
	RepairID uint
	ActorID  uint
}

type GetRepairUseCase struct {
	repairRepo repair.RepairRepository
	userRepo   user.UserRepository
	logger     logger.Interface
}

func NewGetRepairUseCase(
	repairRepo repair.RepairRepository,
	userRepo user.UserRepository,
	logger logger.Interface,
) *GetRepairUseCase {
	return &GetRepairUseCase{
		repairRepo: repairRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

func (uc *GetRepairUseCase) Execute(ctx context.Context, query GetRepairQuery) (*dto.RepairDTO, error) {
	if query.RepairID == 0 {
		return nil, errors.NewValidationError("repair ID is required")
	}

	actor, err := uc.userRepo.GetByID(ctx, query.ActorID)
	if err != nil {
		return nil, errors.NewUnauthorizedError("unknown user")
	}

	r, err := uc.repairRepo.GetByID(ctx, query.RepairID)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("repair %d not found", query.RepairID))
	}

	if !r.CanBeViewedBy(actor.ID(), actor.CanViewAllRepairs()) {
		return nil, errors.NewForbiddenError("you do not have access to this repair")
	}

	d := dto.FromRepair(r)
	names := lookupUserNames(ctx, uc.userRepo, repairUserIDs([]*repair.Repair{r}))
	d.ApplyUserNames(names)
	return &d, nil
}
