package usecases

import (
	"context"
	"fmt"

	"fixtrack/internal/application/repair/dto"
	"fixtrack/internal/domain/auditlog"
	"fixtrack/internal/domain/repair"
	"fixtrack/internal/domain/user"
	"fixtrack/internal/shared/errors"
	"fixtrack/internal/shared/logger"
)

type GetRepairLogQuery struct {
	RepairID uint
	ActorID  uint
}

type GetRepairLogUseCase struct {
	repairRepo repair.RepairRepository
	userRepo   user.UserRepository
	logRepo    auditlog.LogRepository
	logger     logger.Interface
}

func NewGetRepairLogUseCase(
	repairRepo repair.RepairRepository,
	userRepo user.UserRepository,
	logRepo auditlog.LogRepository,
	logger logger.Interface,
) *GetRepairLogUseCase {
	return &GetRepairLogUseCase{
		repairRepo: repairRepo,
		userRepo:   userRepo,
		logRepo:    logRepo,
		logger:     logger,
	}
}

func (uc *GetRepairLogUseCase) Execute(ctx context.Context, query GetRepairLogQuery) ([]dto.LogEntryDTO, error) {
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

	entries, err := uc.logRepo.ListByRepairID(ctx, query.RepairID)
	if err != nil {
		uc.logger.Errorw("failed to load repair log", "repair_id", query.RepairID, "error", err)
		return nil, errors.NewInternalError("failed to load repair history")
	}

	return dto.FromLogEntries(entries), nil
}
