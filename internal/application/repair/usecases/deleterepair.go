package usecases

import (
	"context"
	"fmt"

	"fixtrack/internal/domain/auditlog"
	"fixtrack/internal/domain/repair"
	"fixtrack/internal/domain/shared/events"
	"fixtrack/internal/domain/user"
	"fixtrack/internal/shared/errors"
	"fixtrack/internal/shared/logger"
)

type DeleteRepairCommand struct {
	RepairID uint
	ActorID  uint
}

type DeleteRepairUseCase struct {
	repairRepo repair.RepairRepository
	userRepo   user.UserRepository
	logRepo    auditlog.LogRepository
	dispatcher events.EventPublisher
	logger     logger.Interface
}

func NewDeleteRepairUseCase(
	repairRepo repair.RepairRepository,
	userRepo user.UserRepository,
	logRepo auditlog.LogRepository,
	dispatcher events.EventPublisher,
	logger logger.Interface,
) *DeleteRepairUseCase {
	return &DeleteRepairUseCase{
		repairRepo: repairRepo,
		userRepo:   userRepo,
		logRepo:    logRepo,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

func (uc *DeleteRepairUseCase) Execute(ctx context.Context, cmd DeleteRepairCommand) error {
	uc.logger.Infow("executing delete repair use case", "repair_id", cmd.RepairID, "actor_id", cmd.ActorID)

	if cmd.RepairID == 0 {
		return errors.NewValidationError("repair ID is required")
	}

	actor, err := uc.userRepo.GetByID(ctx, cmd.ActorID)
	if err != nil {
		return errors.NewUnauthorizedError("unknown user")
	}
	if !actor.IsAdminCapable() && !actor.HasCapability(user.CapDeleteRepair) {
		return errors.NewForbiddenError("you are not allowed to delete repairs")
	}

	r, err := uc.repairRepo.GetByID(ctx, cmd.RepairID)
	if err != nil {
		return errors.NewNotFoundError(fmt.Sprintf("repair %d not found", cmd.RepairID))
	}

	if err := uc.repairRepo.Delete(ctx, cmd.RepairID); err != nil {
		uc.logger.Errorw("failed to delete repair", "repair_id", cmd.RepairID, "error", err)
		return errors.NewInternalError("failed to delete repair")
	}

	// The delete entry outlives the repair; the log keeps the whole story.
	entry, err := auditlog.NewEntry(r.ID(), auditlog.ActionDelete, cmd.ActorID,
		fmt.Sprintf("repair #%d deleted", r.RepairID()), nil)
	if err == nil {
		if err := uc.logRepo.Create(ctx, entry); err != nil {
			uc.logger.Warnw("failed to record delete audit entry", "repair_id", r.ID(), "error", err)
		}
	}

	if err := uc.dispatcher.Publish(repair.NewRepairDeletedEvent(r, cmd.ActorID)); err != nil {
		uc.logger.Warnw("failed to publish repair deleted event", "repair_id", r.ID(), "error", err)
	}

	uc.logger.Infow("repair deleted", "repair_id", r.ID(), "repair_number", r.RepairID())
	return nil
}
