package usecases

import (
	"context"

	"github.com/shopspring/decimal"

	"fixtrack/internal/domain/auditlog"
	"fixtrack/internal/domain/repair"
	"fixtrack/internal/domain/shared/events"
	"fixtrack/internal/domain/user"
	"fixtrack/internal/shared/errors"
	"fixtrack/internal/shared/logger"
)

type CreateRepairCommand struct {
	CustomerName string
	DeviceType   string
	Issue        string
	Color        string
	Phone        string
	Price        decimal.Decimal
	TechnicianID *uint
	RecipientID  *uint
	Notes        string
	CreatedBy    uint
}

type CreateRepairResult struct {
	ID           uint
	RepairNumber int
	Status       string
	CreatedAt    string
}

type CreateRepairUseCase struct {
	repairRepo repair.RepairRepository
	numbers    repair.NumberAllocator
	userRepo   user.UserRepository
	logRepo    auditlog.LogRepository
	dispatcher events.EventPublisher
	logger     logger.Interface
}

func NewCreateRepairUseCase(
	repairRepo repair.RepairRepository,
	numbers repair.NumberAllocator,
	userRepo user.UserRepository,
	logRepo auditlog.LogRepository,
	dispatcher events.EventPublisher,
	logger logger.Interface,
) *CreateRepairUseCase {
	return &CreateRepairUseCase{
		repairRepo: repairRepo,
		numbers:    numbers,
		userRepo:   userRepo,
		logRepo:    logRepo,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

func (uc *CreateRepairUseCase) Execute(ctx context.Context, cmd CreateRepairCommand) (*CreateRepairResult, error) {
	uc.logger.Infow("executing create repair use case", "customer", cmd.CustomerName, "device", cmd.DeviceType)

	if cmd.CreatedBy == 0 {
		return nil, errors.NewValidationError("creator ID is required")
	}

	actor, err := uc.userRepo.GetByID(ctx, cmd.CreatedBy)
	if err != nil {
		return nil, errors.NewUnauthorizedError("unknown user")
	}
	if !actor.IsAdminCapable() && !actor.HasCapability(user.CapCreateRepair) {
		return nil, errors.NewForbiddenError("you are not allowed to create repairs")
	}

	r, err := repair.NewRepair(
		cmd.CustomerName,
		cmd.DeviceType,
		cmd.Issue,
		cmd.Color,
		cmd.Phone,
		cmd.Price,
		cmd.TechnicianID,
		cmd.RecipientID,
		cmd.Notes,
		cmd.CreatedBy,
	)
	if err != nil {
		uc.logger.Errorw("invalid repair data", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	num, err := uc.numbers.NextRepairID(ctx)
	if err != nil {
		uc.logger.Errorw("failed to allocate repair number", "error", err)
		return nil, errors.NewInternalError("failed to allocate repair number")
	}
	if err := r.SetRepairID(num); err != nil {
		return nil, errors.NewInternalError("failed to assign repair number")
	}

	if err := uc.repairRepo.Create(ctx, r); err != nil {
		uc.logger.Errorw("failed to create repair", "repair_number", num, "error", err)
		return nil, errors.NewInternalError("failed to create repair")
	}

	uc.recordAudit(ctx, r, cmd.CreatedBy)

	if err := uc.dispatcher.Publish(repair.NewRepairCreatedEvent(r)); err != nil {
		uc.logger.Warnw("failed to publish repair created event", "repair_id", r.ID(), "error", err)
	}

	uc.logger.Infow("repair created", "repair_id", r.ID(), "repair_number", r.RepairID())

	return &CreateRepairResult{
		ID:           r.ID(),
		RepairNumber: r.RepairID(),
		Status:       r.Status().String(),
		CreatedAt:    r.CreatedAt().Format("2006-01-02T15:04:05Z07:00"),
	}, nil
}

// recordAudit writes the creation entry. Audit failures never fail the
// create itself.
func (uc *CreateRepairUseCase) recordAudit(ctx context.Context, r *repair.Repair, actorID uint) {
	entry, err := auditlog.NewEntry(r.ID(), auditlog.ActionCreate, actorID, "repair created", nil)
	if err != nil {
		uc.logger.Warnw("failed to build audit entry", "repair_id", r.ID(), "error", err)
		return
	}
	if err := uc.logRepo.Create(ctx, entry); err != nil {
		uc.logger.Warnw("failed to record audit entry", "repair_id", r.ID(), "error", err)
	}
}
