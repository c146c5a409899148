package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"fixtrack/internal/domain/auditlog"
	"fixtrack/internal/domain/repair"
	vo "fixtrack/internal/domain/repair/valueobjects"
	"fixtrack/internal/domain/shared/events"
	"fixtrack/internal/domain/user"
	"fixtrack/internal/shared/biztime"
	apperrors "fixtrack/internal/shared/errors"
	"fixtrack/internal/shared/logger"
)

// UpdateRepairCommand carries a partial update. Nil pointers and nil
// slices mean "leave unchanged". Password is the actor's re-confirmation,
// required for restricted technicians only.
type UpdateRepairCommand struct {
	RepairID uint
	ActorID  uint
	Password string

	Status           *string
	CustomerName     *string
	DeviceType       *string
	Issue            *string
	Color            *string
	Phone            *string
	Price            *decimal.Decimal
	FinalPrice       *decimal.Decimal
	Parts            []repair.PartEntry
	Notes            *string
	TechnicianID     *uint
	RecipientID      *uint
	RejectedLocation *string
}

type UpdateRepairResult struct {
	ID           uint
	RepairNumber int
	OldStatus    string
	Status       string
	Changes      []auditlog.FieldChange
	UpdatedAt    string
}

type UpdateRepairUseCase struct {
	repairRepo repair.RepairRepository
	userRepo   user.UserRepository
	logRepo    auditlog.LogRepository
	gate       *permissionGate
	dispatcher events.EventPublisher
	logger     logger.Interface
}

func NewUpdateRepairUseCase(
	repairRepo repair.RepairRepository,
	userRepo user.UserRepository,
	logRepo auditlog.LogRepository,
	verifier PasswordVerifier,
	dispatcher events.EventPublisher,
	logger logger.Interface,
) *UpdateRepairUseCase {
	return &UpdateRepairUseCase{
		repairRepo: repairRepo,
		userRepo:   userRepo,
		logRepo:    logRepo,
		gate:       newPermissionGate(verifier),
		dispatcher: dispatcher,
		logger:     logger,
	}
}

func (uc *UpdateRepairUseCase) Execute(ctx context.Context, cmd UpdateRepairCommand) (*UpdateRepairResult, error) {
	uc.logger.Infow("executing update repair use case", "repair_id", cmd.RepairID, "actor_id", cmd.ActorID)

	if cmd.RepairID == 0 {
		return nil, apperrors.NewValidationError("repair ID is required")
	}
	if cmd.ActorID == 0 {
		return nil, apperrors.NewValidationError("actor ID is required")
	}

	actor, err := uc.userRepo.GetByID(ctx, cmd.ActorID)
	if err != nil {
		uc.logger.Errorw("failed to load actor", "actor_id", cmd.ActorID, "error", err)
		return nil, apperrors.NewUnauthorizedError("unknown user")
	}

	r, err := uc.repairRepo.GetByID(ctx, cmd.RepairID)
	if err != nil {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("repair %d not found", cmd.RepairID))
	}

	targetStatus, err := uc.parseTargetStatus(cmd.Status)
	if err != nil {
		return nil, err
	}

	decision, err := uc.gate.Authorize(actor, r, requestedFields(cmd), targetStatus, cmd.Password)
	if err != nil {
		uc.logger.Warnw("update rejected by permission gate",
			"repair_id", cmd.RepairID, "actor_id", cmd.ActorID, "error", err)
		return nil, err
	}

	before := r.Snapshot()
	oldStatus := r.Status()
	now := biztime.NowUTC()

	statusChanged := targetStatus != nil && *targetStatus != oldStatus
	if targetStatus != nil {
		if err := uc.applyTransition(r, cmd, *targetStatus, decision, now); err != nil {
			return nil, err
		}
	}

	if err := uc.applyEdit(r, cmd, targetStatus, now); err != nil {
		return nil, err
	}

	if err := uc.repairRepo.Update(ctx, r); err != nil {
		uc.logger.Errorw("failed to update repair", "repair_id", cmd.RepairID, "error", err)
		return nil, apperrors.NewInternalError("failed to update repair")
	}

	changes := auditlog.DiffSnapshots(before, r.Snapshot())
	uc.recordAudit(ctx, r, cmd.ActorID, statusChanged, changes)

	event := repair.NewRepairUpdatedEvent(r, cmd.ActorID, oldStatus.String(), r.Status().String())
	if err := uc.dispatcher.Publish(event); err != nil {
		uc.logger.Warnw("failed to publish repair updated event", "repair_id", r.ID(), "error", err)
	}

	uc.logger.Infow("repair updated",
		"repair_id", r.ID(), "repair_number", r.RepairID(),
		"old_status", oldStatus, "new_status", r.Status(), "changed_fields", len(changes))

	return &UpdateRepairResult{
		ID:           r.ID(),
		RepairNumber: r.RepairID(),
		OldStatus:    oldStatus.String(),
		Status:       r.Status().String(),
		Changes:      changes,
		UpdatedAt:    r.UpdatedAt().Format("2006-01-02T15:04:05Z07:00"),
	}, nil
}

func (uc *UpdateRepairUseCase) parseTargetStatus(raw *string) (*vo.RepairStatus, error) {
	if raw == nil {
		return nil, nil
	}
	status, err := vo.NewRepairStatus(*raw)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	return &status, nil
}

func (uc *UpdateRepairUseCase) applyTransition(
	r *repair.Repair,
	cmd UpdateRepairCommand,
	target vo.RepairStatus,
	decision GateDecision,
	now time.Time,
) error {
	var rejectedLoc *vo.DeviceLocation
	if cmd.RejectedLocation != nil {
		loc, err := vo.NewDeviceLocation(*cmd.RejectedLocation)
		if err != nil {
			return apperrors.NewValidationError(err.Error())
		}
		rejectedLoc = &loc
	}

	req := repair.TransitionRequest{
		Status:           target,
		FinalPrice:       cmd.FinalPrice,
		Parts:            cmd.Parts,
		RejectedLocation: rejectedLoc,
		Elevated:         decision.Elevated,
	}
	if err := r.ApplyTransition(req, cmd.ActorID, now); err != nil {
		uc.logger.Warnw("transition rejected",
			"repair_id", r.ID(), "from", r.Status(), "to", target, "error", err)
		switch {
		case errors.Is(err, repair.ErrInvalidTransition),
			errors.Is(err, repair.ErrUnknownStatus),
			errors.Is(err, repair.ErrMissingPrice),
			errors.Is(err, repair.ErrMissingLocation):
			return apperrors.NewValidationError(err.Error())
		default:
			return apperrors.NewInternalError("failed to apply status change")
		}
	}
	return nil
}

// applyEdit handles the non-status fields. Final price and parts already
// consumed by a delivery transition are excluded so the edit does not
// trip the post-delivery pricing freeze.
func (uc *UpdateRepairUseCase) applyEdit(
	r *repair.Repair,
	cmd UpdateRepairCommand,
	targetStatus *vo.RepairStatus,
	now time.Time,
) error {
	edit := repair.EditRequest{
		CustomerName: cmd.CustomerName,
		DeviceType:   cmd.DeviceType,
		Issue:        cmd.Issue,
		Color:        cmd.Color,
		Phone:        cmd.Phone,
		Price:        cmd.Price,
		FinalPrice:   cmd.FinalPrice,
		Parts:        cmd.Parts,
		Notes:        cmd.Notes,
		TechnicianID: cmd.TechnicianID,
		RecipientID:  cmd.RecipientID,
	}
	if targetStatus != nil && targetStatus.IsDelivered() {
		edit.FinalPrice = nil
		edit.Parts = nil
	}

	if err := r.ApplyEdit(edit, cmd.ActorID, now); err != nil {
		if errors.Is(err, repair.ErrPricingFrozen) {
			return apperrors.NewConflictError(err.Error())
		}
		return apperrors.NewValidationError(err.Error())
	}
	return nil
}

func (uc *UpdateRepairUseCase) recordAudit(
	ctx context.Context,
	r *repair.Repair,
	actorID uint,
	statusChanged bool,
	changes []auditlog.FieldChange,
) {
	if len(changes) == 0 {
		return
	}

	action := auditlog.ActionUpdate
	detail := "repair updated"
	if statusChanged {
		action = auditlog.ActionStatusChange
		detail = fmt.Sprintf("status changed to %s", r.Status())
	}

	entry, err := auditlog.NewEntry(r.ID(), action, actorID, detail, changes)
	if err != nil {
		uc.logger.Warnw("failed to build audit entry", "repair_id", r.ID(), "error", err)
		return
	}
	if err := uc.logRepo.Create(ctx, entry); err != nil {
		uc.logger.Warnw("failed to record audit entry", "repair_id", r.ID(), "error", err)
	}
}

// requestedFields lists the field names present in the command, used by
// the permission gate.
func requestedFields(cmd UpdateRepairCommand) []string {
	var fields []string
	add := func(name string, present bool) {
		if present {
			fields = append(fields, name)
		}
	}
	add(FieldStatus, cmd.Status != nil)
	add(FieldCustomerName, cmd.CustomerName != nil)
	add(FieldDeviceType, cmd.DeviceType != nil)
	add(FieldIssue, cmd.Issue != nil)
	add(FieldColor, cmd.Color != nil)
	add(FieldPhone, cmd.Phone != nil)
	add(FieldPrice, cmd.Price != nil)
	add(FieldFinalPrice, cmd.FinalPrice != nil)
	add(FieldParts, cmd.Parts != nil)
	add(FieldNotes, cmd.Notes != nil)
	add(FieldTechnician, cmd.TechnicianID != nil)
	add(FieldRecipient, cmd.RecipientID != nil)
	add(FieldRejectedLocation, cmd.RejectedLocation != nil)
	return fields
}
