package usecases

import (
	"context"
	"fmt"

	"fixtrack/internal/domain/user"
	"fixtrack/internal/shared/errors"
	"fixtrack/internal/shared/logger"
)

// UpdateTechnicianCommand carries a partial technician update. Nil
// pointers mean "leave unchanged". ClearCommission removes a personal
// percentage so the shop default applies again.
type UpdateTechnicianCommand struct {
	ActorID         uint
	TechnicianID    uint
	Name            *string
	Username        *string
	Password        *string
	CommissionPct   *int
	ClearCommission bool
	Capabilities    []string
}

type UpdateTechnicianUseCase struct {
	userRepo user.UserRepository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewUpdateTechnicianUseCase(
	userRepo user.UserRepository,
	hasher PasswordHasher,
	logger logger.Interface,
) *UpdateTechnicianUseCase {
	return &UpdateTechnicianUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *UpdateTechnicianUseCase) Execute(ctx context.Context, cmd UpdateTechnicianCommand) (*TechnicianDTO, error) {
	actor, err := uc.userRepo.GetByID(ctx, cmd.ActorID)
	if err != nil {
		return nil, errors.NewUnauthorizedError("unknown user")
	}
	if !actor.IsAdminCapable() {
		return nil, errors.NewForbiddenError("only admins can manage technicians")
	}

	u, err := uc.userRepo.GetByID(ctx, cmd.TechnicianID)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("technician %d not found", cmd.TechnicianID))
	}

	if cmd.Name != nil {
		if err := u.Rename(*cmd.Name); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if cmd.Username != nil && *cmd.Username != u.Username() {
		if existing, err := uc.userRepo.GetByUsername(ctx, *cmd.Username); err == nil && existing != nil {
			return nil, errors.NewConflictError("username is already taken")
		}
		if err := u.ChangeUsername(*cmd.Username); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if cmd.Password != nil {
		if len(*cmd.Password) < 6 {
			return nil, errors.NewValidationError("password must be at least 6 characters")
		}
		hash, err := uc.hasher.Hash(*cmd.Password)
		if err != nil {
			uc.logger.Errorw("failed to hash password", "error", err)
			return nil, errors.NewInternalError("failed to update technician")
		}
		if err := u.SetPasswordHash(hash); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if cmd.ClearCommission {
		if err := u.SetCommissionPct(nil); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	} else if cmd.CommissionPct != nil {
		if err := u.SetCommissionPct(cmd.CommissionPct); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if cmd.Capabilities != nil {
		caps, err := parseCapabilities(cmd.Capabilities)
		if err != nil {
			return nil, err
		}
		u.SetCapabilities(caps)
	}

	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to update technician", "user_id", cmd.TechnicianID, "error", err)
		return nil, errors.NewInternalError("failed to update technician")
	}

	uc.logger.Infow("technician updated", "user_id", u.ID())
	dto := toTechnicianDTO(u)
	return &dto, nil
}
