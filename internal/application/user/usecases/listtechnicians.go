package usecases

import (
	"context"
	"fmt"

	"fixtrack/internal/domain/user"
	"fixtrack/internal/shared/errors"
	"fixtrack/internal/shared/logger"
)

type ListTechniciansUseCase struct {
	userRepo user.UserRepository
	logger   logger.Interface
}

func NewListTechniciansUseCase(userRepo user.UserRepository, logger logger.Interface) *ListTechniciansUseCase {
	return &ListTechniciansUseCase{userRepo: userRepo, logger: logger}
}

func (uc *ListTechniciansUseCase) Execute(ctx context.Context, actorID uint) ([]TechnicianDTO, error) {
	if _, err := uc.userRepo.GetByID(ctx, actorID); err != nil {
		return nil, errors.NewUnauthorizedError("unknown user")
	}

	technicians, err := uc.userRepo.ListByRole(ctx, user.RoleTechnician)
	if err != nil {
		uc.logger.Errorw("failed to list technicians", "error", err)
		return nil, errors.NewInternalError("failed to list technicians")
	}

	out := make([]TechnicianDTO, 0, len(technicians))
	for _, t := range technicians {
		out = append(out, toTechnicianDTO(t))
	}
	return out, nil
}

type GetTechnicianUseCase struct {
	userRepo user.UserRepository
	logger   logger.Interface
}

func NewGetTechnicianUseCase(userRepo user.UserRepository, logger logger.Interface) *GetTechnicianUseCase {
	return &GetTechnicianUseCase{userRepo: userRepo, logger: logger}
}

func (uc *GetTechnicianUseCase) Execute(ctx context.Context, actorID, technicianID uint) (*TechnicianDTO, error) {
	if _, err := uc.userRepo.GetByID(ctx, actorID); err != nil {
		return nil, errors.NewUnauthorizedError("unknown user")
	}

	t, err := uc.userRepo.GetByID(ctx, technicianID)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("technician %d not found", technicianID))
	}

	dto := toTechnicianDTO(t)
	return &dto, nil
}

type DeleteTechnicianUseCase struct {
	userRepo user.UserRepository
	logger   logger.Interface
}

func NewDeleteTechnicianUseCase(userRepo user.UserRepository, logger logger.Interface) *DeleteTechnicianUseCase {
	return &DeleteTechnicianUseCase{userRepo: userRepo, logger: logger}
}

func (uc *DeleteTechnicianUseCase) Execute(ctx context.Context, actorID, technicianID uint) error {
	actor, err := uc.userRepo.GetByID(ctx, actorID)
	if err != nil {
		return errors.NewUnauthorizedError("unknown user")
	}
	if !actor.IsAdminCapable() {
		return errors.NewForbiddenError("only admins can manage technicians")
	}
	if actorID == technicianID {
		return errors.NewValidationError("you cannot delete your own account")
	}

	if _, err := uc.userRepo.GetByID(ctx, technicianID); err != nil {
		return errors.NewNotFoundError(fmt.Sprintf("technician %d not found", technicianID))
	}

	if err := uc.userRepo.Delete(ctx, technicianID); err != nil {
		uc.logger.Errorw("failed to delete technician", "user_id", technicianID, "error", err)
		return errors.NewInternalError("failed to delete technician")
	}

	uc.logger.Infow("technician deleted", "user_id", technicianID, "deleted_by", actorID)
	return nil
}
