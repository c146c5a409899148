package usecases

import (
	"context"

	"fixtrack/internal/domain/user"
	"fixtrack/internal/shared/errors"
	"fixtrack/internal/shared/logger"
)

type CreateTechnicianCommand struct {
	ActorID       uint
	Username      string
	Name          string
	Password      string
	CommissionPct *int
	Capabilities  []string
}

type TechnicianDTO struct {
	ID            uint     `json:"id"`
	Username      string   `json:"username"`
	Name          string   `json:"name"`
	Role          string   `json:"role"`
	CommissionPct *int     `json:"commissionPct,omitempty"`
	Capabilities  []string `json:"capabilities"`
	CreatedAt     string   `json:"createdAt"`
}

func toTechnicianDTO(u *user.User) TechnicianDTO {
	caps := make([]string, 0)
	for _, c := range u.Capabilities().List() {
		caps = append(caps, string(c))
	}
	return TechnicianDTO{
		ID:            u.ID(),
		Username:      u.Username(),
		Name:          u.Name(),
		Role:          string(u.Role()),
		CommissionPct: u.CommissionPct(),
		Capabilities:  caps,
		CreatedAt:     u.CreatedAt().Format("2006-01-02T15:04:05Z07:00"),
	}
}

func parseCapabilities(raw []string) (user.Capabilities, error) {
	caps := user.Capabilities{}
	for _, c := range raw {
		candidate := user.Capability(c)
		valid := false
		for _, known := range user.AllCapabilities {
			if candidate == known {
				valid = true
				break
			}
		}
		if !valid {
			return nil, errors.NewValidationError("unknown capability: " + c)
		}
		caps[candidate] = true
	}
	return caps, nil
}

type CreateTechnicianUseCase struct {
	userRepo user.UserRepository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewCreateTechnicianUseCase(
	userRepo user.UserRepository,
	hasher PasswordHasher,
	logger logger.Interface,
) *CreateTechnicianUseCase {
	return &CreateTechnicianUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *CreateTechnicianUseCase) Execute(ctx context.Context, cmd CreateTechnicianCommand) (*TechnicianDTO, error) {
	actor, err := uc.userRepo.GetByID(ctx, cmd.ActorID)
	if err != nil {
		return nil, errors.NewUnauthorizedError("unknown user")
	}
	if !actor.IsAdminCapable() {
		return nil, errors.NewForbiddenError("only admins can manage technicians")
	}

	if len(cmd.Password) < 6 {
		return nil, errors.NewValidationError("password must be at least 6 characters")
	}

	if existing, err := uc.userRepo.GetByUsername(ctx, cmd.Username); err == nil && existing != nil {
		return nil, errors.NewConflictError("username is already taken")
	}

	caps, err := parseCapabilities(cmd.Capabilities)
	if err != nil {
		return nil, err
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to create technician")
	}

	u, err := user.NewUser(cmd.Username, cmd.Name, hash, user.RoleTechnician, caps, cmd.CommissionPct)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Create(ctx, u); err != nil {
		uc.logger.Errorw("failed to create technician", "username", cmd.Username, "error", err)
		return nil, errors.NewInternalError("failed to create technician")
	}

	uc.logger.Infow("technician created", "user_id", u.ID(), "username", u.Username())
	dto := toTechnicianDTO(u)
	return &dto, nil
}
