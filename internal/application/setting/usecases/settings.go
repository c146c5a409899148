package usecases

import (
	"context"

	"fixtrack/internal/domain/setting"
	"fixtrack/internal/domain/user"
	"fixtrack/internal/shared/errors"
	"fixtrack/internal/shared/logger"
)

type SettingsDTO struct {
	DefaultTechCommissionPct int    `json:"defaultTechCommissionPct"`
	UpdatedAt                string `json:"updatedAt"`
}

type GetSettingsUseCase struct {
	settingsRepo setting.SettingsRepository
	userRepo     user.UserRepository
	logger       logger.Interface
}

func NewGetSettingsUseCase(
	settingsRepo setting.SettingsRepository,
	userRepo user.UserRepository,
	logger logger.Interface,
) *GetSettingsUseCase {
	return &GetSettingsUseCase{
		settingsRepo: settingsRepo,
		userRepo:     userRepo,
		logger:       logger,
	}
}

func (uc *GetSettingsUseCase) Execute(ctx context.Context, actorID uint) (*SettingsDTO, error) {
	actor, err := uc.userRepo.GetByID(ctx, actorID)
	if err != nil {
		return nil, errors.NewUnauthorizedError("unknown user")
	}
	if !actor.IsAdminCapable() {
		return nil, errors.NewForbiddenError("only admins can view settings")
	}

	s, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load settings", "error", err)
		return nil, errors.NewInternalError("failed to load settings")
	}

	return &SettingsDTO{
		DefaultTechCommissionPct: s.DefaultTechCommissionPct(),
		UpdatedAt:                s.UpdatedAt().Format("2006-01-02T15:04:05Z07:00"),
	}, nil
}

type UpdateSettingsCommand struct {
	ActorID                  uint
	DefaultTechCommissionPct int
}

type UpdateSettingsUseCase struct {
	settingsRepo setting.SettingsRepository
	userRepo     user.UserRepository
	logger       logger.Interface
}

func NewUpdateSettingsUseCase(
	settingsRepo setting.SettingsRepository,
	userRepo user.UserRepository,
	logger logger.Interface,
) *UpdateSettingsUseCase {
	return &UpdateSettingsUseCase{
		settingsRepo: settingsRepo,
		userRepo:     userRepo,
		logger:       logger,
	}
}

func (uc *UpdateSettingsUseCase) Execute(ctx context.Context, cmd UpdateSettingsCommand) (*SettingsDTO, error) {
	actor, err := uc.userRepo.GetByID(ctx, cmd.ActorID)
	if err != nil {
		return nil, errors.NewUnauthorizedError("unknown user")
	}
	if !actor.IsAdminCapable() {
		return nil, errors.NewForbiddenError("only admins can change settings")
	}

	s, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load settings", "error", err)
		return nil, errors.NewInternalError("failed to update settings")
	}

	if err := s.UpdateDefaultCommission(cmd.DefaultTechCommissionPct, cmd.ActorID); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.settingsRepo.Update(ctx, s); err != nil {
		uc.logger.Errorw("failed to persist settings", "error", err)
		return nil, errors.NewInternalError("failed to update settings")
	}

	uc.logger.Infow("settings updated",
		"default_commission_pct", cmd.DefaultTechCommissionPct, "updated_by", cmd.ActorID)

	return &SettingsDTO{
		DefaultTechCommissionPct: s.DefaultTechCommissionPct(),
		UpdatedAt:                s.UpdatedAt().Format("2006-01-02T15:04:05Z07:00"),
	}, nil
}
