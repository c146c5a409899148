package mappers

import (
	"encoding/json"
	"fmt"

	"fixtrack/internal/domain/user"
	"fixtrack/internal/infrastructure/persistence/models"
)

// UserMapper handles the conversion between User domain entities and persistence models.
type UserMapper interface {
	ToModel(u *user.User) *models.UserModel
	ToDomain(model *models.UserModel) (*user.User, error)
}

// UserMapperImpl is the concrete implementation of UserMapper.
type UserMapperImpl struct{}

// NewUserMapper creates a new UserMapper.
func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToModel(u *user.User) *models.UserModel {
	model := &models.UserModel{
		ID:            u.ID(),
		Username:      u.Username(),
		Name:          u.Name(),
		PasswordHash:  u.PasswordHash(),
		Role:          string(u.Role()),
		CommissionPct: u.CommissionPct(),
		CreatedAt:     u.CreatedAt().UnixMilli(),
		UpdatedAt:     u.UpdatedAt().UnixMilli(),
	}

	if caps := u.Capabilities().List(); len(caps) > 0 {
		capsJSON, _ := json.Marshal(caps)
		model.Capabilities = string(capsJSON)
	}

	return model
}

func (m *UserMapperImpl) ToDomain(model *models.UserModel) (*user.User, error) {
	role, err := user.NewRole(model.Role)
	if err != nil {
		return nil, fmt.Errorf("invalid user role (id=%d): %w", model.ID, err)
	}

	var granted []user.Capability
	if model.Capabilities != "" {
		if err := json.Unmarshal([]byte(model.Capabilities), &granted); err != nil {
			return nil, fmt.Errorf("failed to unmarshal user capabilities (id=%d): %w", model.ID, err)
		}
	}

	return user.ReconstructUser(
		model.ID,
		model.Username,
		model.Name,
		model.PasswordHash,
		role,
		user.NewCapabilities(granted...),
		model.CommissionPct,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
