package mappers

import (
	"fixtrack/internal/domain/setting"
	"fixtrack/internal/infrastructure/persistence/models"
)

// SettingMapper handles the conversion between shop settings and the persistence model.
type SettingMapper interface {
	ToModel(s *setting.ShopSettings) *models.SettingModel
	ToDomain(model *models.SettingModel) *setting.ShopSettings
}

// SettingMapperImpl is the concrete implementation of SettingMapper.
type SettingMapperImpl struct{}

// NewSettingMapper creates a new SettingMapper.
func NewSettingMapper() SettingMapper {
	return &SettingMapperImpl{}
}

func (m *SettingMapperImpl) ToModel(s *setting.ShopSettings) *models.SettingModel {
	return &models.SettingModel{
		ID:                       s.ID(),
		DefaultTechCommissionPct: s.DefaultTechCommissionPct(),
		UpdatedBy:                s.UpdatedBy(),
		CreatedAt:                s.CreatedAt().UnixMilli(),
		UpdatedAt:                s.UpdatedAt().UnixMilli(),
	}
}

func (m *SettingMapperImpl) ToDomain(model *models.SettingModel) *setting.ShopSettings {
	return setting.ReconstructShopSettings(
		model.ID,
		model.DefaultTechCommissionPct,
		model.UpdatedBy,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
