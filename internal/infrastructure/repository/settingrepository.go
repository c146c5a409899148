package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"fixtrack/internal/domain/setting"
	"fixtrack/internal/infrastructure/persistence/mappers"
	"fixtrack/internal/infrastructure/persistence/models"
	db "fixtrack/internal/shared/db"
)

const defaultCommissionPct = 50

type SettingRepository struct {
	db     *gorm.DB
	mapper mappers.SettingMapper
}

func NewSettingRepository(db *gorm.DB) *SettingRepository {
	return &SettingRepository{
		db:     db,
		mapper: mappers.NewSettingMapper(),
	}
}

// Get returns the singleton settings row, creating it with defaults on
// first access.
func (r *SettingRepository) Get(ctx context.Context) (*setting.ShopSettings, error) {
	var model models.SettingModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.First(&model).Error
	if err == gorm.ErrRecordNotFound {
		model = models.SettingModel{DefaultTechCommissionPct: defaultCommissionPct}
		if err := tx.Create(&model).Error; err != nil {
			return nil, fmt.Errorf("failed to initialize settings: %w", err)
		}
		return r.mapper.ToDomain(&model), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	return r.mapper.ToDomain(&model), nil
}

func (r *SettingRepository) Update(ctx context.Context, s *setting.ShopSettings) error {
	model := r.mapper.ToModel(s)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.SettingModel{}).
		Where("id = ?", model.ID).
		Select("default_tech_commission_pct", "updated_by").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update settings: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("settings not found")
	}
	return nil
}
