package models

// SettingModel holds the single shop settings row.
type SettingModel struct {
	ID                       uint `gorm:"primaryKey"`
	DefaultTechCommissionPct int  `gorm:"not null;default:50"`
	UpdatedBy                *uint
	CreatedAt                int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt                int64 `gorm:"autoUpdateTime:milli;not null"`
}

func (SettingModel) TableName() string {
	return "shop_settings"
}
