package models

type UserModel struct {
	ID            uint   `gorm:"primaryKey"`
	Username      string `gorm:"uniqueIndex;size:50;not null"`
	Name          string `gorm:"size:100;not null"`
	PasswordHash  string `gorm:"size:255;not null"`
	Role          string `gorm:"size:20;not null;index"`
	Capabilities  string `gorm:"type:json"`
	CommissionPct *int
	CreatedAt     int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt     int64 `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (UserModel) TableName() string {
	return "users"
}
