package models

type NotificationModel struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"not null;index:idx_notifications_user_read"`
	Kind      string `gorm:"size:20;not null"`
	Message   string `gorm:"size:500;not null"`
	RepairID  *uint  `gorm:"index"`
	RepairNum *int
	IsRead    bool  `gorm:"not null;default:false;index:idx_notifications_user_read"`
	CreatedAt int64 `gorm:"autoCreateTime:milli;not null;index"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (NotificationModel) TableName() string {
	return "notifications"
}

type PushSubscriptionModel struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"not null;index"`
	Endpoint  string `gorm:"uniqueIndex;size:500;not null"`
	P256dh    string `gorm:"size:255;not null"`
	Auth      string `gorm:"size:255;not null"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
}

func (PushSubscriptionModel) TableName() string {
	return "push_subscriptions"
}
