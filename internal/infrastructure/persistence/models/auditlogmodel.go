package models

// AuditLogModel rows are append-only. RepairID intentionally carries no
// constraint so entries outlive the repair they describe.
type AuditLogModel struct {
	ID        uint   `gorm:"primaryKey"`
	RepairID  uint   `gorm:"not null;index"`
	Action    string `gorm:"size:20;not null"`
	ActorID   uint   `gorm:"not null;index"`
	Detail    string `gorm:"type:text"`
	Changes   string `gorm:"type:json"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (AuditLogModel) TableName() string {
	return "repair_logs"
}

// FieldChangeModel is the JSON shape of one field change in the changes
// column.
type FieldChangeModel struct {
	Field string `json:"field"`
	From  string `json:"from"`
	To    string `json:"to"`
}
