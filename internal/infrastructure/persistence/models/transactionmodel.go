package models

import "github.com/shopspring/decimal"

type TransactionModel struct {
	ID          uint            `gorm:"primaryKey"`
	Direction   string          `gorm:"size:10;not null;index"`
	Amount      decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Description string          `gorm:"size:500;not null"`
	OccurredAt  int64           `gorm:"not null;index"`
	CreatedBy   uint            `gorm:"not null"`
	CreatedAt   int64           `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt   int64           `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (TransactionModel) TableName() string {
	return "ledger_transactions"
}
