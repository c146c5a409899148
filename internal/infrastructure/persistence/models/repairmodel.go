package models

import "github.com/shopspring/decimal"

type RepairModel struct {
	ID               uint             `gorm:"primaryKey"`
	RepairID         int              `gorm:"uniqueIndex;not null"`
	CustomerName     string           `gorm:"size:100;not null;index"`
	DeviceType       string           `gorm:"size:100;not null"`
	Issue            string           `gorm:"type:text;not null"`
	Color            string           `gorm:"size:50"`
	Phone            string           `gorm:"size:30;index"`
	Price            decimal.Decimal  `gorm:"type:decimal(10,2);not null"`
	FinalPrice       *decimal.Decimal `gorm:"type:decimal(10,2)"`
	Parts            string           `gorm:"type:json"`
	Status           string           `gorm:"size:20;not null;index"`
	TechnicianID     *uint            `gorm:"index"`
	RecipientID      *uint            `gorm:"index"`
	Notes            string           `gorm:"type:text"`
	StartTime        *int64
	EndTime          *int64
	DeliveryDate     *int64 `gorm:"index"`
	Returned         bool   `gorm:"not null;default:false"`
	ReturnDate       *int64
	RejectedLocation *string `gorm:"size:20"`
	CreatedBy        uint    `gorm:"not null"`
	UpdatedBy        *uint
	CreatedAt        int64 `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt        int64 `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (RepairModel) TableName() string {
	return "repairs"
}

// PartModel is the JSON shape of one spare part stored in the repair's
// parts column.
type PartModel struct {
	Name         string          `json:"name"`
	Supplier     string          `json:"supplier,omitempty"`
	UnitCost     decimal.Decimal `json:"unitCost"`
	Qty          int             `json:"qty"`
	PurchaseDate *int64          `json:"purchaseDate,omitempty"`
}
