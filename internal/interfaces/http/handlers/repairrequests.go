package handlers

import (
	"fixtrack/internal/application/repair/usecases"
	"fixtrack/internal/domain/repair"
	"fixtrack/internal/shared/biztime"
	"fixtrack/internal/shared/utils"
)

// PartRequest accepts loosely-typed numeric input; clients send unit
// cost and quantity as numbers or strings interchangeably.
type PartRequest struct {
	Name         string      `json:"name"`
	Supplier     string      `json:"supplier"`
	UnitCost     interface{} `json:"unitCost"`
	Qty          interface{} `json:"qty"`
	PurchaseDate string      `json:"purchaseDate"`
}

func (r PartRequest) toEntry() repair.PartEntry {
	entry := repair.PartEntry{
		Name:     r.Name,
		Supplier: r.Supplier,
		UnitCost: utils.CoerceDecimal(r.UnitCost),
		Qty:      utils.CoerceQuantity(r.Qty),
	}
	if r.PurchaseDate != "" {
		if t, err := biztime.ParseDate(r.PurchaseDate); err == nil {
			entry.PurchaseDate = &t
		}
	}
	return entry
}

type CreateRepairRequest struct {
	CustomerName string      `json:"customerName" binding:"required"`
	DeviceType   string      `json:"deviceType" binding:"required"`
	Issue        string      `json:"issue" binding:"required"`
	Color        string      `json:"color"`
	Phone        string      `json:"phone"`
	Price        interface{} `json:"price"`
	TechnicianID *uint       `json:"technicianId"`
	RecipientID  *uint       `json:"recipientId"`
	Notes        string      `json:"notes"`
}

func (r CreateRepairRequest) ToCommand(actorID uint) usecases.CreateRepairCommand {
	return usecases.CreateRepairCommand{
		CustomerName: r.CustomerName,
		DeviceType:   r.DeviceType,
		Issue:        r.Issue,
		Color:        r.Color,
		Phone:        r.Phone,
		Price:        utils.CoerceDecimal(r.Price),
		TechnicianID: r.TechnicianID,
		RecipientID:  r.RecipientID,
		Notes:        r.Notes,
		CreatedBy:    actorID,
	}
}

type UpdateRepairRequest struct {
	Password string `json:"password"`

	Status           *string       `json:"status"`
	CustomerName     *string       `json:"customerName"`
	DeviceType       *string       `json:"deviceType"`
	Issue            *string       `json:"issue"`
	Color            *string       `json:"color"`
	Phone            *string       `json:"phone"`
	Price            interface{}   `json:"price"`
	FinalPrice       interface{}   `json:"finalPrice"`
	Parts            []PartRequest `json:"parts"`
	Notes            *string       `json:"notes"`
	TechnicianID     *uint         `json:"technicianId"`
	RecipientID      *uint         `json:"recipientId"`
	RejectedLocation *string       `json:"rejectedDeviceLocation"`
}

func (r UpdateRepairRequest) ToCommand(repairID, actorID uint) usecases.UpdateRepairCommand {
	cmd := usecases.UpdateRepairCommand{
		RepairID:         repairID,
		ActorID:          actorID,
		Password:         r.Password,
		Status:           r.Status,
		CustomerName:     r.CustomerName,
		DeviceType:       r.DeviceType,
		Issue:            r.Issue,
		Color:            r.Color,
		Phone:            r.Phone,
		Notes:            r.Notes,
		TechnicianID:     r.TechnicianID,
		RecipientID:      r.RecipientID,
		RejectedLocation: r.RejectedLocation,
	}

	if r.Price != nil {
		price := utils.CoerceDecimal(r.Price)
		cmd.Price = &price
	}
	if r.FinalPrice != nil {
		finalPrice := utils.CoerceDecimal(r.FinalPrice)
		cmd.FinalPrice = &finalPrice
	}
	if r.Parts != nil {
		parts := make([]repair.PartEntry, 0, len(r.Parts))
		for _, p := range r.Parts {
			parts = append(parts, p.toEntry())
		}
		cmd.Parts = parts
	}

	return cmd
}
