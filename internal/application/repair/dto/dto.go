// Package dto holds the wire representations of repairs returned by the
// application layer.
package dto

import (
	"time"

	"fixtrack/internal/domain/auditlog"
	"fixtrack/internal/domain/repair"
)

type PartDTO struct {
	Name         string  `json:"name"`
	Supplier     string  `json:"supplier,omitempty"`
	UnitCost     string  `json:"unitCost"`
	Qty          int     `json:"qty"`
	PurchaseDate *string `json:"purchaseDate,omitempty"`
}

type RepairDTO struct {
	ID                     uint      `json:"id"`
	RepairNumber           int       `json:"repairId"`
	CustomerName           string    `json:"customerName"`
	DeviceType             string    `json:"deviceType"`
	Issue                  string    `json:"issue,omitempty"`
	Color                  string    `json:"color,omitempty"`
	Phone                  string    `json:"phone,omitempty"`
	Price                  string    `json:"price"`
	FinalPrice             *string   `json:"finalPrice,omitempty"`
	Parts                  []PartDTO `json:"parts"`
	Status                 string    `json:"status"`
	TechnicianID           *uint     `json:"technicianId,omitempty"`
	TechnicianName         *string   `json:"technicianName,omitempty"`
	RecipientID            *uint     `json:"recipientId,omitempty"`
	RecipientName          *string   `json:"recipientName,omitempty"`
	Notes                  string    `json:"notes,omitempty"`
	StartTime              *string   `json:"startTime,omitempty"`
	EndTime                *string   `json:"endTime,omitempty"`
	DeliveryDate           *string   `json:"deliveryDate,omitempty"`
	Returned               bool      `json:"returned"`
	ReturnDate             *string   `json:"returnDate,omitempty"`
	RejectedDeviceLocation *string   `json:"rejectedDeviceLocation,omitempty"`
	CreatedBy              uint      `json:"createdBy"`
	CreatedByName          string    `json:"createdByName,omitempty"`
	CreatedAt              string    `json:"createdAt"`
	UpdatedAt              string    `json:"updatedAt"`
}

type FieldChangeDTO struct {
	Field string `json:"field"`
	From  string `json:"from"`
	To    string `json:"to"`
}

type LogEntryDTO struct {
	ID        uint             `json:"id"`
	RepairID  uint             `json:"repairId"`
	Action    string           `json:"action"`
	ActorID   uint             `json:"actorId"`
	Detail    string           `json:"detail,omitempty"`
	Changes   []FieldChangeDTO `json:"changes"`
	CreatedAt string           `json:"createdAt"`
}

func FromRepair(r *repair.Repair) RepairDTO {
	d := RepairDTO{
		ID:           r.ID(),
		RepairNumber: r.RepairID(),
		CustomerName: r.CustomerName(),
		DeviceType:   r.DeviceType(),
		Issue:        r.Issue(),
		Color:        r.Color(),
		Phone:        r.Phone(),
		Price:        r.Price().String(),
		Parts:        fromParts(r.Parts()),
		Status:       r.Status().String(),
		TechnicianID: r.TechnicianID(),
		RecipientID:  r.RecipientID(),
		Notes:        r.Notes(),
		Returned:     r.Returned(),
		CreatedBy:    r.CreatedBy(),
		CreatedAt:    formatTime(r.CreatedAt()),
		UpdatedAt:    formatTime(r.UpdatedAt()),
	}

	if fp := r.FinalPrice(); fp != nil {
		s := fp.String()
		d.FinalPrice = &s
	}
	d.StartTime = formatTimePtr(r.StartTime())
	d.EndTime = formatTimePtr(r.EndTime())
	d.DeliveryDate = formatTimePtr(r.DeliveryDate())
	d.ReturnDate = formatTimePtr(r.ReturnDate())
	if loc := r.RejectedLocation(); loc != nil {
		s := loc.String()
		d.RejectedDeviceLocation = &s
	}

	return d
}

// ApplyUserNames fills the display-name fields from a userID to name map.
// IDs missing from the map leave the bare ID in place.
func (d *RepairDTO) ApplyUserNames(names map[uint]string) {
	if d.TechnicianID != nil {
		if n, ok := names[*d.TechnicianID]; ok {
			d.TechnicianName = &n
		}
	}
	if d.RecipientID != nil {
		if n, ok := names[*d.RecipientID]; ok {
			d.RecipientName = &n
		}
	}
	d.CreatedByName = names[d.CreatedBy]
}

func FromRepairs(repairs []*repair.Repair) []RepairDTO {
	out := make([]RepairDTO, 0, len(repairs))
	for _, r := range repairs {
		out = append(out, FromRepair(r))
	}
	return out
}

func FromLogEntry(e *auditlog.Entry) LogEntryDTO {
	changes := make([]FieldChangeDTO, 0, len(e.Changes()))
	for _, c := range e.Changes() {
		changes = append(changes, FieldChangeDTO{Field: c.Field, From: c.From, To: c.To})
	}
	return LogEntryDTO{
		ID:        e.ID(),
		RepairID:  e.RepairID(),
		Action:    string(e.Action()),
		ActorID:   e.ActorID(),
		Detail:    e.Detail(),
		Changes:   changes,
		CreatedAt: formatTime(e.CreatedAt()),
	}
}

func FromLogEntries(entries []*auditlog.Entry) []LogEntryDTO {
	out := make([]LogEntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, FromLogEntry(e))
	}
	return out
}

func fromParts(parts []repair.PartEntry) []PartDTO {
	out := make([]PartDTO, 0, len(parts))
	for _, p := range parts {
		d := PartDTO{
			Name:     p.Name,
			Supplier: p.Supplier,
			UnitCost: p.UnitCost.String(),
			Qty:      p.Qty,
		}
		d.PurchaseDate = formatTimePtr(p.PurchaseDate)
		out = append(out, d)
	}
	return out
}

func formatTime(t time.Time) string {
	return t.Format("2006-01-02T15:04:05Z07:00")
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatTime(*t)
	return &s
}
