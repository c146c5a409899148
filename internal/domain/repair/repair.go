package repair

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	vo "fixtrack/internal/domain/repair/valueobjects"
)

// Repair is the aggregate tracking one device through the workshop, from
// intake to delivery (or rejection / post-delivery return).
type Repair struct {
	id               uint
	repairID         int
	customerName     string
	deviceType       string
	issue            string
	color            string
	phone            string
	price            decimal.Decimal
	finalPrice       *decimal.Decimal
	parts            []PartEntry
	status           vo.RepairStatus
	technicianID     *uint
	recipientID      *uint
	notes            string
	startTime        *time.Time
	endTime          *time.Time
	deliveryDate     *time.Time
	returned         bool
	returnDate       *time.Time
	rejectedLocation *vo.DeviceLocation
	createdBy        uint
	updatedBy        *uint
	createdAt        time.Time
	updatedAt        time.Time
}

func NewRepair(
	customerName string,
	deviceType string,
	issue string,
	color string,
	phone string,
	price decimal.Decimal,
	technicianID *uint,
	recipientID *uint,
	notes string,
	createdBy uint,
) (*Repair, error) {
	if len(customerName) == 0 {
		return nil, fmt.Errorf("customer name is required")
	}
	if len(deviceType) == 0 {
		return nil, fmt.Errorf("device type is required")
	}
	if createdBy == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}
	if price.IsNegative() {
		return nil, fmt.Errorf("price cannot be negative")
	}

	now := time.Now().UTC()

	return &Repair{
		customerName: customerName,
		deviceType:   deviceType,
		issue:        issue,
		color:        color,
		phone:        phone,
		price:        price,
		parts:        []PartEntry{},
		status:       vo.StatusPending,
		technicianID: technicianID,
		recipientID:  recipientID,
		notes:        notes,
		createdBy:    createdBy,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructRepair(
	id uint,
	repairID int,
	customerName string,
	deviceType string,
	issue string,
	color string,
	phone string,
	price decimal.Decimal,
	finalPrice *decimal.Decimal,
	parts []PartEntry,
	status vo.RepairStatus,
	technicianID *uint,
	recipientID *uint,
	notes string,
	startTime *time.Time,
	endTime *time.Time,
	deliveryDate *time.Time,
	returned bool,
	returnDate *time.Time,
	rejectedLocation *vo.DeviceLocation,
	createdBy uint,
	updatedBy *uint,
	createdAt, updatedAt time.Time,
) (*Repair, error) {
	if id == 0 {
		return nil, fmt.Errorf("repair ID cannot be zero")
	}
	if repairID == 0 {
		return nil, fmt.Errorf("repair number cannot be zero")
	}
	if len(customerName) == 0 {
		return nil, fmt.Errorf("customer name is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}
	if parts == nil {
		parts = []PartEntry{}
	}

	return &Repair{
		id:               id,
		repairID:         repairID,
		customerName:     customerName,
		deviceType:       deviceType,
		issue:            issue,
		color:            color,
		phone:            phone,
		price:            price,
		finalPrice:       finalPrice,
		parts:            parts,
		status:           status,
		technicianID:     technicianID,
		recipientID:      recipientID,
		notes:            notes,
		startTime:        startTime,
		endTime:          endTime,
		deliveryDate:     deliveryDate,
		returned:         returned,
		returnDate:       returnDate,
		rejectedLocation: rejectedLocation,
		createdBy:        createdBy,
		updatedBy:        updatedBy,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}, nil
}

func (r *Repair) ID() uint                             { return r.id }
func (r *Repair) RepairID() int                        { return r.repairID }
func (r *Repair) CustomerName() string                 { return r.customerName }
func (r *Repair) DeviceType() string                   { return r.deviceType }
func (r *Repair) Issue() string                        { return r.issue }
func (r *Repair) Color() string                        { return r.color }
func (r *Repair) Phone() string                        { return r.phone }
func (r *Repair) Price() decimal.Decimal               { return r.price }
func (r *Repair) FinalPrice() *decimal.Decimal         { return r.finalPrice }
func (r *Repair) Status() vo.RepairStatus              { return r.status }
func (r *Repair) TechnicianID() *uint                  { return r.technicianID }
func (r *Repair) RecipientID() *uint                   { return r.recipientID }
func (r *Repair) Notes() string                        { return r.notes }
func (r *Repair) StartTime() *time.Time                { return r.startTime }
func (r *Repair) EndTime() *time.Time                  { return r.endTime }
func (r *Repair) DeliveryDate() *time.Time             { return r.deliveryDate }
func (r *Repair) Returned() bool                       { return r.returned }
func (r *Repair) ReturnDate() *time.Time               { return r.returnDate }
func (r *Repair) RejectedLocation() *vo.DeviceLocation { return r.rejectedLocation }
func (r *Repair) CreatedBy() uint                      { return r.createdBy }
func (r *Repair) UpdatedBy() *uint                     { return r.updatedBy }
func (r *Repair) CreatedAt() time.Time                 { return r.createdAt }
func (r *Repair) UpdatedAt() time.Time                 { return r.updatedAt }

func (r *Repair) Parts() []PartEntry {
	partsCopy := make([]PartEntry, len(r.parts))
	copy(partsCopy, r.parts)
	return partsCopy
}

// EffectivePrice is the amount charged to the customer: the final price
// when set, the quoted price otherwise.
func (r *Repair) EffectivePrice() decimal.Decimal {
	if r.finalPrice != nil {
		return *r.finalPrice
	}
	return r.price
}

func (r *Repair) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("repair ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("repair ID cannot be zero")
	}
	r.id = id
	return nil
}

func (r *Repair) SetRepairID(repairID int) error {
	if r.repairID != 0 {
		return fmt.Errorf("repair number is already set")
	}
	if repairID <= 0 {
		return fmt.Errorf("repair number must be positive")
	}
	r.repairID = repairID
	return nil
}

// TransitionRequest carries everything a status change may supply.
// Elevated marks callers with full edit scope; they may bypass the forward
// transition graph and reject without a device location.
type TransitionRequest struct {
	Status           vo.RepairStatus
	FinalPrice       *decimal.Decimal
	Parts            []PartEntry
	RejectedLocation *vo.DeviceLocation
	Elevated         bool
}

// ApplyTransition validates and applies one status transition, stamping
// dependent timestamps. Entry actions are idempotent: re-entering
// in_progress or completed never resets an existing timestamp.
func (r *Repair) ApplyTransition(req TransitionRequest, actorID uint, now time.Time) error {
	if !req.Status.IsValid() {
		return fmt.Errorf("%w: %s", ErrUnknownStatus, req.Status)
	}

	if req.Status != r.status && !r.status.CanTransitionTo(req.Status) && !req.Elevated {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, r.status, req.Status)
	}

	switch req.Status {
	case vo.StatusInProgress:
		if r.startTime == nil {
			t := now
			r.startTime = &t
		}
	case vo.StatusCompleted:
		if r.endTime == nil {
			t := now
			r.endTime = &t
		}
	case vo.StatusDelivered:
		if err := r.applyDelivery(req, now); err != nil {
			return err
		}
	case vo.StatusRejected:
		if req.RejectedLocation != nil {
			loc := *req.RejectedLocation
			r.rejectedLocation = &loc
		} else if r.rejectedLocation == nil && !req.Elevated {
			return ErrMissingLocation
		}
	case vo.StatusReturned:
		t := now
		r.returned = true
		r.returnDate = &t
	}

	r.status = req.Status
	r.updatedBy = &actorID
	r.updatedAt = now

	return nil
}

// applyDelivery freezes the charged price and parts and stamps the
// delivery date. A fresh delivery clears any earlier return.
func (r *Repair) applyDelivery(req TransitionRequest, now time.Time) error {
	finalPrice := req.FinalPrice
	if finalPrice == nil {
		finalPrice = r.finalPrice
	}
	if finalPrice == nil && r.price.IsPositive() {
		p := r.price
		finalPrice = &p
	}
	if finalPrice == nil || !finalPrice.IsPositive() {
		return ErrMissingPrice
	}

	fp := *finalPrice
	r.finalPrice = &fp
	if req.Parts != nil {
		r.parts = req.Parts
	}

	t := now
	r.deliveryDate = &t
	r.returned = false
	r.returnDate = nil

	return nil
}

// EditRequest carries non-status field edits. Nil pointers mean "leave
// unchanged"; string pointers allow clearing a field with an empty value.
type EditRequest struct {
	CustomerName *string
	DeviceType   *string
	Issue        *string
	Color        *string
	Phone        *string
	Price        *decimal.Decimal
	FinalPrice   *decimal.Decimal
	Parts        []PartEntry
	Notes        *string
	TechnicianID *uint
	RecipientID  *uint
}

// ApplyEdit assigns non-status fields outside the state machine. Pricing
// captured at delivery is frozen: once delivered, final price and parts
// cannot be changed by a plain edit.
func (r *Repair) ApplyEdit(edit EditRequest, actorID uint, now time.Time) error {
	if r.status.IsDelivered() && (edit.FinalPrice != nil || edit.Parts != nil) {
		return ErrPricingFrozen
	}

	if edit.CustomerName != nil {
		if len(*edit.CustomerName) == 0 {
			return fmt.Errorf("customer name cannot be empty")
		}
		r.customerName = *edit.CustomerName
	}
	if edit.DeviceType != nil {
		if len(*edit.DeviceType) == 0 {
			return fmt.Errorf("device type cannot be empty")
		}
		r.deviceType = *edit.DeviceType
	}
	if edit.Issue != nil {
		r.issue = *edit.Issue
	}
	if edit.Color != nil {
		r.color = *edit.Color
	}
	if edit.Phone != nil {
		r.phone = *edit.Phone
	}
	if edit.Price != nil {
		if edit.Price.IsNegative() {
			return fmt.Errorf("price cannot be negative")
		}
		r.price = *edit.Price
	}
	if edit.FinalPrice != nil {
		fp := *edit.FinalPrice
		r.finalPrice = &fp
	}
	if edit.Parts != nil {
		r.parts = edit.Parts
	}
	if edit.Notes != nil {
		r.notes = *edit.Notes
	}
	if edit.TechnicianID != nil {
		id := *edit.TechnicianID
		r.technicianID = &id
	}
	if edit.RecipientID != nil {
		id := *edit.RecipientID
		r.recipientID = &id
	}

	r.updatedBy = &actorID
	r.updatedAt = now

	return nil
}

// Snapshot returns the tracked fields as display strings, used for
// audit-log diffing before and after a mutation.
func (r *Repair) Snapshot() map[string]string {
	snap := map[string]string{
		"status":       r.status.String(),
		"customerName": r.customerName,
		"deviceType":   r.deviceType,
		"issue":        r.issue,
		"color":        r.color,
		"phone":        r.phone,
		"price":        r.price.String(),
		"notes":        r.notes,
		"parts":        partsSummary(r.parts),
	}
	if r.finalPrice != nil {
		snap["finalPrice"] = r.finalPrice.String()
	}
	if r.technicianID != nil {
		snap["technician"] = fmt.Sprintf("%d", *r.technicianID)
	}
	if r.recipientID != nil {
		snap["recipient"] = fmt.Sprintf("%d", *r.recipientID)
	}
	if r.deliveryDate != nil {
		snap["deliveryDate"] = r.deliveryDate.Format(time.RFC3339)
	}
	if r.returnDate != nil {
		snap["returnDate"] = r.returnDate.Format(time.RFC3339)
	}
	if r.rejectedLocation != nil {
		snap["rejectedDeviceLocation"] = r.rejectedLocation.String()
	}
	return snap
}

func partsSummary(parts []PartEntry) string {
	if len(parts) == 0 {
		return ""
	}
	summary := ""
	for i, p := range parts {
		if i > 0 {
			summary += ", "
		}
		summary += fmt.Sprintf("%s x%d @%s", p.Name, p.Qty, p.UnitCost.String())
	}
	return summary
}

// CanBeViewedBy applies the read-visibility rule: broad viewers see all,
// others only repairs they are assigned to or received.
func (r *Repair) CanBeViewedBy(userID uint, broadViewer bool) bool {
	if broadViewer {
		return true
	}
	if r.technicianID != nil && *r.technicianID == userID {
		return true
	}
	if r.recipientID != nil && *r.recipientID == userID {
		return true
	}
	return false
}
