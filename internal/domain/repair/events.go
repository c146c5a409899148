package repair

import (
	"fmt"
	"time"

	"fixtrack/internal/domain/shared/events"
)

const (
	EventRepairCreated       = "repair.created"
	EventRepairUpdated       = "repair.updated"
	EventRepairStatusChanged = "repair.status_changed"
	EventRepairDeleted       = "repair.deleted"
)

type RepairCreatedEvent struct {
	events.BaseEvent
	RepairID     uint
	RepairNumber int
	TechnicianID *uint
	CreatedBy    uint
}

func NewRepairCreatedEvent(r *Repair) RepairCreatedEvent {
	return RepairCreatedEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: fmt.Sprintf("%d", r.ID()),
			EventType:   EventRepairCreated,
			OccurredAt:  time.Now().UTC(),
		},
		RepairID:     r.ID(),
		RepairNumber: r.RepairID(),
		TechnicianID: r.TechnicianID(),
		CreatedBy:    r.CreatedBy(),
	}
}

type RepairUpdatedEvent struct {
	events.BaseEvent
	RepairID     uint
	RepairNumber int
	TechnicianID *uint
	UpdatedBy    uint
	StatusChange bool
	OldStatus    string
	NewStatus    string
}

func NewRepairUpdatedEvent(r *Repair, updatedBy uint, oldStatus, newStatus string) RepairUpdatedEvent {
	return RepairUpdatedEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: fmt.Sprintf("%d", r.ID()),
			EventType:   EventRepairUpdated,
			OccurredAt:  time.Now().UTC(),
		},
		RepairID:     r.ID(),
		RepairNumber: r.RepairID(),
		TechnicianID: r.TechnicianID(),
		UpdatedBy:    updatedBy,
		StatusChange: oldStatus != newStatus,
		OldStatus:    oldStatus,
		NewStatus:    newStatus,
	}
}

type RepairDeletedEvent struct {
	events.BaseEvent
	RepairID     uint
	RepairNumber int
	DeletedBy    uint
}

func NewRepairDeletedEvent(r *Repair, deletedBy uint) RepairDeletedEvent {
	return RepairDeletedEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: fmt.Sprintf("%d", r.ID()),
			EventType:   EventRepairDeleted,
			OccurredAt:  time.Now().UTC(),
		},
		RepairID:     r.ID(),
		RepairNumber: r.RepairID(),
		DeletedBy:    deletedBy,
	}
}
