// Package auditlog holds the immutable change history of repairs. Entries
// are append-only: they are never edited or deleted once written.
package auditlog

import (
	"fmt"
	"time"
)

type Action string

const (
	ActionCreate       Action = "create"
	ActionUpdate       Action = "update"
	ActionStatusChange Action = "status_change"
	ActionDelete       Action = "delete"
)

func (a Action) IsValid() bool {
	switch a {
	case ActionCreate, ActionUpdate, ActionStatusChange, ActionDelete:
		return true
	}
	return false
}

// FieldChange records one field-level change inside an entry.
type FieldChange struct {
	Field string `json:"field"`
	From  string `json:"from"`
	To    string `json:"to"`
}

// Entry is one immutable audit record for a repair mutation.
type Entry struct {
	id        uint
	repairID  uint
	action    Action
	actorID   uint
	detail    string
	changes   []FieldChange
	createdAt time.Time
}

func NewEntry(repairID uint, action Action, actorID uint, detail string, changes []FieldChange) (*Entry, error) {
	if repairID == 0 {
		return nil, fmt.Errorf("repair ID is required")
	}
	if !action.IsValid() {
		return nil, fmt.Errorf("invalid audit action: %s", action)
	}
	if actorID == 0 {
		return nil, fmt.Errorf("actor ID is required")
	}
	if changes == nil {
		changes = []FieldChange{}
	}

	return &Entry{
		repairID:  repairID,
		action:    action,
		actorID:   actorID,
		detail:    detail,
		changes:   changes,
		createdAt: time.Now().UTC(),
	}, nil
}

func ReconstructEntry(
	id uint,
	repairID uint,
	action Action,
	actorID uint,
	detail string,
	changes []FieldChange,
	createdAt time.Time,
) (*Entry, error) {
	if id == 0 {
		return nil, fmt.Errorf("entry ID cannot be zero")
	}
	if !action.IsValid() {
		return nil, fmt.Errorf("invalid audit action: %s", action)
	}
	if changes == nil {
		changes = []FieldChange{}
	}

	return &Entry{
		id:        id,
		repairID:  repairID,
		action:    action,
		actorID:   actorID,
		detail:    detail,
		changes:   changes,
		createdAt: createdAt,
	}, nil
}

func (e *Entry) ID() uint             { return e.id }
func (e *Entry) RepairID() uint       { return e.repairID }
func (e *Entry) Action() Action       { return e.action }
func (e *Entry) ActorID() uint        { return e.actorID }
func (e *Entry) Detail() string       { return e.detail }
func (e *Entry) CreatedAt() time.Time { return e.createdAt }

func (e *Entry) Changes() []FieldChange {
	changesCopy := make([]FieldChange, len(e.changes))
	copy(changesCopy, e.changes)
	return changesCopy
}

func (e *Entry) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("entry ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("entry ID cannot be zero")
	}
	e.id = id
	return nil
}

// DiffSnapshots computes the ordered field changes between two snapshots.
// Field order follows the tracked list so diffs are stable across runs.
func DiffSnapshots(before, after map[string]string) []FieldChange {
	tracked := []string{
		"status",
		"technician",
		"finalPrice",
		"notes",
		"recipient",
		"parts",
		"deliveryDate",
		"returnDate",
		"rejectedDeviceLocation",
		"customerName",
		"phone",
		"deviceType",
		"color",
		"issue",
		"price",
	}

	var changes []FieldChange
	for _, field := range tracked {
		from, to := before[field], after[field]
		if from != to {
			changes = append(changes, FieldChange{Field: field, From: from, To: to})
		}
	}
	return changes
}
