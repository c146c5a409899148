package notification

import (
	"fmt"
	"time"
)

type Kind string

const (
	KindStatusChange Kind = "status_change"
	KindAssignment   Kind = "assignment"
	KindGeneral      Kind = "general"
)

func (k Kind) IsValid() bool {
	switch k {
	case KindStatusChange, KindAssignment, KindGeneral:
		return true
	}
	return false
}

// Notification is one in-app message addressed to a single user. A fanout
// to several recipients produces one Notification per recipient.
type Notification struct {
	id        uint
	userID    uint
	kind      Kind
	message   string
	repairID  *uint
	repairNum *int
	read      bool
	createdAt time.Time
}

func NewNotification(userID uint, kind Kind, message string, repairID *uint, repairNum *int) (*Notification, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if !kind.IsValid() {
		return nil, fmt.Errorf("invalid notification kind: %s", kind)
	}
	if message == "" {
		return nil, fmt.Errorf("message is required")
	}

	return &Notification{
		userID:    userID,
		kind:      kind,
		message:   message,
		repairID:  repairID,
		repairNum: repairNum,
		createdAt: time.Now().UTC(),
	}, nil
}

func ReconstructNotification(
	id uint,
	userID uint,
	kind Kind,
	message string,
	repairID *uint,
	repairNum *int,
	read bool,
	createdAt time.Time,
) *Notification {
	return &Notification{
		id:        id,
		userID:    userID,
		kind:      kind,
		message:   message,
		repairID:  repairID,
		repairNum: repairNum,
		read:      read,
		createdAt: createdAt,
	}
}

func (n *Notification) ID() uint             { return n.id }
func (n *Notification) UserID() uint         { return n.userID }
func (n *Notification) Kind() Kind           { return n.kind }
func (n *Notification) Message() string      { return n.message }
func (n *Notification) RepairID() *uint      { return n.repairID }
func (n *Notification) RepairNum() *int      { return n.repairNum }
func (n *Notification) IsRead() bool         { return n.read }
func (n *Notification) CreatedAt() time.Time { return n.createdAt }

func (n *Notification) MarkRead() {
	n.read = true
}

func (n *Notification) SetID(id uint) error {
	if n.id != 0 {
		return fmt.Errorf("notification ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("notification ID cannot be zero")
	}
	n.id = id
	return nil
}
