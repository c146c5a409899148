package valueobjects

import "fmt"

type RepairStatus string

const (
	StatusPending    RepairStatus = "pending"
	StatusInProgress RepairStatus = "in_progress"
	StatusCompleted  RepairStatus = "completed"
	StatusDelivered  RepairStatus = "delivered"
	StatusRejected   RepairStatus = "rejected"
	StatusReturned   RepairStatus = "returned"
)

var validRepairStatuses = map[RepairStatus]bool{
	StatusPending:    true,
	StatusInProgress: true,
	StatusCompleted:  true,
	StatusDelivered:  true,
	StatusRejected:   true,
	StatusReturned:   true,
}

// repairStatusTransitions is the forward transition graph. Elevated callers
// may bypass it; see Repair.ApplyTransition.
var repairStatusTransitions = map[RepairStatus][]RepairStatus{
	StatusPending: {
		StatusInProgress,
		StatusCompleted,
		StatusDelivered,
		StatusRejected,
	},
	StatusInProgress: {
		StatusPending,
		StatusCompleted,
		StatusDelivered,
		StatusRejected,
	},
	StatusCompleted: {
		StatusInProgress,
		StatusDelivered,
		StatusRejected,
	},
	StatusDelivered: {
		StatusReturned,
	},
	StatusRejected: {},
	StatusReturned: {
		StatusInProgress,
		StatusCompleted,
		StatusDelivered,
	},
}

func (rs RepairStatus) String() string {
	return string(rs)
}

func (rs RepairStatus) IsValid() bool {
	return validRepairStatuses[rs]
}

func (rs RepairStatus) CanTransitionTo(newStatus RepairStatus) bool {
	allowed, ok := repairStatusTransitions[rs]
	if !ok {
		return false
	}

	for _, s := range allowed {
		if s == newStatus {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the status ends forward progress. Terminal
// repairs remain editable by elevated permission only.
func (rs RepairStatus) IsTerminal() bool {
	return rs == StatusDelivered || rs == StatusRejected
}

func (rs RepairStatus) IsPending() bool {
	return rs == StatusPending
}

func (rs RepairStatus) IsInProgress() bool {
	return rs == StatusInProgress
}

func (rs RepairStatus) IsCompleted() bool {
	return rs == StatusCompleted
}

func (rs RepairStatus) IsDelivered() bool {
	return rs == StatusDelivered
}

func (rs RepairStatus) IsRejected() bool {
	return rs == StatusRejected
}

func (rs RepairStatus) IsReturned() bool {
	return rs == StatusReturned
}

func NewRepairStatus(s string) (RepairStatus, error) {
	rs := RepairStatus(s)
	if !rs.IsValid() {
		return "", fmt.Errorf("invalid repair status: %s", s)
	}
	return rs, nil
}
