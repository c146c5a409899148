package repair

import (
	"context"
	"time"

	vo "fixtrack/internal/domain/repair/valueobjects"
)

type RepairRepository interface {
	Create(ctx context.Context, r *Repair) error
	GetByID(ctx context.Context, id uint) (*Repair, error)
	GetByRepairID(ctx context.Context, repairID int) (*Repair, error)
	Update(ctx context.Context, r *Repair) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter Filter) ([]*Repair, int64, error)
	ListByTechnician(ctx context.Context, technicianID uint) ([]*Repair, error)
	ListDeliveredBetween(ctx context.Context, start, end *time.Time) ([]*Repair, error)
	ListWithParts(ctx context.Context) ([]*Repair, error)
}

// NumberAllocator hands out sequential repair numbers. Implementations must
// be atomic under concurrent creation: increment-and-read, never
// read-then-write.
type NumberAllocator interface {
	NextRepairID(ctx context.Context) (int, error)
}

// Filter narrows repair listings. Query matches customer name, phone,
// device type or issue. The date range matches either creation or delivery
// date. TechnicianID restricts to one technician's assignments.
type Filter struct {
	Query        string
	Status       *vo.RepairStatus
	TechnicianID *uint
	StartDate    *time.Time
	EndDate      *time.Time
	Limit        int
	Offset       int
}
