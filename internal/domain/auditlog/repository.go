package auditlog

import "context"

// LogRepository persists audit entries. The log is append-only: entries
// survive even after the repair they describe is deleted, so the final
// "delete" record remains queryable.
type LogRepository interface {
	Create(ctx context.Context, entry *Entry) error
	ListByRepairID(ctx context.Context, repairID uint) ([]*Entry, error)
}
