package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"fixtrack/internal/domain/auditlog"
	"fixtrack/internal/infrastructure/persistence/mappers"
	"fixtrack/internal/infrastructure/persistence/models"
	db "fixtrack/internal/shared/db"
)

// AuditLogRepository is append-only. There is no delete path: entries
// stay queryable after the repair they describe is gone.
type AuditLogRepository struct {
	db     *gorm.DB
	mapper mappers.AuditLogMapper
}

func NewAuditLogRepository(db *gorm.DB) *AuditLogRepository {
	return &AuditLogRepository{
		db:     db,
		mapper: mappers.NewAuditLogMapper(),
	}
}

func (r *AuditLogRepository) Create(ctx context.Context, entry *auditlog.Entry) error {
	model := r.mapper.ToModel(entry)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create audit entry: %w", err)
	}

	return entry.SetID(model.ID)
}

func (r *AuditLogRepository) ListByRepairID(ctx context.Context, repairID uint) ([]*auditlog.Entry, error) {
	var modelList []models.AuditLogModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("repair_id = ?", repairID).
		Order("created_at ASC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}

	entries := make([]*auditlog.Entry, 0, len(modelList))
	for i := range modelList {
		entry, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
