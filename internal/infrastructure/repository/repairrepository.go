package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"fixtrack/internal/domain/repair"
	"fixtrack/internal/infrastructure/persistence/mappers"
	"fixtrack/internal/infrastructure/persistence/models"
	db "fixtrack/internal/shared/db"
)

type RepairRepository struct {
	db     *gorm.DB
	mapper mappers.RepairMapper
}

func NewRepairRepository(db *gorm.DB) *RepairRepository {
	return &RepairRepository{
		db:     db,
		mapper: mappers.NewRepairMapper(),
	}
}

func (r *RepairRepository) Create(ctx context.Context, rep *repair.Repair) error {
	model := r.mapper.ToModel(rep)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create repair: %w", err)
	}

	return rep.SetID(model.ID)
}

func (r *RepairRepository) GetByID(ctx context.Context, id uint) (*repair.Repair, error) {
	var model models.RepairModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("repair not found")
		}
		return nil, fmt.Errorf("failed to find repair: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *RepairRepository) GetByRepairID(ctx context.Context, repairID int) (*repair.Repair, error) {
	var model models.RepairModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("repair_id = ?", repairID).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("repair not found")
		}
		return nil, fmt.Errorf("failed to find repair: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *RepairRepository) Update(ctx context.Context, rep *repair.Repair) error {
	model := r.mapper.ToModel(rep)
	tx := db.GetTxFromContext(ctx, r.db)

	// Select("*") forces nil-able columns (final_price, technician_id,
	// return_date, ...) back to NULL when the domain cleared them.
	result := tx.
		Model(&models.RepairModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update repair: %w", result.Error)
	}

	return nil
}

func (r *RepairRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.RepairModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete repair: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("repair not found")
	}

	return nil
}

func (r *RepairRepository) List(ctx context.Context, filter repair.Filter) ([]*repair.Repair, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db).Model(&models.RepairModel{})

	if filter.Query != "" {
		like := "%" + filter.Query + "%"
		tx = tx.Where(
			"customer_name LIKE ? OR phone LIKE ? OR device_type LIKE ? OR issue LIKE ?",
			like, like, like, like,
		)
	}
	if filter.Status != nil {
		tx = tx.Where("status = ?", filter.Status.String())
	}
	if filter.TechnicianID != nil {
		tx = tx.Where("technician_id = ?", *filter.TechnicianID)
	}
	if clause, args := dateRangeClause(filter.StartDate, filter.EndDate); clause != "" {
		tx = tx.Where(clause, args...)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count repairs: %w", err)
	}

	var modelList []models.RepairModel
	query := tx.Order("created_at DESC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}
	if err := query.Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list repairs: %w", err)
	}

	repairs, err := r.toDomainList(modelList)
	if err != nil {
		return nil, 0, err
	}

	return repairs, total, nil
}

// dateRangeClause matches repairs whose creation date falls in the range,
// or whose delivery date does. Matching per column keeps a repair created
// before the range but delivered inside it visible, without cross-matching
// one bound against created_at and the other against delivery_date.
func dateRangeClause(start, end *time.Time) (string, []interface{}) {
	switch {
	case start != nil && end != nil:
		s, e := start.UnixMilli(), end.UnixMilli()
		return "(created_at >= ? AND created_at <= ?) OR (delivery_date >= ? AND delivery_date <= ?)",
			[]interface{}{s, e, s, e}
	case start != nil:
		s := start.UnixMilli()
		return "created_at >= ? OR delivery_date >= ?", []interface{}{s, s}
	case end != nil:
		e := end.UnixMilli()
		return "created_at <= ? OR delivery_date <= ?", []interface{}{e, e}
	}
	return "", nil
}

func (r *RepairRepository) ListByTechnician(ctx context.Context, technicianID uint) ([]*repair.Repair, error) {
	var modelList []models.RepairModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("technician_id = ?", technicianID).
		Order("created_at DESC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list repairs by technician: %w", err)
	}

	return r.toDomainList(modelList)
}

func (r *RepairRepository) ListDeliveredBetween(ctx context.Context, start, end *time.Time) ([]*repair.Repair, error) {
	tx := db.GetTxFromContext(ctx, r.db).
		Where("status = ? AND delivery_date IS NOT NULL", "delivered")

	if start != nil {
		tx = tx.Where("delivery_date >= ?", start.UnixMilli())
	}
	if end != nil {
		tx = tx.Where("delivery_date <= ?", end.UnixMilli())
	}

	var modelList []models.RepairModel
	if err := tx.Order("delivery_date DESC").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list delivered repairs: %w", err)
	}

	return r.toDomainList(modelList)
}

// ListWithParts returns every repair carrying at least one part, whatever
// its status. Part-level date filtering happens in the application layer
// because parts live in a JSON column.
func (r *RepairRepository) ListWithParts(ctx context.Context) ([]*repair.Repair, error) {
	var modelList []models.RepairModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("parts IS NOT NULL AND parts != '' AND parts != '[]'").
		Order("created_at DESC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list repairs with parts: %w", err)
	}

	return r.toDomainList(modelList)
}

func (r *RepairRepository) toDomainList(modelList []models.RepairModel) ([]*repair.Repair, error) {
	repairs := make([]*repair.Repair, 0, len(modelList))
	for i := range modelList {
		rep, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		repairs = append(repairs, rep)
	}
	return repairs, nil
}
