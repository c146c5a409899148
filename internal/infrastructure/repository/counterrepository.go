package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"fixtrack/internal/infrastructure/persistence/models"
)

const repairCounterName = "repair_number"

// repairNumberBase keeps customer-facing numbers out of the low range.
const repairNumberBase = 1000

// CounterRepository allocates sequential repair numbers. The increment
// runs as a single UPDATE inside a transaction so concurrent creates
// never observe the same value.
type CounterRepository struct {
	db *gorm.DB
}

func NewCounterRepository(db *gorm.DB) *CounterRepository {
	return &CounterRepository{db: db}
}

func (r *CounterRepository) NextRepairID(ctx context.Context) (int, error) {
	var seq int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.
			Model(&models.CounterModel{}).
			Where("name = ?", repairCounterName).
			Update("seq", gorm.Expr("seq + 1"))
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			counter := models.CounterModel{Name: repairCounterName, Seq: 1}
			if err := tx.Create(&counter).Error; err != nil {
				return err
			}
			seq = counter.Seq
			return nil
		}

		var counter models.CounterModel
		if err := tx.Where("name = ?", repairCounterName).First(&counter).Error; err != nil {
			return err
		}
		seq = counter.Seq
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to allocate repair number: %w", err)
	}

	return repairNumberBase + int(seq), nil
}
