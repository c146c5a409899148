package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"fixtrack/internal/domain/ledger"
	"fixtrack/internal/infrastructure/persistence/mappers"
	"fixtrack/internal/infrastructure/persistence/models"
	db "fixtrack/internal/shared/db"
)

type TransactionRepository struct {
	db     *gorm.DB
	mapper mappers.TransactionMapper
}

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{
		db:     db,
		mapper: mappers.NewTransactionMapper(),
	}
}

func (r *TransactionRepository) Create(ctx context.Context, t *ledger.Transaction) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}

	return t.SetID(model.ID)
}

func (r *TransactionRepository) GetByID(ctx context.Context, id uint) (*ledger.Transaction, error) {
	var model models.TransactionModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("transaction not found")
		}
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TransactionRepository) Update(ctx context.Context, t *ledger.Transaction) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.TransactionModel{}).
		Where("id = ?", model.ID).
		Select("direction", "amount", "description", "occurred_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update transaction: %w", result.Error)
	}
	return nil
}

func (r *TransactionRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.TransactionModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete transaction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("transaction not found")
	}
	return nil
}

func (r *TransactionRepository) ListBetween(ctx context.Context, start, end *time.Time) ([]*ledger.Transaction, error) {
	tx := db.GetTxFromContext(ctx, r.db).Model(&models.TransactionModel{})

	if start != nil {
		tx = tx.Where("occurred_at >= ?", start.UnixMilli())
	}
	if end != nil {
		tx = tx.Where("occurred_at <= ?", end.UnixMilli())
	}

	var modelList []models.TransactionModel
	if err := tx.Order("occurred_at DESC").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	txs := make([]*ledger.Transaction, 0, len(modelList))
	for i := range modelList {
		t, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		txs = append(txs, t)
	}
	return txs, nil
}
