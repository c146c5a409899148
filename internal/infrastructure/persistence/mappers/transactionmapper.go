package mappers

import (
	"fmt"

	"fixtrack/internal/domain/ledger"
	"fixtrack/internal/infrastructure/persistence/models"
)

// TransactionMapper handles the conversion between ledger transactions and persistence models.
type TransactionMapper interface {
	ToModel(t *ledger.Transaction) *models.TransactionModel
	ToDomain(model *models.TransactionModel) (*ledger.Transaction, error)
}

// TransactionMapperImpl is the concrete implementation of TransactionMapper.
type TransactionMapperImpl struct{}

// NewTransactionMapper creates a new TransactionMapper.
func NewTransactionMapper() TransactionMapper {
	return &TransactionMapperImpl{}
}

func (m *TransactionMapperImpl) ToModel(t *ledger.Transaction) *models.TransactionModel {
	return &models.TransactionModel{
		ID:          t.ID(),
		Direction:   string(t.Direction()),
		Amount:      t.Amount(),
		Description: t.Description(),
		OccurredAt:  t.OccurredAt().UnixMilli(),
		CreatedBy:   t.CreatedBy(),
		CreatedAt:   t.CreatedAt().UnixMilli(),
		UpdatedAt:   t.UpdatedAt().UnixMilli(),
	}
}

func (m *TransactionMapperImpl) ToDomain(model *models.TransactionModel) (*ledger.Transaction, error) {
	direction := ledger.Direction(model.Direction)
	if !direction.IsValid() {
		return nil, fmt.Errorf("invalid transaction direction (id=%d): %s", model.ID, model.Direction)
	}

	return ledger.ReconstructTransaction(
		model.ID,
		direction,
		model.Amount,
		model.Description,
		millisToTime(model.OccurredAt),
		model.CreatedBy,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	), nil
}
