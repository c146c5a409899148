package ledger

import (
	"context"
	"time"
)

type TransactionRepository interface {
	Create(ctx context.Context, t *Transaction) error
	GetByID(ctx context.Context, id uint) (*Transaction, error)
	Update(ctx context.Context, t *Transaction) error
	Delete(ctx context.Context, id uint) error
	ListBetween(ctx context.Context, start, end *time.Time) ([]*Transaction, error)
}
