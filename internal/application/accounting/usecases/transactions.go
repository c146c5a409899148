package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"fixtrack/internal/domain/ledger"
	"fixtrack/internal/domain/user"
	"fixtrack/internal/shared/biztime"
	"fixtrack/internal/shared/errors"
	"fixtrack/internal/shared/logger"
)

type TransactionDTO struct {
	ID          uint   `json:"id"`
	Direction   string `json:"direction"`
	Amount      string `json:"amount"`
	Description string `json:"description,omitempty"`
	OccurredAt  string `json:"occurredAt"`
	CreatedBy   uint   `json:"createdBy"`
}

func fromTransaction(t *ledger.Transaction) TransactionDTO {
	return TransactionDTO{
		ID:          t.ID(),
		Direction:   string(t.Direction()),
		Amount:      t.Amount().String(),
		Description: t.Description(),
		OccurredAt:  t.OccurredAt().Format("2006-01-02T15:04:05Z07:00"),
		CreatedBy:   t.CreatedBy(),
	}
}

// TransactionsUseCase covers the manual ledger: create, update, delete
// and list. Every operation requires accounts access.
type TransactionsUseCase struct {
	txRepo   ledger.TransactionRepository
	userRepo user.UserRepository
	logger   logger.Interface
}

func NewTransactionsUseCase(
	txRepo ledger.TransactionRepository,
	userRepo user.UserRepository,
	logger logger.Interface,
) *TransactionsUseCase {
	return &TransactionsUseCase{
		txRepo:   txRepo,
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *TransactionsUseCase) authorize(ctx context.Context, actorID uint) error {
	actor, err := uc.userRepo.GetByID(ctx, actorID)
	if err != nil {
		return errors.NewUnauthorizedError("unknown user")
	}
	if !actor.IsAdminCapable() && !actor.HasCapability(user.CapAccessAccounts) {
		return errors.NewForbiddenError("you do not have access to accounts")
	}
	return nil
}

type CreateTransactionCommand struct {
	ActorID     uint
	Direction   string
	Amount      decimal.Decimal
	Description string
	OccurredAt  string
}

func (uc *TransactionsUseCase) Create(ctx context.Context, cmd CreateTransactionCommand) (*TransactionDTO, error) {
	if err := uc.authorize(ctx, cmd.ActorID); err != nil {
		return nil, err
	}

	occurredAt, err := parseOccurredAt(cmd.OccurredAt)
	if err != nil {
		return nil, err
	}

	t, err := ledger.NewTransaction(ledger.Direction(cmd.Direction), cmd.Amount, cmd.Description, occurredAt, cmd.ActorID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.txRepo.Create(ctx, t); err != nil {
		uc.logger.Errorw("failed to create transaction", "error", err)
		return nil, errors.NewInternalError("failed to create transaction")
	}

	uc.logger.Infow("transaction created", "transaction_id", t.ID(), "direction", t.Direction(), "amount", t.Amount())
	dto := fromTransaction(t)
	return &dto, nil
}

type UpdateTransactionCommand struct {
	ActorID       uint
	TransactionID uint
	Direction     string
	Amount        decimal.Decimal
	Description   string
	OccurredAt    string
}

func (uc *TransactionsUseCase) Update(ctx context.Context, cmd UpdateTransactionCommand) (*TransactionDTO, error) {
	if err := uc.authorize(ctx, cmd.ActorID); err != nil {
		return nil, err
	}

	t, err := uc.txRepo.GetByID(ctx, cmd.TransactionID)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("transaction %d not found", cmd.TransactionID))
	}

	occurredAt, err := parseOccurredAt(cmd.OccurredAt)
	if err != nil {
		return nil, err
	}

	if err := t.Update(ledger.Direction(cmd.Direction), cmd.Amount, cmd.Description, occurredAt); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.txRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update transaction", "transaction_id", cmd.TransactionID, "error", err)
		return nil, errors.NewInternalError("failed to update transaction")
	}

	dto := fromTransaction(t)
	return &dto, nil
}

func (uc *TransactionsUseCase) Delete(ctx context.Context, actorID, transactionID uint) error {
	if err := uc.authorize(ctx, actorID); err != nil {
		return err
	}
	if _, err := uc.txRepo.GetByID(ctx, transactionID); err != nil {
		return errors.NewNotFoundError(fmt.Sprintf("transaction %d not found", transactionID))
	}
	if err := uc.txRepo.Delete(ctx, transactionID); err != nil {
		uc.logger.Errorw("failed to delete transaction", "transaction_id", transactionID, "error", err)
		return errors.NewInternalError("failed to delete transaction")
	}
	return nil
}

type ListTransactionsQuery struct {
	ActorID   uint
	StartDate string
	EndDate   string
}

func (uc *TransactionsUseCase) List(ctx context.Context, query ListTransactionsQuery) ([]TransactionDTO, error) {
	if err := uc.authorize(ctx, query.ActorID); err != nil {
		return nil, err
	}

	start, end, err := biztime.DateRangeUTC(query.StartDate, query.EndDate)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	txs, err := uc.txRepo.ListBetween(ctx, start, end)
	if err != nil {
		uc.logger.Errorw("failed to list transactions", "error", err)
		return nil, errors.NewInternalError("failed to list transactions")
	}

	out := make([]TransactionDTO, 0, len(txs))
	for _, t := range txs {
		out = append(out, fromTransaction(t))
	}
	return out, nil
}

// parseOccurredAt accepts an optional yyyy-mm-dd date; empty means "now".
func parseOccurredAt(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := biztime.ParseDate(raw)
	if err != nil {
		return time.Time{}, errors.NewValidationError(err.Error())
	}
	return t, nil
}
