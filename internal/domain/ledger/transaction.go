// Package ledger holds manual cash movements recorded outside the repair
// flow, such as rent paid out or a cash injection. They feed into the
// accounts summary alongside repair revenue.
package ledger

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type Direction string

const (
	DirectionIn  Direction = "in"
	DirectionOut Direction = "out"
)

func (d Direction) IsValid() bool {
	return d == DirectionIn || d == DirectionOut
}

type Transaction struct {
	id          uint
	direction   Direction
	amount      decimal.Decimal
	description string
	occurredAt  time.Time
	createdBy   uint
	createdAt   time.Time
	updatedAt   time.Time
}

func NewTransaction(direction Direction, amount decimal.Decimal, description string, occurredAt time.Time, createdBy uint) (*Transaction, error) {
	if !direction.IsValid() {
		return nil, fmt.Errorf("invalid transaction direction: %s", direction)
	}
	if amount.IsNegative() {
		return nil, fmt.Errorf("transaction amount cannot be negative")
	}
	if createdBy == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}
	if occurredAt.IsZero() {
		occurredAt = time.Now().UTC()
	}

	now := time.Now().UTC()
	return &Transaction{
		direction:   direction,
		amount:      amount,
		description: description,
		occurredAt:  occurredAt,
		createdBy:   createdBy,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructTransaction(
	id uint,
	direction Direction,
	amount decimal.Decimal,
	description string,
	occurredAt time.Time,
	createdBy uint,
	createdAt, updatedAt time.Time,
) *Transaction {
	return &Transaction{
		id:          id,
		direction:   direction,
		amount:      amount,
		description: description,
		occurredAt:  occurredAt,
		createdBy:   createdBy,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (t *Transaction) ID() uint                { return t.id }
func (t *Transaction) Direction() Direction    { return t.direction }
func (t *Transaction) Amount() decimal.Decimal { return t.amount }
func (t *Transaction) Description() string     { return t.description }
func (t *Transaction) OccurredAt() time.Time   { return t.occurredAt }
func (t *Transaction) CreatedBy() uint         { return t.createdBy }
func (t *Transaction) CreatedAt() time.Time    { return t.createdAt }
func (t *Transaction) UpdatedAt() time.Time    { return t.updatedAt }

func (t *Transaction) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("transaction ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("transaction ID cannot be zero")
	}
	t.id = id
	return nil
}

func (t *Transaction) Update(direction Direction, amount decimal.Decimal, description string, occurredAt time.Time) error {
	if !direction.IsValid() {
		return fmt.Errorf("invalid transaction direction: %s", direction)
	}
	if amount.IsNegative() {
		return fmt.Errorf("transaction amount cannot be negative")
	}
	t.direction = direction
	t.amount = amount
	t.description = description
	if !occurredAt.IsZero() {
		t.occurredAt = occurredAt
	}
	t.updatedAt = time.Now().UTC()
	return nil
}
