package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TransactionStore defines persistence operations for transactions.
type TransactionStore interface {
	Create(ctx context.Context, transaction Transaction) (Transaction, error)
	GetByID(ctx context.Context, id uuid.UUID) (Transaction, error)
	GetByOwnerID(ctx context.Context, ownerID uuid.UUID, filter TransactionFilter) ([]Transaction, error)
	Update(ctx context.Context, transaction Transaction) (Transaction, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// TransactionKind enumerates transaction kinds.
type TransactionKind string

const (
	// KindIncome is money entering the account.
	KindIncome TransactionKind = "income"
	// KindExpense is money leaving the account.
	KindExpense TransactionKind = "expense"
)

// Valid reports whether the kind is one of the known values.
func (k TransactionKind) Valid() bool {
	return k == KindIncome || k == KindExpense
}

// DefaultPaymentMethod is assumed when a transaction carries no payment method.
const DefaultPaymentMethod = "cash"

// Transaction represents a financial transaction owned by a user.
// OwnerID is set at creation and never changes afterwards.
type Transaction struct {
	ID            uuid.UUID
	OwnerID       uuid.UUID
	Kind          TransactionKind
	Amount        float64
	Category      string
	Description   string
	Date          time.Time
	PaymentMethod string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TransactionFilter narrows owner-scoped transaction listings.
// Zero values mean "no constraint".
type TransactionFilter struct {
	Kind     TransactionKind
	Category string
	From     time.Time
	To       time.Time
}

// CreateTransactionParams contains parameters to create a transaction.
type CreateTransactionParams struct {
	OwnerID       uuid.UUID
	Kind          TransactionKind
	Amount        float64
	Category      string
	Description   string
	Date          time.Time
	PaymentMethod string
}

// UpdateTransactionParams contains a partial transaction update.
// Owner is taken from the caller context, never from the patch.
type UpdateTransactionParams struct {
	ID            uuid.UUID
	Kind          *TransactionKind
	Amount        *float64
	Category      *string
	Description   *string
	Date          *time.Time
	PaymentMethod *string
}
