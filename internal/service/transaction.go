package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fintrack/fintrack-server/internal/logger"
	"github.com/fintrack/fintrack-server/internal/model"
)

// Transaction handles owner-scoped transaction operations. Reads,
// updates and deletes of a single record pass an ownership check; lists
// are pre-filtered to the caller at the query level instead.
type Transaction struct {
	transactionStore model.TransactionStore
	logger           *logger.Logger
}

// NewTransaction creates a new Transaction service.
func NewTransaction(transactionStore model.TransactionStore, logger *logger.Logger) *Transaction {
	return &Transaction{
		transactionStore: transactionStore,
		logger:           logger,
	}
}

// Create stores a new transaction bound to the calling user.
func (s *Transaction) Create(ctx context.Context, params model.CreateTransactionParams) (model.Transaction, error) {
	if err := validateTransaction(params.Kind, params.Amount, params.Category, params.Date); err != nil {
		return model.Transaction{}, err
	}

	paymentMethod := params.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = model.DefaultPaymentMethod
	}

	now := time.Now()
	transaction := model.Transaction{
		ID:            uuid.New(),
		OwnerID:       params.OwnerID,
		Kind:          params.Kind,
		Amount:        params.Amount,
		Category:      params.Category,
		Description:   params.Description,
		Date:          params.Date,
		PaymentMethod: paymentMethod,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := s.transactionStore.Create(ctx, transaction)
	if err != nil {
		s.logger.Error("Transaction service: failed to create transaction",
			"owner_id", params.OwnerID,
			"error", err.Error())
		return model.Transaction{}, fmt.Errorf("failed to create transaction: %w", err)
	}

	s.logger.Info("Transaction service: transaction created",
		"transaction_id", created.ID,
		"owner_id", created.OwnerID)

	return created, nil
}

// List returns the caller's transactions matching the filter, newest first.
func (s *Transaction) List(ctx context.Context, ownerID uuid.UUID, filter model.TransactionFilter) ([]model.Transaction, error) {
	if filter.Kind != "" && !filter.Kind.Valid() {
		return nil, fmt.Errorf("%w: unknown transaction kind %q", model.ErrInvalidInput, filter.Kind)
	}

	transactions, err := s.transactionStore.GetByOwnerID(ctx, ownerID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return transactions, nil
}

// Get returns a single transaction if the caller owns it. A record owned
// by someone else is reported as forbidden, not as absent.
func (s *Transaction) Get(ctx context.Context, callerID uuid.UUID, id uuid.UUID) (model.Transaction, error) {
	transaction, err := s.loadOwned(ctx, callerID, id)
	if err != nil {
		return model.Transaction{}, err
	}

	return transaction, nil
}

// Update applies a partial update to a transaction owned by the caller.
// The owner binding itself is immutable.
func (s *Transaction) Update(ctx context.Context, callerID uuid.UUID, params model.UpdateTransactionParams) (model.Transaction, error) {
	transaction, err := s.loadOwned(ctx, callerID, params.ID)
	if err != nil {
		return model.Transaction{}, err
	}

	if params.Kind != nil {
		transaction.Kind = *params.Kind
	}
	if params.Amount != nil {
		transaction.Amount = *params.Amount
	}
	if params.Category != nil {
		transaction.Category = *params.Category
	}
	if params.Description != nil {
		transaction.Description = *params.Description
	}
	if params.Date != nil {
		transaction.Date = *params.Date
	}
	if params.PaymentMethod != nil && *params.PaymentMethod != "" {
		transaction.PaymentMethod = *params.PaymentMethod
	}

	if err := validateTransaction(transaction.Kind, transaction.Amount, transaction.Category, transaction.Date); err != nil {
		return model.Transaction{}, err
	}
	transaction.UpdatedAt = time.Now()

	updated, err := s.transactionStore.Update(ctx, transaction)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Transaction{}, err
		}
		return model.Transaction{}, fmt.Errorf("failed to update transaction: %w", err)
	}

	s.logger.Info("Transaction service: transaction updated", "transaction_id", updated.ID)

	return updated, nil
}

// Delete removes a transaction owned by the caller.
func (s *Transaction) Delete(ctx context.Context, callerID uuid.UUID, id uuid.UUID) error {
	if _, err := s.loadOwned(ctx, callerID, id); err != nil {
		return err
	}

	if err := s.transactionStore.Delete(ctx, id); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	s.logger.Info("Transaction service: transaction deleted", "transaction_id", id)

	return nil
}

func (s *Transaction) loadOwned(ctx context.Context, callerID uuid.UUID, id uuid.UUID) (model.Transaction, error) {
	transaction, err := s.transactionStore.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Transaction{}, err
		}
		return model.Transaction{}, fmt.Errorf("failed to get transaction by id: %w", err)
	}

	if transaction.OwnerID != callerID {
		return model.Transaction{}, model.ErrForbidden
	}

	return transaction, nil
}

func validateTransaction(kind model.TransactionKind, amount float64, category string, date time.Time) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: kind must be income or expense", model.ErrInvalidInput)
	}
	if amount < 0 {
		return fmt.Errorf("%w: amount must be non-negative", model.ErrInvalidInput)
	}
	if category == "" {
		return fmt.Errorf("%w: category is required", model.ErrInvalidInput)
	}
	if date.IsZero() {
		return fmt.Errorf("%w: date is required", model.ErrInvalidInput)
	}
	return nil
}
