package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/fintrack/fintrack-server/internal/model"
)

// TransactionStore is a mock implementation of model.TransactionStore.
type TransactionStore struct {
	mock.Mock
}

func (m *TransactionStore) Create(ctx context.Context, transaction model.Transaction) (model.Transaction, error) {
	args := m.Called(ctx, transaction)
	return args.Get(0).(model.Transaction), args.Error(1)
}

func (m *TransactionStore) GetByID(ctx context.Context, id uuid.UUID) (model.Transaction, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Transaction), args.Error(1)
}

func (m *TransactionStore) GetByOwnerID(ctx context.Context, ownerID uuid.UUID, filter model.TransactionFilter) ([]model.Transaction, error) {
	args := m.Called(ctx, ownerID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Transaction), args.Error(1)
}

func (m *TransactionStore) Update(ctx context.Context, transaction model.Transaction) (model.Transaction, error) {
	args := m.Called(ctx, transaction)
	return args.Get(0).(model.Transaction), args.Error(1)
}

func (m *TransactionStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
