package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/fintrack/fintrack-server/internal/model"
)

// TransactionService is a mock implementation of the handler TransactionService.
type TransactionService struct {
	mock.Mock
}

func (m *TransactionService) Create(ctx context.Context, params model.CreateTransactionParams) (model.Transaction, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.Transaction), args.Error(1)
}

func (m *TransactionService) List(ctx context.Context, ownerID uuid.UUID, filter model.TransactionFilter) ([]model.Transaction, error) {
	args := m.Called(ctx, ownerID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Transaction), args.Error(1)
}

func (m *TransactionService) Get(ctx context.Context, callerID uuid.UUID, id uuid.UUID) (model.Transaction, error) {
	args := m.Called(ctx, callerID, id)
	return args.Get(0).(model.Transaction), args.Error(1)
}

func (m *TransactionService) Update(ctx context.Context, callerID uuid.UUID, params model.UpdateTransactionParams) (model.Transaction, error) {
	args := m.Called(ctx, callerID, params)
	return args.Get(0).(model.Transaction), args.Error(1)
}

func (m *TransactionService) Delete(ctx context.Context, callerID uuid.UUID, id uuid.UUID) error {
	args := m.Called(ctx, callerID, id)
	return args.Error(0)
}
