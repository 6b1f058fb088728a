package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/fintrack/fintrack-server/internal/model"
)

// AuthService is a mock implementation of the handler AuthService.
type AuthService struct {
	mock.Mock
}

func (m *AuthService) Register(ctx context.Context, params model.RegisterUserParams) (model.User, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *AuthService) Login(ctx context.Context, email, password string) (string, model.User, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Get(1).(model.User), args.Error(2)
}
