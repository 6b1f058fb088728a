package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/fintrack/fintrack-server/internal/model"
)

// TokenService is a mock implementation of the middleware TokenService.
type TokenService struct {
	mock.Mock
}

func (m *TokenService) Authenticate(token string) (model.Identity, error) {
	args := m.Called(token)
	return args.Get(0).(model.Identity), args.Error(1)
}
