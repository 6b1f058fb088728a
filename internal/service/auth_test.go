package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fintrack/fintrack-server/internal/mocks"
	"github.com/fintrack/fintrack-server/internal/model"
	"github.com/fintrack/fintrack-server/internal/testutil"
	"github.com/fintrack/fintrack-server/internal/token"
)

func newAuthService(userStore *mocks.UserStore, hasher *mocks.PasswordHasher) *Auth {
	log := testutil.MakeNoopLogger()
	tokens := NewTokenService(token.NewJWT("secret"), token.TTL, log)
	return NewAuth(userStore, hasher, tokens, log)
}

func TestAuth_Register_NewUser(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	userStore := &mocks.UserStore{}
	hasher := &mocks.PasswordHasher{}

	userStore.On("GetByEmail", mock.Anything, "ana@x.com").Return(model.User{}, model.ErrNotFound)
	hasher.On("Hash", "secret123").Return("$digest$", nil)
	userStore.On("Create", mock.Anything, mock.MatchedBy(func(u model.User) bool {
		return u.Username == "ana" && u.Email == "ana@x.com" && u.PasswordHash == "$digest$"
	})).Return(model.User{ID: uuid.New(), Username: "ana", Email: "ana@x.com", PasswordHash: "$digest$"}, nil)

	a := newAuthService(userStore, hasher)

	user, err := a.Register(ctx, model.RegisterUserParams{Username: "ana", Email: "Ana@X.com", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "ana@x.com", user.Email)
	userStore.AssertExpectations(t)
}

func TestAuth_Register_ExistingEmail(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	userStore := &mocks.UserStore{}
	hasher := &mocks.PasswordHasher{}

	userStore.On("GetByEmail", mock.Anything, "ana@x.com").Return(model.User{ID: uuid.New()}, nil)

	a := newAuthService(userStore, hasher)

	_, err := a.Register(ctx, model.RegisterUserParams{Username: "ana", Email: "ana@x.com", Password: "secret123"})
	require.ErrorIs(t, err, model.ErrAlreadyExists)
	hasher.AssertNotCalled(t, "Hash", mock.Anything)
}

func TestAuth_Register_MissingFields(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	a := newAuthService(&mocks.UserStore{}, &mocks.PasswordHasher{})

	_, err := a.Register(ctx, model.RegisterUserParams{Username: "", Email: "ana@x.com", Password: "secret123"})
	require.ErrorIs(t, err, model.ErrInvalidInput)

	_, err = a.Register(ctx, model.RegisterUserParams{Username: "ana", Email: "ana@x.com", Password: ""})
	require.ErrorIs(t, err, model.ErrInvalidInput)
}

func TestAuth_Login_UnknownEmailAndWrongPasswordCollapse(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	userStore := &mocks.UserStore{}
	hasher := &mocks.PasswordHasher{}

	userStore.On("GetByEmail", mock.Anything, "ghost@x.com").Return(model.User{}, model.ErrNotFound)
	userStore.On("GetByEmail", mock.Anything, "ana@x.com").Return(model.User{ID: uuid.New(), Email: "ana@x.com", PasswordHash: "$digest$"}, nil)
	hasher.On("Verify", "wrong", "$digest$").Return(false)

	a := newAuthService(userStore, hasher)

	_, _, err := a.Login(ctx, "ghost@x.com", "whatever")
	require.ErrorIs(t, err, model.ErrInvalidCredentials)

	_, _, err = a.Login(ctx, "ana@x.com", "wrong")
	require.ErrorIs(t, err, model.ErrInvalidCredentials)
}

func TestAuth_Login_Success(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	userStore := &mocks.UserStore{}
	hasher := &mocks.PasswordHasher{}
	u := uuid.New()

	userStore.On("GetByEmail", mock.Anything, "ana@x.com").Return(model.User{ID: u, Username: "ana", Email: "ana@x.com", PasswordHash: "$digest$"}, nil)
	hasher.On("Verify", "secret123", "$digest$").Return(true)

	a := newAuthService(userStore, hasher)

	tokenString, user, err := a.Login(ctx, "ana@x.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, u, user.ID)

	// The issued token decodes back to the user's identity.
	identity, err := a.tokenService.Authenticate(tokenString)
	require.NoError(t, err)
	assert.Equal(t, u, identity.ID)
	assert.Equal(t, "ana@x.com", identity.Email)
}

func TestAuth_Login_RepeatedLoginReturnsSameToken(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	userStore := &mocks.UserStore{}
	hasher := &mocks.PasswordHasher{}
	u := uuid.New()

	userStore.On("GetByEmail", mock.Anything, "ana@x.com").Return(model.User{ID: u, Email: "ana@x.com", PasswordHash: "$digest$"}, nil)
	hasher.On("Verify", "secret123", "$digest$").Return(true)

	a := newAuthService(userStore, hasher)

	first, _, err := a.Login(ctx, "ana@x.com", "secret123")
	require.NoError(t, err)
	second, _, err := a.Login(ctx, "ana@x.com", "secret123")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
