package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fintrack/fintrack-server/internal/logger"
	"github.com/fintrack/fintrack-server/internal/model"
)

// Auth handles user registration and credential-based login.
type Auth struct {
	userStore    model.UserStore
	hasher       model.PasswordHasher
	tokenService *TokenService
	logger       *logger.Logger
}

// NewAuth creates a new Auth service.
func NewAuth(
	userStore model.UserStore,
	hasher model.PasswordHasher,
	tokenService *TokenService,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore:    userStore,
		hasher:       hasher,
		tokenService: tokenService,
		logger:       logger,
	}
}

// Register creates a new user. The plaintext password is hashed before
// the save boundary and is never stored.
func (a *Auth) Register(ctx context.Context, params model.RegisterUserParams) (model.User, error) {
	a.logger.Debug("Auth service: starting user registration", "email", params.Email)

	username := strings.TrimSpace(params.Username)
	email := NormalizeEmail(params.Email)
	if username == "" || email == "" || params.Password == "" {
		return model.User{}, fmt.Errorf("%w: username, email and password are required", model.ErrInvalidInput)
	}

	existing, err := a.userStore.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		a.logger.Error("Auth service: failed to get user by email", "email", email, "error", err.Error())
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}
	if existing.ID != uuid.Nil {
		a.logger.Info("Auth service: user already exists", "email", email)
		return model.User{}, fmt.Errorf("%w: email is taken", model.ErrAlreadyExists)
	}

	digest, err := a.hasher.Hash(params.Password)
	if err != nil {
		a.logger.Error("Auth service: failed to hash password", "email", email, "error", err.Error())
		return model.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := model.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: digest,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := a.userStore.Create(ctx, user)
	if err != nil {
		a.logger.Error("Auth service: failed to create user", "email", email, "error", err.Error())
		if errors.Is(err, model.ErrAlreadyExists) {
			return model.User{}, err
		}
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	a.logger.Info("Auth service: user registered", "user_id", created.ID, "email", created.Email)

	return created, nil
}

// Login verifies credentials and returns a bearer token with the user.
// An unknown email and a wrong password collapse to the same error so
// callers cannot enumerate accounts.
func (a *Auth) Login(ctx context.Context, email, password string) (string, model.User, error) {
	email = NormalizeEmail(email)

	user, err := a.userStore.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		return "", model.User{}, model.ErrInvalidCredentials
	}
	if err != nil {
		a.logger.Error("Auth service: failed to get user by email", "email", email, "error", err.Error())
		return "", model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if !a.hasher.Verify(password, user.PasswordHash) {
		return "", model.User{}, model.ErrInvalidCredentials
	}

	token, err := a.tokenService.GetOrIssue(user.ID, user.Email)
	if err != nil {
		a.logger.Error("Auth service: failed to issue token", "user_id", user.ID, "error", err.Error())
		return "", model.User{}, fmt.Errorf("failed to issue token: %w", err)
	}

	a.logger.Info("Auth service: user logged in", "user_id", user.ID)

	return token, user, nil
}

// NormalizeEmail lowercases and trims an email address. Emails are
// unique case-insensitively, so every lookup goes through this form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
