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

// User handles user listing, lookup, update and removal.
type User struct {
	userStore model.UserStore
	hasher    model.PasswordHasher
	logger    *logger.Logger
}

// NewUser creates a new User service.
func NewUser(userStore model.UserStore, hasher model.PasswordHasher, logger *logger.Logger) *User {
	return &User{
		userStore: userStore,
		hasher:    hasher,
		logger:    logger,
	}
}

// List returns all users.
func (s *User) List(ctx context.Context) ([]model.User, error) {
	users, err := s.userStore.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return users, nil
}

// GetByID returns a single user.
func (s *User) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	user, err := s.userStore.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.User{}, err
		}
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

// Update applies a partial update. A plaintext password in the request
// is always re-hashed here; the store never sees a caller-supplied digest.
func (s *User) Update(ctx context.Context, params model.UpdateUserParams) (model.User, error) {
	user, err := s.userStore.GetByID(ctx, params.ID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.User{}, err
		}
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	if params.Username != nil {
		username := strings.TrimSpace(*params.Username)
		if username == "" {
			return model.User{}, fmt.Errorf("%w: username must not be empty", model.ErrInvalidInput)
		}
		user.Username = username
	}
	if params.Email != nil {
		email := NormalizeEmail(*params.Email)
		if email == "" {
			return model.User{}, fmt.Errorf("%w: email must not be empty", model.ErrInvalidInput)
		}
		user.Email = email
	}
	if params.Password != nil {
		digest, err := s.hasher.Hash(*params.Password)
		if err != nil {
			s.logger.Error("User service: failed to hash password", "user_id", params.ID, "error", err.Error())
			return model.User{}, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = digest
	}
	user.UpdatedAt = time.Now()

	updated, err := s.userStore.Update(ctx, user)
	if err != nil {
		if errors.Is(err, model.ErrAlreadyExists) || errors.Is(err, model.ErrNotFound) {
			return model.User{}, err
		}
		return model.User{}, fmt.Errorf("failed to update user: %w", err)
	}

	s.logger.Info("User service: user updated", "user_id", updated.ID)

	return updated, nil
}

// Delete removes a user.
func (s *User) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.userStore.Delete(ctx, id); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}

	s.logger.Info("User service: user deleted", "user_id", id)

	return nil
}
