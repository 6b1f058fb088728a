package handler

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/fintrack/fintrack-server/internal/logger"
	"github.com/fintrack/fintrack-server/internal/model"
)

// UserService defines user management operations.
type UserService interface {
	List(ctx context.Context) ([]model.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (model.User, error)
	Update(ctx context.Context, params model.UpdateUserParams) (model.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// User handles HTTP endpoints for user management.
type User struct {
	userService UserService
	logger      *logger.Logger
}

// NewUser creates a new User handler.
func NewUser(userService UserService, logger *logger.Logger) *User {
	return &User{
		userService: userService,
		logger:      logger,
	}
}

type updateUserRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

// List returns all users.
func (h *User) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.List(r.Context())
	if err != nil {
		h.logger.Error("User handler: list failed", "error", err.Error())
		WriteError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string][]userResponse{"users": toUserResponses(users)})
}

// GetByID returns a single user.
func (h *User) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	user, err := h.userService.GetByID(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]userResponse{"user": toUserResponse(user)})
}

// Update applies a partial update to a user.
func (h *User) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	var req updateUserRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	user, err := h.userService.Update(r.Context(), model.UpdateUserParams{
		ID:       id,
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.logger.Error("User handler: update failed", "user_id", id, "error", err.Error())
		WriteError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]userResponse{"user": toUserResponse(user)})
}

// Delete removes a user.
func (h *User) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := h.userService.Delete(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{"message": "user deleted"})
}

// pathID parses the {id} path variable as a UUID. An unparseable id can
// not reference anything, so it reads as not found rather than invalid.
func pathID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		return uuid.Nil, model.ErrNotFound
	}
	return id, nil
}
