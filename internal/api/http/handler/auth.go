package handler

import (
	"context"
	"net/http"

	"github.com/fintrack/fintrack-server/internal/logger"
	"github.com/fintrack/fintrack-server/internal/model"
)

// AuthService defines user registration and login operations.
type AuthService interface {
	Register(ctx context.Context, params model.RegisterUserParams) (model.User, error)
	Login(ctx context.Context, email, password string) (string, model.User, error)
}

// Auth handles HTTP endpoints for registration and login.
type Auth struct {
	authService AuthService
	logger      *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, logger *logger.Logger) *Auth {
	return &Auth{
		authService: authService,
		logger:      logger,
	}
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

// Register creates a new user account.
func (h *Auth) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	user, err := h.authService.Register(r.Context(), model.RegisterUserParams{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.logger.Error("Auth handler: registration failed", "error", err.Error())
		WriteError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, map[string]userResponse{"user": toUserResponse(user)})
}

// Login authenticates credentials and returns a bearer token.
func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	token, user, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, loginResponse{Token: token, User: toUserResponse(user)})
}
