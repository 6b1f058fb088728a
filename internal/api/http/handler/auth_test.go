package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fintrack/fintrack-server/internal/mocks"
	"github.com/fintrack/fintrack-server/internal/model"
	"github.com/fintrack/fintrack-server/internal/testutil"
)

func TestAuth_Register(t *testing.T) {
	t.Parallel()

	authService := &mocks.AuthService{}
	user := model.User{ID: uuid.New(), Username: "ana", Email: "ana@x.com", PasswordHash: "$digest$"}

	authService.On("Register", mock.Anything, model.RegisterUserParams{
		Username: "ana",
		Email:    "ana@x.com",
		Password: "secret123",
	}).Return(user, nil)

	h := NewAuth(authService, testutil.MakeNoopLogger())

	r := httptest.NewRequest(http.MethodPost, "/users/register",
		strings.NewReader(`{"username":"ana","email":"ana@x.com","password":"secret123"}`))
	w := httptest.NewRecorder()

	h.Register(w, r)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	// The password digest never leaves the server.
	assert.NotContains(t, w.Body.String(), "$digest$")
	assert.NotContains(t, w.Body.String(), "password")

	var body struct {
		User struct {
			ID       string `json:"id"`
			Username string `json:"username"`
			Email    string `json:"email"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, user.ID.String(), body.User.ID)
	assert.Equal(t, "ana", body.User.Username)
}

func TestAuth_Register_DuplicateEmail(t *testing.T) {
	t.Parallel()

	authService := &mocks.AuthService{}
	authService.On("Register", mock.Anything, mock.Anything).
		Return(model.User{}, model.ErrAlreadyExists)

	h := NewAuth(authService, testutil.MakeNoopLogger())

	r := httptest.NewRequest(http.MethodPost, "/users/register",
		strings.NewReader(`{"username":"ana","email":"ana@x.com","password":"secret123"}`))
	w := httptest.NewRecorder()

	h.Register(w, r)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAuth_Register_MalformedBody(t *testing.T) {
	t.Parallel()

	authService := &mocks.AuthService{}
	h := NewAuth(authService, testutil.MakeNoopLogger())

	r := httptest.NewRequest(http.MethodPost, "/users/register", strings.NewReader(`{"username":`))
	w := httptest.NewRecorder()

	h.Register(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	authService.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestAuth_Login(t *testing.T) {
	t.Parallel()

	authService := &mocks.AuthService{}
	user := model.User{ID: uuid.New(), Username: "ana", Email: "ana@x.com"}

	authService.On("Login", mock.Anything, "ana@x.com", "secret123").
		Return("the-token", user, nil)

	h := NewAuth(authService, testutil.MakeNoopLogger())

	r := httptest.NewRequest(http.MethodPost, "/users/login",
		strings.NewReader(`{"email":"ana@x.com","password":"secret123"}`))
	w := httptest.NewRecorder()

	h.Login(w, r)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Token string `json:"token"`
		User  struct {
			Email string `json:"email"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "the-token", body.Token)
	assert.Equal(t, "ana@x.com", body.User.Email)
}

func TestAuth_Login_BadCredentials(t *testing.T) {
	t.Parallel()

	authService := &mocks.AuthService{}
	authService.On("Login", mock.Anything, "ana@x.com", "wrong").
		Return("", model.User{}, model.ErrInvalidCredentials)

	h := NewAuth(authService, testutil.MakeNoopLogger())

	r := httptest.NewRequest(http.MethodPost, "/users/login",
		strings.NewReader(`{"email":"ana@x.com","password":"wrong"}`))
	w := httptest.NewRecorder()

	h.Login(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
