package model

import "errors"

var (
	// ErrNotFound signals that the requested entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists signals a unique constraint conflict (email or username).
	ErrAlreadyExists = errors.New("already exists")
	// ErrInvalidCredentials signals a login failure. It deliberately does not
	// distinguish an unknown email from a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUnauthenticated signals a missing or malformed bearer token.
	ErrUnauthenticated = errors.New("missing authorization token")
	// ErrInvalidToken signals a token that failed signature or expiry checks.
	ErrInvalidToken = errors.New("invalid authorization token")
	// ErrForbidden signals that the caller is authenticated but does not own
	// the resource.
	ErrForbidden = errors.New("forbidden")
	// ErrInvalidInput signals a request that failed validation.
	ErrInvalidInput = errors.New("invalid input")
)
