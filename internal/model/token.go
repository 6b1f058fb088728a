package model

import (
	"time"

	"github.com/google/uuid"
)

// TokenClaims is the identity payload embedded in a bearer token.
type TokenClaims struct {
	UserID    uuid.UUID
	Email     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenManager issues and verifies signed bearer tokens.
type TokenManager interface {
	Generate(userID uuid.UUID, email string) (string, error)
	Parse(token string) (TokenClaims, error)
}
