package model

import (
	"context"

	"github.com/google/uuid"
)

// Identity is the authenticated caller resolved from a bearer token.
type Identity struct {
	ID    uuid.UUID
	Email string
}

// ContextManager attaches and retrieves the caller identity on a request context.
type ContextManager interface {
	SetIdentityToContext(ctx context.Context, identity Identity) context.Context
	GetIdentityFromContext(ctx context.Context) (Identity, bool)
}
