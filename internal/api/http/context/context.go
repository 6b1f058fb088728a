package context

import (
	"context"

	"github.com/fintrack/fintrack-server/internal/model"
)

// identityKey is an unexported context key type so no other package can
// collide with or spoof the stored identity.
type identityKey struct{}

// Manager stores and retrieves the authenticated identity on a request
// context.
type Manager struct{}

// NewManager creates a new context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

var _ model.ContextManager = (*Manager)(nil)

// SetIdentityToContext returns a child context carrying the identity.
func (m *Manager) SetIdentityToContext(ctx context.Context, identity model.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}

// GetIdentityFromContext retrieves the identity attached by the
// authentication middleware, reporting whether one was present.
func (m *Manager) GetIdentityFromContext(ctx context.Context) (model.Identity, bool) {
	identity, ok := ctx.Value(identityKey{}).(model.Identity)
	return identity, ok
}
