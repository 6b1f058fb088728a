package context

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintrack/fintrack-server/internal/model"
)

func TestManager_RoundTrip(t *testing.T) {
	t.Parallel()

	m := NewManager()
	identity := model.Identity{ID: uuid.New(), Email: "ana@x.com"}

	ctx := m.SetIdentityToContext(context.Background(), identity)

	got, ok := m.GetIdentityFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, identity, got)
}

func TestManager_MissingIdentity(t *testing.T) {
	t.Parallel()

	m := NewManager()

	got, ok := m.GetIdentityFromContext(context.Background())
	assert.False(t, ok)
	assert.Equal(t, model.Identity{}, got)
}
