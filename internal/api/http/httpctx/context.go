// Package httpctx carries the authenticated user on request contexts.
package httpctx

import (
	"context"

	"github.com/bvieira/accounts-server/internal/model"
)

type ctxKey int

const userKey ctxKey = iota

// Manager stores and retrieves the authenticated user on a context.
type Manager struct{}

// NewManager creates a new context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetUserToContext returns a context carrying the authenticated user.
func (m *Manager) SetUserToContext(ctx context.Context, user model.PublicUser) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// GetUserFromContext retrieves the authenticated user from the context. The
// boolean reports whether one was set.
func (m *Manager) GetUserFromContext(ctx context.Context) (model.PublicUser, bool) {
	user, ok := ctx.Value(userKey).(model.PublicUser)
	return user, ok
}
