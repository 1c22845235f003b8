package context

import (
	"context"

	"github.com/google/uuid"

	"github.com/dtroode/taskflow-server/internal/model"
)

type sessionKey struct{}

// Manager represents a request context manager for session operations.
// It stores the resolved session on the request context so procedures
// can read it after the authenticate middleware ran.
type Manager struct{}

// NewManager creates a new context manager instance.
//
// Returns a pointer to the newly created Manager instance.
func NewManager() *Manager {
	return &Manager{}
}

var _ model.ContextManager = (*Manager)(nil)

// SetSessionToContext attaches the session to the context.
//
// Parameters:
//   - ctx: The request context
//   - session: The resolved session
//
// Returns a new context carrying the session.
func (m *Manager) SetSessionToContext(ctx context.Context, session model.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, session)
}

// GetSessionFromContext retrieves the session from the context.
//
// Parameters:
//   - ctx: The request context
//
// Returns the session and a boolean indicating if a session with a user ID was found.
func (m *Manager) GetSessionFromContext(ctx context.Context) (model.Session, bool) {
	session, ok := ctx.Value(sessionKey{}).(model.Session)
	if !ok || session.UserID == uuid.Nil {
		return model.Session{}, false
	}
	return session, true
}
