package model

import "context"

// ContextManager carries the resolved session through a request context.
type ContextManager interface {
	SetSessionToContext(ctx context.Context, session Session) context.Context
	GetSessionFromContext(ctx context.Context) (Session, bool)
}
