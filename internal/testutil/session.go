package testutil

import (
	"context"
	"time"

	"github.com/google/uuid"

	httpctx "github.com/dtroode/taskflow-server/internal/api/http/context"
	"github.com/dtroode/taskflow-server/internal/model"
)

// ContextWithSession returns ctx carrying an authenticated session for userID.
func ContextWithSession(ctx context.Context, userID uuid.UUID) context.Context {
	return httpctx.NewManager().SetSessionToContext(ctx, model.Session{
		UserID:    userID,
		Email:     userID.String()[:8] + "@example.com",
		Name:      "user " + userID.String()[:8],
		ExpiresAt: time.Now().Add(time.Hour),
	})
}

func StrPtr(s string) *string {
	return &s
}
