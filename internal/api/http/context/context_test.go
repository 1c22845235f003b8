package context

import (
	stdctx "context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/dtroode/taskflow-server/internal/model"
)

func TestManager_SetAndGetSession(t *testing.T) {
	m := NewManager()
	session := model.Session{UserID: uuid.New(), Email: "a@example.com", Name: "A", ExpiresAt: time.Now().Add(time.Hour)}
	ctx := m.SetSessionToContext(stdctx.Background(), session)

	got, ok := m.GetSessionFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, session, got)
}

func TestManager_GetSession_NotFound(t *testing.T) {
	m := NewManager()
	_, ok := m.GetSessionFromContext(stdctx.Background())
	assert.False(t, ok)
}

func TestManager_GetSession_NilUserID(t *testing.T) {
	m := NewManager()
	ctx := m.SetSessionToContext(stdctx.Background(), model.Session{Email: "a@example.com"})
	_, ok := m.GetSessionFromContext(ctx)
	assert.False(t, ok)
}

func TestManager_SetSession_Overrides(t *testing.T) {
	m := NewManager()
	first := model.Session{UserID: uuid.New()}
	second := model.Session{UserID: uuid.New()}

	ctx := m.SetSessionToContext(m.SetSessionToContext(stdctx.Background(), first), second)
	got, ok := m.GetSessionFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, second.UserID, got.UserID)
}
