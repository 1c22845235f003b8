package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/taskflow-server/internal/logger"
	"github.com/dtroode/taskflow-server/internal/model"
)

// SessionManager issues session tokens and resolves them back into sessions.
// Sessions are not persisted; a token is valid until it expires.
type SessionManager struct {
	tokens model.TokenManager
	logger *logger.Logger
}

func NewSessionManager(tokens model.TokenManager, logger *logger.Logger) *SessionManager {
	return &SessionManager{tokens: tokens, logger: logger}
}

// Issue signs a session token for the identity.
func (m *SessionManager) Issue(claim model.IdentityClaim) (string, time.Time, error) {
	token, expiresAt, err := m.tokens.GenerateSessionToken(claim)
	if err != nil {
		m.logger.Error("Session manager: failed to issue token",
			"user_id", claim.ID,
			"error", err.Error())
		return "", time.Time{}, fmt.Errorf("failed to issue session token: %w", err)
	}
	return token, expiresAt, nil
}

// Resolve decodes the token and builds a session from its claims.
func (m *SessionManager) Resolve(token string) model.SessionResult {
	token = strings.TrimSpace(token)
	if token == "" {
		return model.Unauthenticated(model.ReasonMissing)
	}

	claims, err := m.tokens.ParseSessionToken(token)
	if err != nil {
		reason := reasonFor(err)
		m.logger.Debug("Session manager: token rejected",
			"reason", reason,
			"error", err.Error())
		return model.Unauthenticated(reason)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil || userID == uuid.Nil {
		m.logger.Debug("Session manager: token subject is not a user id",
			"subject", claims.Subject)
		return model.Unauthenticated(model.ReasonInvalid)
	}

	return model.Authenticated(model.Session{
		UserID:    userID,
		Email:     claims.Email,
		Name:      claims.Name,
		ExpiresAt: claims.ExpiresAt,
	})
}

func reasonFor(err error) model.UnauthenticatedReason {
	switch {
	case errors.Is(err, model.ErrTokenExpired):
		return model.ReasonExpired
	case errors.Is(err, model.ErrTokenMalformed):
		return model.ReasonMalformed
	default:
		return model.ReasonInvalid
	}
}
