package model

import (
	"time"

	"github.com/google/uuid"
)

// Session is the identity attached to an authenticated request.
type Session struct {
	UserID    uuid.UUID `json:"userId"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	ExpiresAt time.Time `json:"expires"`
}

// UnauthenticatedReason explains why no session could be resolved.
type UnauthenticatedReason string

const (
	ReasonMissing   UnauthenticatedReason = "missing"
	ReasonMalformed UnauthenticatedReason = "malformed"
	ReasonExpired   UnauthenticatedReason = "expired"
	ReasonInvalid   UnauthenticatedReason = "invalid"
)

// SessionResult is either an authenticated Session or an unauthenticated reason.
// The zero value is unauthenticated.
type SessionResult struct {
	session       Session
	reason        UnauthenticatedReason
	authenticated bool
}

// Authenticated wraps a resolved session.
func Authenticated(s Session) SessionResult {
	return SessionResult{session: s, authenticated: true}
}

// Unauthenticated records why resolution failed.
func Unauthenticated(reason UnauthenticatedReason) SessionResult {
	return SessionResult{reason: reason}
}

// Authenticated reports which arm the result holds.
func (r SessionResult) Authenticated() bool {
	return r.authenticated
}

// Session returns the session and true for the authenticated arm.
func (r SessionResult) Session() (Session, bool) {
	if !r.authenticated {
		return Session{}, false
	}
	return r.session, true
}

// Reason is empty for an authenticated result.
func (r SessionResult) Reason() UnauthenticatedReason {
	if r.authenticated {
		return ""
	}
	if r.reason == "" {
		return ReasonMissing
	}
	return r.reason
}
