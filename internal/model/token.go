package model

import (
	"errors"
	"time"
)

var (
	ErrTokenMalformed = errors.New("session token malformed")
	ErrTokenExpired   = errors.New("session token expired")
	ErrTokenInvalid   = errors.New("session token invalid")
)

// TokenClaims is the verified payload of a session token.
type TokenClaims struct {
	Subject   string
	Email     string
	Name      string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenManager signs and verifies session tokens.
type TokenManager interface {
	GenerateSessionToken(claim IdentityClaim) (token string, expiresAt time.Time, err error)
	// ParseSessionToken verifies signature and expiry and returns the payload.
	// Errors wrap ErrTokenMalformed, ErrTokenExpired or ErrTokenInvalid.
	ParseSessionToken(token string) (TokenClaims, error)
}
