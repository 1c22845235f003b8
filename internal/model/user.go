package model

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	Create(ctx context.Context, user User) (User, error)
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]UserSummary, error)
}

// User represents a stored user with authentication material.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	Preferences  json.RawMessage
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IdentityClaim is the minimal identity returned by a successful credential check.
type IdentityClaim struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
}

// Claim returns the identity claim of the user.
func (u User) Claim() IdentityClaim {
	return IdentityClaim{ID: u.ID, Email: u.Email, Name: u.Name}
}

// UserSummary is the public projection of a user embedded in other entities.
type UserSummary struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// PasswordHasher hashes and verifies user passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Verify returns nil when password matches hash.
	Verify(hash, password string) error
}
