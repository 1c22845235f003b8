package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ProfileStore defines persistence operations for user profiles.
type ProfileStore interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (Profile, error)
	Upsert(ctx context.Context, userID uuid.UUID, patch ProfilePatch) (Profile, error)
}

// Profile holds optional public details of a user. At most one per user.
type Profile struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Bio       *string   `json:"bio"`
	AvatarURL *string   `json:"avatarUrl"`
	Location  *string   `json:"location"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ProfilePatch lists the profile fields to write. Nil fields keep their stored value.
type ProfilePatch struct {
	Bio       *string
	AvatarURL *string
	Location  *string
}
