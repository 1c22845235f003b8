package postgres

import (
	"context"

	"github.com/google/uuid"

	"github.com/dtroode/taskflow-server/internal/model"
)

var _ model.ProfileStore = (*ProfileRepository)(nil)

const profileColumns = `id, user_id, bio, avatar_url, location, created_at, updated_at`

type ProfileRepository struct {
	db *Connection
}

func NewProfileRepository(db *Connection) *ProfileRepository {
	return &ProfileRepository{
		db: db,
	}
}

func (r *ProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (model.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE user_id = $1`

	var p model.Profile
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&p.ID, &p.UserID, &p.Bio, &p.AvatarURL, &p.Location, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return model.Profile{}, mapError(err, "get profile")
	}

	return p, nil
}

// Upsert keeps stored values for nil patch fields and leaves updated_at alone when nothing changes.
func (r *ProfileRepository) Upsert(ctx context.Context, userID uuid.UUID, patch model.ProfilePatch) (model.Profile, error) {
	query := `INSERT INTO profiles AS p (id, user_id, bio, avatar_url, location)
			  VALUES ($1, $2, $3, $4, $5)
			  ON CONFLICT (user_id) DO UPDATE SET
			      bio = COALESCE(EXCLUDED.bio, p.bio),
			      avatar_url = COALESCE(EXCLUDED.avatar_url, p.avatar_url),
			      location = COALESCE(EXCLUDED.location, p.location),
			      updated_at = CASE
			          WHEN (COALESCE(EXCLUDED.bio, p.bio), COALESCE(EXCLUDED.avatar_url, p.avatar_url), COALESCE(EXCLUDED.location, p.location))
			               IS DISTINCT FROM (p.bio, p.avatar_url, p.location)
			          THEN NOW()
			          ELSE p.updated_at
			      END
			  RETURNING ` + profileColumns

	var p model.Profile
	err := r.db.QueryRow(ctx, query,
		uuid.New(), userID, patch.Bio, patch.AvatarURL, patch.Location,
	).Scan(
		&p.ID, &p.UserID, &p.Bio, &p.AvatarURL, &p.Location, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return model.Profile{}, mapError(err, "upsert profile")
	}

	return p, nil
}
