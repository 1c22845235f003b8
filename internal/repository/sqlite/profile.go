package sqlite

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/dtroode/taskflow-server/internal/model"
)

var _ model.ProfileStore = (*ProfileRepository)(nil)

const profileColumns = `id, user_id, bio, avatar_url, location, created_at, updated_at`

type ProfileRepository struct {
	db *DB
}

func NewProfileRepository(db *DB) *ProfileRepository {
	return &ProfileRepository{
		db: db,
	}
}

func scanProfile(row rowScanner) (model.Profile, error) {
	var (
		p                     model.Profile
		bio, avatar, location sql.NullString
		createdAt, updatedAt  string
	)
	if err := row.Scan(&p.ID, &p.UserID, &bio, &avatar, &location, &createdAt, &updatedAt); err != nil {
		return model.Profile{}, err
	}

	p.Bio, p.AvatarURL, p.Location = nullString(bio), nullString(avatar), nullString(location)
	var err error
	if p.CreatedAt, err = parseTime(createdAt); err != nil {
		return model.Profile{}, err
	}
	if p.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return model.Profile{}, err
	}
	return p, nil
}

func (r *ProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (model.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE user_id = ?`

	p, err := scanProfile(r.db.QueryRowContext(ctx, query, userID))
	if err != nil {
		return model.Profile{}, mapError(err, "get profile")
	}
	return p, nil
}

// Upsert keeps stored values for nil patch fields and leaves updated_at alone when nothing changes.
func (r *ProfileRepository) Upsert(ctx context.Context, userID uuid.UUID, patch model.ProfilePatch) (model.Profile, error) {
	query := `INSERT INTO profiles (id, user_id, bio, avatar_url, location, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?)
			  ON CONFLICT (user_id) DO UPDATE SET
			      bio = COALESCE(excluded.bio, profiles.bio),
			      avatar_url = COALESCE(excluded.avatar_url, profiles.avatar_url),
			      location = COALESCE(excluded.location, profiles.location),
			      updated_at = CASE
			          WHEN COALESCE(excluded.bio, profiles.bio) IS NOT profiles.bio
			            OR COALESCE(excluded.avatar_url, profiles.avatar_url) IS NOT profiles.avatar_url
			            OR COALESCE(excluded.location, profiles.location) IS NOT profiles.location
			          THEN excluded.updated_at
			          ELSE profiles.updated_at
			      END
			  RETURNING ` + profileColumns

	now := r.db.timestamp()
	p, err := scanProfile(r.db.QueryRowContext(ctx, query,
		uuid.New(), userID, patch.Bio, patch.AvatarURL, patch.Location, now, now,
	))
	if err != nil {
		return model.Profile{}, mapError(err, "upsert profile")
	}
	return p, nil
}
