package sqlite

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/dtroode/taskflow-server/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

const userColumns = `id, email, name, password_hash, preferences, created_at, updated_at`

type UserRepository struct {
	db *DB
}

func NewUserRepository(db *DB) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (model.User, error) {
	var (
		user                 model.User
		preferences          string
		createdAt, updatedAt string
	)
	if err := row.Scan(&user.ID, &user.Email, &user.Name, &user.PasswordHash, &preferences, &createdAt, &updatedAt); err != nil {
		return model.User{}, err
	}

	user.Preferences = json.RawMessage(preferences)
	var err error
	if user.CreatedAt, err = parseTime(createdAt); err != nil {
		return model.User{}, err
	}
	if user.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return model.User{}, err
	}
	return user, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = ?`

	user, err := scanUser(r.db.QueryRowContext(ctx, query, email))
	if err != nil {
		return model.User{}, mapError(err, "get user by email")
	}
	return user, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = ?`

	user, err := scanUser(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return model.User{}, mapError(err, "get user by id")
	}
	return user, nil
}

func (r *UserRepository) Create(ctx context.Context, user model.User) (model.User, error) {
	query := `INSERT INTO users (id, email, name, password_hash, preferences, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?)
			  RETURNING ` + userColumns

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	preferences := string(user.Preferences)
	if preferences == "" {
		preferences = "{}"
	}
	now := r.db.timestamp()

	saved, err := scanUser(r.db.QueryRowContext(ctx, query,
		user.ID, user.Email, user.Name, user.PasswordHash, preferences, now, now,
	))
	if err != nil {
		return model.User{}, mapError(err, "create user")
	}
	return saved, nil
}

func (r *UserRepository) ListByProject(ctx context.Context, projectID uuid.UUID) ([]model.UserSummary, error) {
	members, err := listMembers(ctx, r.db, []uuid.UUID{projectID})
	if err != nil {
		return nil, err
	}
	if members[projectID] == nil {
		return []model.UserSummary{}, nil
	}
	return members[projectID], nil
}
