package postgres

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/dtroode/taskflow-server/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

const userColumns = `id, email, name, password_hash, preferences, created_at, updated_at`

type UserRepository struct {
	db *Connection
}

func NewUserRepository(db *Connection) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	var user model.User
	err := r.db.QueryRow(ctx, query, email).Scan(
		&user.ID, &user.Email, &user.Name, &user.PasswordHash, &user.Preferences,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return model.User{}, mapError(err, "get user by email")
	}

	return user, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	var user model.User
	err := r.db.QueryRow(ctx, query, id).Scan(
		&user.ID, &user.Email, &user.Name, &user.PasswordHash, &user.Preferences,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return model.User{}, mapError(err, "get user by id")
	}

	return user, nil
}

func (r *UserRepository) Create(ctx context.Context, user model.User) (model.User, error) {
	query := `INSERT INTO users (id, email, name, password_hash, preferences)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING ` + userColumns

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	preferences := user.Preferences
	if len(preferences) == 0 {
		preferences = json.RawMessage(`{}`)
	}

	var saved model.User
	err := r.db.QueryRow(ctx, query,
		user.ID, user.Email, user.Name, user.PasswordHash, preferences,
	).Scan(
		&saved.ID, &saved.Email, &saved.Name, &saved.PasswordHash, &saved.Preferences,
		&saved.CreatedAt, &saved.UpdatedAt,
	)
	if err != nil {
		return model.User{}, mapError(err, "create user")
	}

	return saved, nil
}

func (r *UserRepository) ListByProject(ctx context.Context, projectID uuid.UUID) ([]model.UserSummary, error) {
	query := `SELECT u.id, u.name
			  FROM project_members pm
			  JOIN users u ON u.id = pm.user_id
			  WHERE pm.project_id = $1
			  ORDER BY u.name, u.id`

	rows, err := r.db.Query(ctx, query, projectID)
	if err != nil {
		return nil, mapError(err, "list project members")
	}
	defer rows.Close()

	members := []model.UserSummary{}
	for rows.Next() {
		var m model.UserSummary
		if err := rows.Scan(&m.ID, &m.Name); err != nil {
			return nil, mapError(err, "scan project member")
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "list project members")
	}

	return members, nil
}
