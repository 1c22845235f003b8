package seed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/taskflow-server/internal/logger"
	"github.com/dtroode/taskflow-server/internal/model"
)

// Stores groups the stores demo data is written to.
type Stores struct {
	Users    model.UserStore
	Profiles model.ProfileStore
	Projects model.ProjectStore
	Tasks    model.TaskStore
}

type demoUser struct {
	email, name, password, theme string
	bio, avatarURL, location     string
}

var demoUsers = []demoUser{
	{
		email: "alice@example.com", name: "Alice Smith", password: "password123", theme: "dark",
		bio: "Senior developer with a passion for task management.", avatarURL: "https://example.com/avatars/alice.jpg", location: "New York",
	},
	{
		email: "bob@example.com", name: "Bob Johnson", password: "password456", theme: "light",
		bio: "Project manager focused on team collaboration.", avatarURL: "https://example.com/avatars/bob.jpg", location: "London",
	},
}

// ErrAlreadySeeded is returned when the demo users already exist.
var ErrAlreadySeeded = errors.New("demo data already present")

// Run writes two users with profiles, two projects and three tasks.
func Run(ctx context.Context, stores Stores, hasher model.PasswordHasher, logger *logger.Logger) error {
	if _, err := stores.Users.GetByEmail(ctx, demoUsers[0].email); err == nil {
		return ErrAlreadySeeded
	} else if !errors.Is(err, model.ErrNotFound) {
		return fmt.Errorf("failed to check existing data: %w", err)
	}

	users := make([]model.User, 0, len(demoUsers))
	for _, d := range demoUsers {
		u, err := createUser(ctx, stores, hasher, d)
		if err != nil {
			return err
		}
		users = append(users, u)
	}
	alice, bob := users[0], users[1]

	website, err := stores.Projects.Create(ctx, model.Project{
		Name:        "Website Redesign",
		Description: ptr("Redesign the company website for better UX."),
		Status:      model.ProjectStatusActive,
		CreatedByID: alice.ID,
	}, []uuid.UUID{alice.ID, bob.ID})
	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}

	mobile, err := stores.Projects.Create(ctx, model.Project{
		Name:        "Mobile App Development",
		Description: ptr("Build a new mobile app for task management."),
		Status:      model.ProjectStatusActive,
		CreatedByID: bob.ID,
	}, []uuid.UUID{bob.ID})
	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}

	tasks := []model.Task{
		{
			ProjectID: website.ID, Title: "Design Homepage",
			Description: ptr("Create wireframes and mockups for the homepage."),
			Priority:    model.TaskPriorityHigh, Status: model.TaskStatusTodo,
			Deadline: date(2025, time.April, 15), Tags: []string{"design", "ux"},
			UserID: &alice.ID, CreatedByID: alice.ID,
		},
		{
			ProjectID: website.ID, Title: "Implement Authentication",
			Description: ptr("Set up user sign-in with session tokens."),
			Priority:    model.TaskPriorityMedium, Status: model.TaskStatusInProgress,
			Deadline: date(2025, time.April, 20), Tags: []string{"backend", "auth"},
			UserID: &bob.ID, CreatedByID: alice.ID,
		},
		{
			ProjectID: mobile.ID, Title: "Develop Task API",
			Description: ptr("Create procedures for task CRUD."),
			Priority:    model.TaskPriorityLow, Status: model.TaskStatusTodo,
			Deadline: date(2025, time.May, 1), Tags: []string{"api", "rpc"},
			UserID: &bob.ID, CreatedByID: bob.ID,
		},
	}
	for _, t := range tasks {
		if _, err := stores.Tasks.Create(ctx, t); err != nil {
			return fmt.Errorf("failed to create task %q: %w", t.Title, err)
		}
	}

	logger.Info("Seed: demo data created",
		"users", len(users),
		"projects", 2,
		"tasks", len(tasks))

	return nil
}

func createUser(ctx context.Context, stores Stores, hasher model.PasswordHasher, d demoUser) (model.User, error) {
	hash, err := hasher.Hash(d.password)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to hash password: %w", err)
	}
	preferences, err := json.Marshal(map[string]string{"theme": d.theme})
	if err != nil {
		return model.User{}, fmt.Errorf("failed to encode preferences: %w", err)
	}

	u, err := stores.Users.Create(ctx, model.User{
		ID:           uuid.New(),
		Email:        d.email,
		Name:         d.name,
		PasswordHash: hash,
		Preferences:  preferences,
	})
	if err != nil {
		return model.User{}, fmt.Errorf("failed to create user %s: %w", d.email, err)
	}

	_, err = stores.Profiles.Upsert(ctx, u.ID, model.ProfilePatch{
		Bio:       ptr(d.bio),
		AvatarURL: ptr(d.avatarURL),
		Location:  ptr(d.location),
	})
	if err != nil {
		return model.User{}, fmt.Errorf("failed to create profile for %s: %w", d.email, err)
	}

	return u, nil
}

func ptr(s string) *string {
	return &s
}

func date(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}
