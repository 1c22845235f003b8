package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ProjectStore defines persistence operations for projects and their members.
type ProjectStore interface {
	// Create stores the project and its member set atomically.
	Create(ctx context.Context, project Project, memberIDs []uuid.UUID) (Project, error)
	GetByID(ctx context.Context, id uuid.UUID) (Project, error)
	// ListForUser returns projects the user created or is a member of, with tasks and members.
	ListForUser(ctx context.Context, userID uuid.UUID) ([]Project, error)
	// Update applies the patch; a non-nil MemberIDs replaces the member set.
	Update(ctx context.Context, id uuid.UUID, patch ProjectPatch) (Project, error)
	Delete(ctx context.Context, id uuid.UUID) (Project, error)
	IsMember(ctx context.Context, projectID, userID uuid.UUID) (bool, error)
}

// ProjectStatus enumerates project lifecycle states.
type ProjectStatus string

const (
	ProjectStatusActive    ProjectStatus = "ACTIVE"
	ProjectStatusCompleted ProjectStatus = "COMPLETED"
	ProjectStatusArchived  ProjectStatus = "ARCHIVED"
)

// Project is a collection of tasks shared between its members.
type Project struct {
	ID          uuid.UUID     `json:"id"`
	Name        string        `json:"name"`
	Description *string       `json:"description"`
	Status      ProjectStatus `json:"status"`
	CreatedByID uuid.UUID     `json:"createdById"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`

	// Populated by ListForUser and GetByID only.
	Members []UserSummary `json:"members,omitempty"`
	Tasks   []Task        `json:"tasks,omitempty"`
}

// VisibleTo reports whether the user created the project or is one of its loaded members.
func (p Project) VisibleTo(userID uuid.UUID) bool {
	if p.CreatedByID == userID {
		return true
	}
	for _, m := range p.Members {
		if m.ID == userID {
			return true
		}
	}
	return false
}

// ProjectPatch lists the project fields to write. Nil fields keep their stored value.
type ProjectPatch struct {
	Name        *string
	Description *string
	Status      *ProjectStatus
	MemberIDs   []uuid.UUID
}
