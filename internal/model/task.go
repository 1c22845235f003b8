package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TaskStore defines persistence operations for tasks.
type TaskStore interface {
	Create(ctx context.Context, task Task) (Task, error)
	GetByID(ctx context.Context, id uuid.UUID) (Task, error)
	// ListByProject returns the project's tasks with assignee and creator summaries.
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]Task, error)
	Update(ctx context.Context, id uuid.UUID, patch TaskPatch) (Task, error)
	Delete(ctx context.Context, id uuid.UUID) (Task, error)
}

// TaskPriority enumerates task priorities.
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "LOW"
	TaskPriorityMedium TaskPriority = "MEDIUM"
	TaskPriorityHigh   TaskPriority = "HIGH"
)

// TaskStatus enumerates task workflow states.
type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "TODO"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusDone       TaskStatus = "DONE"
)

// Task is a unit of work inside exactly one project.
type Task struct {
	ID          uuid.UUID    `json:"id"`
	ProjectID   uuid.UUID    `json:"projectId"`
	Title       string       `json:"title"`
	Description *string      `json:"description"`
	Priority    TaskPriority `json:"priority"`
	Status      TaskStatus   `json:"status"`
	Deadline    *time.Time   `json:"deadline"`
	Tags        []string     `json:"tags"`
	UserID      *uuid.UUID   `json:"userId"`
	CreatedByID uuid.UUID    `json:"createdById"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`

	// Populated by ListByProject only.
	AssignedTo *UserSummary `json:"assignedTo,omitempty"`
	CreatedBy  *UserSummary `json:"createdBy,omitempty"`
}

// TaskPatch lists the task fields to write. Nil pointers keep the stored value;
// Deadline and UserID distinguish "keep" from "clear".
type TaskPatch struct {
	Title       *string
	Description *string
	Priority    *TaskPriority
	Status      *TaskStatus
	Tags        []string
	Deadline    Optional[time.Time]
	UserID      Optional[uuid.UUID]
}
