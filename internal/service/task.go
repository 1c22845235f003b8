package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/taskflow-server/internal/apierror"
	"github.com/dtroode/taskflow-server/internal/logger"
	"github.com/dtroode/taskflow-server/internal/model"
)

type Task struct {
	taskStore model.TaskStore
	gate      *Gate
	access    *AccessPolicy
	logger    *logger.Logger
}

func NewTask(
	taskStore model.TaskStore,
	gate *Gate,
	access *AccessPolicy,
	logger *logger.Logger,
) *Task {
	return &Task{
		taskStore: taskStore,
		gate:      gate,
		access:    access,
		logger:    logger,
	}
}

// GetByProject lists the project's tasks with assignee and creator summaries.
func (s *Task) GetByProject(ctx context.Context, params model.ProjectScopeParams) ([]model.Task, error) {
	session, err := s.gate.Authorize(ctx)
	if err != nil {
		return nil, err
	}

	if err := validateStruct(params); err != nil {
		return nil, err
	}
	projectID, err := parseID("projectId", params.ProjectID)
	if err != nil {
		return nil, err
	}

	if err := s.access.RequireMember(ctx, session.UserID, projectID); err != nil {
		return nil, err
	}

	tasks, err := s.taskStore.ListByProject(ctx, projectID)
	if err != nil {
		s.logger.Error("Task service: failed to list tasks",
			"project_id", projectID,
			"error", err.Error())
		return nil, storeError(err, "tasks", "list")
	}

	return tasks, nil
}

// Create stores a task created by the session user.
func (s *Task) Create(ctx context.Context, params model.CreateTaskParams) (model.Task, error) {
	session, err := s.gate.Authorize(ctx)
	if err != nil {
		return model.Task{}, err
	}

	params.Title = strings.TrimSpace(params.Title)
	if err := validateStruct(params); err != nil {
		return model.Task{}, err
	}

	projectID, err := parseID("projectId", params.ProjectID)
	if err != nil {
		return model.Task{}, err
	}
	deadline, err := parseOptionalDeadline(params.Deadline)
	if err != nil {
		return model.Task{}, err
	}
	assignee, err := parseOptionalID("userId", params.UserID)
	if err != nil {
		return model.Task{}, err
	}

	if err := s.access.RequireMember(ctx, session.UserID, projectID); err != nil {
		return model.Task{}, err
	}

	now := time.Now().UTC()
	task := model.Task{
		ID:          uuid.New(),
		ProjectID:   projectID,
		Title:       params.Title,
		Description: params.Description,
		Priority:    model.TaskPriority(params.Priority),
		Status:      model.TaskStatus(params.Status),
		Deadline:    deadline,
		Tags:        normalizeTags(params.Tags),
		UserID:      assignee,
		CreatedByID: session.UserID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	s.logger.Debug("Task service: creating task",
		"user_id", session.UserID,
		"project_id", projectID)

	created, err := s.taskStore.Create(ctx, task)
	if err != nil {
		s.logger.Error("Task service: failed to create task",
			"project_id", projectID,
			"error", err.Error())
		return model.Task{}, storeError(err, "task", "create")
	}

	s.logger.Info("Task service: task created",
		"user_id", session.UserID,
		"task_id", created.ID)

	return created, nil
}

// Update patches the task. Only fields present in params are written.
func (s *Task) Update(ctx context.Context, params model.UpdateTaskParams) (model.Task, error) {
	session, err := s.gate.Authorize(ctx)
	if err != nil {
		return model.Task{}, err
	}

	params.Title = trimPtr(params.Title)
	if params.Title != nil && *params.Title == "" {
		return model.Task{}, apierror.NewErrInvalidInput("title", "is required")
	}
	if err := validateStruct(params); err != nil {
		return model.Task{}, err
	}

	id, err := parseID("id", params.ID)
	if err != nil {
		return model.Task{}, err
	}

	patch := model.TaskPatch{
		Title:       params.Title,
		Description: params.Description,
	}
	if params.Priority != nil {
		priority := model.TaskPriority(*params.Priority)
		patch.Priority = &priority
	}
	if params.Status != nil {
		status := model.TaskStatus(*params.Status)
		patch.Status = &status
	}
	if params.Tags != nil {
		patch.Tags = normalizeTags(params.Tags)
	}
	if params.Deadline.Present() {
		deadline, err := parseOptionalDeadline(params.Deadline.Ptr())
		if err != nil {
			return model.Task{}, err
		}
		patch.Deadline = model.Null[time.Time]()
		if deadline != nil {
			patch.Deadline = model.Some(*deadline)
		}
	}
	if params.UserID.Present() {
		assignee, err := parseOptionalID("userId", params.UserID.Ptr())
		if err != nil {
			return model.Task{}, err
		}
		patch.UserID = model.Null[uuid.UUID]()
		if assignee != nil {
			patch.UserID = model.Some(*assignee)
		}
	}

	if err := s.requireTaskAccess(ctx, session.UserID, id); err != nil {
		return model.Task{}, err
	}

	updated, err := s.taskStore.Update(ctx, id, patch)
	if err != nil {
		s.logger.Error("Task service: failed to update task",
			"task_id", id,
			"error", err.Error())
		return model.Task{}, storeError(err, "task", "update")
	}

	s.logger.Info("Task service: task updated",
		"user_id", session.UserID,
		"task_id", id)

	return updated, nil
}

// Delete removes the task and returns it.
func (s *Task) Delete(ctx context.Context, params model.DeleteTaskParams) (model.Task, error) {
	session, err := s.gate.Authorize(ctx)
	if err != nil {
		return model.Task{}, err
	}

	if err := validateStruct(params); err != nil {
		return model.Task{}, err
	}
	id, err := parseID("id", params.ID)
	if err != nil {
		return model.Task{}, err
	}

	if err := s.requireTaskAccess(ctx, session.UserID, id); err != nil {
		return model.Task{}, err
	}

	deleted, err := s.taskStore.Delete(ctx, id)
	if err != nil {
		s.logger.Error("Task service: failed to delete task",
			"task_id", id,
			"error", err.Error())
		return model.Task{}, storeError(err, "task", "delete")
	}

	s.logger.Info("Task service: task deleted",
		"user_id", session.UserID,
		"task_id", id)

	return deleted, nil
}

func (s *Task) requireTaskAccess(ctx context.Context, userID, taskID uuid.UUID) error {
	if s.access.permissive {
		return nil
	}

	task, err := s.taskStore.GetByID(ctx, taskID)
	if err != nil {
		return storeError(err, "task", "get")
	}
	return s.access.RequireMember(ctx, userID, task.ProjectID)
}
