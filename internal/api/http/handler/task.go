package handler

import (
	"context"
	"net/http"

	"github.com/dtroode/taskflow-server/internal/logger"
	"github.com/dtroode/taskflow-server/internal/model"
)

// TaskService defines task procedures.
type TaskService interface {
	GetByProject(ctx context.Context, params model.ProjectScopeParams) ([]model.Task, error)
	Create(ctx context.Context, params model.CreateTaskParams) (model.Task, error)
	Update(ctx context.Context, params model.UpdateTaskParams) (model.Task, error)
	Delete(ctx context.Context, params model.DeleteTaskParams) (model.Task, error)
}

// Task handles task procedures.
type Task struct {
	taskService TaskService
	logger      *logger.Logger
}

// NewTask creates a new Task handler.
func NewTask(taskService TaskService, logger *logger.Logger) *Task {
	return &Task{taskService: taskService, logger: logger}
}

// GetByProject handles task.getByProject.
func (h *Task) GetByProject(w http.ResponseWriter, r *http.Request) {
	serve(w, r, h.logger, h.taskService.GetByProject)
}

// Create handles task.create.
func (h *Task) Create(w http.ResponseWriter, r *http.Request) {
	serve(w, r, h.logger, h.taskService.Create)
}

// Update handles task.update.
func (h *Task) Update(w http.ResponseWriter, r *http.Request) {
	serve(w, r, h.logger, h.taskService.Update)
}

// Delete handles task.delete.
func (h *Task) Delete(w http.ResponseWriter, r *http.Request) {
	serve(w, r, h.logger, h.taskService.Delete)
}
