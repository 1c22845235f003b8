package handler

import (
	"context"
	"net/http"

	"github.com/dtroode/taskflow-server/internal/logger"
	"github.com/dtroode/taskflow-server/internal/model"
)

// ProjectService defines project procedures.
type ProjectService interface {
	Create(ctx context.Context, params model.CreateProjectParams) (model.Project, error)
	GetAll(ctx context.Context) ([]model.Project, error)
	GetByID(ctx context.Context, params model.GetProjectParams) (model.Project, error)
	Update(ctx context.Context, params model.UpdateProjectParams) (model.Project, error)
	Delete(ctx context.Context, params model.DeleteProjectParams) (model.Project, error)
}

// Project handles project procedures.
type Project struct {
	projectService ProjectService
	logger         *logger.Logger
}

// NewProject creates a new Project handler.
func NewProject(projectService ProjectService, logger *logger.Logger) *Project {
	return &Project{projectService: projectService, logger: logger}
}

// Create handles project.create.
func (h *Project) Create(w http.ResponseWriter, r *http.Request) {
	serve(w, r, h.logger, h.projectService.Create)
}

// GetAll handles project.getAll.
func (h *Project) GetAll(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projectService.GetAll(r.Context())
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}
	writeResult(w, projects)
}

// GetByID handles project.getById.
func (h *Project) GetByID(w http.ResponseWriter, r *http.Request) {
	serve(w, r, h.logger, h.projectService.GetByID)
}

// Update handles project.update.
func (h *Project) Update(w http.ResponseWriter, r *http.Request) {
	serve(w, r, h.logger, h.projectService.Update)
}

// Delete handles project.delete.
func (h *Project) Delete(w http.ResponseWriter, r *http.Request) {
	serve(w, r, h.logger, h.projectService.Delete)
}

// serve decodes the procedure input, calls op and writes its result.
func serve[P, R any](w http.ResponseWriter, r *http.Request, logger *logger.Logger, op func(context.Context, P) (R, error)) {
	var params P
	if err := decodeJSON(w, r, &params); err != nil {
		handleError(w, r, logger, err)
		return
	}

	result, err := op(r.Context(), params)
	if err != nil {
		handleError(w, r, logger, err)
		return
	}

	writeResult(w, result)
}
