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

type Project struct {
	projectStore model.ProjectStore
	gate         *Gate
	access       *AccessPolicy
	logger       *logger.Logger
}

func NewProject(
	projectStore model.ProjectStore,
	gate *Gate,
	access *AccessPolicy,
	logger *logger.Logger,
) *Project {
	return &Project{
		projectStore: projectStore,
		gate:         gate,
		access:       access,
		logger:       logger,
	}
}

// Create stores a project owned by the session user. The creator is always a member.
func (s *Project) Create(ctx context.Context, params model.CreateProjectParams) (model.Project, error) {
	session, err := s.gate.Authorize(ctx)
	if err != nil {
		return model.Project{}, err
	}

	params.Name = strings.TrimSpace(params.Name)
	if err := validateStruct(params); err != nil {
		return model.Project{}, err
	}

	memberIDs, err := parseMemberIDs(params.MemberIDs)
	if err != nil {
		return model.Project{}, err
	}
	memberIDs = withMember(memberIDs, session.UserID)

	status := model.ProjectStatusActive
	if params.Status != "" {
		status = model.ProjectStatus(params.Status)
	}

	now := time.Now().UTC()
	project := model.Project{
		ID:          uuid.New(),
		Name:        params.Name,
		Description: params.Description,
		Status:      status,
		CreatedByID: session.UserID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	s.logger.Debug("Project service: creating project",
		"user_id", session.UserID,
		"members", len(memberIDs))

	created, err := s.projectStore.Create(ctx, project, memberIDs)
	if err != nil {
		s.logger.Error("Project service: failed to create project",
			"user_id", session.UserID,
			"error", err.Error())
		return model.Project{}, storeError(err, "project", "create")
	}

	s.logger.Info("Project service: project created",
		"user_id", session.UserID,
		"project_id", created.ID)

	return created, nil
}

// GetAll returns the projects the session user created or is a member of.
func (s *Project) GetAll(ctx context.Context) ([]model.Project, error) {
	session, err := s.gate.Authorize(ctx)
	if err != nil {
		return nil, err
	}

	projects, err := s.projectStore.ListForUser(ctx, session.UserID)
	if err != nil {
		s.logger.Error("Project service: failed to list projects",
			"user_id", session.UserID,
			"error", err.Error())
		return nil, storeError(err, "projects", "list")
	}

	visible := make([]model.Project, 0, len(projects))
	for _, p := range projects {
		if p.VisibleTo(session.UserID) {
			visible = append(visible, p)
		}
	}

	return visible, nil
}

// GetByID returns a single project with its members and tasks.
func (s *Project) GetByID(ctx context.Context, params model.GetProjectParams) (model.Project, error) {
	session, err := s.gate.Authorize(ctx)
	if err != nil {
		return model.Project{}, err
	}

	if err := validateStruct(params); err != nil {
		return model.Project{}, err
	}
	id, err := parseID("id", params.ID)
	if err != nil {
		return model.Project{}, err
	}

	if err := s.access.RequireMember(ctx, session.UserID, id); err != nil {
		return model.Project{}, err
	}

	project, err := s.projectStore.GetByID(ctx, id)
	if err != nil {
		return model.Project{}, storeError(err, "project", "get")
	}

	return project, nil
}

// Update patches the project. A present memberIds replaces the member set.
func (s *Project) Update(ctx context.Context, params model.UpdateProjectParams) (model.Project, error) {
	session, err := s.gate.Authorize(ctx)
	if err != nil {
		return model.Project{}, err
	}

	params.Name = trimPtr(params.Name)
	if params.Name != nil && *params.Name == "" {
		return model.Project{}, apierror.NewErrInvalidInput("name", "is required")
	}
	if err := validateStruct(params); err != nil {
		return model.Project{}, err
	}

	id, err := parseID("id", params.ID)
	if err != nil {
		return model.Project{}, err
	}

	patch := model.ProjectPatch{
		Name:        params.Name,
		Description: params.Description,
	}
	if params.Status != nil {
		status := model.ProjectStatus(*params.Status)
		patch.Status = &status
	}
	if params.MemberIDs != nil {
		patch.MemberIDs, err = parseMemberIDs(params.MemberIDs)
		if err != nil {
			return model.Project{}, err
		}
	}

	if err := s.access.RequireMember(ctx, session.UserID, id); err != nil {
		return model.Project{}, err
	}

	updated, err := s.projectStore.Update(ctx, id, patch)
	if err != nil {
		s.logger.Error("Project service: failed to update project",
			"project_id", id,
			"error", err.Error())
		return model.Project{}, storeError(err, "project", "update")
	}

	s.logger.Info("Project service: project updated",
		"user_id", session.UserID,
		"project_id", id)

	return updated, nil
}

// Delete removes the project together with its tasks and memberships.
func (s *Project) Delete(ctx context.Context, params model.DeleteProjectParams) (model.Project, error) {
	session, err := s.gate.Authorize(ctx)
	if err != nil {
		return model.Project{}, err
	}

	if err := validateStruct(params); err != nil {
		return model.Project{}, err
	}
	id, err := parseID("id", params.ID)
	if err != nil {
		return model.Project{}, err
	}

	if err := s.access.RequireOwner(ctx, session.UserID, id); err != nil {
		return model.Project{}, err
	}

	deleted, err := s.projectStore.Delete(ctx, id)
	if err != nil {
		s.logger.Error("Project service: failed to delete project",
			"project_id", id,
			"error", err.Error())
		return model.Project{}, storeError(err, "project", "delete")
	}

	s.logger.Info("Project service: project deleted",
		"user_id", session.UserID,
		"project_id", id)

	return deleted, nil
}

// withMember puts id first in ids unless it is already present.
func withMember(ids []uuid.UUID, id uuid.UUID) []uuid.UUID {
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}
	return append([]uuid.UUID{id}, ids...)
}
