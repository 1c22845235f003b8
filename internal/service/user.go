package service

import (
	"context"

	"github.com/dtroode/taskflow-server/internal/logger"
	"github.com/dtroode/taskflow-server/internal/model"
)

type User struct {
	userStore model.UserStore
	gate      *Gate
	access    *AccessPolicy
	logger    *logger.Logger
}

func NewUser(userStore model.UserStore, gate *Gate, access *AccessPolicy, logger *logger.Logger) *User {
	return &User{
		userStore: userStore,
		gate:      gate,
		access:    access,
		logger:    logger,
	}
}

// GetProjectMembers returns id and name of every member of the project.
func (s *User) GetProjectMembers(ctx context.Context, params model.ProjectScopeParams) ([]model.UserSummary, error) {
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

	members, err := s.userStore.ListByProject(ctx, projectID)
	if err != nil {
		s.logger.Error("User service: failed to list project members",
			"project_id", projectID,
			"error", err.Error())
		return nil, storeError(err, "project members", "list")
	}

	return members, nil
}
