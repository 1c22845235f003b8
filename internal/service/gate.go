package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/dtroode/taskflow-server/internal/apierror"
	"github.com/dtroode/taskflow-server/internal/model"
)

// Gate is the precondition every procedure passes before touching the store.
type Gate struct {
	contextManager model.ContextManager
}

func NewGate(contextManager model.ContextManager) *Gate {
	return &Gate{contextManager: contextManager}
}

// Authorize returns the session attached to ctx or an Unauthorized error.
func (g *Gate) Authorize(ctx context.Context) (model.Session, error) {
	session, ok := g.contextManager.GetSessionFromContext(ctx)
	if !ok || session.UserID == uuid.Nil {
		return model.Session{}, apierror.NewErrUnauthorized()
	}
	return session, nil
}

// AccessPolicy decides row-level access to projects and their tasks.
// In permissive mode any authenticated user may act on any project.
type AccessPolicy struct {
	projects   model.ProjectStore
	permissive bool
}

func NewAccessPolicy(projects model.ProjectStore, permissive bool) *AccessPolicy {
	return &AccessPolicy{projects: projects, permissive: permissive}
}

// RequireMember fails with Forbidden unless the user created or joined the project.
func (p *AccessPolicy) RequireMember(ctx context.Context, userID, projectID uuid.UUID) error {
	if p.permissive {
		return nil
	}

	ok, err := p.projects.IsMember(ctx, projectID, userID)
	if err != nil {
		return storeError(err, "project", "check membership of")
	}
	if !ok {
		return apierror.NewErrForbidden("project")
	}
	return nil
}

// RequireOwner fails with Forbidden unless the user created the project.
func (p *AccessPolicy) RequireOwner(ctx context.Context, userID, projectID uuid.UUID) error {
	if p.permissive {
		return nil
	}

	project, err := p.projects.GetByID(ctx, projectID)
	if err != nil {
		return storeError(err, "project", "get")
	}
	if project.CreatedByID != userID {
		return apierror.NewErrForbidden("project")
	}
	return nil
}
