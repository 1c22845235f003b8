package handler

import (
	"context"
	"net/http"

	"github.com/dtroode/taskflow-server/internal/logger"
	"github.com/dtroode/taskflow-server/internal/model"
)

// UserService defines user procedures.
type UserService interface {
	GetProjectMembers(ctx context.Context, params model.ProjectScopeParams) ([]model.UserSummary, error)
}

// User handles user procedures.
type User struct {
	userService UserService
	logger      *logger.Logger
}

// NewUser creates a new User handler.
func NewUser(userService UserService, logger *logger.Logger) *User {
	return &User{userService: userService, logger: logger}
}

// GetProjectMembers handles user.getProjectMembers.
func (h *User) GetProjectMembers(w http.ResponseWriter, r *http.Request) {
	serve(w, r, h.logger, h.userService.GetProjectMembers)
}
