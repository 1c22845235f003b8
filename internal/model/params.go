package model

import (
	"io"
	"time"
)

// SignInParams is the credential pair accepted at the authentication boundary.
type SignInParams struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignUpParams registers a new credential user.
type SignUpParams struct {
	Email    string `json:"email" validate:"required,email,max=254"`
	Name     string `json:"name" validate:"required,max=100"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// SignInResult is returned by a successful sign-in or sign-up.
type SignInResult struct {
	Token     string        `json:"token"`
	ExpiresAt time.Time     `json:"expiresAt"`
	User      IdentityClaim `json:"user"`
}

// CreateProjectParams is the input of project.create.
type CreateProjectParams struct {
	Name        string   `json:"name" validate:"required,max=200"`
	Description *string  `json:"description" validate:"omitempty,max=2000"`
	Status      string   `json:"status" validate:"omitempty,oneof=ACTIVE COMPLETED ARCHIVED"`
	MemberIDs   []string `json:"memberIds" validate:"omitempty,dive,uuid"`
}

// GetProjectParams is the input of project.getById.
type GetProjectParams struct {
	ID string `json:"id" validate:"required,uuid"`
}

// UpdateProjectParams is the input of project.update. Absent fields are left unchanged.
type UpdateProjectParams struct {
	ID          string   `json:"id" validate:"required,uuid"`
	Name        *string  `json:"name" validate:"omitempty,max=200"`
	Description *string  `json:"description" validate:"omitempty,max=2000"`
	Status      *string  `json:"status" validate:"omitempty,oneof=ACTIVE COMPLETED ARCHIVED"`
	MemberIDs   []string `json:"memberIds" validate:"omitempty,dive,uuid"`
}

// DeleteProjectParams is the input of project.delete.
type DeleteProjectParams struct {
	ID string `json:"id" validate:"required,uuid"`
}

// ProjectScopeParams addresses a project by id for task.getByProject and user.getProjectMembers.
type ProjectScopeParams struct {
	ProjectID string `json:"projectId" validate:"required,uuid"`
}

// CreateTaskParams is the input of task.create.
type CreateTaskParams struct {
	ProjectID   string   `json:"projectId" validate:"required,uuid"`
	Title       string   `json:"title" validate:"required,max=200"`
	Description *string  `json:"description" validate:"omitempty,max=5000"`
	Priority    string   `json:"priority" validate:"required,oneof=LOW MEDIUM HIGH"`
	Status      string   `json:"status" validate:"required,oneof=TODO IN_PROGRESS DONE"`
	Deadline    *string  `json:"deadline"`
	Tags        []string `json:"tags"`
	UserID      *string  `json:"userId"`
}

// UpdateTaskParams is the input of task.update. Deadline and UserID accept null to clear.
type UpdateTaskParams struct {
	ID          string           `json:"id" validate:"required,uuid"`
	Title       *string          `json:"title" validate:"omitempty,max=200"`
	Description *string          `json:"description" validate:"omitempty,max=5000"`
	Priority    *string          `json:"priority" validate:"omitempty,oneof=LOW MEDIUM HIGH"`
	Status      *string          `json:"status" validate:"omitempty,oneof=TODO IN_PROGRESS DONE"`
	Deadline    Optional[string] `json:"deadline"`
	Tags        []string         `json:"tags"`
	UserID      Optional[string] `json:"userId"`
}

// DeleteTaskParams is the input of task.delete.
type DeleteTaskParams struct {
	ID string `json:"id" validate:"required,uuid"`
}

// UpdateProfileParams is the input of profile.update.
type UpdateProfileParams struct {
	Bio       *string `json:"bio" validate:"omitempty,max=1000"`
	AvatarURL *string `json:"avatarUrl" validate:"omitempty,url,startswith=http"`
	Location  *string `json:"location" validate:"omitempty,max=200"`
}

// MaxAvatarSize is the largest accepted avatar upload in bytes.
const MaxAvatarSize = 2 << 20

// AvatarUpload is a profile picture received as multipart form data.
type AvatarUpload struct {
	Reader      io.Reader
	ContentType string
	Size        int64
	Filename    string
}
