package handler

import (
	"bufio"
	"context"
	"errors"
	"net/http"

	"github.com/dtroode/taskflow-server/internal/apierror"
	"github.com/dtroode/taskflow-server/internal/logger"
	"github.com/dtroode/taskflow-server/internal/model"
)

const avatarFormField = "avatar"

// ProfileService defines profile procedures.
type ProfileService interface {
	Get(ctx context.Context) (*model.Profile, error)
	Update(ctx context.Context, params model.UpdateProfileParams) (model.Profile, error)
	UploadAvatar(ctx context.Context, upload model.AvatarUpload) (model.Profile, error)
}

// Profile handles profile procedures.
type Profile struct {
	profileService ProfileService
	logger         *logger.Logger
}

// NewProfile creates a new Profile handler.
func NewProfile(profileService ProfileService, logger *logger.Logger) *Profile {
	return &Profile{profileService: profileService, logger: logger}
}

// Get handles profile.get. The result is null when the user has no profile yet.
func (h *Profile) Get(w http.ResponseWriter, r *http.Request) {
	profile, err := h.profileService.Get(r.Context())
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}
	writeResult(w, profile)
}

// Update handles profile.update.
func (h *Profile) Update(w http.ResponseWriter, r *http.Request) {
	serve(w, r, h.logger, h.profileService.Update)
}

// UploadAvatar handles profile.uploadAvatar sent as multipart/form-data.
func (h *Profile) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, model.MaxAvatarSize+maxBodyBytes)
	if err := r.ParseMultipartForm(maxBodyBytes); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			handleError(w, r, h.logger, apierror.NewErrInvalidInput(avatarFormField, "must be at most 2 MiB"))
			return
		}
		handleError(w, r, h.logger, apierror.New(apierror.InvalidInput, "malformed multipart body", err))
		return
	}
	defer func() {
		_ = r.MultipartForm.RemoveAll()
	}()

	file, header, err := r.FormFile(avatarFormField)
	if err != nil {
		handleError(w, r, h.logger, apierror.NewErrInvalidInput(avatarFormField, "is required"))
		return
	}
	defer file.Close()

	reader := bufio.NewReaderSize(file, 512)
	head, _ := reader.Peek(512)

	profile, err := h.profileService.UploadAvatar(r.Context(), model.AvatarUpload{
		Reader:      reader,
		ContentType: http.DetectContentType(head),
		Size:        header.Size,
		Filename:    header.Filename,
	})
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	writeResult(w, profile)
}
