package service

import (
	"context"
	"errors"
	"fmt"
	"path"

	"github.com/google/uuid"

	"github.com/dtroode/taskflow-server/internal/apierror"
	"github.com/dtroode/taskflow-server/internal/logger"
	"github.com/dtroode/taskflow-server/internal/model"
)

var avatarExtensions = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

type Profile struct {
	profileStore model.ProfileStore
	storage      model.Storage
	gate         *Gate
	logger       *logger.Logger
}

// NewProfile creates the profile service. storage may be nil, which disables avatar uploads.
func NewProfile(
	profileStore model.ProfileStore,
	storage model.Storage,
	gate *Gate,
	logger *logger.Logger,
) *Profile {
	return &Profile{
		profileStore: profileStore,
		storage:      storage,
		gate:         gate,
		logger:       logger,
	}
}

// Get returns the session user's profile, or nil when none exists.
func (s *Profile) Get(ctx context.Context) (*model.Profile, error) {
	session, err := s.gate.Authorize(ctx)
	if err != nil {
		return nil, err
	}

	profile, err := s.profileStore.GetByUserID(ctx, session.UserID)
	if errors.Is(err, model.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		s.logger.Error("Profile service: failed to get profile",
			"user_id", session.UserID,
			"error", err.Error())
		return nil, storeError(err, "profile", "get")
	}

	return &profile, nil
}

// Update creates the session user's profile or overwrites the fields present in params.
func (s *Profile) Update(ctx context.Context, params model.UpdateProfileParams) (model.Profile, error) {
	session, err := s.gate.Authorize(ctx)
	if err != nil {
		return model.Profile{}, err
	}

	params.AvatarURL = trimPtr(params.AvatarURL)
	if err := validateStruct(params); err != nil {
		return model.Profile{}, err
	}

	return s.upsert(ctx, session.UserID, model.ProfilePatch{
		Bio:       params.Bio,
		AvatarURL: params.AvatarURL,
		Location:  params.Location,
	})
}

// UploadAvatar stores the picture and points the profile's avatarUrl at it.
func (s *Profile) UploadAvatar(ctx context.Context, upload model.AvatarUpload) (model.Profile, error) {
	session, err := s.gate.Authorize(ctx)
	if err != nil {
		return model.Profile{}, err
	}

	if s.storage == nil {
		return model.Profile{}, apierror.NewErrUnavailable("avatar upload")
	}
	if upload.Reader == nil || upload.Size <= 0 {
		return model.Profile{}, apierror.NewErrInvalidInput("avatar", "is required")
	}
	if upload.Size > model.MaxAvatarSize {
		return model.Profile{}, apierror.NewErrInvalidInput("avatar", "must be at most 2 MiB")
	}
	ext, ok := avatarExtensions[upload.ContentType]
	if !ok {
		return model.Profile{}, apierror.NewErrInvalidInput("avatar", "must be a PNG, JPEG, GIF or WebP image")
	}

	key := path.Join("avatars", session.UserID.String(), uuid.NewString()+ext)
	if err := s.storage.Upload(ctx, key, upload.Reader, upload.Size, upload.ContentType); err != nil {
		s.logger.Error("Profile service: failed to upload avatar",
			"user_id", session.UserID,
			"key", key,
			"error", err.Error())
		return model.Profile{}, fmt.Errorf("failed to upload avatar: %w", err)
	}

	url := s.storage.URL(key)
	profile, err := s.upsert(ctx, session.UserID, model.ProfilePatch{AvatarURL: &url})
	if err != nil {
		if delErr := s.storage.Delete(ctx, key); delErr != nil {
			s.logger.Warn("Profile service: failed to remove orphaned avatar",
				"key", key,
				"error", delErr.Error())
		}
		return model.Profile{}, err
	}

	return profile, nil
}

func (s *Profile) upsert(ctx context.Context, userID uuid.UUID, patch model.ProfilePatch) (model.Profile, error) {
	profile, err := s.profileStore.Upsert(ctx, userID, patch)
	if err != nil {
		s.logger.Error("Profile service: failed to upsert profile",
			"user_id", userID,
			"error", err.Error())
		return model.Profile{}, storeError(err, "profile", "update")
	}

	s.logger.Info("Profile service: profile updated",
		"user_id", userID)

	return profile, nil
}
