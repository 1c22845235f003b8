package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/taskflow-server/internal/apierror"
	"github.com/dtroode/taskflow-server/internal/logger"
	"github.com/dtroode/taskflow-server/internal/model"
)

// Auth verifies credentials and opens sessions.
type Auth struct {
	userStore model.UserStore
	hasher    model.PasswordHasher
	sessions  *SessionManager
	logger    *logger.Logger
}

func NewAuth(
	userStore model.UserStore,
	hasher model.PasswordHasher,
	sessions *SessionManager,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore: userStore,
		hasher:    hasher,
		sessions:  sessions,
		logger:    logger,
	}
}

// VerifyCredentials checks an email/password pair against the stored hash. It never writes.
func (a *Auth) VerifyCredentials(ctx context.Context, email, pass string) (model.IdentityClaim, error) {
	email = normalizeEmail(email)
	if email == "" || pass == "" {
		return model.IdentityClaim{}, apierror.New(apierror.InvalidInput, "missing credentials", nil)
	}

	user, err := a.userStore.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		a.logger.Info("Auth service: no user for email",
			"email", email)
		return model.IdentityClaim{}, apierror.NewErrNotFound("user", err)
	}
	if err != nil {
		a.logger.Error("Auth service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return model.IdentityClaim{}, fmt.Errorf("failed to get user by email: %w", err)
	}
	if user.PasswordHash == "" {
		return model.IdentityClaim{}, apierror.NewErrNotFound("user", nil)
	}

	err = a.hasher.Verify(user.PasswordHash, pass)
	if errors.Is(err, model.ErrPasswordMismatch) {
		a.logger.Info("Auth service: password mismatch",
			"user_id", user.ID)
		return model.IdentityClaim{}, apierror.NewErrInvalidCredential()
	}
	if err != nil {
		a.logger.Error("Auth service: failed to verify password",
			"user_id", user.ID,
			"error", err.Error())
		return model.IdentityClaim{}, fmt.Errorf("failed to verify password: %w", err)
	}

	return user.Claim(), nil
}

// SignIn verifies credentials and issues a session token.
func (a *Auth) SignIn(ctx context.Context, params model.SignInParams) (model.SignInResult, error) {
	a.logger.Debug("Auth service: processing sign in",
		"email", params.Email)

	claim, err := a.VerifyCredentials(ctx, params.Email, params.Password)
	if err != nil {
		return model.SignInResult{}, err
	}

	result, err := a.openSession(claim)
	if err != nil {
		return model.SignInResult{}, err
	}

	a.logger.Info("Auth service: sign in completed",
		"user_id", claim.ID)

	return result, nil
}

// SignUp registers a credential user and signs them in.
func (a *Auth) SignUp(ctx context.Context, params model.SignUpParams) (model.SignInResult, error) {
	params.Email = normalizeEmail(params.Email)
	params.Name = strings.TrimSpace(params.Name)

	a.logger.Debug("Auth service: processing sign up",
		"email", params.Email)

	if err := validateStruct(params); err != nil {
		return model.SignInResult{}, err
	}

	_, err := a.userStore.GetByEmail(ctx, params.Email)
	if err == nil {
		a.logger.Info("Auth service: email already taken",
			"email", params.Email)
		return model.SignInResult{}, apierror.NewErrConflict("email is already taken", nil)
	}
	if !errors.Is(err, model.ErrNotFound) {
		a.logger.Error("Auth service: failed to get user by email",
			"email", params.Email,
			"error", err.Error())
		return model.SignInResult{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	hash, err := a.hasher.Hash(params.Password)
	if err != nil {
		return model.SignInResult{}, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user, err := a.userStore.Create(ctx, model.User{
		ID:           uuid.New(),
		Email:        params.Email,
		Name:         params.Name,
		PasswordHash: hash,
		Preferences:  json.RawMessage(`{}`),
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if errors.Is(err, model.ErrConflict) {
		return model.SignInResult{}, apierror.NewErrConflict("email is already taken", err)
	}
	if err != nil {
		a.logger.Error("Auth service: failed to create user",
			"email", params.Email,
			"error", err.Error())
		return model.SignInResult{}, fmt.Errorf("failed to create user: %w", err)
	}

	result, err := a.openSession(user.Claim())
	if err != nil {
		return model.SignInResult{}, err
	}

	a.logger.Info("Auth service: sign up completed",
		"user_id", user.ID)

	return result, nil
}

func (a *Auth) openSession(claim model.IdentityClaim) (model.SignInResult, error) {
	token, expiresAt, err := a.sessions.Issue(claim)
	if err != nil {
		return model.SignInResult{}, err
	}
	return model.SignInResult{Token: token, ExpiresAt: expiresAt, User: claim}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
