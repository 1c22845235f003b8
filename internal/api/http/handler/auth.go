package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/dtroode/taskflow-server/internal/apierror"
	"github.com/dtroode/taskflow-server/internal/logger"
	"github.com/dtroode/taskflow-server/internal/model"
)

// AuthService defines sign in and sign up operations.
type AuthService interface {
	SignIn(ctx context.Context, params model.SignInParams) (model.SignInResult, error)
	SignUp(ctx context.Context, params model.SignUpParams) (model.SignInResult, error)
}

// CookieConfig controls the session cookie written on sign in.
type CookieConfig struct {
	Name   string
	Secure bool
}

// Auth handles HTTP endpoints for authentication.
type Auth struct {
	authService    AuthService
	contextManager model.ContextManager
	cookie         CookieConfig
	logger         *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, contextManager model.ContextManager, cookie CookieConfig, logger *logger.Logger) *Auth {
	return &Auth{
		authService:    authService,
		contextManager: contextManager,
		cookie:         cookie,
		logger:         logger,
	}
}

// SignIn verifies credentials and opens a session.
func (h *Auth) SignIn(w http.ResponseWriter, r *http.Request) {
	var params model.SignInParams
	if err := decodeJSON(w, r, &params); err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	h.logger.Debug("Auth handler: processing sign in request",
		"email", params.Email)

	result, err := h.authService.SignIn(r.Context(), params)
	if err != nil {
		h.logger.Info("Auth handler: sign in failed",
			"email", params.Email,
			"error", err.Error())
		handleError(w, r, h.logger, err)
		return
	}

	h.setSessionCookie(w, result.Token, result.ExpiresAt)
	writeResult(w, result)
}

// SignUp registers a user and opens a session.
func (h *Auth) SignUp(w http.ResponseWriter, r *http.Request) {
	var params model.SignUpParams
	if err := decodeJSON(w, r, &params); err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	h.logger.Debug("Auth handler: processing sign up request",
		"email", params.Email)

	result, err := h.authService.SignUp(r.Context(), params)
	if err != nil {
		h.logger.Info("Auth handler: sign up failed",
			"email", params.Email,
			"error", err.Error())
		handleError(w, r, h.logger, err)
		return
	}

	h.setSessionCookie(w, result.Token, result.ExpiresAt)
	writeResult(w, result)
}

// SignOut clears the session cookie. The token itself stays valid until it expires.
func (h *Auth) SignOut(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	writeResult(w, nil)
}

// Session returns the session resolved for the request.
func (h *Auth) Session(w http.ResponseWriter, r *http.Request) {
	session, ok := h.contextManager.GetSessionFromContext(r.Context())
	if !ok {
		apierror.NewErrUnauthorized().Write(w)
		return
	}
	writeResult(w, session)
}

func (h *Auth) setSessionCookie(w http.ResponseWriter, token string, expiresAt time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie.Name,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}
