package router

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	httpctx "github.com/dtroode/taskflow-server/internal/api/http/context"
	"github.com/dtroode/taskflow-server/internal/api/http/handler"
	"github.com/dtroode/taskflow-server/internal/apierror"
	"github.com/dtroode/taskflow-server/internal/mocks"
	"github.com/dtroode/taskflow-server/internal/model"
	"github.com/dtroode/taskflow-server/internal/testutil"
)

type routerDeps struct {
	auth     *mocks.AuthService
	projects *mocks.ProjectService
	tasks    *mocks.TaskService
	users    *mocks.UserService
	profiles *mocks.ProfileService
	sessions *mocks.SessionResolver
	limiter  *mocks.RateLimiter
	pinger   *mocks.Pinger
}

func newTestRouter(t *testing.T, withLimiter bool) (http.Handler, routerDeps) {
	t.Helper()

	return newTestRouterWithOptions(t, withLimiter, Options{})
}

func newTestRouterWithOptions(t *testing.T, withLimiter bool, options Options) (http.Handler, routerDeps) {
	t.Helper()

	deps := routerDeps{
		auth:     mocks.NewAuthService(t),
		projects: mocks.NewProjectService(t),
		tasks:    mocks.NewTaskService(t),
		users:    mocks.NewUserService(t),
		profiles: mocks.NewProfileService(t),
		sessions: mocks.NewSessionResolver(t),
		limiter:  mocks.NewRateLimiter(t),
		pinger:   mocks.NewPinger(t),
	}

	var limiter model.RateLimiter
	if withLimiter {
		limiter = deps.limiter
	}

	options.AllowedOrigins = []string{"http://localhost:3000"}
	options.Cookie = handler.CookieConfig{Name: "session_token"}

	r := New(deps.auth, deps.projects, deps.tasks, deps.users, deps.profiles,
		deps.sessions, limiter, deps.pinger, httpctx.NewManager(),
		options, testutil.MakeNoopLogger())

	return r.Register(), deps
}

func TestRouter_Register(t *testing.T) {
	t.Parallel()

	h, _ := newTestRouter(t, false)
	if h == nil {
		t.Fatalf("expected non-nil handler")
	}
}

func TestRouter_ProcedureReceivesSession(t *testing.T) {
	t.Parallel()

	h, deps := newTestRouter(t, false)
	session := model.Session{UserID: uuid.New()}

	deps.sessions.On("Resolve", "tok").Return(model.Authenticated(session))
	deps.projects.On("GetAll", mock.MatchedBy(func(ctx context.Context) bool {
		got, ok := httpctx.NewManager().GetSessionFromContext(ctx)
		return ok && got.UserID == session.UserID
	})).Return([]model.Project{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/rpc/project.getAll", nil)
	req.Header.Set("Authorization", "Bearer tok")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_AnonymousProcedureIsUnauthorized(t *testing.T) {
	t.Parallel()

	h, deps := newTestRouter(t, false)
	deps.sessions.On("Resolve", "").Return(model.Unauthenticated(model.ReasonMissing))
	deps.tasks.On("Delete", mock.Anything, model.DeleteTaskParams{ID: "t1"}).Return(model.Task{}, apierror.NewErrUnauthorized())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/rpc/task.delete", strings.NewReader(`{"id":"t1"}`)))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_UnknownProcedure(t *testing.T) {
	t.Parallel()

	h, deps := newTestRouter(t, false)
	deps.sessions.On("Resolve", mock.Anything).Return(model.Unauthenticated(model.ReasonMissing)).Maybe()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/rpc/project.archiveAll", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_SignInIsRateLimited(t *testing.T) {
	t.Parallel()

	h, deps := newTestRouter(t, true)
	deps.limiter.On("Allow", mock.Anything, mock.AnythingOfType("string")).Return(model.RateLimitResult{Allowed: false, Limit: 10}, nil)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/signin", strings.NewReader(`{}`)))

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	deps.auth.AssertNotCalled(t, "SignIn", mock.Anything, mock.Anything)
}

func TestRouter_SignInLimitIgnoresForwardingHeaders(t *testing.T) {
	t.Parallel()

	h, deps := newTestRouter(t, true)
	deps.limiter.On("Allow", mock.Anything, "auth:192.0.2.10").
		Return(model.RateLimitResult{Allowed: false, Limit: 1}, nil).Times(5)

	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodPost, "/auth/signin", strings.NewReader(`{}`))
		req.RemoteAddr = "192.0.2.10:40000"
		req.Header.Set("X-Forwarded-For", fmt.Sprintf("203.0.113.%d", i))
		req.Header.Set("X-Real-IP", fmt.Sprintf("198.51.100.%d", i))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	}
	deps.auth.AssertNotCalled(t, "SignIn", mock.Anything, mock.Anything)
}

func TestRouter_TrustedProxyKeysOnForwardedClient(t *testing.T) {
	t.Parallel()

	h, deps := newTestRouterWithOptions(t, true, Options{TrustedProxy: true})
	deps.limiter.On("Allow", mock.Anything, "auth:203.0.113.7").
		Return(model.RateLimitResult{Allowed: false, Limit: 1}, nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/auth/signin", strings.NewReader(`{}`))
	req.RemoteAddr = "10.0.0.2:40000"
	req.Header.Set("X-Real-IP", "203.0.113.7")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestRouter_Healthz(t *testing.T) {
	t.Parallel()

	h, deps := newTestRouter(t, false)
	deps.pinger.On("Ping", mock.Anything).Return(nil)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_CORSPreflight(t *testing.T) {
	t.Parallel()

	h, _ := newTestRouter(t, false)

	req := httptest.NewRequest(http.MethodOptions, "/rpc/project.getAll", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
}
