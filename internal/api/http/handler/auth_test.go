package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	httpctx "github.com/dtroode/taskflow-server/internal/api/http/context"
	"github.com/dtroode/taskflow-server/internal/apierror"
	"github.com/dtroode/taskflow-server/internal/mocks"
	"github.com/dtroode/taskflow-server/internal/model"
	"github.com/dtroode/taskflow-server/internal/testutil"
)

var testCookie = CookieConfig{Name: "session_token"}

func TestAuth_SignIn(t *testing.T) {
	t.Parallel()

	claim := model.IdentityClaim{ID: uuid.New(), Email: "a@example.com", Name: "A"}
	expires := time.Now().Add(time.Hour).Truncate(time.Second)

	tests := []struct {
		name       string
		body       string
		svcResult  model.SignInResult
		svcErr     error
		wantStatus int
		wantCode   string
		wantCookie bool
	}{
		{
			name:       "success",
			body:       `{"email":"a@example.com","password":"password123"}`,
			svcResult:  model.SignInResult{Token: "tok", ExpiresAt: expires, User: claim},
			wantStatus: http.StatusOK,
			wantCookie: true,
		},
		{
			name:       "unknown user",
			body:       `{"email":"x@example.com","password":"password123"}`,
			svcErr:     apierror.NewErrNotFound("user", model.ErrNotFound),
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND",
		},
		{
			name:       "wrong password",
			body:       `{"email":"a@example.com","password":"nope"}`,
			svcErr:     apierror.NewErrInvalidCredential(),
			wantStatus: http.StatusUnauthorized,
			wantCode:   "INVALID_CREDENTIAL",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewAuthService(t)
			svc.On("SignIn", mock.Anything, mock.AnythingOfType("model.SignInParams")).Return(tt.svcResult, tt.svcErr)

			h := NewAuth(svc, httpctx.NewManager(), testCookie, testutil.MakeNoopLogger())
			rec := httptest.NewRecorder()
			h.SignIn(rec, httptest.NewRequest(http.MethodPost, "/auth/signin", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Contains(t, rec.Body.String(), tt.wantCode)
			}

			cookies := rec.Result().Cookies()
			if tt.wantCookie {
				require.Len(t, cookies, 1)
				assert.Equal(t, "session_token", cookies[0].Name)
				assert.Equal(t, "tok", cookies[0].Value)
				assert.True(t, cookies[0].HttpOnly)
				assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)

				var body struct {
					Result model.SignInResult `json:"result"`
				}
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, claim, body.Result.User)
				assert.Equal(t, "tok", body.Result.Token)
			} else {
				assert.Empty(t, cookies)
			}
		})
	}
}

func TestAuth_SignIn_MalformedBody(t *testing.T) {
	t.Parallel()

	svc := mocks.NewAuthService(t)
	h := NewAuth(svc, httpctx.NewManager(), testCookie, testutil.MakeNoopLogger())

	rec := httptest.NewRecorder()
	h.SignIn(rec, httptest.NewRequest(http.MethodPost, "/auth/signin", strings.NewReader(`{"email":`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "SignIn", mock.Anything, mock.Anything)
}

func TestAuth_SignUp(t *testing.T) {
	t.Parallel()

	svc := mocks.NewAuthService(t)
	svc.On("SignUp", mock.Anything, model.SignUpParams{Email: "n@example.com", Name: "N", Password: "password123"}).
		Return(model.SignInResult{Token: "tok", ExpiresAt: time.Now().Add(time.Hour)}, nil)

	h := NewAuth(svc, httpctx.NewManager(), testCookie, testutil.MakeNoopLogger())
	rec := httptest.NewRecorder()
	h.SignUp(rec, httptest.NewRequest(http.MethodPost, "/auth/signup",
		strings.NewReader(`{"email":"n@example.com","name":"N","password":"password123"}`)))

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, rec.Result().Cookies(), 1)
}

func TestAuth_SignOut(t *testing.T) {
	t.Parallel()

	h := NewAuth(mocks.NewAuthService(t), httpctx.NewManager(), testCookie, testutil.MakeNoopLogger())
	rec := httptest.NewRecorder()
	h.SignOut(rec, httptest.NewRequest(http.MethodPost, "/auth/signout", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "", cookies[0].Value)
	assert.True(t, cookies[0].MaxAge < 0)
}

func TestAuth_Session(t *testing.T) {
	t.Parallel()

	cm := httpctx.NewManager()
	h := NewAuth(mocks.NewAuthService(t), cm, testCookie, testutil.MakeNoopLogger())

	t.Run("anonymous", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.Session(rec, httptest.NewRequest(http.MethodGet, "/auth/session", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("authenticated", func(t *testing.T) {
		session := model.Session{UserID: uuid.New(), Email: "a@example.com", Name: "A"}
		req := httptest.NewRequest(http.MethodGet, "/auth/session", nil)
		req = req.WithContext(cm.SetSessionToContext(req.Context(), session))

		rec := httptest.NewRecorder()
		h.Session(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), session.UserID.String())
	})
}
