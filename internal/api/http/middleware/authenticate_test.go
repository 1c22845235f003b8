package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	httpctx "github.com/dtroode/taskflow-server/internal/api/http/context"
	"github.com/dtroode/taskflow-server/internal/mocks"
	"github.com/dtroode/taskflow-server/internal/model"
	"github.com/dtroode/taskflow-server/internal/testutil"
)

func TestAuthenticate_Handle(t *testing.T) {
	t.Parallel()

	session := model.Session{UserID: uuid.New(), Email: "a@example.com", Name: "A"}

	tests := []struct {
		name        string
		header      string
		cookie      string
		wantToken   string
		result      model.SessionResult
		wantSession bool
	}{
		{
			name:      "no credentials",
			wantToken: "",
			result:    model.Unauthenticated(model.ReasonMissing),
		},
		{
			name:        "bearer token",
			header:      "Bearer header-token",
			wantToken:   "header-token",
			result:      model.Authenticated(session),
			wantSession: true,
		},
		{
			name:        "cookie token",
			cookie:      "cookie-token",
			wantToken:   "cookie-token",
			result:      model.Authenticated(session),
			wantSession: true,
		},
		{
			name:        "bearer wins over cookie",
			header:      "Bearer header-token",
			cookie:      "cookie-token",
			wantToken:   "header-token",
			result:      model.Authenticated(session),
			wantSession: true,
		},
		{
			name:      "non bearer scheme ignored",
			header:    "Basic abc",
			wantToken: "",
			result:    model.Unauthenticated(model.ReasonMissing),
		},
		{
			name:      "expired token continues unauthenticated",
			header:    "Bearer expired",
			wantToken: "expired",
			result:    model.Unauthenticated(model.ReasonExpired),
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			resolver := mocks.NewSessionResolver(t)
			resolver.On("Resolve", tt.wantToken).Return(tt.result)

			cm := httpctx.NewManager()
			m := NewAuthenticate(resolver, cm, "session_token", testutil.MakeNoopLogger())

			var called bool
			var gotSession bool
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				_, gotSession = cm.GetSessionFromContext(r.Context())
			})

			req := httptest.NewRequest(http.MethodPost, "/rpc/project.getAll", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "session_token", Value: tt.cookie})
			}

			m.Handle(next).ServeHTTP(httptest.NewRecorder(), req)

			assert.True(t, called)
			assert.Equal(t, tt.wantSession, gotSession)
			resolver.AssertCalled(t, "Resolve", mock.AnythingOfType("string"))
		})
	}
}
