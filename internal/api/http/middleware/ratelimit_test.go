package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/dtroode/taskflow-server/internal/mocks"
	"github.com/dtroode/taskflow-server/internal/model"
	"github.com/dtroode/taskflow-server/internal/testutil"
)

func TestRateLimit_Handle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		result     model.RateLimitResult
		err        error
		wantStatus int
		wantNext   bool
	}{
		{
			name:       "allowed",
			result:     model.RateLimitResult{Allowed: true, Limit: 10, Remaining: 9, ResetAt: time.Now().Add(time.Minute)},
			wantStatus: http.StatusOK,
			wantNext:   true,
		},
		{
			name:       "budget exhausted",
			result:     model.RateLimitResult{Allowed: false, Limit: 10, Remaining: 0, ResetAt: time.Now().Add(30 * time.Second)},
			wantStatus: http.StatusTooManyRequests,
		},
		{
			name:       "limiter failure fails open",
			err:        errors.New("connection refused"),
			wantStatus: http.StatusOK,
			wantNext:   true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			limiter := mocks.NewRateLimiter(t)
			limiter.On("Allow", mock.Anything, "signin:192.0.2.1").Return(tt.result, tt.err)

			var called bool
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
			})

			req := httptest.NewRequest(http.MethodPost, "/auth/signin", nil)
			req.RemoteAddr = "192.0.2.1:1234"
			rec := httptest.NewRecorder()

			NewRateLimit(limiter, "signin:", testutil.MakeNoopLogger()).Handle(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantNext, called)
			if tt.wantStatus == http.StatusTooManyRequests {
				assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))
				assert.NotEmpty(t, rec.Header().Get("Retry-After"))
				assert.Contains(t, rec.Body.String(), "TOO_MANY_REQUESTS")
			}
		})
	}
}
