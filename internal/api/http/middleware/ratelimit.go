package middleware

import (
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/dtroode/taskflow-server/internal/apierror"
	"github.com/dtroode/taskflow-server/internal/logger"
	"github.com/dtroode/taskflow-server/internal/model"
)

// RateLimit rejects clients that exceeded their request budget.
type RateLimit struct {
	limiter   model.RateLimiter
	keyPrefix string
	logger    *logger.Logger
}

// NewRateLimit creates a RateLimit middleware keyed by client IP under keyPrefix.
func NewRateLimit(limiter model.RateLimiter, keyPrefix string, logger *logger.Logger) *RateLimit {
	return &RateLimit{limiter: limiter, keyPrefix: keyPrefix, logger: logger}
}

// Handle fails open when the limiter backend is unreachable.
func (m *RateLimit) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := m.keyPrefix + clientIP(r)

		result, err := m.limiter.Allow(r.Context(), key)
		if err != nil {
			m.logger.Warn("RateLimit middleware: limiter unavailable",
				"key", key,
				"error", err.Error())
			next.ServeHTTP(w, r)
			return
		}

		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
		w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))

		if !result.Allowed {
			retryAfter := int(time.Until(result.ResetAt).Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
			m.logger.Info("RateLimit middleware: request rejected",
				"key", key)
			apierror.NewErrTooManyRequests().Write(w)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
