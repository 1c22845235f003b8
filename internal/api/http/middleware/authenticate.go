package middleware

import (
	"net/http"
	"strings"

	"github.com/dtroode/taskflow-server/internal/logger"
	"github.com/dtroode/taskflow-server/internal/model"
)

// SessionResolver turns a session token into a session.
type SessionResolver interface {
	Resolve(token string) model.SessionResult
}

// Authenticate resolves the session token of a request and puts the session into its context.
// Requests without a valid session pass through unchanged; procedures reject them.
type Authenticate struct {
	resolver       SessionResolver
	contextManager model.ContextManager
	cookieName     string
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(resolver SessionResolver, contextManager model.ContextManager, cookieName string, logger *logger.Logger) *Authenticate {
	return &Authenticate{
		resolver:       resolver,
		contextManager: contextManager,
		cookieName:     cookieName,
		logger:         logger,
	}
}

// Handle reads the bearer token, falling back to the session cookie.
func (m *Authenticate) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		result := m.resolver.Resolve(m.tokenFromRequest(r))

		session, ok := result.Session()
		if !ok {
			if result.Reason() != model.ReasonMissing {
				m.logger.Debug("Authenticate middleware: session rejected",
					"path", r.URL.Path,
					"reason", result.Reason())
			}
			next.ServeHTTP(w, r)
			return
		}

		ctx := m.contextManager.SetSessionToContext(r.Context(), session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Authenticate) tokenFromRequest(r *http.Request) string {
	if header := r.Header.Get("Authorization"); header != "" {
		if token, ok := strings.CutPrefix(header, "Bearer "); ok {
			return strings.TrimSpace(token)
		}
	}

	if cookie, err := r.Cookie(m.cookieName); err == nil {
		return cookie.Value
	}

	return ""
}
