package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/dtroode/taskflow-server/internal/api/http/handler"
	"github.com/dtroode/taskflow-server/internal/api/http/middleware"
	"github.com/dtroode/taskflow-server/internal/logger"
	"github.com/dtroode/taskflow-server/internal/model"
)

// Options holds transport settings of the router.
type Options struct {
	AllowedOrigins []string
	Cookie         handler.CookieConfig
	// TrustedProxy enables client address rewriting from forwarding headers.
	// Leave it off unless a reverse proxy overwrites those headers.
	TrustedProxy bool
}

// Router represents the HTTP router of the procedure surface.
// It wires handlers, authentication and rate limiting onto chi routes.
type Router struct {
	authService    handler.AuthService
	projectService handler.ProjectService
	taskService    handler.TaskService
	userService    handler.UserService
	profileService handler.ProfileService
	sessions       middleware.SessionResolver
	limiter        model.RateLimiter
	pinger         model.Pinger
	contextManager model.ContextManager
	options        Options
	logger         *logger.Logger
}

// New creates new HTTP Router instance.
// A nil limiter disables rate limiting of the authentication endpoints.
//
// Parameters:
//   - authService: sign in and sign up
//   - projectService, taskService, userService, profileService: procedures
//   - sessions: resolves session tokens
//   - limiter: sign in rate limiter, may be nil
//   - pinger: store health check
//   - contextManager: request session propagation
//   - options: CORS origins and session cookie settings
//   - logger: The logger for request logging
//
// Returns a pointer to the newly created Router instance.
func New(
	authService handler.AuthService,
	projectService handler.ProjectService,
	taskService handler.TaskService,
	userService handler.UserService,
	profileService handler.ProfileService,
	sessions middleware.SessionResolver,
	limiter model.RateLimiter,
	pinger model.Pinger,
	contextManager model.ContextManager,
	options Options,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:    authService,
		projectService: projectService,
		taskService:    taskService,
		userService:    userService,
		profileService: profileService,
		sessions:       sessions,
		limiter:        limiter,
		pinger:         pinger,
		contextManager: contextManager,
		options:        options,
		logger:         logger,
	}
}

// Register builds the HTTP handler with all routes and middleware.
func (r *Router) Register() http.Handler {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.sessions, r.contextManager, r.options.Cookie.Name, r.logger)

	mux := chi.NewRouter()
	mux.Use(chimw.RequestID)
	if r.options.TrustedProxy {
		mux.Use(chimw.RealIP)
	}
	mux.Use(logging.Handle)
	mux.Use(chimw.Recoverer)
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins:   r.options.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	mux.Get("/healthz", handler.NewHealth(r.pinger, r.logger).Check)

	mux.Route("/auth", func(ar chi.Router) {
		r.registerAuthRoutes(ar, authenticate)
	})
	mux.Route("/rpc", func(pr chi.Router) {
		pr.Use(authenticate.Handle)
		r.registerProcedureRoutes(pr)
	})

	return mux
}

func (r *Router) registerAuthRoutes(ar chi.Router, authenticate *middleware.Authenticate) {
	authHandler := handler.NewAuth(r.authService, r.contextManager, r.options.Cookie, r.logger)

	ar.Group(func(limited chi.Router) {
		if r.limiter != nil {
			limited.Use(middleware.NewRateLimit(r.limiter, "auth:", r.logger).Handle)
		}
		limited.Post("/signin", authHandler.SignIn)
		limited.Post("/signup", authHandler.SignUp)
	})
	ar.Post("/signout", authHandler.SignOut)
	ar.With(authenticate.Handle).Get("/session", authHandler.Session)
}

func (r *Router) registerProcedureRoutes(pr chi.Router) {
	projectHandler := handler.NewProject(r.projectService, r.logger)
	taskHandler := handler.NewTask(r.taskService, r.logger)
	userHandler := handler.NewUser(r.userService, r.logger)
	profileHandler := handler.NewProfile(r.profileService, r.logger)

	pr.Post("/project.create", projectHandler.Create)
	pr.Post("/project.getAll", projectHandler.GetAll)
	pr.Post("/project.getById", projectHandler.GetByID)
	pr.Post("/project.update", projectHandler.Update)
	pr.Post("/project.delete", projectHandler.Delete)

	pr.Post("/task.getByProject", taskHandler.GetByProject)
	pr.Post("/task.create", taskHandler.Create)
	pr.Post("/task.update", taskHandler.Update)
	pr.Post("/task.delete", taskHandler.Delete)

	pr.Post("/user.getProjectMembers", userHandler.GetProjectMembers)

	pr.Post("/profile.get", profileHandler.Get)
	pr.Post("/profile.update", profileHandler.Update)
	pr.Post("/profile.uploadAvatar", profileHandler.UploadAvatar)
}
