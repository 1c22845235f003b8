package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/dtroode/taskflow-server/database"
	httpctx "github.com/dtroode/taskflow-server/internal/api/http/context"
	"github.com/dtroode/taskflow-server/internal/api/http/handler"
	"github.com/dtroode/taskflow-server/internal/api/http/router"
	httpServer "github.com/dtroode/taskflow-server/internal/api/http/server"
	"github.com/dtroode/taskflow-server/internal/config"
	"github.com/dtroode/taskflow-server/internal/logger"
	"github.com/dtroode/taskflow-server/internal/model"
	"github.com/dtroode/taskflow-server/internal/password"
	"github.com/dtroode/taskflow-server/internal/ratelimit"
	"github.com/dtroode/taskflow-server/internal/seed"
	"github.com/dtroode/taskflow-server/internal/server"
	"github.com/dtroode/taskflow-server/internal/service"
	storage "github.com/dtroode/taskflow-server/internal/storage/minio"
	"github.com/dtroode/taskflow-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	app := &cli.App{
		Name:    "taskflow-server",
		Usage:   "project and task tracking backend",
		Version: buildVersion,
		Action:  serve,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "start the HTTP server",
				Action: serve,
			},
			{
				Name:  "migrate",
				Usage: "manage the postgres schema",
				Subcommands: []*cli.Command{
					{Name: "up", Usage: "apply pending migrations", Action: migrate(database.Migrate)},
					{Name: "down", Usage: "revert the latest migration", Action: migrate(database.Rollback)},
					{Name: "status", Usage: "print migration status", Action: migrate(database.Status)},
				},
			},
			{
				Name:  "create-user",
				Usage: "register a credential user",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "email", Required: true},
					&cli.StringFlag{Name: "name", Required: true},
					&cli.StringFlag{Name: "password", Required: true},
				},
				Action: createUser,
			},
			{
				Name:   "seed",
				Usage:  "load demo users, projects and tasks",
				Action: seedData,
			},
		},
	}

	if err := app.RunContext(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}

func loadConfig() (*config.Config, *logger.Logger, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger.New(cfg.LogLevel), nil
}

func serve(c *cli.Context) error {
	ctx := c.Context

	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}
	logAppVersion()

	stores, err := openStores(ctx, cfg.Database)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer stores.Close()

	var avatars model.Storage
	if cfg.Storage.Endpoint != "" {
		client, err := storage.New(ctx, cfg.Storage)
		if err != nil {
			logger.Fatal("failed to initialize storage client", "error", err)
		}
		avatars = client
	} else {
		logger.Info("avatar storage disabled, MINIO_ENDPOINT is empty")
	}

	var limiter model.RateLimiter
	if cfg.Redis.Addr != "" {
		rdb, err := ratelimit.NewClient(ctx, cfg.Redis)
		if err != nil {
			logger.Fatal("failed to initialize rate limiter", "error", err)
		}
		defer rdb.Close()
		limiter = ratelimit.NewLimiter(rdb, cfg.RateLimit.Requests, cfg.RateLimit.Window)
	} else {
		logger.Info("rate limiting disabled, REDIS_ADDR is empty")
	}

	ctxMgr := httpctx.NewManager()
	sessions := service.NewSessionManager(token.NewJWT(cfg.Session.Secret, cfg.Session.TTL), logger)
	gate := service.NewGate(ctxMgr)
	access := service.NewAccessPolicy(stores.Projects, cfg.Access.Permissive)
	if cfg.Access.Permissive {
		logger.Warn("project membership checks are disabled, ACCESS_PERMISSIVE is set")
	}

	authService := service.NewAuth(stores.Users, password.NewHasher(0), sessions, logger)
	projectService := service.NewProject(stores.Projects, gate, access, logger)
	taskService := service.NewTask(stores.Tasks, gate, access, logger)
	userService := service.NewUser(stores.Users, gate, access, logger)
	profileService := service.NewProfile(stores.Profiles, avatars, gate, logger)

	r := router.New(
		authService, projectService, taskService, userService, profileService,
		sessions, limiter, stores.Pinger, ctxMgr,
		router.Options{
			AllowedOrigins: cfg.HTTP.AllowedOrigins,
			TrustedProxy:   cfg.HTTP.TrustedProxy,
			Cookie:         handler.CookieConfig{Name: cfg.Session.CookieName, Secure: cfg.Session.CookieSecure},
		},
		logger,
	)
	srv := httpServer.NewHTTPServer(r.Register(), cfg.HTTP.Address)
	sl := server.NewSecurityLayer(cfg.HTTP.EnableHTTPS, cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address(), "https", cfg.HTTP.EnableHTTPS)
		if err := s.Start(sl); err != nil {
			logger.Error("failed to start server", "error", err)
		}
	}(srv)

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", srv.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
	return nil
}

func migrate(run func(ctx context.Context, dsn string) error) cli.ActionFunc {
	return func(c *cli.Context) error {
		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}
		if cfg.Database.Driver != config.DriverPostgres {
			return fmt.Errorf("migrations apply to the postgres driver only, got %q", cfg.Database.Driver)
		}

		if err := run(c.Context, cfg.Database.DSN); err != nil {
			return err
		}
		logger.Info("migrate: done", "command", c.Command.Name)
		return nil
	}
}

func createUser(c *cli.Context) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}

	stores, err := openStores(c.Context, cfg.Database)
	if err != nil {
		return err
	}
	defer stores.Close()

	sessions := service.NewSessionManager(token.NewJWT(cfg.Session.Secret, cfg.Session.TTL), logger)
	auth := service.NewAuth(stores.Users, password.NewHasher(0), sessions, logger)

	res, err := auth.SignUp(c.Context, model.SignUpParams{
		Email:    c.String("email"),
		Name:     c.String("name"),
		Password: c.String("password"),
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(c.App.Writer, "created user %s (%s)\n", res.User.ID, res.User.Email)
	return nil
}

func seedData(c *cli.Context) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}

	stores, err := openStores(c.Context, cfg.Database)
	if err != nil {
		return err
	}
	defer stores.Close()

	err = seed.Run(c.Context, seed.Stores{
		Users:    stores.Users,
		Profiles: stores.Profiles,
		Projects: stores.Projects,
		Tasks:    stores.Tasks,
	}, password.NewHasher(0), logger)
	if errors.Is(err, seed.ErrAlreadySeeded) {
		logger.Info("seed: skipped", "reason", err.Error())
		return nil
	}
	return err
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
