package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/tasks-api/internal/config"
	"github.com/phrazzld/tasks-api/internal/platform/postgres"
	"github.com/phrazzld/tasks-api/internal/service"
	"github.com/phrazzld/tasks-api/internal/service/auth"
	"github.com/phrazzld/tasks-api/internal/store"
)

// pinger reports database liveness for the health check.
type pinger interface {
	PingContext(ctx context.Context) error
}

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	// db is nil when the application was assembled from injected stores.
	db     *sql.DB
	pinger pinger

	userStore store.UserStore
	taskStore store.TaskStore

	jwtService  auth.JWTService
	userService service.UserService
	taskService service.TaskService
}

// appDeps are the storage-side dependencies of an application.
type appDeps struct {
	userStore  store.UserStore
	taskStore  store.TaskStore
	transactor store.Transactor
	pinger     pinger
}

// newApplication creates an application backed by Postgres through db.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app, err := assembleApplication(cfg, logger, appDeps{
		userStore:  postgres.NewPostgresUserStore(db, logger),
		taskStore:  postgres.NewPostgresTaskStore(db, logger),
		transactor: store.NewDBTransactor(db),
		pinger:     db,
	})
	if err != nil {
		return nil, err
	}
	app.db = db
	return app, nil
}

// assembleApplication builds the services on top of the given stores.
func assembleApplication(cfg *config.Config, logger *slog.Logger, deps appDeps) (*application, error) {
	app := &application{
		config:    cfg,
		logger:    logger,
		pinger:    deps.pinger,
		userStore: deps.userStore,
		taskStore: deps.taskStore,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	hasher := auth.NewBcryptHasher(cfg.Auth.BcryptCost)

	app.userService, err = service.NewUserService(deps.userStore, deps.transactor, hasher, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %w", err)
	}

	app.taskService, err = service.NewTaskService(deps.taskStore, deps.transactor, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create task service: %w", err)
	}

	logger.Info("Application initialized successfully", "bcrypt_cost", hasher.Cost())
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup releases application resources after the server has stopped.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
