package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pratik-hilale/hive/internal/config"
	"github.com/pratik-hilale/hive/internal/handler"
	"github.com/pratik-hilale/hive/internal/repository/postgres"
	"github.com/pratik-hilale/hive/internal/service"
)

// App holds the application with all its dependencies
type App struct {
	config *config.Config
	db     *pgxpool.Pool
	server *http.Server
	logger *slog.Logger
}

// New creates a new application instance
func New(cfg *config.Config) (*App, error) {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	return &App{
		config: cfg,
		logger: logger,
	}, nil
}

// Initialize connects to the database and sets up routing
func (a *App) Initialize(ctx context.Context) error {
	if err := a.connectDB(ctx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	a.setupServer()

	a.logger.Info("Application initialized successfully")
	return nil
}

// connectDB establishes the PostgreSQL connection pool
func (a *App) connectDB(ctx context.Context) error {
	poolConfig, err := pgxpool.ParseConfig(a.config.Database.DSN())
	if err != nil {
		return fmt.Errorf("failed to parse database config: %w", err)
	}

	poolConfig.MaxConns = a.config.Database.MaxConns
	poolConfig.MinConns = a.config.Database.MinConns

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	a.db = pool
	a.logger.Info("Connected to database")
	return nil
}

// setupServer wires repositories, services and handlers into the router
func (a *App) setupServer() {
	userRepo := postgres.NewUserRepository(a.db)
	devTokenRepo := postgres.NewDevTokenRepository(a.db)

	userService := service.NewUserService(
		userRepo,
		devTokenRepo,
		a.config.JWT.Secret,
		a.config.JWT.GetExpiration(),
	)

	authHandler := handler.NewAuthHandler(userService, a.logger)
	profileHandler := handler.NewProfileHandler(userService, a.logger)
	devTokenHandler := handler.NewDevTokenHandler(userService, a.logger)
	settingsHandler := handler.NewSettingsHandler(userService, userRepo, a.logger)

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// Health check for monitoring
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(`{"status":"ok"}`)); err != nil {
			a.logger.Error("Failed to write health check response", "error", err)
		}
	})

	// Authentication is handled inside the handlers rather than by a
	// middleware group: the legacy clients expect per-route 401 bodies.
	r.Route("/user", func(r chi.Router) {
		r.Post("/login-v2", authHandler.Login)
		r.Post("/register", authHandler.Register)
		r.Get("/profile", profileHandler.GetProfile)
		r.Put("/profile", profileHandler.UpdateProfile)
		r.Get("/me", profileHandler.Me)
		r.Get("/get-dev-tokens", devTokenHandler.List)
		r.Post("/generate-dev-token", devTokenHandler.Generate)
		r.Get("/settings", settingsHandler.Get)
		r.Put("/settings", settingsHandler.Update)
	})

	addr := fmt.Sprintf("%s:%s", a.config.Server.Host, a.config.Server.Port)
	a.server = &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	a.logger.Info("HTTP server configured", "addr", addr)
}

// Run starts the HTTP server
func (a *App) Run() error {
	a.logger.Info("Starting HTTP server", "addr", a.server.Addr)
	return a.server.ListenAndServe()
}

// Shutdown stops the application gracefully
func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("Shutting down application")

	if err := a.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	if a.db != nil {
		a.db.Close()
	}

	a.logger.Info("Application stopped gracefully")
	return nil
}
