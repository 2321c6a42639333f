package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	httpapi "github.com/aussiebroadwan/clinicdesk/internal/clinic/http"
	"github.com/aussiebroadwan/clinicdesk/internal/clinic/service"
	"github.com/aussiebroadwan/clinicdesk/internal/clinic/store"
	"github.com/aussiebroadwan/clinicdesk/internal/clinic/store/drivers/sqlite"
	"github.com/aussiebroadwan/clinicdesk/pkg/cryptox"
	"github.com/aussiebroadwan/clinicdesk/pkg/jwtx"
	"github.com/aussiebroadwan/clinicdesk/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the clinic service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db       store.Store
	hasher   *cryptox.Hasher
	signer   jwtx.Signer
	verifier jwtx.Verifier

	// Services
	tokenService  *service.TokenService
	authService   *service.AuthService
	userService   *service.UserService
	clinicService *service.ClinicService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "clinic-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := app.initCrypto(); err != nil {
		return nil, err
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Handler exposes the fully wired router.
func (app *Application) Handler() http.Handler { return app.router }

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.logger.Info("clinic service starting", "port", app.cfg.Port, "version", BuildVersion)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a shutdown signal or server error
	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		// Perform graceful shutdown
		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down clinic service...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	// Shutdown the HTTP server
	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	// Close database connection
	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("clinic service stopped")
	return nil
}

// initCrypto sets up the password hasher and the token signer/verifier.
// Without a configured secret (dev only) a random one is generated, so tokens
// do not survive a restart.
func (app *Application) initCrypto() error {
	hasher, err := cryptox.NewHasher(app.cfg.HashAlgorithm, app.cfg.HashCost)
	if err != nil {
		return fmt.Errorf("failed to initialize password hasher: %w", err)
	}
	app.hasher = hasher

	secret := []byte(app.cfg.JWTSecret)
	if len(secret) == 0 {
		if app.cfg.Env != EnvDev {
			return ErrMissingSecret
		}
		generated, err := cryptox.GenerateToken(cryptox.TokenSize512)
		if err != nil {
			return fmt.Errorf("failed to generate ephemeral secret: %w", err)
		}
		secret = []byte(generated)
		app.logger.Warn("JWT_SECRET not set, using an ephemeral secret; tokens will not survive a restart")
	}

	if app.signer, err = jwtx.NewHMACSigner(app.cfg.JWTAlgorithm, secret); err != nil {
		return fmt.Errorf("failed to initialize token signer: %w", err)
	}
	if app.verifier, err = jwtx.NewHMACVerifier(app.cfg.JWTAlgorithm, secret); err != nil {
		return fmt.Errorf("failed to initialize token verifier: %w", err)
	}

	app.logger.Info("token signing configured",
		"algorithm", app.signer.Alg(),
		"ttl", app.cfg.TokenTTL(),
		"hash_algorithm", hasher.Algorithm(),
	)
	return nil
}

// initDatabase initializes the database and applies migrations
func (app *Application) initDatabase() error {
	db, err := sqlite.NewStore(databaseDSN(app.cfg.DatabaseFile))
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

// databaseDSN turns a file path into a modernc sqlite DSN. In-memory
// databases are passed through untouched.
func databaseDSN(file string) string {
	if file == ":memory:" || strings.HasPrefix(file, "file:") {
		return file
	}
	return fmt.Sprintf(
		"file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)",
		file,
	)
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	app.tokenService = &service.TokenService{
		Signer:     app.signer,
		Verifier:   app.verifier,
		DefaultTTL: app.cfg.TokenTTL(),
	}

	app.authService = &service.AuthService{
		Store:  app.db,
		Hasher: app.hasher,
		Tokens: app.tokenService,
	}
	app.userService = &service.UserService{
		Store:  app.db,
		Hasher: app.hasher,
	}
	app.clinicService = &service.ClinicService{Store: app.db}
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.verifier,
		BuildVersion,
		app.db,
		app.logger,
	)

	// Wire services to router
	router.TokenService = app.tokenService
	router.AuthService = app.authService
	router.UserService = app.userService
	router.ClinicService = app.clinicService
	router.TrustProxyHeaders = app.cfg.TrustProxyHeaders
	router.ApplyRoutes()

	app.router = router

	// Initialize HTTP server
	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
