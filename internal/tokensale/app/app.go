package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/blockbite/tokensale/internal/tokensale/http"
	"github.com/blockbite/tokensale/internal/tokensale/mail"
	"github.com/blockbite/tokensale/internal/tokensale/service"
	"github.com/blockbite/tokensale/internal/tokensale/store"
	"github.com/blockbite/tokensale/internal/tokensale/store/drivers/sqlite"
	"github.com/blockbite/tokensale/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the token sale service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db      store.Store
	program service.Program
	mailer  mail.Sequence

	// Services
	applicantService *service.ApplicantService
	adminService     *service.AdminService
	referralService  *service.ReferralService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "tokensale-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	program, err := service.ProgramByName(cfg.Program, cfg.MaxApplicants)
	if err != nil {
		return nil, err
	}
	app.program = program

	if cfg.AdminSecret == "" {
		return nil, fmt.Errorf("SALE_ADMIN_SECRET must be set")
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	if err := app.initMailer(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.logger.Info("tokensale service starting",
		"port", app.cfg.Port,
		"program", app.program.Name,
		"version", BuildVersion,
	)

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
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down tokensale service...")

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

	app.logger.Info("tokensale service stopped")
	return nil
}

// initDatabase initializes the database and applies migrations
func (app *Application) initDatabase() error {
	host := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(host)
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

// initMailer initializes the SMTP sender and the template sequence
func (app *Application) initMailer() error {
	sender, err := mail.NewSMTPSender(
		app.cfg.SMTPHost,
		app.cfg.SMTPPort,
		app.cfg.MailFrom,
		app.cfg.SMTPAccounts,
	)
	if err != nil {
		return fmt.Errorf("failed to initialize SMTP sender: %w", err)
	}

	base := app.cfg.BaseURL
	sequence, err := mail.NewTemplateSequence(sender, func(p mail.Payload) string {
		return base + "/application/" + url.PathEscape(p.PrivateID)
	})
	if err != nil {
		return fmt.Errorf("failed to initialize mail templates: %w", err)
	}

	app.mailer = sequence
	return nil
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	app.applicantService = &service.ApplicantService{
		Store:   app.db,
		Mail:    app.mailer,
		Program: app.program,
	}
	app.adminService = &service.AdminService{
		Store: app.db,
		Mail:  app.mailer,
	}
	app.referralService = &service.ReferralService{
		Store:   app.db,
		Program: app.program,
	}
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.cfg.AdminSecret,
		app.cfg.Issuer,
		BuildVersion,
		app.db,
		app.logger,
	)

	// Wire services to router
	router.Program = app.program
	router.ApplicantService = app.applicantService
	router.AdminService = app.adminService
	router.ReferralService = app.referralService
	router.ApplyRoutes()

	app.router = router

	// Initialize HTTP server
	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
