// Package server initializes and runs the intake API server. It opens the
// database, applies migrations, wires services and handlers, and handles
// graceful shutdown on OS signals.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/ledgerline/taxintake/internal/logging"
	"github.com/ledgerline/taxintake/internal/server/api"
	"github.com/ledgerline/taxintake/internal/server/config"
	"github.com/ledgerline/taxintake/internal/server/objstore"
	"github.com/ledgerline/taxintake/internal/server/repositories/repomanager"
	"github.com/ledgerline/taxintake/internal/server/services"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	echo   *echo.Echo
}

func NewApp(cfg *config.Config) (*App, error) {
	logger := logging.NewJSON(os.Stdout)

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(context.Background(), db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	store := objstore.NewS3Store(objstore.Options{
		Region:       cfg.S3Region,
		BaseEndpoint: cfg.S3BaseEndpoint,
		AccessKey:    cfg.S3RootUser,
		SecretKey:    cfg.S3RootPassword,
		Bucket:       cfg.S3Bucket,
	})

	handlers := api.NewHandlers(&api.Dependencies{
		Auth:      services.NewUserService(db, rm, cfg),
		Intake:    services.NewDraftService(db, rm),
		Files:     services.NewUploadService(db, rm, store),
		SecretKey: []byte(cfg.SecretKey),
		FormsDir:  cfg.FormsDir,
		Log:       logger,
	})

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	api.RegisterRoutes(e, handlers, []byte(cfg.SecretKey))

	return &App{config: cfg, logger: logger, db: db, echo: e}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "starting intake server", "addr", app.config.EndpointAddr)

	app.initSignalHandler(cancelFunc)

	go func() {
		if err := app.echo.Start(app.config.EndpointAddr); err != nil && err != http.ErrServerClosed {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	<-ctx.Done()

	shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
	defer stop()
	if err := app.echo.Shutdown(shutdownCtx); err != nil {
		app.logger.Error(shutdownCtx, err.Error())
	}
	if err := app.db.Close(); err != nil {
		app.logger.Error(shutdownCtx, err.Error())
	}
	app.logger.Info(context.Background(), "server stopped")
}
