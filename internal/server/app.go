// Package server wires the PlantPal server together: storage, services, the
// REST API and the gRPC health endpoint. It handles graceful shutdown on
// SIGINT, SIGTERM and SIGQUIT.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/plantpal/internal/logging"
	"github.com/dmitrijs2005/plantpal/internal/server/ai"
	"github.com/dmitrijs2005/plantpal/internal/server/articles"
	"github.com/dmitrijs2005/plantpal/internal/server/config"
	"github.com/dmitrijs2005/plantpal/internal/server/metrics"
	"github.com/dmitrijs2005/plantpal/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/plantpal/internal/server/rest"
	"github.com/dmitrijs2005/plantpal/internal/server/services"
	"github.com/dmitrijs2005/plantpal/internal/server/storage"

	gs "github.com/dmitrijs2005/plantpal/internal/server/grpc"
)

// shutdownTimeout bounds how long in-flight HTTP requests may take after a
// stop signal.
const shutdownTimeout = 10 * time.Second

type App struct {
	config      *config.Config
	logger      logging.Logger
	repomanager repomanager.RepositoryManager
	metrics     *metrics.Metrics
	router      http.Handler
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSONLogger(c.LogFile, slog.LevelInfo)

	rm, err := repomanager.New(c)
	if err != nil {
		return nil, fmt.Errorf("storage init error: %w", err)
	}
	if err := rm.RunMigrations(ctx); err != nil {
		_ = rm.Close()
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	files, err := storage.New(ctx, c)
	if err != nil {
		_ = rm.Close()
		return nil, fmt.Errorf("file storage init error: %w", err)
	}

	catalog, err := articles.Default()
	if err != nil {
		_ = rm.Close()
		return nil, fmt.Errorf("article catalog error: %w", err)
	}

	m := metrics.New()

	var gen ai.Generator
	if g, err := ai.NewGenAI(ctx, c.GeminiAPIKey, c.GeminiModel); err == nil {
		gen = g
	} else {
		logger.Warn(ctx, "AI assistant disabled", "reason", err)
	}

	var seeder *services.Seeder
	if c.SeedDemoData {
		seeder = services.NewSeeder()
	}

	gin.SetMode(gin.ReleaseMode)
	router := rest.NewRouter(rest.Deps{
		Users:          services.NewUserService(rm, c, seeder, logger, m),
		Plants:         services.NewPlantService(rm, files, logger, m),
		Journal:        services.NewJournalService(rm, files, logger),
		AI:             ai.NewService(gen, logger, m),
		Articles:       catalog,
		Observer:       m,
		MetricsHandler: m.Handler(),
		Ping:           rm.Ping,
		Log:            logger,
		MaxUploadBytes: c.MaxUploadBytes,
	})

	return &App{config: c, logger: logger, repomanager: rm, metrics: m, router: router}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) runHTTPServer(ctx context.Context) error {
	srv := &http.Server{
		Addr:              app.config.EndpointAddrHTTP,
		Handler:           app.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		app.logger.Info(ctx, "Stopping HTTP server...")
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(sctx); err != nil {
			app.logger.Error(ctx, "HTTP shutdown error", "error", err)
		}
	}()

	app.logger.Info(ctx, "Starting HTTP server", "address", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (app *App) runGRPCServer(ctx context.Context) error {
	return gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.repomanager.Ping).Run(ctx)
}

// Run serves both endpoints until a stop signal arrives or one of them
// fails, then closes storage.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "storage", app.config.Storage)

	app.initSignalHandler(cancelFunc)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return app.runHTTPServer(gctx) })
	g.Go(func() error { return app.runGRPCServer(gctx) })

	err := g.Wait()

	if cerr := app.repomanager.Close(); cerr != nil {
		app.logger.Error(ctx, "storage close error", "error", cerr)
	}
	app.logger.Info(ctx, "App stopped")
	return err
}
