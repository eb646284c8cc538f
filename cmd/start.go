package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"event-state/core/config"
	"event-state/core/loader"
	"event-state/core/logger"
	"event-state/core/reconcile"
	"event-state/core/server"
	"event-state/core/storage"
	"event-state/feature/events"
	"event-state/feature/fetcher"

	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "event-state/docs/swagger"
)

// @title Event State API
// @version 1.0
// @description Reconciled sports event state built from the upstream odds feed.
// @host localhost:3000
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the event state server",
	Long:  `Starts the feed poller and the HTTP server. Stops gracefully on SIGINT or SIGTERM.`,
	RunE:  runStart,
}

func init() {
	RootCmd.AddCommand(startCmd)
}

func runStart(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logg.Sync()
	zap.ReplaceGlobals(logg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	engine := reconcile.NewEngine(logg)

	source, err := newSource(ctx, cfg, logg)
	if err != nil {
		return err
	}

	poller := fetcher.NewPoller(source, engine, cfg.Feed, logg)
	pollerDone := make(chan error, 1)
	go func() {
		pollerDone <- poller.Run(ctx)
	}()

	app := server.NewApp(logg)
	app.Get("/swagger/*", swagger.HandlerDefault)

	mgr := loader.NewManager(logg)
	mgr.Register(events.NewFeature(engine, logg))
	if err := mgr.LoadAll(app); err != nil {
		stop()
		<-pollerDone
		return fmt.Errorf("failed to load features: %w", err)
	}
	app.Use(server.NotFound)

	listenErr := make(chan error, 1)
	go func() {
		logg.Info("Starting server", zap.String("address", cfg.Server.Address()))
		listenErr <- app.Listen(cfg.Server.Address())
	}()

	select {
	case <-ctx.Done():
		logg.Info("Shutting down server...")
	case err = <-listenErr:
		logg.Error("Server stopped unexpectedly", zap.Error(err))
		stop()
	}

	if shutdownErr := app.ShutdownWithTimeout(cfg.Server.ShutdownTimeout()); shutdownErr != nil {
		logg.Warn("Server shutdown incomplete", zap.Error(shutdownErr))
	}
	if pollErr := <-pollerDone; pollErr != nil {
		logg.Warn("Poller stopped with error", zap.Error(pollErr))
	}

	logg.Info("Server stopped")
	if err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// newSource builds the configured feed source. The storage client is only created for the
// storage source.
func newSource(ctx context.Context, cfg *config.Config, logg *zap.Logger) (fetcher.Source, error) {
	var store storage.Client
	if cfg.Feed.Source == fetcher.SourceStorage {
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		store = client
	}

	source, err := fetcher.NewSource(cfg.Feed, store, cfg.Storage.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to create feed source: %w", err)
	}

	if s, ok := source.(*fetcher.StorageSource); ok {
		if err := s.Check(ctx); err != nil {
			logg.Warn("Feed bucket not ready", zap.Error(err))
		}
	}

	logg.Info("Feed source ready", zap.String("source", cfg.Feed.Source))
	return source, nil
}
