package cli

import (
	"context"
	"fmt"

	"github.com/coachdesk/dashboard/analytics"
	"github.com/coachdesk/dashboard/config"
	"github.com/coachdesk/dashboard/dashboard"
	"github.com/coachdesk/dashboard/logging"
	"github.com/coachdesk/dashboard/storage"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "coachdesk",
	Short: "Bookings, clients and earnings for a one-person coaching business",
	Long: `coachdesk keeps the bookings, clients, leads, reminders and testimonials
of a coaching business in one local data file and derives the dashboard
figures from them. Run "coachdesk serve" for the HTTP API.`,
	SilenceUsage: true,
}

// Execute runs the command named on the command line.
func Execute() error {
	return rootCmd.Execute()
}

type app struct {
	config  config.Config
	log     *zap.Logger
	store   storage.BlobStore
	service *dashboard.Service
}

func bootstrap(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log, err := logging.New(cfg.AppName, cfg.LogPath, cfg.Debug)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	log.Info("opening storage", zap.String("driver", cfg.StorageDriver))
	store, err := storage.Open(ctx, storage.Options{
		Driver:      storage.Driver(cfg.StorageDriver),
		DataPath:    cfg.DataPath,
		SQLitePath:  cfg.SQLitePath,
		DatabaseURL: cfg.DatabaseURL,
		Key:         cfg.StorageKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	service, err := dashboard.NewService(ctx, storage.NewRepository(store),
		dashboard.WithCache(analytics.NewCache(cfg.AnalyticsCacheTTL)),
		dashboard.WithLogger(log),
	)
	if err != nil {
		store.Close()
		return nil, err
	}

	return &app{config: cfg, log: log, store: store, service: service}, nil
}

func (a *app) Close() {
	if err := a.store.Close(); err != nil {
		a.log.Warn("failed to close storage", zap.Error(err))
	}
	_ = a.log.Sync()
}

// withApp bootstraps the application for the duration of one command.
func withApp(run func(cmd *cobra.Command, args []string, a *app) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()
		return run(cmd, args, a)
	}
}
