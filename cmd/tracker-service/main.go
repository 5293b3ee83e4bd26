package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"fpl-price-tracker/internal/tracker/config"
	"fpl-price-tracker/internal/tracker/repository"
	"fpl-price-tracker/internal/tracker/service"
	"fpl-price-tracker/pkg/logger"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
)

var configPath string

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Captures a single transfer snapshot",
	Run:   runOnce,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Captures transfer snapshots on a cron schedule",
	Run:   runServe,
}

func initService() (*config.Config, *logger.Logger, service.TrackerService) {
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	fplRepo := repository.NewFPLRepository(cfg, appLogger)
	snapshotRepo := repository.NewSnapshotRepository(cfg.Storage.SnapshotFile)
	trackerSvc := service.NewTrackerService(fplRepo, snapshotRepo, appLogger)

	return cfg, appLogger, trackerSvc
}

func runOnce(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, appLogger, trackerSvc := initService()
	defer func() { _ = appLogger.Sync() }()

	appLogger.Info("Starting tracker run", logger.Field("name", cfg.App.Name))
	if err := trackerSvc.Track(ctx); err != nil {
		appLogger.Fatal("Tracker run failed", logger.ErrorField(err))
	}
}

func runServe(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, appLogger, trackerSvc := initService()
	defer func() { _ = appLogger.Sync() }()

	spec := cfg.Scheduler.Cron
	if spec == "" {
		spec = "0 * * * *"
	}

	c := cron.New()
	if _, err := c.AddFunc(spec, func() {
		if err := trackerSvc.Track(ctx); err != nil {
			appLogger.Error("Tracker run failed", logger.ErrorField(err))
		}
	}); err != nil {
		appLogger.Fatal("Invalid cron expression", logger.ErrorField(err), logger.StringField("cron", spec))
	}

	c.Start()
	appLogger.Info("Tracker scheduler started", logger.StringField("cron", spec))

	<-ctx.Done()
	appLogger.Info("Shutting down tracker scheduler")
	<-c.Stop().Done()
}

func main() {
	rootCmd := &cobra.Command{Use: "tracker-service"}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "configs/config-tracker.yaml", "Path to the configuration file")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(serveCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing tracker-service CLI: %s\n", err)
		os.Exit(1)
	}
}
