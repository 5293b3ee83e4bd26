package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fpl-price-tracker/internal/analyzer/config"
	delivery "fpl-price-tracker/internal/analyzer/delivery/http"
	"fpl-price-tracker/internal/analyzer/repository"
	"fpl-price-tracker/internal/analyzer/service"
	"fpl-price-tracker/pkg/logger"
	"fpl-price-tracker/pkg/telegram"

	"github.com/labstack/echo/v4"
	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
)

var configPath string

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Runs a single snapshot-delta analysis",
	Run:   runOnce,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Runs the analysis on a cron schedule and serves the summary API",
	Run:   runServe,
}

func initService() (*config.Config, *logger.Logger, service.AnalyzerService, repository.SummaryRepository) {
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	var notifier telegram.Notifier
	if cfg.Telegram.Enabled {
		notifier, err = telegram.NewClient(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
		if err != nil {
			appLogger.Fatal("Failed to initialize Telegram notifier", logger.ErrorField(err))
		}
	}

	snapshotRepo := repository.NewSnapshotRepository(cfg.Storage.SnapshotFile)
	predictionRepo := repository.NewPredictionRepository(cfg.Storage.PredictionFile)
	summaryRepo := repository.NewSummaryRepository(cfg.Storage.SummaryFile)
	analyzerSvc := service.NewAnalyzerService(cfg, snapshotRepo, predictionRepo, summaryRepo, notifier, appLogger)

	return cfg, appLogger, analyzerSvc, summaryRepo
}

func runOnce(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, appLogger, analyzerSvc, _ := initService()
	defer func() { _ = appLogger.Sync() }()

	appLogger.Info("Starting analyzer run", logger.Field("name", cfg.App.Name))
	if err := analyzerSvc.Analyze(ctx); err != nil {
		appLogger.Fatal("Analyzer run failed", logger.ErrorField(err))
	}
}

func runServe(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, appLogger, analyzerSvc, summaryRepo := initService()
	defer func() { _ = appLogger.Sync() }()

	spec := cfg.Scheduler.Cron
	if spec == "" {
		spec = "30 * * * *"
	}

	c := cron.New()
	if _, err := c.AddFunc(spec, func() {
		if err := analyzerSvc.Analyze(ctx); err != nil {
			appLogger.Error("Analyzer run failed", logger.ErrorField(err))
		}
	}); err != nil {
		appLogger.Fatal("Invalid cron expression", logger.ErrorField(err), logger.StringField("cron", spec))
	}

	c.Start()
	appLogger.Info("Analyzer scheduler started", logger.StringField("cron", spec))

	e := echo.New()
	e.HideBanner = true

	summaryHandler := delivery.NewSummaryHandler(summaryRepo, appLogger)
	summaryHandler.RegisterRoutes(e)

	go func() {
		addr := fmt.Sprintf(":%d", cfg.API.Port)
		appLogger.Info("HTTP server starting", logger.Field("address", addr))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			appLogger.Error("HTTP server failed to start", logger.ErrorField(err))
			stop()
		}
	}()

	<-ctx.Done()
	appLogger.Info("Shutting down analyzer service")
	<-c.Stop().Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		appLogger.Fatal("Server forced to shutdown", logger.ErrorField(err))
	}
}

func main() {
	rootCmd := &cobra.Command{Use: "analyzer-service"}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "configs/config-analyzer.yaml", "Path to the configuration file")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(serveCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing analyzer-service CLI: %s\n", err)
		os.Exit(1)
	}
}
