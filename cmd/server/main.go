package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"demandcast/internal/auth"
	"demandcast/internal/cache"
	"demandcast/internal/config"
	"demandcast/internal/email/noop"
	"demandcast/internal/email/ses"
	"demandcast/internal/forecast"
	"demandcast/internal/handler"
	"demandcast/internal/logger"
	"demandcast/internal/port"
	"demandcast/internal/repository/postgres"
	"demandcast/internal/router"
	"demandcast/internal/service"
	s3storage "demandcast/internal/storage/s3"
	"demandcast/internal/validator"

	_ "demandcast/docs"
)

// @title						DemandCast API
// @version					1.0
// @description				Validation and forecasting service for monthly demand series.
// @BasePath					/api/v1
//
// @securityDefinitions.apikey	AdminKey
// @in							header
// @name						X-API-Key
// @description				Admin API key
//
// @securityDefinitions.apikey	SessionToken
// @in							header
// @name						Authorization
// @description				Session bearer token issued on upload, e.g. "Bearer {token}"
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	zapLogger, err := logger.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = zapLogger.Sync() }()
	logg := zapLogger.Sugar()

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	datasetRepo := postgres.NewDatasetRepo(db)
	recordRepo := postgres.NewRecordRepo(db)
	findingRepo := postgres.NewFindingRepo(db)
	runRepo := postgres.NewRunRepo(db)
	resultRepo := postgres.NewResultRepo(db)
	statsRepo := postgres.NewStatsRepo(db)

	// Initialize storage
	storage, err := s3storage.NewS3Client(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize object storage: %w", err)
	}

	// Initialize results cache
	var resultsCache port.ResultsCache
	switch cfg.Cache.Backend {
	case "redis":
		resultsCache, err = cache.NewRedis(context.Background(), cfg.Cache.RedisURL)
		if err != nil {
			return fmt.Errorf("failed to connect to redis: %w", err)
		}
	default:
		resultsCache = cache.NewMemory()
	}

	// Initialize email sender
	var emailSender port.EmailSender
	switch cfg.Email.Provider {
	case "ses":
		emailSender, err = ses.NewSESSender(cfg.Email.Region, cfg.Email.FromAddress, cfg.Email.FromName, cfg.Email.FrontendURL)
		if err != nil {
			return fmt.Errorf("failed to initialize SES sender: %w", err)
		}
	default:
		emailSender = noop.NewNoopSender(cfg.Email.FrontendURL)
	}

	// Initialize services
	engine := validator.NewEngine(cfg.Validation.RuleSet())
	sessions := auth.NewSessions(cfg.Auth)
	runner := forecast.NewRunner(forecast.DefaultRegistry())

	datasetSvc := service.NewDatasetService(engine, datasetRepo, recordRepo, findingRepo,
		storage, resultsCache, sessions, &cfg.S3, logg)
	forecastSvc := service.NewForecastService(datasetRepo, recordRepo, runRepo, resultRepo,
		resultsCache, emailSender, runner, cfg.Forecast, cfg.Cache.TTL, logg)
	statsSvc := service.NewStatsService(statsRepo)

	// Initialize handlers
	datasetH := handler.NewDatasetHandler(datasetSvc)
	validationH := handler.NewValidationHandler(datasetSvc)
	forecastH := handler.NewForecastHandler(forecastSvc)
	exportH := handler.NewExportHandler(datasetSvc, forecastSvc)
	statsH := handler.NewStatsHandler(statsSvc)
	healthH := handler.NewHealthHandler(db, resultsCache)

	// Setup router
	r := router.Setup(cfg, logg, sessions, datasetH, validationH, forecastH, exportH, statsH, healthH)

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start the forecast queue worker; Start blocks until workerCtx is
	// cancelled and every in-flight run has drained.
	workerCtx, stopWorker := context.WithCancel(context.Background())
	worker := service.NewForecastQueueWorker(runRepo, forecastSvc, service.ForecastQueueConfig{
		PollInterval: cfg.Queue.PollInterval(),
		Concurrency:  cfg.Queue.Concurrency,
	}, logg)
	workerDone := make(chan struct{})
	go func() {
		defer close(workerDone)
		worker.Start(workerCtx)
	}()

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		logg.Infow("shutting down")

		stopWorker()
		<-workerDone

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logg.Errorw("shutdown error", "error", err)
		}
	}()

	logg.Infow("server starting", "addr", cfg.Server.Port, "environment", cfg.Server.Environment)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
