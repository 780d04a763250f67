package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"spansim/internal/cache"
	"spansim/internal/datasets"
	"spansim/internal/events"
	"spansim/internal/history"
	internalhttp "spansim/internal/http"
	"spansim/internal/rulesets"
	"spansim/internal/shared/configs"
	"spansim/internal/shared/filestorages"
	"spansim/internal/shared/loggers"
	"spansim/internal/simulation"
	"spansim/internal/streams"
	"spansim/internal/upstream"
)

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server

	datasetCache cache.Cache
	ruleSetStore rulesets.Store

	recordConsumer   streams.SimulationRecordConsumer
	backgroundCtx    context.Context
	backgroundCancel context.CancelFunc
}

// New creates and initializes a new App instance.
func New(config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "spansim").
		Logger()

	// Initialize the dataset path: upstream client behind a cache
	datasetCache, err := cache.New(config.Cache)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cache: %w", err)
	}
	spanGroupsAPI := upstream.NewSpanGroupsClient(config.Upstream)
	datasetService := datasets.NewDatasetService(spanGroupsAPI, datasetCache, time.Duration(config.Cache.TTL)*time.Second)

	// Initialize the simulation engine
	simulationService := simulation.NewService()

	// Initialize saved rule set persistence
	ruleSetStore, err := rulesets.NewSQLiteStore(config.RuleSets.DBPath)
	if err != nil {
		_ = datasetCache.Close()
		return nil, fmt.Errorf("failed to initialize rule set store: %w", err)
	}
	ruleSetService := rulesets.NewRuleSetService(ruleSetStore)

	// Initialize simulation history: snapshot store + record stream
	fileStorage, err := filestorages.NewFileStorage(config.History.RootDir)
	if err != nil {
		_ = datasetCache.Close()
		_ = ruleSetStore.Close()
		return nil, fmt.Errorf("failed to initialize history storage: %w", err)
	}
	simulationStore := history.NewSimulationStore(fileStorage)
	recordingService := history.NewRecordingService(simulationStore)

	recordQueue := streams.NewPartitionedQueue[events.SimulationRecordedEvent]()
	recordProducer := streams.NewSimulationRecordProducer(recordQueue)
	consumerLogger := appLogger.With().Str(loggers.FieldComponent, "consumer").Logger()
	recordConsumer := streams.NewSimulationRecordConsumer(recordQueue, recordingService, consumerLogger)

	// Initialize http router
	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(internalhttp.RouterServices{
		DatasetService:    datasetService,
		SimulationService: simulationService,
		RuleSetService:    ruleSetService,
		RecordingService:  recordingService,
		RecordProducer:    recordProducer,
	}, httpLogger)

	// Create HTTP server
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:         config,
		appLogger:      appLogger,
		server:         server,
		datasetCache:   datasetCache,
		ruleSetStore:   ruleSetStore,
		recordConsumer: recordConsumer,
	}, nil
}

// Start starts the HTTP server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting spansim service on port %d (log_level=%s, upstream=%s, cache=%s, history_root_dir=%s)",
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.Upstream.BaseURL,
			app.config.Cache.Type,
			app.config.History.RootDir)

	// start background consumers
	app.backgroundCtx, app.backgroundCancel = context.WithCancel(context.Background())
	app.recordConsumer.Start(app.backgroundCtx)

	return app.server.ListenAndServe()
}

// Shutdown gracefully shuts down the application.
func (app *App) Shutdown(ctx context.Context) error {
	// 1) Shutdown server so no new simulations get accepted
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")

	// 2) Stop the record consumer; it drains buffered snapshots first, so
	// every accepted simulation reaches the history store
	app.recordConsumer.Stop()
	app.appLogger.Info().Msg("Record consumer stopped")

	// 3) Cancel the background context now that the drain is finished
	if app.backgroundCancel != nil {
		app.backgroundCancel()
	}

	// 4) Release storage handles
	if err := app.ruleSetStore.Close(); err != nil {
		app.appLogger.Warn().Err(err).Msg("failed to close rule set store")
	}
	if err := app.datasetCache.Close(); err != nil {
		app.appLogger.Warn().Err(err).Msg("failed to close dataset cache")
	}
	app.appLogger.Info().Msg("Storage closed")

	return nil
}
