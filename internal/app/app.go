package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"CustomerOutputs/internal/config"
	"CustomerOutputs/internal/infrastructure/report"
	"CustomerOutputs/internal/infrastructure/results"
	"CustomerOutputs/internal/infrastructure/scheduler"
	"CustomerOutputs/internal/infrastructure/storage"
	"CustomerOutputs/internal/infrastructure/telegram"
	"CustomerOutputs/internal/logging"
	"CustomerOutputs/internal/ports"
	"CustomerOutputs/internal/source"
	"CustomerOutputs/internal/usecase"
)

// Application wires configs to use cases and lifecycle orchestration.
type Application struct {
	pipeline  *usecase.Pipeline
	scheduler *usecase.Scheduler
	db        *sql.DB
}

// New builds a runnable application instance. Persistence and notification
// adapters attach only when configured.
func New(ctx context.Context, cfg config.Config, baseLogger *slog.Logger) (*Application, error) {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level)
	}

	registry := source.NewRegistry()
	registry.Register(results.NewCSVReader())
	registry.Register(results.NewJSONLReader())

	src := results.NewStrategySource(registry, cfg.Input, baseLogger.With("component", "source"))
	writer := report.NewFileWriter(cfg.Output, baseLogger.With("component", "report"))

	var db *sql.DB
	var repository ports.OutputRepository
	if cfg.Database.DSN != "" {
		var err error
		db, err = storage.Open(ctx, cfg.Database.DSN)
		if err != nil {
			return nil, fmt.Errorf("connect database: %w", err)
		}
		repository = storage.NewPostgresRepository(db)
	}

	var notifier ports.Notifier
	if cfg.Notifications.Telegram.BotToken != "" && cfg.Notifications.Telegram.ChatID != "" {
		notifier = telegram.NewNotifier(cfg.Notifications.Telegram.BotToken, cfg.Notifications.Telegram.ChatID)
	}

	pipeline := usecase.NewPipeline(usecase.PipelineDeps{
		Source:     src,
		Writer:     writer,
		Repository: repository,
		Notifier:   notifier,
		Logger:     baseLogger.With("component", "pipeline"),
	})

	application := &Application{pipeline: pipeline, db: db}
	if cfg.Schedule.Enabled {
		driver := scheduler.NewIntervalScheduler(cfg.Schedule.Interval())
		application.scheduler = usecase.NewScheduler(driver, pipeline)
	}

	return application, nil
}

// Run executes one batch, or starts the schedule and blocks until ctx is done.
func (a *Application) Run(ctx context.Context) error {
	if a.pipeline == nil {
		return nil
	}

	if a.scheduler == nil {
		return a.pipeline.ProcessBatch(ctx)
	}

	if err := a.scheduler.Start(ctx); err != nil {
		return err
	}
	<-ctx.Done()
	return a.scheduler.Stop(context.Background())
}

// Close releases held resources.
func (a *Application) Close() error {
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}
