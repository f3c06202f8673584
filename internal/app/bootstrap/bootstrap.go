package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	versionlifecycle "enablehub/contexts/content-hub/version-lifecycle-service"
	"enablehub/contexts/content-hub/version-lifecycle-service/adapters/jwtsign"
	postgresadapter "enablehub/contexts/content-hub/version-lifecycle-service/adapters/postgres"
	"enablehub/contexts/content-hub/version-lifecycle-service/application/commands"
	workerapp "enablehub/contexts/content-hub/version-lifecycle-service/application/workers"
	"enablehub/internal/platform/config"
	"enablehub/internal/platform/db"
	"enablehub/internal/platform/httpserver"
	"enablehub/internal/platform/messaging"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server   *httpserver.Server
	database *db.Database
	logger   *slog.Logger
}

type WorkerApp struct {
	database     *db.Database
	publishSweep *workerapp.PublishSweeper
	expirySweep  *workerapp.ExpirySweeper
	outboxRelay  *workerapp.OutboxRelay
	pollInterval time.Duration
	logger       *slog.Logger
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")

	database, repo, err := connectRepository(cfg, logger)
	if err != nil {
		return nil, err
	}

	bus := messaging.NewBus(logger)
	module := versionlifecycle.NewModule(versionlifecycle.Dependencies{
		Assets:         repo,
		Versions:       repo,
		History:        repo,
		Idempotency:    repo,
		Outbox:         repo,
		Notifier:       messaging.BusNotifier{Bus: bus},
		Signer:         jwtsign.New([]byte(cfg.DownloadSecret), cfg.DownloadCDN),
		Clock:          postgresadapter.SystemClock{},
		IDGenerator:    postgresadapter.UUIDGenerator{},
		IdempotencyTTL: 7 * 24 * time.Hour,
		DownloadTTL:    cfg.DownloadTTL,
		Logger:         logger,
	})

	server := httpserver.New(module, logger, normalizeAddr(cfg.HTTPPort))
	return &APIApp{
		server:   server,
		database: database,
		logger:   logger,
	}, nil
}

func BuildWorker() (*WorkerApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "worker")

	database, repo, err := connectRepository(cfg, logger)
	if err != nil {
		return nil, err
	}

	bus := messaging.NewBus(logger)
	clock := postgresadapter.SystemClock{}
	idGen := postgresadapter.UUIDGenerator{}

	app := &WorkerApp{
		database:     database,
		pollInterval: cfg.SweepInterval,
		logger:       logger,
	}

	if cfg.EnablePublishSweep {
		app.publishSweep = &workerapp.PublishSweeper{
			Versions: repo,
			Publish: commands.PublishVersionUseCase{
				Assets:   repo,
				Versions: repo,
				History:  repo,
				Outbox:   repo,
				Notifier: messaging.BusNotifier{Bus: bus},
				Clock:    clock,
				IDGen:    idGen,
				Logger:   logger,
			},
			Clock:     clock,
			BatchSize: cfg.SweepBatchSize,
			Logger:    logger,
		}
	}
	if cfg.EnableExpirySweep {
		app.expirySweep = &workerapp.ExpirySweeper{
			Versions: repo,
			Expire: commands.ExpireVersionUseCase{
				Assets:   repo,
				Versions: repo,
				History:  repo,
				Outbox:   repo,
				Clock:    clock,
				IDGen:    idGen,
				Logger:   logger,
			},
			Clock:     clock,
			BatchSize: cfg.SweepBatchSize,
			Logger:    logger,
		}
	}
	if cfg.EnableOutboxRelay {
		app.outboxRelay = &workerapp.OutboxRelay{
			Outbox:    repo,
			Publisher: bus,
			Clock:     clock,
			BatchSize: cfg.SweepBatchSize,
			Logger:    logger,
		}
	}
	return app, nil
}

func connectRepository(cfg config.Config, logger *slog.Logger) (*db.Database, *postgresadapter.Repository, error) {
	dsn := cfg.PostgresDSN
	if cfg.DBDriver == "sqlite" {
		dsn = cfg.SQLitePath
	}
	if strings.TrimSpace(dsn) == "" {
		return nil, nil, errors.New("database dsn is required (POSTGRES_DSN or SQLITE_PATH)")
	}

	database, err := db.Connect(cfg.DBDriver, dsn)
	if err != nil {
		return nil, nil, err
	}
	if err := postgresadapter.Migrate(database.DB); err != nil {
		_ = database.Close()
		return nil, nil, err
	}
	return database, postgresadapter.NewRepository(database.DB, logger), nil
}

func (a *APIApp) Run(_ context.Context) error {
	if a.logger != nil {
		a.logger.Info("api app started",
			"event", "bootstrap_api_started",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}
	return a.server.Start()
}

func (a *APIApp) Close() error {
	if a.database != nil {
		return a.database.Close()
	}
	return nil
}

func (w *WorkerApp) Run(ctx context.Context) error {
	interval := w.pollInterval
	if interval <= 0 {
		interval = 30 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	w.logger.Info("worker app started",
		"event", "bootstrap_worker_started",
		"module", "internal/app/bootstrap",
		"layer", "platform",
		"poll_interval", interval.String(),
	)

	for {
		if w.publishSweep != nil {
			if err := w.publishSweep.RunOnce(ctx); err != nil {
				return err
			}
		}
		if w.expirySweep != nil {
			if err := w.expirySweep.RunOnce(ctx); err != nil {
				return err
			}
		}
		if w.outboxRelay != nil {
			if err := w.outboxRelay.RunOnce(ctx); err != nil {
				return err
			}
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (w *WorkerApp) Close() error {
	if w.database != nil {
		return w.database.Close()
	}
	return nil
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
