package versionlifecycle

import (
	"log/slog"
	"time"

	httpadapter "enablehub/contexts/content-hub/version-lifecycle-service/adapters/http"
	"enablehub/contexts/content-hub/version-lifecycle-service/adapters/jwtsign"
	"enablehub/contexts/content-hub/version-lifecycle-service/adapters/memory"
	"enablehub/contexts/content-hub/version-lifecycle-service/application/commands"
	"enablehub/contexts/content-hub/version-lifecycle-service/application/queries"
	"enablehub/contexts/content-hub/version-lifecycle-service/domain/entities"
	"enablehub/contexts/content-hub/version-lifecycle-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Assets         ports.AssetRepository
	Versions       ports.VersionRepository
	History        ports.HistoryRepository
	Idempotency    ports.IdempotencyStore
	Outbox         ports.OutboxWriter
	Notifier       ports.Notifier
	Signer         ports.URLSigner
	Clock          ports.Clock
	IDGenerator    ports.IDGenerator
	IdempotencyTTL time.Duration
	DownloadTTL    time.Duration
	Logger         *slog.Logger
}

func NewModule(deps Dependencies) Module {
	createAsset := commands.CreateAssetUseCase{
		Assets:         deps.Assets,
		Idempotency:    deps.Idempotency,
		Clock:          deps.Clock,
		IDGenerator:    deps.IDGenerator,
		IdempotencyTTL: deps.IdempotencyTTL,
		Logger:         deps.Logger,
	}
	createVersion := commands.CreateVersionUseCase{
		Assets:         deps.Assets,
		Versions:       deps.Versions,
		Idempotency:    deps.Idempotency,
		Clock:          deps.Clock,
		IDGenerator:    deps.IDGenerator,
		IdempotencyTTL: deps.IdempotencyTTL,
		Logger:         deps.Logger,
	}
	publishVersion := commands.PublishVersionUseCase{
		Assets:   deps.Assets,
		Versions: deps.Versions,
		History:  deps.History,
		Outbox:   deps.Outbox,
		Notifier: deps.Notifier,
		Clock:    deps.Clock,
		IDGen:    deps.IDGenerator,
		Logger:   deps.Logger,
	}
	scheduleVersion := commands.ScheduleVersionUseCase{
		Assets:   deps.Assets,
		Versions: deps.Versions,
		History:  deps.History,
		Clock:    deps.Clock,
		IDGen:    deps.IDGenerator,
		Logger:   deps.Logger,
	}
	expireVersion := commands.ExpireVersionUseCase{
		Assets:   deps.Assets,
		Versions: deps.Versions,
		History:  deps.History,
		Outbox:   deps.Outbox,
		Clock:    deps.Clock,
		IDGen:    deps.IDGenerator,
		Logger:   deps.Logger,
	}
	archiveVersion := commands.ArchiveVersionUseCase{
		Assets:   deps.Assets,
		Versions: deps.Versions,
		History:  deps.History,
		Outbox:   deps.Outbox,
		Clock:    deps.Clock,
		IDGen:    deps.IDGenerator,
		Logger:   deps.Logger,
	}

	getAsset := queries.GetAssetUseCase{
		Assets: deps.Assets,
		Logger: deps.Logger,
	}
	listAssets := queries.ListAssetsUseCase{
		Assets: deps.Assets,
		Logger: deps.Logger,
	}
	listVersions := queries.ListVersionsUseCase{
		Assets:   deps.Assets,
		Versions: deps.Versions,
		Logger:   deps.Logger,
	}
	downloadVersion := queries.DownloadVersionUseCase{
		Assets:      deps.Assets,
		Versions:    deps.Versions,
		Signer:      deps.Signer,
		Clock:       deps.Clock,
		DownloadTTL: deps.DownloadTTL,
		Logger:      deps.Logger,
	}

	return Module{
		Handler: httpadapter.Handler{
			CreateAsset:     createAsset,
			CreateVersion:   createVersion,
			PublishVersion:  publishVersion,
			ScheduleVersion: scheduleVersion,
			ExpireVersion:   expireVersion,
			ArchiveVersion:  archiveVersion,
			GetAsset:        getAsset,
			ListAssets:      listAssets,
			ListVersions:    listVersions,
			DownloadVersion: downloadVersion,
			Logger:          deps.Logger,
		},
	}
}

func NewInMemoryModule(seed []entities.Asset, logger *slog.Logger) Module {
	store := memory.NewStore(seed)
	module := NewModule(Dependencies{
		Assets:         store,
		Versions:       store,
		History:        store,
		Idempotency:    store,
		Outbox:         store,
		Notifier:       store,
		Signer:         jwtsign.New([]byte("local-dev-secret"), ""),
		Clock:          store,
		IDGenerator:    store,
		IdempotencyTTL: 7 * 24 * time.Hour,
		DownloadTTL:    15 * time.Minute,
		Logger:         logger,
	})
	module.Store = store
	return module
}
