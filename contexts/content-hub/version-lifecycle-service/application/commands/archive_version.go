package commands

import (
	"context"
	"log/slog"
	"strings"

	application "enablehub/contexts/content-hub/version-lifecycle-service/application"
	"enablehub/contexts/content-hub/version-lifecycle-service/domain/entities"
	domainerrors "enablehub/contexts/content-hub/version-lifecycle-service/domain/errors"
	"enablehub/contexts/content-hub/version-lifecycle-service/domain/services"
	"enablehub/contexts/content-hub/version-lifecycle-service/ports"
)

type ArchiveVersionCommand struct {
	VersionID string
	ActorID   string
	Reason    string
}

type ArchiveVersionResult struct {
	Version entities.AssetVersion
}

type ArchiveVersionUseCase struct {
	Assets   ports.AssetRepository
	Versions ports.VersionRepository
	History  ports.HistoryRepository
	Outbox   ports.OutboxWriter
	Clock    ports.Clock
	IDGen    ports.IDGenerator
	Logger   *slog.Logger
}

func (uc ArchiveVersionUseCase) Execute(ctx context.Context, cmd ArchiveVersionCommand) (ArchiveVersionResult, error) {
	logger := application.ResolveLogger(uc.Logger)
	actorID := strings.TrimSpace(cmd.ActorID)
	if actorID == "" {
		return ArchiveVersionResult{}, domainerrors.ErrInvalidVersionInput
	}

	version, err := uc.Versions.GetVersion(ctx, strings.TrimSpace(cmd.VersionID))
	if err != nil {
		return ArchiveVersionResult{}, err
	}
	asset, err := uc.Assets.GetAsset(ctx, version.AssetID)
	if err != nil {
		return ArchiveVersionResult{}, err
	}

	now := uc.Clock.Now().UTC()
	from := version.Status
	archived, err := services.Archive(version, now)
	if err != nil {
		return ArchiveVersionResult{}, err
	}

	if err := uc.Versions.UpdateVersion(ctx, archived); err != nil {
		return ArchiveVersionResult{}, err
	}
	if from == entities.VersionStatusScheduled {
		if err := uc.Assets.ReleaseScheduledVersion(ctx, asset.AssetID, archived.VersionID); err != nil {
			return ArchiveVersionResult{}, err
		}
	}
	if from == entities.VersionStatusPublished {
		if err := recomputePublishedPointer(ctx, uc.Assets, uc.Versions, asset, archived.VersionID, now); err != nil {
			return ArchiveVersionResult{}, err
		}
	}
	if err := appendTransition(ctx, uc.History, uc.IDGen, archived, from, actorID, strings.TrimSpace(cmd.Reason), now); err != nil {
		return ArchiveVersionResult{}, err
	}
	if err := appendVersionEvent(ctx, uc.Outbox, uc.IDGen, EventTypeVersionArchived, archived, actorID, now); err != nil {
		return ArchiveVersionResult{}, err
	}

	logger.Info("asset version archived",
		"event", "asset_version_archived",
		"module", "content-hub/version-lifecycle-service",
		"layer", "application",
		"asset_id", archived.AssetID,
		"version_id", archived.VersionID,
		"from_status", string(from),
	)
	return ArchiveVersionResult{Version: archived}, nil
}
