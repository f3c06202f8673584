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

type ExpireVersionCommand struct {
	VersionID string
	ActorID   string
}

type ExpireVersionResult struct {
	Version entities.AssetVersion
}

type ExpireVersionUseCase struct {
	Assets   ports.AssetRepository
	Versions ports.VersionRepository
	History  ports.HistoryRepository
	Outbox   ports.OutboxWriter
	Clock    ports.Clock
	IDGen    ports.IDGenerator
	Logger   *slog.Logger
}

func (uc ExpireVersionUseCase) Execute(ctx context.Context, cmd ExpireVersionCommand) (ExpireVersionResult, error) {
	logger := application.ResolveLogger(uc.Logger)
	actorID := strings.TrimSpace(cmd.ActorID)
	if actorID == "" {
		return ExpireVersionResult{}, domainerrors.ErrInvalidVersionInput
	}

	version, err := uc.Versions.GetVersion(ctx, strings.TrimSpace(cmd.VersionID))
	if err != nil {
		return ExpireVersionResult{}, err
	}
	asset, err := uc.Assets.GetAsset(ctx, version.AssetID)
	if err != nil {
		return ExpireVersionResult{}, err
	}

	now := uc.Clock.Now().UTC()
	from := version.Status
	expired, err := services.Expire(version, now)
	if err != nil {
		return ExpireVersionResult{}, err
	}

	if err := uc.Versions.UpdateVersion(ctx, expired); err != nil {
		return ExpireVersionResult{}, err
	}
	if err := recomputePublishedPointer(ctx, uc.Assets, uc.Versions, asset, expired.VersionID, now); err != nil {
		return ExpireVersionResult{}, err
	}
	if err := appendTransition(ctx, uc.History, uc.IDGen, expired, from, actorID, "", now); err != nil {
		return ExpireVersionResult{}, err
	}
	if err := appendVersionEvent(ctx, uc.Outbox, uc.IDGen, EventTypeVersionExpired, expired, actorID, now); err != nil {
		return ExpireVersionResult{}, err
	}

	logger.Info("asset version expired",
		"event", "asset_version_expired",
		"module", "content-hub/version-lifecycle-service",
		"layer", "application",
		"asset_id", expired.AssetID,
		"version_id", expired.VersionID,
	)
	return ExpireVersionResult{Version: expired}, nil
}
