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

type PublishVersionCommand struct {
	VersionID string
	ActorID   string
	ChangeLog string
}

type PublishVersionResult struct {
	Version entities.AssetVersion
}

type PublishVersionUseCase struct {
	Assets   ports.AssetRepository
	Versions ports.VersionRepository
	History  ports.HistoryRepository
	Outbox   ports.OutboxWriter
	Notifier ports.Notifier
	Clock    ports.Clock
	IDGen    ports.IDGenerator
	Logger   *slog.Logger
}

func (uc PublishVersionUseCase) Execute(ctx context.Context, cmd PublishVersionCommand) (PublishVersionResult, error) {
	logger := application.ResolveLogger(uc.Logger)
	actorID := strings.TrimSpace(cmd.ActorID)
	if actorID == "" {
		return PublishVersionResult{}, domainerrors.ErrInvalidVersionInput
	}

	version, err := uc.Versions.GetVersion(ctx, strings.TrimSpace(cmd.VersionID))
	if err != nil {
		return PublishVersionResult{}, err
	}
	asset, err := uc.Assets.GetAsset(ctx, version.AssetID)
	if err != nil {
		return PublishVersionResult{}, err
	}
	if !asset.HasPublishableMetadata() {
		return PublishVersionResult{}, domainerrors.ErrInvalidAssetMetadata
	}

	now := uc.Clock.Now().UTC()
	from := version.Status
	heldSchedule := from == entities.VersionStatusScheduled

	published, patch, err := services.Publish(version, actorID, cmd.ChangeLog, now)
	if err != nil {
		return PublishVersionResult{}, err
	}

	if err := uc.Versions.UpdateVersion(ctx, published); err != nil {
		return PublishVersionResult{}, err
	}
	if err := uc.Assets.SetCurrentPublishedVersion(ctx, asset.AssetID, patch.CurrentPublishedVersionID, now); err != nil {
		return PublishVersionResult{}, err
	}
	if heldSchedule {
		if err := uc.Assets.ReleaseScheduledVersion(ctx, asset.AssetID, published.VersionID); err != nil {
			return PublishVersionResult{}, err
		}
	}

	if err := appendTransition(ctx, uc.History, uc.IDGen, published, from, actorID, cmd.ChangeLog, now); err != nil {
		return PublishVersionResult{}, err
	}
	if err := appendVersionEvent(ctx, uc.Outbox, uc.IDGen, EventTypeVersionPublished, published, actorID, now); err != nil {
		return PublishVersionResult{}, err
	}

	// Subscriber fanout is fire-and-forget: a notifier failure never rolls
	// back an already-persisted publish.
	if uc.Notifier != nil {
		if err := uc.Notifier.NotifyNewVersion(ctx, asset, published); err != nil {
			logger.Warn("new version notification failed",
				"event", "version_publish_notify_failed",
				"module", "content-hub/version-lifecycle-service",
				"layer", "application",
				"asset_id", asset.AssetID,
				"version_id", published.VersionID,
				"error", err.Error(),
			)
		}
	}

	logger.Info("asset version published",
		"event", "asset_version_published",
		"module", "content-hub/version-lifecycle-service",
		"layer", "application",
		"asset_id", asset.AssetID,
		"version_id", published.VersionID,
		"version_number", published.VersionNumber,
		"from_status", string(from),
	)
	return PublishVersionResult{Version: published}, nil
}
