package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	application "enablehub/contexts/content-hub/version-lifecycle-service/application"
	"enablehub/contexts/content-hub/version-lifecycle-service/domain/entities"
	domainerrors "enablehub/contexts/content-hub/version-lifecycle-service/domain/errors"
	"enablehub/contexts/content-hub/version-lifecycle-service/domain/services"
	"enablehub/contexts/content-hub/version-lifecycle-service/ports"
)

type ScheduleVersionCommand struct {
	VersionID string
	ActorID   string
	PublishAt time.Time
}

type ScheduleVersionResult struct {
	Version entities.AssetVersion
}

type ScheduleVersionUseCase struct {
	Assets   ports.AssetRepository
	Versions ports.VersionRepository
	History  ports.HistoryRepository
	Clock    ports.Clock
	IDGen    ports.IDGenerator
	Logger   *slog.Logger
}

func (uc ScheduleVersionUseCase) Execute(ctx context.Context, cmd ScheduleVersionCommand) (ScheduleVersionResult, error) {
	logger := application.ResolveLogger(uc.Logger)
	actorID := strings.TrimSpace(cmd.ActorID)
	if actorID == "" {
		return ScheduleVersionResult{}, domainerrors.ErrInvalidVersionInput
	}

	version, err := uc.Versions.GetVersion(ctx, strings.TrimSpace(cmd.VersionID))
	if err != nil {
		return ScheduleVersionResult{}, err
	}

	now := uc.Clock.Now().UTC()
	from := version.Status
	scheduled, err := services.Schedule(version, cmd.PublishAt, actorID, now)
	if err != nil {
		return ScheduleVersionResult{}, err
	}

	// The schedule slot is claimed with a conditional write so two racing
	// schedule calls for the same asset cannot both succeed.
	claimed, err := uc.Assets.ClaimScheduledVersion(ctx, scheduled.AssetID, scheduled.VersionID)
	if err != nil {
		return ScheduleVersionResult{}, err
	}
	if !claimed {
		return ScheduleVersionResult{}, domainerrors.ErrScheduleConflict
	}

	if err := uc.Versions.UpdateVersion(ctx, scheduled); err != nil {
		return ScheduleVersionResult{}, err
	}
	if err := appendTransition(ctx, uc.History, uc.IDGen, scheduled, from, actorID, "", now); err != nil {
		return ScheduleVersionResult{}, err
	}

	logger.Info("asset version scheduled",
		"event", "asset_version_scheduled",
		"module", "content-hub/version-lifecycle-service",
		"layer", "application",
		"asset_id", scheduled.AssetID,
		"version_id", scheduled.VersionID,
		"publish_at", scheduled.PublishAt.Format(time.RFC3339),
	)
	return ScheduleVersionResult{Version: scheduled}, nil
}
