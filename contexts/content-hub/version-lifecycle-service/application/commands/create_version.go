package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	application "enablehub/contexts/content-hub/version-lifecycle-service/application"
	"enablehub/contexts/content-hub/version-lifecycle-service/domain/entities"
	domainerrors "enablehub/contexts/content-hub/version-lifecycle-service/domain/errors"
	"enablehub/contexts/content-hub/version-lifecycle-service/ports"
)

type CreateVersionCommand struct {
	AssetID        string
	ActorID        string
	IdempotencyKey string
	StorageKey     string
	ExpireAt       *time.Time
}

type CreateVersionResult struct {
	Version  entities.AssetVersion
	Replayed bool
}

type CreateVersionUseCase struct {
	Assets         ports.AssetRepository
	Versions       ports.VersionRepository
	Idempotency    ports.IdempotencyStore
	Clock          ports.Clock
	IDGenerator    ports.IDGenerator
	IdempotencyTTL time.Duration
	Logger         *slog.Logger
}

func (uc CreateVersionUseCase) Execute(ctx context.Context, cmd CreateVersionCommand) (CreateVersionResult, error) {
	logger := application.ResolveLogger(uc.Logger)
	if strings.TrimSpace(cmd.IdempotencyKey) == "" {
		return CreateVersionResult{}, domainerrors.ErrIdempotencyKeyRequired
	}
	assetID := strings.TrimSpace(cmd.AssetID)
	actorID := strings.TrimSpace(cmd.ActorID)
	if assetID == "" || actorID == "" {
		return CreateVersionResult{}, domainerrors.ErrInvalidVersionInput
	}

	if _, err := uc.Assets.GetAsset(ctx, assetID); err != nil {
		return CreateVersionResult{}, err
	}

	now := uc.Clock.Now().UTC()
	requestHash := hashRequest(assetID, actorID, strings.TrimSpace(cmd.StorageKey))
	if record, found, err := uc.Idempotency.GetRecord(ctx, cmd.IdempotencyKey, now); err != nil {
		return CreateVersionResult{}, err
	} else if found {
		if record.RequestHash != requestHash {
			return CreateVersionResult{}, domainerrors.ErrIdempotencyKeyConflict
		}
		version, err := uc.Versions.GetVersion(ctx, record.EntityID)
		if err != nil {
			return CreateVersionResult{}, err
		}
		return CreateVersionResult{Version: version, Replayed: true}, nil
	}

	number, err := uc.Versions.NextVersionNumber(ctx, assetID)
	if err != nil {
		return CreateVersionResult{}, err
	}
	versionID, err := uc.IDGenerator.NewID(ctx)
	if err != nil {
		return CreateVersionResult{}, err
	}

	version := entities.AssetVersion{
		VersionID:     versionID,
		AssetID:       assetID,
		VersionNumber: number,
		Status:        entities.VersionStatusDraft,
		ExpireAt:      normalizeOptionalTime(cmd.ExpireAt),
		StorageKey:    strings.TrimSpace(cmd.StorageKey),
		CreatedAt:     now,
		CreatedBy:     actorID,
		UpdatedAt:     now,
		UpdatedBy:     actorID,
	}
	if err := uc.Versions.CreateVersion(ctx, version); err != nil {
		return CreateVersionResult{}, err
	}
	if err := uc.Idempotency.PutRecord(ctx, ports.IdempotencyRecord{
		Key:         cmd.IdempotencyKey,
		RequestHash: requestHash,
		EntityID:    versionID,
		ExpiresAt:   now.Add(uc.idempotencyTTL()),
	}); err != nil {
		return CreateVersionResult{}, err
	}

	logger.Info("asset version created",
		"event", "asset_version_created",
		"module", "content-hub/version-lifecycle-service",
		"layer", "application",
		"asset_id", assetID,
		"version_id", versionID,
		"version_number", number,
	)
	return CreateVersionResult{Version: version}, nil
}

func (uc CreateVersionUseCase) idempotencyTTL() time.Duration {
	if uc.IdempotencyTTL <= 0 {
		return 7 * 24 * time.Hour
	}
	return uc.IdempotencyTTL
}

func normalizeOptionalTime(value *time.Time) *time.Time {
	if value == nil {
		return nil
	}
	utc := value.UTC()
	return &utc
}
