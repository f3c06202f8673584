package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"strings"
	"time"

	application "enablehub/contexts/content-hub/version-lifecycle-service/application"
	"enablehub/contexts/content-hub/version-lifecycle-service/domain/entities"
	domainerrors "enablehub/contexts/content-hub/version-lifecycle-service/domain/errors"
	"enablehub/contexts/content-hub/version-lifecycle-service/ports"
)

type CreateAssetCommand struct {
	OwnerID        string
	IdempotencyKey string
	Title          string
	AssetType      string
	SourceType     string
}

type CreateAssetResult struct {
	Asset    entities.Asset
	Replayed bool
}

type CreateAssetUseCase struct {
	Assets         ports.AssetRepository
	Idempotency    ports.IdempotencyStore
	Clock          ports.Clock
	IDGenerator    ports.IDGenerator
	IdempotencyTTL time.Duration
	Logger         *slog.Logger
}

func (uc CreateAssetUseCase) Execute(ctx context.Context, cmd CreateAssetCommand) (CreateAssetResult, error) {
	logger := application.ResolveLogger(uc.Logger)
	if strings.TrimSpace(cmd.IdempotencyKey) == "" {
		return CreateAssetResult{}, domainerrors.ErrIdempotencyKeyRequired
	}

	title := strings.TrimSpace(cmd.Title)
	assetType := strings.TrimSpace(cmd.AssetType)
	ownerID := strings.TrimSpace(cmd.OwnerID)
	sourceType := entities.AssetSourceType(strings.TrimSpace(cmd.SourceType))
	if title == "" || assetType == "" || ownerID == "" || !entities.IsSupportedSourceType(sourceType) {
		return CreateAssetResult{}, domainerrors.ErrInvalidAssetInput
	}

	now := uc.Clock.Now().UTC()
	requestHash := hashRequest(ownerID, title, assetType, string(sourceType))
	if record, found, err := uc.Idempotency.GetRecord(ctx, cmd.IdempotencyKey, now); err != nil {
		return CreateAssetResult{}, err
	} else if found {
		if record.RequestHash != requestHash {
			return CreateAssetResult{}, domainerrors.ErrIdempotencyKeyConflict
		}
		asset, err := uc.Assets.GetAsset(ctx, record.EntityID)
		if err != nil {
			return CreateAssetResult{}, err
		}
		return CreateAssetResult{Asset: asset, Replayed: true}, nil
	}

	assetID, err := uc.IDGenerator.NewID(ctx)
	if err != nil {
		return CreateAssetResult{}, err
	}

	asset := entities.Asset{
		AssetID:    assetID,
		Title:      title,
		AssetType:  assetType,
		OwnerID:    ownerID,
		SourceType: sourceType,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.Assets.CreateAsset(ctx, asset); err != nil {
		return CreateAssetResult{}, err
	}
	if err := uc.Idempotency.PutRecord(ctx, ports.IdempotencyRecord{
		Key:         cmd.IdempotencyKey,
		RequestHash: requestHash,
		EntityID:    assetID,
		ExpiresAt:   now.Add(uc.idempotencyTTL()),
	}); err != nil {
		return CreateAssetResult{}, err
	}

	logger.Info("asset created",
		"event", "asset_created",
		"module", "content-hub/version-lifecycle-service",
		"layer", "application",
		"asset_id", assetID,
		"owner_id", ownerID,
	)
	return CreateAssetResult{Asset: asset}, nil
}

func (uc CreateAssetUseCase) idempotencyTTL() time.Duration {
	if uc.IdempotencyTTL <= 0 {
		return 7 * 24 * time.Hour
	}
	return uc.IdempotencyTTL
}

func hashRequest(parts ...string) string {
	sum := sha256.Sum256([]byte(strings.Join(parts, "|")))
	return hex.EncodeToString(sum[:])
}
