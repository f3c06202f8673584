package queries

import (
	"context"
	"log/slog"
	"strings"

	"enablehub/contexts/content-hub/version-lifecycle-service/domain/entities"
	domainerrors "enablehub/contexts/content-hub/version-lifecycle-service/domain/errors"
	"enablehub/contexts/content-hub/version-lifecycle-service/ports"
)

type GetAssetQuery struct {
	AssetID string
}

type GetAssetResult struct {
	Asset entities.Asset
}

type GetAssetUseCase struct {
	Assets ports.AssetRepository
	Logger *slog.Logger
}

func (uc GetAssetUseCase) Execute(ctx context.Context, q GetAssetQuery) (GetAssetResult, error) {
	assetID := strings.TrimSpace(q.AssetID)
	if assetID == "" {
		return GetAssetResult{}, domainerrors.ErrInvalidAssetInput
	}
	asset, err := uc.Assets.GetAsset(ctx, assetID)
	if err != nil {
		return GetAssetResult{}, err
	}
	return GetAssetResult{Asset: asset}, nil
}
