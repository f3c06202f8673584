package queries

import (
	"context"
	"log/slog"
	"strings"

	"enablehub/contexts/content-hub/version-lifecycle-service/domain/entities"
	domainerrors "enablehub/contexts/content-hub/version-lifecycle-service/domain/errors"
	"enablehub/contexts/content-hub/version-lifecycle-service/ports"
)

type ListVersionsQuery struct {
	AssetID string
}

type ListVersionsResult struct {
	Items []entities.AssetVersion
}

type ListVersionsUseCase struct {
	Assets   ports.AssetRepository
	Versions ports.VersionRepository
	Logger   *slog.Logger
}

func (uc ListVersionsUseCase) Execute(ctx context.Context, q ListVersionsQuery) (ListVersionsResult, error) {
	assetID := strings.TrimSpace(q.AssetID)
	if assetID == "" {
		return ListVersionsResult{}, domainerrors.ErrInvalidAssetInput
	}
	if _, err := uc.Assets.GetAsset(ctx, assetID); err != nil {
		return ListVersionsResult{}, err
	}
	items, err := uc.Versions.ListVersionsByAsset(ctx, assetID)
	if err != nil {
		return ListVersionsResult{}, err
	}
	return ListVersionsResult{Items: items}, nil
}
