package queries

import (
	"context"
	"log/slog"
	"strings"

	"enablehub/contexts/content-hub/version-lifecycle-service/domain/entities"
	"enablehub/contexts/content-hub/version-lifecycle-service/ports"
)

type ListAssetsQuery struct {
	OwnerID   string
	AssetType string
}

type ListAssetsResult struct {
	Items []entities.Asset
}

type ListAssetsUseCase struct {
	Assets ports.AssetRepository
	Logger *slog.Logger
}

func (uc ListAssetsUseCase) Execute(ctx context.Context, q ListAssetsQuery) (ListAssetsResult, error) {
	items, err := uc.Assets.ListAssets(ctx, ports.AssetFilter{
		OwnerID:   strings.TrimSpace(q.OwnerID),
		AssetType: strings.TrimSpace(q.AssetType),
	})
	if err != nil {
		return ListAssetsResult{}, err
	}
	return ListAssetsResult{Items: items}, nil
}
