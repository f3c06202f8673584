package commands

import (
	"context"
	"time"

	"enablehub/contexts/content-hub/version-lifecycle-service/domain/entities"
	"enablehub/contexts/content-hub/version-lifecycle-service/ports"
)

// recomputePublishedPointer keeps the asset's current-published back-reference
// tracking the latest still-published version after one of its versions left
// the published state. A stale pointer to an expired or archived version is
// never left behind.
func recomputePublishedPointer(
	ctx context.Context,
	assets ports.AssetRepository,
	versions ports.VersionRepository,
	asset entities.Asset,
	departedVersionID string,
	now time.Time,
) error {
	if asset.CurrentPublishedVersionID == nil || *asset.CurrentPublishedVersionID != departedVersionID {
		return nil
	}

	latest, found, err := versions.GetLatestPublished(ctx, asset.AssetID)
	if err != nil {
		return err
	}
	if !found {
		return assets.SetCurrentPublishedVersion(ctx, asset.AssetID, nil, now)
	}
	return assets.SetCurrentPublishedVersion(ctx, asset.AssetID, &latest.VersionID, now)
}
