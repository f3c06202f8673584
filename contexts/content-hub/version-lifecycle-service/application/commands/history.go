package commands

import (
	"context"
	"time"

	"enablehub/contexts/content-hub/version-lifecycle-service/domain/entities"
	"enablehub/contexts/content-hub/version-lifecycle-service/ports"
)

func appendTransition(
	ctx context.Context,
	history ports.HistoryRepository,
	idGen ports.IDGenerator,
	version entities.AssetVersion,
	from entities.VersionStatus,
	actorID string,
	reason string,
	now time.Time,
) error {
	if history == nil {
		return nil
	}
	historyID, err := idGen.NewID(ctx)
	if err != nil {
		return err
	}
	return history.AppendTransition(ctx, entities.VersionHistory{
		HistoryID:    historyID,
		AssetID:      version.AssetID,
		VersionID:    version.VersionID,
		FromStatus:   from,
		ToStatus:     version.Status,
		ChangedBy:    actorID,
		ChangeReason: reason,
		CreatedAt:    now.UTC(),
	})
}
