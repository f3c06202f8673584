package messaging

import (
	"context"
	"time"

	"enablehub/contexts/content-hub/version-lifecycle-service/domain/entities"
	"enablehub/contexts/content-hub/version-lifecycle-service/ports"

	"github.com/google/uuid"
)

const notificationsTopic = "content-hub.notifications"

// BusNotifier fans new-version notifications out over the event bus. Callers
// treat delivery as best-effort.
type BusNotifier struct {
	Bus *Bus
}

type newVersionNotification struct {
	AssetID       string `json:"asset_id"`
	AssetTitle    string `json:"asset_title"`
	OwnerID       string `json:"owner_id"`
	VersionID     string `json:"version_id"`
	VersionNumber int    `json:"version_number"`
}

func (n BusNotifier) NotifyNewVersion(ctx context.Context, asset entities.Asset, version entities.AssetVersion) error {
	return n.Bus.Publish(ctx, notificationsTopic, ports.EventEnvelope{
		EventID:       uuid.NewString(),
		EventType:     "content_hub.new_version_notification",
		SourceService: "content-hub/version-lifecycle-service",
		OccurredAtUTC: time.Now().UTC(),
		EntityType:    "asset",
		EntityID:      asset.AssetID,
		Payload: newVersionNotification{
			AssetID:       asset.AssetID,
			AssetTitle:    asset.Title,
			OwnerID:       asset.OwnerID,
			VersionID:     version.VersionID,
			VersionNumber: version.VersionNumber,
		},
	})
}
