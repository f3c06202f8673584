package commands

import (
	"context"
	"time"

	"enablehub/contexts/content-hub/version-lifecycle-service/domain/entities"
	"enablehub/contexts/content-hub/version-lifecycle-service/ports"
)

const (
	EventTypeVersionPublished = "content_hub.version_published"
	EventTypeVersionExpired   = "content_hub.version_expired"
	EventTypeVersionArchived  = "content_hub.version_archived"

	sourceService = "content-hub/version-lifecycle-service"
)

type versionEventPayload struct {
	AssetID       string `json:"asset_id"`
	VersionID     string `json:"version_id"`
	VersionNumber int    `json:"version_number"`
	Status        string `json:"status"`
	ActorID       string `json:"actor_id,omitempty"`
}

func appendVersionEvent(
	ctx context.Context,
	outbox ports.OutboxWriter,
	idGen ports.IDGenerator,
	eventType string,
	version entities.AssetVersion,
	actorID string,
	occurredAt time.Time,
) error {
	if outbox == nil {
		return nil
	}
	eventID, err := idGen.NewID(ctx)
	if err != nil {
		return err
	}
	return outbox.AppendOutbox(ctx, ports.EventEnvelope{
		EventID:       eventID,
		EventType:     eventType,
		SourceService: sourceService,
		OccurredAtUTC: occurredAt.UTC(),
		EntityType:    "asset_version",
		EntityID:      version.VersionID,
		Payload: versionEventPayload{
			AssetID:       version.AssetID,
			VersionID:     version.VersionID,
			VersionNumber: version.VersionNumber,
			Status:        string(version.Status),
			ActorID:       actorID,
		},
	})
}
