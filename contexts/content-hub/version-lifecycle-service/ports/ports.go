package ports

import (
	"context"
	"time"

	"enablehub/contexts/content-hub/version-lifecycle-service/domain/entities"
	"enablehub/internal/shared/events"
)

type AssetFilter struct {
	OwnerID   string
	AssetType string
}

type AssetRepository interface {
	CreateAsset(ctx context.Context, asset entities.Asset) error
	UpdateAsset(ctx context.Context, asset entities.Asset) error
	GetAsset(ctx context.Context, assetID string) (entities.Asset, error)
	ListAssets(ctx context.Context, filter AssetFilter) ([]entities.Asset, error)

	// ClaimScheduledVersion takes the asset's schedule slot with a
	// conditional write. It succeeds when the slot is empty or already held
	// by the same version, and reports false when another version holds it.
	ClaimScheduledVersion(ctx context.Context, assetID string, versionID string) (bool, error)
	ReleaseScheduledVersion(ctx context.Context, assetID string, versionID string) error

	// SetCurrentPublishedVersion rewrites the asset's published pointer.
	// A nil versionID clears it.
	SetCurrentPublishedVersion(ctx context.Context, assetID string, versionID *string, updatedAt time.Time) error
}

type VersionRepository interface {
	CreateVersion(ctx context.Context, version entities.AssetVersion) error
	UpdateVersion(ctx context.Context, version entities.AssetVersion) error
	GetVersion(ctx context.Context, versionID string) (entities.AssetVersion, error)
	ListVersionsByAsset(ctx context.Context, assetID string) ([]entities.AssetVersion, error)

	// NextVersionNumber returns max(existing)+1 for the asset, or 1 when the
	// asset has no versions yet.
	NextVersionNumber(ctx context.Context, assetID string) (int, error)

	ListScheduledToPublish(ctx context.Context, now time.Time, limit int) ([]entities.AssetVersion, error)
	ListPublishedToExpire(ctx context.Context, now time.Time, limit int) ([]entities.AssetVersion, error)
	GetLatestPublished(ctx context.Context, assetID string) (entities.AssetVersion, bool, error)
}

type HistoryRepository interface {
	AppendTransition(ctx context.Context, item entities.VersionHistory) error
}

type IdempotencyRecord struct {
	Key         string
	RequestHash string
	EntityID    string
	ExpiresAt   time.Time
}

type IdempotencyStore interface {
	GetRecord(ctx context.Context, key string, now time.Time) (IdempotencyRecord, bool, error)
	PutRecord(ctx context.Context, record IdempotencyRecord) error
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

// Notifier fans a publish out to asset subscribers. Calls are best-effort:
// use cases log a failure and continue, they never fail the transition.
type Notifier interface {
	NotifyNewVersion(ctx context.Context, asset entities.Asset, version entities.AssetVersion) error
}

// URLSigner issues time-bound signed download URLs for a version's stored
// object. URL generation itself is a collaborator concern; the access
// decision stays in the domain.
type URLSigner interface {
	SignDownloadURL(version entities.AssetVersion, actorID string, expiresAt time.Time) (string, error)
}

type EventEnvelope = events.Envelope

type OutboxMessage struct {
	OutboxID     string
	EventType    string
	PartitionKey string
	Payload      []byte
	CreatedAt    time.Time
}

type OutboxWriter interface {
	AppendOutbox(ctx context.Context, envelope EventEnvelope) error
}

type OutboxRepository interface {
	ListPendingOutbox(ctx context.Context, limit int) ([]OutboxMessage, error)
	MarkOutboxSent(ctx context.Context, outboxID string, sentAt time.Time) error
}

type EventPublisher interface {
	Publish(ctx context.Context, topic string, event EventEnvelope) error
}

type EventSubscriber interface {
	Subscribe(
		ctx context.Context,
		topic string,
		consumerGroup string,
		handler func(context.Context, EventEnvelope) error,
	) error
}
