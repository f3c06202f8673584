package postgresadapter

import (
	"time"

	"gorm.io/gorm"

	"enablehub/contexts/content-hub/version-lifecycle-service/domain/entities"
)

type assetModel struct {
	AssetID                   string     `gorm:"column:asset_id;primaryKey"`
	Title                     string     `gorm:"column:title"`
	AssetType                 string     `gorm:"column:asset_type"`
	OwnerID                   string     `gorm:"column:owner_id;index"`
	SourceType                string     `gorm:"column:source_type"`
	CurrentPublishedVersionID *string    `gorm:"column:current_published_version_id"`
	ScheduledVersionID        *string    `gorm:"column:scheduled_version_id"`
	CreatedAt                 time.Time  `gorm:"column:created_at"`
	UpdatedAt                 time.Time  `gorm:"column:updated_at"`
}

func (assetModel) TableName() string { return "hub_assets" }

func assetModelFromEntity(asset entities.Asset) assetModel {
	return assetModel{
		AssetID:                   asset.AssetID,
		Title:                     asset.Title,
		AssetType:                 asset.AssetType,
		OwnerID:                   asset.OwnerID,
		SourceType:                string(asset.SourceType),
		CurrentPublishedVersionID: asset.CurrentPublishedVersionID,
		ScheduledVersionID:        asset.ScheduledVersionID,
		CreatedAt:                 asset.CreatedAt.UTC(),
		UpdatedAt:                 asset.UpdatedAt.UTC(),
	}
}

func assetUpdatesFromEntity(asset entities.Asset) map[string]any {
	return map[string]any{
		"title":                        asset.Title,
		"asset_type":                   asset.AssetType,
		"owner_id":                     asset.OwnerID,
		"source_type":                  string(asset.SourceType),
		"current_published_version_id": asset.CurrentPublishedVersionID,
		"scheduled_version_id":         asset.ScheduledVersionID,
		"updated_at":                   asset.UpdatedAt.UTC(),
	}
}

func (m assetModel) toEntity() entities.Asset {
	return entities.Asset{
		AssetID:                   m.AssetID,
		Title:                     m.Title,
		AssetType:                 m.AssetType,
		OwnerID:                   m.OwnerID,
		SourceType:                entities.AssetSourceType(m.SourceType),
		CurrentPublishedVersionID: m.CurrentPublishedVersionID,
		ScheduledVersionID:        m.ScheduledVersionID,
		CreatedAt:                 m.CreatedAt.UTC(),
		UpdatedAt:                 m.UpdatedAt.UTC(),
	}
}

type versionModel struct {
	VersionID     string     `gorm:"column:version_id;primaryKey"`
	AssetID       string     `gorm:"column:asset_id;index;uniqueIndex:idx_asset_version_number,priority:1"`
	VersionNumber int        `gorm:"column:version_number;uniqueIndex:idx_asset_version_number,priority:2"`
	Status        string     `gorm:"column:status;index"`
	PublishAt     *time.Time `gorm:"column:publish_at"`
	ExpireAt      *time.Time `gorm:"column:expire_at"`
	PublishedAt   *time.Time `gorm:"column:published_at"`
	ExpiredAt     *time.Time `gorm:"column:expired_at"`
	ArchivedAt    *time.Time `gorm:"column:archived_at"`
	ChangeLog     string     `gorm:"column:change_log"`
	StorageKey    string     `gorm:"column:storage_key"`
	CreatedAt     time.Time  `gorm:"column:created_at"`
	CreatedBy     string     `gorm:"column:created_by"`
	UpdatedAt     time.Time  `gorm:"column:updated_at"`
	UpdatedBy     string     `gorm:"column:updated_by"`
}

func (versionModel) TableName() string { return "hub_asset_versions" }

func versionModelFromEntity(version entities.AssetVersion) versionModel {
	return versionModel{
		VersionID:     version.VersionID,
		AssetID:       version.AssetID,
		VersionNumber: version.VersionNumber,
		Status:        string(version.Status),
		PublishAt:     version.PublishAt,
		ExpireAt:      version.ExpireAt,
		PublishedAt:   version.PublishedAt,
		ExpiredAt:     version.ExpiredAt,
		ArchivedAt:    version.ArchivedAt,
		ChangeLog:     version.ChangeLog,
		StorageKey:    version.StorageKey,
		CreatedAt:     version.CreatedAt.UTC(),
		CreatedBy:     version.CreatedBy,
		UpdatedAt:     version.UpdatedAt.UTC(),
		UpdatedBy:     version.UpdatedBy,
	}
}

func versionUpdatesFromEntity(version entities.AssetVersion) map[string]any {
	return map[string]any{
		"status":       string(version.Status),
		"publish_at":   version.PublishAt,
		"expire_at":    version.ExpireAt,
		"published_at": version.PublishedAt,
		"expired_at":   version.ExpiredAt,
		"archived_at":  version.ArchivedAt,
		"change_log":   version.ChangeLog,
		"updated_at":   version.UpdatedAt.UTC(),
		"updated_by":   version.UpdatedBy,
	}
}

func (m versionModel) toEntity() entities.AssetVersion {
	return entities.AssetVersion{
		VersionID:     m.VersionID,
		AssetID:       m.AssetID,
		VersionNumber: m.VersionNumber,
		Status:        entities.VersionStatus(m.Status),
		PublishAt:     m.PublishAt,
		ExpireAt:      m.ExpireAt,
		PublishedAt:   m.PublishedAt,
		ExpiredAt:     m.ExpiredAt,
		ArchivedAt:    m.ArchivedAt,
		ChangeLog:     m.ChangeLog,
		StorageKey:    m.StorageKey,
		CreatedAt:     m.CreatedAt.UTC(),
		CreatedBy:     m.CreatedBy,
		UpdatedAt:     m.UpdatedAt.UTC(),
		UpdatedBy:     m.UpdatedBy,
	}
}

type historyModel struct {
	HistoryID    string    `gorm:"column:history_id;primaryKey"`
	AssetID      string    `gorm:"column:asset_id;index"`
	VersionID    string    `gorm:"column:version_id;index"`
	FromStatus   string    `gorm:"column:from_status"`
	ToStatus     string    `gorm:"column:to_status"`
	ChangedBy    string    `gorm:"column:changed_by"`
	ChangeReason string    `gorm:"column:change_reason"`
	CreatedAt    time.Time `gorm:"column:created_at"`
}

func (historyModel) TableName() string { return "hub_version_history" }

func historyModelFromEntity(item entities.VersionHistory) historyModel {
	return historyModel{
		HistoryID:    item.HistoryID,
		AssetID:      item.AssetID,
		VersionID:    item.VersionID,
		FromStatus:   string(item.FromStatus),
		ToStatus:     string(item.ToStatus),
		ChangedBy:    item.ChangedBy,
		ChangeReason: item.ChangeReason,
		CreatedAt:    item.CreatedAt.UTC(),
	}
}

type idempotencyModel struct {
	Key         string    `gorm:"column:key;primaryKey"`
	RequestHash string    `gorm:"column:request_hash"`
	EntityID    string    `gorm:"column:entity_id"`
	ExpiresAt   time.Time `gorm:"column:expires_at;index"`
}

func (idempotencyModel) TableName() string { return "hub_idempotency_records" }

type outboxModel struct {
	OutboxID     string     `gorm:"column:outbox_id;primaryKey"`
	EventType    string     `gorm:"column:event_type"`
	PartitionKey string     `gorm:"column:partition_key"`
	Payload      []byte     `gorm:"column:payload"`
	Status       string     `gorm:"column:status;index"`
	CreatedAt    time.Time  `gorm:"column:created_at"`
	SentAt       *time.Time `gorm:"column:sent_at"`
}

func (outboxModel) TableName() string { return "hub_outbox" }

// Migrate creates or updates the hub tables. Called once at process start.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&assetModel{},
		&versionModel{},
		&historyModel{},
		&idempotencyModel{},
		&outboxModel{},
	)
}
