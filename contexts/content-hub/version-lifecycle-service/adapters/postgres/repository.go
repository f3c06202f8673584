package postgresadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"enablehub/contexts/content-hub/version-lifecycle-service/domain/entities"
	domainerrors "enablehub/contexts/content-hub/version-lifecycle-service/domain/errors"
	"enablehub/contexts/content-hub/version-lifecycle-service/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	outboxStatusPending = "pending"
	outboxStatusSent    = "sent"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{db: db, logger: logger}
}

func (r *Repository) CreateAsset(ctx context.Context, asset entities.Asset) error {
	row := assetModelFromEntity(asset)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrInvalidAssetInput
		}
		return err
	}
	return nil
}

func (r *Repository) UpdateAsset(ctx context.Context, asset entities.Asset) error {
	result := r.db.WithContext(ctx).
		Model(&assetModel{}).
		Where("asset_id = ?", strings.TrimSpace(asset.AssetID)).
		Updates(assetUpdatesFromEntity(asset))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrAssetNotFound
	}
	return nil
}

func (r *Repository) GetAsset(ctx context.Context, assetID string) (entities.Asset, error) {
	var row assetModel
	err := r.db.WithContext(ctx).
		Where("asset_id = ?", strings.TrimSpace(assetID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Asset{}, domainerrors.ErrAssetNotFound
		}
		return entities.Asset{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ListAssets(ctx context.Context, filter ports.AssetFilter) ([]entities.Asset, error) {
	tx := r.db.WithContext(ctx).Model(&assetModel{})
	if filter.OwnerID != "" {
		tx = tx.Where("owner_id = ?", filter.OwnerID)
	}
	if filter.AssetType != "" {
		tx = tx.Where("asset_type = ?", filter.AssetType)
	}

	var rows []assetModel
	if err := tx.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]entities.Asset, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

// ClaimScheduledVersion takes the asset's schedule slot atomically: the
// UPDATE only lands when the slot is empty or already held by this version.
func (r *Repository) ClaimScheduledVersion(ctx context.Context, assetID string, versionID string) (bool, error) {
	assetID = strings.TrimSpace(assetID)
	result := r.db.WithContext(ctx).
		Model(&assetModel{}).
		Where("asset_id = ? AND (scheduled_version_id IS NULL OR scheduled_version_id = ?)", assetID, versionID).
		Update("scheduled_version_id", versionID)
	if result.Error != nil {
		return false, result.Error
	}
	if result.RowsAffected > 0 {
		return true, nil
	}

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&assetModel{}).
		Where("asset_id = ?", assetID).
		Count(&count).
		Error; err != nil {
		return false, err
	}
	if count == 0 {
		return false, domainerrors.ErrAssetNotFound
	}
	return false, nil
}

func (r *Repository) ReleaseScheduledVersion(ctx context.Context, assetID string, versionID string) error {
	return r.db.WithContext(ctx).
		Model(&assetModel{}).
		Where("asset_id = ? AND scheduled_version_id = ?", strings.TrimSpace(assetID), versionID).
		Update("scheduled_version_id", nil).
		Error
}

func (r *Repository) SetCurrentPublishedVersion(ctx context.Context, assetID string, versionID *string, updatedAt time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&assetModel{}).
		Where("asset_id = ?", strings.TrimSpace(assetID)).
		Updates(map[string]any{
			"current_published_version_id": versionID,
			"updated_at":                   updatedAt.UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrAssetNotFound
	}
	return nil
}

func (r *Repository) CreateVersion(ctx context.Context, version entities.AssetVersion) error {
	row := versionModelFromEntity(version)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrInvalidVersionInput
		}
		return err
	}
	return nil
}

func (r *Repository) UpdateVersion(ctx context.Context, version entities.AssetVersion) error {
	result := r.db.WithContext(ctx).
		Model(&versionModel{}).
		Where("version_id = ?", strings.TrimSpace(version.VersionID)).
		Updates(versionUpdatesFromEntity(version))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrVersionNotFound
	}
	return nil
}

func (r *Repository) GetVersion(ctx context.Context, versionID string) (entities.AssetVersion, error) {
	var row versionModel
	err := r.db.WithContext(ctx).
		Where("version_id = ?", strings.TrimSpace(versionID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.AssetVersion{}, domainerrors.ErrVersionNotFound
		}
		return entities.AssetVersion{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ListVersionsByAsset(ctx context.Context, assetID string) ([]entities.AssetVersion, error) {
	var rows []versionModel
	err := r.db.WithContext(ctx).
		Where("asset_id = ?", strings.TrimSpace(assetID)).
		Order("version_number DESC").
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}

	items := make([]entities.AssetVersion, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) NextVersionNumber(ctx context.Context, assetID string) (int, error) {
	var next int
	err := r.db.WithContext(ctx).
		Model(&versionModel{}).
		Select("COALESCE(MAX(version_number), 0) + 1").
		Where("asset_id = ?", strings.TrimSpace(assetID)).
		Scan(&next).
		Error
	if err != nil {
		return 0, err
	}
	return next, nil
}

func (r *Repository) ListScheduledToPublish(ctx context.Context, now time.Time, limit int) ([]entities.AssetVersion, error) {
	return r.listDue(ctx, entities.VersionStatusScheduled, "publish_at", now, limit)
}

func (r *Repository) ListPublishedToExpire(ctx context.Context, now time.Time, limit int) ([]entities.AssetVersion, error) {
	return r.listDue(ctx, entities.VersionStatusPublished, "expire_at", now, limit)
}

func (r *Repository) listDue(
	ctx context.Context,
	status entities.VersionStatus,
	column string,
	now time.Time,
	limit int,
) ([]entities.AssetVersion, error) {
	if limit <= 0 {
		limit = 100
	}

	var rows []versionModel
	err := r.db.WithContext(ctx).
		Where("status = ? AND "+column+" IS NOT NULL AND "+column+" <= ?", string(status), now.UTC()).
		Order(column + " ASC").
		Limit(limit).
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}

	items := make([]entities.AssetVersion, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) GetLatestPublished(ctx context.Context, assetID string) (entities.AssetVersion, bool, error) {
	var row versionModel
	err := r.db.WithContext(ctx).
		Where("asset_id = ? AND status = ?", strings.TrimSpace(assetID), string(entities.VersionStatusPublished)).
		Order("published_at DESC").
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.AssetVersion{}, false, nil
		}
		return entities.AssetVersion{}, false, err
	}
	return row.toEntity(), true, nil
}

func (r *Repository) AppendTransition(ctx context.Context, item entities.VersionHistory) error {
	row := historyModelFromEntity(item)
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r *Repository) GetRecord(ctx context.Context, key string, now time.Time) (ports.IdempotencyRecord, bool, error) {
	var row idempotencyModel
	err := r.db.WithContext(ctx).
		Where("key = ? AND expires_at > ?", strings.TrimSpace(key), now.UTC()).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.IdempotencyRecord{}, false, nil
		}
		return ports.IdempotencyRecord{}, false, err
	}
	return ports.IdempotencyRecord{
		Key:         row.Key,
		RequestHash: row.RequestHash,
		EntityID:    row.EntityID,
		ExpiresAt:   row.ExpiresAt.UTC(),
	}, true, nil
}

func (r *Repository) PutRecord(ctx context.Context, record ports.IdempotencyRecord) error {
	row := idempotencyModel{
		Key:         strings.TrimSpace(record.Key),
		RequestHash: record.RequestHash,
		EntityID:    record.EntityID,
		ExpiresAt:   record.ExpiresAt.UTC(),
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			var existing idempotencyModel
			if lookupErr := r.db.WithContext(ctx).
				Where("key = ?", row.Key).
				First(&existing).
				Error; lookupErr != nil {
				return lookupErr
			}
			if existing.RequestHash != row.RequestHash {
				return domainerrors.ErrIdempotencyKeyConflict
			}
			return nil
		}
		return err
	}
	return nil
}

func (r *Repository) AppendOutbox(ctx context.Context, envelope ports.EventEnvelope) error {
	payload, err := json.Marshal(envelope)
	if err != nil {
		return err
	}
	row := outboxModel{
		OutboxID:     uuid.NewString(),
		EventType:    envelope.EventType,
		PartitionKey: envelope.EntityID,
		Payload:      payload,
		Status:       outboxStatusPending,
		CreatedAt:    envelope.OccurredAtUTC.UTC(),
	}
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r *Repository) ListPendingOutbox(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	if limit <= 0 {
		limit = 100
	}

	var rows []outboxModel
	if err := r.db.WithContext(ctx).
		Where("status = ?", outboxStatusPending).
		Order("created_at ASC").
		Limit(limit).
		Find(&rows).
		Error; err != nil {
		return nil, err
	}

	items := make([]ports.OutboxMessage, 0, len(rows))
	for _, row := range rows {
		items = append(items, ports.OutboxMessage{
			OutboxID:     row.OutboxID,
			EventType:    row.EventType,
			PartitionKey: row.PartitionKey,
			Payload:      append([]byte(nil), row.Payload...),
			CreatedAt:    row.CreatedAt.UTC(),
		})
	}
	return items, nil
}

func (r *Repository) MarkOutboxSent(ctx context.Context, outboxID string, sentAt time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&outboxModel{}).
		Where("outbox_id = ?", strings.TrimSpace(outboxID)).
		Updates(map[string]any{
			"status":  outboxStatusSent,
			"sent_at": sentAt.UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrInvalidVersionInput
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
