package memory

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"sync"
	"time"

	"enablehub/contexts/content-hub/version-lifecycle-service/domain/entities"
	domainerrors "enablehub/contexts/content-hub/version-lifecycle-service/domain/errors"
	"enablehub/contexts/content-hub/version-lifecycle-service/ports"

	"github.com/google/uuid"
)

// Store is the in-memory adapter backing NewInMemoryModule and the tests.
// It implements every port of the service.
type Store struct {
	mu sync.RWMutex

	assets   map[string]entities.Asset
	versions map[string]entities.AssetVersion
	history  []entities.VersionHistory

	idempotency map[string]ports.IdempotencyRecord
	outbox      []outboxRow

	notifications []Notification

	// now overrides the wall clock when set; sweep tests move it forward.
	now *time.Time
}

type outboxRow struct {
	message ports.OutboxMessage
	sent    bool
}

// Notification records a NotifyNewVersion call for test assertions.
type Notification struct {
	AssetID   string
	VersionID string
}

func NewStore(seed []entities.Asset) *Store {
	assets := make(map[string]entities.Asset, len(seed))
	for _, item := range seed {
		assets[item.AssetID] = item
	}
	return &Store{
		assets:      assets,
		versions:    make(map[string]entities.AssetVersion),
		history:     make([]entities.VersionHistory, 0),
		idempotency: make(map[string]ports.IdempotencyRecord),
	}
}

func (s *Store) CreateAsset(_ context.Context, asset entities.Asset) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.assets[asset.AssetID]; exists {
		return domainerrors.ErrInvalidAssetInput
	}
	s.assets[asset.AssetID] = asset
	return nil
}

func (s *Store) UpdateAsset(_ context.Context, asset entities.Asset) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.assets[asset.AssetID]; !exists {
		return domainerrors.ErrAssetNotFound
	}
	s.assets[asset.AssetID] = asset
	return nil
}

func (s *Store) GetAsset(_ context.Context, assetID string) (entities.Asset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, exists := s.assets[strings.TrimSpace(assetID)]
	if !exists {
		return entities.Asset{}, domainerrors.ErrAssetNotFound
	}
	return item, nil
}

func (s *Store) ListAssets(_ context.Context, filter ports.AssetFilter) ([]entities.Asset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Asset, 0, len(s.assets))
	for _, asset := range s.assets {
		if filter.OwnerID != "" && asset.OwnerID != filter.OwnerID {
			continue
		}
		if filter.AssetType != "" && asset.AssetType != filter.AssetType {
			continue
		}
		items = append(items, asset)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

func (s *Store) ClaimScheduledVersion(_ context.Context, assetID string, versionID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	asset, exists := s.assets[strings.TrimSpace(assetID)]
	if !exists {
		return false, domainerrors.ErrAssetNotFound
	}
	if asset.ScheduledVersionID != nil && *asset.ScheduledVersionID != versionID {
		return false, nil
	}
	asset.ScheduledVersionID = &versionID
	s.assets[asset.AssetID] = asset
	return true, nil
}

func (s *Store) ReleaseScheduledVersion(_ context.Context, assetID string, versionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	asset, exists := s.assets[strings.TrimSpace(assetID)]
	if !exists {
		return domainerrors.ErrAssetNotFound
	}
	if asset.ScheduledVersionID != nil && *asset.ScheduledVersionID == versionID {
		asset.ScheduledVersionID = nil
		s.assets[asset.AssetID] = asset
	}
	return nil
}

func (s *Store) SetCurrentPublishedVersion(_ context.Context, assetID string, versionID *string, updatedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	asset, exists := s.assets[strings.TrimSpace(assetID)]
	if !exists {
		return domainerrors.ErrAssetNotFound
	}
	asset.CurrentPublishedVersionID = versionID
	asset.UpdatedAt = updatedAt.UTC()
	s.assets[asset.AssetID] = asset
	return nil
}

func (s *Store) CreateVersion(_ context.Context, version entities.AssetVersion) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.versions[version.VersionID]; exists {
		return domainerrors.ErrInvalidVersionInput
	}
	if _, exists := s.assets[version.AssetID]; !exists {
		return domainerrors.ErrAssetNotFound
	}
	s.versions[version.VersionID] = version
	return nil
}

func (s *Store) UpdateVersion(_ context.Context, version entities.AssetVersion) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.versions[version.VersionID]; !exists {
		return domainerrors.ErrVersionNotFound
	}
	s.versions[version.VersionID] = version
	return nil
}

func (s *Store) GetVersion(_ context.Context, versionID string) (entities.AssetVersion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, exists := s.versions[strings.TrimSpace(versionID)]
	if !exists {
		return entities.AssetVersion{}, domainerrors.ErrVersionNotFound
	}
	return item, nil
}

func (s *Store) ListVersionsByAsset(_ context.Context, assetID string) ([]entities.AssetVersion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.AssetVersion, 0)
	for _, item := range s.versions {
		if item.AssetID == strings.TrimSpace(assetID) {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].VersionNumber > items[j].VersionNumber
	})
	return items, nil
}

func (s *Store) NextVersionNumber(_ context.Context, assetID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	highest := 0
	for _, item := range s.versions {
		if item.AssetID == assetID && item.VersionNumber > highest {
			highest = item.VersionNumber
		}
	}
	return highest + 1, nil
}

func (s *Store) ListScheduledToPublish(_ context.Context, now time.Time, limit int) ([]entities.AssetVersion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.AssetVersion, 0)
	for _, item := range s.versions {
		if item.Status != entities.VersionStatusScheduled || item.PublishAt == nil {
			continue
		}
		if item.PublishAt.After(now) {
			continue
		}
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].PublishAt.Before(*items[j].PublishAt)
	})
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

func (s *Store) ListPublishedToExpire(_ context.Context, now time.Time, limit int) ([]entities.AssetVersion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.AssetVersion, 0)
	for _, item := range s.versions {
		if item.Status != entities.VersionStatusPublished || item.ExpireAt == nil {
			continue
		}
		if item.ExpireAt.After(now) {
			continue
		}
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].ExpireAt.Before(*items[j].ExpireAt)
	})
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

func (s *Store) GetLatestPublished(_ context.Context, assetID string) (entities.AssetVersion, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var latest entities.AssetVersion
	found := false
	for _, item := range s.versions {
		if item.AssetID != assetID || item.Status != entities.VersionStatusPublished {
			continue
		}
		if !found || item.PublishedAt.After(*latest.PublishedAt) {
			latest = item
			found = true
		}
	}
	return latest, found, nil
}

func (s *Store) AppendTransition(_ context.Context, item entities.VersionHistory) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.history = append(s.history, item)
	return nil
}

// History returns a copy of the transition log for test assertions.
func (s *Store) History() []entities.VersionHistory {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]entities.VersionHistory(nil), s.history...)
}

func (s *Store) GetRecord(_ context.Context, key string, now time.Time) (ports.IdempotencyRecord, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, exists := s.idempotency[key]
	if !exists {
		return ports.IdempotencyRecord{}, false, nil
	}
	if !record.ExpiresAt.After(now) {
		delete(s.idempotency, key)
		return ports.IdempotencyRecord{}, false, nil
	}
	return record, true, nil
}

func (s *Store) PutRecord(_ context.Context, record ports.IdempotencyRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, exists := s.idempotency[record.Key]
	if exists && existing.RequestHash != record.RequestHash {
		return domainerrors.ErrIdempotencyKeyConflict
	}
	s.idempotency[record.Key] = record
	return nil
}

func (s *Store) AppendOutbox(_ context.Context, envelope ports.EventEnvelope) error {
	payload, err := json.Marshal(envelope)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.outbox = append(s.outbox, outboxRow{
		message: ports.OutboxMessage{
			OutboxID:     uuid.NewString(),
			EventType:    envelope.EventType,
			PartitionKey: envelope.EntityID,
			Payload:      payload,
			CreatedAt:    envelope.OccurredAtUTC,
		},
	})
	return nil
}

func (s *Store) ListPendingOutbox(_ context.Context, limit int) ([]ports.OutboxMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]ports.OutboxMessage, 0)
	for _, row := range s.outbox {
		if row.sent {
			continue
		}
		items = append(items, row.message)
		if limit > 0 && len(items) >= limit {
			break
		}
	}
	return items, nil
}

func (s *Store) MarkOutboxSent(_ context.Context, outboxID string, _ time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.outbox {
		if s.outbox[i].message.OutboxID == outboxID {
			s.outbox[i].sent = true
			return nil
		}
	}
	return domainerrors.ErrInvalidVersionInput
}

func (s *Store) NotifyNewVersion(_ context.Context, asset entities.Asset, version entities.AssetVersion) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notifications = append(s.notifications, Notification{
		AssetID:   asset.AssetID,
		VersionID: version.VersionID,
	})
	return nil
}

// Notifications returns recorded publish notifications for test assertions.
func (s *Store) Notifications() []Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]Notification(nil), s.notifications...)
}

func (s *Store) Now() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.now != nil {
		return *s.now
	}
	return time.Now().UTC()
}

// SetNow pins the store clock; sweep tests use it to move time forward.
func (s *Store) SetNow(value time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	utc := value.UTC()
	s.now = &utc
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
