package services

import (
	"strings"
	"time"

	"enablehub/contexts/content-hub/version-lifecycle-service/domain/entities"
	domainerrors "enablehub/contexts/content-hub/version-lifecycle-service/domain/errors"
)

// AssetPatch is the asset-side consequence of a version transition. The
// lifecycle functions never touch storage; the caller applies the patch
// alongside the returned version.
type AssetPatch struct {
	CurrentPublishedVersionID *string
}

// Publish moves a draft or scheduled version to published. The caller must
// have verified the parent asset's publishable metadata beforehand and must
// apply the returned patch to the asset. Subscriber fanout after persistence
// is best-effort and never fails the publish itself.
func Publish(
	version entities.AssetVersion,
	actorID string,
	changeLog string,
	now time.Time,
) (entities.AssetVersion, AssetPatch, error) {
	if !entities.IsKnownVersionStatus(version.Status) {
		return entities.AssetVersion{}, AssetPatch{}, domainerrors.ErrUnknownVersionStatus
	}
	if version.Status != entities.VersionStatusDraft && version.Status != entities.VersionStatusScheduled {
		return entities.AssetVersion{}, AssetPatch{}, domainerrors.ErrIllegalTransition
	}

	at := now.UTC()
	version.Status = entities.VersionStatusPublished
	version.PublishedAt = &at
	version.PublishAt = nil
	version.ChangeLog = changeLog
	version.UpdatedAt = at
	version.UpdatedBy = strings.TrimSpace(actorID)

	versionID := version.VersionID
	return version, AssetPatch{CurrentPublishedVersionID: &versionID}, nil
}

// Schedule moves a draft version to scheduled, or moves the publish time of
// an already-scheduled version. A publish time in the past is accepted; the
// sweep picks it up on its next pass. Uniqueness of the schedule slot per
// asset is the caller's precondition, established by a conditional write.
func Schedule(
	version entities.AssetVersion,
	publishAt time.Time,
	actorID string,
	now time.Time,
) (entities.AssetVersion, error) {
	if !entities.IsKnownVersionStatus(version.Status) {
		return entities.AssetVersion{}, domainerrors.ErrUnknownVersionStatus
	}
	if version.Status != entities.VersionStatusDraft && version.Status != entities.VersionStatusScheduled {
		return entities.AssetVersion{}, domainerrors.ErrIllegalTransition
	}
	if publishAt.IsZero() {
		return entities.AssetVersion{}, domainerrors.ErrInvalidVersionInput
	}

	at := publishAt.UTC()
	version.Status = entities.VersionStatusScheduled
	version.PublishAt = &at
	version.UpdatedAt = now.UTC()
	version.UpdatedBy = strings.TrimSpace(actorID)
	return version, nil
}

// Expire moves a published version to expired. If the asset's current
// published pointer referenced this version the caller must recompute it to
// the latest still-published version.
func Expire(version entities.AssetVersion, now time.Time) (entities.AssetVersion, error) {
	if !entities.IsKnownVersionStatus(version.Status) {
		return entities.AssetVersion{}, domainerrors.ErrUnknownVersionStatus
	}
	if version.Status != entities.VersionStatusPublished {
		return entities.AssetVersion{}, domainerrors.ErrIllegalTransition
	}

	at := now.UTC()
	version.Status = entities.VersionStatusExpired
	version.ExpiredAt = &at
	version.UpdatedAt = at
	return version, nil
}

// Archive moves any non-archived version to archived.
func Archive(version entities.AssetVersion, now time.Time) (entities.AssetVersion, error) {
	if !entities.IsKnownVersionStatus(version.Status) {
		return entities.AssetVersion{}, domainerrors.ErrUnknownVersionStatus
	}
	if version.Status == entities.VersionStatusArchived {
		return entities.AssetVersion{}, domainerrors.ErrIllegalTransition
	}

	at := now.UTC()
	version.Status = entities.VersionStatusArchived
	version.ArchivedAt = &at
	version.UpdatedAt = at
	return version, nil
}
