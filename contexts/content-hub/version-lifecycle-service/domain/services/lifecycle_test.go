package services

import (
	"errors"
	"testing"
	"time"

	"enablehub/contexts/content-hub/version-lifecycle-service/domain/entities"
	domainerrors "enablehub/contexts/content-hub/version-lifecycle-service/domain/errors"
)

func fixedNow(t *testing.T) time.Time {
	t.Helper()
	now, err := time.Parse(time.RFC3339, "2024-01-01T00:00:00Z")
	if err != nil {
		t.Fatalf("parse fixed now: %v", err)
	}
	return now
}

func draftVersion() entities.AssetVersion {
	return entities.AssetVersion{
		VersionID:     "ver-1",
		AssetID:       "asset-1",
		VersionNumber: 1,
		Status:        entities.VersionStatusDraft,
	}
}

func TestPublishFromDraft(t *testing.T) {
	now := fixedNow(t)
	published, patch, err := Publish(draftVersion(), "user-a", "initial release", now)
	if err != nil {
		t.Fatalf("publish draft should succeed: %v", err)
	}
	if published.Status != entities.VersionStatusPublished {
		t.Fatalf("expected published status, got %s", published.Status)
	}
	if published.PublishedAt == nil || !published.PublishedAt.Equal(now) {
		t.Fatalf("expected published_at %v, got %v", now, published.PublishedAt)
	}
	if published.ChangeLog != "initial release" {
		t.Fatalf("expected change log to be recorded")
	}
	if patch.CurrentPublishedVersionID == nil || *patch.CurrentPublishedVersionID != "ver-1" {
		t.Fatalf("expected patch to point the asset at ver-1, got %v", patch.CurrentPublishedVersionID)
	}
}

func TestPublishFromScheduledClearsPublishAt(t *testing.T) {
	now := fixedNow(t)
	publishAt := now.Add(-time.Minute)
	version := draftVersion()
	version.Status = entities.VersionStatusScheduled
	version.PublishAt = &publishAt

	published, _, err := Publish(version, "user-a", "", now)
	if err != nil {
		t.Fatalf("publish scheduled should succeed: %v", err)
	}
	if published.PublishAt != nil {
		t.Fatalf("expected publish_at to be cleared, got %v", published.PublishAt)
	}
}

func TestPublishRejectsIllegalStates(t *testing.T) {
	now := fixedNow(t)
	for _, status := range []entities.VersionStatus{
		entities.VersionStatusPublished,
		entities.VersionStatusExpired,
		entities.VersionStatusArchived,
	} {
		version := draftVersion()
		version.Status = status
		_, _, err := Publish(version, "user-a", "", now)
		if !errors.Is(err, domainerrors.ErrIllegalTransition) {
			t.Fatalf("publish from %s: expected illegal transition, got %v", status, err)
		}
	}
}

func TestPublishRejectsUnknownStatus(t *testing.T) {
	version := draftVersion()
	version.Status = entities.VersionStatus("review")
	_, _, err := Publish(version, "user-a", "", fixedNow(t))
	if !errors.Is(err, domainerrors.ErrUnknownVersionStatus) {
		t.Fatalf("expected unknown status error, got %v", err)
	}
}

func TestPublishDoesNotMutateInput(t *testing.T) {
	version := draftVersion()
	if _, _, err := Publish(version, "user-a", "log", fixedNow(t)); err != nil {
		t.Fatalf("publish failed: %v", err)
	}
	if version.Status != entities.VersionStatusDraft || version.PublishedAt != nil {
		t.Fatalf("input version was mutated: %+v", version)
	}
}

func TestScheduleFromDraft(t *testing.T) {
	now := fixedNow(t)
	publishAt := now.Add(time.Hour)
	scheduled, err := Schedule(draftVersion(), publishAt, "user-a", now)
	if err != nil {
		t.Fatalf("schedule draft should succeed: %v", err)
	}
	if scheduled.Status != entities.VersionStatusScheduled {
		t.Fatalf("expected scheduled status, got %s", scheduled.Status)
	}
	if scheduled.PublishAt == nil || !scheduled.PublishAt.Equal(publishAt) {
		t.Fatalf("expected publish_at %v, got %v", publishAt, scheduled.PublishAt)
	}
}

func TestScheduleAcceptsPastPublishAt(t *testing.T) {
	now := fixedNow(t)
	scheduled, err := Schedule(draftVersion(), now.Add(-time.Hour), "user-a", now)
	if err != nil {
		t.Fatalf("past publish_at should be accepted: %v", err)
	}
	if scheduled.Status != entities.VersionStatusScheduled {
		t.Fatalf("expected scheduled status, got %s", scheduled.Status)
	}
}

func TestScheduleMovesPublishTime(t *testing.T) {
	now := fixedNow(t)
	first := now.Add(time.Hour)
	second := now.Add(2 * time.Hour)

	scheduled, err := Schedule(draftVersion(), first, "user-a", now)
	if err != nil {
		t.Fatalf("first schedule failed: %v", err)
	}
	rescheduled, err := Schedule(scheduled, second, "user-a", now)
	if err != nil {
		t.Fatalf("reschedule failed: %v", err)
	}
	if rescheduled.PublishAt == nil || !rescheduled.PublishAt.Equal(second) {
		t.Fatalf("expected publish_at moved to %v, got %v", second, rescheduled.PublishAt)
	}
}

func TestScheduleRejectsZeroPublishAt(t *testing.T) {
	_, err := Schedule(draftVersion(), time.Time{}, "user-a", fixedNow(t))
	if !errors.Is(err, domainerrors.ErrInvalidVersionInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestScheduleRejectsIllegalStates(t *testing.T) {
	now := fixedNow(t)
	for _, status := range []entities.VersionStatus{
		entities.VersionStatusPublished,
		entities.VersionStatusExpired,
		entities.VersionStatusArchived,
	} {
		version := draftVersion()
		version.Status = status
		_, err := Schedule(version, now.Add(time.Hour), "user-a", now)
		if !errors.Is(err, domainerrors.ErrIllegalTransition) {
			t.Fatalf("schedule from %s: expected illegal transition, got %v", status, err)
		}
	}
}

func TestExpireOnlyFromPublished(t *testing.T) {
	now := fixedNow(t)
	version := draftVersion()
	version.Status = entities.VersionStatusPublished

	expired, err := Expire(version, now)
	if err != nil {
		t.Fatalf("expire published should succeed: %v", err)
	}
	if expired.Status != entities.VersionStatusExpired {
		t.Fatalf("expected expired status, got %s", expired.Status)
	}
	if expired.ExpiredAt == nil || !expired.ExpiredAt.Equal(now) {
		t.Fatalf("expected expired_at %v, got %v", now, expired.ExpiredAt)
	}

	for _, status := range []entities.VersionStatus{
		entities.VersionStatusDraft,
		entities.VersionStatusScheduled,
		entities.VersionStatusExpired,
		entities.VersionStatusArchived,
	} {
		version := draftVersion()
		version.Status = status
		if _, err := Expire(version, now); !errors.Is(err, domainerrors.ErrIllegalTransition) {
			t.Fatalf("expire from %s: expected illegal transition, got %v", status, err)
		}
	}
}

func TestArchiveFromAnyNonArchivedState(t *testing.T) {
	now := fixedNow(t)
	for _, status := range []entities.VersionStatus{
		entities.VersionStatusDraft,
		entities.VersionStatusScheduled,
		entities.VersionStatusPublished,
		entities.VersionStatusExpired,
	} {
		version := draftVersion()
		version.Status = status
		archived, err := Archive(version, now)
		if err != nil {
			t.Fatalf("archive from %s should succeed: %v", status, err)
		}
		if archived.Status != entities.VersionStatusArchived {
			t.Fatalf("expected archived status, got %s", archived.Status)
		}
		if archived.ArchivedAt == nil || !archived.ArchivedAt.Equal(now) {
			t.Fatalf("expected archived_at %v, got %v", now, archived.ArchivedAt)
		}
	}
}

func TestArchiveRejectsArchived(t *testing.T) {
	version := draftVersion()
	version.Status = entities.VersionStatusArchived
	if _, err := Archive(version, fixedNow(t)); !errors.Is(err, domainerrors.ErrIllegalTransition) {
		t.Fatalf("expected illegal transition, got %v", err)
	}
}

func TestExpiredVersionIsNeverRepublishable(t *testing.T) {
	now := fixedNow(t)
	version := draftVersion()
	version.Status = entities.VersionStatusPublished

	expired, err := Expire(version, now)
	if err != nil {
		t.Fatalf("expire failed: %v", err)
	}
	if _, _, err := Publish(expired, "user-a", "", now); !errors.Is(err, domainerrors.ErrIllegalTransition) {
		t.Fatalf("expected illegal transition republishing expired, got %v", err)
	}
	if _, err := Schedule(expired, now.Add(time.Hour), "user-a", now); !errors.Is(err, domainerrors.ErrIllegalTransition) {
		t.Fatalf("expected illegal transition rescheduling expired, got %v", err)
	}
}
