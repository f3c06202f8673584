package versionlifecycle_test

import (
	"context"
	"errors"
	"testing"
	"time"

	versionlifecycle "enablehub/contexts/content-hub/version-lifecycle-service"
	"enablehub/contexts/content-hub/version-lifecycle-service/domain/entities"
	domainerrors "enablehub/contexts/content-hub/version-lifecycle-service/domain/errors"
	httptransport "enablehub/contexts/content-hub/version-lifecycle-service/transport/http"
)

func newModule(t *testing.T) versionlifecycle.Module {
	t.Helper()
	module := versionlifecycle.NewInMemoryModule(nil, nil)
	module.Store.SetNow(mustParse(t, "2024-01-01T00:00:00Z"))
	return module
}

func mustParse(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("parse time %s: %v", value, err)
	}
	return parsed
}

func createAsset(t *testing.T, module versionlifecycle.Module, idemKey string) httptransport.AssetDTO {
	t.Helper()
	resp, err := module.Handler.CreateAssetHandler(context.Background(), "owner-1", idemKey, httptransport.CreateAssetRequest{
		Title:      "Q1 Sales Deck",
		AssetType:  "presentation",
		SourceType: "upload",
	})
	if err != nil {
		t.Fatalf("create asset failed: %v", err)
	}
	return resp.Asset
}

func createDraft(t *testing.T, module versionlifecycle.Module, assetID string, idemKey string) httptransport.VersionDTO {
	t.Helper()
	resp, err := module.Handler.CreateVersionHandler(context.Background(), "owner-1", idemKey, assetID, httptransport.CreateVersionRequest{
		StorageKey: "s3://bucket/" + idemKey,
	})
	if err != nil {
		t.Fatalf("create version failed: %v", err)
	}
	return resp.Version
}

func TestVersionNumberingIsMaxPlusOne(t *testing.T) {
	module := newModule(t)
	asset := createAsset(t, module, "idem-asset")

	first := createDraft(t, module, asset.AssetID, "idem-v1")
	second := createDraft(t, module, asset.AssetID, "idem-v2")
	if first.VersionNumber != 1 || second.VersionNumber != 2 {
		t.Fatalf("expected numbers 1 and 2, got %d and %d", first.VersionNumber, second.VersionNumber)
	}
}

func TestCreateAssetIdempotencyReplay(t *testing.T) {
	module := newModule(t)

	first := createAsset(t, module, "idem-asset")
	resp, err := module.Handler.CreateAssetHandler(context.Background(), "owner-1", "idem-asset", httptransport.CreateAssetRequest{
		Title:      "Q1 Sales Deck",
		AssetType:  "presentation",
		SourceType: "upload",
	})
	if err != nil {
		t.Fatalf("replay should succeed: %v", err)
	}
	if !resp.Replayed {
		t.Fatalf("expected replayed response")
	}
	if resp.Asset.AssetID != first.AssetID {
		t.Fatalf("expected same asset id, got %s and %s", first.AssetID, resp.Asset.AssetID)
	}

	_, err = module.Handler.CreateAssetHandler(context.Background(), "owner-1", "idem-asset", httptransport.CreateAssetRequest{
		Title:      "A Different Deck",
		AssetType:  "presentation",
		SourceType: "upload",
	})
	if !errors.Is(err, domainerrors.ErrIdempotencyKeyConflict) {
		t.Fatalf("expected idempotency conflict, got %v", err)
	}
}

func TestCreateAssetRequiresIdempotencyKey(t *testing.T) {
	module := newModule(t)
	_, err := module.Handler.CreateAssetHandler(context.Background(), "owner-1", "", httptransport.CreateAssetRequest{
		Title:      "Deck",
		AssetType:  "presentation",
		SourceType: "upload",
	})
	if !errors.Is(err, domainerrors.ErrIdempotencyKeyRequired) {
		t.Fatalf("expected idempotency key required, got %v", err)
	}
}

func TestCreateAssetRejectsUnsupportedSourceType(t *testing.T) {
	module := newModule(t)
	_, err := module.Handler.CreateAssetHandler(context.Background(), "owner-1", "idem", httptransport.CreateAssetRequest{
		Title:      "Deck",
		AssetType:  "presentation",
		SourceType: "carrier_pigeon",
	})
	if !errors.Is(err, domainerrors.ErrInvalidAssetInput) {
		t.Fatalf("expected invalid asset input, got %v", err)
	}
}

func TestPublishPointsAssetAtVersion(t *testing.T) {
	module := newModule(t)
	asset := createAsset(t, module, "idem-asset")
	draft := createDraft(t, module, asset.AssetID, "idem-v1")

	resp, err := module.Handler.PublishVersionHandler(context.Background(), "owner-1", draft.VersionID, httptransport.PublishVersionRequest{
		ChangeLog: "initial release",
	})
	if err != nil {
		t.Fatalf("publish failed: %v", err)
	}
	if resp.Version.Status != "published" {
		t.Fatalf("expected published, got %s", resp.Version.Status)
	}

	stored, err := module.Store.GetAsset(context.Background(), asset.AssetID)
	if err != nil {
		t.Fatalf("get asset failed: %v", err)
	}
	if stored.CurrentPublishedVersionID == nil || *stored.CurrentPublishedVersionID != draft.VersionID {
		t.Fatalf("expected asset to point at %s, got %v", draft.VersionID, stored.CurrentPublishedVersionID)
	}

	notifications := module.Store.Notifications()
	if len(notifications) != 1 || notifications[0].VersionID != draft.VersionID {
		t.Fatalf("expected one publish notification for %s, got %+v", draft.VersionID, notifications)
	}

	history := module.Store.History()
	if len(history) != 1 || history[0].FromStatus != entities.VersionStatusDraft || history[0].ToStatus != entities.VersionStatusPublished {
		t.Fatalf("expected one draft->published history row, got %+v", history)
	}
}

func TestPublishRequiresPublishableMetadata(t *testing.T) {
	module := versionlifecycle.NewInMemoryModule([]entities.Asset{
		{
			AssetID:   "asset-no-title",
			AssetType: "presentation",
			OwnerID:   "owner-1",
		},
	}, nil)

	draft := createDraft(t, module, "asset-no-title", "idem-v1")
	_, err := module.Handler.PublishVersionHandler(context.Background(), "owner-1", draft.VersionID, httptransport.PublishVersionRequest{})
	if !errors.Is(err, domainerrors.ErrInvalidAssetMetadata) {
		t.Fatalf("expected invalid asset metadata, got %v", err)
	}
}

func TestScheduleSlotConflict(t *testing.T) {
	module := newModule(t)
	asset := createAsset(t, module, "idem-asset")
	first := createDraft(t, module, asset.AssetID, "idem-v1")
	second := createDraft(t, module, asset.AssetID, "idem-v2")

	_, err := module.Handler.ScheduleVersionHandler(context.Background(), "owner-1", first.VersionID, httptransport.ScheduleVersionRequest{
		PublishAt: "2024-02-01T09:00:00Z",
	})
	if err != nil {
		t.Fatalf("first schedule failed: %v", err)
	}

	_, err = module.Handler.ScheduleVersionHandler(context.Background(), "owner-1", second.VersionID, httptransport.ScheduleVersionRequest{
		PublishAt: "2024-02-02T09:00:00Z",
	})
	if !errors.Is(err, domainerrors.ErrScheduleConflict) {
		t.Fatalf("expected schedule conflict, got %v", err)
	}

	// Moving the already-scheduled version is not a conflict.
	resp, err := module.Handler.ScheduleVersionHandler(context.Background(), "owner-1", first.VersionID, httptransport.ScheduleVersionRequest{
		PublishAt: "2024-02-03T09:00:00Z",
	})
	if err != nil {
		t.Fatalf("reschedule failed: %v", err)
	}
	if resp.Version.PublishAt != "2024-02-03T09:00:00Z" {
		t.Fatalf("expected moved publish_at, got %s", resp.Version.PublishAt)
	}
}

func TestScheduleRejectsMalformedPublishAt(t *testing.T) {
	module := newModule(t)
	asset := createAsset(t, module, "idem-asset")
	draft := createDraft(t, module, asset.AssetID, "idem-v1")

	_, err := module.Handler.ScheduleVersionHandler(context.Background(), "owner-1", draft.VersionID, httptransport.ScheduleVersionRequest{
		PublishAt: "02/01/2024 9am",
	})
	if !errors.Is(err, domainerrors.ErrInvalidVersionInput) {
		t.Fatalf("expected invalid version input, got %v", err)
	}
}

func TestPublishScheduledReleasesSlot(t *testing.T) {
	module := newModule(t)
	asset := createAsset(t, module, "idem-asset")
	draft := createDraft(t, module, asset.AssetID, "idem-v1")

	if _, err := module.Handler.ScheduleVersionHandler(context.Background(), "owner-1", draft.VersionID, httptransport.ScheduleVersionRequest{
		PublishAt: "2024-02-01T09:00:00Z",
	}); err != nil {
		t.Fatalf("schedule failed: %v", err)
	}

	resp, err := module.Handler.PublishVersionHandler(context.Background(), "owner-1", draft.VersionID, httptransport.PublishVersionRequest{})
	if err != nil {
		t.Fatalf("publish scheduled failed: %v", err)
	}
	if resp.Version.PublishAt != "" {
		t.Fatalf("expected publish_at cleared, got %s", resp.Version.PublishAt)
	}

	stored, err := module.Store.GetAsset(context.Background(), asset.AssetID)
	if err != nil {
		t.Fatalf("get asset failed: %v", err)
	}
	if stored.ScheduledVersionID != nil {
		t.Fatalf("expected schedule slot released, got %v", *stored.ScheduledVersionID)
	}
}

func TestExpireRecomputesPublishedPointer(t *testing.T) {
	module := newModule(t)
	asset := createAsset(t, module, "idem-asset")
	v1 := createDraft(t, module, asset.AssetID, "idem-v1")
	v2 := createDraft(t, module, asset.AssetID, "idem-v2")

	if _, err := module.Handler.PublishVersionHandler(context.Background(), "owner-1", v1.VersionID, httptransport.PublishVersionRequest{}); err != nil {
		t.Fatalf("publish v1 failed: %v", err)
	}
	module.Store.SetNow(mustParse(t, "2024-01-02T00:00:00Z"))
	if _, err := module.Handler.PublishVersionHandler(context.Background(), "owner-1", v2.VersionID, httptransport.PublishVersionRequest{}); err != nil {
		t.Fatalf("publish v2 failed: %v", err)
	}

	module.Store.SetNow(mustParse(t, "2024-01-03T00:00:00Z"))
	resp, err := module.Handler.ExpireVersionHandler(context.Background(), "owner-1", v2.VersionID)
	if err != nil {
		t.Fatalf("expire v2 failed: %v", err)
	}
	if resp.Version.Status != "expired" {
		t.Fatalf("expected expired, got %s", resp.Version.Status)
	}

	stored, err := module.Store.GetAsset(context.Background(), asset.AssetID)
	if err != nil {
		t.Fatalf("get asset failed: %v", err)
	}
	if stored.CurrentPublishedVersionID == nil || *stored.CurrentPublishedVersionID != v1.VersionID {
		t.Fatalf("expected pointer to fall back to %s, got %v", v1.VersionID, stored.CurrentPublishedVersionID)
	}
}

func TestExpireLastPublishedClearsPointer(t *testing.T) {
	module := newModule(t)
	asset := createAsset(t, module, "idem-asset")
	v1 := createDraft(t, module, asset.AssetID, "idem-v1")

	if _, err := module.Handler.PublishVersionHandler(context.Background(), "owner-1", v1.VersionID, httptransport.PublishVersionRequest{}); err != nil {
		t.Fatalf("publish failed: %v", err)
	}
	if _, err := module.Handler.ExpireVersionHandler(context.Background(), "owner-1", v1.VersionID); err != nil {
		t.Fatalf("expire failed: %v", err)
	}

	stored, err := module.Store.GetAsset(context.Background(), asset.AssetID)
	if err != nil {
		t.Fatalf("get asset failed: %v", err)
	}
	if stored.CurrentPublishedVersionID != nil {
		t.Fatalf("expected cleared pointer, got %v", *stored.CurrentPublishedVersionID)
	}
}

func TestArchiveScheduledReleasesSlot(t *testing.T) {
	module := newModule(t)
	asset := createAsset(t, module, "idem-asset")
	draft := createDraft(t, module, asset.AssetID, "idem-v1")

	if _, err := module.Handler.ScheduleVersionHandler(context.Background(), "owner-1", draft.VersionID, httptransport.ScheduleVersionRequest{
		PublishAt: "2024-02-01T09:00:00Z",
	}); err != nil {
		t.Fatalf("schedule failed: %v", err)
	}
	if _, err := module.Handler.ArchiveVersionHandler(context.Background(), "owner-1", draft.VersionID, httptransport.ArchiveVersionRequest{
		Reason: "superseded",
	}); err != nil {
		t.Fatalf("archive failed: %v", err)
	}

	stored, err := module.Store.GetAsset(context.Background(), asset.AssetID)
	if err != nil {
		t.Fatalf("get asset failed: %v", err)
	}
	if stored.ScheduledVersionID != nil {
		t.Fatalf("expected schedule slot released, got %v", *stored.ScheduledVersionID)
	}
}

func TestArchivePublishedRecomputesPointer(t *testing.T) {
	module := newModule(t)
	asset := createAsset(t, module, "idem-asset")
	v1 := createDraft(t, module, asset.AssetID, "idem-v1")

	if _, err := module.Handler.PublishVersionHandler(context.Background(), "owner-1", v1.VersionID, httptransport.PublishVersionRequest{}); err != nil {
		t.Fatalf("publish failed: %v", err)
	}
	if _, err := module.Handler.ArchiveVersionHandler(context.Background(), "owner-1", v1.VersionID, httptransport.ArchiveVersionRequest{}); err != nil {
		t.Fatalf("archive failed: %v", err)
	}

	stored, err := module.Store.GetAsset(context.Background(), asset.AssetID)
	if err != nil {
		t.Fatalf("get asset failed: %v", err)
	}
	if stored.CurrentPublishedVersionID != nil {
		t.Fatalf("expected cleared pointer after archiving only published version, got %v", *stored.CurrentPublishedVersionID)
	}
}

func TestDoublePublishIsConflict(t *testing.T) {
	module := newModule(t)
	asset := createAsset(t, module, "idem-asset")
	draft := createDraft(t, module, asset.AssetID, "idem-v1")

	if _, err := module.Handler.PublishVersionHandler(context.Background(), "owner-1", draft.VersionID, httptransport.PublishVersionRequest{}); err != nil {
		t.Fatalf("publish failed: %v", err)
	}
	_, err := module.Handler.PublishVersionHandler(context.Background(), "owner-1", draft.VersionID, httptransport.PublishVersionRequest{})
	if !errors.Is(err, domainerrors.ErrIllegalTransition) {
		t.Fatalf("expected illegal transition, got %v", err)
	}
}

func TestDownloadDecisions(t *testing.T) {
	module := newModule(t)
	asset := createAsset(t, module, "idem-asset")
	draft := createDraft(t, module, asset.AssetID, "idem-v1")

	// Draft: owner may download, a stranger with contributor rank may not.
	result, err := module.Handler.DownloadVersionHandler(context.Background(), "owner-1", "viewer", draft.VersionID)
	if err != nil {
		t.Fatalf("owner download failed: %v", err)
	}
	if !result.Allowed || result.DownloadURL == "" {
		t.Fatalf("expected owner download allowed with url, got %+v", result)
	}

	result, err = module.Handler.DownloadVersionHandler(context.Background(), "user-x", "contributor", draft.VersionID)
	if err != nil {
		t.Fatalf("stranger download errored: %v", err)
	}
	if result.Allowed || string(result.Reason) != "draft_owner_only" {
		t.Fatalf("expected draft_owner_only deny, got %+v", result)
	}

	// Unknown role is a bad request, not a deny.
	if _, err := module.Handler.DownloadVersionHandler(context.Background(), "user-x", "superuser", draft.VersionID); !errors.Is(err, domainerrors.ErrInvalidVersionInput) {
		t.Fatalf("expected invalid input for unknown role, got %v", err)
	}

	if _, err := module.Handler.PublishVersionHandler(context.Background(), "owner-1", draft.VersionID, httptransport.PublishVersionRequest{}); err != nil {
		t.Fatalf("publish failed: %v", err)
	}

	result, err = module.Handler.DownloadVersionHandler(context.Background(), "user-x", "viewer", draft.VersionID)
	if err != nil {
		t.Fatalf("viewer download errored: %v", err)
	}
	if !result.Allowed {
		t.Fatalf("expected viewer allowed on published version, got %+v", result)
	}

	if _, err := module.Handler.ExpireVersionHandler(context.Background(), "owner-1", draft.VersionID); err != nil {
		t.Fatalf("expire failed: %v", err)
	}

	result, err = module.Handler.DownloadVersionHandler(context.Background(), "owner-1", "approver", draft.VersionID)
	if err != nil {
		t.Fatalf("approver download errored: %v", err)
	}
	if result.Allowed || string(result.Reason) != "expired_admin_only" {
		t.Fatalf("expected expired_admin_only deny, got %+v", result)
	}

	result, err = module.Handler.DownloadVersionHandler(context.Background(), "admin-1", "admin", draft.VersionID)
	if err != nil {
		t.Fatalf("admin download errored: %v", err)
	}
	if !result.Allowed {
		t.Fatalf("expected admin allowed on expired version, got %+v", result)
	}
}

func TestListVersionsNewestFirst(t *testing.T) {
	module := newModule(t)
	asset := createAsset(t, module, "idem-asset")
	createDraft(t, module, asset.AssetID, "idem-v1")
	createDraft(t, module, asset.AssetID, "idem-v2")

	resp, err := module.Handler.ListVersionsHandler(context.Background(), asset.AssetID)
	if err != nil {
		t.Fatalf("list versions failed: %v", err)
	}
	if len(resp.Items) != 2 || resp.Items[0].VersionNumber != 2 {
		t.Fatalf("expected newest first, got %+v", resp.Items)
	}
}

func TestGetAssetNotFound(t *testing.T) {
	module := newModule(t)
	_, err := module.Handler.GetAssetHandler(context.Background(), "missing-asset")
	if !errors.Is(err, domainerrors.ErrAssetNotFound) {
		t.Fatalf("expected asset not found, got %v", err)
	}
}
