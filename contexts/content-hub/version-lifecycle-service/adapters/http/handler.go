package httpadapter

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"enablehub/contexts/content-hub/version-lifecycle-service/application/commands"
	"enablehub/contexts/content-hub/version-lifecycle-service/application/queries"
	"enablehub/contexts/content-hub/version-lifecycle-service/domain/entities"
	domainerrors "enablehub/contexts/content-hub/version-lifecycle-service/domain/errors"
	httptransport "enablehub/contexts/content-hub/version-lifecycle-service/transport/http"
)

type Handler struct {
	CreateAsset     commands.CreateAssetUseCase
	CreateVersion   commands.CreateVersionUseCase
	PublishVersion  commands.PublishVersionUseCase
	ScheduleVersion commands.ScheduleVersionUseCase
	ExpireVersion   commands.ExpireVersionUseCase
	ArchiveVersion  commands.ArchiveVersionUseCase
	GetAsset        queries.GetAssetUseCase
	ListAssets      queries.ListAssetsUseCase
	ListVersions    queries.ListVersionsUseCase
	DownloadVersion queries.DownloadVersionUseCase
	Logger          *slog.Logger
}

// CreateAssetHandler godoc
// @Summary Create an asset
// @Description Creates a content asset owned by the calling user.
// @Tags content-hub
// @Accept json
// @Produce json
// @Param X-User-Id header string true "Acting user id"
// @Param Idempotency-Key header string true "Idempotency key"
// @Param request body httptransport.CreateAssetRequest true "Asset payload"
// @Success 200 {object} httptransport.CreateAssetResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 409 {object} httptransport.ErrorResponse
// @Router /hub/assets [post]
func (h Handler) CreateAssetHandler(
	ctx context.Context,
	actorID string,
	idempotencyKey string,
	req httptransport.CreateAssetRequest,
) (httptransport.CreateAssetResponse, error) {
	result, err := h.CreateAsset.Execute(ctx, commands.CreateAssetCommand{
		OwnerID:        actorID,
		IdempotencyKey: idempotencyKey,
		Title:          req.Title,
		AssetType:      req.AssetType,
		SourceType:     req.SourceType,
	})
	if err != nil {
		return httptransport.CreateAssetResponse{}, err
	}
	return httptransport.CreateAssetResponse{
		Asset:    mapAsset(result.Asset),
		Replayed: result.Replayed,
	}, nil
}

// GetAssetHandler godoc
// @Summary Get asset details
// @Tags content-hub
// @Produce json
// @Param asset_id path string true "Asset id"
// @Success 200 {object} httptransport.GetAssetResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Router /hub/assets/{asset_id} [get]
func (h Handler) GetAssetHandler(ctx context.Context, assetID string) (httptransport.GetAssetResponse, error) {
	result, err := h.GetAsset.Execute(ctx, queries.GetAssetQuery{AssetID: assetID})
	if err != nil {
		return httptransport.GetAssetResponse{}, err
	}
	return httptransport.GetAssetResponse{Item: mapAsset(result.Asset)}, nil
}

// ListAssetsHandler godoc
// @Summary List assets
// @Tags content-hub
// @Produce json
// @Param owner_id query string false "Owner filter"
// @Param asset_type query string false "Asset type filter"
// @Success 200 {object} httptransport.ListAssetsResponse
// @Router /hub/assets [get]
func (h Handler) ListAssetsHandler(ctx context.Context, ownerID string, assetType string) (httptransport.ListAssetsResponse, error) {
	result, err := h.ListAssets.Execute(ctx, queries.ListAssetsQuery{
		OwnerID:   ownerID,
		AssetType: assetType,
	})
	if err != nil {
		return httptransport.ListAssetsResponse{}, err
	}
	items := make([]httptransport.AssetDTO, 0, len(result.Items))
	for _, item := range result.Items {
		items = append(items, mapAsset(item))
	}
	return httptransport.ListAssetsResponse{Items: items}, nil
}

// CreateVersionHandler godoc
// @Summary Create a draft version
// @Description Appends a new draft version to the asset; version numbers are assigned max+1.
// @Tags content-hub
// @Accept json
// @Produce json
// @Param X-User-Id header string true "Acting user id"
// @Param Idempotency-Key header string true "Idempotency key"
// @Param asset_id path string true "Asset id"
// @Param request body httptransport.CreateVersionRequest true "Version payload"
// @Success 200 {object} httptransport.CreateVersionResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Router /hub/assets/{asset_id}/versions [post]
func (h Handler) CreateVersionHandler(
	ctx context.Context,
	actorID string,
	idempotencyKey string,
	assetID string,
	req httptransport.CreateVersionRequest,
) (httptransport.CreateVersionResponse, error) {
	expireAt, err := parseOptionalTime(req.ExpireAt)
	if err != nil {
		return httptransport.CreateVersionResponse{}, domainerrors.ErrInvalidVersionInput
	}
	result, err := h.CreateVersion.Execute(ctx, commands.CreateVersionCommand{
		AssetID:        assetID,
		ActorID:        actorID,
		IdempotencyKey: idempotencyKey,
		StorageKey:     req.StorageKey,
		ExpireAt:       expireAt,
	})
	if err != nil {
		return httptransport.CreateVersionResponse{}, err
	}
	return httptransport.CreateVersionResponse{
		Version:  mapVersion(result.Version),
		Replayed: result.Replayed,
	}, nil
}

// ListVersionsHandler godoc
// @Summary List asset versions
// @Tags content-hub
// @Produce json
// @Param asset_id path string true "Asset id"
// @Success 200 {object} httptransport.ListVersionsResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Router /hub/assets/{asset_id}/versions [get]
func (h Handler) ListVersionsHandler(ctx context.Context, assetID string) (httptransport.ListVersionsResponse, error) {
	result, err := h.ListVersions.Execute(ctx, queries.ListVersionsQuery{AssetID: assetID})
	if err != nil {
		return httptransport.ListVersionsResponse{}, err
	}
	items := make([]httptransport.VersionDTO, 0, len(result.Items))
	for _, item := range result.Items {
		items = append(items, mapVersion(item))
	}
	return httptransport.ListVersionsResponse{Items: items}, nil
}

// PublishVersionHandler godoc
// @Summary Publish a version
// @Description Moves a draft or scheduled version to published and points the asset at it.
// @Tags content-hub
// @Accept json
// @Produce json
// @Param X-User-Id header string true "Acting user id"
// @Param version_id path string true "Version id"
// @Param request body httptransport.PublishVersionRequest true "Publish payload"
// @Success 200 {object} httptransport.VersionResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 409 {object} httptransport.ErrorResponse
// @Router /hub/versions/{version_id}/publish [post]
func (h Handler) PublishVersionHandler(
	ctx context.Context,
	actorID string,
	versionID string,
	req httptransport.PublishVersionRequest,
) (httptransport.VersionResponse, error) {
	result, err := h.PublishVersion.Execute(ctx, commands.PublishVersionCommand{
		VersionID: versionID,
		ActorID:   actorID,
		ChangeLog: req.ChangeLog,
	})
	if err != nil {
		return httptransport.VersionResponse{}, err
	}
	return httptransport.VersionResponse{Version: mapVersion(result.Version)}, nil
}

// ScheduleVersionHandler godoc
// @Summary Schedule a version for publication
// @Description Sets the version's publish time; the sweep publishes it when due. At most one version per asset may be scheduled.
// @Tags content-hub
// @Accept json
// @Produce json
// @Param X-User-Id header string true "Acting user id"
// @Param version_id path string true "Version id"
// @Param request body httptransport.ScheduleVersionRequest true "Schedule payload (RFC3339 publish_at)"
// @Success 200 {object} httptransport.VersionResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 409 {object} httptransport.ErrorResponse
// @Router /hub/versions/{version_id}/schedule [post]
func (h Handler) ScheduleVersionHandler(
	ctx context.Context,
	actorID string,
	versionID string,
	req httptransport.ScheduleVersionRequest,
) (httptransport.VersionResponse, error) {
	publishAt, err := time.Parse(time.RFC3339, strings.TrimSpace(req.PublishAt))
	if err != nil {
		return httptransport.VersionResponse{}, domainerrors.ErrInvalidVersionInput
	}
	result, err := h.ScheduleVersion.Execute(ctx, commands.ScheduleVersionCommand{
		VersionID: versionID,
		ActorID:   actorID,
		PublishAt: publishAt,
	})
	if err != nil {
		return httptransport.VersionResponse{}, err
	}
	return httptransport.VersionResponse{Version: mapVersion(result.Version)}, nil
}

// ExpireVersionHandler godoc
// @Summary Expire a published version
// @Tags content-hub
// @Produce json
// @Param X-User-Id header string true "Acting user id"
// @Param version_id path string true "Version id"
// @Success 200 {object} httptransport.VersionResponse
// @Failure 409 {object} httptransport.ErrorResponse
// @Router /hub/versions/{version_id}/expire [post]
func (h Handler) ExpireVersionHandler(ctx context.Context, actorID string, versionID string) (httptransport.VersionResponse, error) {
	result, err := h.ExpireVersion.Execute(ctx, commands.ExpireVersionCommand{
		VersionID: versionID,
		ActorID:   actorID,
	})
	if err != nil {
		return httptransport.VersionResponse{}, err
	}
	return httptransport.VersionResponse{Version: mapVersion(result.Version)}, nil
}

// ArchiveVersionHandler godoc
// @Summary Archive a version
// @Tags content-hub
// @Accept json
// @Produce json
// @Param X-User-Id header string true "Acting user id"
// @Param version_id path string true "Version id"
// @Param request body httptransport.ArchiveVersionRequest false "Archive payload"
// @Success 200 {object} httptransport.VersionResponse
// @Failure 409 {object} httptransport.ErrorResponse
// @Router /hub/versions/{version_id}/archive [post]
func (h Handler) ArchiveVersionHandler(
	ctx context.Context,
	actorID string,
	versionID string,
	req httptransport.ArchiveVersionRequest,
) (httptransport.VersionResponse, error) {
	result, err := h.ArchiveVersion.Execute(ctx, commands.ArchiveVersionCommand{
		VersionID: versionID,
		ActorID:   actorID,
		Reason:    req.Reason,
	})
	if err != nil {
		return httptransport.VersionResponse{}, err
	}
	return httptransport.VersionResponse{Version: mapVersion(result.Version)}, nil
}

// DownloadVersionHandler godoc
// @Summary Issue a signed download URL
// @Description Access is gated by version status, actor role, and asset ownership; a deny maps to 403 with the reason code.
// @Tags content-hub
// @Produce json
// @Param X-User-Id header string true "Acting user id"
// @Param X-User-Role header string true "Acting user role (viewer|contributor|approver|admin)"
// @Param version_id path string true "Version id"
// @Success 200 {object} httptransport.DownloadVersionResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Router /hub/versions/{version_id}/download [post]
func (h Handler) DownloadVersionHandler(
	ctx context.Context,
	actorID string,
	actorRole string,
	versionID string,
) (queries.DownloadVersionResult, error) {
	return h.DownloadVersion.Execute(ctx, queries.DownloadVersionQuery{
		VersionID: versionID,
		ActorID:   actorID,
		ActorRole: actorRole,
	})
}

func mapAsset(asset entities.Asset) httptransport.AssetDTO {
	dto := httptransport.AssetDTO{
		AssetID:    asset.AssetID,
		Title:      asset.Title,
		AssetType:  asset.AssetType,
		OwnerID:    asset.OwnerID,
		SourceType: string(asset.SourceType),
		CreatedAt:  asset.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:  asset.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if asset.CurrentPublishedVersionID != nil {
		dto.CurrentPublishedVersionID = *asset.CurrentPublishedVersionID
	}
	if asset.ScheduledVersionID != nil {
		dto.ScheduledVersionID = *asset.ScheduledVersionID
	}
	return dto
}

func mapVersion(version entities.AssetVersion) httptransport.VersionDTO {
	return httptransport.VersionDTO{
		VersionID:     version.VersionID,
		AssetID:       version.AssetID,
		VersionNumber: version.VersionNumber,
		Status:        string(version.Status),
		PublishAt:     formatOptionalTime(version.PublishAt),
		ExpireAt:      formatOptionalTime(version.ExpireAt),
		PublishedAt:   formatOptionalTime(version.PublishedAt),
		ExpiredAt:     formatOptionalTime(version.ExpiredAt),
		ArchivedAt:    formatOptionalTime(version.ArchivedAt),
		ChangeLog:     version.ChangeLog,
		CreatedAt:     version.CreatedAt.UTC().Format(time.RFC3339),
		CreatedBy:     version.CreatedBy,
	}
}

func formatOptionalTime(value *time.Time) string {
	if value == nil {
		return ""
	}
	return value.UTC().Format(time.RFC3339)
}

func parseOptionalTime(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, err
	}
	utc := parsed.UTC()
	return &utc, nil
}
