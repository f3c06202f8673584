package queries

import (
	"context"
	"log/slog"
	"strings"
	"time"

	application "enablehub/contexts/content-hub/version-lifecycle-service/application"
	"enablehub/contexts/content-hub/version-lifecycle-service/domain/entities"
	domainerrors "enablehub/contexts/content-hub/version-lifecycle-service/domain/errors"
	"enablehub/contexts/content-hub/version-lifecycle-service/domain/services"
	"enablehub/contexts/content-hub/version-lifecycle-service/ports"
)

type DownloadVersionQuery struct {
	VersionID string
	ActorID   string
	ActorRole string
}

// DownloadVersionResult is a tagged decision: a deny is a normal result, not
// an error. Transports map Allowed=false to 403 with the reason code.
type DownloadVersionResult struct {
	Allowed     bool
	Reason      services.DenyReason
	DownloadURL string
	ExpiresAt   time.Time
}

type DownloadVersionUseCase struct {
	Assets      ports.AssetRepository
	Versions    ports.VersionRepository
	Signer      ports.URLSigner
	Clock       ports.Clock
	DownloadTTL time.Duration
	Logger      *slog.Logger
}

func (uc DownloadVersionUseCase) Execute(ctx context.Context, q DownloadVersionQuery) (DownloadVersionResult, error) {
	logger := application.ResolveLogger(uc.Logger)
	actorID := strings.TrimSpace(q.ActorID)
	if actorID == "" {
		return DownloadVersionResult{}, domainerrors.ErrInvalidVersionInput
	}
	role, ok := entities.ParseRole(q.ActorRole)
	if !ok {
		return DownloadVersionResult{}, domainerrors.ErrInvalidVersionInput
	}

	version, err := uc.Versions.GetVersion(ctx, strings.TrimSpace(q.VersionID))
	if err != nil {
		return DownloadVersionResult{}, err
	}
	asset, err := uc.Assets.GetAsset(ctx, version.AssetID)
	if err != nil {
		return DownloadVersionResult{}, err
	}

	decision := services.EvaluateDownload(version, asset, role, actorID)
	if !decision.Allowed {
		logger.Info("version download denied",
			"event", "version_download_denied",
			"module", "content-hub/version-lifecycle-service",
			"layer", "application",
			"version_id", version.VersionID,
			"actor_id", actorID,
			"actor_role", string(role),
			"reason", string(decision.Reason),
		)
		return DownloadVersionResult{Allowed: false, Reason: decision.Reason}, nil
	}

	now := uc.Clock.Now().UTC()
	expiresAt := now.Add(uc.downloadTTL())
	url, err := uc.Signer.SignDownloadURL(version, actorID, expiresAt)
	if err != nil {
		return DownloadVersionResult{}, err
	}

	return DownloadVersionResult{
		Allowed:     true,
		DownloadURL: url,
		ExpiresAt:   expiresAt,
	}, nil
}

func (uc DownloadVersionUseCase) downloadTTL() time.Duration {
	if uc.DownloadTTL <= 0 {
		return 15 * time.Minute
	}
	return uc.DownloadTTL
}
