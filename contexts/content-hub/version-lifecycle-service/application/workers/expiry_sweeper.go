package workers

import (
	"context"
	"errors"
	"log/slog"
	"time"

	application "enablehub/contexts/content-hub/version-lifecycle-service/application"
	"enablehub/contexts/content-hub/version-lifecycle-service/application/commands"
	domainerrors "enablehub/contexts/content-hub/version-lifecycle-service/domain/errors"
	"enablehub/contexts/content-hub/version-lifecycle-service/ports"
)

// ExpirySweeper expires published versions whose expire_at has passed.
type ExpirySweeper struct {
	Versions  ports.VersionRepository
	Expire    commands.ExpireVersionUseCase
	Clock     ports.Clock
	BatchSize int
	Logger    *slog.Logger
}

func (s ExpirySweeper) RunOnce(ctx context.Context) error {
	logger := application.ResolveLogger(s.Logger)
	now := time.Now().UTC()
	if s.Clock != nil {
		now = s.Clock.Now().UTC()
	}

	limit := s.BatchSize
	if limit <= 0 {
		limit = 100
	}

	due, err := s.Versions.ListPublishedToExpire(ctx, now, limit)
	if err != nil {
		logger.Error("expiry sweep failed",
			"event", "version_expiry_sweep_failed",
			"module", "content-hub/version-lifecycle-service",
			"layer", "worker",
			"error", err.Error(),
		)
		return err
	}

	expired := 0
	for _, version := range due {
		_, err := s.Expire.Execute(ctx, commands.ExpireVersionCommand{
			VersionID: version.VersionID,
			ActorID:   sweepActor,
		})
		switch {
		case err == nil:
			expired++
		case errors.Is(err, domainerrors.ErrIllegalTransition):
			continue
		default:
			logger.Error("version expiry failed",
				"event", "version_expiry_sweep_item_failed",
				"module", "content-hub/version-lifecycle-service",
				"layer", "worker",
				"version_id", version.VersionID,
				"error", err.Error(),
			)
			return err
		}
	}

	if expired > 0 {
		logger.Info("expiry sweep completed",
			"event", "version_expiry_sweep_completed",
			"module", "content-hub/version-lifecycle-service",
			"layer", "worker",
			"expired_count", expired,
		)
	}
	return nil
}
