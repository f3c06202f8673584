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

const sweepActor = "system:sweep"

// PublishSweeper publishes scheduled versions whose publish_at has arrived.
// Each due version runs through the same publish use case as a manual
// publish, so a re-run over an already-published version is rejected by the
// state machine and produces no duplicate notifications.
type PublishSweeper struct {
	Versions  ports.VersionRepository
	Publish   commands.PublishVersionUseCase
	Clock     ports.Clock
	BatchSize int
	Logger    *slog.Logger
}

func (s PublishSweeper) RunOnce(ctx context.Context) error {
	logger := application.ResolveLogger(s.Logger)
	now := time.Now().UTC()
	if s.Clock != nil {
		now = s.Clock.Now().UTC()
	}

	limit := s.BatchSize
	if limit <= 0 {
		limit = 100
	}

	due, err := s.Versions.ListScheduledToPublish(ctx, now, limit)
	if err != nil {
		logger.Error("scheduled publish sweep failed",
			"event", "version_publish_sweep_failed",
			"module", "content-hub/version-lifecycle-service",
			"layer", "worker",
			"error", err.Error(),
		)
		return err
	}

	published := 0
	for _, version := range due {
		_, err := s.Publish.Execute(ctx, commands.PublishVersionCommand{
			VersionID: version.VersionID,
			ActorID:   sweepActor,
			ChangeLog: version.ChangeLog,
		})
		switch {
		case err == nil:
			published++
		case errors.Is(err, domainerrors.ErrIllegalTransition):
			// Already moved on by a concurrent publish or a previous pass.
			continue
		case errors.Is(err, domainerrors.ErrInvalidAssetMetadata),
			errors.Is(err, domainerrors.ErrAssetNotFound):
			logger.Warn("scheduled version skipped",
				"event", "version_publish_sweep_skipped",
				"module", "content-hub/version-lifecycle-service",
				"layer", "worker",
				"version_id", version.VersionID,
				"error", err.Error(),
			)
		default:
			logger.Error("scheduled version publish failed",
				"event", "version_publish_sweep_item_failed",
				"module", "content-hub/version-lifecycle-service",
				"layer", "worker",
				"version_id", version.VersionID,
				"error", err.Error(),
			)
			return err
		}
	}

	if published > 0 {
		logger.Info("scheduled publish sweep completed",
			"event", "version_publish_sweep_completed",
			"module", "content-hub/version-lifecycle-service",
			"layer", "worker",
			"published_count", published,
		)
	}
	return nil
}
