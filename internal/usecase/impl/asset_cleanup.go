package impl

import (
	"context"
	"log/slog"

	"storehub/internal/domain/service"
)

// assetTally counts the outcomes of a cleanup pass.
type assetTally struct {
	deleted  int
	missing  int
	failures int
}

// cleanupAssets asks the image host to drop every reference, one at a time.
// Failures are logged and counted; they never stop the caller.
func cleanupAssets(ctx context.Context, storage service.AssetStorage, logger *slog.Logger, refs ...string) assetTally {
	var tally assetTally
	for _, ref := range refs {
		if ref == "" {
			continue
		}

		result, err := storage.Delete(ctx, ref)
		if err != nil {
			tally.failures++
			logger.Warn("Asset cleanup failed", slog.String("asset", ref), slog.Any("error", err))

			continue
		}

		if result == service.AssetNotFound {
			tally.missing++
			logger.Info("Asset already gone", slog.String("asset", ref))

			continue
		}
		tally.deleted++
	}

	return tally
}
