package util

import (
	"log/slog"
	"time"

	"github.com/scoutsheirbrug/attest-api/common"
)

// Preview sessions idle longer than this are dropped.
const previewMaxIdle = 30 * time.Minute

// StartPreviewCleanupJob starts a background job that prunes idle preview
// sessions so abandoned browser tabs do not accumulate schedulers.
func StartPreviewCleanupJob() {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				slog.Error("Panic occurred in preview cleanup job", "panic", r)
			}
		}()

		ticker := time.NewTicker(previewMaxIdle)
		defer ticker.Stop()

		for range ticker.C {
			pruned := common.Previews.PruneIdle(previewMaxIdle)
			if pruned > 0 {
				slog.Info("Preview cleanup job pruned idle sessions", "count", pruned)
			}
		}
	}()

	slog.Info("Preview cleanup job started", "max_idle", previewMaxIdle.String())
}
