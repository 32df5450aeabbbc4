package logging

import (
	"context"
	"log/slog"
	"time"
)

// LogPruner deletes system log records older than a cutoff.
type LogPruner interface {
	DeleteSystemLogsBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// PruneOnce deletes records older than retentionDays and returns the count.
func PruneOnce(ctx context.Context, pruner LogPruner, retentionDays int, now time.Time) (int64, error) {
	cutoff := now.AddDate(0, 0, -retentionDays)
	return pruner.DeleteSystemLogsBefore(ctx, cutoff)
}

// StartCleanup runs a daily goroutine that deletes system_logs older than
// retentionDays. Close done to stop it.
func StartCleanup(pruner LogPruner, retentionDays int, done chan struct{}) {
	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				deleted, err := PruneOnce(context.Background(), pruner, retentionDays, time.Now().UTC())
				if err != nil {
					slog.Error("log cleanup failed", "error", err)
				} else if deleted > 0 {
					slog.Info("log cleanup completed", "deleted", deleted)
				}
			case <-done:
				return
			}
		}
	}()
}
