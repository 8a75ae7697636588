package tasks

import (
	"context"
	"fmt"
	"time"
)

// newCacheRefreshTask reloads the message cache and reapplies the current
// filter criteria so the view picks up new data.
func newCacheRefreshTask(deps TaskDeps) ScheduledTaskFunc {
	log := deps.Logger.With("task", "cache_refresh")

	return func(ctx context.Context) error {
		startTime := time.Now()

		messages, err := deps.Cache.Load(ctx)
		if err != nil {
			log.ErrorContext(ctx, "Cache refresh failed", "error", err, "duration", time.Since(startTime))
			return fmt.Errorf("cache refresh failed: %w", err)
		}

		deps.View.Refresh()
		log.InfoContext(ctx, "Cache refreshed", "count", len(messages), "duration", time.Since(startTime))
		return nil
	}
}

// newSnapshotTask persists the current cache contents to the local store.
func newSnapshotTask(deps TaskDeps) ScheduledTaskFunc {
	log := deps.Logger.With("task", "snapshot")

	return func(ctx context.Context) error {
		messages := deps.Cache.Messages()
		if len(messages) == 0 {
			log.InfoContext(ctx, "Cache empty, skipping snapshot")
			return nil
		}

		if err := deps.Store.ReplaceMessages(ctx, messages); err != nil {
			log.ErrorContext(ctx, "Snapshot failed", "error", err)
			return fmt.Errorf("snapshot failed: %w", err)
		}

		log.InfoContext(ctx, "Snapshot stored", "count", len(messages))
		return nil
	}
}

// newMaintenanceTask runs store housekeeping.
func newMaintenanceTask(deps TaskDeps) ScheduledTaskFunc {
	log := deps.Logger.With("task", "db_maintenance")

	return func(ctx context.Context) error {
		startTime := time.Now()

		if err := deps.Store.RunMaintenance(ctx); err != nil {
			log.ErrorContext(ctx, "Maintenance task failed", "error", err, "duration", time.Since(startTime))
			return fmt.Errorf("db maintenance failed: %w", err)
		}

		log.InfoContext(ctx, "Maintenance task completed", "duration", time.Since(startTime))
		return nil
	}
}
