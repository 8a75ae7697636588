// Package tasks contains the scheduled background tasks: cache refresh,
// snapshot persistence, report delivery, and database maintenance.
package tasks

import "context"

// ScheduledTaskFunc is the signature of every scheduled task. The context
// comes from the scheduler and must be respected for cancellation.
type ScheduledTaskFunc func(ctx context.Context) error

// RegisterAllTasks returns the map of all registered tasks. The keys match
// the task names used in the scheduler section of the config file.
func RegisterAllTasks(deps TaskDeps) map[string]ScheduledTaskFunc {
	tasks := make(map[string]ScheduledTaskFunc)

	tasks["cache_refresh"] = newCacheRefreshTask(deps)
	tasks["snapshot"] = newSnapshotTask(deps)
	tasks["daily_report"] = newDailyReportTask(deps)
	tasks["db_maintenance"] = newMaintenanceTask(deps)

	deps.Logger.Info("Initialized scheduled tasks", "count", len(tasks))
	return tasks
}
