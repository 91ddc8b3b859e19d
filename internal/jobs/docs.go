// Package jobs provides scheduled background tasks for the freightdesk engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to run the repair sweeps the weak-consistency storage model relies on.
//
// # Available Jobs
//
// 1. IndexReconcileJob - Sweeps every package through index reconciliation,
// restoring missing entries and deleting stale ones
// 2. MembershipScrubJob - Sweeps every load for phantom members and every
// package for dangling consolidation references
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(store, reconcileHandler,
//		membershipScrub, consolidationScrub,
//		"0 */5 * * * *", "30 */5 * * * *", logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules are six-field cron expressions (with seconds) and are configured
// per deployment. The sweeps are safe to run at any frequency: both are
// idempotent and only write when they find something to repair.
//
// # Error Handling
//
// A failure on one package or load never aborts a sweep; it is logged and the
// sweep moves on. Failed job starts stop any already running jobs.
package jobs
