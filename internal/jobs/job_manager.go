package jobs

import (
	"fmt"
	"log/slog"

	"freightdesk/internal/core/application/usecases/commands"
	"freightdesk/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	indexReconcileJob  *IndexReconcileJob
	membershipScrubJob *MembershipScrubJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes the store and repair handlers as dependencies to wire up job execution.
func NewJobManager(
	store ports.EntityStore,
	reconcileHandler commands.ReconcilePackageIndexesCommandHandler,
	membershipScrub commands.ScrubLoadMembershipCommandHandler,
	consolidationScrub commands.ScrubConsolidationCommandHandler,
	reconcileSchedule string,
	scrubSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		indexReconcileJob: NewIndexReconcileJob(store, reconcileHandler, reconcileSchedule, logger),
		membershipScrubJob: NewMembershipScrubJob(
			store, store, membershipScrub, consolidationScrub, scrubSchedule, logger,
		),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.indexReconcileJob.Start(); err != nil {
		return fmt.Errorf("failed to start index reconcile job: %w", err)
	}

	if err := jm.membershipScrubJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.indexReconcileJob.Stop()
		return fmt.Errorf("failed to start membership scrub job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.membershipScrubJob.Stop()
	jm.indexReconcileJob.Stop()
}
