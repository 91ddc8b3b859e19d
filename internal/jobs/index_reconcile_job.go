package jobs

import (
	"context"
	"log/slog"

	"freightdesk/internal/core/application/usecases/commands"
	"freightdesk/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// IndexReconcileJob periodically sweeps every package through index
// reconciliation, repairing entries lost or orphaned by crashed writers.
type IndexReconcileJob struct {
	store    ports.PackageStore
	handler  commands.ReconcilePackageIndexesCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewIndexReconcileJob creates the reconciliation sweep with a six-field cron
// schedule.
func NewIndexReconcileJob(
	store ports.PackageStore,
	handler commands.ReconcilePackageIndexesCommandHandler,
	schedule string,
	logger *slog.Logger,
) *IndexReconcileJob {
	return &IndexReconcileJob{
		store:    store,
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "index_reconcile_job"),
	}
}

// Start schedules the sweep.
func (j *IndexReconcileJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, j.sweep)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Index reconcile job started", "schedule", j.schedule)
	return nil
}

// Stop stops the sweep.
func (j *IndexReconcileJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Index reconcile job stopped")
}

func (j *IndexReconcileJob) sweep() {
	ctx := context.Background()

	ids, err := j.store.ListPackageIDs(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Index reconcile sweep failed to list packages", "error", err)
		return
	}

	repaired := 0
	for _, id := range ids {
		cmd, cmdErr := commands.NewReconcilePackageIndexesCommand(id)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Index reconcile sweep skipped package",
				"package_id", id.String(), "error", cmdErr)
			continue
		}

		result, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Index reconcile sweep failed for package",
				"package_id", id.String(), "error", handleErr)
			continue
		}
		if result.Drifted() {
			repaired++
		}
	}

	if repaired > 0 {
		j.logger.InfoContext(ctx, "Index reconcile sweep repaired drift",
			"packages_swept", len(ids), "packages_repaired", repaired)
	}
}
