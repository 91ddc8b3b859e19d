package jobs

import (
	"context"
	"log/slog"

	"freightdesk/internal/core/application/usecases/commands"
	"freightdesk/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// MembershipScrubJob periodically sweeps every load through the membership
// scrub and every package through the consolidation scrub, removing phantom
// members and dangling hierarchy references.
type MembershipScrubJob struct {
	packageStore       ports.PackageStore
	loadStore          ports.LoadStore
	membershipScrub    commands.ScrubLoadMembershipCommandHandler
	consolidationScrub commands.ScrubConsolidationCommandHandler
	schedule           string
	cron               *cron.Cron
	logger             *slog.Logger
}

// NewMembershipScrubJob creates the scrub sweep with a six-field cron schedule.
func NewMembershipScrubJob(
	packageStore ports.PackageStore,
	loadStore ports.LoadStore,
	membershipScrub commands.ScrubLoadMembershipCommandHandler,
	consolidationScrub commands.ScrubConsolidationCommandHandler,
	schedule string,
	logger *slog.Logger,
) *MembershipScrubJob {
	return &MembershipScrubJob{
		packageStore:       packageStore,
		loadStore:          loadStore,
		membershipScrub:    membershipScrub,
		consolidationScrub: consolidationScrub,
		schedule:           schedule,
		cron:               cron.New(cron.WithSeconds()),
		logger:             logger.With("component", "membership_scrub_job"),
	}
}

// Start schedules the sweep.
func (j *MembershipScrubJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, j.sweep)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Membership scrub job started", "schedule", j.schedule)
	return nil
}

// Stop stops the sweep.
func (j *MembershipScrubJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Membership scrub job stopped")
}

func (j *MembershipScrubJob) sweep() {
	ctx := context.Background()
	removed := j.scrubLoads(ctx) + j.scrubConsolidations(ctx)
	if removed > 0 {
		j.logger.InfoContext(ctx, "Scrub sweep removed dangling references", "removed", removed)
	}
}

func (j *MembershipScrubJob) scrubLoads(ctx context.Context) int {
	ids, err := j.loadStore.ListLoadIDs(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Scrub sweep failed to list loads", "error", err)
		return 0
	}

	removed := 0
	for _, id := range ids {
		cmd, cmdErr := commands.NewScrubLoadMembershipCommand(id)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Scrub sweep skipped load",
				"load_id", id.String(), "error", cmdErr)
			continue
		}

		result, handleErr := j.membershipScrub.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Membership scrub failed for load",
				"load_id", id.String(), "error", handleErr)
			continue
		}
		removed += result.Removed
	}
	return removed
}

func (j *MembershipScrubJob) scrubConsolidations(ctx context.Context) int {
	ids, err := j.packageStore.ListPackageIDs(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Scrub sweep failed to list packages", "error", err)
		return 0
	}

	removed := 0
	for _, id := range ids {
		cmd, cmdErr := commands.NewScrubConsolidationCommand(id)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Scrub sweep skipped package",
				"package_id", id.String(), "error", cmdErr)
			continue
		}

		result, handleErr := j.consolidationScrub.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Consolidation scrub failed for package",
				"package_id", id.String(), "error", handleErr)
			continue
		}
		removed += result.Removed
	}
	return removed
}
