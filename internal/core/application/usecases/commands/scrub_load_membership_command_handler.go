package commands

import (
	"context"
	"errors"
	"log/slog"

	"freightdesk/internal/core/domain/model/kernel"
	"freightdesk/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ScrubResult reports what a scrub pass removed.
type ScrubResult struct {
	// Removed is the number of dangling references dropped.
	Removed int
}

// ScrubLoadMembershipCommandHandler repairs one load's membership against the
// package records. A membership entry survives only if the package exists and
// points back at this load; everything else is a phantom left by a crashed or
// racing writer. Totals are recomputed from the surviving members; stale
// cached totals are rewritten even when the membership itself is intact.
type ScrubLoadMembershipCommandHandler struct {
	store  AssignmentStore
	logger *slog.Logger
}

// NewScrubLoadMembershipCommandHandler creates a membership scrub handler.
func NewScrubLoadMembershipCommandHandler(
	store AssignmentStore,
	logger *slog.Logger,
) ScrubLoadMembershipCommandHandler {
	return ScrubLoadMembershipCommandHandler{
		store:  store,
		logger: logger.With("component", "scrub_load_membership_handler"),
	}
}

// Handle scrubs the load's membership and refreshes its totals.
func (h ScrubLoadMembershipCommandHandler) Handle(
	ctx context.Context,
	cmd ScrubLoadMembershipCommand,
) (ScrubResult, error) {
	if err := cmd.Validate(); err != nil {
		return ScrubResult{}, err
	}

	l, err := h.store.GetLoad(ctx, cmd.LoadID())
	if err != nil {
		return ScrubResult{}, err
	}

	kept := make([]kernel.UUID, 0, len(l.Membership()))
	weights := make([]decimal.Decimal, 0, len(l.Membership()))
	result := ScrubResult{}

	for _, packageID := range l.Membership() {
		pkg, memberErr := h.store.GetPackage(ctx, packageID)
		if memberErr != nil {
			if errors.Is(memberErr, errs.ErrObjectNotFound) {
				h.logger.InfoContext(ctx, "Dropping phantom member",
					"load_id", cmd.LoadID().String(), "package_id", packageID.String())
				result.Removed++
				continue
			}
			return result, memberErr
		}

		memberLoadID := pkg.LoadID()
		if memberLoadID == nil || !memberLoadID.IsEqual(cmd.LoadID()) {
			h.logger.InfoContext(ctx, "Dropping member assigned elsewhere",
				"load_id", cmd.LoadID().String(), "package_id", packageID.String())
			result.Removed++
			continue
		}

		kept = append(kept, packageID)
		weights = append(weights, pkg.Weight())
	}

	// A crash between the package commit write and the totals refresh leaves
	// the membership intact but the cached totals behind, so stale totals are
	// repaired even when nothing was dropped.
	total := decimal.Zero
	for _, weight := range weights {
		total = total.Add(weight)
	}
	totalsStale := l.TotalPackages() != len(kept) || !l.TotalWeight().Equal(total)

	if result.Removed == 0 && !totalsStale {
		return result, nil
	}

	if err = l.ReplaceMembership(kept); err != nil {
		return result, err
	}
	l.RefreshTotals(weights)

	return result, h.store.PutLoad(ctx, l)
}
