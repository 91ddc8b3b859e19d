package commands

import (
	"context"
	"log/slog"

	"freightdesk/internal/core/domain/model/kernel"
	"freightdesk/internal/core/domain/services"
	"freightdesk/internal/core/ports"

	"github.com/shopspring/decimal"
)

// refreshLoadTotals recomputes a load's derived totals from its current
// membership and writes the load back. The load is re-read immediately before
// the write, keeping the read-modify-write lost-update window minimal (the
// accepted weak-consistency tradeoff; no backend row lock exists to close it).
//
// Members that no longer resolve contribute no weight; the membership scrub
// removes them on its next pass.
func refreshLoadTotals(ctx context.Context, store AssignmentStore, loadID kernel.UUID) error {
	ld, err := store.GetLoad(ctx, loadID)
	if err != nil {
		return err
	}

	weights := make([]decimal.Decimal, 0, len(ld.Membership()))
	for _, packageID := range ld.Membership() {
		member, memberErr := store.GetPackage(ctx, packageID)
		if memberErr != nil {
			continue
		}
		weights = append(weights, member.Weight())
	}

	ld.RefreshTotals(weights)
	return store.PutLoad(ctx, ld)
}

// applyIndexDelta applies the index writes a committed mutation requires.
// Individual failures are logged and swallowed: the primary record is already
// correct, and reconciliation repairs any entry this pass loses.
func applyIndexDelta(
	ctx context.Context,
	store ports.IndexStore,
	logger *slog.Logger,
	delta services.IndexDelta,
) {
	for _, entry := range delta.Removes {
		if err := store.DeleteIndexEntry(ctx, entry); err != nil {
			logger.WarnContext(ctx, "Stale index entry not removed, reconciliation will retry",
				"entry", entry.String(), "error", err)
		}
	}
	for _, entry := range delta.Puts {
		if err := store.PutIndexEntry(ctx, entry); err != nil {
			logger.WarnContext(ctx, "Index entry not written, reconciliation will retry",
				"entry", entry.String(), "error", err)
		}
	}
}
