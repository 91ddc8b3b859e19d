package commands

import (
	"context"
	"errors"
	"log/slog"

	"freightdesk/internal/core/domain/model/packages"
	"freightdesk/internal/pkg/errs"
)

// ReconcileResult reports what a reconciliation pass repaired.
type ReconcileResult struct {
	// Stale is the number of index entries removed because the package record
	// no longer implies them.
	Stale int

	// Missing is the number of index entries added because the package record
	// implies them but they were absent.
	Missing int
}

// Drifted reports whether the pass found anything to repair.
func (r ReconcileResult) Drifted() bool {
	return r.Stale > 0 || r.Missing > 0
}

// ReconcilePackageIndexesCommandHandler repairs one package's index entries.
// The package record is the source of truth: entries it implies are added,
// entries it does not imply are removed, and entries of a deleted package are
// removed wholesale. Drift is observable through the result and the log, never
// an error.
type ReconcilePackageIndexesCommandHandler struct {
	store  PackageIndexStore
	logger *slog.Logger
}

// NewReconcilePackageIndexesCommandHandler creates a reconciliation handler.
func NewReconcilePackageIndexesCommandHandler(
	store PackageIndexStore,
	logger *slog.Logger,
) ReconcilePackageIndexesCommandHandler {
	return ReconcilePackageIndexesCommandHandler{
		store:  store,
		logger: logger.With("component", "reconcile_package_indexes_handler"),
	}
}

// Handle reconciles the package's index entries against its record.
func (h ReconcilePackageIndexesCommandHandler) Handle(
	ctx context.Context,
	cmd ReconcilePackageIndexesCommand,
) (ReconcileResult, error) {
	if err := cmd.Validate(); err != nil {
		return ReconcileResult{}, err
	}

	stored, err := h.store.ListIndexEntriesFor(ctx, cmd.PackageID())
	if err != nil {
		return ReconcileResult{}, err
	}

	var desired []packages.IndexEntry

	pkg, err := h.store.GetPackage(ctx, cmd.PackageID())
	switch {
	case err == nil:
		desired = packages.IndexEntriesOf(pkg)
	case errors.Is(err, errs.ErrObjectNotFound):
		// Deleted package: every surviving entry is stale.
	default:
		return ReconcileResult{}, err
	}

	result := ReconcileResult{}

	for _, entry := range stored {
		if containsEntry(desired, entry) {
			continue
		}
		if err = h.store.DeleteIndexEntry(ctx, entry); err != nil {
			return result, err
		}
		result.Stale++
	}

	for _, entry := range desired {
		if containsEntry(stored, entry) {
			continue
		}
		if err = h.store.PutIndexEntry(ctx, entry); err != nil {
			return result, err
		}
		result.Missing++
	}

	if result.Drifted() {
		h.logger.WarnContext(ctx, "Index drift repaired",
			"error", errs.NewIndexDriftError(cmd.PackageID().String(), result.Stale, result.Missing))
	}

	return result, nil
}

func containsEntry(entries []packages.IndexEntry, entry packages.IndexEntry) bool {
	for _, e := range entries {
		if e.IsEqual(entry) {
			return true
		}
	}
	return false
}
