package queries

import (
	"context"
	"log/slog"

	"freightdesk/internal/core/domain/model/packages"
	"freightdesk/internal/core/ports"
)

// PackageIndexReadStore is the storage surface index-backed listing needs.
type PackageIndexReadStore interface {
	ports.PackageStore
	ports.IndexStore
}

// ListPackagesQueryHandler resolves an index key to package read models.
// The index is consulted for candidates only; each candidate's record is
// re-checked against the key, so entries the index has not caught up on are
// filtered out rather than served stale.
type ListPackagesQueryHandler struct {
	store  PackageIndexReadStore
	logger *slog.Logger
}

// NewListPackagesQueryHandler creates a handler for index-backed listing.
func NewListPackagesQueryHandler(store PackageIndexReadStore, logger *slog.Logger) ListPackagesQueryHandler {
	return ListPackagesQueryHandler{
		store:  store,
		logger: logger.With("component", "list_packages_handler"),
	}
}

// Handle executes the query.
func (h ListPackagesQueryHandler) Handle(
	ctx context.Context,
	query ListPackagesQuery,
) ([]PackageSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	ids, err := h.store.ListPackagesByIndex(ctx, query.Kind(), query.Key())
	if err != nil {
		return nil, err
	}

	summaries := make([]PackageSummary, 0, len(ids))

	for _, id := range ids {
		pkg, pkgErr := h.store.GetPackage(ctx, id)
		if pkgErr != nil {
			h.logger.WarnContext(ctx, "Skipping index entry with unresolvable package",
				"kind", string(query.Kind()), "key", query.Key(), "package_id", id.String(),
				"error", pkgErr)
			continue
		}

		if !matchesIndexKey(pkg, query.Kind(), query.Key()) {
			continue
		}

		summaries = append(summaries, summaryOf(pkg))
	}

	return summaries, nil
}

// matchesIndexKey re-checks an index candidate against its record, hiding
// entries that have drifted from the source of truth.
func matchesIndexKey(pkg *packages.Package, kind packages.IndexKind, key string) bool {
	for _, entry := range packages.IndexEntriesOf(pkg) {
		if entry.Kind == kind && entry.Key == key {
			return true
		}
	}
	return false
}
