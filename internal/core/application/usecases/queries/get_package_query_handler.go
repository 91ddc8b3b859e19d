package queries

import (
	"context"
	"log/slog"

	"freightdesk/internal/core/ports"
)

// GetPackageQueryHandler resolves a package together with its consolidation
// relationships: the parent, if any, and the children.
type GetPackageQueryHandler struct {
	store  ports.PackageStore
	logger *slog.Logger
}

// NewGetPackageQueryHandler creates a handler for single-package retrieval.
func NewGetPackageQueryHandler(store ports.PackageStore, logger *slog.Logger) GetPackageQueryHandler {
	return GetPackageQueryHandler{
		store:  store,
		logger: logger.With("component", "get_package_handler"),
	}
}

// Handle executes the query.
// Returns ObjectNotFoundError if the package does not exist. Dangling parent
// and child references are skipped, not errors; the consolidation scrub
// removes them.
func (h GetPackageQueryHandler) Handle(
	ctx context.Context,
	query GetPackageQuery,
) (GetPackageQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPackageQueryResponse{}, err
	}

	pkg, err := h.store.GetPackage(ctx, query.PackageID())
	if err != nil {
		return GetPackageQueryResponse{}, err
	}

	response := GetPackageQueryResponse{
		PackageSummary: summaryOf(pkg),
		LoadID:         pkg.LoadID(),
		ParentID:       pkg.ParentID(),
		LabelStatus:    pkg.LabelStatus(),
		PaymentStatus:  pkg.PaymentStatus(),
		Children:       make([]PackageSummary, 0, len(pkg.ChildIDs())),
	}

	if parentID := pkg.ParentID(); parentID != nil {
		parent, parentErr := h.store.GetPackage(ctx, *parentID)
		if parentErr != nil {
			h.logger.WarnContext(ctx, "Skipping unresolvable parent reference",
				"package_id", pkg.ID().String(), "parent_id", parentID.String(), "error", parentErr)
		} else {
			summary := summaryOf(parent)
			response.Parent = &summary
		}
	}

	for _, childID := range pkg.ChildIDs() {
		child, childErr := h.store.GetPackage(ctx, childID)
		if childErr != nil {
			h.logger.WarnContext(ctx, "Skipping unresolvable child reference",
				"package_id", pkg.ID().String(), "child_id", childID.String(), "error", childErr)
			continue
		}
		response.Children = append(response.Children, summaryOf(child))
	}

	return response, nil
}
