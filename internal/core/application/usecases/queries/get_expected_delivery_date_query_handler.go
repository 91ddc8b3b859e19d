package queries

import (
	"context"
	"log/slog"

	"freightdesk/internal/core/ports"
)

// GetExpectedDeliveryDateQueryHandler resolves a package's expected delivery
// date: nil for an unassigned package, otherwise the load schedule's entry for
// the package's destination city, falling back to the load's default date.
type GetExpectedDeliveryDateQueryHandler struct {
	store  PackageIndexReadStore
	loads  ports.LoadStore
	logger *slog.Logger
}

// NewGetExpectedDeliveryDateQueryHandler creates a delivery-date handler.
func NewGetExpectedDeliveryDateQueryHandler(
	store PackageIndexReadStore,
	loads ports.LoadStore,
	logger *slog.Logger,
) GetExpectedDeliveryDateQueryHandler {
	return GetExpectedDeliveryDateQueryHandler{
		store:  store,
		loads:  loads,
		logger: logger.With("component", "get_expected_delivery_date_handler"),
	}
}

// Handle executes the query.
// Returns ObjectNotFoundError if the package does not exist. A dangling load
// reference yields a nil date rather than an error.
func (h GetExpectedDeliveryDateQueryHandler) Handle(
	ctx context.Context,
	query GetExpectedDeliveryDateQuery,
) (GetExpectedDeliveryDateQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetExpectedDeliveryDateQueryResponse{}, err
	}

	pkg, err := h.store.GetPackage(ctx, query.PackageID())
	if err != nil {
		return GetExpectedDeliveryDateQueryResponse{}, err
	}

	response := GetExpectedDeliveryDateQueryResponse{PackageID: pkg.ID()}

	loadID := pkg.LoadID()
	if loadID == nil {
		return response, nil
	}

	l, err := h.loads.GetLoad(ctx, *loadID)
	if err != nil {
		h.logger.WarnContext(ctx, "Package points at unresolvable load",
			"package_id", pkg.ID().String(), "load_id", loadID.String(), "error", err)
		return response, nil
	}

	response.Date = l.DeliveryDateFor(pkg.DestinationCity())

	return response, nil
}
