package queries

import (
	"context"

	"freightdesk/internal/core/ports"
)

// GetLoadQueryHandler resolves a load read model.
type GetLoadQueryHandler struct {
	store ports.LoadStore
}

// NewGetLoadQueryHandler creates a handler for single-load retrieval.
func NewGetLoadQueryHandler(store ports.LoadStore) GetLoadQueryHandler {
	return GetLoadQueryHandler{store: store}
}

// Handle executes the query.
// Returns ObjectNotFoundError if the load does not exist.
func (h GetLoadQueryHandler) Handle(
	ctx context.Context,
	query GetLoadQuery,
) (GetLoadQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetLoadQueryResponse{}, err
	}

	l, err := h.store.GetLoad(ctx, query.LoadID())
	if err != nil {
		return GetLoadQueryResponse{}, err
	}

	return GetLoadQueryResponse{
		ID:                  l.ID(),
		Status:              l.Status(),
		Membership:          l.Membership(),
		TotalPackages:       l.TotalPackages(),
		TotalWeight:         l.TotalWeight(),
		DeliverySchedule:    l.DeliverySchedule(),
		DefaultDeliveryDate: l.DefaultDeliveryDate(),
	}, nil
}
