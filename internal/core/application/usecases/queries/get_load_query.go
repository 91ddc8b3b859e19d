package queries

import (
	"errors"

	"freightdesk/internal/core/domain/model/kernel"
	"freightdesk/internal/core/domain/model/load"
	"freightdesk/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetLoadQueryIsNotConstructed = errors.New(
	"GetLoadQuery must be created via NewGetLoadQuery constructor",
)

// GetLoadQuery retrieves one load with its membership and derived totals.
type GetLoadQuery struct { //nolint:recvcheck //using for validation
	loadID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetLoadQuery creates a query for a single load.
func NewGetLoadQuery(loadID kernel.UUID) (GetLoadQuery, error) {
	if err := loadID.Validate(); err != nil {
		return GetLoadQuery{}, err
	}

	return GetLoadQuery{
		loadID: loadID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetLoadQuery) Validate() error {
	return q.guard.Validate(ErrGetLoadQueryIsNotConstructed)
}

// LoadID returns the identifier of the requested load.
func (q GetLoadQuery) LoadID() kernel.UUID {
	return q.loadID
}

// GetLoadQueryResponse is the load read model.
type GetLoadQueryResponse struct {
	ID                  kernel.UUID
	Status              load.Status
	Membership          []kernel.UUID
	TotalPackages       int
	TotalWeight         decimal.Decimal
	DeliverySchedule    map[string]kernel.Date
	DefaultDeliveryDate *kernel.Date
}
