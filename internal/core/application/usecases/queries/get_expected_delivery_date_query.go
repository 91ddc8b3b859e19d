package queries

import (
	"errors"

	"freightdesk/internal/core/domain/model/kernel"
	"freightdesk/internal/pkg/guard"
)

var ErrGetExpectedDeliveryDateQueryIsNotConstructed = errors.New(
	"GetExpectedDeliveryDateQuery must be created via NewGetExpectedDeliveryDateQuery constructor",
)

// GetExpectedDeliveryDateQuery computes a package's expected delivery date
// from its load's schedule.
type GetExpectedDeliveryDateQuery struct { //nolint:recvcheck //using for validation
	packageID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetExpectedDeliveryDateQuery creates a delivery-date query.
func NewGetExpectedDeliveryDateQuery(packageID kernel.UUID) (GetExpectedDeliveryDateQuery, error) {
	if err := packageID.Validate(); err != nil {
		return GetExpectedDeliveryDateQuery{}, err
	}

	return GetExpectedDeliveryDateQuery{
		packageID: packageID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetExpectedDeliveryDateQuery) Validate() error {
	return q.guard.Validate(ErrGetExpectedDeliveryDateQueryIsNotConstructed)
}

// PackageID returns the identifier of the package to look up.
func (q GetExpectedDeliveryDateQuery) PackageID() kernel.UUID {
	return q.packageID
}

// GetExpectedDeliveryDateQueryResponse carries the computed date.
// Date is nil when no expectation exists: the package is unassigned, or its
// load has neither a city entry nor a default date.
type GetExpectedDeliveryDateQueryResponse struct {
	PackageID kernel.UUID
	Date      *kernel.Date
}
