package queries

import (
	"errors"

	"freightdesk/internal/core/domain/model/kernel"
	"freightdesk/internal/core/domain/model/packages"
	"freightdesk/internal/pkg/guard"
)

var ErrListPackagesQueryIsNotConstructed = errors.New(
	"ListPackagesQuery must be created via one of the NewListPackagesBy* constructors",
)

// ListPackagesQuery retrieves the packages filed under exactly one secondary
// index key. The three constructors cover the three index kinds; there is no
// way to build a query with zero or several filters.
type ListPackagesQuery struct { //nolint:recvcheck //using for validation
	kind packages.IndexKind
	key  string

	guard guard.ConstructorGuard
}

// NewListPackagesByCustomerQuery creates a query for a customer's packages.
func NewListPackagesByCustomerQuery(customerID kernel.UUID) (ListPackagesQuery, error) {
	if err := customerID.Validate(); err != nil {
		return ListPackagesQuery{}, err
	}

	return newListPackagesQuery(packages.IndexKindCustomer, customerID.String()), nil
}

// NewListPackagesByStatusQuery creates a query for packages in a shipment status.
func NewListPackagesByStatusQuery(status packages.ShipmentStatus) (ListPackagesQuery, error) {
	if err := status.Validate(); err != nil {
		return ListPackagesQuery{}, err
	}

	return newListPackagesQuery(packages.IndexKindStatus, status.String()), nil
}

// NewListPackagesByReceivedDateQuery creates a query for packages received on a date.
func NewListPackagesByReceivedDateQuery(receivedDate kernel.Date) (ListPackagesQuery, error) {
	if err := receivedDate.Validate(); err != nil {
		return ListPackagesQuery{}, err
	}

	return newListPackagesQuery(packages.IndexKindReceivedDate, receivedDate.String()), nil
}

func newListPackagesQuery(kind packages.IndexKind, key string) ListPackagesQuery {
	return ListPackagesQuery{
		kind:  kind,
		key:   key,
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through a constructor.
func (q ListPackagesQuery) Validate() error {
	return q.guard.Validate(ErrListPackagesQueryIsNotConstructed)
}

// Kind returns the index kind the query filters on.
func (q ListPackagesQuery) Kind() packages.IndexKind {
	return q.kind
}

// Key returns the index key the query filters on.
func (q ListPackagesQuery) Key() string {
	return q.key
}
