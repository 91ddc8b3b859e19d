// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
//
// Unlike the command side, queries never mutate: stale index entries or
// dangling references they encounter are skipped and logged, left for the
// repair operations to remove.
package queries

import (
	"errors"

	"freightdesk/internal/core/domain/model/kernel"
	"freightdesk/internal/core/domain/model/packages"
	"freightdesk/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetPackageQueryIsNotConstructed = errors.New(
	"GetPackageQuery must be created via NewGetPackageQuery constructor",
)

// GetPackageQuery retrieves one package together with its resolved
// relationships: the load it rides on and the children consolidated under it.
type GetPackageQuery struct { //nolint:recvcheck //using for validation
	packageID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPackageQuery creates a query for a single package.
func NewGetPackageQuery(packageID kernel.UUID) (GetPackageQuery, error) {
	if err := packageID.Validate(); err != nil {
		return GetPackageQuery{}, err
	}

	return GetPackageQuery{
		packageID: packageID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPackageQuery) Validate() error {
	return q.guard.Validate(ErrGetPackageQueryIsNotConstructed)
}

// PackageID returns the identifier of the requested package.
func (q GetPackageQuery) PackageID() kernel.UUID {
	return q.packageID
}

// PackageSummary is the compact package read model used for children and
// listing results.
type PackageSummary struct {
	ID              kernel.UUID
	CustomerID      kernel.UUID
	ReceivedDate    kernel.Date
	Status          packages.ShipmentStatus
	Weight          decimal.Decimal
	DestinationCity string
}

// GetPackageQueryResponse is the full package read model.
type GetPackageQueryResponse struct {
	PackageSummary

	LoadID        *kernel.UUID
	ParentID      *kernel.UUID
	LabelStatus   string
	PaymentStatus string

	// Parent holds the resolved parent package, nil when the package is not
	// consolidated or the parent record cannot be read.
	Parent *PackageSummary

	// Children holds the resolved child packages. A child reference whose
	// record cannot be read is omitted.
	Children []PackageSummary
}

func summaryOf(pkg *packages.Package) PackageSummary {
	return PackageSummary{
		ID:              pkg.ID(),
		CustomerID:      pkg.CustomerID(),
		ReceivedDate:    pkg.ReceivedDate(),
		Status:          pkg.Status(),
		Weight:          pkg.Weight(),
		DestinationCity: pkg.DestinationCity(),
	}
}
