// Package ports defines the storage and collaborator contracts for the
// freightdesk core. These interfaces establish the boundary between the
// domain/application layers and infrastructure, enabling dependency inversion
// and adapter-parameterized testing across backends.
package ports

import (
	"context"

	"freightdesk/internal/core/domain/model/customer"
	"freightdesk/internal/core/domain/model/kernel"
	"freightdesk/internal/core/domain/model/load"
	"freightdesk/internal/core/domain/model/packages"
)

// PackageStore persists Package aggregates.
type PackageStore interface {
	// GetPackage retrieves a package by id.
	// Returns ObjectNotFoundError if no record exists.
	GetPackage(ctx context.Context, id kernel.UUID) (*packages.Package, error)

	// PutPackage writes the complete package record, creating or replacing it.
	PutPackage(ctx context.Context, pkg *packages.Package) error

	// DeletePackage removes the package record.
	// Deleting an absent record is a no-op, which keeps repair sweeps idempotent.
	DeletePackage(ctx context.Context, id kernel.UUID) error

	// ListPackageIDs returns the ids of every stored package.
	// Used by the reconciliation and scrub sweeps.
	ListPackageIDs(ctx context.Context) ([]kernel.UUID, error)
}

// LoadStore persists Load aggregates.
type LoadStore interface {
	// GetLoad retrieves a load by id.
	// Returns ObjectNotFoundError if no record exists.
	GetLoad(ctx context.Context, id kernel.UUID) (*load.Load, error)

	// PutLoad writes the complete load record, creating or replacing it.
	PutLoad(ctx context.Context, ld *load.Load) error

	// DeleteLoad removes the load record.
	// Deleting an absent record is a no-op.
	DeleteLoad(ctx context.Context, id kernel.UUID) error

	// ListLoadIDs returns the ids of every stored load.
	ListLoadIDs(ctx context.Context) ([]kernel.UUID, error)
}

// CustomerStore persists Customer read models. The core only reads customers;
// PutCustomer exists for seeding and for the surrounding CRUD layer.
type CustomerStore interface {
	// GetCustomer retrieves a customer by id.
	// Returns ObjectNotFoundError if no record exists.
	GetCustomer(ctx context.Context, id kernel.UUID) (*customer.Customer, error)

	// PutCustomer writes the customer record, creating or replacing it.
	PutCustomer(ctx context.Context, c *customer.Customer) error
}

// IndexStore persists the secondary-index entries derived from packages.
// Index entries are never authoritative: the package record is the source of
// truth and reconciliation rebuilds entries from it.
type IndexStore interface {
	// PutIndexEntry writes one index entry. Writing an entry that already
	// exists is a no-op, so applying a delta twice is safe.
	PutIndexEntry(ctx context.Context, entry packages.IndexEntry) error

	// DeleteIndexEntry removes one index entry. Deleting an absent entry is
	// a no-op.
	DeleteIndexEntry(ctx context.Context, entry packages.IndexEntry) error

	// ListPackagesByIndex returns the package ids currently filed under
	// (kind, key), in no guaranteed order.
	ListPackagesByIndex(ctx context.Context, kind packages.IndexKind, key string) ([]kernel.UUID, error)

	// ListIndexEntriesFor returns every index entry currently pointing at the
	// package, including stale ones. Reconciliation diffs this against the
	// entries the primary record implies.
	ListIndexEntriesFor(ctx context.Context, packageID kernel.UUID) ([]packages.IndexEntry, error)
}

// EntityStore is the complete storage contract the engine operates against.
// Implementations exist for relational (postgres), wide-column (redis), and
// in-memory backends; all must pass the shared contract suite.
//
// The engine never assumes multi-record atomicity. Every handler designates a
// single primary-record write as its commit point: a crash before it leaves
// only sweepable garbage, a crash after it leaves drift that the
// reconciliation and scrub operations repair.
type EntityStore interface {
	PackageStore
	LoadStore
	CustomerStore
	IndexStore

	// Transact runs fn against a store handle, atomically where the backend
	// supports it. The relational adapter wraps fn in a database transaction;
	// the wide-column and in-memory adapters execute fn sequentially with no
	// atomicity. Handlers may use Transact to shrink failure windows but must
	// stay correct without it.
	Transact(ctx context.Context, fn func(EntityStore) error) error
}
