// Package memory provides an in-memory EntityStore implementation backed by
// maps and an RWMutex. It is the default backend for local runs and the
// substrate for unit tests; it offers the same weak consistency contract as
// the wide-column adapter (Transact provides no atomicity).
package memory

import (
	"context"
	"sync"

	"freightdesk/internal/core/domain/model/customer"
	"freightdesk/internal/core/domain/model/kernel"
	"freightdesk/internal/core/domain/model/load"
	"freightdesk/internal/core/domain/model/packages"
	"freightdesk/internal/core/ports"
	"freightdesk/internal/pkg/errs"
)

// indexKey identifies one stored index entry.
type indexKey struct {
	kind      packages.IndexKind
	key       string
	packageID string
}

// Store is a map-backed EntityStore. Aggregates are cloned on the way in and
// out, so callers observe record semantics: mutating a returned aggregate does
// not change the stored state until it is put back.
type Store struct {
	mu        sync.RWMutex
	packages  map[string]*packages.Package
	loads     map[string]*load.Load
	customers map[string]*customer.Customer
	indexes   map[indexKey]struct{}
}

var _ ports.EntityStore = (*Store)(nil)

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		packages:  make(map[string]*packages.Package),
		loads:     make(map[string]*load.Load),
		customers: make(map[string]*customer.Customer),
		indexes:   make(map[indexKey]struct{}),
	}
}

// GetPackage retrieves a package by id.
func (s *Store) GetPackage(_ context.Context, id kernel.UUID) (*packages.Package, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	pkg, ok := s.packages[id.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("package", id.String())
	}
	return pkg.Clone(), nil
}

// PutPackage creates or replaces a package record.
func (s *Store) PutPackage(_ context.Context, pkg *packages.Package) error {
	if err := pkg.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.packages[pkg.ID().String()] = pkg.Clone()
	return nil
}

// DeletePackage removes a package record. Absent records are a no-op.
func (s *Store) DeletePackage(_ context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.packages, id.String())
	return nil
}

// ListPackageIDs returns the ids of every stored package.
func (s *Store) ListPackageIDs(_ context.Context) ([]kernel.UUID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]kernel.UUID, 0, len(s.packages))
	for _, pkg := range s.packages {
		ids = append(ids, pkg.ID())
	}
	return ids, nil
}

// GetLoad retrieves a load by id.
func (s *Store) GetLoad(_ context.Context, id kernel.UUID) (*load.Load, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	ld, ok := s.loads[id.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("load", id.String())
	}
	return ld.Clone(), nil
}

// PutLoad creates or replaces a load record.
func (s *Store) PutLoad(_ context.Context, ld *load.Load) error {
	if err := ld.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.loads[ld.ID().String()] = ld.Clone()
	return nil
}

// DeleteLoad removes a load record. Absent records are a no-op.
func (s *Store) DeleteLoad(_ context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.loads, id.String())
	return nil
}

// ListLoadIDs returns the ids of every stored load.
func (s *Store) ListLoadIDs(_ context.Context) ([]kernel.UUID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]kernel.UUID, 0, len(s.loads))
	for _, ld := range s.loads {
		ids = append(ids, ld.ID())
	}
	return ids, nil
}

// GetCustomer retrieves a customer by id.
func (s *Store) GetCustomer(_ context.Context, id kernel.UUID) (*customer.Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.customers[id.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("customer", id.String())
	}
	return c, nil
}

// PutCustomer creates or replaces a customer record.
func (s *Store) PutCustomer(_ context.Context, c *customer.Customer) error {
	if err := c.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.customers[c.ID().String()] = c
	return nil
}

// PutIndexEntry writes one index entry. Existing entries are a no-op.
func (s *Store) PutIndexEntry(_ context.Context, entry packages.IndexEntry) error {
	if err := entry.Kind.Validate(); err != nil {
		return err
	}
	if err := entry.PackageID.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.indexes[indexKey{entry.Kind, entry.Key, entry.PackageID.String()}] = struct{}{}
	return nil
}

// DeleteIndexEntry removes one index entry. Absent entries are a no-op.
func (s *Store) DeleteIndexEntry(_ context.Context, entry packages.IndexEntry) error {
	if err := entry.Kind.Validate(); err != nil {
		return err
	}
	if err := entry.PackageID.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.indexes, indexKey{entry.Kind, entry.Key, entry.PackageID.String()})
	return nil
}

// ListPackagesByIndex returns the package ids filed under (kind, key).
func (s *Store) ListPackagesByIndex(
	_ context.Context,
	kind packages.IndexKind,
	key string,
) ([]kernel.UUID, error) {
	if err := kind.Validate(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var ids []kernel.UUID
	for k := range s.indexes {
		if k.kind != kind || k.key != key {
			continue
		}
		id, err := kernel.UUIDFromString(k.packageID)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// ListIndexEntriesFor returns every index entry pointing at the package.
func (s *Store) ListIndexEntriesFor(
	_ context.Context,
	packageID kernel.UUID,
) ([]packages.IndexEntry, error) {
	if err := packageID.Validate(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var entries []packages.IndexEntry
	for k := range s.indexes {
		if k.packageID != packageID.String() {
			continue
		}
		entries = append(entries, packages.IndexEntry{
			Kind:      k.kind,
			Key:       k.key,
			PackageID: packageID,
		})
	}
	return entries, nil
}

// Transact executes fn against the store. The in-memory backend offers no
// multi-record atomicity, matching the wide-column adapter's contract.
func (s *Store) Transact(_ context.Context, fn func(ports.EntityStore) error) error {
	return fn(s)
}
