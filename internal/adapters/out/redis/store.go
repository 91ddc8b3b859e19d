// Package redis provides an EntityStore implementation on redis. Records are
// hashes with a field per attribute; secondary indexes are sets keyed by
// (kind, key) with a reverse set per package, so one package's entries are
// discoverable without a scan. Transact provides no atomicity: the engine's
// commit-point discipline is what keeps this backend correct.
package redis

import (
	"context"

	"freightdesk/internal/core/domain/model/customer"
	"freightdesk/internal/core/domain/model/kernel"
	"freightdesk/internal/core/domain/model/load"
	"freightdesk/internal/core/domain/model/packages"
	"freightdesk/internal/core/ports"
	"freightdesk/internal/pkg/errs"

	goredis "github.com/redis/go-redis/v9"
)

const (
	packageKeyPrefix  = "pkg:"
	loadKeyPrefix     = "load:"
	customerKeyPrefix = "cust:"

	allPackagesKey = "pkg:all"
	allLoadsKey    = "load:all"

	indexKeyPrefix        = "idx:pkg:"
	reverseIndexKeyPrefix = "idx:pkg:entries:"
)

// getIndexKeySegments maps index kinds to their key-space segment.
func getIndexKeySegments() map[packages.IndexKind]string {
	return map[packages.IndexKind]string{
		packages.IndexKindCustomer:     "customer",
		packages.IndexKindReceivedDate: "date",
		packages.IndexKindStatus:       "status",
	}
}

// Store is a redis-backed EntityStore.
type Store struct {
	client *goredis.Client
}

var _ ports.EntityStore = (*Store)(nil)

// NewStore creates a store over an established redis client.
func NewStore(client *goredis.Client) *Store {
	return &Store{client: client}
}

// GetPackage retrieves a package by id.
func (s *Store) GetPackage(ctx context.Context, id kernel.UUID) (*packages.Package, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	fields, err := s.client.HGetAll(ctx, packageKey(id)).Result()
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, errs.NewObjectNotFoundError("package", id.String())
	}

	return packageFromHash(id, fields)
}

// PutPackage creates or replaces a package record. The hash is rewritten
// wholesale so cleared optional fields do not linger.
func (s *Store) PutPackage(ctx context.Context, pkg *packages.Package) error {
	if err := pkg.Validate(); err != nil {
		return err
	}

	key := packageKey(pkg.ID())
	fields := packageToHash(pkg)

	_, err := s.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.Del(ctx, key)
		pipe.HSet(ctx, key, fields)
		pipe.SAdd(ctx, allPackagesKey, pkg.ID().String())
		return nil
	})
	return err
}

// DeletePackage removes a package record. Absent records are a no-op.
func (s *Store) DeletePackage(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	_, err := s.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.Del(ctx, packageKey(id))
		pipe.SRem(ctx, allPackagesKey, id.String())
		return nil
	})
	return err
}

// ListPackageIDs returns the ids of every stored package.
func (s *Store) ListPackageIDs(ctx context.Context) ([]kernel.UUID, error) {
	return s.listIDs(ctx, allPackagesKey)
}

// GetLoad retrieves a load by id.
func (s *Store) GetLoad(ctx context.Context, id kernel.UUID) (*load.Load, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	fields, err := s.client.HGetAll(ctx, loadKey(id)).Result()
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, errs.NewObjectNotFoundError("load", id.String())
	}

	return loadFromHash(id, fields)
}

// PutLoad creates or replaces a load record.
func (s *Store) PutLoad(ctx context.Context, ld *load.Load) error {
	if err := ld.Validate(); err != nil {
		return err
	}

	fields, err := loadToHash(ld)
	if err != nil {
		return err
	}

	key := loadKey(ld.ID())

	_, err = s.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.Del(ctx, key)
		pipe.HSet(ctx, key, fields)
		pipe.SAdd(ctx, allLoadsKey, ld.ID().String())
		return nil
	})
	return err
}

// DeleteLoad removes a load record. Absent records are a no-op.
func (s *Store) DeleteLoad(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	_, err := s.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.Del(ctx, loadKey(id))
		pipe.SRem(ctx, allLoadsKey, id.String())
		return nil
	})
	return err
}

// ListLoadIDs returns the ids of every stored load.
func (s *Store) ListLoadIDs(ctx context.Context) ([]kernel.UUID, error) {
	return s.listIDs(ctx, allLoadsKey)
}

// GetCustomer retrieves a customer by id.
func (s *Store) GetCustomer(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	fields, err := s.client.HGetAll(ctx, customerKey(id)).Result()
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, errs.NewObjectNotFoundError("customer", id.String())
	}

	return customerFromHash(id, fields)
}

// PutCustomer creates or replaces a customer record.
func (s *Store) PutCustomer(ctx context.Context, c *customer.Customer) error {
	if err := c.Validate(); err != nil {
		return err
	}

	return s.client.HSet(ctx, customerKey(c.ID()), customerToHash(c)).Err()
}

// PutIndexEntry writes one index entry. Both the forward set and the reverse
// set are updated; set adds are idempotent.
func (s *Store) PutIndexEntry(ctx context.Context, entry packages.IndexEntry) error {
	if err := entry.Kind.Validate(); err != nil {
		return err
	}

	_, err := s.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.SAdd(ctx, indexSetKey(entry.Kind, entry.Key), entry.PackageID.String())
		pipe.SAdd(ctx, reverseIndexKey(entry.PackageID), entryMember(entry))
		return nil
	})
	return err
}

// DeleteIndexEntry removes one index entry. Absent entries are a no-op.
func (s *Store) DeleteIndexEntry(ctx context.Context, entry packages.IndexEntry) error {
	if err := entry.Kind.Validate(); err != nil {
		return err
	}

	_, err := s.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.SRem(ctx, indexSetKey(entry.Kind, entry.Key), entry.PackageID.String())
		pipe.SRem(ctx, reverseIndexKey(entry.PackageID), entryMember(entry))
		return nil
	})
	return err
}

// ListPackagesByIndex returns the package ids filed under (kind, key).
func (s *Store) ListPackagesByIndex(
	ctx context.Context,
	kind packages.IndexKind,
	key string,
) ([]kernel.UUID, error) {
	if err := kind.Validate(); err != nil {
		return nil, err
	}

	return s.listIDs(ctx, indexSetKey(kind, key))
}

// ListIndexEntriesFor returns every index entry pointing at the package.
func (s *Store) ListIndexEntriesFor(
	ctx context.Context,
	packageID kernel.UUID,
) ([]packages.IndexEntry, error) {
	if err := packageID.Validate(); err != nil {
		return nil, err
	}

	members, err := s.client.SMembers(ctx, reverseIndexKey(packageID)).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]packages.IndexEntry, 0, len(members))
	for _, member := range members {
		entry, entryErr := entryFromMember(packageID, member)
		if entryErr != nil {
			return nil, entryErr
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// Transact executes fn against this store. Redis offers no multi-key
// transactions across the engine's access pattern, so fn runs sequentially.
func (s *Store) Transact(_ context.Context, fn func(ports.EntityStore) error) error {
	return fn(s)
}

func (s *Store) listIDs(ctx context.Context, setKey string) ([]kernel.UUID, error) {
	members, err := s.client.SMembers(ctx, setKey).Result()
	if err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, 0, len(members))
	for _, member := range members {
		id, idErr := kernel.UUIDFromString(member)
		if idErr != nil {
			return nil, idErr
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func packageKey(id kernel.UUID) string {
	return packageKeyPrefix + id.String()
}

func loadKey(id kernel.UUID) string {
	return loadKeyPrefix + id.String()
}

func customerKey(id kernel.UUID) string {
	return customerKeyPrefix + id.String()
}

func indexSetKey(kind packages.IndexKind, key string) string {
	return indexKeyPrefix + getIndexKeySegments()[kind] + ":" + key
}

func reverseIndexKey(packageID kernel.UUID) string {
	return reverseIndexKeyPrefix + packageID.String()
}
