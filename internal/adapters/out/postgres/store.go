package postgres

import (
	"context"
	"errors"

	"freightdesk/internal/core/domain/model/customer"
	"freightdesk/internal/core/domain/model/kernel"
	"freightdesk/internal/core/domain/model/load"
	"freightdesk/internal/core/domain/model/packages"
	"freightdesk/internal/core/ports"
	"freightdesk/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store is a GORM-backed EntityStore.
type Store struct {
	db *gorm.DB
}

var _ ports.EntityStore = (*Store)(nil)

// NewStore creates a store over an established database handle.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Migrate creates or updates the schema for every table the store uses.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&PackageDTO{}, &LoadDTO{}, &CustomerDTO{}, &IndexEntryDTO{})
}

// GetPackage retrieves a package by id.
func (s *Store) GetPackage(ctx context.Context, id kernel.UUID) (*packages.Package, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PackageDTO
	if err := s.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("package", id.String())
		}
		return nil, err
	}

	return packageToDomain(dto)
}

// PutPackage creates or replaces a package record.
func (s *Store) PutPackage(ctx context.Context, pkg *packages.Package) error {
	if err := pkg.Validate(); err != nil {
		return err
	}

	dto := packageFromDomain(pkg)
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&dto).Error
}

// DeletePackage removes a package record. Absent records are a no-op.
func (s *Store) DeletePackage(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	return s.db.WithContext(ctx).Delete(&PackageDTO{}, "id = ?", id.Bytes()).Error
}

// ListPackageIDs returns the ids of every stored package.
func (s *Store) ListPackageIDs(ctx context.Context) ([]kernel.UUID, error) {
	var raw []uuidColumn
	if err := s.db.WithContext(ctx).Model(&PackageDTO{}).Select("id").Find(&raw).Error; err != nil {
		return nil, err
	}
	return columnsToIDs(raw)
}

// GetLoad retrieves a load by id.
func (s *Store) GetLoad(ctx context.Context, id kernel.UUID) (*load.Load, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto LoadDTO
	if err := s.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("load", id.String())
		}
		return nil, err
	}

	return loadToDomain(dto)
}

// PutLoad creates or replaces a load record.
func (s *Store) PutLoad(ctx context.Context, ld *load.Load) error {
	if err := ld.Validate(); err != nil {
		return err
	}

	dto, err := loadFromDomain(ld)
	if err != nil {
		return err
	}

	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&dto).Error
}

// DeleteLoad removes a load record. Absent records are a no-op.
func (s *Store) DeleteLoad(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	return s.db.WithContext(ctx).Delete(&LoadDTO{}, "id = ?", id.Bytes()).Error
}

// ListLoadIDs returns the ids of every stored load.
func (s *Store) ListLoadIDs(ctx context.Context) ([]kernel.UUID, error) {
	var raw []uuidColumn
	if err := s.db.WithContext(ctx).Model(&LoadDTO{}).Select("id").Find(&raw).Error; err != nil {
		return nil, err
	}
	return columnsToIDs(raw)
}

// GetCustomer retrieves a customer by id.
func (s *Store) GetCustomer(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CustomerDTO
	if err := s.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("customer", id.String())
		}
		return nil, err
	}

	return customerToDomain(dto)
}

// PutCustomer creates or replaces a customer record.
func (s *Store) PutCustomer(ctx context.Context, c *customer.Customer) error {
	if err := c.Validate(); err != nil {
		return err
	}

	dto := customerFromDomain(c)
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&dto).Error
}

// PutIndexEntry writes one index entry. The composite primary key makes a
// duplicate write a no-op.
func (s *Store) PutIndexEntry(ctx context.Context, entry packages.IndexEntry) error {
	if err := entry.Kind.Validate(); err != nil {
		return err
	}

	dto := entryFromDomain(entry)
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&dto).Error
}

// DeleteIndexEntry removes one index entry. Absent entries are a no-op.
func (s *Store) DeleteIndexEntry(ctx context.Context, entry packages.IndexEntry) error {
	if err := entry.Kind.Validate(); err != nil {
		return err
	}

	return s.db.WithContext(ctx).Delete(&IndexEntryDTO{
		Kind:      string(entry.Kind),
		Key:       entry.Key,
		PackageID: entry.PackageID.Bytes(),
	}).Error
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

	var raw []uuidColumn
	err := s.db.WithContext(ctx).
		Model(&IndexEntryDTO{}).
		Select("package_id as id").
		Where("kind = ? AND key = ?", string(kind), key).
		Find(&raw).Error
	if err != nil {
		return nil, err
	}
	return columnsToIDs(raw)
}

// ListIndexEntriesFor returns every index entry pointing at the package.
func (s *Store) ListIndexEntriesFor(
	ctx context.Context,
	packageID kernel.UUID,
) ([]packages.IndexEntry, error) {
	if err := packageID.Validate(); err != nil {
		return nil, err
	}

	var dtos []IndexEntryDTO
	err := s.db.WithContext(ctx).
		Find(&dtos, "package_id = ?", packageID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	entries := make([]packages.IndexEntry, 0, len(dtos))
	for _, dto := range dtos {
		entry, entryErr := entryToDomain(dto)
		if entryErr != nil {
			return nil, entryErr
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// Transact runs fn inside a database transaction. Handlers must stay correct
// without this atomicity; here it exists to shrink failure windows.
func (s *Store) Transact(ctx context.Context, fn func(ports.EntityStore) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}

// uuidColumn scans a single uuid column from id-only projections.
type uuidColumn struct {
	ID uuid.UUID `gorm:"type:uuid"`
}

func columnsToIDs(raw []uuidColumn) ([]kernel.UUID, error) {
	ids := make([]kernel.UUID, 0, len(raw))
	for _, column := range raw {
		id, err := kernel.UUIDFromBytes(column.ID[:])
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
