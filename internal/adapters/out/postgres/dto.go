// Package postgres provides the relational EntityStore implementation using
// GORM. Records map to one table per aggregate; id lists are stored as text
// arrays and index entries as rows of a join table with a composite key, so
// the same weak-consistency engine contract holds as on the other backends
// while Transact gains real transactional scope.
package postgres

import (
	"encoding/json"
	"time"

	"freightdesk/internal/core/domain/model/customer"
	"freightdesk/internal/core/domain/model/kernel"
	"freightdesk/internal/core/domain/model/load"
	"freightdesk/internal/core/domain/model/packages"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// PackageDTO represents the database structure for persisting package aggregates.
type PackageDTO struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID      uuid.UUID       `gorm:"type:uuid;index"`
	ReceivedDate    time.Time       `gorm:"type:date"`
	Status          int             `gorm:"index"`
	LoadID          *uuid.UUID      `gorm:"type:uuid;index"`
	ParentID        *uuid.UUID      `gorm:"type:uuid;index"`
	ChildIDs        pq.StringArray  `gorm:"type:text[]"`
	Weight          decimal.Decimal `gorm:"type:numeric"`
	DestinationCity string
	LabelStatus     string
	PaymentStatus   string
}

// TableName specifies the database table name for package entities.
func (PackageDTO) TableName() string {
	return "packages"
}

// LoadDTO represents the database structure for persisting load aggregates.
type LoadDTO struct {
	ID                  uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Status              int
	Membership          pq.StringArray `gorm:"type:text[]"`
	TotalPackages       int
	TotalWeight         decimal.Decimal `gorm:"type:numeric"`
	DeliverySchedule    []byte          `gorm:"type:jsonb"`
	DefaultDeliveryDate *time.Time      `gorm:"type:date"`
}

// TableName specifies the database table name for load entities.
func (LoadDTO) TableName() string {
	return "loads"
}

// CustomerDTO represents the database structure for persisting customers.
type CustomerDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string
}

// TableName specifies the database table name for customer entities.
func (CustomerDTO) TableName() string {
	return "customers"
}

// IndexEntryDTO represents one secondary-index entry. The composite primary
// key makes entry writes naturally idempotent.
type IndexEntryDTO struct {
	Kind      string    `gorm:"primaryKey"`
	Key       string    `gorm:"primaryKey"`
	PackageID uuid.UUID `gorm:"type:uuid;primaryKey;index"`
}

// TableName specifies the database table name for index entries.
func (IndexEntryDTO) TableName() string {
	return "package_index_entries"
}

func packageFromDomain(pkg *packages.Package) PackageDTO {
	var loadID, parentID *uuid.UUID
	if id := pkg.LoadID(); id != nil {
		raw := id.Bytes()
		loadID = &raw
	}
	if id := pkg.ParentID(); id != nil {
		raw := id.Bytes()
		parentID = &raw
	}

	return PackageDTO{
		ID:              pkg.ID().Bytes(),
		CustomerID:      pkg.CustomerID().Bytes(),
		ReceivedDate:    pkg.ReceivedDate().Time(),
		Status:          int(pkg.Status()),
		LoadID:          loadID,
		ParentID:        parentID,
		ChildIDs:        idsToArray(pkg.ChildIDs()),
		Weight:          pkg.Weight(),
		DestinationCity: pkg.DestinationCity(),
		LabelStatus:     pkg.LabelStatus(),
		PaymentStatus:   pkg.PaymentStatus(),
	}
}

func packageToDomain(dto PackageDTO) (*packages.Package, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	loadID, err := optionalIDToDomain(dto.LoadID)
	if err != nil {
		return nil, err
	}

	parentID, err := optionalIDToDomain(dto.ParentID)
	if err != nil {
		return nil, err
	}

	childIDs, err := arrayToIDs(dto.ChildIDs)
	if err != nil {
		return nil, err
	}

	return packages.RestorePackage(
		id,
		customerID,
		kernel.DateOf(dto.ReceivedDate),
		packages.ShipmentStatus(dto.Status),
		loadID,
		parentID,
		childIDs,
		dto.Weight,
		dto.DestinationCity,
		dto.LabelStatus,
		dto.PaymentStatus,
	)
}

func loadFromDomain(ld *load.Load) (LoadDTO, error) {
	schedule := make(map[string]string, len(ld.DeliverySchedule()))
	for city, date := range ld.DeliverySchedule() {
		schedule[city] = date.String()
	}
	scheduleJSON, err := json.Marshal(schedule)
	if err != nil {
		return LoadDTO{}, err
	}

	var defaultDate *time.Time
	if date := ld.DefaultDeliveryDate(); date != nil {
		raw := date.Time()
		defaultDate = &raw
	}

	return LoadDTO{
		ID:                  ld.ID().Bytes(),
		Status:              int(ld.Status()),
		Membership:          idsToArray(ld.Membership()),
		TotalPackages:       ld.TotalPackages(),
		TotalWeight:         ld.TotalWeight(),
		DeliverySchedule:    scheduleJSON,
		DefaultDeliveryDate: defaultDate,
	}, nil
}

func loadToDomain(dto LoadDTO) (*load.Load, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	membership, err := arrayToIDs(dto.Membership)
	if err != nil {
		return nil, err
	}

	rawSchedule := make(map[string]string)
	if len(dto.DeliverySchedule) > 0 {
		if err = json.Unmarshal(dto.DeliverySchedule, &rawSchedule); err != nil {
			return nil, err
		}
	}
	schedule := make(map[string]kernel.Date, len(rawSchedule))
	for city, raw := range rawSchedule {
		date, dateErr := kernel.DateFromString(raw)
		if dateErr != nil {
			return nil, dateErr
		}
		schedule[city] = date
	}

	var defaultDate kernel.Date
	if dto.DefaultDeliveryDate != nil {
		defaultDate = kernel.DateOf(*dto.DefaultDeliveryDate)
	}

	return load.RestoreLoad(
		id,
		load.Status(dto.Status),
		membership,
		dto.TotalPackages,
		dto.TotalWeight,
		schedule,
		defaultDate,
	)
}

func customerFromDomain(c *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:   c.ID().Bytes(),
		Name: c.Name(),
	}
}

func customerToDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return customer.NewCustomer(id, dto.Name)
}

func entryFromDomain(entry packages.IndexEntry) IndexEntryDTO {
	return IndexEntryDTO{
		Kind:      string(entry.Kind),
		Key:       entry.Key,
		PackageID: entry.PackageID.Bytes(),
	}
}

func entryToDomain(dto IndexEntryDTO) (packages.IndexEntry, error) {
	packageID, err := kernel.UUIDFromBytes(dto.PackageID[:])
	if err != nil {
		return packages.IndexEntry{}, err
	}

	return packages.IndexEntry{
		Kind:      packages.IndexKind(dto.Kind),
		Key:       dto.Key,
		PackageID: packageID,
	}, nil
}

func idsToArray(ids []kernel.UUID) pq.StringArray {
	arr := make(pq.StringArray, 0, len(ids))
	for _, id := range ids {
		arr = append(arr, id.String())
	}
	return arr
}

func arrayToIDs(arr pq.StringArray) ([]kernel.UUID, error) {
	ids := make([]kernel.UUID, 0, len(arr))
	for _, raw := range arr {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func optionalIDToDomain(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil //nolint:nilnil //absence of the column is not an error
	}

	id, err := kernel.UUIDFromBytes((*raw)[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}
