package redis

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"freightdesk/internal/core/domain/model/customer"
	"freightdesk/internal/core/domain/model/kernel"
	"freightdesk/internal/core/domain/model/load"
	"freightdesk/internal/core/domain/model/packages"

	"github.com/shopspring/decimal"
)

// Hash field names for package records.
const (
	fieldCustomerID      = "customer_id"
	fieldReceivedDate    = "received_date"
	fieldStatus          = "status"
	fieldLoadID          = "load_id"
	fieldParentID        = "parent_id"
	fieldChildIDs        = "child_ids"
	fieldWeight          = "weight"
	fieldDestinationCity = "destination_city"
	fieldLabelStatus     = "label_status"
	fieldPaymentStatus   = "payment_status"
)

// Hash field names for load records.
const (
	fieldMembership          = "membership"
	fieldTotalPackages       = "total_packages"
	fieldTotalWeight         = "total_weight"
	fieldDeliverySchedule    = "delivery_schedule"
	fieldDefaultDeliveryDate = "default_delivery_date"
)

const fieldName = "name"

// idListSeparator joins UUID lists into a single hash field. UUIDs never
// contain a comma.
const idListSeparator = ","

func packageToHash(pkg *packages.Package) map[string]string {
	fields := map[string]string{
		fieldCustomerID:      pkg.CustomerID().String(),
		fieldReceivedDate:    pkg.ReceivedDate().String(),
		fieldStatus:          pkg.Status().String(),
		fieldWeight:          pkg.Weight().String(),
		fieldDestinationCity: pkg.DestinationCity(),
		fieldLabelStatus:     pkg.LabelStatus(),
		fieldPaymentStatus:   pkg.PaymentStatus(),
	}

	if loadID := pkg.LoadID(); loadID != nil {
		fields[fieldLoadID] = loadID.String()
	}
	if parentID := pkg.ParentID(); parentID != nil {
		fields[fieldParentID] = parentID.String()
	}
	if childIDs := pkg.ChildIDs(); len(childIDs) > 0 {
		fields[fieldChildIDs] = joinIDs(childIDs)
	}

	return fields
}

func packageFromHash(id kernel.UUID, fields map[string]string) (*packages.Package, error) {
	customerID, err := kernel.UUIDFromString(fields[fieldCustomerID])
	if err != nil {
		return nil, fmt.Errorf("package %s: customer_id: %w", id.String(), err)
	}

	receivedDate, err := kernel.DateFromString(fields[fieldReceivedDate])
	if err != nil {
		return nil, fmt.Errorf("package %s: received_date: %w", id.String(), err)
	}

	status, err := packages.ShipmentStatusFromString(fields[fieldStatus])
	if err != nil {
		return nil, fmt.Errorf("package %s: status: %w", id.String(), err)
	}

	weight, err := decimal.NewFromString(fields[fieldWeight])
	if err != nil {
		return nil, fmt.Errorf("package %s: weight: %w", id.String(), err)
	}

	loadID, err := optionalID(fields[fieldLoadID])
	if err != nil {
		return nil, fmt.Errorf("package %s: load_id: %w", id.String(), err)
	}

	parentID, err := optionalID(fields[fieldParentID])
	if err != nil {
		return nil, fmt.Errorf("package %s: parent_id: %w", id.String(), err)
	}

	childIDs, err := splitIDs(fields[fieldChildIDs])
	if err != nil {
		return nil, fmt.Errorf("package %s: child_ids: %w", id.String(), err)
	}

	return packages.RestorePackage(
		id,
		customerID,
		receivedDate,
		status,
		loadID,
		parentID,
		childIDs,
		weight,
		fields[fieldDestinationCity],
		fields[fieldLabelStatus],
		fields[fieldPaymentStatus],
	)
}

func loadToHash(ld *load.Load) (map[string]string, error) {
	schedule := make(map[string]string, len(ld.DeliverySchedule()))
	for city, date := range ld.DeliverySchedule() {
		schedule[city] = date.String()
	}
	scheduleJSON, err := json.Marshal(schedule)
	if err != nil {
		return nil, err
	}

	fields := map[string]string{
		fieldStatus:           ld.Status().String(),
		fieldTotalPackages:    strconv.Itoa(ld.TotalPackages()),
		fieldTotalWeight:      ld.TotalWeight().String(),
		fieldDeliverySchedule: string(scheduleJSON),
	}

	if membership := ld.Membership(); len(membership) > 0 {
		fields[fieldMembership] = joinIDs(membership)
	}
	if defaultDate := ld.DefaultDeliveryDate(); defaultDate != nil {
		fields[fieldDefaultDeliveryDate] = defaultDate.String()
	}

	return fields, nil
}

func loadFromHash(id kernel.UUID, fields map[string]string) (*load.Load, error) {
	status, err := load.StatusFromString(fields[fieldStatus])
	if err != nil {
		return nil, fmt.Errorf("load %s: status: %w", id.String(), err)
	}

	membership, err := splitIDs(fields[fieldMembership])
	if err != nil {
		return nil, fmt.Errorf("load %s: membership: %w", id.String(), err)
	}

	totalPackages, err := strconv.Atoi(fields[fieldTotalPackages])
	if err != nil {
		return nil, fmt.Errorf("load %s: total_packages: %w", id.String(), err)
	}

	totalWeight, err := decimal.NewFromString(fields[fieldTotalWeight])
	if err != nil {
		return nil, fmt.Errorf("load %s: total_weight: %w", id.String(), err)
	}

	rawSchedule := make(map[string]string)
	if raw := fields[fieldDeliverySchedule]; raw != "" {
		if err = json.Unmarshal([]byte(raw), &rawSchedule); err != nil {
			return nil, fmt.Errorf("load %s: delivery_schedule: %w", id.String(), err)
		}
	}
	schedule := make(map[string]kernel.Date, len(rawSchedule))
	for city, raw := range rawSchedule {
		date, dateErr := kernel.DateFromString(raw)
		if dateErr != nil {
			return nil, fmt.Errorf("load %s: delivery_schedule[%s]: %w", id.String(), city, dateErr)
		}
		schedule[city] = date
	}

	var defaultDate kernel.Date
	if raw := fields[fieldDefaultDeliveryDate]; raw != "" {
		if defaultDate, err = kernel.DateFromString(raw); err != nil {
			return nil, fmt.Errorf("load %s: default_delivery_date: %w", id.String(), err)
		}
	}

	return load.RestoreLoad(id, status, membership, totalPackages, totalWeight, schedule, defaultDate)
}

func customerToHash(c *customer.Customer) map[string]string {
	return map[string]string{fieldName: c.Name()}
}

func customerFromHash(id kernel.UUID, fields map[string]string) (*customer.Customer, error) {
	return customer.NewCustomer(id, fields[fieldName])
}

// entryMember encodes an index entry for the reverse set. Kinds never contain
// a colon, so the first colon splits unambiguously.
func entryMember(entry packages.IndexEntry) string {
	return string(entry.Kind) + ":" + entry.Key
}

func entryFromMember(packageID kernel.UUID, member string) (packages.IndexEntry, error) {
	kind, key, ok := strings.Cut(member, ":")
	if !ok {
		return packages.IndexEntry{}, fmt.Errorf("malformed index entry member %q", member)
	}

	entry := packages.IndexEntry{
		Kind:      packages.IndexKind(kind),
		Key:       key,
		PackageID: packageID,
	}
	if err := entry.Kind.Validate(); err != nil {
		return packages.IndexEntry{}, err
	}
	return entry, nil
}

func joinIDs(ids []kernel.UUID) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, id.String())
	}
	return strings.Join(parts, idListSeparator)
}

func splitIDs(raw string) ([]kernel.UUID, error) {
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, idListSeparator)
	ids := make([]kernel.UUID, 0, len(parts))
	for _, part := range parts {
		id, err := kernel.UUIDFromString(part)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func optionalID(raw string) (*kernel.UUID, error) {
	if raw == "" {
		return nil, nil //nolint:nilnil //absence of the field is not an error
	}

	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
