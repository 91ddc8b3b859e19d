package packages

import (
	"fmt"

	"freightdesk/internal/core/domain/model/kernel"
	"freightdesk/internal/pkg/errs"
)

// IndexKind identifies one of the secondary indexes maintained for packages.
type IndexKind string

const (
	// IndexKindCustomer indexes packages by owning customer.
	IndexKindCustomer IndexKind = "customer"

	// IndexKindReceivedDate indexes packages by the date they entered the system.
	IndexKindReceivedDate IndexKind = "received_date"

	// IndexKindStatus indexes packages by current shipment status.
	IndexKindStatus IndexKind = "status"
)

// Validate checks that the kind is one of the three supported indexes.
func (k IndexKind) Validate() error {
	switch k {
	case IndexKindCustomer, IndexKindReceivedDate, IndexKindStatus:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("index kind",
			fmt.Errorf("%q is not a valid index kind", string(k)))
	}
}

// IndexEntry is one secondary-index fact: "package PackageID currently has
// value Key in index Kind". Entries are derived entirely from the package
// record; they are never a source of truth on their own.
//
// Exactly one entry per kind must exist for every package, keyed by the
// package's current attribute value. Entries pointing at prior values are
// index drift and get repaired by reconciliation.
type IndexEntry struct {
	Kind      IndexKind
	Key       string
	PackageID kernel.UUID
}

// IsEqual reports whether two entries describe the same index fact.
func (e IndexEntry) IsEqual(other IndexEntry) bool {
	return e.Kind == other.Kind && e.Key == other.Key && e.PackageID.IsEqual(other.PackageID)
}

// String renders the entry as "kind:key -> packageID" for logs.
func (e IndexEntry) String() string {
	return fmt.Sprintf("%s:%s -> %s", e.Kind, e.Key, e.PackageID.String())
}

// IndexEntriesOf computes the complete set of index entries a package record
// implies: one per (customer, received-date, status) index. The computation is
// pure; callers diff the results for two snapshots to obtain the index writes
// a mutation requires.
func IndexEntriesOf(p *Package) []IndexEntry {
	return []IndexEntry{
		{Kind: IndexKindCustomer, Key: p.CustomerID().String(), PackageID: p.ID()},
		{Kind: IndexKindReceivedDate, Key: p.ReceivedDate().String(), PackageID: p.ID()},
		{Kind: IndexKindStatus, Key: p.Status().String(), PackageID: p.ID()},
	}
}
