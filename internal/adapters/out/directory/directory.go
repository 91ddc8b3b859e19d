// Package directory provides the CustomerDirectory collaborator backed by the
// customer records of an EntityStore.
package directory

import (
	"context"
	"errors"

	"freightdesk/internal/core/domain/model/kernel"
	"freightdesk/internal/core/ports"
	"freightdesk/internal/pkg/errs"
)

// StoreDirectory answers customer-existence checks from a customer store.
type StoreDirectory struct {
	store ports.CustomerStore
}

var _ ports.CustomerDirectory = (*StoreDirectory)(nil)

// NewStoreDirectory creates a directory over the given customer store.
func NewStoreDirectory(store ports.CustomerStore) *StoreDirectory {
	return &StoreDirectory{store: store}
}

// CustomerExists reports whether the customer id resolves to a record.
func (d *StoreDirectory) CustomerExists(ctx context.Context, id kernel.UUID) (bool, error) {
	if _, err := d.store.GetCustomer(ctx, id); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
