package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"freightdesk/internal/core/domain/model/packages"
	"freightdesk/internal/core/domain/services"
	"freightdesk/internal/core/ports"
	"freightdesk/internal/pkg/errs"
)

// CreatePackageCommandHandler handles package registration.
// Validates the owning customer through the customer directory collaborator,
// writes the package record, and files its initial index entries.
//
// Commit point: the package record write. Index entries are applied after it,
// best-effort; reconciliation files any entry this pass loses.
type CreatePackageCommandHandler struct {
	store     PackageIndexStore
	directory ports.CustomerDirectory
	planner   services.IndexPlanner
	logger    *slog.Logger
}

// NewCreatePackageCommandHandler creates a handler for package registration.
func NewCreatePackageCommandHandler(
	store PackageIndexStore,
	directory ports.CustomerDirectory,
	logger *slog.Logger,
) CreatePackageCommandHandler {
	return CreatePackageCommandHandler{
		store:     store,
		directory: directory,
		planner:   services.NewIndexPlanner(),
		logger:    logger.With("component", "create_package_handler"),
	}
}

// Handle processes the package registration command.
// Returns the created package, ObjectNotFoundError if the customer does not
// exist, or ValueIsInvalidError if the package id is already taken.
func (h CreatePackageCommandHandler) Handle(
	ctx context.Context,
	cmd CreatePackageCommand,
) (*packages.Package, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	exists, err := h.directory.CustomerExists(ctx, cmd.CustomerID())
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errs.NewObjectNotFoundError("customer", cmd.CustomerID().String())
	}

	if _, err = h.store.GetPackage(ctx, cmd.PackageID()); err == nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("packageId",
			fmt.Errorf("package %s already exists", cmd.PackageID().String()))
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	pkg, err := packages.NewPackage(
		cmd.PackageID(),
		cmd.CustomerID(),
		cmd.ReceivedDate(),
		cmd.Weight(),
		cmd.DestinationCity(),
	)
	if err != nil {
		return nil, err
	}

	// Commit point.
	if err = h.store.PutPackage(ctx, pkg); err != nil {
		return nil, err
	}

	applyIndexDelta(ctx, h.store, h.logger, h.planner.Plan(nil, pkg))

	return pkg, nil
}
