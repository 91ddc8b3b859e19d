package commands

import (
	"errors"

	"freightdesk/internal/core/domain/model/kernel"
	"freightdesk/internal/pkg/errs"
	"freightdesk/internal/pkg/guard"
)

var ErrAssignPackagesCommandIsNotConstructed = errors.New(
	"AssignPackagesCommand must be created via NewAssignPackagesCommand constructor",
)

// AssignPackagesCommand represents a bulk request to put packages on a load.
// Package ids are carried as raw strings so ids that fail to parse are
// reported per-id in the bulk result instead of rejecting the whole call.
//
// When onlyIfUnassigned is set, packages already on a different load fail with
// AlreadyAssignedError instead of being silently reassigned.
//
// Example:
//
//	cmd, err := NewAssignPackagesCommand([]string{p1.String(), p2.String()}, loadID, false)
//	if err != nil {
//	    return err
//	}
//	result, err := handler.Handle(ctx, cmd)
//	// result.Succeeded / result.Failed per id
type AssignPackagesCommand struct { //nolint:recvcheck //using for validation
	packageIDs       []string
	loadID           kernel.UUID
	onlyIfUnassigned bool

	guard guard.ConstructorGuard
}

// NewAssignPackagesCommand creates a bulk assignment command.
// Requires a valid target load id and at least one package id.
func NewAssignPackagesCommand(
	packageIDs []string,
	loadID kernel.UUID,
	onlyIfUnassigned bool,
) (AssignPackagesCommand, error) {
	if err := loadID.Validate(); err != nil {
		return AssignPackagesCommand{}, err
	}
	if len(packageIDs) == 0 {
		return AssignPackagesCommand{}, errs.NewValueIsRequiredError("packageIds")
	}

	ids := make([]string, len(packageIDs))
	copy(ids, packageIDs)

	return AssignPackagesCommand{
		packageIDs:       ids,
		loadID:           loadID,
		onlyIfUnassigned: onlyIfUnassigned,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignPackagesCommand) Validate() error {
	return c.guard.Validate(ErrAssignPackagesCommandIsNotConstructed)
}

// PackageIDs returns the raw requested package ids in request order.
func (c AssignPackagesCommand) PackageIDs() []string {
	return c.packageIDs
}

// LoadID returns the target load's identifier.
func (c AssignPackagesCommand) LoadID() kernel.UUID {
	return c.loadID
}

// OnlyIfUnassigned reports whether assign-only-if-unassigned semantics were
// requested.
func (c AssignPackagesCommand) OnlyIfUnassigned() bool {
	return c.onlyIfUnassigned
}
