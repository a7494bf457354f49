package commands

import (
	"errors"

	"rentalhub/internal/core/domain/model/kernel"
	"rentalhub/internal/pkg/guard"
)

var ErrDeleteVendorCommandIsNotConstructed = errors.New(
	"DeleteVendorCommand must be created via NewDeleteVendorCommand constructor",
)

// DeleteVendorCommand requests the removal of a vendor together with every
// dependent row, in foreign-key order.
type DeleteVendorCommand struct { //nolint:recvcheck //using for validation
	vendorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteVendorCommand creates a vendor deletion command for the given id.
func NewDeleteVendorCommand(vendorID kernel.UUID) (DeleteVendorCommand, error) {
	if err := vendorID.Validate(); err != nil {
		return DeleteVendorCommand{}, err
	}

	return DeleteVendorCommand{
		vendorID: vendorID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteVendorCommand) Validate() error {
	return c.guard.Validate(ErrDeleteVendorCommandIsNotConstructed)
}

// VendorID returns the vendor to delete.
func (c DeleteVendorCommand) VendorID() kernel.UUID {
	return c.vendorID
}
