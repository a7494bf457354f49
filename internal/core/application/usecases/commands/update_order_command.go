package commands

import (
	"errors"

	"rentalhub/internal/core/domain/model/kernel"
	"rentalhub/internal/core/domain/model/order"
	"rentalhub/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand is one order mutation request: a partial field patch
// plus the non-persisted envelope (notes and actor for the audit log, and the
// explicit assignment flag for the partner notification trigger).
//
// Example:
//
//	patch := order.Patch{Status: &newStatus}
//	cmd, err := NewUpdateOrderCommand(orderID, patch, "damaged box", "admin:kate", false)
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID               kernel.UUID
	patch                 order.Patch
	notes                 string
	updatedBy             string
	assignDeliveryPartner bool

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates an order mutation command.
// Only the order id is validated here; field-level rules live in
// order.Patch.Normalize and in the database schema.
func NewUpdateOrderCommand(
	orderID kernel.UUID,
	patch order.Patch,
	notes string,
	updatedBy string,
	assignDeliveryPartner bool,
) (UpdateOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return UpdateOrderCommand{}, err
	}

	return UpdateOrderCommand{
		orderID:               orderID,
		patch:                 patch,
		notes:                 notes,
		updatedBy:             updatedBy,
		assignDeliveryPartner: assignDeliveryPartner,
		guard:                 guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Patch returns the raw (not yet normalized) field update set.
func (c UpdateOrderCommand) Patch() order.Patch {
	return c.patch
}

// Notes returns the free-text note routed to the audit log and the customer
// e-mail, never persisted on the order row.
func (c UpdateOrderCommand) Notes() string {
	return c.notes
}

// UpdatedBy returns the acting user for the audit log; may be empty.
func (c UpdateOrderCommand) UpdatedBy() string {
	return c.updatedBy
}

// AssignDeliveryPartner reports whether the request explicitly marked this
// update as a partner assignment.
func (c UpdateOrderCommand) AssignDeliveryPartner() bool {
	return c.assignDeliveryPartner
}
