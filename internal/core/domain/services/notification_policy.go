package services

import (
	"rentalhub/internal/core/domain/model/kernel"
	"rentalhub/internal/core/domain/model/order"
	"rentalhub/internal/core/domain/model/partner"
	"rentalhub/internal/core/ports"
)

// NotificationPolicy decides, for one order update, whether each of the two
// independent notification channels fires and what its payload carries.
// It is pure: all inputs are the pre-update snapshot, the normalized patch,
// and the assignment flag from the request.
type NotificationPolicy struct{}

// NewNotificationPolicy creates the stateless policy service.
func NewNotificationPolicy() NotificationPolicy {
	return NotificationPolicy{}
}

// ShouldNotifyCustomer reports whether the customer e-mail fires: the update
// carries a status (any value, even unchanged) and the snapshot has a
// customer e-mail address. Payment-only updates never notify the customer.
func (NotificationPolicy) ShouldNotifyCustomer(pre order.Snapshot, patch order.Patch) bool {
	return patch.HasStatus() && pre.Customer.Email != ""
}

// PartnerTrigger evaluates the delivery-partner notification matrix.
// The e-mail fires when any of the following holds:
//
//	a. a partner is being newly assigned (assign flag set and the incoming
//	   id differs from the pre-update one)
//	b. payment status or payment method changed while a partner is or will
//	   be assigned
//	c. the delivery address changed while a partner is or will be assigned
//	d. a previously assigned partner is being cleared by this update
//
// The second return value is the partner to notify: the incoming id when
// supplied, else the pre-update one (which covers the unassignment case).
// When the condition holds but no id is resolvable the trigger is off.
func (NotificationPolicy) PartnerTrigger(
	pre order.Snapshot,
	patch order.Patch,
	assignRequested bool,
) (bool, kernel.UUID) {
	preID := pre.DeliveryPartnerID
	newID := patch.DeliveryPartnerID

	// Partner reference after this update is applied.
	postID := preID
	if patch.ClearDeliveryPartner {
		postID = nil
	}
	if newID != nil {
		postID = newID
	}
	partnerInvolved := preID != nil || postID != nil

	newlyAssigned := assignRequested && newID != nil &&
		(preID == nil || !newID.IsEqual(*preID))

	paymentChanged := (patch.PaymentStatus != nil && *patch.PaymentStatus != pre.PaymentStatus) ||
		(patch.PaymentMethod != nil && *patch.PaymentMethod != pre.PaymentMethod)

	addressChanged := patch.DeliveryAddress != nil && *patch.DeliveryAddress != pre.DeliveryAddress

	unassigned := preID != nil && patch.ClearDeliveryPartner

	fire := newlyAssigned ||
		(paymentChanged && partnerInvolved) ||
		(addressChanged && partnerInvolved) ||
		unassigned
	if !fire {
		return false, kernel.UUID{}
	}

	switch {
	case newID != nil:
		return true, *newID
	case preID != nil:
		return true, *preID
	default:
		return false, kernel.UUID{}
	}
}

// BuildCustomerStatusUpdate assembles the customer e-mail payload from the
// pre-update snapshot and the normalized patch. PreviousStatus is the
// snapshot's status; NewStatus is the incoming one.
func (NotificationPolicy) BuildCustomerStatusUpdate(
	pre order.Snapshot,
	patch order.Patch,
	notes string,
) ports.CustomerStatusUpdate {
	var newStatus order.Status
	if patch.Status != nil {
		newStatus = *patch.Status
	}

	items := make([]ports.OrderItemLine, 0, len(pre.Items))
	for _, item := range pre.Items {
		items = append(items, ports.OrderItemLine{
			Title:    item.Title,
			Quantity: item.Quantity,
			Image:    item.FirstImage(),
		})
	}

	return ports.CustomerStatusUpdate{
		CustomerName:   pre.CustomerDisplayName(),
		CustomerEmail:  pre.Customer.Email,
		OrderNumber:    pre.OrderNumber,
		NewStatus:      newStatus,
		PreviousStatus: pre.Status,
		OrderDate:      pre.CreatedAt,
		RentalStart:    pre.RentalStart,
		RentalEnd:      pre.RentalEnd,
		RentalDays:     pre.RentalDays(),
		TotalAmount:    pre.TotalAmount,
		Items:          items,
		Notes:          notes,
	}
}

// BuildPartnerAssignment assembles the partner e-mail payload. Delivery
// address, payment status, and payment method resolve to the update's final
// values: the patch value when present, else the snapshot's.
func (NotificationPolicy) BuildPartnerAssignment(
	pre order.Snapshot,
	patch order.Patch,
	p partner.DeliveryPartner,
) ports.PartnerAssignment {
	address := pre.DeliveryAddress
	if patch.DeliveryAddress != nil {
		address = *patch.DeliveryAddress
	}

	paymentStatus := pre.PaymentStatus
	if patch.PaymentStatus != nil {
		paymentStatus = *patch.PaymentStatus
	}

	paymentMethod := pre.PaymentMethod
	if patch.PaymentMethod != nil {
		paymentMethod = *patch.PaymentMethod
	}

	return ports.PartnerAssignment{
		PartnerName:     p.Name,
		PartnerEmail:    p.Email,
		OrderNumber:     pre.OrderNumber,
		CustomerName:    pre.CustomerDisplayName(),
		CustomerPhone:   pre.Customer.Phone,
		DeliveryAddress: address,
		PaymentStatus:   paymentStatus,
		PaymentMethod:   paymentMethod,
		RentalStart:     pre.RentalStart,
		RentalEnd:       pre.RentalEnd,
	}
}
