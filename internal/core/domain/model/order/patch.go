package order

import (
	"time"

	"rentalhub/internal/core/domain/model/kernel"
)

// Patch is the validated partial update applied to one order. Nil pointer
// fields were absent from the request. DeliveryPartnerID and
// ClearDeliveryPartner together form the tri-state for the partner reference:
// absent, set to a new partner, or explicitly cleared.
//
// Notes, the updating actor, and the assignment flag are not order fields and
// are carried on the command instead.
type Patch struct {
	Status          *Status
	PaymentStatus   *PaymentStatus
	PaymentMethod   *string
	DeliveryAddress *string

	// DeliveryPartnerID is the new partner reference when non-nil.
	DeliveryPartnerID *kernel.UUID
	// ClearDeliveryPartner is set when the request carried an explicit null
	// partner reference, i.e. an unassignment.
	ClearDeliveryPartner bool

	// UpdatedAt is stamped by Normalize.
	UpdatedAt time.Time
}

// IsEmpty reports whether the patch carries no order field at all.
// An empty patch is not persisted.
func (p Patch) IsEmpty() bool {
	return p.Status == nil &&
		p.PaymentStatus == nil &&
		p.PaymentMethod == nil &&
		p.DeliveryAddress == nil &&
		p.DeliveryPartnerID == nil &&
		!p.ClearDeliveryPartner
}

// HasStatus reports whether the patch includes a status change, regardless of
// whether the new value differs from the current one.
func (p Patch) HasStatus() bool {
	return p.Status != nil
}

// Normalize returns the update set as it must be persisted:
//   - statuses are folded to their canonical lower-case form
//   - a cancelled status forces payment_status to cancelled in the same
//     update, overriding any explicitly supplied payment status
//   - UpdatedAt is refreshed to now
//
// No other field-level validation happens here; schema constraints are the
// database's concern.
func (p Patch) Normalize(now time.Time) Patch {
	normalized := p

	if p.PaymentStatus != nil {
		canonical := PaymentStatus(Status(*p.PaymentStatus).Canonical())
		normalized.PaymentStatus = &canonical
	}

	if p.Status != nil {
		canonical := p.Status.Canonical()
		normalized.Status = &canonical

		if canonical.IsCancelled() {
			cancelled := PaymentCancelled
			normalized.PaymentStatus = &cancelled
		}
	}

	normalized.UpdatedAt = now
	return normalized
}
