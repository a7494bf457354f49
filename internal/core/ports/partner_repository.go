package ports

import (
	"context"

	"rentalhub/internal/core/domain/model/kernel"
	"rentalhub/internal/core/domain/model/partner"
)

// DeliveryPartnerRepository is the read-only lookup used to resolve a
// partner's contact details for notifications.
type DeliveryPartnerRepository interface {
	// Get returns the partner's contact record, or a wrapped
	// errs.ErrObjectNotFound when the id is unknown.
	Get(ctx context.Context, id kernel.UUID) (*partner.DeliveryPartner, error)
}
