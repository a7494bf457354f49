package ports

import (
	"context"

	"rentalhub/internal/core/domain/model/kernel"
)

// VendorRepository exposes the ordered cleanup steps for vendor deletion.
// Callers must invoke the Delete* methods in foreign-key order (order items,
// earnings, coupons, products) before Delete, inside one transaction.
type VendorRepository interface {
	// DeleteOrderItems removes order items referencing the vendor's products.
	DeleteOrderItems(ctx context.Context, vendorID kernel.UUID) error

	// DeleteEarnings removes the vendor's earning rows.
	DeleteEarnings(ctx context.Context, vendorID kernel.UUID) error

	// DeleteCoupons removes the vendor's coupons.
	DeleteCoupons(ctx context.Context, vendorID kernel.UUID) error

	// DeleteProducts removes the vendor's products.
	DeleteProducts(ctx context.Context, vendorID kernel.UUID) error

	// Delete removes the vendor row itself. Returns a wrapped
	// errs.ErrObjectNotFound when the vendor does not exist.
	Delete(ctx context.Context, vendorID kernel.UUID) error
}
