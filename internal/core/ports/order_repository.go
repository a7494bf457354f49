// Package ports defines the contracts between the application core and its
// adapters: persistence repositories, the unit of work, and the outbound
// e-mail notifier.
package ports

import (
	"context"

	"rentalhub/internal/core/domain/model/kernel"
	"rentalhub/internal/core/domain/model/order"
)

// OrderRepository is the persistence contract for orders. The database owns
// schema constraints and the cascade on order deletion; this port only
// surfaces success and failure.
type OrderRepository interface {
	// Get retrieves the joined snapshot of one order: order fields plus
	// customer contact and items with product titles and images.
	// Returns errs.ErrObjectNotFound (wrapped) when the order does not exist.
	Get(ctx context.Context, id kernel.UUID) (*order.Snapshot, error)

	// UpdateFields applies a normalized partial update to the order row.
	// The patch must not be empty.
	UpdateFields(ctx context.Context, id kernel.UUID, patch order.Patch) error

	// InsertStatusHistory appends one audit record. Records are never
	// updated or deleted through this port.
	InsertStatusHistory(ctx context.Context, record order.HistoryRecord) error
}
