package queries

import (
	"context"

	"rentalhub/internal/core/domain/model/order"
	"rentalhub/internal/core/ports"
)

// GetOrderQueryHandler serves the order detail view used by the dashboards.
// It reuses the repository's joined snapshot rather than duplicating the join.
type GetOrderQueryHandler struct {
	orders ports.OrderRepository
}

// NewGetOrderQueryHandler creates a handler backed by the order repository.
func NewGetOrderQueryHandler(orders ports.OrderRepository) GetOrderQueryHandler {
	return GetOrderQueryHandler{orders: orders}
}

// Handle returns the joined order snapshot, or a wrapped
// errs.ErrObjectNotFound when the order does not exist.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (*order.Snapshot, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.orders.Get(ctx, query.OrderID())
}
