package queries

import (
	"errors"
	"time"

	"rentalhub/internal/core/domain/model/kernel"
	"rentalhub/internal/core/domain/model/order"
	"rentalhub/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery requests the order list, optionally filtered by status.
type GetOrdersQuery struct { //nolint:recvcheck //using for validation
	status *order.Status

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a list query. A nil status means no filter.
func NewGetOrdersQuery(status *order.Status) GetOrdersQuery {
	var canonical *order.Status
	if status != nil {
		s := status.Canonical()
		canonical = &s
	}

	return GetOrdersQuery{
		status: canonical,
		guard:  guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Status returns the status filter, nil when absent.
func (q GetOrdersQuery) Status() *order.Status {
	return q.status
}

// GetOrdersQueryResponse is one row of the order list view.
type GetOrdersQueryResponse struct {
	ID            kernel.UUID
	OrderNumber   string
	Status        order.Status
	PaymentStatus order.PaymentStatus
	TotalAmount   float64
	RentalStart   time.Time
	RentalEnd     time.Time
	CreatedAt     time.Time
}
