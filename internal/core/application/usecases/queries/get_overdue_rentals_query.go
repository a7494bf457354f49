package queries

import (
	"errors"
	"time"

	"rentalhub/internal/core/domain/model/kernel"
	"rentalhub/internal/pkg/guard"
)

var ErrGetOverdueRentalsQueryIsNotConstructed = errors.New(
	"GetOverdueRentalsQuery must be created via NewGetOverdueRentalsQuery constructor",
)

// GetOverdueRentalsQuery requests delivered orders whose rental period has
// ended without the item being returned. Used by the scheduled sweep.
type GetOverdueRentalsQuery struct { //nolint:recvcheck //using for validation
	asOf time.Time

	guard guard.ConstructorGuard
}

// NewGetOverdueRentalsQuery creates a sweep query evaluated at the given time.
func NewGetOverdueRentalsQuery(asOf time.Time) (GetOverdueRentalsQuery, error) {
	if asOf.IsZero() {
		return GetOverdueRentalsQuery{}, errors.New("asOf time is required")
	}

	return GetOverdueRentalsQuery{
		asOf:  asOf,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOverdueRentalsQuery) Validate() error {
	return q.guard.Validate(ErrGetOverdueRentalsQueryIsNotConstructed)
}

// AsOf returns the evaluation time.
func (q GetOverdueRentalsQuery) AsOf() time.Time {
	return q.asOf
}

// GetOverdueRentalsQueryResponse is one overdue rental row.
type GetOverdueRentalsQueryResponse struct {
	ID          kernel.UUID
	OrderNumber string
	RentalEnd   time.Time
	DaysOverdue int
}
