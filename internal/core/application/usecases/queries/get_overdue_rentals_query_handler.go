package queries

import (
	"context"

	"rentalhub/internal/core/domain/model/kernel"
	"rentalhub/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOverdueRentalsQueryHandler finds delivered orders past their rental end
// date. Cancelled and rejected orders never show up here.
type GetOverdueRentalsQueryHandler struct {
	db *gorm.DB
}

// NewGetOverdueRentalsQueryHandler creates a handler reading the orders table.
func NewGetOverdueRentalsQueryHandler(db *gorm.DB) GetOverdueRentalsQueryHandler {
	return GetOverdueRentalsQueryHandler{db: db}
}

// Handle returns overdue rentals ordered by how long they have been out.
func (h GetOverdueRentalsQueryHandler) Handle(
	ctx context.Context,
	query GetOverdueRentalsQuery,
) ([]GetOverdueRentalsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_number,
			rental_end_date
		FROM orders
		WHERE status = ?
		  AND rental_end_date < ?
		ORDER BY rental_end_date
	`, order.StatusDelivered.String(), query.AsOf()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	overdue := make([]GetOverdueRentalsQueryResponse, 0)
	for rows.Next() {
		var resp GetOverdueRentalsQueryResponse
		var id uuid.UUID

		if err = rows.Scan(&id, &resp.OrderNumber, &resp.RentalEnd); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID
		resp.DaysOverdue = int(query.AsOf().Sub(resp.RentalEnd).Hours() / 24)
		overdue = append(overdue, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return overdue, nil
}
