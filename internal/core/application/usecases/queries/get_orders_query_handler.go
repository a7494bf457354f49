package queries

import (
	"context"

	"rentalhub/internal/core/domain/model/kernel"
	"rentalhub/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler lists orders for the admin dashboard, newest first.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler reading the orders table directly.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the list query with the optional status filter.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			order_number,
			status,
			payment_status,
			total_amount,
			rental_start_date,
			rental_end_date,
			created_at
		FROM orders
	`
	args := make([]any, 0, 1)
	if query.Status() != nil {
		sql += " WHERE status = ?"
		args = append(args, query.Status().String())
	}
	sql += " ORDER BY created_at DESC"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetOrdersQueryResponse, 0)
	for rows.Next() {
		var resp GetOrdersQueryResponse
		var id uuid.UUID
		var status, paymentStatus string

		if err = rows.Scan(
			&id,
			&resp.OrderNumber,
			&status,
			&paymentStatus,
			&resp.TotalAmount,
			&resp.RentalStart,
			&resp.RentalEnd,
			&resp.CreatedAt,
		); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID
		resp.Status = order.Status(status)
		resp.PaymentStatus = order.PaymentStatus(paymentStatus)
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
