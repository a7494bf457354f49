package ports

import (
	"context"
	"time"

	"rentalhub/internal/core/domain/model/order"
)

// OrderItemLine is one item row rendered into the customer e-mail.
type OrderItemLine struct {
	Title    string
	Quantity int
	// Image is the first product image, "" when the product has none.
	Image string
}

// CustomerStatusUpdate is the payload for the customer-facing status e-mail.
// PreviousStatus comes from the pre-update snapshot and may be stale under a
// concurrent writer; that is accepted.
type CustomerStatusUpdate struct {
	CustomerName   string
	CustomerEmail  string
	OrderNumber    string
	NewStatus      order.Status
	PreviousStatus order.Status
	OrderDate      time.Time
	RentalStart    time.Time
	RentalEnd      time.Time
	RentalDays     int
	TotalAmount    float64
	Items          []OrderItemLine
	Notes          string
}

// PartnerAssignment is the payload for the delivery-partner e-mail. Address,
// payment status, and payment method carry the final values of the update:
// the incoming value when present in the request, else the pre-update one.
type PartnerAssignment struct {
	PartnerName     string
	PartnerEmail    string
	OrderNumber     string
	CustomerName    string
	CustomerPhone   string
	DeliveryAddress string
	PaymentStatus   order.PaymentStatus
	PaymentMethod   string
	RentalStart     time.Time
	RentalEnd       time.Time
}

// Notifier is the outbound e-mail channel. Both sends are fire-and-forget
// from the caller's point of view: failures are returned for logging but must
// never fail the order update that triggered them.
type Notifier interface {
	SendOrderStatusUpdate(ctx context.Context, payload CustomerStatusUpdate) error
	SendDeliveryPartnerAssignment(ctx context.Context, payload PartnerAssignment) error
}
