package email_test

import (
	"testing"
	"time"

	"rentalhub/internal/adapters/out/email"
	"rentalhub/internal/core/domain/model/order"
	"rentalhub/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func customerPayload() ports.CustomerStatusUpdate {
	return ports.CustomerStatusUpdate{
		CustomerName:   "Jane",
		CustomerEmail:  "jane@example.com",
		OrderNumber:    "RH-1001",
		NewStatus:      order.StatusShipped,
		PreviousStatus: order.StatusProcessing,
		OrderDate:      time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
		RentalStart:    time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		RentalEnd:      time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC),
		RentalDays:     4,
		TotalAmount:    120,
		Items: []ports.OrderItemLine{
			{Title: "Trekking Tent", Quantity: 2, Image: "https://img.example.com/tent.jpg"},
			{Title: "Camping Stove", Quantity: 1},
		},
	}
}

func TestCustomerSubject_IncludesStatusMarker(t *testing.T) {
	payload := customerPayload()

	assert.Equal(t, "🚚 Order RH-1001 update: shipped", email.CustomerSubject(payload))

	payload.NewStatus = order.StatusDelivered
	assert.Equal(t, "✅ Order RH-1001 update: delivered", email.CustomerSubject(payload))

	payload.NewStatus = order.Status("archived")
	assert.Equal(t, "📦 Order RH-1001 update: archived", email.CustomerSubject(payload))
}

func TestCustomerBody_RendersOrderDetails(t *testing.T) {
	body, err := email.CustomerBody(customerPayload())
	require.NoError(t, err)

	assert.Contains(t, body, "Hi Jane,")
	assert.Contains(t, body, "Your order RH-1001 is now shipped (was processing).")
	assert.Contains(t, body, "Order date: Jun 1, 2025")
	assert.Contains(t, body, "Rental period: Jun 10, 2025 to Jun 14, 2025 (4 days)")
	assert.Contains(t, body, "Total: ₹120.00")
	assert.Contains(t, body, "- Trekking Tent x2")
	assert.Contains(t, body, "- Camping Stove x1")
	assert.NotContains(t, body, "Note from our team")
}

func TestCustomerBody_SingleDayAndNotes(t *testing.T) {
	payload := customerPayload()
	payload.RentalDays = 1
	payload.Notes = "Pickup moved to 9am"

	body, err := email.CustomerBody(payload)
	require.NoError(t, err)

	assert.Contains(t, body, "(1 day)")
	assert.Contains(t, body, "Note from our team: Pickup moved to 9am")
}

func TestPartnerBody_RendersAssignment(t *testing.T) {
	payload := ports.PartnerAssignment{
		PartnerName:     "Speedy Logistics",
		PartnerEmail:    "dispatch@speedy.example.com",
		OrderNumber:     "RH-1001",
		CustomerName:    "Jane",
		CustomerPhone:   "+1-555-0100",
		DeliveryAddress: "12 Hill Road",
		PaymentStatus:   order.PaymentPaid,
		PaymentMethod:   "card",
		RentalStart:     time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		RentalEnd:       time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC),
	}

	assert.Equal(t, "🚚 Delivery assignment: order RH-1001", email.PartnerSubject(payload))

	body, err := email.PartnerBody(payload)
	require.NoError(t, err)

	assert.Contains(t, body, "Hi Speedy Logistics,")
	assert.Contains(t, body, "delivery assignment for order RH-1001")
	assert.Contains(t, body, "Customer: Jane (+1-555-0100)")
	assert.Contains(t, body, "Delivery address: 12 Hill Road")
	assert.Contains(t, body, "Payment: paid via card")
}

func TestPartnerBody_OmitsEmptyPaymentMethod(t *testing.T) {
	payload := ports.PartnerAssignment{
		PartnerName:   "Speedy Logistics",
		OrderNumber:   "RH-1002",
		PaymentStatus: order.PaymentPending,
	}

	body, err := email.PartnerBody(payload)
	require.NoError(t, err)

	assert.Contains(t, body, "Payment: pending\n")
	assert.NotContains(t, body, " via ")
}
