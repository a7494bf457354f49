package order

import (
	"time"

	"rentalhub/internal/core/domain/model/kernel"
)

// Snapshot is the joined read model of one order immediately before a
// mutation: order fields plus the customer contact and the item list with
// product titles and images. It feeds the audit and notification steps, which
// is why a failed snapshot fetch disables those steps for the request.
type Snapshot struct {
	ID                kernel.UUID
	OrderNumber       string
	Status            Status
	PaymentStatus     PaymentStatus
	PaymentMethod     string
	DeliveryAddress   string
	TotalAmount       float64
	RentalStart       time.Time
	RentalEnd         time.Time
	CreatedAt         time.Time
	DeliveryPartnerID *kernel.UUID

	Customer CustomerContact
	Items    []ItemSnapshot
}

// CustomerContact is the customer profile slice needed for notifications.
type CustomerContact struct {
	Name     string
	FullName string
	Email    string
	Phone    string
}

// ItemSnapshot is one order line with its product title and images.
// UnitPrice is the price captured at order time, never the live price.
type ItemSnapshot struct {
	Title     string
	Quantity  int
	Images    []string
	UnitPrice float64
}

// FirstImage returns the first product image, or "" when none exist.
func (i ItemSnapshot) FirstImage() string {
	if len(i.Images) == 0 {
		return ""
	}
	return i.Images[0]
}

// CustomerDisplayName picks the name used to address the customer:
// profile name, then full name, then the literal "Customer".
func (s Snapshot) CustomerDisplayName() string {
	if s.Customer.Name != "" {
		return s.Customer.Name
	}
	if s.Customer.FullName != "" {
		return s.Customer.FullName
	}
	return "Customer"
}

// RentalDays returns the rental span in whole days, never less than one.
func (s Snapshot) RentalDays() int {
	days := int(s.RentalEnd.Sub(s.RentalStart).Hours() / 24)
	if days < 1 {
		return 1
	}
	return days
}
