// Package partner models delivery partners, the parties handling physical
// fulfilment. A partner's lifecycle is independent of orders; an order holds
// at most one partner reference at a time.
package partner

import "rentalhub/internal/core/domain/model/kernel"

// DeliveryPartner is the contact read model used for assignment notifications.
type DeliveryPartner struct {
	ID    kernel.UUID
	Name  string
	Email string
	Phone string
}
