// Package orderrepo persists orders, their joined read model, and the status
// audit log. DTOs map the relational tables; the cascade constraints mirror
// what the database enforces on order deletion.
package orderrepo

import (
	"time"

	"rentalhub/internal/core/domain/model/kernel"
	"rentalhub/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// OrderDTO maps the orders table.
type OrderDTO struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderNumber       string     `gorm:"uniqueIndex"`
	CustomerID        uuid.UUID  `gorm:"type:uuid;index"`
	DeliveryPartnerID *uuid.UUID `gorm:"type:uuid;index"`
	Status            string     `gorm:"index"`
	PaymentStatus     string
	PaymentMethod     string
	DeliveryAddress   string
	TotalAmount       float64
	RentalStartDate   time.Time
	RentalEndDate     time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time

	Customer CustomerDTO    `gorm:"foreignKey:CustomerID"`
	Items    []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO maps the order_items table. UnitPrice is the price captured
// when the order was placed, independent of the live product price.
type OrderItemDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	ProductID uuid.UUID `gorm:"type:uuid;index"`
	Quantity  int
	UnitPrice float64

	Product ProductDTO `gorm:"foreignKey:ProductID"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

// ProductDTO maps the products table slice needed for order joins.
type ProductDTO struct {
	ID       uuid.UUID      `gorm:"type:uuid;primaryKey"`
	VendorID uuid.UUID      `gorm:"type:uuid;index"`
	Title    string
	Images   pq.StringArray `gorm:"type:text[]"`
	Price    float64
}

func (ProductDTO) TableName() string {
	return "products"
}

// CustomerDTO maps the customer profiles table.
type CustomerDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name     string
	FullName string
	Email    string
	Phone    string
}

func (CustomerDTO) TableName() string {
	return "profiles"
}

// StatusHistoryDTO maps the append-only order_status_history table.
type StatusHistoryDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;index;constraint:OnDelete:CASCADE"`
	Status    string
	Notes     string
	UpdatedBy string
	CreatedAt time.Time
}

func (StatusHistoryDTO) TableName() string {
	return "order_status_history"
}

// toSnapshot converts a joined order row to the domain read model.
func toSnapshot(dto OrderDTO) (*order.Snapshot, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var partnerID *kernel.UUID
	if dto.DeliveryPartnerID != nil {
		pID, pErr := kernel.UUIDFromBytes((*dto.DeliveryPartnerID)[:])
		if pErr != nil {
			return nil, pErr
		}
		partnerID = &pID
	}

	items := make([]order.ItemSnapshot, 0, len(dto.Items))
	for _, item := range dto.Items {
		items = append(items, order.ItemSnapshot{
			Title:     item.Product.Title,
			Quantity:  item.Quantity,
			Images:    item.Product.Images,
			UnitPrice: item.UnitPrice,
		})
	}

	return &order.Snapshot{
		ID:                id,
		OrderNumber:       dto.OrderNumber,
		Status:            order.Status(dto.Status),
		PaymentStatus:     order.PaymentStatus(dto.PaymentStatus),
		PaymentMethod:     dto.PaymentMethod,
		DeliveryAddress:   dto.DeliveryAddress,
		TotalAmount:       dto.TotalAmount,
		RentalStart:       dto.RentalStartDate,
		RentalEnd:         dto.RentalEndDate,
		CreatedAt:         dto.CreatedAt,
		DeliveryPartnerID: partnerID,
		Customer: order.CustomerContact{
			Name:     dto.Customer.Name,
			FullName: dto.Customer.FullName,
			Email:    dto.Customer.Email,
			Phone:    dto.Customer.Phone,
		},
		Items: items,
	}, nil
}

// fromHistoryRecord converts an audit record to its database row.
func fromHistoryRecord(record order.HistoryRecord) StatusHistoryDTO {
	return StatusHistoryDTO{
		ID:        uuid.New(),
		OrderID:   record.OrderID.Bytes(),
		Status:    record.Status.String(),
		Notes:     record.Notes,
		UpdatedBy: record.UpdatedBy,
		CreatedAt: record.CreatedAt,
	}
}
