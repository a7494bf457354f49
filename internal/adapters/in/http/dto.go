package http

import (
	"encoding/json"
	"fmt"

	"rentalhub/internal/core/application/usecases/queries"
	"rentalhub/internal/core/domain/model/kernel"
	"rentalhub/internal/core/domain/model/order"

	"github.com/google/uuid"
	openapitypes "github.com/oapi-codegen/runtime/types"
)

// NullableUUID distinguishes the three states of an optional reference in a
// JSON body: absent, set to a value, or explicitly null. Absent fields leave
// Set false; an explicit null sets Set and Null.
type NullableUUID struct {
	Set   bool
	Null  bool
	Value uuid.UUID
}

func (n *NullableUUID) UnmarshalJSON(data []byte) error {
	n.Set = true
	if string(data) == "null" {
		n.Null = true
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return fmt.Errorf("invalid uuid %q: %w", s, err)
	}
	n.Value = id
	return nil
}

func (n NullableUUID) MarshalJSON() ([]byte, error) {
	if !n.Set || n.Null {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value.String())
}

// UpdateOrderRequest is the PATCH body: any subset of the mutable order
// fields plus the audit envelope. Nil pointers mean the field was absent.
type UpdateOrderRequest struct {
	Status                *string      `json:"status,omitempty"`
	PaymentStatus         *string      `json:"payment_status,omitempty"`
	PaymentMethod         *string      `json:"payment_method,omitempty"`
	DeliveryAddress       *string      `json:"delivery_address,omitempty"`
	DeliveryPartnerID     NullableUUID `json:"delivery_partner_id"`
	Notes                 *string      `json:"notes,omitempty"`
	UpdatedBy             *string      `json:"updated_by,omitempty"`
	AssignDeliveryPartner *bool        `json:"assign_delivery_partner,omitempty"`
}

// toPatch converts the wire shape to the domain patch.
func (r UpdateOrderRequest) toPatch() (order.Patch, error) {
	var patch order.Patch

	if r.Status != nil {
		s := order.Status(*r.Status)
		patch.Status = &s
	}
	if r.PaymentStatus != nil {
		p := order.PaymentStatus(*r.PaymentStatus)
		patch.PaymentStatus = &p
	}
	patch.PaymentMethod = r.PaymentMethod
	patch.DeliveryAddress = r.DeliveryAddress

	if r.DeliveryPartnerID.Set {
		if r.DeliveryPartnerID.Null {
			patch.ClearDeliveryPartner = true
		} else {
			id, err := kernel.UUIDFromBytes(r.DeliveryPartnerID.Value[:])
			if err != nil {
				return order.Patch{}, err
			}
			patch.DeliveryPartnerID = &id
		}
	}

	return patch, nil
}

func (r UpdateOrderRequest) notes() string {
	if r.Notes == nil {
		return ""
	}
	return *r.Notes
}

func (r UpdateOrderRequest) updatedBy() string {
	if r.UpdatedBy == nil {
		return ""
	}
	return *r.UpdatedBy
}

func (r UpdateOrderRequest) assignDeliveryPartner() bool {
	return r.AssignDeliveryPartner != nil && *r.AssignDeliveryPartner
}

// MessageResponse is the success envelope.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the failure envelope.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// OrderListItem is one row of the order list view.
type OrderListItem struct {
	ID            string            `json:"id"`
	OrderNumber   string            `json:"order_number"`
	Status        string            `json:"status"`
	PaymentStatus string            `json:"payment_status"`
	TotalAmount   float64           `json:"total_amount"`
	RentalStart   openapitypes.Date `json:"rental_start_date"`
	RentalEnd     openapitypes.Date `json:"rental_end_date"`
	CreatedAt     string            `json:"created_at"`
}

// OrderDetail is the joined order view returned by GET /orders/:id.
type OrderDetail struct {
	ID                string            `json:"id"`
	OrderNumber       string            `json:"order_number"`
	Status            string            `json:"status"`
	PaymentStatus     string            `json:"payment_status"`
	PaymentMethod     string            `json:"payment_method"`
	DeliveryAddress   string            `json:"delivery_address"`
	TotalAmount       float64           `json:"total_amount"`
	RentalStart       openapitypes.Date `json:"rental_start_date"`
	RentalEnd         openapitypes.Date `json:"rental_end_date"`
	DeliveryPartnerID *string           `json:"delivery_partner_id"`
	Customer          OrderCustomer     `json:"customer"`
	Items             []OrderItem       `json:"items"`
}

// OrderCustomer is the embedded customer contact.
type OrderCustomer struct {
	Name  string             `json:"name"`
	Email openapitypes.Email `json:"email"`
	Phone string             `json:"phone"`
}

// OrderItem is one embedded order line.
type OrderItem struct {
	Title     string   `json:"title"`
	Quantity  int      `json:"quantity"`
	UnitPrice float64  `json:"unit_price"`
	Images    []string `json:"images"`
}

func fromOrderListResponse(rows []queries.GetOrdersQueryResponse) []OrderListItem {
	out := make([]OrderListItem, len(rows))
	for i, row := range rows {
		out[i] = OrderListItem{
			ID:            row.ID.String(),
			OrderNumber:   row.OrderNumber,
			Status:        row.Status.String(),
			PaymentStatus: row.PaymentStatus.String(),
			TotalAmount:   row.TotalAmount,
			RentalStart:   openapitypes.Date{Time: row.RentalStart},
			RentalEnd:     openapitypes.Date{Time: row.RentalEnd},
			CreatedAt:     row.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		}
	}
	return out
}

func fromSnapshot(snapshot *order.Snapshot) OrderDetail {
	var partnerID *string
	if snapshot.DeliveryPartnerID != nil {
		s := snapshot.DeliveryPartnerID.String()
		partnerID = &s
	}

	items := make([]OrderItem, len(snapshot.Items))
	for i, item := range snapshot.Items {
		items[i] = OrderItem{
			Title:     item.Title,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Images:    item.Images,
		}
	}

	return OrderDetail{
		ID:                snapshot.ID.String(),
		OrderNumber:       snapshot.OrderNumber,
		Status:            snapshot.Status.String(),
		PaymentStatus:     snapshot.PaymentStatus.String(),
		PaymentMethod:     snapshot.PaymentMethod,
		DeliveryAddress:   snapshot.DeliveryAddress,
		TotalAmount:       snapshot.TotalAmount,
		RentalStart:       openapitypes.Date{Time: snapshot.RentalStart},
		RentalEnd:         openapitypes.Date{Time: snapshot.RentalEnd},
		DeliveryPartnerID: partnerID,
		Customer: OrderCustomer{
			Name:  snapshot.CustomerDisplayName(),
			Email: openapitypes.Email(snapshot.Customer.Email),
			Phone: snapshot.Customer.Phone,
		},
		Items: items,
	}
}
