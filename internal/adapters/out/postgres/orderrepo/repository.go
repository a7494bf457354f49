package orderrepo

import (
	"context"
	"errors"

	"rentalhub/internal/core/domain/model/kernel"
	"rentalhub/internal/core/domain/model/order"
	"rentalhub/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a GORM-backed order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Get retrieves the joined snapshot: order row plus customer profile and
// items with their products.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Snapshot, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Items").
		Preload("Items.Product").
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toSnapshot(dto)
}

// UpdateFields applies a normalized patch as a column map so that absent
// fields stay untouched and an explicit partner clear writes NULL.
func (r *GormOrderRepository) UpdateFields(ctx context.Context, id kernel.UUID, patch order.Patch) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if patch.IsEmpty() {
		return errs.NewValueIsRequiredError("patch")
	}

	updates := map[string]any{
		"updated_at": patch.UpdatedAt,
	}
	if patch.Status != nil {
		updates["status"] = patch.Status.String()
	}
	if patch.PaymentStatus != nil {
		updates["payment_status"] = patch.PaymentStatus.String()
	}
	if patch.PaymentMethod != nil {
		updates["payment_method"] = *patch.PaymentMethod
	}
	if patch.DeliveryAddress != nil {
		updates["delivery_address"] = *patch.DeliveryAddress
	}
	if patch.ClearDeliveryPartner {
		updates["delivery_partner_id"] = nil
	}
	if patch.DeliveryPartnerID != nil {
		updates["delivery_partner_id"] = patch.DeliveryPartnerID.Bytes()
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", id.Bytes()).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id.String())
	}

	return nil
}

// InsertStatusHistory appends one audit row.
func (r *GormOrderRepository) InsertStatusHistory(ctx context.Context, record order.HistoryRecord) error {
	dto := fromHistoryRecord(record)
	return r.db.WithContext(ctx).Create(&dto).Error
}
