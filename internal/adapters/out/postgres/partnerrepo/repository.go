// Package partnerrepo persists delivery partners. Only the read side is
// consumed by the order flow; partner CRUD happens in its own dashboard.
package partnerrepo

import (
	"context"
	"errors"

	"rentalhub/internal/core/domain/model/kernel"
	"rentalhub/internal/core/domain/model/partner"
	"rentalhub/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DeliveryPartnerDTO maps the delivery_partners table.
type DeliveryPartnerDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name  string
	Email string
	Phone string
}

func (DeliveryPartnerDTO) TableName() string {
	return "delivery_partners"
}

// GormDeliveryPartnerRepository implements ports.DeliveryPartnerRepository.
type GormDeliveryPartnerRepository struct {
	db *gorm.DB
}

// NewGormDeliveryPartnerRepository creates a GORM-backed partner repository.
func NewGormDeliveryPartnerRepository(db *gorm.DB) *GormDeliveryPartnerRepository {
	return &GormDeliveryPartnerRepository{db: db}
}

// Get returns the partner's contact record by id.
func (r *GormDeliveryPartnerRepository) Get(ctx context.Context, id kernel.UUID) (*partner.DeliveryPartner, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryPartnerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery_partner", id.String())
		}
		return nil, err
	}

	partnerID, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return &partner.DeliveryPartner{
		ID:    partnerID,
		Name:  dto.Name,
		Email: dto.Email,
		Phone: dto.Phone,
	}, nil
}
