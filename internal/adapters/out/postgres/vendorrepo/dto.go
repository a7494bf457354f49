package vendorrepo

import (
	"time"

	"github.com/google/uuid"
)

// VendorDTO maps the vendors table.
type VendorDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string
	Email     string `gorm:"uniqueIndex"`
	CreatedAt time.Time
}

func (VendorDTO) TableName() string {
	return "vendors"
}

// CouponDTO maps vendor-scoped discount coupons.
type CouponDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	VendorID uuid.UUID `gorm:"type:uuid;index"`
	Code     string
	Discount float64
}

func (CouponDTO) TableName() string {
	return "coupons"
}

// EarningDTO maps per-order vendor earnings.
type EarningDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	VendorID  uuid.UUID `gorm:"type:uuid;index"`
	OrderID   uuid.UUID `gorm:"type:uuid"`
	Amount    float64
	CreatedAt time.Time
}

func (EarningDTO) TableName() string {
	return "earnings"
}
