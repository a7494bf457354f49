// Package vendorrepo implements the vendor cleanup repository. All Delete*
// methods are expected to run on a transactional *gorm.DB handed out by the
// unit of work; the package itself does not open transactions.
package vendorrepo

import (
	"context"

	"rentalhub/internal/core/domain/model/kernel"
	"rentalhub/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormVendorRepository implements ports.VendorRepository.
type GormVendorRepository struct {
	db *gorm.DB
}

// NewGormVendorRepository creates a GORM-backed vendor repository bound to
// the given handle, typically an open transaction.
func NewGormVendorRepository(db *gorm.DB) *GormVendorRepository {
	return &GormVendorRepository{db: db}
}

// DeleteOrderItems removes order items that reference any of the vendor's
// products. Must run before DeleteProducts.
func (r *GormVendorRepository) DeleteOrderItems(ctx context.Context, vendorID kernel.UUID) error {
	return r.db.WithContext(ctx).Exec(
		"DELETE FROM order_items WHERE product_id IN (SELECT id FROM products WHERE vendor_id = ?)",
		vendorID.Bytes(),
	).Error
}

func (r *GormVendorRepository) DeleteEarnings(ctx context.Context, vendorID kernel.UUID) error {
	return r.db.WithContext(ctx).
		Where("vendor_id = ?", vendorID.Bytes()).
		Delete(&EarningDTO{}).Error
}

func (r *GormVendorRepository) DeleteCoupons(ctx context.Context, vendorID kernel.UUID) error {
	return r.db.WithContext(ctx).
		Where("vendor_id = ?", vendorID.Bytes()).
		Delete(&CouponDTO{}).Error
}

func (r *GormVendorRepository) DeleteProducts(ctx context.Context, vendorID kernel.UUID) error {
	return r.db.WithContext(ctx).Exec(
		"DELETE FROM products WHERE vendor_id = ?",
		vendorID.Bytes(),
	).Error
}

// Delete removes the vendor row, reporting ObjectNotFound when no row
// matched so callers can roll the surrounding transaction back.
func (r *GormVendorRepository) Delete(ctx context.Context, vendorID kernel.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", vendorID.Bytes()).
		Delete(&VendorDTO{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("vendor", vendorID.String())
	}
	return nil
}
