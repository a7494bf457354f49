package commands

import "context"

// DeleteVendorCommandHandler removes a vendor and its dependent rows inside
// one transaction. The delete order respects the foreign keys: order items of
// the vendor's products first, then earnings, coupons, products, and finally
// the vendor row itself.
type DeleteVendorCommandHandler struct {
	uowFactory VendorUoWFactory
}

// NewDeleteVendorCommandHandler creates a handler for vendor deletion.
func NewDeleteVendorCommandHandler(uowFactory VendorUoWFactory) DeleteVendorCommandHandler {
	return DeleteVendorCommandHandler{uowFactory: uowFactory}
}

// Handle runs the cascade. Any step failing rolls back the whole deletion.
func (h DeleteVendorCommandHandler) Handle(ctx context.Context, cmd DeleteVendorCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	vendorRepo := uow.VendorRepository()
	vendorID := cmd.VendorID()

	if err := vendorRepo.DeleteOrderItems(ctx, vendorID); err != nil {
		return err
	}
	if err := vendorRepo.DeleteEarnings(ctx, vendorID); err != nil {
		return err
	}
	if err := vendorRepo.DeleteCoupons(ctx, vendorID); err != nil {
		return err
	}
	if err := vendorRepo.DeleteProducts(ctx, vendorID); err != nil {
		return err
	}
	if err := vendorRepo.Delete(ctx, vendorID); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
