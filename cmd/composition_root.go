package cmd

import (
	"rentalhub/internal/adapters/out/postgres"
	"rentalhub/internal/adapters/out/postgres/orderrepo"
	"rentalhub/internal/adapters/out/postgres/partnerrepo"
	"rentalhub/internal/core/application/usecases/commands"
	"rentalhub/internal/core/application/usecases/queries"
	"rentalhub/internal/core/ports"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CompositionRoot wires the adapters to the application handlers. All
// dependency construction happens here; the rest of the code receives its
// collaborators through constructors.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	notifier   ports.Notifier
	logger     *zap.Logger
}

func NewCompositionRoot(gormDB *gorm.DB, notifier ports.Notifier, logger *zap.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		notifier:   notifier,
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(
		orderrepo.NewGormOrderRepository(c.gormDB),
		partnerrepo.NewGormDeliveryPartnerRepository(c.gormDB),
		c.notifier,
		c.logger,
	)
}

func (c *CompositionRoot) CreateDeleteVendorCommandHandler() commands.DeleteVendorCommandHandler {
	var f commands.VendorUoWFactory = FuncVendorUoWFactory(func() commands.VendorUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteVendorCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(orderrepo.NewGormOrderRepository(c.gormDB))
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOverdueRentalsQueryHandler() queries.GetOverdueRentalsQueryHandler {
	return queries.NewGetOverdueRentalsQueryHandler(c.gormDB)
}

type FuncVendorUoWFactory func() commands.VendorUoW

func (f FuncVendorUoWFactory) Create() commands.VendorUoW {
	return f()
}
