package cmd

import (
	"procurement/internal/adapters/out/postgres"
	"procurement/internal/adapters/out/postgres/catalogrepo"
	"procurement/internal/adapters/out/postgres/lineitemrepo"
	"procurement/internal/adapters/out/postgres/orderrepo"
	"procurement/internal/adapters/out/postgres/productrepo"
	"procurement/internal/adapters/out/postgres/supplierrepo"
	"procurement/internal/adapters/out/postgres/userrepo"
	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/application/usecases/queries"
	"procurement/internal/core/application/views"
	"procurement/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory

	orders    ports.OrderRepository
	lineItems ports.LineItemRepository
	suppliers ports.SupplierRepository
	products  ports.ProductRepository
	catalog   ports.CatalogRepository
	users     ports.UserRepository
	assembler views.Assembler
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	suppliers := supplierrepo.NewGormSupplierRepository(gormDB)
	products := productrepo.NewGormProductRepository(gormDB)
	users := userrepo.NewGormUserRepository(gormDB)
	lineItems := lineitemrepo.NewGormLineItemRepository(gormDB)

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		orders:     orderrepo.NewGormOrderRepository(gormDB, noopAggregateTracker{}),
		lineItems:  lineItems,
		suppliers:  suppliers,
		products:   products,
		catalog:    catalogrepo.NewGormCatalogRepository(gormDB),
		users:      users,
		assembler:  views.NewAssembler(suppliers, products, users, lineItems),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.suppliers, c.users, c.products, c.catalog, c.assembler)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderCommandHandler(f, c.suppliers, c.products, c.catalog, c.assembler)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.orders, c.assembler)
}

func (c *CompositionRoot) CreateGetOrdersBySupplierQueryHandler() queries.GetOrdersBySupplierQueryHandler {
	return queries.NewGetOrdersBySupplierQueryHandler(c.orders, c.suppliers, c.assembler)
}

func (c *CompositionRoot) CreateGetOrdersByStatusQueryHandler() queries.GetOrdersByStatusQueryHandler {
	return queries.NewGetOrdersByStatusQueryHandler(c.orders, c.assembler)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.orders, c.assembler)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

// noopAggregateTracker backs the repositories used outside a unit of work,
// where modified aggregates are never collected.
type noopAggregateTracker struct{}

func (noopAggregateTracker) TrackAggregate(_ int64, _ any) {}
