package cmd

import (
	"printflow/internal/adapters/out/postgres"
	"printflow/internal/core/application/usecases/commands"
	"printflow/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateEditOrderCommandHandler() commands.EditOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewEditOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAdvanceOrderCommandHandler() commands.AdvanceOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateUndoOrderCommandHandler() commands.UndoOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUndoOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateRemoveCatalogEntryCommandHandler() commands.RemoveCatalogEntryCommandHandler {
	var f commands.CatalogUoWFactory = FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveCatalogEntryCommandHandler(f)
}

func (c *CompositionRoot) CreateSyncCatalogCommandHandler() commands.SyncCatalogCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewSyncCatalogCommandHandler(f)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderStatsQueryHandler() queries.GetOrderStatsQueryHandler {
	return queries.NewGetOrderStatsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCatalogQueryHandler() queries.GetCatalogQueryHandler {
	return queries.NewGetCatalogQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateComposeChallanQueryHandler() queries.ComposeChallanQueryHandler {
	return queries.NewComposeChallanQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
