package cmd

import (
	"ticketon/internal/adapters/out/postgres"
	"ticketon/internal/core/application/services"

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

func (c *CompositionRoot) CreateCategoryService() services.CategoryService {
	var f services.CategoryUoWFactory = FuncCategoryUoWFactory(func() services.CategoryUoW {
		return c.uowFactory.Create()
	})
	return services.NewCategoryService(f)
}

func (c *CompositionRoot) CreateEventService() services.EventService {
	var f services.EventUoWFactory = FuncEventUoWFactory(func() services.EventUoW {
		return c.uowFactory.Create()
	})
	return services.NewEventService(f)
}

func (c *CompositionRoot) CreateLocationService() services.LocationService {
	var f services.LocationUoWFactory = FuncLocationUoWFactory(func() services.LocationUoW {
		return c.uowFactory.Create()
	})
	return services.NewLocationService(f)
}

func (c *CompositionRoot) CreateTicketService() services.TicketService {
	var f services.TicketUoWFactory = FuncTicketUoWFactory(func() services.TicketUoW {
		return c.uowFactory.Create()
	})
	return services.NewTicketService(f)
}

func (c *CompositionRoot) CreateUserService() services.UserService {
	var f services.UserUoWFactory = FuncUserUoWFactory(func() services.UserUoW {
		return c.uowFactory.Create()
	})
	return services.NewUserService(f)
}

func (c *CompositionRoot) CreateMaintenanceService() services.MaintenanceService {
	var f services.MaintenanceUoWFactory = FuncMaintenanceUoWFactory(func() services.MaintenanceUoW {
		return c.uowFactory.Create()
	})
	return services.NewMaintenanceService(f)
}

type FuncCategoryUoWFactory func() services.CategoryUoW

func (f FuncCategoryUoWFactory) Create() services.CategoryUoW {
	return f()
}

type FuncEventUoWFactory func() services.EventUoW

func (f FuncEventUoWFactory) Create() services.EventUoW {
	return f()
}

type FuncLocationUoWFactory func() services.LocationUoW

func (f FuncLocationUoWFactory) Create() services.LocationUoW {
	return f()
}

type FuncTicketUoWFactory func() services.TicketUoW

func (f FuncTicketUoWFactory) Create() services.TicketUoW {
	return f()
}

type FuncUserUoWFactory func() services.UserUoW

func (f FuncUserUoWFactory) Create() services.UserUoW {
	return f()
}

type FuncMaintenanceUoWFactory func() services.MaintenanceUoW

func (f FuncMaintenanceUoWFactory) Create() services.MaintenanceUoW {
	return f()
}
