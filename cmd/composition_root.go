package cmd

import (
	"log/slog"

	httpin "ayoya/internal/adapters/in/http"
	"ayoya/internal/adapters/out/postgres"
	"ayoya/internal/adapters/out/redis"
	"ayoya/internal/core/application/usecases/commands"
	"ayoya/internal/core/application/usecases/queries"
	"ayoya/internal/core/domain/model/order"
	"ayoya/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use case handlers. It is the only
// place that knows concrete implementations; everything else depends on
// interfaces.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	orderCache *redis.OrderCache
	pricing    order.Pricing
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, orderCache *redis.OrderCache) CompositionRoot {
	pricing := order.DefaultPricing()
	if config.BottlePrice > 0 {
		pricing.BottlePrice = config.BottlePrice
	}
	if config.CartonPrice > 0 {
		pricing.CartonPrice = config.CartonPrice
	}
	if config.DeliveryFee > 0 {
		pricing.DeliveryFee = config.DeliveryFee
	}
	if config.BottlesPerCarton > 0 {
		pricing.BottlesPerCarton = config.BottlesPerCarton
	}

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		orderCache: orderCache,
		pricing:    pricing,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.pricing)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStatusCommandHandler(f, c.orderCache)
}

func (c *CompositionRoot) CreateAssignCourierCommandHandler() commands.AssignCourierCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignCourierCommandHandler(f, c.orderCache)
}

func (c *CompositionRoot) CreateCreateCourierCommandHandler() commands.CreateCourierCommandHandler {
	var f commands.CourierUoWFactory = FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCourierCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateCourierCommandHandler() commands.UpdateCourierCommandHandler {
	var f commands.CourierUoWFactory = FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateCourierCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteCourierCommandHandler() commands.DeleteCourierCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteCourierCommandHandler(f)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB, c.orderCache)
}

func (c *CompositionRoot) CreateListCouriersQueryHandler() queries.ListCouriersQueryHandler {
	return queries.NewListCouriersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCourierQueryHandler() queries.GetCourierQueryHandler {
	return queries.NewGetCourierQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderStatsQueryHandler() queries.GetOrderStatsQueryHandler {
	return queries.NewGetOrderStatsQueryHandler(c.gormDB)
}

// CreateServer assembles the REST surface over all handlers.
func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateChangeOrderStatusCommandHandler(),
		c.CreateAssignCourierCommandHandler(),
		c.CreateCreateCourierCommandHandler(),
		c.CreateUpdateCourierCommandHandler(),
		c.CreateDeleteCourierCommandHandler(),
		c.CreateListOrdersQueryHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateListCouriersQueryHandler(),
		c.CreateGetCourierQueryHandler(),
		c.CreateGetOrderStatsQueryHandler(),
	)
}

// CreateJobManager assembles the scheduled background jobs.
func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateListOrdersQueryHandler(),
		c.CreateGetOrderStatsQueryHandler(),
		c.config.StaleAfter,
		logger,
	)
}

type FuncCourierUoWFactory func() commands.CourierUoW

func (f FuncCourierUoWFactory) Create() commands.CourierUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
