package cmd

import (
	"log/slog"
	"time"

	httpadapter "fooddelivery/internal/adapters/in/http"
	"fooddelivery/internal/adapters/out/postgres"
	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	publisher  ports.NotificationPublisher
	mirror     ports.StatusMirror
	logger     *slog.Logger
}

func NewCompositionRoot(
	configs Config,
	gormDB *gorm.DB,
	publisher ports.NotificationPublisher,
	mirror ports.StatusMirror,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:  publisher,
		mirror:     mirror,
		logger:     logger,
	}
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.PlaceOrderUoWFactory = FuncPlaceOrderUoWFactory(func() commands.PlaceOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f, services.NewPricingEngine(time.Now), time.Now)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.StatusUoWFactory = FuncStatusUoWFactory(func() commands.StatusUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStatusCommandHandler(f, services.NewStatusEngine(), time.Now)
}

func (c *CompositionRoot) CreateAssignDriverCommandHandler() commands.AssignDriverCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignDriverCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateCouponCommandHandler() commands.CreateCouponCommandHandler {
	var f commands.CouponUoWFactory = FuncCouponUoWFactory(func() commands.CouponUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCouponCommandHandler(f)
}

func (c *CompositionRoot) CreateRelayOrderEventsCommandHandler() commands.RelayOrderEventsCommandHandler {
	var f commands.OutboxUoWFactory = FuncOutboxUoWFactory(func() commands.OutboxUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRelayOrderEventsCommandHandler(f, c.publisher, c.mirror, time.Now)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRestaurantOrdersQueryHandler() queries.GetRestaurantOrdersQueryHandler {
	return queries.NewGetRestaurantOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateServer() *httpadapter.Server {
	return httpadapter.NewServer(
		c.CreatePlaceOrderCommandHandler(),
		c.CreateChangeOrderStatusCommandHandler(),
		c.CreateAssignDriverCommandHandler(),
		c.CreateCreateCouponCommandHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateGetRestaurantOrdersQueryHandler(),
		c.logger,
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateRelayOrderEventsCommandHandler(), c.configs.OutboxBatchSize, c.logger)
}

type FuncPlaceOrderUoWFactory func() commands.PlaceOrderUoW

func (f FuncPlaceOrderUoWFactory) Create() commands.PlaceOrderUoW {
	return f()
}

type FuncStatusUoWFactory func() commands.StatusUoW

func (f FuncStatusUoWFactory) Create() commands.StatusUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCouponUoWFactory func() commands.CouponUoW

func (f FuncCouponUoWFactory) Create() commands.CouponUoW {
	return f()
}

type FuncOutboxUoWFactory func() commands.OutboxUoW

func (f FuncOutboxUoWFactory) Create() commands.OutboxUoW {
	return f()
}
