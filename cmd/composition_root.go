package cmd

import (
	"log/slog"
	"os"

	"trading/internal/adapters/in/http"
	"trading/internal/adapters/in/ws"
	"trading/internal/adapters/out/postgres"
	"trading/internal/core/application/usecases/commands"
	"trading/internal/core/application/usecases/queries"
	"trading/internal/jobs"
	"trading/internal/pkg/pubsub"

	"gorm.io/gorm"
)

// CompositionRoot wires the application graph: one broadcaster and one
// execution scheduler shared by every handler, plus per-operation units of
// work created through the factory.
type CompositionRoot struct {
	gormDB      *gorm.DB
	uowFactory  postgres.GormUnitOfWorkFactory
	broadcaster *pubsub.Broadcaster
	scheduler   *jobs.ExecutionScheduler
	logger      *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB) CompositionRoot {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	root := CompositionRoot{
		gormDB:      gormDB,
		uowFactory:  *postgres.NewGormUnitOfWorkFactory(gormDB),
		broadcaster: pubsub.NewBroadcaster(logger),
		logger:      logger,
	}

	root.scheduler = jobs.NewExecutionScheduler(
		root.CreateExecuteOrderCommandHandler(),
		configs.ExecutionDelayMin,
		configs.ExecutionDelayMax,
		logger,
	)

	return root
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

func (c *CompositionRoot) Broadcaster() *pubsub.Broadcaster {
	return c.broadcaster
}

func (c *CompositionRoot) Scheduler() *jobs.ExecutionScheduler {
	return c.scheduler
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.broadcaster, c.scheduler)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory(), c.broadcaster)
}

func (c *CompositionRoot) CreateExecuteOrderCommandHandler() commands.ExecuteOrderCommandHandler {
	return commands.NewExecuteOrderCommandHandler(c.orderUoWFactory(), c.broadcaster)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	return http.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateCancelOrderCommandHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateGetAllOrdersQueryHandler(),
	)
}

func (c *CompositionRoot) CreateWSServer() *ws.Server {
	return ws.NewServer(c.broadcaster, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.orderUoWFactory(), c.scheduler, c.logger)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
