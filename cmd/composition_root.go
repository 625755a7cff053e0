package cmd

import (
	"context"
	"io"
	"log/slog"

	httpadapter "workshop/internal/adapters/in/http"
	"workshop/internal/adapters/out/notification"
	"workshop/internal/adapters/out/postgres"
	"workshop/internal/adapters/out/postgres/clientrepo"
	"workshop/internal/core/application/notifier"
	"workshop/internal/core/application/usecases/commands"
	"workshop/internal/core/application/usecases/queries"
	"workshop/internal/core/domain/services"
	"workshop/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot owns the long-lived dependencies of the process and builds
// handlers on top of them. Every handler shares the same scheduler lock and
// notifier.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	logger     *slog.Logger
	uowFactory *postgres.GormUnitOfWorkFactory

	lock          *commands.SchedulerLock
	metrics       *notifier.MetricsListener
	notifications *notification.Service
	notifier      *notifier.Notifier
	closers       []io.Closer
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	if logger == nil {
		logger = slog.Default()
	}

	routes, err := notification.LoadRoutes(config.NotificationRoutesFile)
	if err != nil {
		return nil, err
	}

	c := &CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		logger:     logger,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		lock:       commands.NewSchedulerLock(),
		metrics:    notifier.NewMetricsListener(),
	}

	channels := []notification.Channel{notification.NewLogChannel(logger)}
	if amqpChannel := c.createAMQPChannel(); amqpChannel != nil {
		channels = append(channels, amqpChannel)
	}
	c.notifications = notification.NewService(routes, logger, channels...)

	c.notifier = notifier.NewNotifier(logger,
		notifier.NewLoggingListener(logger),
		c.metrics,
		notifier.NewNotificationListener(clientrepo.NewGormClientRepository(gormDB), c.notifications, logger),
	)
	return c, nil
}

// createAMQPChannel returns nil when no broker is configured or reachable;
// routes naming the amqp channel then report it as not configured.
func (c *CompositionRoot) createAMQPChannel() notification.Channel {
	if c.config.AMQPURL == "" {
		return nil
	}

	conn, err := notification.DialAMQP(c.config.AMQPURL, c.config.AMQPExchange)
	if err != nil {
		c.logger.Warn("AMQP notifications disabled", slog.Any("error", err))
		return nil
	}
	c.closers = append(c.closers, conn)

	ch, err := notification.NewAMQPChannel(conn, c.config.AMQPExchange)
	if err != nil {
		c.logger.Warn("AMQP notifications disabled", slog.Any("error", err))
		return nil
	}
	return ch
}

// Close releases broker connections.
func (c *CompositionRoot) Close() error {
	var first error
	for _, closer := range c.closers {
		if err := closer.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func (c *CompositionRoot) schedulingUoWFactory() commands.SchedulingUoWFactory {
	return FuncSchedulingUoWFactory(func() commands.SchedulingUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateAssignWorkerCommandHandler() commands.AssignWorkerCommandHandler {
	return commands.NewAssignWorkerCommandHandler(c.schedulingUoWFactory(), c.notifier, c.lock, c.logger)
}

func (c *CompositionRoot) CreateAssignPendingOrdersCommandHandler() commands.AssignPendingOrdersCommandHandler {
	return commands.NewAssignPendingOrdersCommandHandler(c.schedulingUoWFactory(), c.notifier, c.lock, c.logger)
}

func (c *CompositionRoot) CreateProcessOrderCommandHandler() commands.ProcessOrderCommandHandler {
	return commands.NewProcessOrderCommandHandler(c.schedulingUoWFactory(), c.notifier, c.lock, c.logger)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.schedulingUoWFactory(), c.notifier, c.lock, c.logger)
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	return commands.NewCompleteOrderCommandHandler(c.schedulingUoWFactory(), c.notifier, c.lock, c.logger)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderIntakeUoWFactory = FuncOrderIntakeUoWFactory(func() commands.OrderIntakeUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.notifications, c.CreateAssignWorkerCommandHandler(), c.logger)
}

func (c *CompositionRoot) CreateCreateWorkerCommandHandler() commands.CreateWorkerCommandHandler {
	var f commands.WorkerUoWFactory = FuncWorkerUoWFactory(func() commands.WorkerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateWorkerCommandHandler(f)
}

func (c *CompositionRoot) CreateSeedWorkshopCommandHandler() commands.SeedWorkshopCommandHandler {
	var f commands.SeedUoWFactory = FuncSeedUoWFactory(func() commands.SeedUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSeedWorkshopCommandHandler(f)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderStatusQueryHandler() queries.GetOrderStatusQueryHandler {
	return queries.NewGetOrderStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllWorkersQueryHandler() queries.GetAllWorkersQueryHandler {
	return queries.NewGetAllWorkersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetWorkerOrdersQueryHandler() queries.GetWorkerOrdersQueryHandler {
	return queries.NewGetWorkerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllClientsQueryHandler() queries.GetAllClientsQueryHandler {
	return queries.NewGetAllClientsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.Handlers{
		CreateOrder:     c.CreateCreateOrderCommandHandler(),
		AssignWorker:    c.CreateAssignWorkerCommandHandler(),
		ProcessOrder:    c.CreateProcessOrderCommandHandler(),
		CancelOrder:     c.CreateCancelOrderCommandHandler(),
		CompleteOrder:   c.CreateCompleteOrderCommandHandler(),
		CreateWorker:    c.CreateCreateWorkerCommandHandler(),
		GetAllOrders:    c.CreateGetAllOrdersQueryHandler(),
		GetOrderStatus:  c.CreateGetOrderStatusQueryHandler(),
		GetAllWorkers:   c.CreateGetAllWorkersQueryHandler(),
		GetWorkerOrders: c.CreateGetWorkerOrdersQueryHandler(),
		GetAllClients:   c.CreateGetAllClientsQueryHandler(),
		Pricing:         services.NewPricing(services.DefaultRates()),
		Stats:           c.metrics,
	}, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateAssignPendingOrdersCommandHandler(),
		c.metrics,
		jobs.Schedules{
			PendingOrders: c.config.PendingOrdersSchedule,
			Stats:         c.config.StatsSchedule,
		},
		c.logger,
	)
}

// Seed fills an empty workshop with the default workers and catalog.
func (c *CompositionRoot) Seed(ctx context.Context) (bool, error) {
	cmd := commands.NewSeedWorkshopCommand(commands.DefaultWorkerSeeds(), commands.DefaultProductSeeds())
	return c.CreateSeedWorkshopCommandHandler().Handle(ctx, cmd)
}

type FuncSchedulingUoWFactory func() commands.SchedulingUoW

func (f FuncSchedulingUoWFactory) Create() commands.SchedulingUoW {
	return f()
}

type FuncOrderIntakeUoWFactory func() commands.OrderIntakeUoW

func (f FuncOrderIntakeUoWFactory) Create() commands.OrderIntakeUoW {
	return f()
}

type FuncWorkerUoWFactory func() commands.WorkerUoW

func (f FuncWorkerUoWFactory) Create() commands.WorkerUoW {
	return f()
}

type FuncSeedUoWFactory func() commands.SeedUoW

func (f FuncSeedUoWFactory) Create() commands.SeedUoW {
	return f()
}
