package cmd

import (
	"errors"
	"fmt"
	"log/slog"

	apihttp "ordering/internal/adapters/in/http"
	"ordering/internal/adapters/out/memory"
	"ordering/internal/adapters/out/notifier"
	"ordering/internal/adapters/out/postgres"
	"ordering/internal/adapters/out/postgres/orderrepo"
	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/ports"
	"ordering/internal/jobs"
	"ordering/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/gorm"
)

// CompositionRoot wires adapters, handlers, jobs and the HTTP router for one process.
type CompositionRoot struct {
	config     Config
	logger     *slog.Logger
	uowFactory ports.UnitOfWorkFactory
	orders     ports.OrderRepository
	notifier   ports.OrderNotifier
	registry   *prometheus.Registry
	metrics    *metrics.Metrics
	closers    []func() error
}

// NewCompositionRoot selects the storage and notifier named by config. gormDB is
// required for StoragePostgres and ignored for StorageMemory.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	c := &CompositionRoot{
		config:   config,
		logger:   logger,
		registry: registry,
		metrics:  metrics.New(registry),
	}

	switch config.Storage {
	case StorageMemory:
		store := memory.NewStore()
		c.uowFactory = memory.NewUnitOfWorkFactory(store)
		c.orders = memory.NewOrderRepository(store)
	case StoragePostgres:
		if gormDB == nil {
			return nil, errors.New("postgres storage requires a database connection")
		}
		c.uowFactory = postgres.NewGormUnitOfWorkFactory(gormDB)
		c.orders = orderrepo.NewGormOrderRepository(gormDB)
	default:
		return nil, fmt.Errorf("unsupported storage %q", config.Storage)
	}

	base, err := c.newNotifier()
	if err != nil {
		return nil, err
	}
	c.notifier = notifier.NewInstrumentedNotifier(base, c.metrics.Notifications)

	logger.Info("composition root ready", "storage", config.Storage, "notifier", config.Notifier)
	return c, nil
}

func (c *CompositionRoot) newNotifier() (ports.OrderNotifier, error) {
	switch c.config.Notifier {
	case NotifierKafka:
		n := notifier.NewKafkaNotifier(notifier.NewKafkaWriter(c.config.KafkaBrokers, c.config.KafkaOrderEventsTopic))
		c.closers = append(c.closers, n.Close)
		return n, nil
	case NotifierRabbitMQ:
		conn, err := notifier.DialRabbitMQ(c.config.RabbitMQURL, c.config.RabbitMQExchange)
		if err != nil {
			return nil, err
		}
		c.closers = append(c.closers, conn.Close)
		return notifier.NewRabbitMQNotifier(conn.Channel(), c.config.RabbitMQExchange), nil
	case NotifierLog:
		return notifier.NewLogNotifier(c.logger), nil
	default:
		return nil, fmt.Errorf("unsupported notifier %q", c.config.Notifier)
	}
}

// Close releases the notifier connections.
func (c *CompositionRoot) Close() error {
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		errs = append(errs, c.closers[i]())
	}
	c.closers = nil
	return errors.Join(errs...)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.orderUoWFactory(), c.notifier, c.logger)
}

func (c *CompositionRoot) CreateAddOrderItemCommandHandler() commands.AddOrderItemCommandHandler {
	return commands.NewAddOrderItemCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRemoveOrderItemCommandHandler() commands.RemoveOrderItemCommandHandler {
	return commands.NewRemoveOrderItemCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAttachPaymentCommandHandler() commands.AttachPaymentCommandHandler {
	return commands.NewAttachPaymentCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateExpireAwaitingPaymentCommandHandler() commands.ExpireAwaitingPaymentCommandHandler {
	updater := c.CreateUpdateOrderStatusCommandHandler()
	return commands.NewExpireAwaitingPaymentCommandHandler(c.orders, &updater, c.logger)
}

func (c *CompositionRoot) CreateGetOrderByIDQueryHandler() queries.GetOrderByIDQueryHandler {
	return queries.NewGetOrderByIDQueryHandler(c.orders)
}

func (c *CompositionRoot) CreateGetOrderStatusQueryHandler() queries.GetOrderStatusQueryHandler {
	return queries.NewGetOrderStatusQueryHandler(c.orders)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.orders, c.logger)
}

func (c *CompositionRoot) CreateCustomerHasOrdersQueryHandler() queries.CustomerHasOrdersQueryHandler {
	return queries.NewCustomerHasOrdersQueryHandler(c.orders)
}

// CreateRouter builds the echo instance with every API route registered.
func (c *CompositionRoot) CreateRouter() (*echo.Echo, error) {
	server := apihttp.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateUpdateOrderStatusCommandHandler(),
		c.CreateAddOrderItemCommandHandler(),
		c.CreateRemoveOrderItemCommandHandler(),
		c.CreateAttachPaymentCommandHandler(),
		c.CreateGetOrderByIDQueryHandler(),
		c.CreateGetOrderStatusQueryHandler(),
		c.CreateListOrdersQueryHandler(),
		c.CreateCustomerHasOrdersQueryHandler(),
	)
	return apihttp.NewRouter(server, c.metrics, c.registry, c.logger)
}

// CreateJobManager returns the manager of all background jobs, not yet started.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	handler := c.CreateExpireAwaitingPaymentCommandHandler()
	expiry := jobs.NewPaymentExpiryJob(
		&handler,
		c.config.PaymentExpiryTTL,
		c.config.PaymentExpirySchedule,
		c.metrics.ExpiredOrders,
		c.logger,
	)
	return jobs.NewJobManager(expiry)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
