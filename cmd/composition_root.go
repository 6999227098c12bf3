package cmd

import (
	"log/slog"
	"time"

	httpin "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters to use case handlers. Every handler asks for
// a narrow unit of work factory; the Func* adapters below bridge those to the
// single GORM factory.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	notifier   ports.NotificationSink
	logger     *slog.Logger
	clock      commands.Clock
}

func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	notifier ports.NotificationSink,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		notifier:   notifier,
		logger:     logger,
		clock:      time.Now,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.kitchenUoWFactory(), c.notifier, c.clock)
}

func (c *CompositionRoot) CreateConfirmPaymentCommandHandler() commands.ConfirmPaymentCommandHandler {
	return commands.NewConfirmPaymentCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateConfirmOrderCommandHandler() commands.ConfirmOrderCommandHandler {
	return commands.NewConfirmOrderCommandHandler(c.orderUoWFactory(), c.notifier, c.clock)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.kitchenUoWFactory(), c.notifier, c.clock)
}

func (c *CompositionRoot) CreateStartPreparationCommandHandler() commands.StartPreparationCommandHandler {
	return commands.NewStartPreparationCommandHandler(c.kitchenUoWFactory(), c.notifier, c.clock)
}

func (c *CompositionRoot) CreateMarkReadyCommandHandler() commands.MarkReadyCommandHandler {
	return commands.NewMarkReadyCommandHandler(c.kitchenUoWFactory(), c.notifier, c.clock)
}

func (c *CompositionRoot) CreateMarkPickedUpCommandHandler() commands.MarkPickedUpCommandHandler {
	return commands.NewMarkPickedUpCommandHandler(c.ticketUoWFactory())
}

func (c *CompositionRoot) CreateUpdatePriorityCommandHandler() commands.UpdatePriorityCommandHandler {
	return commands.NewUpdatePriorityCommandHandler(c.ticketUoWFactory())
}

func (c *CompositionRoot) CreateAcceptOrderCommandHandler() commands.AcceptOrderCommandHandler {
	return commands.NewAcceptOrderCommandHandler(c.orderUoWFactory(), c.notifier, c.clock)
}

func (c *CompositionRoot) CreateDeclineOrderCommandHandler() commands.DeclineOrderCommandHandler {
	return commands.NewDeclineOrderCommandHandler(c.orderUoWFactory(), c.notifier, c.clock)
}

func (c *CompositionRoot) CreateAssignCourierCommandHandler() commands.AssignCourierCommandHandler {
	return commands.NewAssignCourierCommandHandler(c.orderUoWFactory(), c.notifier, c.clock)
}

func (c *CompositionRoot) CreateStartDeliveryCommandHandler() commands.StartDeliveryCommandHandler {
	return commands.NewStartDeliveryCommandHandler(c.orderUoWFactory(), c.notifier, c.clock)
}

func (c *CompositionRoot) CreateCompleteDeliveryCommandHandler() commands.CompleteDeliveryCommandHandler {
	return commands.NewCompleteDeliveryCommandHandler(c.deliveryUoWFactory(), c.notifier, c.clock)
}

func (c *CompositionRoot) CreatePostLedgerEntryCommandHandler() commands.PostLedgerEntryCommandHandler {
	return commands.NewPostLedgerEntryCommandHandler(c.ledgerUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateRejectStaleOrdersCommandHandler() commands.RejectStaleOrdersCommandHandler {
	return commands.NewRejectStaleOrdersCommandHandler(
		c.kitchenUoWFactory(), c.notifier, c.clock, c.config.AcceptTimeout, c.logger)
}

func (c *CompositionRoot) CreateCancelUnpaidOrdersCommandHandler() commands.CancelUnpaidOrdersCommandHandler {
	return commands.NewCancelUnpaidOrdersCommandHandler(
		c.kitchenUoWFactory(), c.notifier, c.clock, c.config.PaymentTimeout, c.logger)
}

func (c *CompositionRoot) CreateGetAvailableOrdersQueryHandler() queries.GetAvailableOrdersQueryHandler {
	return queries.NewGetAvailableOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetWalletHistoryQueryHandler() queries.GetWalletHistoryQueryHandler {
	return queries.NewGetWalletHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetWalletTotalsQueryHandler() queries.GetWalletTotalsQueryHandler {
	return queries.NewGetWalletTotalsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderMetricsQueryHandler() queries.GetOrderMetricsQueryHandler {
	return queries.NewGetOrderMetricsQueryHandler(c.gormDB)
}

// CreateHTTPServer assembles the REST adapter over the full handler set.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		CreateOrder:      c.CreateCreateOrderCommandHandler(),
		ConfirmPayment:   c.CreateConfirmPaymentCommandHandler(),
		ConfirmOrder:     c.CreateConfirmOrderCommandHandler(),
		CancelOrder:      c.CreateCancelOrderCommandHandler(),
		StartPreparation: c.CreateStartPreparationCommandHandler(),
		MarkReady:        c.CreateMarkReadyCommandHandler(),
		MarkPickedUp:     c.CreateMarkPickedUpCommandHandler(),
		UpdatePriority:   c.CreateUpdatePriorityCommandHandler(),
		AcceptOrder:      c.CreateAcceptOrderCommandHandler(),
		DeclineOrder:     c.CreateDeclineOrderCommandHandler(),
		AssignCourier:    c.CreateAssignCourierCommandHandler(),
		StartDelivery:    c.CreateStartDeliveryCommandHandler(),
		CompleteDelivery: c.CreateCompleteDeliveryCommandHandler(),
		PostLedgerEntry:  c.CreatePostLedgerEntryCommandHandler(),

		GetAvailableOrders: c.CreateGetAvailableOrdersQueryHandler(),
		GetWalletHistory:   c.CreateGetWalletHistoryQueryHandler(),
		GetWalletTotals:    c.CreateGetWalletTotalsQueryHandler(),
	})
}

// CreateJobManager assembles the scheduled enforcement and maintenance jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateRejectStaleOrdersCommandHandler(),
		c.CreateCancelUnpaidOrdersCommandHandler(),
		c.CreateGetOrderMetricsQueryHandler(),
		c.gormDB,
		c.config.CleanupRetention,
		c.logger,
	)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) kitchenUoWFactory() commands.KitchenUoWFactory {
	return FuncKitchenUoWFactory(func() commands.KitchenUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) ticketUoWFactory() commands.TicketUoWFactory {
	return FuncTicketUoWFactory(func() commands.TicketUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) ledgerUoWFactory() commands.LedgerUoWFactory {
	return FuncLedgerUoWFactory(func() commands.LedgerUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) deliveryUoWFactory() commands.DeliveryUoWFactory {
	return FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncKitchenUoWFactory func() commands.KitchenUoW

func (f FuncKitchenUoWFactory) Create() commands.KitchenUoW {
	return f()
}

type FuncTicketUoWFactory func() commands.TicketUoW

func (f FuncTicketUoWFactory) Create() commands.TicketUoW {
	return f()
}

type FuncLedgerUoWFactory func() commands.LedgerUoW

func (f FuncLedgerUoWFactory) Create() commands.LedgerUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}
