package commands_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/kitchen"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/wallet"
	"fulfillment/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Shared testify mocks for the command handler tests. Every handler talks to
// the same narrow set of collaborators, so the mocks live in one place.

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateInStatus(
	ctx context.Context,
	o *order.Order,
	expectedStatus order.Status,
) (bool, error) {
	args := m.Called(ctx, o, expectedStatus)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) BindCourier(
	ctx context.Context,
	orderID, courierID kernel.UUID,
	pickupAt time.Time,
) error {
	args := m.Called(ctx, orderID, courierID, pickupAt)
	return args.Error(0)
}

func (m *MockOrderRepository) GetReadyUnassigned(
	ctx context.Context,
	restaurantID *kernel.UUID,
) ([]*order.Order, error) {
	args := m.Called(ctx, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetStaleInStatus(
	ctx context.Context,
	status order.Status,
	olderThan time.Time,
) ([]*order.Order, error) {
	args := m.Called(ctx, status, olderThan)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockTicketRepository struct{ mock.Mock }

func (m *MockTicketRepository) Add(ctx context.Context, t *kitchen.Ticket) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTicketRepository) Update(ctx context.Context, t *kitchen.Ticket) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTicketRepository) Get(ctx context.Context, id kernel.UUID) (*kitchen.Ticket, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*kitchen.Ticket), args.Error(1)
}

func (m *MockTicketRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) (*kitchen.Ticket, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*kitchen.Ticket), args.Error(1)
}

type MockWalletRepository struct{ mock.Mock }

func (m *MockWalletRepository) Add(ctx context.Context, w *wallet.Wallet) error {
	args := m.Called(ctx, w)
	return args.Error(0)
}

func (m *MockWalletRepository) Update(ctx context.Context, w *wallet.Wallet) error {
	args := m.Called(ctx, w)
	return args.Error(0)
}

func (m *MockWalletRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*wallet.Wallet, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*wallet.Wallet), args.Error(1)
}

func (m *MockWalletRepository) GetLastEntry(ctx context.Context, walletID kernel.UUID) (*wallet.LedgerEntry, error) {
	args := m.Called(ctx, walletID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*wallet.LedgerEntry), args.Error(1)
}

func (m *MockWalletRepository) AppendEntry(ctx context.Context, entry wallet.LedgerEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockWalletRepository) GetEntries(ctx context.Context, walletID kernel.UUID) ([]wallet.LedgerEntry, error) {
	args := m.Called(ctx, walletID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]wallet.LedgerEntry), args.Error(1)
}

// MockUoW satisfies every narrow unit-of-work interface the handlers ask for.

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) TicketRepository() ports.TicketRepository {
	args := m.Called()
	return args.Get(0).(ports.TicketRepository)
}

func (m *MockUoW) WalletRepository() ports.WalletRepository {
	args := m.Called()
	return args.Get(0).(ports.WalletRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockKitchenUoWFactory struct{ mock.Mock }

func (m *MockKitchenUoWFactory) Create() commands.KitchenUoW {
	args := m.Called()
	return args.Get(0).(commands.KitchenUoW)
}

type MockTicketUoWFactory struct{ mock.Mock }

func (m *MockTicketUoWFactory) Create() commands.TicketUoW {
	args := m.Called()
	return args.Get(0).(commands.TicketUoW)
}

type MockLedgerUoWFactory struct{ mock.Mock }

func (m *MockLedgerUoWFactory) Create() commands.LedgerUoW {
	args := m.Called()
	return args.Get(0).(commands.LedgerUoW)
}

type MockDeliveryUoWFactory struct{ mock.Mock }

func (m *MockDeliveryUoWFactory) Create() commands.DeliveryUoW {
	args := m.Called()
	return args.Get(0).(commands.DeliveryUoW)
}

// NopNotifier records nothing; used where the test does not assert on
// notifications.
type NopNotifier struct{}

func (NopNotifier) NotifyNewOrder(context.Context, *order.Order)        {}
func (NopNotifier) NotifyOrderAccepted(context.Context, *order.Order)   {}
func (NopNotifier) NotifyOrderPreparing(context.Context, *order.Order)  {}
func (NopNotifier) NotifyOrderReady(context.Context, *order.Order)      {}
func (NopNotifier) NotifyCourierAssigned(context.Context, *order.Order) {}
func (NopNotifier) NotifyOrderOnDelivery(context.Context, *order.Order) {}
func (NopNotifier) NotifyOrderDelivered(context.Context, *order.Order)  {}
func (NopNotifier) NotifyOrderCancelled(context.Context, *order.Order)  {}
func (NopNotifier) NotifyOrderRejected(context.Context, *order.Order)   {}
func (NopNotifier) NotifyCourierAccepted(context.Context, *order.Order) {}
func (NopNotifier) NotifyCourierDeclined(context.Context, *order.Order, string, string) {
}

// RecordingNotifier counts notification calls by name.
type RecordingNotifier struct {
	Calls []string
}

func (r *RecordingNotifier) record(name string) {
	r.Calls = append(r.Calls, name)
}

func (r *RecordingNotifier) NotifyNewOrder(context.Context, *order.Order)        { r.record("NewOrder") }
func (r *RecordingNotifier) NotifyOrderAccepted(context.Context, *order.Order)   { r.record("OrderAccepted") }
func (r *RecordingNotifier) NotifyOrderPreparing(context.Context, *order.Order)  { r.record("OrderPreparing") }
func (r *RecordingNotifier) NotifyOrderReady(context.Context, *order.Order)      { r.record("OrderReady") }
func (r *RecordingNotifier) NotifyCourierAssigned(context.Context, *order.Order) { r.record("CourierAssigned") }
func (r *RecordingNotifier) NotifyOrderOnDelivery(context.Context, *order.Order) { r.record("OrderOnDelivery") }
func (r *RecordingNotifier) NotifyOrderDelivered(context.Context, *order.Order)  { r.record("OrderDelivered") }
func (r *RecordingNotifier) NotifyOrderCancelled(context.Context, *order.Order)  { r.record("OrderCancelled") }
func (r *RecordingNotifier) NotifyOrderRejected(context.Context, *order.Order)   { r.record("OrderRejected") }
func (r *RecordingNotifier) NotifyCourierAccepted(context.Context, *order.Order) { r.record("CourierAccepted") }
func (r *RecordingNotifier) NotifyCourierDeclined(context.Context, *order.Order, string, string) {
	r.record("CourierDeclined")
}

// Fixture helpers.

func fixedClock(at time.Time) commands.Clock {
	return func() time.Time { return at }
}

func testCharges(t *testing.T) order.Charges {
	t.Helper()
	charges, err := order.NewCharges(
		kernel.MustMoney("20.00"),
		kernel.MustMoney("5.00"),
		kernel.MustMoney("2.00"),
		kernel.MustMoney("0.00"),
	)
	require.NoError(t, err)
	return charges
}

// makeOrderInStatus builds an order walked through legal transitions up to
// the wanted status.
func makeOrderInStatus(t *testing.T, status order.Status, at time.Time) *order.Order {
	t.Helper()

	o, err := order.NewOrder(kernel.NewUUID(), "ORD-20260830-TEST", kernel.NewUUID(), testCharges(t), nil, at)
	require.NoError(t, err)

	steps := []func() error{
		func() error { return o.Place(at) },
		func() error { return o.Accept("operator", at) },
		func() error { return o.StartPreparing("chef", at) },
		func() error { return o.MarkReady("chef", at) },
	}
	targets := []order.Status{order.Placed, order.Accepted, order.Preparing, order.Ready}

	for i, step := range steps {
		if o.Status() == status {
			return o
		}
		require.NoError(t, step())
		require.Equal(t, targets[i], o.Status())
	}
	require.Equal(t, status, o.Status())
	return o
}
