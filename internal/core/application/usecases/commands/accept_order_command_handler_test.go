package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAcceptOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	testOrder := makeOrderInStatus(t, order.Ready, now)
	courierID := kernel.NewUUID()

	cmd, err := commands.NewAcceptOrderCommand(testOrder.ID(), courierID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("BindCourier", ctx, testOrder.ID(), courierID, now).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := &RecordingNotifier{}
	handler := commands.NewAcceptOrderCommandHandler(factory, notifier, fixedClock(now))

	require.NoError(t, handler.Handle(ctx, cmd))

	assert.Equal(t, []string{"CourierAccepted"}, notifier.Calls)
	assert.True(t, testOrder.Delivery().IsBoundTo(courierID))
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAcceptOrderCommandHandler_Handle_AlreadyClaimed(t *testing.T) {
	ctx := t.Context()
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	testOrder := makeOrderInStatus(t, order.Ready, now)
	firstCourier := kernel.NewUUID()
	require.NoError(t, testOrder.BindCourier(firstCourier, now))

	secondCourier := kernel.NewUUID()
	cmd, err := commands.NewAcceptOrderCommand(testOrder.ID(), secondCourier)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := &RecordingNotifier{}
	handler := commands.NewAcceptOrderCommandHandler(factory, notifier, fixedClock(now))

	err = handler.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrAlreadyAssigned)
	assert.Empty(t, notifier.Calls)
	assert.True(t, testOrder.Delivery().IsBoundTo(firstCourier))
}

func TestAcceptOrderCommandHandler_Handle_NotReady(t *testing.T) {
	ctx := t.Context()
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	testOrder := makeOrderInStatus(t, order.Preparing, now)
	cmd, err := commands.NewAcceptOrderCommand(testOrder.ID(), kernel.NewUUID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAcceptOrderCommandHandler(factory, NopNotifier{}, fixedClock(now))

	err = handler.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInvalidState)
}

// claimRaceRepo is an in-memory order store whose BindCourier reproduces the
// storage-level conditional update: first claim wins, later claims fail.
type claimRaceRepo struct {
	mu      sync.Mutex
	orders  map[string]*order.Order
	claimed map[string]kernel.UUID
}

func newClaimRaceRepo() *claimRaceRepo {
	return &claimRaceRepo{
		orders:  make(map[string]*order.Order),
		claimed: make(map[string]kernel.UUID),
	}
}

func (r *claimRaceRepo) Add(_ context.Context, o *order.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[o.ID().String()] = o
	return nil
}

func (r *claimRaceRepo) Update(_ context.Context, _ *order.Order) error { return nil }

func (r *claimRaceRepo) UpdateInStatus(_ context.Context, _ *order.Order, _ order.Status) (bool, error) {
	return true, nil
}

func (r *claimRaceRepo) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.orders[id.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("orderID", id.String())
	}

	// Each caller gets its own snapshot, like a fresh read from storage.
	return order.RestoreOrder(
		stored.ID(), stored.Number(), stored.RestaurantID(), stored.Status(),
		stored.Charges(), stored.Delivery(), stored.History(),
		stored.ScheduledAt(), stored.CreatedAt(), stored.PlacedAt(),
	)
}

func (r *claimRaceRepo) BindCourier(_ context.Context, orderID, courierID kernel.UUID, _ time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if winner, taken := r.claimed[orderID.String()]; taken {
		return errs.NewAlreadyAssignedError(orderID.String(), winner.String())
	}
	r.claimed[orderID.String()] = courierID
	return nil
}

func (r *claimRaceRepo) GetReadyUnassigned(_ context.Context, _ *kernel.UUID) ([]*order.Order, error) {
	return nil, nil
}

func (r *claimRaceRepo) GetStaleInStatus(_ context.Context, _ order.Status, _ time.Time) ([]*order.Order, error) {
	return nil, nil
}

type claimRaceUoW struct{ repo *claimRaceRepo }

func (u claimRaceUoW) Begin(context.Context) error            { return nil }
func (u claimRaceUoW) Commit(context.Context) error           { return nil }
func (u claimRaceUoW) Rollback(context.Context) error         { return nil }
func (u claimRaceUoW) OrderRepository() ports.OrderRepository { return u.repo }

type claimRaceUoWFactory struct{ repo *claimRaceRepo }

func (f claimRaceUoWFactory) Create() commands.OrderUoW { return claimRaceUoW{repo: f.repo} }

func TestAcceptOrderCommandHandler_Handle_ClaimRace(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	repo := newClaimRaceRepo()
	testOrder := makeOrderInStatus(t, order.Ready, now)
	require.NoError(t, repo.Add(ctx, testOrder))

	handler := commands.NewAcceptOrderCommandHandler(
		claimRaceUoWFactory{repo: repo}, NopNotifier{}, fixedClock(now),
	)

	courierA := kernel.NewUUID()
	courierB := kernel.NewUUID()

	results := make(chan error, 2)
	var start sync.WaitGroup
	start.Add(1)

	for _, courierID := range []kernel.UUID{courierA, courierB} {
		go func() {
			cmd, err := commands.NewAcceptOrderCommand(testOrder.ID(), courierID)
			if err != nil {
				results <- err
				return
			}
			start.Wait()
			results <- handler.Handle(ctx, cmd)
		}()
	}
	start.Done()

	errA, errB := <-results, <-results

	wins := 0
	for _, err := range []error{errA, errB} {
		if err == nil {
			wins++
		} else {
			require.ErrorIs(t, err, errs.ErrAlreadyAssigned)
		}
	}
	assert.Equal(t, 1, wins, "exactly one concurrent claim must win")

	repo.mu.Lock()
	winner, bound := repo.claimed[testOrder.ID().String()]
	repo.mu.Unlock()
	require.True(t, bound)
	assert.True(t, winner.IsEqual(courierA) || winner.IsEqual(courierB))
}
