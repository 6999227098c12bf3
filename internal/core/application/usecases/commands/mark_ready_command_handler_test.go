package commands_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kitchen"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMarkReadyCommandHandler_Handle_RecordsActualMinutes(t *testing.T) {
	ctx := t.Context()
	startedAt := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	readyAt := startedAt.Add(10 * time.Minute)

	testOrder := makeOrderInStatus(t, order.Preparing, startedAt)
	ticket := makeTicketFor(t, testOrder.ID())
	require.NoError(t, ticket.Start("chef-mario", startedAt))

	cmd, err := commands.NewMarkReadyCommand(testOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	ticketRepo := new(MockTicketRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("TicketRepository").Return(ticketRepo).Once(),
		ticketRepo.On("GetByOrder", ctx, testOrder.ID()).Return(ticket, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Update", ctx, testOrder).Return(nil).Once(),
		uow.On("TicketRepository").Return(ticketRepo).Once(),
		ticketRepo.On("Update", ctx, ticket).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockKitchenUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := &RecordingNotifier{}
	handler := commands.NewMarkReadyCommandHandler(factory, notifier, fixedClock(readyAt))

	require.NoError(t, handler.Handle(ctx, cmd))

	assert.Equal(t, order.Ready, testOrder.Status())
	assert.Equal(t, kitchen.TicketReady, ticket.Status())
	require.NotNil(t, ticket.ActualMinutes())
	assert.Equal(t, 10, *ticket.ActualMinutes())

	history := testOrder.History()
	last := history[len(history)-1]
	assert.Equal(t, "chef-mario", last.Actor())

	assert.Equal(t, []string{"OrderReady"}, notifier.Calls)
}

func TestMarkReadyCommandHandler_Handle_TicketNotPreparing(t *testing.T) {
	ctx := t.Context()
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	testOrder := makeOrderInStatus(t, order.Preparing, now)
	ticket := makeTicketFor(t, testOrder.ID()) // still pending

	cmd, err := commands.NewMarkReadyCommand(testOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	ticketRepo := new(MockTicketRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("TicketRepository").Return(ticketRepo).Once(),
		ticketRepo.On("GetByOrder", ctx, testOrder.ID()).Return(ticket, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockKitchenUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewMarkReadyCommandHandler(factory, NopNotifier{}, fixedClock(now))

	err = handler.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInvalidState)
	assert.Equal(t, order.Preparing, testOrder.Status())
}
