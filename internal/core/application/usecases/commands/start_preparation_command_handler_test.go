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

func TestStartPreparationCommandHandler_Handle_MovesOrderAndTicketTogether(t *testing.T) {
	ctx := t.Context()
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	testOrder := makeOrderInStatus(t, order.Accepted, now)
	ticket := makeTicketFor(t, testOrder.ID())

	cmd, err := commands.NewStartPreparationCommand(testOrder.ID(), "chef-mario")
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
	handler := commands.NewStartPreparationCommandHandler(factory, notifier, fixedClock(now))

	require.NoError(t, handler.Handle(ctx, cmd))

	assert.Equal(t, order.Preparing, testOrder.Status())
	assert.Equal(t, kitchen.TicketPreparing, ticket.Status())
	assert.Equal(t, "chef-mario", ticket.PreparerName())
	require.NotNil(t, ticket.StartedAt())
	assert.Equal(t, now, *ticket.StartedAt())
	assert.Equal(t, []string{"OrderPreparing"}, notifier.Calls)
}

func TestStartPreparationCommandHandler_Handle_OrderNotAccepted(t *testing.T) {
	ctx := t.Context()
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	testOrder := makeOrderInStatus(t, order.Placed, now)
	ticket := makeTicketFor(t, testOrder.ID())

	cmd, err := commands.NewStartPreparationCommand(testOrder.ID(), "chef-mario")
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

	handler := commands.NewStartPreparationCommandHandler(factory, NopNotifier{}, fixedClock(now))

	err = handler.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Equal(t, order.Placed, testOrder.Status())
	assert.Equal(t, kitchen.TicketPending, ticket.Status())
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestStartPreparationCommand_RequiresPreparer(t *testing.T) {
	testOrder := makeOrderInStatus(t, order.Accepted, time.Now())

	_, err := commands.NewStartPreparationCommand(testOrder.ID(), "")
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
