package commands_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kitchen"
	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelUnpaidOrdersCommandHandler_Handle_CancelsUnpaidOrder(t *testing.T) {
	ctx := t.Context()
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	threshold := 15 * time.Minute

	unpaid := makeOrderInStatus(t, order.Pending, now.Add(-16*time.Minute))
	ticket := makeTicketFor(t, unpaid.ID())

	selectRepo := new(MockOrderRepository)
	selectUoW := new(MockUoW)
	mock.InOrder(
		selectUoW.On("Begin", ctx).Return(nil).Once(),
		selectUoW.On("OrderRepository").Return(selectRepo).Once(),
		selectRepo.On("GetStaleInStatus", ctx, order.Pending, now.Add(-threshold)).
			Return([]*order.Order{unpaid}, nil).Once(),
		selectUoW.On("Commit", ctx).Return(nil).Once(),
		selectUoW.On("Rollback", ctx).Return(nil).Once(),
	)

	itemRepo := new(MockOrderRepository)
	itemTicketRepo := new(MockTicketRepository)
	itemUoW := new(MockUoW)
	mock.InOrder(
		itemUoW.On("Begin", ctx).Return(nil).Once(),
		itemUoW.On("OrderRepository").Return(itemRepo).Once(),
		itemRepo.On("Get", ctx, unpaid.ID()).Return(unpaid, nil).Once(),
		itemUoW.On("OrderRepository").Return(itemRepo).Once(),
		itemRepo.On("UpdateInStatus", ctx, unpaid, order.Pending).Return(true, nil).Once(),
		itemUoW.On("TicketRepository").Return(itemTicketRepo).Once(),
		itemTicketRepo.On("GetByOrder", ctx, unpaid.ID()).Return(ticket, nil).Once(),
		itemUoW.On("TicketRepository").Return(itemTicketRepo).Once(),
		itemTicketRepo.On("Update", ctx, ticket).Return(nil).Once(),
		itemUoW.On("Commit", ctx).Return(nil).Once(),
		itemUoW.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockKitchenUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(selectUoW).Once(),
		factory.On("Create").Return(itemUoW).Once(),
	)

	notifier := &RecordingNotifier{}
	handler := commands.NewCancelUnpaidOrdersCommandHandler(
		factory, notifier, fixedClock(now), threshold, discardLogger(),
	)

	require.NoError(t, handler.Handle(ctx, commands.NewCancelUnpaidOrdersCommand()))

	assert.Equal(t, order.Cancelled, unpaid.Status())
	assert.Equal(t, kitchen.TicketCancelled, ticket.Status())

	history := unpaid.History()
	last := history[len(history)-1]
	assert.Equal(t, order.ActorSystem, last.Actor())
	assert.Equal(t, order.ReasonPaymentTimeout, last.Note())

	assert.Equal(t, []string{"OrderCancelled"}, notifier.Calls)
}

func TestCancelUnpaidOrdersCommandHandler_Handle_NoCandidates(t *testing.T) {
	ctx := t.Context()
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	selectRepo := new(MockOrderRepository)
	selectUoW := new(MockUoW)
	mock.InOrder(
		selectUoW.On("Begin", ctx).Return(nil).Once(),
		selectUoW.On("OrderRepository").Return(selectRepo).Once(),
		selectRepo.On("GetStaleInStatus", ctx, order.Pending, mock.AnythingOfType("time.Time")).
			Return([]*order.Order{}, nil).Once(),
		selectUoW.On("Commit", ctx).Return(nil).Once(),
		selectUoW.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockKitchenUoWFactory)
	factory.On("Create").Return(selectUoW).Once()

	notifier := &RecordingNotifier{}
	handler := commands.NewCancelUnpaidOrdersCommandHandler(
		factory, notifier, fixedClock(now), 15*time.Minute, discardLogger(),
	)

	require.NoError(t, handler.Handle(ctx, commands.NewCancelUnpaidOrdersCommand()))
	assert.Empty(t, notifier.Calls)
	factory.AssertNumberOfCalls(t, "Create", 1)
}
