package commands_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		orderID := kernel.NewUUID()
		restaurantID := kernel.NewUUID()
		scheduledAt := time.Date(2026, 8, 30, 19, 0, 0, 0, time.UTC)

		cmd, err := commands.NewCreateOrderCommand(orderID, restaurantID, testCharges(t), &scheduledAt, true)
		require.NoError(t, err)
		require.NoError(t, cmd.Validate())

		assert.True(t, cmd.OrderID().IsEqual(orderID))
		assert.True(t, cmd.RestaurantID().IsEqual(restaurantID))
		assert.Equal(t, &scheduledAt, cmd.ScheduledAt())
		assert.True(t, cmd.AwaitPayment())
	})

	t.Run("empty order id", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(kernel.UUID{}, kernel.NewUUID(), testCharges(t), nil, false)
		require.Error(t, err)
	})

	t.Run("empty restaurant id", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.UUID{}, testCharges(t), nil, false)
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.CreateOrderCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}
