package errs_test

import (
	"errors"
	"testing"

	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "ORD-123")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "ORD-123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: ORD-123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("walletId", "w-1", cause)

		assert.Equal(t, "walletId", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: walletId, ID is: w-1 (cause: database connection failed)",
			err.Error())
	})
}

func TestInvalidTransitionError(t *testing.T) {
	t.Run("names both states and the allowed set", func(t *testing.T) {
		err := errs.NewInvalidTransitionError("READY", "PREPARING", []string{"PICKED_UP", "COMPLETED"})

		assert.Equal(t, "READY", err.From)
		assert.Equal(t, "PREPARING", err.To)
		assert.Equal(t,
			"invalid transition: READY -> PREPARING (allowed from READY: [PICKED_UP, COMPLETED])",
			err.Error())
		assert.Equal(t, errs.ErrInvalidTransition, err.Unwrap())
	})

	t.Run("terminal state has empty allowed set", func(t *testing.T) {
		err := errs.NewInvalidTransitionError("COMPLETED", "READY", nil)

		assert.Equal(t,
			"invalid transition: COMPLETED -> READY (allowed from COMPLETED: [])",
			err.Error())
	})
}

func TestAlreadyAssignedError(t *testing.T) {
	err := errs.NewAlreadyAssignedError("order-1", "courier-2")

	assert.Equal(t, "order-1", err.OrderID)
	assert.Equal(t, "courier-2", err.CourierID)
	assert.Equal(t,
		"order already assigned: order order-1 cannot be claimed by courier courier-2",
		err.Error())
	assert.Equal(t, errs.ErrAlreadyAssigned, err.Unwrap())
}

func TestInvalidStateError(t *testing.T) {
	err := errs.NewInvalidStateError("ticket", "PREPARING", "preparation already started")

	assert.Equal(t,
		"invalid state: ticket is PREPARING, preparation already started",
		err.Error())
	assert.Equal(t, errs.ErrInvalidState, err.Unwrap())
}

func TestLedgerInconsistencyError(t *testing.T) {
	err := errs.NewLedgerInconsistencyError("wallet-1", "100.50", "90.50")

	assert.Equal(t,
		"ledger inconsistency: wallet wallet-1 balance is 100.50 but last entry balance is 90.50",
		err.Error())
	assert.Equal(t, errs.ErrLedgerInconsistency, err.Unwrap())
}

func TestValueErrors(t *testing.T) {
	t.Run("required", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("courierId")
		assert.Equal(t, "value is required: courierId", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("invalid with cause", func(t *testing.T) {
		cause := errors.New("negative amount")
		err := errs.NewValueIsInvalidErrorWithCause("amount", cause)
		assert.Equal(t, "value is invalid: amount (cause: negative amount)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("sanitizes newlines", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("multi\nline")
		assert.NotContains(t, err.Error(), "\n")
		assert.Contains(t, err.Error(), "multi line")
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		require.ErrorIs(t, errs.NewObjectNotFoundError("orderId", "1"), errs.ErrObjectNotFound)
		require.ErrorIs(t, errs.NewInvalidTransitionError("A", "B", nil), errs.ErrInvalidTransition)
		require.ErrorIs(t, errs.NewAlreadyAssignedError("o", "c"), errs.ErrAlreadyAssigned)
		require.ErrorIs(t, errs.NewInvalidStateError("ticket", "READY", "x"), errs.ErrInvalidState)
		require.ErrorIs(t, errs.NewLedgerInconsistencyError("w", "1", "2"), errs.ErrLedgerInconsistency)
		require.ErrorIs(t, errs.NewValueIsRequiredError("v"), errs.ErrValueIsRequired)
		require.ErrorIs(t, errs.NewValueIsInvalidError("v"), errs.ErrValueIsInvalid)
	})
}
