package commands_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/wallet"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPostLedgerEntryCommandHandler_Handle_PostsBonus(t *testing.T) {
	ctx := t.Context()
	now := time.Date(2026, 8, 30, 15, 0, 0, 0, time.UTC)
	walletID := kernel.NewUUID()

	// Wallet with one prior posting of 5.00.
	courierWallet, err := wallet.RestoreWallet(
		walletID,
		kernel.MustMoney("5.00"),
		kernel.MustMoney("5.00"),
		kernel.MustMoney("0.00"),
		kernel.MustMoney("0.00"),
		kernel.MustMoney("0.00"),
	)
	require.NoError(t, err)

	lastEntry := wallet.RestoreLedgerEntry(
		kernel.NewUUID(), walletID, wallet.KindDeliveryFee,
		kernel.MustMoney("5.00"), kernel.MustMoney("0.00"), kernel.MustMoney("5.00"),
		"ORD-20260829-AAAA", now.Add(-time.Hour),
	)

	cmd, err := commands.NewPostLedgerEntryCommand(
		walletID, wallet.KindBonus, kernel.MustMoney("2.50"), "weekend bonus",
	)
	require.NoError(t, err)

	walletRepo := new(MockWalletRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WalletRepository").Return(walletRepo).Once(),
		walletRepo.On("GetForUpdate", ctx, walletID).Return(courierWallet, nil).Once(),
		walletRepo.On("GetLastEntry", ctx, walletID).Return(&lastEntry, nil).Once(),
		walletRepo.On("AppendEntry", ctx, mock.AnythingOfType("wallet.LedgerEntry")).Return(nil).Once(),
		walletRepo.On("Update", ctx, courierWallet).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLedgerUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewPostLedgerEntryCommandHandler(factory, fixedClock(now))

	entry, err := handler.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, wallet.KindBonus, entry.Kind())
	assert.True(t, entry.BalanceBefore().IsEqual(kernel.MustMoney("5.00")))
	assert.True(t, entry.BalanceAfter().IsEqual(kernel.MustMoney("7.50")))
	assert.Equal(t, "weekend bonus", entry.Reference())
	assert.True(t, courierWallet.Balance().IsEqual(kernel.MustMoney("7.50")))
	assert.True(t, courierWallet.TotalBonuses().IsEqual(kernel.MustMoney("2.50")))

	walletRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestPostLedgerEntryCommandHandler_Handle_WithdrawalDebits(t *testing.T) {
	ctx := t.Context()
	now := time.Date(2026, 8, 30, 15, 0, 0, 0, time.UTC)
	walletID := kernel.NewUUID()

	courierWallet, err := wallet.RestoreWallet(
		walletID,
		kernel.MustMoney("12.00"),
		kernel.MustMoney("12.00"),
		kernel.MustMoney("0.00"),
		kernel.MustMoney("0.00"),
		kernel.MustMoney("0.00"),
	)
	require.NoError(t, err)

	lastEntry := wallet.RestoreLedgerEntry(
		kernel.NewUUID(), walletID, wallet.KindDeliveryFee,
		kernel.MustMoney("12.00"), kernel.MustMoney("0.00"), kernel.MustMoney("12.00"),
		"ORD-20260829-BBBB", now.Add(-time.Hour),
	)

	cmd, err := commands.NewPostLedgerEntryCommand(
		walletID, wallet.KindWithdrawal, kernel.MustMoney("10.00"), "payout 2026-08",
	)
	require.NoError(t, err)

	walletRepo := new(MockWalletRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WalletRepository").Return(walletRepo).Once(),
		walletRepo.On("GetForUpdate", ctx, walletID).Return(courierWallet, nil).Once(),
		walletRepo.On("GetLastEntry", ctx, walletID).Return(&lastEntry, nil).Once(),
		walletRepo.On("AppendEntry", ctx, mock.AnythingOfType("wallet.LedgerEntry")).Return(nil).Once(),
		walletRepo.On("Update", ctx, courierWallet).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLedgerUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewPostLedgerEntryCommandHandler(factory, fixedClock(now))

	entry, err := handler.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.True(t, entry.BalanceAfter().IsEqual(kernel.MustMoney("2.00")))
	assert.True(t, courierWallet.TotalWithdrawn().IsEqual(kernel.MustMoney("10.00")))
}

func TestPostLedgerEntryCommandHandler_Handle_InconsistentLedgerAborts(t *testing.T) {
	ctx := t.Context()
	now := time.Date(2026, 8, 30, 15, 0, 0, 0, time.UTC)
	walletID := kernel.NewUUID()

	courierWallet, err := wallet.RestoreWallet(
		walletID,
		kernel.MustMoney("9.99"),
		kernel.MustMoney("5.00"),
		kernel.MustMoney("0.00"),
		kernel.MustMoney("0.00"),
		kernel.MustMoney("0.00"),
	)
	require.NoError(t, err)

	lastEntry := wallet.RestoreLedgerEntry(
		kernel.NewUUID(), walletID, wallet.KindDeliveryFee,
		kernel.MustMoney("5.00"), kernel.MustMoney("0.00"), kernel.MustMoney("5.00"),
		"ORD-20260829-CCCC", now.Add(-time.Hour),
	)

	cmd, err := commands.NewPostLedgerEntryCommand(
		walletID, wallet.KindTip, kernel.MustMoney("1.00"), "tip",
	)
	require.NoError(t, err)

	walletRepo := new(MockWalletRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WalletRepository").Return(walletRepo).Once(),
		walletRepo.On("GetForUpdate", ctx, walletID).Return(courierWallet, nil).Once(),
		walletRepo.On("GetLastEntry", ctx, walletID).Return(&lastEntry, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLedgerUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewPostLedgerEntryCommandHandler(factory, fixedClock(now))

	_, err = handler.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrLedgerInconsistency)
	walletRepo.AssertNotCalled(t, "AppendEntry", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
}
