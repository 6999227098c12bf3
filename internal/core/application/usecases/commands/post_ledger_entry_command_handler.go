package commands

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/wallet"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// PostLedgerEntryCommandHandler posts one movement to a wallet ledger. The
// wallet row is locked for the transaction, the ledger invariant is verified
// against the last entry before the posting, and the entry plus the updated
// balance commit together.
type PostLedgerEntryCommandHandler struct {
	uowFactory LedgerUoWFactory
	clock      Clock
}

// NewPostLedgerEntryCommandHandler creates a handler for ledger postings.
func NewPostLedgerEntryCommandHandler(uowFactory LedgerUoWFactory, clock Clock) PostLedgerEntryCommandHandler {
	return PostLedgerEntryCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle posts the movement and returns the resulting immutable entry.
func (h PostLedgerEntryCommandHandler) Handle(
	ctx context.Context,
	cmd PostLedgerEntryCommand,
) (wallet.LedgerEntry, error) {
	if err := cmd.Validate(); err != nil {
		return wallet.LedgerEntry{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return wallet.LedgerEntry{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	entry, err := creditWallet(
		ctx, uow.WalletRepository(),
		cmd.WalletID(), cmd.Kind(), cmd.Amount(), cmd.Reference(),
		h.clock(),
	)
	if err != nil {
		return wallet.LedgerEntry{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return wallet.LedgerEntry{}, err
	}

	return entry, nil
}

// creditWallet runs the shared posting sequence inside the caller's
// transaction: lock the wallet (creating it lazily on first posting), verify
// the ledger invariant, post, then persist the entry and the wallet.
func creditWallet(
	ctx context.Context,
	repo ports.WalletRepository,
	walletID kernel.UUID,
	kind wallet.TransactionKind,
	amount kernel.Money,
	reference string,
	now time.Time,
) (wallet.LedgerEntry, error) {
	w, err := repo.GetForUpdate(ctx, walletID)
	if err != nil {
		if !errors.Is(err, errs.ErrObjectNotFound) {
			return wallet.LedgerEntry{}, err
		}
		if w, err = wallet.NewWallet(walletID); err != nil {
			return wallet.LedgerEntry{}, err
		}
		if err = repo.Add(ctx, w); err != nil {
			return wallet.LedgerEntry{}, err
		}
	}

	lastEntry, err := repo.GetLastEntry(ctx, walletID)
	if err != nil {
		return wallet.LedgerEntry{}, err
	}
	if err = w.VerifyAgainst(lastEntry); err != nil {
		return wallet.LedgerEntry{}, err
	}

	entry, err := w.Post(kind, amount, reference, now)
	if err != nil {
		return wallet.LedgerEntry{}, err
	}

	if err = repo.AppendEntry(ctx, entry); err != nil {
		return wallet.LedgerEntry{}, err
	}
	if err = repo.Update(ctx, w); err != nil {
		return wallet.LedgerEntry{}, err
	}

	return entry, nil
}
