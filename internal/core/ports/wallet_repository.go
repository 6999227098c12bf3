package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/wallet"
)

// WalletRepository defines the persistence contract for wallets and their
// append-only ledgers. Entry writes and the wallet balance update for one
// posting must run inside the same unit of work.
type WalletRepository interface {
	// Add persists a new empty wallet.
	Add(ctx context.Context, aggregate *wallet.Wallet) error

	// Update persists the wallet's balance and running totals.
	Update(ctx context.Context, aggregate *wallet.Wallet) error

	// GetForUpdate retrieves a wallet and locks its row for the remainder of
	// the transaction, serializing concurrent postings on the same wallet.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*wallet.Wallet, error)

	// GetLastEntry retrieves the most recent ledger entry for the wallet,
	// or nil when the ledger is empty.
	GetLastEntry(ctx context.Context, walletID kernel.UUID) (*wallet.LedgerEntry, error)

	// AppendEntry persists an immutable ledger entry.
	AppendEntry(ctx context.Context, entry wallet.LedgerEntry) error

	// GetEntries retrieves the full ledger for a wallet, newest first.
	GetEntries(ctx context.Context, walletID kernel.UUID) ([]wallet.LedgerEntry, error)
}
