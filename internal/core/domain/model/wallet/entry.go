package wallet

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
)

// LedgerEntry is one immutable monetary movement on a wallet. Once written it
// is never mutated or deleted; the pair (balanceBefore, balanceAfter) makes
// the running balance mechanically verifiable entry by entry.
type LedgerEntry struct {
	id            kernel.UUID
	walletID      kernel.UUID
	kind          TransactionKind
	amount        kernel.Money
	balanceBefore kernel.Money
	balanceAfter  kernel.Money
	reference     string
	createdAt     time.Time
}

// RestoreLedgerEntry reconstructs an entry from persistence.
func RestoreLedgerEntry(
	id kernel.UUID,
	walletID kernel.UUID,
	kind TransactionKind,
	amount kernel.Money,
	balanceBefore kernel.Money,
	balanceAfter kernel.Money,
	reference string,
	createdAt time.Time,
) LedgerEntry {
	return LedgerEntry{
		id:            id,
		walletID:      walletID,
		kind:          kind,
		amount:        amount,
		balanceBefore: balanceBefore,
		balanceAfter:  balanceAfter,
		reference:     reference,
		createdAt:     createdAt,
	}
}

// ID returns the entry's unique identifier.
func (e LedgerEntry) ID() kernel.UUID {
	return e.id
}

// WalletID returns the wallet the entry belongs to.
func (e LedgerEntry) WalletID() kernel.UUID {
	return e.walletID
}

// Kind returns the transaction classification.
func (e LedgerEntry) Kind() TransactionKind {
	return e.kind
}

// Amount returns the unsigned amount as supplied to Post.
func (e LedgerEntry) Amount() kernel.Money {
	return e.amount
}

// BalanceBefore returns the wallet balance read at posting time.
func (e LedgerEntry) BalanceBefore() kernel.Money {
	return e.balanceBefore
}

// BalanceAfter returns balanceBefore + signed(amount, kind).
func (e LedgerEntry) BalanceAfter() kernel.Money {
	return e.balanceAfter
}

// Reference returns the free-form reference (order number, period id).
func (e LedgerEntry) Reference() string {
	return e.reference
}

// CreatedAt returns when the entry was posted.
func (e LedgerEntry) CreatedAt() time.Time {
	return e.createdAt
}
