package wallet

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrWalletIsNotConstructed is returned when a Wallet instance was not
	// created through NewWallet or RestoreWallet.
	ErrWalletIsNotConstructed = errors.New("Wallet must be created via NewWallet constructor")

	// ErrAmountMustBePositive is returned when Post receives a non-positive
	// amount for a kind other than ADJUSTMENT.
	ErrAmountMustBePositive = errors.New("amount must be positive")
)

// Wallet holds a courier's running balance and totals. The invariant is that
// balance always equals the balanceAfter of the most recent ledger entry;
// Post computes both in one step so they can never be written independently.
type Wallet struct {
	id             kernel.UUID
	balance        kernel.Money
	totalEarned    kernel.Money
	totalWithdrawn kernel.Money
	totalBonuses   kernel.Money
	totalFines     kernel.Money

	isConstructed bool
}

// NewWallet opens an empty wallet for a courier. The wallet shares the
// courier's identifier.
func NewWallet(id kernel.UUID) (*Wallet, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return &Wallet{
		id:             id,
		balance:        kernel.ZeroMoney(),
		totalEarned:    kernel.ZeroMoney(),
		totalWithdrawn: kernel.ZeroMoney(),
		totalBonuses:   kernel.ZeroMoney(),
		totalFines:     kernel.ZeroMoney(),
		isConstructed:  true,
	}, nil
}

// RestoreWallet reconstructs a wallet from persistence.
func RestoreWallet(id kernel.UUID, balance, totalEarned, totalWithdrawn, totalBonuses, totalFines kernel.Money) (*Wallet, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return &Wallet{
		id:             id,
		balance:        balance,
		totalEarned:    totalEarned,
		totalWithdrawn: totalWithdrawn,
		totalBonuses:   totalBonuses,
		totalFines:     totalFines,
		isConstructed:  true,
	}, nil
}

// Validate ensures the Wallet was created through a constructor.
func (w *Wallet) Validate() error {
	if w == nil || !w.isConstructed {
		return ErrWalletIsNotConstructed
	}
	return nil
}

// ID returns the wallet's (and courier's) identifier.
func (w *Wallet) ID() kernel.UUID {
	return w.id
}

// Balance returns the current running balance.
func (w *Wallet) Balance() kernel.Money {
	return w.balance
}

// TotalEarned returns the lifetime sum of delivery fees, tips, refunds and
// compensations credited to the wallet.
func (w *Wallet) TotalEarned() kernel.Money {
	return w.totalEarned
}

// TotalWithdrawn returns the lifetime sum of withdrawals.
func (w *Wallet) TotalWithdrawn() kernel.Money {
	return w.totalWithdrawn
}

// TotalBonuses returns the lifetime sum of bonuses.
func (w *Wallet) TotalBonuses() kernel.Money {
	return w.totalBonuses
}

// TotalFines returns the lifetime sum of fines.
func (w *Wallet) TotalFines() kernel.Money {
	return w.totalFines
}

// VerifyAgainst checks the ledger invariant before posting: the stored
// balance must equal the balanceAfter of the most recent entry (or zero for
// a wallet with no entries). A mismatch indicates prior corruption and
// returns LedgerInconsistency; the caller must abort, never repair.
func (w *Wallet) VerifyAgainst(lastEntry *LedgerEntry) error {
	expected := kernel.ZeroMoney()
	if lastEntry != nil {
		expected = lastEntry.BalanceAfter()
	}

	if !w.balance.IsEqual(expected) {
		return errs.NewLedgerInconsistencyError(w.id.String(), w.balance.String(), expected.String())
	}
	return nil
}

// Post applies one monetary movement: it reads the current balance as
// balanceBefore, computes balanceAfter = balanceBefore + signed(amount, kind),
// updates the balance and running totals, and returns the immutable entry.
// The caller persists the entry and the wallet in the same unit of work.
//
// Amounts must be positive for every kind except ADJUSTMENT, which carries
// its own sign.
func (w *Wallet) Post(kind TransactionKind, amount kernel.Money, reference string, now time.Time) (LedgerEntry, error) {
	if err := kind.Validate(); err != nil {
		return LedgerEntry{}, err
	}
	if kind != KindAdjustment && !amount.IsPositive() {
		return LedgerEntry{}, errs.NewValueIsInvalidErrorWithCause("amount", ErrAmountMustBePositive)
	}

	signed := kind.Signed(amount)
	entry := LedgerEntry{
		id:            kernel.NewUUID(),
		walletID:      w.id,
		kind:          kind,
		amount:        amount,
		balanceBefore: w.balance,
		balanceAfter:  w.balance.Add(signed),
		reference:     reference,
		createdAt:     now,
	}

	w.balance = entry.balanceAfter
	w.applyTotals(kind, amount)

	return entry, nil
}

func (w *Wallet) applyTotals(kind TransactionKind, amount kernel.Money) {
	switch kind {
	case KindDeliveryFee, KindTip, KindRefund, KindCompensation:
		w.totalEarned = w.totalEarned.Add(amount)
	case KindBonus:
		w.totalEarned = w.totalEarned.Add(amount)
		w.totalBonuses = w.totalBonuses.Add(amount)
	case KindWithdrawal:
		w.totalWithdrawn = w.totalWithdrawn.Add(amount)
	case KindFine:
		w.totalFines = w.totalFines.Add(amount)
	case KindAdjustment, KindUnknown:
		// adjustments correct the balance without restating history totals
	}
}
