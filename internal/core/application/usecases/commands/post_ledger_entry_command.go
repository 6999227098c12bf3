package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/wallet"
	"fulfillment/internal/pkg/guard"
)

var ErrPostLedgerEntryCommandIsNotConstructed = errors.New(
	"PostLedgerEntryCommand must be created via NewPostLedgerEntryCommand constructor",
)

// PostLedgerEntryCommand applies one monetary movement to a courier wallet:
// bonuses, tips, fines, withdrawals, refunds, compensations or adjustments.
// Delivery fees are posted by delivery completion, not through this command.
type PostLedgerEntryCommand struct { //nolint:recvcheck //using for validation
	walletID  kernel.UUID
	kind      wallet.TransactionKind
	amount    kernel.Money
	reference string

	guard guard.ConstructorGuard
}

// NewPostLedgerEntryCommand validates and builds a ledger posting command.
func NewPostLedgerEntryCommand(
	walletID kernel.UUID,
	kind wallet.TransactionKind,
	amount kernel.Money,
	reference string,
) (PostLedgerEntryCommand, error) {
	if err := errors.Join(walletID.Validate(), kind.Validate()); err != nil {
		return PostLedgerEntryCommand{}, err
	}

	return PostLedgerEntryCommand{
		walletID:  walletID,
		kind:      kind,
		amount:    amount,
		reference: reference,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c PostLedgerEntryCommand) Validate() error {
	return c.guard.Validate(ErrPostLedgerEntryCommandIsNotConstructed)
}

// WalletID returns the wallet receiving the posting.
func (c PostLedgerEntryCommand) WalletID() kernel.UUID {
	return c.walletID
}

// Kind returns the transaction kind.
func (c PostLedgerEntryCommand) Kind() wallet.TransactionKind {
	return c.kind
}

// Amount returns the posted amount. Positive for all kinds except
// ADJUSTMENT, which carries its own sign.
func (c PostLedgerEntryCommand) Amount() kernel.Money {
	return c.amount
}

// Reference returns the free-form reference recorded on the entry.
func (c PostLedgerEntryCommand) Reference() string {
	return c.reference
}
