package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/wallet"
	"fulfillment/internal/pkg/guard"
)

var ErrGetWalletHistoryQueryIsNotConstructed = errors.New(
	"GetWalletHistoryQuery must be created via NewGetWalletHistoryQuery constructor",
)

// GetWalletHistoryQuery retrieves the full ledger of one wallet.
type GetWalletHistoryQuery struct {
	walletID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetWalletHistoryQuery creates a query for a wallet's ledger.
func NewGetWalletHistoryQuery(walletID kernel.UUID) (GetWalletHistoryQuery, error) {
	if err := walletID.Validate(); err != nil {
		return GetWalletHistoryQuery{}, err
	}

	return GetWalletHistoryQuery{
		walletID: walletID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetWalletHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetWalletHistoryQueryIsNotConstructed)
}

// WalletID returns the wallet whose ledger is requested.
func (q GetWalletHistoryQuery) WalletID() kernel.UUID {
	return q.walletID
}

// GetWalletHistoryQueryResponse is one ledger entry in the history listing.
type GetWalletHistoryQueryResponse struct {
	ID            kernel.UUID
	Kind          wallet.TransactionKind
	Amount        kernel.Money
	BalanceBefore kernel.Money
	BalanceAfter  kernel.Money
	Reference     string
	CreatedAt     time.Time
}
