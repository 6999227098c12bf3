package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetWalletTotalsQueryIsNotConstructed = errors.New(
	"GetWalletTotalsQuery must be created via NewGetWalletTotalsQuery constructor",
)

// GetWalletTotalsQuery retrieves a wallet's balance and lifetime totals.
type GetWalletTotalsQuery struct {
	walletID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetWalletTotalsQuery creates a query for wallet totals.
func NewGetWalletTotalsQuery(walletID kernel.UUID) (GetWalletTotalsQuery, error) {
	if err := walletID.Validate(); err != nil {
		return GetWalletTotalsQuery{}, err
	}

	return GetWalletTotalsQuery{
		walletID: walletID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetWalletTotalsQuery) Validate() error {
	return q.guard.Validate(ErrGetWalletTotalsQueryIsNotConstructed)
}

// WalletID returns the wallet whose totals are requested.
func (q GetWalletTotalsQuery) WalletID() kernel.UUID {
	return q.walletID
}

// GetWalletTotalsQueryResponse is the wallet's financial summary.
type GetWalletTotalsQueryResponse struct {
	WalletID       kernel.UUID
	Balance        kernel.Money
	TotalEarned    kernel.Money
	TotalWithdrawn kernel.Money
	TotalBonuses   kernel.Money
	TotalFines     kernel.Money
}
