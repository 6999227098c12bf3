package queries

import (
	"context"
	"database/sql"
	"errors"

	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetWalletTotalsQueryHandler reads a wallet's summary row.
type GetWalletTotalsQueryHandler struct {
	db *gorm.DB
}

// NewGetWalletTotalsQueryHandler creates a handler for wallet total queries.
func NewGetWalletTotalsQueryHandler(db *gorm.DB) GetWalletTotalsQueryHandler {
	return GetWalletTotalsQueryHandler{db: db}
}

// Handle returns the wallet's balance and lifetime totals, or ObjectNotFound
// for a wallet that has never been opened.
func (h GetWalletTotalsQueryHandler) Handle(
	ctx context.Context,
	query GetWalletTotalsQuery,
) (GetWalletTotalsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetWalletTotalsQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT balance, total_earned, total_withdrawn, total_bonuses, total_fines
		FROM wallets
		WHERE id = ?
	`, query.WalletID().Bytes()).Row()

	var balance, totalEarned, totalWithdrawn, totalBonuses, totalFines string
	err := row.Scan(&balance, &totalEarned, &totalWithdrawn, &totalBonuses, &totalFines)
	if errors.Is(err, sql.ErrNoRows) {
		return GetWalletTotalsQueryResponse{},
			errs.NewObjectNotFoundError("walletID", query.WalletID().String())
	}
	if err != nil {
		return GetWalletTotalsQueryResponse{}, err
	}

	response := GetWalletTotalsQueryResponse{WalletID: query.WalletID()}
	if response.Balance, err = moneyFromColumn(balance); err != nil {
		return GetWalletTotalsQueryResponse{}, err
	}
	if response.TotalEarned, err = moneyFromColumn(totalEarned); err != nil {
		return GetWalletTotalsQueryResponse{}, err
	}
	if response.TotalWithdrawn, err = moneyFromColumn(totalWithdrawn); err != nil {
		return GetWalletTotalsQueryResponse{}, err
	}
	if response.TotalBonuses, err = moneyFromColumn(totalBonuses); err != nil {
		return GetWalletTotalsQueryResponse{}, err
	}
	if response.TotalFines, err = moneyFromColumn(totalFines); err != nil {
		return GetWalletTotalsQueryResponse{}, err
	}

	return response, nil
}
